package planner

import (
	"errors"

	"github.com/rs/zerolog"
)

// Sentinel errors for Problem validation.
var (
	// ErrEmptyName indicates a train or package name was the empty
	// string. Empty edge endpoints are reported by network.AddEdge.
	ErrEmptyName = errors.New("planner: empty name in problem")

	// ErrDuplicateName indicates two trains or two packages share a name.
	ErrDuplicateName = errors.New("planner: duplicate name in problem")

	// ErrNegativeCapacity indicates a train with capacity < 0.
	ErrNegativeCapacity = errors.New("planner: negative train capacity")

	// ErrNegativeWeight indicates a package with weight < 0.
	ErrNegativeWeight = errors.New("planner: negative package weight")

	// ErrUnknownStation indicates a train start or package endpoint that
	// the edge list never mentions.
	ErrUnknownStation = errors.New("planner: station not in edge list")
)

// Sentinel errors surfaced by Solve.
var (
	// ErrTrainNotFound indicates the search referenced a train name
	// missing from its tables; an internal invariant violation.
	ErrTrainNotFound = errors.New("planner: train not found")

	// ErrPackageNotFound indicates the search referenced a package name
	// missing from its tables; an internal invariant violation.
	ErrPackageNotFound = errors.New("planner: package not found")

	// ErrNoSolution indicates undelivered packages remain and no
	// candidate action can progress them.
	ErrNoSolution = errors.New("planner: no solution found")
)

// Edge describes one undirected connection of the input network.
// Name is opaque to the planner.
type Edge struct {
	Name     string
	From     string
	To       string
	Distance int64
}

// TrainSpec describes one train of the input fleet.
type TrainSpec struct {
	Name     string
	Capacity int64
	Start    string
}

// PackageSpec describes one package awaiting delivery.
type PackageSpec struct {
	Name   string
	Weight int64
	From   string
	To     string
}

// Problem bundles the three input lists the planner consumes.
type Problem struct {
	Edges    []Edge
	Trains   []TrainSpec
	Packages []PackageSpec
}

// Train is the mutable planning record of one train.
//
// The three package name lists are disjoint. The summed weight of
// PackagesToPickUp and PackagesPickedUp never exceeds Capacity.
type Train struct {
	// Name identifies the train.
	Name string

	// Start is the original start station; it never changes.
	Start string

	// CurrentLocation is where the train sits in the present state.
	CurrentLocation string

	// Capacity is the maximum total package weight the train may carry
	// or be committed to.
	Capacity int64

	// TotalDistance accumulates the distance traveled so far.
	TotalDistance int64

	// PackagesToPickUp lists packages the train committed to pick up
	// but has not yet loaded.
	PackagesToPickUp []string

	// PackagesPickedUp lists packages currently on board.
	PackagesPickedUp []string

	// PackagesDelivered lists packages already offloaded at their
	// destinations.
	PackagesDelivered []string
}

// Package is the mutable planning record of one package.
//
// Lifecycle: all three assignment fields start empty. Commitment sets
// ToBePickedUpBy, loading sets PickedUpBy, offloading sets DeliveredBy.
// A package with DeliveredBy set is terminal. DeliveredBy implies
// PickedUpBy, which implies ToBePickedUpBy.
type Package struct {
	// Name identifies the package.
	Name string

	// From is the origin station.
	From string

	// To is the destination station.
	To string

	// Weight is the package weight counted against train capacity.
	Weight int64

	// ToBePickedUpBy names the train committed to pick this package up.
	ToBePickedUpBy string

	// PickedUpBy names the train carrying this package.
	PickedUpBy string

	// DeliveredBy names the train that delivered this package.
	DeliveredBy string
}

// Movement is one edge traversal by one train.
//
// Invariant: EndTime = StartTime + leg distance, and for any single
// train the movements chain contiguously (next start equals previous
// end at the previous arrival station).
type Movement struct {
	// StartTime is when the train departs From.
	StartTime int64

	// EndTime is when the train arrives at To.
	EndTime int64

	// From is the departure station.
	From string

	// To is the arrival station.
	To string

	// Train names the moving train.
	Train string

	// PackagesPickedUp lists packages loaded at From before departing.
	PackagesPickedUp []string

	// PackagesDelivered lists packages offloaded at To on arrival.
	PackagesDelivered []string
}

// Options configures a Planner. Zero value is not meaningful; use
// DefaultOptions and override via functional options.
type Options struct {
	// Logger receives solve summaries and search traces.
	// Defaults to a no-op logger.
	Logger zerolog.Logger

	// Recorder exports search counters. Nil disables metrics.
	Recorder *Recorder
}

// Option is a functional option for configuring a Planner.
type Option func(*Options)

// WithLogger injects the logger used for solve summaries and
// incumbent traces.
func WithLogger(log zerolog.Logger) Option {
	return func(o *Options) { o.Logger = log }
}

// WithRecorder attaches a metrics Recorder to the search.
func WithRecorder(rec *Recorder) Option {
	return func(o *Options) { o.Recorder = rec }
}

// DefaultOptions returns the Options a Planner starts from: a no-op
// logger and no metrics.
func DefaultOptions() Options {
	return Options{
		Logger:   zerolog.Nop(),
		Recorder: nil,
	}
}
