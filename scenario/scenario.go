package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/railplan/planner"
)

// Sentinel errors for structural validation.
var (
	// ErrNoEdges indicates the document defines no edges.
	ErrNoEdges = errors.New("scenario: no edges defined")

	// ErrNoTrains indicates the document defines no trains.
	ErrNoTrains = errors.New("scenario: no trains defined")

	// ErrMissingField indicates a required name or station is empty.
	ErrMissingField = errors.New("scenario: missing required field")

	// ErrNegativeValue indicates a negative distance, capacity, or weight.
	ErrNegativeValue = errors.New("scenario: negative value")
)

// Edge is one undirected connection of the network.
type Edge struct {
	Name     string `yaml:"name"`
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Distance int64  `yaml:"distance"`
}

// Train is one train of the fleet.
type Train struct {
	Name     string `yaml:"name"`
	Capacity int64  `yaml:"capacity"`
	Start    string `yaml:"start"`
}

// Package is one package awaiting delivery.
type Package struct {
	Name   string `yaml:"name"`
	Weight int64  `yaml:"weight"`
	From   string `yaml:"from"`
	To     string `yaml:"to"`
}

// Scenario is a full problem description as read from YAML.
type Scenario struct {
	Edges    []Edge    `yaml:"edges"`
	Trains   []Train   `yaml:"trains"`
	Packages []Package `yaml:"packages"`
}

// Load decodes and validates a scenario document. Unknown YAML fields
// are rejected so typos surface instead of silently dropping input.
func Load(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// LoadFile reads and decodes the scenario document at path.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Validate checks the structural constraints of the document.
func (s *Scenario) Validate() error {
	if len(s.Edges) == 0 {
		return ErrNoEdges
	}
	if len(s.Trains) == 0 {
		return ErrNoTrains
	}

	for i, e := range s.Edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("%w: edge %d endpoints", ErrMissingField, i)
		}
		if e.Distance < 0 {
			return fmt.Errorf("%w: edge %q distance", ErrNegativeValue, e.Name)
		}
	}
	for i, t := range s.Trains {
		if t.Name == "" || t.Start == "" {
			return fmt.Errorf("%w: train %d", ErrMissingField, i)
		}
		if t.Capacity < 0 {
			return fmt.Errorf("%w: train %q capacity", ErrNegativeValue, t.Name)
		}
	}
	for i, p := range s.Packages {
		if p.Name == "" || p.From == "" || p.To == "" {
			return fmt.Errorf("%w: package %d", ErrMissingField, i)
		}
		if p.Weight < 0 {
			return fmt.Errorf("%w: package %q weight", ErrNegativeValue, p.Name)
		}
	}

	return nil
}

// Problem converts the scenario into the planner's input form.
func (s *Scenario) Problem() planner.Problem {
	problem := planner.Problem{
		Edges:    make([]planner.Edge, 0, len(s.Edges)),
		Trains:   make([]planner.TrainSpec, 0, len(s.Trains)),
		Packages: make([]planner.PackageSpec, 0, len(s.Packages)),
	}
	for _, e := range s.Edges {
		problem.Edges = append(problem.Edges, planner.Edge{
			Name:     e.Name,
			From:     e.From,
			To:       e.To,
			Distance: e.Distance,
		})
	}
	for _, t := range s.Trains {
		problem.Trains = append(problem.Trains, planner.TrainSpec{
			Name:     t.Name,
			Capacity: t.Capacity,
			Start:    t.Start,
		})
	}
	for _, p := range s.Packages {
		problem.Packages = append(problem.Packages, planner.PackageSpec{
			Name:   p.Name,
			Weight: p.Weight,
			From:   p.From,
			To:     p.To,
		})
	}

	return problem
}
