package network

import "errors"

// Sentinel errors for graph construction and path queries.
var (
	// ErrEmptyStation indicates a station name was the empty string.
	ErrEmptyStation = errors.New("network: station name is empty")

	// ErrNegativeDistance indicates an edge with a negative distance.
	ErrNegativeDistance = errors.New("network: negative edge distance")

	// ErrStationNotFound indicates the queried station is not present
	// in the adjacency.
	ErrStationNotFound = errors.New("network: station not found")

	// ErrDestinationNotFound indicates the target station is unreachable
	// from the requested source.
	ErrDestinationNotFound = errors.New("network: destination not found")
)

// Leg is a single outgoing connection: the neighbor it arrives at and
// the distance of that connection. The same type doubles as a path
// checkpoint, where Distance is the length of the leg arriving at To.
type Leg struct {
	// To is the station this leg arrives at.
	To string

	// Distance is the length of the leg.
	Distance int64
}

// Destination is the full shortest-path answer from a source station to
// a target station.
//
// Invariant: CumulativeDistance equals the sum of all checkpoint
// distances plus Distance. For From == To, CumulativeDistance is 0 and
// Checkpoints is empty.
type Destination struct {
	// From is the source station of the query.
	From string

	// To is the target station.
	To string

	// Distance is the length of the final leg into To.
	Distance int64

	// CumulativeDistance is the total length of the shortest path.
	CumulativeDistance int64

	// Checkpoints lists the intermediate stations in travel order, each
	// annotated with the distance of the leg arriving at it.
	Checkpoints []Leg
}
