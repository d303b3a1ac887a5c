package network

import "sort"

// Graph stores the undirected weighted adjacency over stations and the
// per-source shortest-path cache.
type Graph struct {
	// adj maps a station to its outgoing legs. Every physical edge
	// contributes one leg to each endpoint.
	adj map[string][]Leg

	// cache maps a source station to its computed Destination mapping.
	cache map[string]map[string]Destination
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		adj:   make(map[string][]Leg),
		cache: make(map[string]map[string]Destination),
	}
}

// AddEdge records an undirected edge between from and to with the given
// distance, appending (to, distance) to from's legs and (from, distance)
// to to's legs. Parallel edges are preserved; relaxation lets duplicates
// compete.
//
// Returns ErrEmptyStation if either endpoint is empty, or
// ErrNegativeDistance if distance < 0.
func (g *Graph) AddEdge(from, to string, distance int64) error {
	if from == "" || to == "" {
		return ErrEmptyStation
	}
	if distance < 0 {
		return ErrNegativeDistance
	}

	g.adj[from] = append(g.adj[from], Leg{To: to, Distance: distance})
	g.adj[to] = append(g.adj[to], Leg{To: from, Distance: distance})

	return nil
}

// HasStation reports whether name appears in the adjacency.
func (g *Graph) HasStation(name string) bool {
	_, ok := g.adj[name]

	return ok
}

// Stations returns all station names in lexicographic order.
func (g *Graph) Stations() []string {
	names := make([]string, 0, len(g.adj))
	for name := range g.adj {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Neighbors returns the outgoing legs of station, or ErrStationNotFound
// if the station is unknown. The returned slice is the Graph's own
// backing storage and must not be mutated.
func (g *Graph) Neighbors(station string) ([]Leg, error) {
	legs, ok := g.adj[station]
	if !ok {
		return nil, ErrStationNotFound
	}

	return legs, nil
}
