package network

import (
	"fmt"
	"math"

	"github.com/katalvlaran/railplan/minheap"
)

// PathsFrom computes the shortest path from source to every reachable
// station and returns the mapping target → Destination.
//
// Classical Dijkstra with the minheap priority queue and lazy
// decrease-key: stale heap entries are skipped via the visited set.
// Results are memoized per source; subsequent calls return the cached
// mapping unchanged.
//
// Preconditions (in order):
//  1. source must be non-empty (ErrEmptyStation).
//  2. source must exist in the adjacency (ErrStationNotFound).
func (g *Graph) PathsFrom(source string) (map[string]Destination, error) {
	// 1) Validate inputs.
	if source == "" {
		return nil, ErrEmptyStation
	}
	if _, ok := g.adj[source]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrStationNotFound, source)
	}

	// 2) Cache check: a source is computed at most once per Graph.
	if cached, ok := g.cache[source]; ok {
		return cached, nil
	}

	// 3) Run the traversal and memoize.
	r := &pathRunner{
		graph:        g,
		source:       source,
		destinations: make(map[string]Destination, len(g.adj)),
		visited:      make(map[string]bool, len(g.adj)),
		heap:         minheap.New(),
	}
	r.init()
	r.process()

	result := r.reachable()
	g.cache[source] = result

	return result, nil
}

// Destination resolves the shortest path from from to to.
// A target absent from the computed mapping is unreachable and yields
// ErrDestinationNotFound.
func (g *Graph) Destination(from, to string) (Destination, error) {
	paths, err := g.PathsFrom(from)
	if err != nil {
		return Destination{}, err
	}

	dest, ok := paths[to]
	if !ok {
		return Destination{}, fmt.Errorf("%w: %s → %s", ErrDestinationNotFound, from, to)
	}

	return dest, nil
}

// pathRunner holds the mutable state of a single Dijkstra execution.
type pathRunner struct {
	graph        *Graph                 // read-only adjacency
	source       string                 // traversal origin
	destinations map[string]Destination // tentative records, keyed by target
	visited      map[string]bool        // finalized stations
	heap         *minheap.Heap          // lazy priority queue
}

// init seeds the tentative records (source at 0, every other station at
// +∞) and pushes the source onto the heap.
func (r *pathRunner) init() {
	for station := range r.graph.adj {
		r.destinations[station] = Destination{
			From:               r.source,
			To:                 station,
			CumulativeDistance: math.MaxInt64,
		}
	}
	r.destinations[r.source] = Destination{
		From:               r.source,
		To:                 r.source,
		CumulativeDistance: 0,
	}

	r.heap.Push(minheap.Entry{Station: r.source, Distance: 0})
}

// process is the main loop: pop the closest unfinalized station, mark
// it visited, and relax its legs.
func (r *pathRunner) process() {
	for {
		entry, ok := r.heap.Pop()
		if !ok {
			return
		}

		// Skip stale heap entries (lazy decrease-key).
		if r.visited[entry.Station] {
			continue
		}
		r.visited[entry.Station] = true

		r.relax(entry.Station, entry.Distance)
	}
}

// relax attempts to improve every neighbor of current, whose distance
// from the source is finalized at currentDistance.
//
// An improved neighbor record extends current's checkpoints by an entry
// for current itself, carrying the distance of the leg that arrived at
// current (currentDistance minus the sum of current's checkpoint legs).
// This keeps the invariant that cumulative distance equals the sum of
// checkpoint legs plus the final leg.
func (r *pathRunner) relax(current string, currentDistance int64) {
	currentDest := r.destinations[current]

	for _, leg := range r.graph.adj[current] {
		next := leg.To
		newCumulative := currentDistance + leg.Distance
		if newCumulative >= r.destinations[next].CumulativeDistance {
			continue
		}

		var checkpoints []Leg
		switch {
		case len(currentDest.Checkpoints) > 0:
			checkpoints = make([]Leg, len(currentDest.Checkpoints), len(currentDest.Checkpoints)+1)
			copy(checkpoints, currentDest.Checkpoints)
			checkpoints = append(checkpoints, Leg{
				To:       current,
				Distance: currentDistance - legSum(currentDest.Checkpoints),
			})
		case current != r.source:
			checkpoints = []Leg{{To: current, Distance: currentDistance}}
		}

		r.destinations[next] = Destination{
			From:               r.source,
			To:                 next,
			Distance:           leg.Distance,
			CumulativeDistance: newCumulative,
			Checkpoints:        checkpoints,
		}
		r.heap.Push(minheap.Entry{Station: next, Distance: newCumulative})
	}
}

// reachable strips the stations the traversal never reached, so that a
// lookup miss signals unreachability.
func (r *pathRunner) reachable() map[string]Destination {
	result := make(map[string]Destination, len(r.destinations))
	for station, dest := range r.destinations {
		if dest.CumulativeDistance == math.MaxInt64 {
			continue
		}
		result[station] = dest
	}

	return result
}

// legSum returns the total distance of the given checkpoint legs.
func legSum(legs []Leg) int64 {
	var sum int64
	for _, leg := range legs {
		sum += leg.Distance
	}

	return sum
}
