// Package network models the station graph and answers shortest-path
// queries for the movement planner.
//
// Overview:
//
//   - A Graph stores an undirected weighted adjacency over stations
//     identified by opaque string names. Each physical edge appears
//     twice, once per endpoint, as an outgoing Leg (neighbor, distance).
//     Parallel edges are preserved and compete naturally in relaxation.
//   - PathsFrom(source) runs Dijkstra with a lazy-decrease-key min-heap
//     (package minheap) and yields, for every reachable station, a
//     Destination record: the final-leg distance, the cumulative
//     distance, and the ordered checkpoints along the way. Each
//     checkpoint carries the distance of the leg arriving at it, so a
//     route can be replayed leg by leg without consulting the graph
//     again.
//   - Results are memoized per source; repeat queries return the cached
//     mapping unchanged. Callers must treat returned Destinations as
//     read-only.
//
// Complexity:
//
//   - Time:  O((V + E) log V) per uncached source.
//   - Space: O(V + E) for records and heap entries, plus the cache.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyStation:        a station name is the empty string.
//   - ErrNegativeDistance:    AddEdge received a negative distance.
//   - ErrStationNotFound:     the queried source is not in the adjacency.
//   - ErrDestinationNotFound: the target is absent from the computed
//     mapping, i.e. unreachable from the source. Fatal for planning.
//
// Distances are assumed non-negative; behavior on negative weights is
// undefined beyond the AddEdge guard.
//
// The Graph is not safe for concurrent use: the path cache mutates on
// query. A single planning run owns its Graph.
package network
