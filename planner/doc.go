// Package planner computes delivery plans for a fleet of
// capacity-limited trains moving packages across a station network.
//
// Overview:
//
//   - New builds a Planner from a Problem: the edge list becomes a
//     network.Graph, trains and packages become mutable planning
//     records.
//   - Solve runs a depth-first branch-and-bound search over
//     (train, package, action) assignments. Each candidate either
//     commits a train to a future pickup or sends it to complete an
//     existing commitment; the path oracle supplies the route and the
//     move synthesizer extends the timeline leg by leg.
//   - Plans are compared lexicographically: smallest makespan first
//     (the latest end time across all movements), then fewest distinct
//     trains. The returned movement list is sorted by (train name,
//     start time).
//   - Sub-searches are memoized under a canonical state fingerprint.
//     The fingerprint deliberately omits movement history and per-train
//     totals, so a cached sub-plan is reused whenever the same logical
//     situation recurs, composed into the caller's prefix. This is a
//     knowing approximation: two prefixes reaching the same sub-state
//     share one cached continuation.
//
// Determinism: candidates are expanded in a fixed order (actions that
// complete existing commitments before new commitments, then by train
// name, then by package name), so identical inputs always produce
// identical plans.
//
// Error handling (sentinel errors):
//
//   - Construction: ErrEmptyName, ErrDuplicateName, ErrNegativeCapacity,
//     ErrNegativeWeight, ErrUnknownStation, plus network.AddEdge guards.
//   - Solve: ErrNoSolution when undelivered packages remain with no
//     viable candidates; ErrTrainNotFound / ErrPackageNotFound on
//     internal table misses; network.ErrDestinationNotFound (wrapped)
//     when a required station is unreachable. All are fatal: no partial
//     timeline is returned.
//
// Observability: inject a zerolog.Logger with WithLogger for solve
// summaries and incumbent traces, and a Recorder with WithRecorder to
// export search counters (nodes expanded, memo hits/misses, incumbent
// updates) to Prometheus.
//
// A Planner is single-threaded; the memo caches mutate during Solve.
package planner
