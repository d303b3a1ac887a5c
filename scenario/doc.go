// Package scenario loads delivery problems from YAML documents and
// renders solved plans as plain-text timetables.
//
// A scenario document lists the three inputs the planner consumes:
//
//	edges:
//	  - {name: E1, from: A, to: B, distance: 30}
//	  - {name: E2, from: B, to: C, distance: 10}
//	trains:
//	  - {name: Q1, capacity: 6, start: B}
//	packages:
//	  - {name: K1, weight: 5, from: A, to: C}
//
// Load performs structural validation only (required fields present,
// numbers non-negative, at least one edge and one train); referential
// checks such as duplicate names or stations missing from the edge
// list are the planner's job at construction.
//
// Errors (sentinel):
//
//   - ErrNoEdges       if the document defines no edges.
//   - ErrNoTrains      if the document defines no trains.
//   - ErrMissingField  if a required name or station field is empty.
//   - ErrNegativeValue if a distance, capacity, or weight is negative.
package scenario
