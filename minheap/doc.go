// Package minheap provides the binary min-heap used by the shortest-path
// oracle in package network.
//
// The heap orders Entry values by ascending Distance. It follows the
// “lazy decrease-key” discipline: entries are never updated in place.
// When a shorter distance to a station is discovered, the caller pushes
// a fresh Entry; stale duplicates surface later and are skipped by the
// caller via its visited set.
//
// Operations:
//
//   - Push(entry): O(log N)
//   - Pop():       O(log N), returns the minimum-distance entry
//   - Peek():      O(1), returns the minimum without removing it
//   - Len():       O(1)
//
// Ties between equal distances are broken arbitrarily; callers must not
// rely on any secondary ordering.
//
// The heap is not safe for concurrent use; the path oracle owns one per
// traversal.
package minheap
