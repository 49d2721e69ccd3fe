// Package narrowband implements the interchangeable priority structures
// that the solver family uses to order cell relaxations: a d-ary heap, a
// Fibonacci heap, an unsorted priority queue (duplicate-push,
// skip-on-pop), and an untidy bucket queue. All four implement Queue,
// keyed by Cell.Value, so package solver can swap containers without
// changing any algorithm.
//
// The handle-based heaps (DaryHeap, FibHeap) mirror the teacher's
// container/heap adapter in github.com/katalvlaran/lvlath/dijkstra
// (nodePQ, a min-heap of *nodeItem), but add an index-keyed handle table
// so that Increase runs in true O(log n) decrease-key rather than the
// teacher's lazy "push a duplicate, skip stale pops on read" strategy.
// UnsortedQueue deliberately keeps that lazy strategy — it IS the
// Simplified FMM (SFMM) variant spec.md describes, so the duplication is
// the point, not an oversight.
package narrowband
