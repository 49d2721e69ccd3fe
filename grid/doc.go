// Package grid implements Cell and Grid, the flat N-dimensional Cartesian
// container every Eikonal solver in this module operates on.
//
// A Grid owns a contiguous slice of Cell values plus a per-dimension size
// array. Indexing is row-major with dimension 0 fastest-varying:
//
//	idx = c0 + c1*d[0] + c2*d[1] + ...
//
// where d[i] is the prefix product of dimension sizes up to and including
// dimension i. Neighbor enumeration along dimension k from index idx is a
// single bounds check against that prefix product — see Neighbors.
//
// Grid is deliberately not safe for concurrent mutation: §5 of the design
// restricts the solver core to single-threaded, synchronous execution, so
// Grid carries no locks, unlike github.com/katalvlaran/lvlath's core.Graph
// (the teacher this module is adapted from), which is goroutine-safe by
// design. A solver owns exclusive access to its Grid for the duration of a
// Compute call; the benchmark harness serializes solver invocations.
package grid
