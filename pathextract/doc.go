// Package pathextract recovers a continuous path from a completed
// arrival-time field by gradient descent: starting at a cell and
// following the steepest local decrease in T, one step of fixed length
// at a time, until a source cell (T=0) is reached.
//
// Grounded on original_source/gradientdescent/gradientdescent.hpp, with
// three termination guards the original never performs: a non-finite
// (NaN) gradient, leaving the grid's bounds, and a step cap proportional
// to the grid's diameter, so descent on an unreachable or pathological
// field returns an error instead of looping or indexing out of range.
package pathextract
