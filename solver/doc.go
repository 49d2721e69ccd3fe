// Package solver implements the Eikonal solver family described in
// SPEC_FULL.md §4.4: FMM (d-ary and Fibonacci heap variants), SFMM,
// FIM, GMM, FSM, LSM, DDQM, UFMM, and the goal-heuristic FMM*. Every
// variant shares the local quadratic update in package eikonal and the
// Solver lifecycle in this package; they differ only in the policy that
// decides which cell to relax next.
package solver
