// Package eikonal is a library for solving the eikonal equation on
// N-dimensional Cartesian grids with the Fast Marching Method and its
// relatives.
//
// The eikonal equation |∇T(x)| = 1/F(x) describes the arrival time T of
// a wavefront expanding from a set of sources at speed F. Solving it on
// a grid underlies path planning, shape-from-shading, and minimal-time
// problems in robotics and computer vision.
//
// Everything lives in subpackages:
//
//	grid/          — the N-D Cartesian grid: cells, occupancy, neighbors
//	eikonal/        — the eikonal update formula shared by every solver
//	narrowband/     — the priority-queue front tracked during marching
//	solver/         — FMM, SFMM, FIM, GMM, FSM, LSM, DDQM, UFMM, FMM*
//	fm2/            — Fast Marching Square: two composed solves for
//	                   safety-aware path planning around obstacles
//	pathextract/    — gradient-descent path extraction from a solved field
//	reachability/   — occupancy connectivity checks independent of a solve
//	benchmark/      — configuration-driven multi-solver benchmark harness
//	cmd/eikonalbench/ — the benchmark command line entry point
//
// A typical use picks a solver, seeds it with source cells, runs it to
// completion, then extracts a path:
//
//	g, _ := grid.NewGrid([]int{200, 200}, 1.0)
//	s := solver.NewFMMDary(2)
//	s.SetGrid(g)
//	s.SetSources([]int{startIdx}, nil)
//	s.Setup()
//	s.Compute()
//	path, _ := pathextract.Descend(g, goalIdx, pathextract.Options{})
package eikonal
