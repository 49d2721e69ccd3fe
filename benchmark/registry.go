package benchmark

import (
	"fmt"

	"github.com/jvgomez/eikonal/solver"
)

// NewSolverByName constructs the solver.Solver a solvers.<name>
// configuration key names, using each variant's zero-value defaults.
// "sfmmstar" has no distinct implementation in this package (FMM*'s
// goal-driven priority queue is its own starPQ, not built over
// narrowband.Queue the way FMM/SFMM share one), so it is a documented
// alias for the same FMMStarSolver "fmmstar" builds; see DESIGN.md.
func NewSolverByName(name string) (solver.Solver, error) {
	switch name {
	case "fmm":
		return solver.NewFMMDary(2), nil
	case "fmmfib":
		return solver.NewFMMFib(), nil
	case "sfmm":
		return solver.NewSFMM(), nil
	case "gmm":
		return solver.NewGMM(0), nil
	case "fim":
		return solver.NewFIM(), nil
	case "ufmm":
		return solver.NewUFMM(0, 0), nil
	case "fsm":
		return solver.NewFSM(0), nil
	case "lsm":
		return solver.NewLSM(0), nil
	case "ddqm":
		return solver.NewDDQM(), nil
	case "fmmstar", "sfmmstar":
		return solver.NewFMMStar(solver.HeuristicTime), nil
	default:
		return nil, fmt.Errorf("benchmark: unknown solver name %q", name)
	}
}
