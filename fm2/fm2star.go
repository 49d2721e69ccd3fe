package fm2

import "github.com/jvgomez/eikonal/solver"

// NewStar returns an FM2Solver whose time wave (the second, goal-driven
// wave) runs FMM* instead of a plain FMM variant, closing the gap to the
// goal faster once the safety velocity map is in hand. The velocity wave
// always runs velocityBase: FMM*'s heuristic needs a goal to aim for,
// and the velocity wave has none.
func NewStar(velocityBase NewBaseSolver, mode solver.HeuristicMode, maxDistance float64) *FM2Solver {
	newTime := func() solver.Solver { return solver.NewFMMStar(mode) }
	return NewWithWaves(velocityBase, newTime, maxDistance)
}
