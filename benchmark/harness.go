package benchmark

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/jvgomez/eikonal/grid"
	"github.com/jvgomez/eikonal/solver"
)

// RunResult is one solver run's outcome, matching the tab-separated
// benchmark.log columns from spec.md §6: runID, solverName, ndims,
// dim sizes, time_ms.
type RunResult struct {
	RunID      int
	SolverName string
	NDims      int
	DimSizes   []int
	DurationMS float64
}

// Harness drives a fixed set of solvers against one grid, Runs times
// each, resetting the grid between runs and logging every run via
// zerolog. Grounded on itohio-EasyRobot's package-level zerolog.Logger
// convention for structured logging, the only example repo in the pack
// carrying a logging library.
type Harness struct {
	Grid    *grid.Grid
	Solvers []solver.Solver
	Runs    int
	Log     zerolog.Logger
}

// NewHarness returns a Harness logging to stderr through zerolog's
// console writer.
func NewHarness(g *grid.Grid, solvers []solver.Solver, runs int) *Harness {
	return &Harness{
		Grid:    g,
		Solvers: solvers,
		Runs:    runs,
		Log:     zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger(),
	}
}

// Run executes every configured solver Runs times against sources/goal,
// returning one RunResult per run in execution order.
func (h *Harness) Run(sources []int, goal *int) ([]RunResult, error) {
	if len(h.Solvers) == 0 {
		return nil, &PreconditionError{Msg: "no solvers configured"}
	}
	if h.Runs < 1 {
		return nil, &PreconditionError{Msg: "Runs must be at least 1"}
	}

	results := make([]RunResult, 0, len(h.Solvers)*h.Runs)
	runID := 0
	for _, s := range h.Solvers {
		if err := s.SetGrid(h.Grid); err != nil {
			return results, err
		}
		if err := s.SetSources(sources, goal); err != nil {
			return results, err
		}

		for i := 0; i < h.Runs; i++ {
			if err := s.Setup(); err != nil {
				return results, err
			}
			if err := s.Compute(); err != nil {
				return results, err
			}

			res := RunResult{
				RunID:      runID,
				SolverName: s.Name(),
				NDims:      h.Grid.NDims(),
				DimSizes:   h.Grid.DimSizes(),
				DurationMS: s.TimeMS(),
			}
			results = append(results, res)
			h.Log.Info().
				Int("run", runID).
				Str("solver", res.SolverName).
				Ints("dims", res.DimSizes).
				Float64("ms", res.DurationMS).
				Msg("run complete")
			runID++

			if err := s.Reset(); err != nil {
				return results, err
			}
		}
	}
	return results, nil
}
