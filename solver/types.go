// Package solver implements the Eikonal solver family: FMM (d-ary and
// Fibonacci heap variants), SFMM, FIM, GMM, FSM, LSM, DDQM, UFMM, and the
// goal-heuristic FMM*. Every variant shares the same local update
// (package eikonal) and the same Solver lifecycle, differing only in how
// they pick which cell to relax next — the narrow-band policy is the
// whole story.
//
// The lifecycle — SetGrid, SetSources, Setup, Compute, Reset, Clear — is
// grounded on the teacher's runner pattern in
// github.com/katalvlaran/lvlath/dijkstra: a package-private struct
// carrying all mutable state for one run, constructed fresh so that two
// Compute calls on the same solver never share accidental state.
package solver

import (
	"time"

	"github.com/jvgomez/eikonal/grid"
)

// Solver is the lifecycle every Eikonal solver variant implements.
type Solver interface {
	// SetGrid attaches the grid the solver will run against. The grid
	// must be clean (see grid.IsClean).
	SetGrid(g *grid.Grid) error
	// SetSources records the source cells (T=0) and, for goal-aware
	// solvers, the single termination cell. goal may be nil.
	SetSources(sources []int, goal *int) error
	// SetObstacleSources is SetSources for FM²'s velocity wave, where the
	// sources are impassable (obstacle) cells: the normal precondition
	// that rejects impassable sources does not apply to this call.
	SetObstacleSources(sources []int, goal *int) error
	// Setup validates preconditions and initializes method-specific
	// state. It must run before Compute.
	Setup() error
	// Compute runs the algorithm to completion, recording wall time.
	Compute() error
	// Reset restores the grid and solver state and keeps the sources;
	// Setup must run again before the next Compute.
	Reset() error
	// Clear releases method-specific state entirely; SetGrid/SetSources
	// must be called again before the next Setup.
	Clear()
	// Name identifies the solver variant, e.g. "FMMDary(4)".
	Name() string
	// TimeMS returns the wall-clock duration of the last Compute call,
	// in milliseconds.
	TimeMS() float64
	// Grid returns the attached grid.
	Grid() *grid.Grid
}

// baseSolver carries the fields every variant needs: the attached grid,
// the source/goal configuration, and the timing of the last Compute
// call. Variant-specific state (narrow-band container, active list,
// locked flags, ...) lives alongside this in each concrete solver type.
type baseSolver struct {
	g               *grid.Grid
	sources         []int
	goal            *int
	isSetup         bool
	elapsed         time.Duration
	allowImpassable bool // set only via SetObstacleSources
}

func (b *baseSolver) SetGrid(g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	b.g = g
	b.isSetup = false
	return nil
}

func (b *baseSolver) SetSources(sources []int, goal *int) error {
	if len(sources) == 0 {
		return ErrNoSources
	}
	b.sources = append([]int(nil), sources...)
	b.goal = goal
	b.allowImpassable = false
	b.isSetup = false
	return nil
}

// SetObstacleSources behaves like SetSources but marks the source set as
// exempt from the impassable-source precondition, for fm2's velocity
// wave (see Solver.SetObstacleSources).
func (b *baseSolver) SetObstacleSources(sources []int, goal *int) error {
	if len(sources) == 0 {
		return ErrNoSources
	}
	b.sources = append([]int(nil), sources...)
	b.goal = goal
	b.allowImpassable = true
	b.isSetup = false
	return nil
}

func (b *baseSolver) Grid() *grid.Grid { return b.g }

func (b *baseSolver) TimeMS() float64 { return float64(b.elapsed.Microseconds()) / 1000.0 }

// validate checks the common preconditions every variant's Setup needs:
// a grid attached and clean, sources present and in range and
// passable, and (if requireGoal) a goal present and in range.
func (b *baseSolver) validate(requireGoal bool) error {
	if b.g == nil {
		return ErrNilGrid
	}
	if !b.g.IsClean() {
		return ErrGridNotClean
	}
	if len(b.sources) == 0 {
		return ErrNoSources
	}
	n := b.g.Size()
	for _, s := range b.sources {
		if s < 0 || s >= n {
			return ErrSourceOutOfRange
		}
		if !b.allowImpassable && b.g.Cell(s).Impassable() {
			return ErrSourceImpassable
		}
	}
	if requireGoal {
		if b.goal == nil {
			return ErrGoalRequired
		}
		if *b.goal < 0 || *b.goal >= n {
			return ErrGoalOutOfRange
		}
	} else if b.goal != nil {
		if *b.goal < 0 || *b.goal >= n {
			return ErrGoalOutOfRange
		}
	}
	return nil
}

// timeCall runs fn, recording its wall-clock duration into b.elapsed —
// every Compute method wraps its algorithm body with this.
func (b *baseSolver) timeCall(fn func() error) error {
	start := time.Now()
	err := fn()
	b.elapsed = time.Since(start)
	return err
}

// atGoal reports whether idx is the configured goal cell.
func (b *baseSolver) atGoal(idx int) bool {
	return b.goal != nil && *b.goal == idx
}
