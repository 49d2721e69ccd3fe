package solver

import (
	"math"

	"github.com/jvgomez/eikonal/eikonal"
	"github.com/jvgomez/eikonal/grid"
)

// FSMSolver is the Fast Sweeping Method: a Gauss-Seidel-style relaxation
// that repeatedly traverses every cell in one of 2^N axis-sign
// orientations, applying the Eikonal update in place, until a full
// single-direction pass produces no improvement anywhere. Unlike the
// priority-queue family, no narrow-band container is needed — every
// passable cell is simply revisited every sweep, generalized to
// arbitrary N (the original hardcodes 3 dimensions).
type FSMSolver struct {
	baseSolver
	maxSweeps int
	scratchT  []float64
}

// NewFSM returns an FSMSolver. maxSweeps caps the total number of
// single-direction passes as a safety net; 0 means unlimited (bounded in
// practice by monotone convergence).
func NewFSM(maxSweeps int) *FSMSolver {
	return &FSMSolver{maxSweeps: maxSweeps}
}

func (f *FSMSolver) Name() string { return "FSM" }

func (f *FSMSolver) Setup() error {
	if err := f.validate(false); err != nil {
		return err
	}
	f.scratchT = make([]float64, grid.MaxDims)
	f.g.SetDirty()
	f.isSetup = true
	return nil
}

func (f *FSMSolver) Compute() error {
	if !f.isSetup {
		return ErrNotSetup
	}
	return f.timeCall(f.run)
}

func (f *FSMSolver) run() error {
	g := f.g
	for _, s := range f.sources {
		c := g.Cell(s)
		c.Value = 0
		c.State = grid.Frozen
	}

	dirs := sweepDirections(g.NDims())
	sweeps := 0
	for {
		for _, signs := range dirs {
			if !f.sweepOnce(signs) {
				f.finalize()
				return nil
			}
			sweeps++
			if f.maxSweeps > 0 && sweeps >= f.maxSweeps {
				f.finalize()
				return nil
			}
		}
	}
}

// sweepOnce applies one full-grid pass in the given axis-sign
// orientation, returning whether any cell's arrival time strictly
// improved.
func (f *FSMSolver) sweepOnce(signs []int) bool {
	g := f.g
	dimsize := g.DimSizes()
	improved := false
	for flat := 0; flat < g.Size(); flat++ {
		coord, err := g.Idx2Coord(flat)
		if err != nil {
			continue
		}
		for k, s := range signs {
			if s < 0 {
				coord[k] = dimsize[k] - 1 - coord[k]
			}
		}
		idx, err := g.Coord2Idx(coord)
		if err != nil {
			continue
		}

		c := g.Cell(idx)
		if c.State == grid.Frozen || c.Impassable() {
			continue
		}
		t := computeT(g, idx, f.scratchT)
		if t+eikonal.Epsilon < c.Value {
			c.Value = t
			c.State = grid.Narrow
			improved = true
		}
	}
	return improved
}

// finalize promotes every reached passable cell to Frozen once sweeping
// has converged, matching the Frozen-means-final convention the rest of
// the solver family uses.
func (f *FSMSolver) finalize() {
	g := f.g
	for i := 0; i < g.Size(); i++ {
		c := g.Cell(i)
		if c.State != grid.Frozen && !c.Impassable() && !math.IsInf(c.Value, 1) {
			c.State = grid.Frozen
		}
	}
}

func (f *FSMSolver) Reset() error {
	if f.g == nil {
		return ErrNilGrid
	}
	f.g.Clean()
	f.isSetup = false
	return nil
}

func (f *FSMSolver) Clear() {
	f.g = nil
	f.sources = nil
	f.goal = nil
	f.isSetup = false
}
