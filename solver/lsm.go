package solver

import (
	"math"

	"github.com/jvgomez/eikonal/eikonal"
	"github.com/jvgomez/eikonal/grid"
)

// LSMSolver is the Locking Sweep Method: FSM with a per-cell "locked"
// flag that prunes cells unlikely to still be improving. A locked cell
// is skipped entirely during a sweep; it locks itself when an update
// attempt fails to improve its value, and any successful update unlocks
// both the cell and its neighbors, since they may now have a better
// causal minimum to relax through.
//
// spec.md §4.10 describes this locked-flag behavior explicitly; the
// original C++ file named "lsm.hpp" does not actually implement cell
// locking (it is FSM with an unrelated, untested goal-stop heuristic) —
// see DESIGN.md for why this diverges from the original in favor of the
// spec's authoritative description.
type LSMSolver struct {
	baseSolver
	maxSweeps int
	locked    []bool
	scratchT  []float64
	scratchN  []int
}

// NewLSM returns an LSMSolver. maxSweeps caps the total number of
// single-direction passes; 0 means unlimited.
func NewLSM(maxSweeps int) *LSMSolver {
	return &LSMSolver{maxSweeps: maxSweeps}
}

func (f *LSMSolver) Name() string { return "LSM" }

func (f *LSMSolver) Setup() error {
	if err := f.validate(false); err != nil {
		return err
	}
	f.locked = make([]bool, f.g.Size())
	f.scratchT = make([]float64, grid.MaxDims)
	f.scratchN = make([]int, 0, 2*grid.MaxDims)
	f.g.SetDirty()
	f.isSetup = true
	return nil
}

func (f *LSMSolver) Compute() error {
	if !f.isSetup {
		return ErrNotSetup
	}
	return f.timeCall(f.run)
}

func (f *LSMSolver) run() error {
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

func (f *LSMSolver) sweepOnce(signs []int) bool {
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

		if f.locked[idx] {
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
			f.locked[idx] = false
			f.unlockNeighbors(idx)
		} else {
			f.locked[idx] = true
		}
	}
	return improved
}

func (f *LSMSolver) unlockNeighbors(idx int) {
	g := f.g
	f.scratchN = g.Neighbors(idx, f.scratchN[:0])
	for _, j := range f.scratchN {
		f.locked[j] = false
	}
}

func (f *LSMSolver) finalize() {
	g := f.g
	for i := 0; i < g.Size(); i++ {
		c := g.Cell(i)
		if c.State != grid.Frozen && !c.Impassable() && !math.IsInf(c.Value, 1) {
			c.State = grid.Frozen
		}
	}
}

func (f *LSMSolver) Reset() error {
	if f.g == nil {
		return ErrNilGrid
	}
	f.g.Clean()
	for i := range f.locked {
		f.locked[i] = false
	}
	f.isSetup = false
	return nil
}

func (f *LSMSolver) Clear() {
	f.locked = nil
	f.g = nil
	f.sources = nil
	f.goal = nil
	f.isSetup = false
}
