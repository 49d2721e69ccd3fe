package solver

import (
	"fmt"

	"github.com/jvgomez/eikonal/eikonal"
	"github.com/jvgomez/eikonal/grid"
	"github.com/jvgomez/eikonal/narrowband"
)

// FMMSolver is the priority-queue Fast Marching Method. Every cell moves
// monotonically Open → Narrow → Frozen; the narrow-band container
// chosen at construction time determines which concrete variant this
// is (FMMDary, FMMFib, SFMM) without duplicating the algorithm body,
// mirroring how the teacher's flow package shares one runner across
// several named constructors.
type FMMSolver struct {
	baseSolver
	newQueue func(capacity int) narrowband.Queue
	variant  string
	queue    narrowband.Queue
	scratchT []float64
	scratchN []int
}

// NewFMMDary returns an FMMSolver backed by a d-ary heap of the given
// arity (2 for a classic binary heap).
func NewFMMDary(arity int) *FMMSolver {
	if arity < 2 {
		arity = 2
	}
	return &FMMSolver{
		newQueue: func(capacity int) narrowband.Queue { return narrowband.NewDaryHeap(arity, capacity) },
		variant:  fmt.Sprintf("FMMDary(%d)", arity),
	}
}

// NewFMMFib returns an FMMSolver backed by a Fibonacci heap.
func NewFMMFib() *FMMSolver {
	return &FMMSolver{
		newQueue: func(capacity int) narrowband.Queue { return narrowband.NewFibHeap(capacity) },
		variant:  "FMMFib",
	}
}

// NewSFMM returns an FMMSolver backed by the unsorted lazy-duplicate
// queue (Simplified FMM).
func NewSFMM() *FMMSolver {
	return &FMMSolver{
		newQueue: func(capacity int) narrowband.Queue { return narrowband.NewUnsortedQueue(capacity) },
		variant:  "SFMM",
	}
}

func (f *FMMSolver) Name() string { return f.variant }

// Setup validates preconditions (no goal required; FMM runs to
// exhaustion unless one happens to be set) and allocates the
// narrow-band queue sized to the grid.
func (f *FMMSolver) Setup() error {
	if err := f.validate(false); err != nil {
		return err
	}
	f.queue = f.newQueue(f.g.Size())
	f.scratchT = make([]float64, grid.MaxDims)
	f.scratchN = make([]int, 0, 2*grid.MaxDims)
	f.g.SetDirty()
	f.isSetup = true
	return nil
}

func (f *FMMSolver) Compute() error {
	if !f.isSetup {
		return ErrNotSetup
	}
	return f.timeCall(f.run)
}

func (f *FMMSolver) run() error {
	g := f.g
	for _, s := range f.sources {
		c := g.Cell(s)
		c.Value = 0
		c.State = grid.Frozen
	}
	for _, s := range f.sources {
		f.relaxNeighbors(s)
	}

	for !f.queue.Empty() {
		i := f.queue.PopMin()
		c := g.Cell(i)
		// SFMM leaves stale duplicate entries behind; a cell already
		// frozen by an earlier pop must be skipped here. Harmless no-op
		// for the handle-based heaps, which never re-push a frozen cell.
		if c.State == grid.Frozen {
			continue
		}
		c.State = grid.Frozen
		if f.atGoal(i) {
			break
		}
		f.relaxNeighbors(i)
	}
	return nil
}

// relaxNeighbors recomputes the Eikonal update for every live neighbor
// of i, pushing newly touched Open cells and decrease-keying improved
// Narrow ones.
func (f *FMMSolver) relaxNeighbors(i int) {
	g := f.g
	f.scratchN = g.Neighbors(i, f.scratchN[:0])
	for _, j := range f.scratchN {
		cj := g.Cell(j)
		if cj.State == grid.Frozen || cj.Impassable() {
			continue
		}
		t := computeT(g, j, f.scratchT)
		switch cj.State {
		case grid.Narrow:
			if t+eikonal.Epsilon < cj.Value {
				cj.Value = t
				f.queue.Increase(cj)
			}
		case grid.Open:
			cj.Value = t
			cj.State = grid.Narrow
			f.queue.Push(cj)
		}
	}
}

func (f *FMMSolver) Reset() error {
	if f.g == nil {
		return ErrNilGrid
	}
	f.g.Clean()
	if f.queue != nil {
		f.queue.Clear()
	}
	f.isSetup = false
	return nil
}

func (f *FMMSolver) Clear() {
	f.queue = nil
	f.g = nil
	f.sources = nil
	f.goal = nil
	f.isSetup = false
}
