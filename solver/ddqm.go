package solver

import (
	"github.com/jvgomez/eikonal/eikonal"
	"github.com/jvgomez/eikonal/grid"
	"gonum.org/v1/gonum/stat"
)

// DDQMSolver is the Double Dynamic Queue Method: two FIFO queues
// (primary, secondary) partitioned by a running mean μ of the arrival
// times currently queued in primary. A cell is dequeued from primary,
// frozen, and its changed neighbors are routed into primary if their
// new T is at or below μ, otherwise into secondary; when primary
// empties, the queues swap and μ is recomputed over the new primary.
//
// μ is a plain arithmetic mean over a batch of float64s — exactly the
// kind of vetted reduction gonum.org/v1/gonum/stat exists for, rather
// than a hand-rolled running sum prone to drift over many swaps.
type DDQMSolver struct {
	baseSolver
	mu       float64
	scratchT []float64
	scratchN []int
}

// NewDDQM returns a DDQMSolver.
func NewDDQM() *DDQMSolver {
	return &DDQMSolver{}
}

func (f *DDQMSolver) Name() string { return "DDQM" }

func (f *DDQMSolver) Setup() error {
	if err := f.validate(false); err != nil {
		return err
	}
	f.mu = 0
	f.scratchT = make([]float64, grid.MaxDims)
	f.scratchN = make([]int, 0, 2*grid.MaxDims)
	f.g.SetDirty()
	f.isSetup = true
	return nil
}

func (f *DDQMSolver) Compute() error {
	if !f.isSetup {
		return ErrNotSetup
	}
	return f.timeCall(f.run)
}

func (f *DDQMSolver) run() error {
	g := f.g
	for _, s := range f.sources {
		c := g.Cell(s)
		c.Value = 0
		c.State = grid.Frozen
	}

	var primary, secondary []int
	for _, s := range f.sources {
		primary = f.seedNeighbors(s, primary)
	}

	for len(primary) > 0 || len(secondary) > 0 {
		if len(primary) == 0 {
			// secondary becomes the new primary; secondary itself must be a
			// fresh slice, not a [:0] view into the same backing array,
			// since both are read from and appended to independently below.
			primary, secondary = secondary, nil
			f.mu = f.runningMean(primary)
		}

		i := primary[0]
		primary = primary[1:]
		c := g.Cell(i)
		if c.State == grid.Frozen {
			continue
		}
		c.State = grid.Frozen
		if f.atGoal(i) {
			break
		}

		f.scratchN = g.Neighbors(i, f.scratchN[:0])
		for _, j := range f.scratchN {
			cj := g.Cell(j)
			if cj.State == grid.Frozen || cj.Impassable() {
				continue
			}
			t := computeT(g, j, f.scratchT)
			changed := false
			if cj.State == grid.Open {
				cj.Value = t
				cj.State = grid.Narrow
				changed = true
			} else if t+eikonal.Epsilon < cj.Value {
				cj.Value = t
				changed = true
			}
			if !changed {
				continue
			}
			if cj.Value <= f.mu {
				primary = append(primary, j)
			} else {
				secondary = append(secondary, j)
			}
		}
	}
	return nil
}

// seedNeighbors enqueues every Open, passable neighbor of i into queue,
// marking it Narrow; used only to populate the initial primary queue
// from the sources, before any μ has been established.
func (f *DDQMSolver) seedNeighbors(i int, queue []int) []int {
	g := f.g
	f.scratchN = g.Neighbors(i, f.scratchN[:0])
	for _, j := range f.scratchN {
		cj := g.Cell(j)
		if cj.Impassable() || cj.State != grid.Open {
			continue
		}
		cj.Value = computeT(g, j, f.scratchT)
		cj.State = grid.Narrow
		queue = append(queue, j)
	}
	return queue
}

func (f *DDQMSolver) runningMean(queue []int) float64 {
	if len(queue) == 0 {
		return 0
	}
	vals := make([]float64, len(queue))
	for i, idx := range queue {
		vals[i] = f.g.Cell(idx).Value
	}
	return stat.Mean(vals, nil)
}

func (f *DDQMSolver) Reset() error {
	if f.g == nil {
		return ErrNilGrid
	}
	f.g.Clean()
	f.mu = 0
	f.isSetup = false
	return nil
}

func (f *DDQMSolver) Clear() {
	f.g = nil
	f.sources = nil
	f.goal = nil
	f.isSetup = false
}
