package solver

import (
	"github.com/jvgomez/eikonal/eikonal"
	"github.com/jvgomez/eikonal/grid"
)

// GMMSolver is the Group Marching Method: instead of freezing one cell
// at a time, it advances a global threshold t_m and freezes every
// narrow-band cell that has fallen at or below it in one shot, per
// iteration doing a backward causal-relax pass over Γ followed by a
// forward freeze-and-discover pass.
type GMMSolver struct {
	baseSolver
	gamma    []int  // Γ: flat indices of the current narrow band, in discovery order
	inGamma  []bool // inGamma[idx]: whether idx is currently a member of gamma
	tm       float64
	deltaU   float64
	scratchT []float64
	scratchN []int
}

// NewGMM returns a GMMSolver with the given threshold step size. deltaU
// <= 0 falls back to the default step of 1.
func NewGMM(deltaU float64) *GMMSolver {
	if deltaU <= 0 {
		deltaU = 1
	}
	return &GMMSolver{deltaU: deltaU}
}

func (f *GMMSolver) Name() string { return "GMM" }

func (f *GMMSolver) Setup() error {
	if err := f.validate(false); err != nil {
		return err
	}
	f.gamma = nil
	f.inGamma = make([]bool, f.g.Size())
	f.tm = 0
	f.scratchT = make([]float64, grid.MaxDims)
	f.scratchN = make([]int, 0, 2*grid.MaxDims)
	f.g.SetDirty()
	f.isSetup = true
	return nil
}

func (f *GMMSolver) Compute() error {
	if !f.isSetup {
		return ErrNotSetup
	}
	return f.timeCall(f.run)
}

func (f *GMMSolver) run() error {
	g := f.g
	for _, s := range f.sources {
		c := g.Cell(s)
		c.Value = 0
		c.State = grid.Frozen
	}
	for _, s := range f.sources {
		f.discoverInitial(s)
	}

	for len(f.gamma) > 0 {
		f.tm += f.deltaU

		// Backward pass: recompute T of already-Narrow neighbors of
		// every cell at or below the threshold, without enlarging Γ.
		for idx := len(f.gamma) - 1; idx >= 0; idx-- {
			i := f.gamma[idx]
			if g.Cell(i).Value <= f.tm {
				f.relaxNarrowNeighbors(i)
			}
		}

		// Forward pass: freeze every cell at or below the threshold,
		// discovering new Narrow neighbors for the next iteration.
		kept := f.gamma[:0:0]
		var discovered []int
		goalHit := false
		for _, i := range f.gamma {
			c := g.Cell(i)
			if c.Value <= f.tm {
				discovered = append(discovered, f.freezeAndDiscover(i)...)
				if f.atGoal(i) {
					goalHit = true
				}
			} else {
				kept = append(kept, i)
			}
		}
		f.gamma = append(kept, discovered...)
		if goalHit {
			break
		}
	}
	return nil
}

// discoverInitial marks every Open, passable neighbor of i Narrow and
// adds it to Γ; used only to seed the narrow band from the sources.
func (f *GMMSolver) discoverInitial(i int) {
	g := f.g
	f.scratchN = g.Neighbors(i, f.scratchN[:0])
	for _, j := range f.scratchN {
		cj := g.Cell(j)
		if cj.Impassable() || cj.State != grid.Open {
			continue
		}
		cj.Value = computeT(g, j, f.scratchT)
		cj.State = grid.Narrow
		if !f.inGamma[j] {
			f.inGamma[j] = true
			f.gamma = append(f.gamma, j)
		}
	}
}

// relaxNarrowNeighbors recomputes T for i's neighbors that are already
// Narrow, skipping Frozen and Open neighbors entirely so Γ's membership
// never changes during the backward pass.
func (f *GMMSolver) relaxNarrowNeighbors(i int) {
	g := f.g
	f.scratchN = g.Neighbors(i, f.scratchN[:0])
	for _, j := range f.scratchN {
		cj := g.Cell(j)
		if cj.State != grid.Narrow {
			continue
		}
		t := computeT(g, j, f.scratchT)
		if t+eikonal.Epsilon < cj.Value {
			cj.Value = t
		}
	}
}

// freezeAndDiscover freezes i and relaxes its neighbors, returning the
// flat indices of any neighbor newly promoted from Open to Narrow.
func (f *GMMSolver) freezeAndDiscover(i int) []int {
	g := f.g
	g.Cell(i).State = grid.Frozen
	f.inGamma[i] = false

	var discovered []int
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
			}
		case grid.Open:
			cj.Value = t
			cj.State = grid.Narrow
			if !f.inGamma[j] {
				f.inGamma[j] = true
				discovered = append(discovered, j)
			}
		}
	}
	return discovered
}

func (f *GMMSolver) Reset() error {
	if f.g == nil {
		return ErrNilGrid
	}
	f.g.Clean()
	f.gamma = nil
	for i := range f.inGamma {
		f.inGamma[i] = false
	}
	f.tm = 0
	f.isSetup = false
	return nil
}

func (f *GMMSolver) Clear() {
	f.gamma = nil
	f.inGamma = nil
	f.g = nil
	f.sources = nil
	f.goal = nil
	f.isSetup = false
}
