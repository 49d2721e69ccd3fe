package solver

import (
	"github.com/jvgomez/eikonal/eikonal"
	"github.com/jvgomez/eikonal/grid"
)

// computeT evaluates the local Eikonal update at idx: gathers the
// per-dimension neighbor minima into scratch (which must have length
// g.NDims(), typically a [grid.MaxDims]float64 stack array sliced down
// by each solver's Setup) and feeds them to eikonal.Solve along with the
// cell's own velocity. Every solver variant relaxes cells through this
// one function, so the quadratic update itself is never duplicated
// across the family, and no slice is allocated in the inner loop.
func computeT(g *grid.Grid, idx int, scratch []float64) float64 {
	ndims := g.NDims()
	for k := 0; k < ndims; k++ {
		scratch[k] = g.MinNeighborT(idx, k)
	}
	return eikonal.Solve(g.Cell(idx).Velocity, scratch[:ndims], g.LeafSize())
}
