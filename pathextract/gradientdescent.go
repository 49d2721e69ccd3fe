package pathextract

import (
	"math"

	"github.com/jvgomez/eikonal/grid"
)

// Path is the sequence of continuous points gradient descent visited,
// one per step including the starting and final cell, paired with the
// propagation speed at each point's nearest cell.
type Path struct {
	Points     [][]float64
	Velocities []float64
}

// Options configures Descend. The zero value runs with the paper's
// defaults: Step 1, MaxSteps sum(dims)*4.
type Options struct {
	// Step is the length of each descent step. <= 0 defaults to 1.
	Step float64
	// MaxSteps caps the number of descent steps taken before
	// ErrMaxStepsExceeded is returned. <= 0 defaults to 4 times the sum
	// of the grid's dimension sizes, proportional to its diameter.
	MaxSteps int
}

// Descend walks from start down the gradient of g's arrival-time field
// until it reaches a source cell (Value == 0), returning every visited
// point and the propagation speed there. g must already hold a completed
// T field (e.g. from a solver.Solver or fm2.FM2Solver's Compute).
//
// Unlike the method this is grounded on, Descend never runs unbounded or
// indexes out of range: a non-finite gradient, a step leaving the grid,
// or exceeding MaxSteps all return an error alongside the partial path
// accumulated so far.
func Descend(g *grid.Grid, start int, opts Options) (*Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	n := g.Size()
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	step := opts.Step
	if step <= 0 {
		step = 1
	}
	maxSteps := opts.MaxSteps
	if maxSteps <= 0 {
		dimsizes := g.DimSizes()
		total := 0
		for _, d := range dimsizes {
			total += d
		}
		maxSteps = total * 4
	}

	ndims := g.NDims()
	dimsizes := g.DimSizes()

	coord, err := g.Idx2Coord(start)
	if err != nil {
		return nil, err
	}
	point := make([]float64, ndims)
	for k, c := range coord {
		point[k] = float64(c)
	}

	idx := start
	path := &Path{
		Points:     [][]float64{append([]float64(nil), point...)},
		Velocities: []float64{g.Cell(idx).Velocity},
	}

	grads := make([]float64, ndims)
	plusCoord := make([]int, ndims)
	minusCoord := make([]int, ndims)

	for steps := 0; g.Cell(idx).Value != 0; steps++ {
		if steps >= maxSteps {
			return path, ErrMaxStepsExceeded
		}

		for k := 0; k < ndims; k++ {
			copy(plusCoord, coord)
			copy(minusCoord, coord)
			plusCoord[k]++
			minusCoord[k]--
			if plusCoord[k] >= dimsizes[k] || minusCoord[k] < 0 {
				return path, ErrLeftGrid
			}
			plusIdx, err := g.Coord2Idx(plusCoord)
			if err != nil {
				return path, err
			}
			minusIdx, err := g.Coord2Idx(minusCoord)
			if err != nil {
				return path, err
			}

			gk := (g.Cell(plusIdx).Value - g.Cell(minusIdx).Value) / 2
			switch {
			case math.IsNaN(gk):
				return path, ErrNonFiniteGradient
			case math.IsInf(gk, 1):
				gk = 1
			case math.IsInf(gk, -1):
				gk = -1
			}
			grads[k] = gk
		}

		m := 0.0
		for _, gk := range grads {
			if a := math.Abs(gk); a > m {
				m = a
			}
		}
		if m == 0 {
			return path, ErrNonFiniteGradient
		}

		for k := 0; k < ndims; k++ {
			point[k] -= step * grads[k] / m
			coord[k] = int(math.Round(point[k]))
			if coord[k] < 0 || coord[k] >= dimsizes[k] {
				return path, ErrLeftGrid
			}
		}
		idx, err = g.Coord2Idx(coord)
		if err != nil {
			return path, err
		}

		path.Points = append(path.Points, append([]float64(nil), point...))
		path.Velocities = append(path.Velocities, g.Cell(idx).Velocity)
	}

	return path, nil
}
