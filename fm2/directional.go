package fm2

import (
	"math"

	"github.com/jvgomez/eikonal/grid"
)

// Directional biases the normalized velocity field by heading before the
// time wave runs, so the resulting path favors travel roughly along
// Heading rather than the shortest safe route. This is a deliberate
// simplification of original_source/fm2directional/fm2directional.hpp,
// which tracks a second directional-time field end to end through its
// own init()/updateNode() overrides; that dual-field machinery does not
// fit this repo's single-T-field Cell, so the bias is applied once, as a
// post-hoc weighting of the already-normalized velocity map, rather than
// propagated through the wave itself.
type Directional struct {
	// Heading is the preferred direction of travel, one component per
	// grid dimension. It need not be normalized.
	Heading []float64
	// Weight controls how strongly Heading is favored: 0 disables the
	// bias entirely, 1 fully saturates it. Values are clamped to [0,1].
	Weight float64
}

// apply rescales every passable cell's velocity by a factor in
// [1-Weight, 1+Weight] depending on how well the direction from start to
// that cell aligns with Heading, then re-clamps to [0,1].
func (d *Directional) apply(g *grid.Grid, start int) {
	w := d.Weight
	if w < 0 {
		w = 0
	}
	if w > 1 {
		w = 1
	}
	if w == 0 || len(d.Heading) == 0 {
		return
	}

	headingNorm := norm(d.Heading)
	if headingNorm == 0 {
		return
	}

	startCoord, err := g.Idx2Coord(start)
	if err != nil {
		return
	}
	ndims := g.NDims()

	diff := make([]float64, ndims)
	for i := 0; i < g.Size(); i++ {
		c := g.Cell(i)
		if c.Impassable() {
			continue
		}
		coord, err := g.Idx2Coord(i)
		if err != nil {
			continue
		}
		for k := 0; k < ndims; k++ {
			diff[k] = float64(coord[k] - startCoord[k])
		}
		dn := norm(diff)
		if dn == 0 {
			continue
		}
		cos := dot(diff, d.Heading) / (dn * headingNorm)
		factor := 1 + w*cos
		vel := c.Velocity * factor
		if vel < 0 {
			vel = 0
		}
		if vel > 1 {
			vel = 1
		}
		c.Velocity = vel
	}
}

func dot(a, b []float64) float64 {
	s := 0.0
	for k := range a {
		s += a[k] * b[k]
	}
	return s
}

func norm(a []float64) float64 {
	return math.Sqrt(dot(a, a))
}
