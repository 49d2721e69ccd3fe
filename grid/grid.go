package grid

import (
	"errors"
	"fmt"
	"math"
)

// MaxDims bounds the dimension count a Grid can hold. It exists only to
// size small stack-allocated scratch arrays in the neighbor-enumeration
// hot path (Go has no const generics, so a true std::array<N>-style
// compile-time dimension count, as the teacher's C++ origin uses, is not
// expressible; this is the closest idiomatic substitute — see DESIGN.md).
const MaxDims = 8

// Sentinel errors for Grid construction and use.
var (
	// ErrNoDims indicates Resize was called with an empty dimension list.
	ErrNoDims = errors.New("grid: dimsize must have at least one dimension")
	// ErrBadDimSize indicates a non-positive dimension size.
	ErrBadDimSize = errors.New("grid: every dimension size must be positive")
	// ErrTooManyDims indicates more dimensions than MaxDims were requested.
	ErrTooManyDims = fmt.Errorf("grid: dimension count exceeds MaxDims=%d", MaxDims)
	// ErrIndexRange indicates an out-of-range flat index was passed to a
	// coordinate or neighbor operation.
	ErrIndexRange = errors.New("grid: index out of range")
)

// Grid is a flat, row-major N-dimensional Cartesian container of Cell
// values. Dimension 0 is fastest-varying. See package doc for the indexing
// convention.
type Grid struct {
	cells    []Cell
	dimsize  []int // size of each dimension
	d        []int // prefix products: d[i] = product(dimsize[0..i])
	leafsize float64
	clean    bool
	occupied []int // cached flat indices of occupied==false (impassable) cells
}

// NewGrid constructs a Grid with the given per-dimension sizes and leaf
// size (the real edge length shared by every dimension). It is equivalent
// to calling Resize on a zero-value Grid.
func NewGrid(dimsize []int, leafsize float64) (*Grid, error) {
	g := &Grid{leafsize: leafsize}
	if err := g.Resize(dimsize); err != nil {
		return nil, err
	}
	return g, nil
}

// Resize sets the grid's shape, (re)allocates cells to their defaults,
// assigns each cell its own flat Index, recomputes the prefix-product
// table d, and marks the grid clean. Complexity: O(size).
func (g *Grid) Resize(dimsize []int) error {
	if len(dimsize) == 0 {
		return ErrNoDims
	}
	if len(dimsize) > MaxDims {
		return ErrTooManyDims
	}
	for _, n := range dimsize {
		if n <= 0 {
			return ErrBadDimSize
		}
	}

	g.dimsize = append([]int(nil), dimsize...)
	g.d = make([]int, len(dimsize))
	size := 1
	for i, n := range dimsize {
		size *= n
		g.d[i] = size
	}

	g.cells = make([]Cell, size)
	for i := range g.cells {
		g.cells[i].Index = i
		g.cells[i].Occupied = true
		g.cells[i].SetDefault()
	}
	g.occupied = nil
	g.clean = true
	return nil
}

// Size returns the total number of cells, d[N-1].
func (g *Grid) Size() int { return len(g.cells) }

// NDims returns the number of dimensions.
func (g *Grid) NDims() int { return len(g.dimsize) }

// DimSizes returns the size of each dimension.
func (g *Grid) DimSizes() []int { return append([]int(nil), g.dimsize...) }

// LeafSize returns the real edge length shared by every dimension.
func (g *Grid) LeafSize() float64 { return g.leafsize }

// SetLeafSize overrides the real edge length.
func (g *Grid) SetLeafSize(h float64) { g.leafsize = h }

// IsClean reports whether the grid is in its default, never-solved state.
func (g *Grid) IsClean() bool { return g.clean }

// SetDirty marks the grid as having been used by a solver; called by
// Solver.Setup implementations.
func (g *Grid) SetDirty() { g.clean = false }

// SetClean marks the grid clean without touching any cell, unlike Clean.
// Multi-wave pipelines (package fm2) reset Value/State by hand between
// waves while deliberately preserving velocities Clean would overwrite,
// then call this to satisfy the next wave's Setup precondition.
func (g *Grid) SetClean() { g.clean = true }

// Cell returns a pointer to the cell at flat index idx.
func (g *Grid) Cell(idx int) *Cell { return &g.cells[idx] }

// MaxFiniteValue returns the largest finite Value across all cells, or 0
// if the grid is empty or every cell is +Inf.
func (g *Grid) MaxFiniteValue() float64 {
	max := 0.0
	for i := range g.cells {
		v := g.cells[i].Value
		if !math.IsInf(v, 1) && v > max {
			max = v
		}
	}
	return max
}

// step returns the flat-index stride for dimension k: d[k-1], or 1 for k==0.
func (g *Grid) step(k int) int {
	if k == 0 {
		return 1
	}
	return g.d[k-1]
}

// Neighbors appends the axis-aligned neighbors of idx (up to 2*NDims) to
// dst and returns the extended slice. For each dimension k in increasing
// order, the "-" neighbor is emitted before the "+" neighbor, matching the
// deterministic ordering spec.md requires. A neighbor along dimension k
// exists iff idx±step lies in the same row of dimension k, i.e.
// (idx±step)/d[k] == idx/d[k]; this is the grid's only boundary check.
// No diagonal neighbors are ever produced.
func (g *Grid) Neighbors(idx int, dst []int) []int {
	for k := 0; k < len(g.dimsize); k++ {
		step := g.step(k)
		row := idx / g.d[k]

		if m := idx - step; m >= 0 && m/g.d[k] == row {
			dst = append(dst, m)
		}
		if p := idx + step; p < len(g.cells) && p/g.d[k] == row {
			dst = append(dst, p)
		}
	}
	return dst
}

// MinNeighborT returns the minimum arrival time among idx's neighbors
// along dimension dim (one or two cells), or +Inf if dim has no neighbor
// in range.
func (g *Grid) MinNeighborT(idx, dim int) float64 {
	step := g.step(dim)
	row := idx / g.d[dim]
	min := math.Inf(1)

	if m := idx - step; m >= 0 && m/g.d[dim] == row {
		if v := g.cells[m].Value; v < min {
			min = v
		}
	}
	if p := idx + step; p < len(g.cells) && p/g.d[dim] == row {
		if v := g.cells[p].Value; v < min {
			min = v
		}
	}
	return min
}

// Coord2Idx converts an N-tuple of coordinates (one per dimension, dim 0
// first) to a flat index.
func (g *Grid) Coord2Idx(coord []int) (int, error) {
	if len(coord) != len(g.dimsize) {
		return 0, fmt.Errorf("%w: expected %d coordinates, got %d", ErrIndexRange, len(g.dimsize), len(coord))
	}
	idx := 0
	stride := 1
	for k, c := range coord {
		if c < 0 || c >= g.dimsize[k] {
			return 0, fmt.Errorf("%w: coordinate %d out of range [0,%d)", ErrIndexRange, c, g.dimsize[k])
		}
		idx += c * stride
		stride *= g.dimsize[k]
	}
	return idx, nil
}

// Idx2Coord is the inverse of Coord2Idx.
func (g *Grid) Idx2Coord(idx int) ([]int, error) {
	if idx < 0 || idx >= len(g.cells) {
		return nil, fmt.Errorf("%w: %d", ErrIndexRange, idx)
	}
	coord := make([]int, len(g.dimsize))
	for k := range g.dimsize {
		coord[k] = idx % g.dimsize[k]
		idx /= g.dimsize[k]
	}
	return coord, nil
}

// Clean restores every cell to its default state via Cell.SetDefault,
// preserving occupancy, and marks the grid clean. Idempotent.
func (g *Grid) Clean() {
	for i := range g.cells {
		g.cells[i].SetDefault()
	}
	g.clean = true
}

// SetOccupied sets the occupancy of the cell at idx, invalidating the
// cached occupied-index list.
func (g *Grid) SetOccupied(idx int, occupied bool) {
	g.cells[idx].Occupied = occupied
	g.occupied = nil
}

// OccupiedIndices returns the flat indices of every impassable (occupancy
// false) cell, computed once and cached until the next SetOccupied call.
func (g *Grid) OccupiedIndices() []int {
	if g.occupied != nil {
		return g.occupied
	}
	out := make([]int, 0)
	for i := range g.cells {
		if !g.cells[i].Occupied {
			out = append(out, i)
		}
	}
	g.occupied = out
	return out
}
