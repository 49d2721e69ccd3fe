package grid_test

import (
	"math"
	"testing"

	"github.com/jvgomez/eikonal/grid"
)

func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name    string
		dimsize []int
		wantErr error
	}{
		{"NoDims", nil, grid.ErrNoDims},
		{"ZeroDim", []int{3, 0}, grid.ErrBadDimSize},
		{"NegativeDim", []int{3, -1}, grid.ErrBadDimSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.NewGrid(tc.dimsize, 1.0)
			if err != tc.wantErr {
				t.Fatalf("NewGrid(%v) error = %v; want %v", tc.dimsize, err, tc.wantErr)
			}
		})
	}
}

func TestResize_DefaultsAndIndex(t *testing.T) {
	g, err := grid.NewGrid([]int{3, 2}, 1.0)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if g.Size() != 6 {
		t.Fatalf("Size() = %d; want 6", g.Size())
	}
	for i := 0; i < g.Size(); i++ {
		c := g.Cell(i)
		if c.Index != i {
			t.Errorf("cell %d: Index = %d; want %d", i, c.Index, i)
		}
		if !math.IsInf(c.Value, 1) {
			t.Errorf("cell %d: Value = %v; want +Inf", i, c.Value)
		}
		if c.State != grid.Open {
			t.Errorf("cell %d: State = %v; want Open", i, c.State)
		}
	}
	if !g.IsClean() {
		t.Error("IsClean() = false; want true after Resize")
	}
}

func TestCoordIndexRoundTrip(t *testing.T) {
	g, err := grid.NewGrid([]int{4, 3, 2}, 0.5)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	for idx := 0; idx < g.Size(); idx++ {
		coord, err := g.Idx2Coord(idx)
		if err != nil {
			t.Fatalf("Idx2Coord(%d): %v", idx, err)
		}
		back, err := g.Coord2Idx(coord)
		if err != nil {
			t.Fatalf("Coord2Idx(%v): %v", coord, err)
		}
		if back != idx {
			t.Errorf("round-trip idx=%d coord=%v back=%d", idx, coord, back)
		}
	}
}

// TestNeighborCount checks property 7 of the testable properties:
// interior cells have 2N neighbors, corner cells have N, and in general
// 2N - (#axes on a face).
func TestNeighborCount(t *testing.T) {
	g, err := grid.NewGrid([]int{5, 5}, 1.0)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	interior, _ := g.Coord2Idx([]int{2, 2})
	corner, _ := g.Coord2Idx([]int{0, 0})
	edge, _ := g.Coord2Idx([]int{0, 2})

	if got := len(g.Neighbors(interior, nil)); got != 4 {
		t.Errorf("interior neighbors = %d; want 4", got)
	}
	if got := len(g.Neighbors(corner, nil)); got != 2 {
		t.Errorf("corner neighbors = %d; want 2", got)
	}
	if got := len(g.Neighbors(edge, nil)); got != 3 {
		t.Errorf("edge neighbors = %d; want 3", got)
	}
}

func TestNeighborsDeterministicOrder(t *testing.T) {
	g, err := grid.NewGrid([]int{3, 3}, 1.0)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	center, _ := g.Coord2Idx([]int{1, 1})
	want := []int{center - 1, center + 1, center - 3, center + 3}
	got := g.Neighbors(center, nil)
	if len(got) != len(want) {
		t.Fatalf("got %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Neighbors()[%d] = %d; want %d (got=%v want=%v)", i, got[i], want[i], got, want)
		}
	}
}

func TestMinNeighborT(t *testing.T) {
	g, err := grid.NewGrid([]int{3}, 1.0)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g.Cell(0).Value = 2
	g.Cell(2).Value = 5
	if got := g.MinNeighborT(1, 0); got != 2 {
		t.Errorf("MinNeighborT(1,0) = %v; want 2", got)
	}
	g.Cell(1).Value = 7
	if got := g.MinNeighborT(0, 0); got != 7 {
		t.Errorf("MinNeighborT(0,0) = %v; want 7 (only + neighbor, cell 1, exists)", got)
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	g, err := grid.NewGrid([]int{4}, 1.0)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g.Cell(0).Value = 0
	g.Cell(0).State = grid.Frozen
	g.SetDirty()
	g.Clean()
	g.Clean()
	if !g.IsClean() {
		t.Error("IsClean() = false after Clean()")
	}
	if g.Cell(0).State != grid.Open {
		t.Errorf("cell 0 State = %v; want Open after Clean", g.Cell(0).State)
	}
}

func TestSetOccupiedCache(t *testing.T) {
	g, err := grid.NewGrid([]int{3}, 1.0)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g.SetOccupied(1, false)
	occ := g.OccupiedIndices()
	if len(occ) != 1 || occ[0] != 1 {
		t.Fatalf("OccupiedIndices() = %v; want [1]", occ)
	}
	g.SetOccupied(0, false)
	occ = g.OccupiedIndices()
	if len(occ) != 2 {
		t.Fatalf("OccupiedIndices() after second SetOccupied = %v; want len 2", occ)
	}
}
