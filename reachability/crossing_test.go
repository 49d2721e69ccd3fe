package reachability_test

import (
	"testing"

	"github.com/jvgomez/eikonal/reachability"
)

func TestMinCrossingPath_ZeroCostWhenAlreadyConnected(t *testing.T) {
	g := gridFromRows(t, [][]int{
		{1, 1, 1, 1},
	})
	a, _ := g.Coord2Idx([]int{0, 0})
	b, _ := g.Coord2Idx([]int{3, 0})

	path, cost, err := reachability.MinCrossingPath(g, []int{a}, []int{b})
	if err != nil {
		t.Fatalf("MinCrossingPath: %v", err)
	}
	if cost != 0 {
		t.Fatalf("cost = %d, want 0", cost)
	}
	if len(path) == 0 || path[0] != a || path[len(path)-1] != b {
		t.Fatalf("path = %v, want endpoints %d and %d", path, a, b)
	}
}

func TestMinCrossingPath_CountsObstacleCrossings(t *testing.T) {
	// A single obstacle column separates start from goal; crossing it
	// costs exactly one conversion.
	g := gridFromRows(t, [][]int{
		{1, 0, 1},
	})
	a, _ := g.Coord2Idx([]int{0, 0})
	b, _ := g.Coord2Idx([]int{2, 0})

	_, cost, err := reachability.MinCrossingPath(g, []int{a}, []int{b})
	if err != nil {
		t.Fatalf("MinCrossingPath: %v", err)
	}
	if cost != 1 {
		t.Fatalf("cost = %d, want 1", cost)
	}
}

func TestMinCrossingPath_RejectsEmptySets(t *testing.T) {
	g := gridFromRows(t, [][]int{{1, 1}})
	if _, _, err := reachability.MinCrossingPath(g, nil, []int{0}); err == nil {
		t.Fatalf("expected an error for an empty source set")
	}
	if _, _, err := reachability.MinCrossingPath(g, []int{0}, nil); err == nil {
		t.Fatalf("expected an error for an empty target set")
	}
}
