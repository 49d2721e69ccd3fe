package solver_test

import (
	"math"
	"testing"

	"github.com/jvgomez/eikonal/grid"
	"github.com/jvgomez/eikonal/solver"
)

func TestFIM_MatchesFMM(t *testing.T) {
	dims := []int{8, 8}
	src := 0

	gExact := uniformGrid(t, dims, 1.0)
	sExact := solver.NewFMMDary(2)
	run(t, sExact, gExact, []int{src}, nil)

	gFIM := uniformGrid(t, dims, 1.0)
	sFIM := solver.NewFIM()
	run(t, sFIM, gFIM, []int{src}, nil)

	for i := 0; i < gExact.Size(); i++ {
		want := gExact.Cell(i).Value
		got := gFIM.Cell(i).Value
		if math.Abs(want-got) > 1e-4 {
			t.Errorf("cell %d: FIM T=%v, FMM T=%v", i, got, want)
		}
	}
}

func TestFIM_EveryCellEndsFrozen(t *testing.T) {
	g := uniformGrid(t, []int{5, 5}, 1.0)
	s := solver.NewFIM()
	run(t, s, g, []int{12}, nil)

	for i := 0; i < g.Size(); i++ {
		if g.Cell(i).State != grid.Frozen {
			t.Errorf("cell %d State = %v; want Frozen", i, g.Cell(i).State)
		}
	}
}

func TestFIM_GoalStopsEarly(t *testing.T) {
	g := uniformGrid(t, []int{9, 9}, 1.0)
	goal := 2 + 2*9
	s := solver.NewFIM()
	run(t, s, g, []int{0}, &goal)

	if g.Cell(goal).State != grid.Frozen {
		t.Fatal("goal cell never frozen")
	}
	unvisited := 0
	for i := 0; i < g.Size(); i++ {
		if g.Cell(i).State == grid.Open {
			unvisited++
		}
	}
	if unvisited == 0 {
		t.Error("expected at least some cells to remain unvisited after stopping at a nearby goal")
	}
}
