package solver_test

import (
	"testing"

	"github.com/jvgomez/eikonal/grid"
	"github.com/jvgomez/eikonal/solver"
)

// uniformGrid returns a fresh grid of the given shape; every cell starts
// occupied with velocity 1, so this doubles as the "uniform speed field"
// fixture every solver test in this package builds on.
func uniformGrid(t *testing.T, dimsize []int, leafsize float64) *grid.Grid {
	t.Helper()
	g, err := grid.NewGrid(dimsize, leafsize)
	if err != nil {
		t.Fatalf("NewGrid(%v, %v) error: %v", dimsize, leafsize, err)
	}
	return g
}

// run wires g/sources/goal into s and runs it to completion, failing the
// test on any lifecycle error.
func run(t *testing.T, s solver.Solver, g *grid.Grid, sources []int, goal *int) {
	t.Helper()
	if err := s.SetGrid(g); err != nil {
		t.Fatalf("SetGrid: %v", err)
	}
	if err := s.SetSources(sources, goal); err != nil {
		t.Fatalf("SetSources: %v", err)
	}
	if err := s.Setup(); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if err := s.Compute(); err != nil {
		t.Fatalf("Compute: %v", err)
	}
}

// frozenValues snapshots every cell's Value after a run, indexed
// by flat index, for comparing two solvers against each other.
func frozenValues(g *grid.Grid) []float64 {
	out := make([]float64, g.Size())
	for i := range out {
		out[i] = g.Cell(i).Value
	}
	return out
}
