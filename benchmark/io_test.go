package benchmark_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jvgomez/eikonal/benchmark"
	"github.com/jvgomez/eikonal/grid"
	"github.com/jvgomez/eikonal/pathextract"
)

// Property 6: writing and re-reading a grid value file reproduces the T
// field exactly.
func TestGridValuesRoundTrip(t *testing.T) {
	g, err := grid.NewGrid([]int{4, 3}, 0.5)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	for i := 0; i < g.Size(); i++ {
		g.Cell(i).Value = float64(i) * 1.25
	}

	var buf bytes.Buffer
	if err := benchmark.WriteGridValues(&buf, g, "eikonal"); err != nil {
		t.Fatalf("WriteGridValues: %v", err)
	}

	g2, tag, err := benchmark.ReadGridValues(&buf)
	if err != nil {
		t.Fatalf("ReadGridValues: %v", err)
	}
	if tag != "eikonal" {
		t.Fatalf("tag = %q, want eikonal", tag)
	}
	if g2.LeafSize() != g.LeafSize() {
		t.Fatalf("LeafSize = %v, want %v", g2.LeafSize(), g.LeafSize())
	}
	if g2.Size() != g.Size() {
		t.Fatalf("Size = %d, want %d", g2.Size(), g.Size())
	}
	for i := 0; i < g.Size(); i++ {
		if g2.Cell(i).Value != g.Cell(i).Value {
			t.Fatalf("cell %d: Value = %v, want %v", i, g2.Cell(i).Value, g.Cell(i).Value)
		}
	}
}

func TestWritePathFormat(t *testing.T) {
	g, err := grid.NewGrid([]int{5, 5}, 1.0)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	p := &pathextract.Path{
		Points:     [][]float64{{4, 4}, {3, 3}, {0, 0}},
		Velocities: []float64{1, 1, 1},
	}

	var buf bytes.Buffer
	if err := benchmark.WritePath(&buf, g, p); err != nil {
		t.Fatalf("WritePath: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// leafsize, N, 2 dim sizes, 3 waypoints = 7 lines.
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7: %q", len(lines), lines)
	}
	if lines[0] != "1" {
		t.Fatalf("leafsize line = %q, want 1", lines[0])
	}
	if lines[1] != "2" {
		t.Fatalf("ndims line = %q, want 2", lines[1])
	}
	if lines[4] != "4 4" {
		t.Fatalf("first waypoint = %q, want \"4 4\"", lines[4])
	}
	if lines[6] != "0 0" {
		t.Fatalf("last waypoint = %q, want \"0 0\"", lines[6])
	}
}

func TestReadOccupancyMap(t *testing.T) {
	// 3x2 map (width=3, height=2): row y=0 has a clear cell at x=1, the
	// rest obstacles; row y=1 is entirely obstacle. Tokens are read
	// directly as the passable flag: 1 == clear, 0 == obstacle.
	const body = "1.0 2 3 2\n" +
		"0 1 0\n" +
		"0 0 0\n"

	g, err := benchmark.ReadOccupancyMap(strings.NewReader(body))
	if err != nil {
		t.Fatalf("ReadOccupancyMap: %v", err)
	}
	if g.Size() != 6 {
		t.Fatalf("Size = %d, want 6", g.Size())
	}
	if dims := g.DimSizes(); dims[0] != 3 || dims[1] != 2 {
		t.Fatalf("DimSizes = %v, want [3 2]", dims)
	}

	free, err := g.Coord2Idx([]int{1, 0})
	if err != nil {
		t.Fatalf("Coord2Idx: %v", err)
	}
	if !g.Cell(free).Occupied {
		t.Fatalf("cell (1,0) Occupied = false, want true (clear)")
	}

	obstacle, err := g.Coord2Idx([]int{0, 0})
	if err != nil {
		t.Fatalf("Coord2Idx: %v", err)
	}
	if g.Cell(obstacle).Occupied {
		t.Fatalf("cell (0,0) Occupied = true, want false (obstacle)")
	}
}
