package benchmark

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jvgomez/eikonal/grid"
	"github.com/jvgomez/eikonal/pathextract"
)

// WriteLog writes results in the tab-separated benchmark.log format from
// spec.md §6: runID, solverName, ndims, dim sizes (space-separated),
// time_ms.
func WriteLog(w io.Writer, results []RunResult) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		dims := make([]string, len(r.DimSizes))
		for k, d := range r.DimSizes {
			dims[k] = strconv.Itoa(d)
		}
		fmt.Fprintf(bw, "%d\t%s\t%d\t%s\t%s\n",
			r.RunID, r.SolverName, r.NDims, strings.Join(dims, " "), formatFloat(r.DurationMS))
	}
	return bw.Flush()
}

// WriteGridValues writes g's arrival-time field in the grid value file
// format from spec.md §6: a cell-type tag, the leafsize, the dimension
// count and sizes, then one value per line in flat index order.
func WriteGridValues(w io.Writer, g *grid.Grid, cellTag string) error {
	return writeGridField(w, g, cellTag, func(c *grid.Cell) float64 { return c.Value })
}

// WriteGridVelocities writes g's velocity field using the same layout
// as WriteGridValues, per spec.md §6's "second format identical except
// emitting velocity".
func WriteGridVelocities(w io.Writer, g *grid.Grid, cellTag string) error {
	return writeGridField(w, g, cellTag, func(c *grid.Cell) float64 { return c.Velocity })
}

func writeGridField(w io.Writer, g *grid.Grid, cellTag string, field func(*grid.Cell) float64) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, cellTag)
	fmt.Fprintln(bw, formatFloat(g.LeafSize()))
	dimsizes := g.DimSizes()
	fmt.Fprintln(bw, len(dimsizes))
	for _, d := range dimsizes {
		fmt.Fprintln(bw, d)
	}
	for i := 0; i < g.Size(); i++ {
		fmt.Fprintln(bw, formatFloat(field(g.Cell(i))))
	}
	return bw.Flush()
}

// ReadGridValues reads a grid value file and constructs a fresh Grid
// whose Value field reproduces the written field exactly; Occupied and
// Velocity are left at their defaults, since the file carries neither.
func ReadGridValues(r io.Reader) (g *grid.Grid, cellTag string, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	cellTag, err = nextToken(sc)
	if err != nil {
		return nil, "", err
	}
	leafsizeLine, err := nextToken(sc)
	if err != nil {
		return nil, "", err
	}
	leafsize, err := strconv.ParseFloat(leafsizeLine, 64)
	if err != nil {
		return nil, "", err
	}
	nLine, err := nextToken(sc)
	if err != nil {
		return nil, "", err
	}
	n, err := strconv.Atoi(nLine)
	if err != nil {
		return nil, "", err
	}

	dimsize := make([]int, n)
	for k := 0; k < n; k++ {
		line, err := nextToken(sc)
		if err != nil {
			return nil, "", err
		}
		d, err := strconv.Atoi(line)
		if err != nil {
			return nil, "", err
		}
		dimsize[k] = d
	}

	g, err = grid.NewGrid(dimsize, leafsize)
	if err != nil {
		return nil, "", err
	}

	for i := 0; i < g.Size(); i++ {
		line, err := nextToken(sc)
		if err != nil {
			return nil, "", err
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, "", err
		}
		g.Cell(i).Value = v
	}
	return g, cellTag, nil
}

// WritePath writes a gradient-descent path in the path file format from
// spec.md §6: leafsize, dimension count, dim sizes, then one
// whitespace-separated coordinate tuple per waypoint.
func WritePath(w io.Writer, g *grid.Grid, p *pathextract.Path) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, formatFloat(g.LeafSize()))
	dimsizes := g.DimSizes()
	fmt.Fprintln(bw, len(dimsizes))
	for _, d := range dimsizes {
		fmt.Fprintln(bw, d)
	}
	for _, point := range p.Points {
		parts := make([]string, len(point))
		for k, v := range point {
			parts[k] = formatFloat(v)
		}
		fmt.Fprintln(bw, strings.Join(parts, " "))
	}
	return bw.Flush()
}

// ReadOccupancyMap reads a 2D occupancy map (spec.md §6): header
// "leafsize N width height", then width*height 0/1 tokens in row-major
// order. A token is read directly as the cell's passable flag (1==clear,
// 0==obstacle), matching the original format's occupancy_ convention
// (default 1, true means clear). Only N==2 is supported; the map format
// has no third dimension.
func ReadOccupancyMap(r io.Reader) (*grid.Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	leafsize, err := nextFloat(sc)
	if err != nil {
		return nil, err
	}
	n, err := nextInt(sc)
	if err != nil {
		return nil, err
	}
	if n != 2 {
		return nil, fmt.Errorf("benchmark: occupancy map supports N=2, got %d", n)
	}
	width, err := nextInt(sc)
	if err != nil {
		return nil, err
	}
	height, err := nextInt(sc)
	if err != nil {
		return nil, err
	}

	g, err := grid.NewGrid([]int{width, height}, leafsize)
	if err != nil {
		return nil, err
	}
	for i := 0; i < g.Size(); i++ {
		tok, err := nextInt(sc)
		if err != nil {
			return nil, err
		}
		g.SetOccupied(i, tok != 0)
	}
	return g, nil
}

func nextToken(sc *bufio.Scanner) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(sc.Text()), nil
}

func nextInt(sc *bufio.Scanner) (int, error) {
	tok, err := nextToken(sc)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(tok)
}

func nextFloat(sc *bufio.Scanner) (float64, error) {
	tok, err := nextToken(sc)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(tok, 64)
}

// formatFloat renders a float64 with enough precision to round-trip
// exactly through strconv.ParseFloat (property 6's grid I/O guarantee).
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
