package benchmark

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/jvgomez/eikonal/grid"
)

// SaveHeightmapPNG renders a 2D grid field as a grayscale PNG, scaling
// finite values linearly into [0,255] and rendering +Inf (unreached
// cells) as black. Grid Y=0 is the bottom row; image row 0 is the top,
// so rows are written back to front, per spec.md §6's occupancy-map
// note. Supplements original_source/io/gridplotter.hpp, which this
// package's rest of the I/O format is otherwise grounded on.
func SaveHeightmapPNG(w io.Writer, g *grid.Grid, field func(*grid.Cell) float64) error {
	dimsizes := g.DimSizes()
	if len(dimsizes) != 2 {
		return fmt.Errorf("benchmark: SaveHeightmapPNG supports 2D grids, got %d dimensions", len(dimsizes))
	}
	width, height := dimsizes[0], dimsizes[1]

	min, max := math.Inf(1), math.Inf(-1)
	for i := 0; i < g.Size(); i++ {
		v := field(g.Cell(i))
		if math.IsInf(v, 0) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	span := max - min
	if span <= 0 {
		span = 1
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx, err := g.Coord2Idx([]int{x, y})
			if err != nil {
				return err
			}
			v := field(g.Cell(idx))
			var gray uint8
			if !math.IsInf(v, 0) {
				gray = uint8(255 * (v - min) / span)
			}
			// Flip vertically: grid Y=0 is the bottom row.
			img.SetGray(x, height-1-y, color.Gray{Y: gray})
		}
	}
	return png.Encode(w, img)
}
