package reachability

import (
	"sort"

	"github.com/jvgomez/eikonal/grid"
)

// Components partitions a grid's passable cells into connected regions,
// using grid.Grid.Neighbors for adjacency (axis-aligned, no diagonals,
// any number of dimensions). Impassable cells never belong to a
// component. The returned slices are sorted by increasing flat index
// within each component; component order follows the index of each
// component's first-visited cell.
//
// Complexity: O(N*d) time, O(N) memory, where N is the grid size and d
// is the maximum neighbor count per cell.
func Components(g *grid.Grid) [][]int {
	n := g.Size()
	if n == 0 {
		return nil
	}

	visited := make([]bool, n)
	var components [][]int
	var neighbors []int

	for start := 0; start < n; start++ {
		if visited[start] || !g.Cell(start).Occupied {
			continue
		}
		visited[start] = true
		queue := []int{start}
		var comp []int
		for qi := 0; qi < len(queue); qi++ {
			idx := queue[qi]
			comp = append(comp, idx)

			neighbors = neighbors[:0]
			neighbors = g.Neighbors(idx, neighbors)
			for _, nb := range neighbors {
				if visited[nb] || !g.Cell(nb).Occupied {
					continue
				}
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
		sort.Ints(comp)
		components = append(components, comp)
	}

	return components
}

// SameComponent reports whether a and b are both passable and lie in
// the same connected region of passable cells.
func SameComponent(g *grid.Grid, a, b int) bool {
	if !g.Cell(a).Occupied || !g.Cell(b).Occupied {
		return false
	}
	for _, comp := range Components(g) {
		var sawA, sawB bool
		for _, idx := range comp {
			if idx == a {
				sawA = true
			}
			if idx == b {
				sawB = true
			}
		}
		if sawA {
			return sawB
		}
	}
	return false
}
