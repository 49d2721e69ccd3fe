package narrowband

import "github.com/jvgomez/eikonal/grid"

// DaryHeap is a generalized binary/d-ary min-heap over *grid.Cell, keyed
// by Cell.Value. It keeps a handle table (flat index -> heap slot) so
// Increase is a true O(log n) decrease-key, grounded on the teacher's
// dijkstra.nodePQ container/heap adapter but extended with back-pointers
// per spec.md's requirement that Increase not rely on lazy duplicates.
type DaryHeap struct {
	arity   int
	entries []*grid.Cell
	pos     []int // pos[cell.Index] = slot in entries, or -1 if absent
}

// NewDaryHeap returns an empty DaryHeap with the given arity (2 for a
// classic binary heap) presized for a grid of capacity cells, per §5's
// requirement that narrow-band containers are presized at setup time.
func NewDaryHeap(arity, capacity int) *DaryHeap {
	if arity < 2 {
		arity = 2
	}
	pos := make([]int, capacity)
	for i := range pos {
		pos[i] = -1
	}
	return &DaryHeap{arity: arity, entries: make([]*grid.Cell, 0, capacity), pos: pos}
}

func (h *DaryHeap) Size() int   { return len(h.entries) }
func (h *DaryHeap) Empty() bool { return len(h.entries) == 0 }

func (h *DaryHeap) Clear() {
	for _, c := range h.entries {
		h.pos[c.Index] = -1
	}
	h.entries = h.entries[:0]
}

func (h *DaryHeap) Push(c *grid.Cell) {
	h.entries = append(h.entries, c)
	i := len(h.entries) - 1
	h.pos[c.Index] = i
	h.siftUp(i)
}

func (h *DaryHeap) PopMin() int {
	min := h.entries[0]
	last := len(h.entries) - 1
	h.swap(0, last)
	h.entries = h.entries[:last]
	h.pos[min.Index] = -1
	if last > 0 {
		h.siftDown(0)
	}
	return min.Index
}

func (h *DaryHeap) Increase(c *grid.Cell) {
	i := h.pos[c.Index]
	h.siftUp(i)
}

func (h *DaryHeap) less(i, j int) bool {
	return h.entries[i].Value < h.entries[j].Value
}

func (h *DaryHeap) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.pos[h.entries[i].Index] = i
	h.pos[h.entries[j].Index] = j
}

func (h *DaryHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / h.arity
		if !h.less(i, parent) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *DaryHeap) siftDown(i int) {
	n := len(h.entries)
	for {
		firstChild := i*h.arity + 1
		if firstChild >= n {
			return
		}
		smallest := firstChild
		for c := firstChild + 1; c < firstChild+h.arity && c < n; c++ {
			if h.less(c, smallest) {
				smallest = c
			}
		}
		if !h.less(smallest, i) {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}
