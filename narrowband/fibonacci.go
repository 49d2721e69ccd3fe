package narrowband

import "github.com/jvgomez/eikonal/grid"

// fibNode is one tree node of a Fibonacci heap: a circular doubly-linked
// list of siblings plus a parent/child pointer, the classic
// Cormen-Leiserson-Rivest-Stein layout.
type fibNode struct {
	cell   *grid.Cell
	parent *fibNode
	child  *fibNode
	left   *fibNode
	right  *fibNode
	degree int
	mark   bool
}

// FibHeap is a Fibonacci heap over *grid.Cell keyed by Cell.Value. Push
// and Increase (decrease-key) are O(1) amortized; PopMin is O(log n)
// amortized via consolidation. container/heap cannot express this
// complexity class, hence the hand-rolled implementation — see
// package doc.
type FibHeap struct {
	min    *fibNode
	count  int
	lookup []*fibNode // lookup[cell.Index] = node, or nil if absent
}

// NewFibHeap returns an empty FibHeap presized for a grid of capacity cells.
func NewFibHeap(capacity int) *FibHeap {
	return &FibHeap{lookup: make([]*fibNode, capacity)}
}

func (h *FibHeap) Size() int   { return h.count }
func (h *FibHeap) Empty() bool { return h.count == 0 }

func (h *FibHeap) Clear() {
	h.min = nil
	h.count = 0
	for i := range h.lookup {
		h.lookup[i] = nil
	}
}

// insertRoot splices n into the root list as a standalone circular list
// of one, or merges it next to h.min if the root list is non-empty.
func (h *FibHeap) insertRoot(n *fibNode) {
	n.parent = nil
	if h.min == nil {
		n.left, n.right = n, n
		h.min = n
		return
	}
	n.left = h.min
	n.right = h.min.right
	h.min.right.left = n
	h.min.right = n
	if n.cell.Value < h.min.cell.Value {
		h.min = n
	}
}

// removeFromList unlinks n from whatever circular sibling list it is in.
func removeFromList(n *fibNode) {
	n.left.right = n.right
	n.right.left = n.left
	n.left, n.right = n, n
}

func (h *FibHeap) Push(c *grid.Cell) {
	n := &fibNode{cell: c, left: nil, right: nil}
	h.lookup[c.Index] = n
	h.insertRoot(n)
	h.count++
}

func (h *FibHeap) PopMin() int {
	min := h.min
	idx := min.cell.Index

	// Promote every child of min to the root list.
	if min.child != nil {
		c := min.child
		for {
			next := c.right
			removeFromList(c)
			h.insertRoot(c)
			c.parent = nil
			if next == min.child {
				break
			}
			c = next
		}
	}

	// Capture a surviving root-list neighbor before unlinking min: any
	// promoted child or pre-existing sibling is a valid place to resume
	// scanning from once min itself is gone.
	next := min.right
	removeFromList(min)
	h.lookup[idx] = nil
	h.count--

	if h.count == 0 {
		h.min = nil
	} else {
		h.min = next
		h.consolidate()
	}

	return idx
}

// consolidate merges root-list trees of equal degree until every root has
// a distinct degree, then rescans for the new minimum. O(log n) amortized.
func (h *FibHeap) consolidate() {
	if h.min == nil {
		return
	}
	maxDegree := 2*bitsLen(h.count) + 2
	table := make([]*fibNode, maxDegree)

	// Collect root list into a slice first since we mutate links below.
	var roots []*fibNode
	start := h.min
	n := start
	for {
		roots = append(roots, n)
		n = n.right
		if n == start {
			break
		}
	}

	for _, x := range roots {
		removeFromList(x)
		x.parent = nil
		d := x.degree
		for table[d] != nil {
			y := table[d]
			if y.cell.Value < x.cell.Value {
				x, y = y, x
			}
			h.link(y, x)
			table[d] = nil
			d++
		}
		table[d] = x
	}

	h.min = nil
	for _, x := range table {
		if x == nil {
			continue
		}
		if h.min == nil {
			x.left, x.right = x, x
			h.min = x
		} else {
			x.left = h.min
			x.right = h.min.right
			h.min.right.left = x
			h.min.right = x
			if x.cell.Value < h.min.cell.Value {
				h.min = x
			}
		}
	}
}

// link makes y a child of x (x.Value <= y.Value).
func (h *FibHeap) link(y, x *fibNode) {
	removeFromList(y)
	y.parent = x
	y.mark = false
	if x.child == nil {
		x.child = y
		y.left, y.right = y, y
	} else {
		y.left = x.child
		y.right = x.child.right
		x.child.right.left = y
		x.child.right = y
	}
	x.degree++
}

// Increase performs a Fibonacci-heap decrease-key on c (the cell's value
// has just been lowered by the caller). If the heap property is violated
// against the parent, n is cut and spliced into the root list, with
// cascading cuts climbing toward the root.
func (h *FibHeap) Increase(c *grid.Cell) {
	n := h.lookup[c.Index]
	p := n.parent
	if p != nil && n.cell.Value < p.cell.Value {
		h.cut(n, p)
		h.cascadingCut(p)
	}
	if n.cell.Value < h.min.cell.Value {
		h.min = n
	}
}

func (h *FibHeap) cut(n, p *fibNode) {
	if n.right == n {
		p.child = nil
	} else {
		if p.child == n {
			p.child = n.right
		}
		removeFromList(n)
	}
	p.degree--
	h.insertRoot(n)
	n.mark = false
}

func (h *FibHeap) cascadingCut(n *fibNode) {
	p := n.parent
	if p == nil {
		return
	}
	if !n.mark {
		n.mark = true
		return
	}
	h.cut(n, p)
	h.cascadingCut(p)
}

// bitsLen returns floor(log2(n))+1 for n > 0, 0 for n == 0 — used only to
// size the consolidation table generously.
func bitsLen(n int) int {
	bits := 0
	for n > 0 {
		bits++
		n >>= 1
	}
	return bits
}
