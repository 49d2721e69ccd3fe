package narrowband

import "github.com/jvgomez/eikonal/grid"

// unsortedEntry snapshots a cell's value at push time. A snapshot, not a
// live read of cell.Value, is required: Increase pushes a second entry
// for the same *grid.Cell pointer, and if ordering read the pointer's
// current value, mutating it in place would retroactively corrupt the
// heap invariant for the first, now-stale, entry.
type unsortedEntry struct {
	value float64
	cell  *grid.Cell
}

// UnsortedQueue is the lazy-decrease-key priority queue SFMM (Simplified
// FMM) uses: Push is O(log n), but Increase is implemented as *another*
// Push, leaving stale duplicate entries in the heap. PopMin discards any
// popped entry whose cell has already been frozen by the time it
// surfaces. This is a direct port of the "duplicates allowed" strategy
// the teacher documents in dijkstra.go's nodePQ comments, applied here as
// the narrow-band container itself rather than a single call's internal
// detail.
type UnsortedQueue struct {
	entries []unsortedEntry
}

// NewUnsortedQueue returns an empty UnsortedQueue presized for a grid of
// capacity cells (duplicates mean the true high-water mark can exceed
// capacity, but capacity is a reasonable starting allocation).
func NewUnsortedQueue(capacity int) *UnsortedQueue {
	return &UnsortedQueue{entries: make([]unsortedEntry, 0, capacity)}
}

func (q *UnsortedQueue) Size() int   { return len(q.entries) }
func (q *UnsortedQueue) Empty() bool { return len(q.entries) == 0 }

func (q *UnsortedQueue) Clear() {
	q.entries = q.entries[:0]
}

func (q *UnsortedQueue) Push(c *grid.Cell) {
	q.entries = append(q.entries, unsortedEntry{value: c.Value, cell: c})
	q.siftUp(len(q.entries) - 1)
}

// Increase pushes a duplicate entry for c at its new, lower value; the
// stale original entry is discarded lazily when it surfaces in PopMin.
func (q *UnsortedQueue) Increase(c *grid.Cell) {
	q.Push(c)
}

// PopMin removes and returns the flat index of the minimum-value live
// entry, skipping (but not returning) any popped entry whose cell is
// already grid.Frozen — the "stale duplicate" case callers must expect
// from the lazy decrease-key strategy. If the queue drains while only
// frozen entries remain, the last one popped is returned.
func (q *UnsortedQueue) PopMin() int {
	for {
		min := q.entries[0]
		last := len(q.entries) - 1
		q.entries[0] = q.entries[last]
		q.entries = q.entries[:last]
		if last > 0 {
			q.siftDown(0)
		}
		if min.cell.State != grid.Frozen {
			return min.cell.Index
		}
		if len(q.entries) == 0 {
			return min.cell.Index
		}
	}
}

func (q *UnsortedQueue) less(i, j int) bool {
	return q.entries[i].value < q.entries[j].value
}

func (q *UnsortedQueue) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(i, parent) {
			return
		}
		q.entries[i], q.entries[parent] = q.entries[parent], q.entries[i]
		i = parent
	}
}

func (q *UnsortedQueue) siftDown(i int) {
	n := len(q.entries)
	for {
		l, r := 2*i+1, 2*i+2
		smallest := i
		if l < n && q.less(l, smallest) {
			smallest = l
		}
		if r < n && q.less(r, smallest) {
			smallest = r
		}
		if smallest == i {
			return
		}
		q.entries[i], q.entries[smallest] = q.entries[smallest], q.entries[i]
		i = smallest
	}
}
