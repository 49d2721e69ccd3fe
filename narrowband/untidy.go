package narrowband

import "github.com/jvgomez/eikonal/grid"

// DefaultBuckets and DefaultIncrement are UFMM's default untidy queue
// parameters, chosen to match the values the original C++ benchmark
// hardcodes for its UFMM variant.
const (
	DefaultBuckets   = 1000
	DefaultIncrement = 2.0
)

// UntidyBucketQueue is UFMM's approximate priority queue: cells are
// dropped into one of a fixed ring of buckets by value/increment, and
// PopMin returns an arbitrary member of the lowest non-empty bucket
// rather than the true global minimum. This trades exactness for O(1)
// amortized push/pop, which is the entire premise of the "untidy" FMM
// variant. Like UnsortedQueue, Increase is a duplicate Push; stale
// entries are skipped lazily on pop.
type UntidyBucketQueue struct {
	delta   float64
	buckets [][]*grid.Cell
	current int
	size    int
}

// NewUntidyBucketQueue returns an empty queue with numBuckets ring slots
// and the given value increment per bucket. numBuckets<=0 or delta<=0
// fall back to DefaultBuckets/DefaultIncrement.
func NewUntidyBucketQueue(numBuckets int, delta float64) *UntidyBucketQueue {
	if numBuckets <= 0 {
		numBuckets = DefaultBuckets
	}
	if delta <= 0 {
		delta = DefaultIncrement
	}
	return &UntidyBucketQueue{
		delta:   delta,
		buckets: make([][]*grid.Cell, numBuckets),
	}
}

func (q *UntidyBucketQueue) Size() int   { return q.size }
func (q *UntidyBucketQueue) Empty() bool { return q.size == 0 }

func (q *UntidyBucketQueue) Clear() {
	for i := range q.buckets {
		q.buckets[i] = nil
	}
	q.current = 0
	q.size = 0
}

func (q *UntidyBucketQueue) bucketOf(value float64) int {
	if value < 0 {
		return q.current
	}
	n := len(q.buckets)
	b := int(value/q.delta) % n
	return b
}

func (q *UntidyBucketQueue) Push(c *grid.Cell) {
	b := q.bucketOf(c.Value)
	q.buckets[b] = append(q.buckets[b], c)
	q.size++
}

// Increase pushes a duplicate entry for c in its new (lower) bucket; the
// stale higher-bucket entry is discarded lazily when PopMin encounters it.
func (q *UntidyBucketQueue) Increase(c *grid.Cell) {
	q.Push(c)
}

// PopMin scans forward from the current bucket for the next non-empty
// one, walking the ring at most once per call, and pops an arbitrary
// (LIFO) live entry from it — skipping any entry already frozen by a
// prior lazy Increase duplicate. If the queue drains while only frozen
// entries remain, the last one popped is returned.
func (q *UntidyBucketQueue) PopMin() int {
	n := len(q.buckets)
	for {
		for len(q.buckets[q.current]) == 0 {
			q.current = (q.current + 1) % n
		}
		bucket := q.buckets[q.current]
		last := len(bucket) - 1
		c := bucket[last]
		q.buckets[q.current] = bucket[:last]
		q.size--
		if c.State != grid.Frozen {
			return c.Index
		}
		if q.size == 0 {
			return c.Index
		}
	}
}
