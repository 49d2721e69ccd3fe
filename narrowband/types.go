package narrowband

import "github.com/jvgomez/eikonal/grid"

// Queue is the shared interface every narrow-band priority structure
// implements. Ordering key is Cell.Value (the tentative arrival time).
type Queue interface {
	// Push inserts c, which must not already be in the queue.
	Push(c *grid.Cell)
	// PopMin removes and returns the flat index of the minimum-value cell.
	// Behavior is undefined if the queue is empty.
	PopMin() int
	// Increase notifies the queue that c.Value has decreased (despite the
	// name, inherited from the teacher's boost::heap::increase, which is
	// a min-heap "priority increase" — i.e. the cell moves toward the
	// front). c must already be in the queue.
	Increase(c *grid.Cell)
	// Empty reports whether the queue holds no entries.
	Empty() bool
	// Size returns the number of entries held. UnsortedQueue and
	// UntidyBucketQueue count the stale duplicates Increase leaves behind
	// until PopMin discards them.
	Size() int
	// Clear removes every entry, returning the queue to its zero state.
	Clear()
}
