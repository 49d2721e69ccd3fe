package grid

import "math"

// State is the lifecycle stage of a Cell during a solver's propagation.
type State uint8

const (
	// Open cells have never been touched by the wavefront.
	Open State = iota
	// Narrow cells hold a tentative arrival time and sit in the active
	// narrow-band structure.
	Narrow
	// Frozen cells hold a final arrival time; solvers never revisit them.
	Frozen
)

// String renders the state for logging and test failure messages.
func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Narrow:
		return "narrow"
	case Frozen:
		return "frozen"
	default:
		return "unknown"
	}
}

// Cell is one grid point: its arrival time, propagation speed, occupancy,
// lifecycle state and flat index, plus the small set of per-method slots
// a handful of solver variants need (UFMM's bucket, FMM*'s cached
// heuristic). Keeping every solver's working state on one struct avoids an
// interface-per-cell-kind split: every variant in package solver touches
// the same fields, so a plain struct (as the teacher uses for
// core.Vertex/core.Edge) is the idiomatic shape here, not a sum type.
type Cell struct {
	Value     float64 // arrival time T; +Inf until first relaxed or made a source
	Velocity  float64 // propagation speed F in (0,1]; 0 means impassable
	Occupied  bool    // false forces Velocity to 0
	State     State
	Index     int // this cell's own flat index, set by Grid at construction
	Bucket    int // UFMM: index of the ring bucket this cell currently sits in
	Heuristic float64 // FMM*: cached admissible lower bound to the goal
}

// IsSource reports whether c has been finalized as a zero-arrival-time
// source cell.
func (c *Cell) IsSource() bool {
	return c.State == Frozen && c.Value == 0
}

// SetDefault restores Value to +Inf and State to Open, and recomputes
// Velocity from Occupied. It does not touch Index, Bucket, or Heuristic,
// which are positional/derived and reset explicitly by their owners.
func (c *Cell) SetDefault() {
	c.Value = math.Inf(1)
	c.State = Open
	if c.Occupied {
		c.Velocity = 1
	} else {
		c.Velocity = 0
	}
}

// Impassable reports whether the cell can never be relaxed: zero velocity
// or not occupied (occupancy false forces velocity to 0 by convention, see
// SetDefault, but callers that mutate Velocity directly must still be
// checked against both fields).
func (c *Cell) Impassable() bool {
	return c.Velocity == 0 || !c.Occupied
}
