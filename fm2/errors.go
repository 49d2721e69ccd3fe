package fm2

import "errors"

var (
	// ErrNilGrid indicates SetGrid was never called, or was called with nil.
	ErrNilGrid = errors.New("fm2: grid is nil")

	// ErrStartImpassable indicates the configured start cell has no
	// propagation speed.
	ErrStartImpassable = errors.New("fm2: start cell is impassable")

	// ErrGoalImpassable indicates the configured goal cell has no
	// propagation speed.
	ErrGoalImpassable = errors.New("fm2: goal cell is impassable")

	// ErrOutOfRange indicates a start or goal index outside the grid.
	ErrOutOfRange = errors.New("fm2: index out of range")

	// ErrNotSetup indicates Compute was called before SetStartGoal.
	ErrNotSetup = errors.New("fm2: SetGrid and SetStartGoal must run before Compute")
)
