package solver

import "errors"

// Sentinel errors returned by every solver's Setup/Compute lifecycle.
var (
	// ErrNilGrid indicates SetGrid was never called, or was called with nil.
	ErrNilGrid = errors.New("solver: grid is nil")

	// ErrGridNotClean indicates Setup was called against a grid still
	// carrying state from a previous, un-Reset run.
	ErrGridNotClean = errors.New("solver: grid is not clean")

	// ErrNoSources indicates SetSources was called with an empty slice.
	ErrNoSources = errors.New("solver: no source cells given")

	// ErrSourceOutOfRange indicates a source index outside the grid.
	ErrSourceOutOfRange = errors.New("solver: source index out of range")

	// ErrSourceImpassable indicates a source cell has zero velocity.
	ErrSourceImpassable = errors.New("solver: source cell is impassable")

	// ErrGoalRequired indicates a goal-consuming solver (FMM*, FM²) was
	// set up without a goal cell.
	ErrGoalRequired = errors.New("solver: goal cell required")

	// ErrGoalOutOfRange indicates a goal index outside the grid.
	ErrGoalOutOfRange = errors.New("solver: goal index out of range")

	// ErrNotSetup indicates Compute was called before Setup.
	ErrNotSetup = errors.New("solver: Setup must run before Compute")
)
