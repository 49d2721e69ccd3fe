package pathextract

import "errors"

// Sentinel errors returned by Descend.
var (
	// ErrNilGrid indicates Descend was called with a nil grid.
	ErrNilGrid = errors.New("pathextract: grid is nil")

	// ErrStartOutOfRange indicates the start index is outside the grid.
	ErrStartOutOfRange = errors.New("pathextract: start index out of range")

	// ErrNonFiniteGradient indicates every dimension's gradient
	// collapsed to zero, or a NaN gradient arose from opposing infinite
	// neighbors, before a source was reached.
	ErrNonFiniteGradient = errors.New("pathextract: gradient is non-finite or degenerate")

	// ErrLeftGrid indicates descent reached a cell with no in-bounds
	// neighbor along some dimension, or stepped past the grid boundary,
	// before a source was reached.
	ErrLeftGrid = errors.New("pathextract: descent left the grid bounds")

	// ErrMaxStepsExceeded indicates the configured step cap was reached
	// before a source cell was found.
	ErrMaxStepsExceeded = errors.New("pathextract: exceeded maximum step count without reaching a source")
)
