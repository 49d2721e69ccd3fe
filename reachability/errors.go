package reachability

import "errors"

var (
	// ErrEmptyGrid indicates the grid has no cells.
	ErrEmptyGrid = errors.New("reachability: grid has no cells")
	// ErrNoSources indicates an empty source set was passed to MinCrossingPath.
	ErrNoSources = errors.New("reachability: source set is empty")
	// ErrNoTargets indicates an empty target set was passed to MinCrossingPath.
	ErrNoTargets = errors.New("reachability: target set is empty")
)
