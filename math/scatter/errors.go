package scatter

import "errors"

var (
	ErrLength      = errors.New("points and values have different lengths")
	ErrDimension   = errors.New("points have inconsistent dimensions")
	ErrGraph       = errors.New("invalid neighbor graph")
	ErrNeighbors   = errors.New("neighbor count must be positive")
	ErrNoFinder    = errors.New("no neighbor finder configured")
	ErrNoNeighbors = errors.New("neighbor finder returned no points")
)
