package interpolate

import (
	"errors"
	"fmt"
)

var (
	// ErrExtrapolationAbove and ErrExtrapolationBelow are matched by
	// errors.Is against the *ExtrapolationError returned by grid lookups.
	ErrExtrapolationAbove = errors.New("value queried is above the maximum")
	ErrExtrapolationBelow = errors.New("value queried is below the minimum")

	ErrDimension    = errors.New("query dimension does not match grid")
	ErrShape        = errors.New("value array does not match grid shape")
	ErrAxisTooShort = errors.New("grid axis has fewer than 2 points")
	ErrUnsorted     = errors.New("grid axis is not strictly increasing")
)

// ExtrapolationError reports a query coordinate outside the sampled range of
// a grid axis. Value is the query coordinate exactly as it was given.
type ExtrapolationError struct {
	Axis  int
	Value float64
	Above bool
}

func (e *ExtrapolationError) Error() string {
	if e.Above {
		return fmt.Sprintf(
			"The value queried (%g) is above the maximum of axis %d.",
			e.Value, e.Axis,
		)
	}
	return fmt.Sprintf(
		"The value queried (%g) is below the minimum of axis %d.",
		e.Value, e.Axis,
	)
}

func (e *ExtrapolationError) Is(target error) bool {
	if e.Above {
		return target == ErrExtrapolationAbove
	}
	return target == ErrExtrapolationBelow
}
