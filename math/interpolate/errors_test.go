package interpolate

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtrapolationError(t *testing.T) {
	above := &ExtrapolationError{Axis: 1, Value: 2.5, Above: true}
	below := &ExtrapolationError{Axis: 0, Value: -1, Above: false}

	assert.Equal(t, "The value queried (2.5) is above the maximum of axis 1.", above.Error())
	assert.Equal(t, "The value queried (-1) is below the minimum of axis 0.", below.Error())

	wrapped := fmt.Errorf("evaluating alpha_s: %w", above)
	assert.True(t, errors.Is(wrapped, ErrExtrapolationAbove))
	assert.False(t, errors.Is(wrapped, ErrExtrapolationBelow))
	assert.True(t, errors.Is(below, ErrExtrapolationBelow))
	assert.False(t, errors.Is(below, ErrExtrapolationAbove))
}
