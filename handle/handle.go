/*package handle exposes grid interpolators through opaque integer handles,
the shape expected by foreign-function and scripting bindings.

Every handle returned by a constructor must be passed to Destroy exactly
once. Destroying a handle twice, or using it after it was destroyed, returns
ErrInvalidHandle instead of corrupting anything.
*/
package handle

import (
	"errors"
	"fmt"
	"sync"

	"github.com/phil-mansfield/ndinterp/math/interpolate"
)

// Handle identifies an interpolator owned by this package. The zero Handle
// is never valid.
type Handle uint64

var ErrInvalidHandle = errors.New("invalid interpolator handle")

var (
	mu      sync.RWMutex
	next    Handle = 1
	cubics  = map[Handle]*interpolate.Cubic{}
)

// NewCubic creates a cubic interpolator from one sorted coordinate array per
// axis and the flattened, row-major values at every grid point. The inputs
// are copied, so the caller only needs to keep them alive for the duration
// of the call.
func NewCubic(axes [][]float64, values []float64) (Handle, error) {
	g, err := interpolate.NewGrid(axes, values)
	if err != nil { return 0, err }

	mu.Lock()
	defer mu.Unlock()

	h := next
	next++
	cubics[h] = interpolate.NewCubic(g)
	return h, nil
}

// NewCubic1D creates a one dimensional cubic interpolator.
func NewCubic1D(xs, values []float64) (Handle, error) {
	return NewCubic([][]float64{xs}, values)
}

// NewCubic2D creates a two dimensional cubic interpolator.
// values[i*len(x2s) + j] is the value at (x1s[i], x2s[j]).
func NewCubic2D(x1s, x2s, values []float64) (Handle, error) {
	return NewCubic([][]float64{x1s, x2s}, values)
}

// Interpolate evaluates the interpolator identified by h at query, which has
// one coordinate per axis. Queries outside the grid return an error matching
// interpolate.ErrExtrapolationAbove or interpolate.ErrExtrapolationBelow.
func Interpolate(h Handle, query ...float64) (float64, error) {
	mu.RLock()
	c, ok := cubics[h]
	mu.RUnlock()

	if !ok { return 0, fmt.Errorf("%w: %d", ErrInvalidHandle, h) }
	return c.Interpolate(query)
}

// Destroy releases the interpolator identified by h.
func Destroy(h Handle) error {
	mu.Lock()
	defer mu.Unlock()

	if _, ok := cubics[h]; !ok {
		return fmt.Errorf("%w: %d", ErrInvalidHandle, h)
	}
	delete(cubics, h)
	return nil
}

// Live returns the number of handles which have not been destroyed.
func Live() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(cubics)
}
