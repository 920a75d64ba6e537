package interpolate

import (
	"fmt"
)

// Cubic1D is a cubic Hermite interpolator over a one dimensional grid.
//
// Note: this is the interpolation algorithm used by the LHAPDF library for
// alpha_s. LHAPDF interpolates in log(Q^2), so the caller is expected to
// transform the axis the same way.
type Cubic1D struct {
	grid *Grid
	sp   GridSlice
}

// NewCubic1D creates a Cubic1D interpolator. The grid must be one
// dimensional.
func NewCubic1D(g *Grid) *Cubic1D {
	if g.Dim() != 1 {
		panic(fmt.Sprintf("NewCubic1D() given a %d dimensional grid.", g.Dim()))
	}
	return &Cubic1D{ grid: g, sp: GridSlice{X: g.axes[0], Y: g.values} }
}

// Grid returns the grid being interpolated.
func (c *Cubic1D) Grid() *Grid { return c.grid }

// Interpolate returns the interpolated value at x, or an *ExtrapolationError
// if x is outside the grid.
func (c *Cubic1D) Interpolate(x float64) (float64, error) {
	i, err := c.grid.bracketAxis(0, x)
	if err != nil { return 0, err }
	return c.sp.Hermite(i, x), nil
}

// Cubic is a cubic Hermite interpolator over a grid of any dimension.
//
// Higher dimensions are handled by reduction along the last axis: the
// remaining axes are interpolated at the four last-axis points around the
// query, and those four values are then treated as a 1D slice and
// interpolated with the same Hermite scheme as Cubic1D. This is not a true
// bicubic (or tricubic) spline, since the slopes along the last axis come from
// already-interpolated values rather than from partial derivatives, and it
// must stay that way to reproduce the outputs of the reference codes.
type Cubic struct {
	grid *Grid
}

// NewCubic creates a Cubic interpolator over g.
func NewCubic(g *Grid) *Cubic { return &Cubic{ grid: g } }

// Grid returns the grid being interpolated.
func (c *Cubic) Grid() *Grid { return c.grid }

// Interpolate returns the interpolated value at query, which must contain
// one coordinate per grid axis.
func (c *Cubic) Interpolate(query []float64) (float64, error) {
	var (
		buf [8]int
		idx []int
	)
	if len(c.grid.axes) <= len(buf) {
		idx = buf[:len(c.grid.axes)]
	} else {
		idx = make([]int, len(c.grid.axes))
	}

	if err := c.grid.BracketAt(query, idx); err != nil { return 0, err }
	return c.reduce(query, idx, len(idx)-1, 0), nil
}

// reduce interpolates axes [0, axis] at query, with all higher axes fixed at
// the points contributing to offset.
func (c *Cubic) reduce(query []float64, idx []int, axis, offset int) float64 {
	xs, i := c.grid.axes[axis], idx[axis]
	stride := c.grid.strides[axis]

	// Hermite reads point i-1 only if i > 0 and point i+2 only if i is not
	// the last bracket, so there is no need to evaluate anything else.
	lo, hi := i, i+1
	if i > 0 { lo = i - 1 }
	if i < len(xs)-2 { hi = i + 2 }

	var buf [4]float64
	ys := buf[:hi-lo+1]
	for j := lo; j <= hi; j++ {
		off := offset + j*stride
		if axis == 0 {
			ys[j-lo] = c.grid.values[off]
		} else {
			ys[j-lo] = c.reduce(query, idx, axis-1, off)
		}
	}

	sp := GridSlice{X: xs[lo: hi+1], Y: ys}
	return sp.Hermite(i-lo, query[axis])
}
