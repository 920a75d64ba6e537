package interpolate

import (
	"fmt"
)

// Grid is a table of function values sampled on the outer product of D
// sorted axes. The values are flattened in row-major order, so the last axis
// varies fastest.
//
// A Grid is never modified after NewGrid returns and may be shared between
// goroutines. Its accessors return copies.
type Grid struct {
	axes   [][]float64
	values []float64

	strides []int

	// Usually the input axes are uniform. These are our estimates of the
	// point spacing along each axis.
	dxs []float64
}

// NewGrid creates a grid from a list of axes and the flattened values at
// every grid point. Every axis must have at least two points and be strictly
// increasing, and len(vals) must be the product of the axis lengths.
//
// The inputs are copied, so the caller may reuse them afterwards.
func NewGrid(axes [][]float64, vals []float64) (*Grid, error) {
	if len(axes) == 0 {
		return nil, fmt.Errorf("%w: grid has no axes", ErrDimension)
	}

	g := &Grid{}
	g.axes = make([][]float64, len(axes))
	g.strides = make([]int, len(axes))
	g.dxs = make([]float64, len(axes))

	n := 1
	for i := len(axes) - 1; i >= 0; i-- {
		xs := axes[i]
		if len(xs) < 2 {
			return nil, fmt.Errorf(
				"%w: len(axes[%d]) = %d", ErrAxisTooShort, i, len(xs),
			)
		}
		for j := 0; j < len(xs)-1; j++ {
			if !(xs[j] < xs[j+1]) {
				return nil, fmt.Errorf(
					"%w: axes[%d][%d] = %g, but axes[%d][%d] = %g",
					ErrUnsorted, i, j, xs[j], i, j+1, xs[j+1],
				)
			}
		}

		g.axes[i] = append([]float64(nil), xs...)
		g.strides[i] = n
		g.dxs[i] = (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1)
		n *= len(xs)
	}

	if n != len(vals) {
		return nil, fmt.Errorf(
			"%w: len(vals) = %d, but the axes have %d points",
			ErrShape, len(vals), n,
		)
	}
	g.values = append([]float64(nil), vals...)

	return g, nil
}

// UniformAxis returns n points starting at x0 and separated by dx.
func UniformAxis(x0, dx float64, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs { xs[i] = x0 + float64(i)*dx }
	return xs
}

// NewUniformGrid creates a grid whose i-th axis has n[i] points starting at
// x0[i] and separated by dx[i].
func NewUniformGrid(
	x0, dx []float64, n []int, vals []float64,
) (*Grid, error) {
	if len(x0) != len(n) || len(dx) != len(n) {
		return nil, fmt.Errorf(
			"%w: len(x0) = %d, len(dx) = %d, len(n) = %d",
			ErrDimension, len(x0), len(dx), len(n),
		)
	}

	axes := make([][]float64, len(n))
	for i := range axes { axes[i] = UniformAxis(x0[i], dx[i], n[i]) }
	return NewGrid(axes, vals)
}

// Axis returns a copy of the points along the given axis.
func (g *Grid) Axis(i int) []float64 {
	return append([]float64(nil), g.axes[i]...)
}

// Values returns a copy of the flattened grid values.
func (g *Grid) Values() []float64 {
	return append([]float64(nil), g.values...)
}

// Dim returns the number of axes of the grid.
func (g *Grid) Dim() int { return len(g.axes) }

// Shape returns the number of points along each axis.
func (g *Grid) Shape() []int {
	shape := make([]int, len(g.axes))
	for i := range g.axes { shape[i] = len(g.axes[i]) }
	return shape
}

// Bracket returns, for each axis, the largest index i such that
// axes[i] <= query < axes[i+1].
//
// A coordinate equal to the first point of an axis is inside the grid, but a
// coordinate equal to the last point is not: no bracket [i, i+1) contains it,
// so it is reported as an extrapolation above the maximum. Axes are checked
// in order and the first one out of range determines the error.
func (g *Grid) Bracket(query []float64) ([]int, error) {
	idx := make([]int, len(g.axes))
	if err := g.BracketAt(query, idx); err != nil { return nil, err }
	return idx, nil
}

// BracketAt is Bracket, but writes the indices to out.
func (g *Grid) BracketAt(query []float64, out []int) error {
	if len(query) != len(g.axes) {
		return fmt.Errorf(
			"%w: len(query) = %d, but the grid has %d axes",
			ErrDimension, len(query), len(g.axes),
		)
	}

	for axis, x := range query {
		i, err := g.bracketAxis(axis, x)
		if err != nil { return err }
		out[axis] = i
	}
	return nil
}

func (g *Grid) bracketAxis(axis int, x float64) (int, error) {
	xs := g.axes[axis]
	if x >= xs[len(xs)-1] {
		return 0, &ExtrapolationError{Axis: axis, Value: x, Above: true}
	} else if !(x >= xs[0]) {
		return 0, &ExtrapolationError{Axis: axis, Value: x, Above: false}
	}
	return bsearch(xs, g.dxs[axis], x), nil
}

// bsearch returns the index of the largest element in xs which is smaller
// than or equal to x. x must be in [xs[0], xs[len(xs)-1]).
func bsearch(xs []float64, dx, x float64) int {
	// Guess under the assumption of uniform spacing.
	guess := int((x - xs[0]) / dx)
	if guess >= 0 && guess < len(xs)-1 && xs[guess] <= x && x < xs[guess+1] {
		return guess
	}

	// Binary search. xs[lo] <= x < xs[hi] throughout.
	lo, hi := 0, len(xs)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// Slice returns the 1D projection of the grid along axis, with every other
// axis fixed at the indices given in idx. idx[axis] is ignored.
func (g *Grid) Slice(axis int, idx []int) GridSlice {
	if len(idx) != len(g.axes) {
		panic(fmt.Sprintf(
			"len(idx) = %d, but the grid has %d axes", len(idx), len(g.axes),
		))
	}

	offset := 0
	for i := range idx {
		if i != axis { offset += idx[i] * g.strides[i] }
	}

	xs := g.Axis(axis)
	ys := make([]float64, len(xs))
	for i := range ys { ys[i] = g.values[offset+i*g.strides[axis]] }

	return GridSlice{X: xs, Y: ys}
}
