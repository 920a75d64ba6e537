package interpolate

// Linear is a multi-linear interpolator over a grid of any dimension. It
// shares Grid's bracket search, so it extrapolates in exactly the same cases
// as Cubic.
type Linear struct {
	grid *Grid
}

// NewLinear creates a Linear interpolator over g.
//
// Lookups will occur in O(log |xs|) along each axis, or O(1) for uniformly
// spaced axes.
func NewLinear(g *Grid) *Linear { return &Linear{ grid: g } }

// Grid returns the grid being interpolated.
func (lin *Linear) Grid() *Grid { return lin.grid }

// Interpolate returns the interpolated value at query.
func (lin *Linear) Interpolate(query []float64) (float64, error) {
	idx := make([]int, len(lin.grid.axes))
	if err := lin.grid.BracketAt(query, idx); err != nil { return 0, err }
	return lin.reduce(query, idx, len(idx)-1, 0), nil
}

func (lin *Linear) reduce(query []float64, idx []int, axis, offset int) float64 {
	i1 := idx[axis]
	i2 := i1 + 1
	off1 := offset + i1*lin.grid.strides[axis]
	off2 := offset + i2*lin.grid.strides[axis]

	var v1, v2 float64
	if axis == 0 {
		v1, v2 = lin.grid.values[off1], lin.grid.values[off2]
	} else {
		v1 = lin.reduce(query, idx, axis-1, off1)
		v2 = lin.reduce(query, idx, axis-1, off2)
	}

	x1, x2 := lin.grid.axes[axis][i1], lin.grid.axes[axis][i2]
	return ((v2 - v1) / (x2 - x1)) * (query[axis] - x1) + v1
}
