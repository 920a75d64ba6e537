package interpolate

// GridSlice is a 1D view of a grid: the points of a single axis, X, and the
// values along that axis, Y, with all other axes held fixed.
type GridSlice struct {
	X, Y []float64
}

// Derivative computes the finite difference dy/dx between points i-1 and i.
func (s GridSlice) Derivative(i int) float64 {
	return (s.Y[i] - s.Y[i-1]) / (s.X[i] - s.X[i-1])
}

// CentralDerivative estimates the derivative at point i as the average of the
// differences just below and just above it.
func (s GridSlice) CentralDerivative(i int) float64 {
	return 0.5 * (s.Derivative(i+1) + s.Derivative(i))
}

// Hermite evaluates the cubic Hermite spline on the bracket [X[i], X[i+1]]
// at x. This is the scheme LHAPDF uses for alpha_s.
//
// The slopes at the two ends of the bracket are central derivatives, except
// in the first (last) bracket, where a central derivative would need a point
// outside the slice and the finite difference across the bracket itself is
// used instead.
func (s GridSlice) Hermite(i int, x float64) float64 {
	dx := s.X[i+1] - s.X[i]

	var ml, mu float64
	if i == 0 {
		ml = dx * s.Derivative(i+1)
	} else {
		ml = dx * s.CentralDerivative(i)
	}
	if i == len(s.X)-2 {
		mu = dx * s.Derivative(i+1)
	} else {
		mu = dx * s.CentralDerivative(i+1)
	}

	t := (x - s.X[i]) / dx
	t2 := t * t
	t3 := t2 * t

	p0 := s.Y[i] * (2*t3 - 3*t2 + 1)
	p1 := s.Y[i+1] * (-2*t3 + 3*t2)
	m0 := ml * (t3 - 2*t2 + t)
	m1 := mu * (t3 - t2)

	return p0 + p1 + m0 + m1
}
