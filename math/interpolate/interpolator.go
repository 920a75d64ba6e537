/*package interpolate implements interpolators for functions tabulated on
axis-aligned grids of arbitrary dimension.
*/
package interpolate

// Interpolator evaluates a tabulated function at a query point of type Q.
// Grid interpolators take a float64 (1D) or a []float64 with one coordinate
// per axis. None of the interpolators extrapolate: queries outside the
// tabulated range return an error instead.
//
// Interpolators do not cache anything and are safe for concurrent use.
type Interpolator[Q any] interface {
	Interpolate(query Q) (float64, error)
}

var (
	_ Interpolator[float64]   = &Cubic1D{}
	_ Interpolator[[]float64] = &Cubic{}
	_ Interpolator[[]float64] = &Linear{}
)

// EvalAll evaluates in at all the given queries. If an output array is given,
// the output is written to that array (the array is still returned as a
// convenience). If more than one output array is provided, only the first is
// used.
//
// EvalAll stops at the first query which fails and returns its error along
// with the results computed up to that point.
func EvalAll[Q any](in Interpolator[Q], qs []Q, out ...[]float64) ([]float64, error) {
	if len(out) == 0 { out = [][]float64{ make([]float64, len(qs)) } }
	for i, q := range qs {
		v, err := in.Interpolate(q)
		if err != nil { return out[0][:i], err }
		out[0][i] = v
	}
	return out[0], nil
}
