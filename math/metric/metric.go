/*package metric defines distances between points of scattered data sets.
*/
package metric

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Metric measures the distance between two points of type P. Implementations
// must satisfy Distance(a, a) == 0 and Distance(a, b) == Distance(b, a) >= 0.
// The triangle inequality is not required, so any symmetric dissimilarity
// works, although the interpolators built on top of it are only as good as
// the dissimilarity is.
type Metric[P any] interface {
	Distance(a, b P) float64
}

// Func turns a plain function into a Metric.
type Func[P any] func(a, b P) float64

func (f Func[P]) Distance(a, b P) float64 { return f(a, b) }

// Minkowski is the L-norm distance between two equal-length coordinate
// vectors. L = 2 is the Euclidean distance, L = 1 the Manhattan distance and
// L = +Inf the Chebyshev distance.
type Minkowski struct {
	L float64
}

var (
	Euclidean = Minkowski{L: 2}
	Manhattan = Minkowski{L: 1}
	Chebyshev = Minkowski{L: math.Inf(+1)}
)

var (
	_ Metric[[]float64] = Minkowski{}
	_ Metric[[]float64] = Func[[]float64](nil)
)

// Distance panics if a and b have different lengths.
func (m Minkowski) Distance(a, b []float64) float64 {
	if len(a) != len(b) {
		panic(fmt.Sprintf(
			"len(a) = %d, but len(b) = %d", len(a), len(b),
		))
	}
	return floats.Distance(a, b, m.L)
}

// Named returns the coordinate metric with the given name: "euclidean",
// "manhattan" or "chebyshev".
func Named(name string) (Minkowski, error) {
	switch name {
	case "euclidean", "":
		return Euclidean, nil
	case "manhattan":
		return Manhattan, nil
	case "chebyshev":
		return Chebyshev, nil
	}
	return Minkowski{}, fmt.Errorf("Unrecognized metric name '%s'.", name)
}
