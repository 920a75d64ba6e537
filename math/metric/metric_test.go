package metric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinkowski(t *testing.T) {
	table := []struct{
		m Minkowski
		a, b []float64
		dist float64
	} {
		{Euclidean, []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{Euclidean, []float64{1, 2, 3}, []float64{1, 2, 1}, 2},
		{Euclidean, []float64{0, 0}, []float64{3, 4}, 5},
		{Manhattan, []float64{0, 0}, []float64{3, -4}, 7},
		{Chebyshev, []float64{0, 0}, []float64{3, -4}, 4},
	}

	for i, test := range table {
		assert.Equal(t, test.dist, test.m.Distance(test.a, test.b), "%d", i+1)
		assert.Equal(t, test.dist, test.m.Distance(test.b, test.a), "%d", i+1)
	}
}

func TestMinkowskiLengthMismatch(t *testing.T) {
	assert.Panics(t, func() {
		Euclidean.Distance([]float64{1}, []float64{1, 2})
	})
}

func TestFunc(t *testing.T) {
	var m Metric[float64] = Func[float64](func(a, b float64) float64 {
		return math.Abs(a - b)
	})
	assert.Equal(t, 0.0, m.Distance(2, 2))
	assert.Equal(t, 1.5, m.Distance(2, 0.5))
	assert.Equal(t, 1.5, m.Distance(0.5, 2))
}

func TestNamed(t *testing.T) {
	for name, want := range map[string]Minkowski{
		"": Euclidean, "euclidean": Euclidean,
		"manhattan": Manhattan, "chebyshev": Chebyshev,
	} {
		m, err := Named(name)
		assert.NoError(t, err)
		assert.Equal(t, want, m)
	}

	_, err := Named("cosine")
	assert.Error(t, err)
}
