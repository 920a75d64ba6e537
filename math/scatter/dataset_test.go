package scatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDataset(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 0}, {0, 1}}
	values := []float64{1, 2, 3}
	ds, err := NewDataset(points, values)
	require.NoError(t, err)

	values[0] = -1
	points[1] = []float64{5, 5}
	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, 1.0, ds.Value(0))
	assert.Equal(t, []float64{1, 0}, ds.Point(1))

	_, err = NewDataset(points, values[:2])
	assert.ErrorIs(t, err, ErrLength)
}

func TestNewDatasetFromSamples(t *testing.T) {
	ds := NewDatasetFromSamples([]Sample[float64]{
		{Point: 0.5, Value: 1}, {Point: 1.5, Value: 2},
	})
	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, []float64{0.5, 1.5}, ds.Points())
	assert.Equal(t, 2.0, ds.Value(1))
}

func TestFromRows(t *testing.T) {
	ds, err := FromRows([][]float64{
		{0, 0, 10},
		{1, 2, 20},
	})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0}, {1, 2}}, ds.Points())
	assert.Equal(t, 20.0, ds.Value(1))

	_, err = FromRows([][]float64{{0, 1}, {0, 1, 2}})
	assert.ErrorIs(t, err, ErrDimension)
	_, err = FromRows([][]float64{{1}})
	assert.ErrorIs(t, err, ErrDimension)
}
