/*package scatter implements interpolation of functions sampled at scattered
points of a metric space.
*/
package scatter

import (
	"fmt"
)

// Sample is a single point of a scattered data set and the function value
// there.
type Sample[P any] struct {
	Point P
	Value float64
}

// Dataset owns the points and values of a scattered data set. A point's
// identifier is its index, and neighbor finders refer to points only through
// these identifiers.
//
// A Dataset is never modified after construction.
type Dataset[P any] struct {
	points []P
	values []float64
}

// NewDataset creates a data set where values[i] is the function value at
// points[i]. The slices are copied, but the points themselves are not, so
// reference-like point types must not be modified afterwards.
func NewDataset[P any](points []P, values []float64) (*Dataset[P], error) {
	if len(points) != len(values) {
		return nil, fmt.Errorf(
			"%w: len(points) = %d, but len(values) = %d",
			ErrLength, len(points), len(values),
		)
	}
	return &Dataset[P]{
		points: append([]P(nil), points...),
		values: append([]float64(nil), values...),
	}, nil
}

// NewDatasetFromSamples creates a data set from (point, value) pairs.
func NewDatasetFromSamples[P any](samples []Sample[P]) *Dataset[P] {
	ds := &Dataset[P]{
		points: make([]P, len(samples)),
		values: make([]float64, len(samples)),
	}
	for i := range samples {
		ds.points[i], ds.values[i] = samples[i].Point, samples[i].Value
	}
	return ds
}

// FromRows creates a data set of coordinate vectors from a table where the
// last column of every row is the function value and the other columns are
// the coordinates of the point.
func FromRows(rows [][]float64) (*Dataset[[]float64], error) {
	points := make([][]float64, len(rows))
	values := make([]float64, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf(
				"%w: row %d has %d columns, but needs at least 2",
				ErrDimension, i, len(row),
			)
		} else if len(row) != len(rows[0]) {
			return nil, fmt.Errorf(
				"%w: row %d has %d columns, but row 0 has %d",
				ErrDimension, i, len(row), len(rows[0]),
			)
		}

		n := len(row) - 1
		points[i] = append([]float64(nil), row[:n]...)
		values[i] = row[n]
	}
	return &Dataset[[]float64]{ points: points, values: values }, nil
}

// Len returns the number of points in the data set.
func (ds *Dataset[P]) Len() int { return len(ds.points) }

// Point returns the point with identifier id.
func (ds *Dataset[P]) Point(id int) P { return ds.points[id] }

// Value returns the function value at the point with identifier id.
func (ds *Dataset[P]) Value(id int) float64 { return ds.values[id] }

// Points returns the points of the data set, indexed by identifier. The
// returned slice must not be modified.
func (ds *Dataset[P]) Points() []P { return ds.points }
