package scatter

import (
	"fmt"

	"github.com/phil-mansfield/ndinterp/math/interpolate"
	"github.com/phil-mansfield/ndinterp/math/metric"
)

// ExactDistance is the distance below which a query is considered to be the
// same point as a sample, and the sample's value is returned unchanged.
const ExactDistance = 1e-10

// InvDist interpolates scattered data by inverse-distance weighting: the
// value at a query is the average of the values at its neighbors, each
// weighted by the reciprocal of its distance to the query.
//
// The result only passes through the samples because of the exact-match
// cutoff at ExactDistance. Everywhere else it is a weighted average.
type InvDist[P any] struct {
	ds     *Dataset[P]
	metric metric.Metric[P]
	finder Finder[P]
}

var (
	_ interpolate.Interpolator[[]float64] = &InvDist[[]float64]{}
)

// NewInvDist creates an inverse-distance interpolator. finder may be nil and
// set later with SetFinder.
func NewInvDist[P any](
	ds *Dataset[P], m metric.Metric[P], finder Finder[P],
) *InvDist[P] {
	return &InvDist[P]{ ds: ds, metric: m, finder: finder }
}

// NewInvDistFromSamples creates an inverse-distance interpolator from a list
// of (point, value) pairs. No finder is configured: build one over
// Dataset() and pass it to SetFinder before interpolating.
func NewInvDistFromSamples[P any](
	samples []Sample[P], m metric.Metric[P],
) *InvDist[P] {
	return NewInvDist[P](NewDatasetFromSamples(samples), m, nil)
}

// NewInvDistAll creates a Euclidean inverse-distance interpolator which
// weights every point in the data set.
func NewInvDistAll(ds *Dataset[[]float64]) *InvDist[[]float64] {
	return NewInvDist[[]float64](ds, metric.Euclidean, NewExhaustive(ds))
}

// Dataset returns the data set being interpolated.
func (idw *InvDist[P]) Dataset() *Dataset[P] { return idw.ds }

// SetFinder sets the neighbor finder. It must not be called once the
// interpolator is being used by other goroutines.
func (idw *InvDist[P]) SetFinder(finder Finder[P]) { idw.finder = finder }

// Interpolate returns the inverse-distance weighted value at query. It
// returns ErrNoFinder if no finder has been set and ErrNoNeighbors if the
// finder returns no points.
func (idw *InvDist[P]) Interpolate(query P) (float64, error) {
	if idw.finder == nil { return 0, ErrNoFinder }

	ids := idw.finder.Neighbors(query)
	if len(ids) == 0 { return 0, ErrNoNeighbors }

	value, norm := 0.0, 0.0
	for _, id := range ids {
		if id < 0 || id >= idw.ds.Len() {
			panic(fmt.Sprintf(
				"Finder returned identifier %d, but the data set has %d points.",
				id, idw.ds.Len(),
			))
		}

		dist := idw.metric.Distance(query, idw.ds.Point(id))
		if dist < ExactDistance { return idw.ds.Value(id), nil }

		value += idw.ds.Value(id) / dist
		norm += 1 / dist
	}

	return value / norm, nil
}
