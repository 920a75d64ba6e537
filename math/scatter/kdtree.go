package scatter

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/kdtree"
)

// KDTree is a Finder which returns the k points closest to the query in the
// Euclidean metric. It only works for coordinate vectors.
type KDTree struct {
	tree *kdtree.Tree
	k, dim int
}

// NewKDTree builds a k-d tree over the points of ds. Every point must have
// the same, non-zero, number of coordinates.
func NewKDTree(ds *Dataset[[]float64], k int) (*KDTree, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: k = %d", ErrNeighbors, k)
	}

	kd := &KDTree{ k: k }
	if ds.Len() == 0 { return kd, nil }

	kd.dim = len(ds.Point(0))
	if kd.dim == 0 {
		return nil, fmt.Errorf("%w: points have no coordinates", ErrDimension)
	}

	pts := make(kdPoints, ds.Len())
	for i := range pts {
		if len(ds.Point(i)) != kd.dim {
			return nil, fmt.Errorf(
				"%w: point %d has %d coordinates, but point 0 has %d",
				ErrDimension, i, len(ds.Point(i)), kd.dim,
			)
		}
		pts[i] = kdPoint{ id: i, xs: ds.Point(i) }
	}

	kd.tree = kdtree.New(pts, false)
	return kd, nil
}

// Neighbors returns the identifiers of the (up to) k nearest points. The
// query must have the same number of coordinates as the points in the tree.
func (kd *KDTree) Neighbors(query []float64) []int {
	if kd.tree == nil { return nil }
	if len(query) != kd.dim {
		panic(fmt.Sprintf(
			"len(query) = %d, but the tree's points have %d coordinates.",
			len(query), kd.dim,
		))
	}

	keeper := kdtree.NewNKeeper(kd.k)
	kd.tree.NearestSet(keeper, kdPoint{ id: -1, xs: query })

	ids := make([]int, 0, kd.k)
	for _, cd := range keeper.Heap {
		// The keeper starts out with a sentinel at infinite distance.
		if cd.Comparable == nil { continue }
		ids = append(ids, cd.Comparable.(kdPoint).id)
	}
	return ids
}

// kdPoint implements kdtree.Comparable for an identified point.
type kdPoint struct {
	id int
	xs []float64
}

func (p kdPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return p.xs[d] - c.(kdPoint).xs[d]
}

func (p kdPoint) Dims() int { return len(p.xs) }

// Distance returns the squared Euclidean distance, as kdtree expects.
func (p kdPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(kdPoint)
	sum := 0.0
	for i := range p.xs {
		dx := p.xs[i] - q.xs[i]
		sum += dx * dx
	}
	return sum
}

// kdPoints is a collection of kdPoint that satisfies kdtree.Interface.
type kdPoints []kdPoint

func (p kdPoints) Index(i int) kdtree.Comparable { return p[i] }
func (p kdPoints) Len() int { return len(p) }
func (p kdPoints) Slice(start, end int) kdtree.Interface { return p[start:end] }
func (p kdPoints) Pivot(d kdtree.Dim) int {
	return kdPlane{ kdPoints: p, Dim: d }.Pivot()
}

// kdPlane implements sort.Interface and kdtree.SortSlicer for kdPoints.
type kdPlane struct {
	kdPoints
	kdtree.Dim
}

func (p kdPlane) Less(i, j int) bool {
	return p.kdPoints[i].xs[p.Dim] < p.kdPoints[j].xs[p.Dim]
}

func (p kdPlane) Swap(i, j int) {
	p.kdPoints[i], p.kdPoints[j] = p.kdPoints[j], p.kdPoints[i]
}

func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	return kdPlane{ kdPoints: p.kdPoints[start:end], Dim: p.Dim }
}

func (p kdPlane) Pivot() int {
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}
