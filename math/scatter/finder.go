package scatter

import (
	"fmt"

	"github.com/phil-mansfield/ndinterp/math/metric"
)

// Finder looks up the points of a Dataset which should contribute to the
// interpolated value at a query point. The identifiers may be returned in any
// order.
type Finder[P any] interface {
	Neighbors(query P) []int
}

var (
	_ Finder[[]float64] = &Exhaustive[[]float64]{}
	_ Finder[[]float64] = &Graph[[]float64]{}
	_ Finder[[]float64] = &KDTree{}
)

// Exhaustive is a Finder which returns every point in the data set,
// regardless of the query. It is mainly useful for small data sets and as a
// reference for other finders.
type Exhaustive[P any] struct {
	n int
}

// NewExhaustive creates an Exhaustive finder over ds.
func NewExhaustive[P any](ds *Dataset[P]) *Exhaustive[P] {
	return &Exhaustive[P]{ n: ds.Len() }
}

func (ex *Exhaustive[P]) Neighbors(query P) []int {
	ids := make([]int, ex.n)
	for i := range ids { ids[i] = i }
	return ids
}

// Graph is a Finder which walks a precomputed neighbor graph over a data set.
// Building the graph is left to the caller (e.g. an approximate proximity
// graph builder); Graph only performs lookups.
//
// A lookup starts at the entry node and greedily moves to whichever adjacent
// node is closest to the query until no adjacent node is closer. That node
// and its adjacent nodes are returned.
type Graph[P any] struct {
	ds     *Dataset[P]
	metric metric.Metric[P]
	adj    [][]int
	entry  int
}

// NewGraph creates a Graph finder. adj[i] lists the identifiers adjacent to
// point i, so len(adj) must equal ds.Len(). The adjacency lists are copied.
func NewGraph[P any](
	ds *Dataset[P], m metric.Metric[P], adj [][]int, entry int,
) (*Graph[P], error) {
	if len(adj) != ds.Len() {
		return nil, fmt.Errorf(
			"%w: len(adj) = %d, but the data set has %d points",
			ErrGraph, len(adj), ds.Len(),
		)
	} else if entry < 0 || entry >= ds.Len() {
		return nil, fmt.Errorf(
			"%w: entry node %d is not in the data set", ErrGraph, entry,
		)
	}

	g := &Graph[P]{ ds: ds, metric: m, entry: entry }
	g.adj = make([][]int, len(adj))
	for i := range adj {
		seen := make(map[int]bool, len(adj[i]))
		for _, id := range adj[i] {
			if id < 0 || id >= ds.Len() {
				return nil, fmt.Errorf(
					"%w: node %d is adjacent to %d, which is not in the data set",
					ErrGraph, i, id,
				)
			} else if seen[id] {
				return nil, fmt.Errorf(
					"%w: node %d lists %d as adjacent more than once",
					ErrGraph, i, id,
				)
			}
			seen[id] = true
		}
		g.adj[i] = append([]int(nil), adj[i]...)
	}

	return g, nil
}

func (g *Graph[P]) Neighbors(query P) []int {
	curr := g.entry
	currDist := g.metric.Distance(query, g.ds.Point(curr))

	for {
		next, nextDist := curr, currDist
		for _, id := range g.adj[curr] {
			if d := g.metric.Distance(query, g.ds.Point(id)); d < nextDist {
				next, nextDist = id, d
			}
		}
		if next == curr { break }
		curr, currDist = next, nextDist
	}

	ids := make([]int, 0, len(g.adj[curr])+1)
	ids = append(ids, curr)
	for _, id := range g.adj[curr] {
		if id != curr { ids = append(ids, id) }
	}
	return ids
}
