package io

import (
	"fmt"
	"math"
	"sort"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/ndinterp/math/interpolate"
	"github.com/phil-mansfield/ndinterp/math/scatter"
)

// ReadGrid reads the table described by cfg and arranges it into a Grid.
// Every row of the table is one grid point: the axis columns give its
// coordinates and the value column gives the function value there.
func ReadGrid(cfg *GridConfig) (*interpolate.Grid, error) {
	colIdxs := append(append([]int{}, cfg.AxisColumn...), cfg.ValueColumn)
	cols, err := table.ReadTable(cfg.Table, colIdxs, nil)
	if err != nil { return nil, err }

	n := len(cfg.AxisColumn)
	return GridFromColumns(cols[:n], cols[n], cfg.LogAxis)
}

// GridFromColumns arranges a table of grid points into a Grid. coords[i][j]
// is the i-th coordinate of row j and vals[j] is the value at row j. The rows
// may come in any order, but must cover every point of the grid exactly once.
//
// If logAxis[i] is true, the grid is built in the natural log of the i-th
// coordinate. logAxis may be nil.
func GridFromColumns(
	coords [][]float64, vals []float64, logAxis []bool,
) (*interpolate.Grid, error) {
	coords = transformColumns(coords, logAxis)

	axes := make([][]float64, len(coords))
	size := 1
	for i := range coords {
		if len(coords[i]) != len(vals) {
			return nil, fmt.Errorf(
				"Axis column %d has %d rows, but the value column has %d.",
				i, len(coords[i]), len(vals),
			)
		}
		axes[i] = uniqueSorted(coords[i])
		size *= len(axes[i])
	}

	if size != len(vals) {
		return nil, fmt.Errorf(
			"Table has %d rows, but its axes span %d grid points.",
			len(vals), size,
		)
	}

	grid := make([]float64, size)
	filled := make([]bool, size)
	for j := range vals {
		flat := 0
		for i := range axes {
			flat = flat*len(axes[i]) + sort.SearchFloat64s(axes[i], coords[i][j])
		}
		if filled[flat] {
			return nil, fmt.Errorf("Table row %d repeats an earlier grid point.", j)
		}
		filled[flat] = true
		grid[flat] = vals[j]
	}

	return interpolate.NewGrid(axes, grid)
}

// ReadScatter reads the scattered data set described by cfg.
func ReadScatter(cfg *ScatterConfig) (*scatter.Dataset[[]float64], error) {
	colIdxs := append(append([]int{}, cfg.PointColumn...), cfg.ValueColumn)
	cols, err := table.ReadTable(cfg.Table, colIdxs, nil)
	if err != nil { return nil, err }

	return scatter.FromRows(Rows(cols))
}

// ReadQueries reads the query points described by cfg. Each returned row is
// one query.
func ReadQueries(cfg *QueryConfig) ([][]float64, error) {
	cols, err := table.ReadTable(cfg.Table, cfg.Column, nil)
	if err != nil { return nil, err }
	return Rows(cols), nil
}

// Rows transposes a list of equal-length columns into a list of rows.
func Rows(cols [][]float64) [][]float64 {
	if len(cols) == 0 { return nil }

	rows := make([][]float64, len(cols[0]))
	for j := range rows {
		rows[j] = make([]float64, len(cols))
		for i := range cols { rows[j][i] = cols[i][j] }
	}
	return rows
}

// TransformQuery applies the same coordinate transformations to a query
// that GridFromColumns applies to the grid axes.
func TransformQuery(q []float64, logAxis []bool) {
	for i := range q {
		if i < len(logAxis) && logAxis[i] { q[i] = math.Log(q[i]) }
	}
}

func transformColumns(coords [][]float64, logAxis []bool) [][]float64 {
	out := make([][]float64, len(coords))
	for i := range coords {
		if i >= len(logAxis) || !logAxis[i] {
			out[i] = coords[i]
			continue
		}
		out[i] = make([]float64, len(coords[i]))
		for j, x := range coords[i] { out[i][j] = math.Log(x) }
	}
	return out
}

func uniqueSorted(xs []float64) []float64 {
	out := append([]float64(nil), xs...)
	sort.Float64s(out)

	n := 0
	for i := range out {
		if i == 0 || out[i] != out[n-1] {
			out[n] = out[i]
			n++
		}
	}
	return out[:n]
}
