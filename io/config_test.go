package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gridConfig = `
[Grid]
Table = alphas.dat
AxisColumn = 0
ValueColumn = 1
LogAxis = true

[Query]
Table = queries.dat
Column = 0

[Plot]
File = alphas.png
`

func TestParseGridConfig(t *testing.T) {
	cfg, err := ParseConfig(gridConfig)
	require.NoError(t, err)

	assert.True(t, cfg.IsGrid())
	assert.Equal(t, "alphas.dat", cfg.Grid.Table)
	assert.Equal(t, []int{0}, cfg.Grid.AxisColumn)
	assert.Equal(t, 1, cfg.Grid.ValueColumn)
	assert.Equal(t, []bool{true}, cfg.Grid.LogAxis)
	assert.Equal(t, "cubic", cfg.Grid.Method)
	assert.Equal(t, []int{0}, cfg.Query.Column)
	assert.Equal(t, 200, cfg.Plot.Points)
}

func TestParseScatterConfig(t *testing.T) {
	cfg, err := ParseConfig(`
[Scatter]
Table = points.dat
PointColumn = 0
PointColumn = 1
ValueColumn = 2
Finder = kdtree
Neighbors = 4

[Query]
Table = queries.dat
Column = 0
Column = 1
Output = out.dat
`)
	require.NoError(t, err)

	assert.False(t, cfg.IsGrid())
	assert.Equal(t, []int{0, 1}, cfg.Scatter.PointColumn)
	assert.Equal(t, "kdtree", cfg.Scatter.Finder)
	assert.Equal(t, 4, cfg.Scatter.Neighbors)
	assert.Equal(t, "euclidean", cfg.Scatter.Metric)
	assert.Equal(t, "out.dat", cfg.Query.Output)
}

func TestParseConfigLabels(t *testing.T) {
	cfg, err := ParseConfig(gridConfig + `XLabel = "$\\log Q^2$"` + "\n")
	require.NoError(t, err)
	assert.Equal(t, `$\log Q^2$`, cfg.Plot.XLabel)
}

func TestParseConfigErrors(t *testing.T) {
	table := []string{
		// no data section
		"[Query]\nTable = q.dat\nColumn = 0\n",
		// both data sections
		"[Grid]\nTable = a\nAxisColumn = 0\nValueColumn = 1\n" +
			"[Scatter]\nTable = b\nPointColumn = 0\nValueColumn = 1\n" +
			"[Query]\nTable = q.dat\nColumn = 0\n",
		// no axes
		"[Grid]\nTable = a\nValueColumn = 1\n[Query]\nTable = q\n",
		// reused column
		"[Grid]\nTable = a\nAxisColumn = 0\nValueColumn = 0\n" +
			"[Query]\nTable = q\nColumn = 0\n",
		// bad method
		"[Grid]\nTable = a\nAxisColumn = 0\nValueColumn = 1\nMethod = quintic\n" +
			"[Query]\nTable = q\nColumn = 0\n",
		// LogAxis count
		"[Grid]\nTable = a\nAxisColumn = 0\nValueColumn = 1\n" +
			"LogAxis = true\nLogAxis = false\n[Query]\nTable = q\nColumn = 0\n",
		// query dimension
		"[Grid]\nTable = a\nAxisColumn = 0\nAxisColumn = 1\nValueColumn = 2\n" +
			"[Query]\nTable = q\nColumn = 0\n",
		// kdtree without neighbors
		"[Scatter]\nTable = b\nPointColumn = 0\nValueColumn = 1\nFinder = kdtree\n" +
			"[Query]\nTable = q\nColumn = 0\n",
		// bad metric
		"[Scatter]\nTable = b\nPointColumn = 0\nValueColumn = 1\nMetric = cosine\n" +
			"[Query]\nTable = q\nColumn = 0\n",
		// kdtree with a non-euclidean metric
		"[Scatter]\nTable = b\nPointColumn = 0\nValueColumn = 1\nFinder = kdtree\n" +
			"Neighbors = 4\nMetric = manhattan\n[Query]\nTable = q\nColumn = 0\n",
		// plot of scattered data
		"[Scatter]\nTable = b\nPointColumn = 0\nValueColumn = 1\n" +
			"[Query]\nTable = q\nColumn = 0\n[Plot]\nFile = a.png\n",
		// unknown variable
		"[Grid]\nTable = a\nAxisColumn = 0\nValueColumn = 1\nColour = red\n" +
			"[Query]\nTable = q\nColumn = 0\n",
	}

	for i, str := range table {
		_, err := ParseConfig(str)
		assert.Error(t, err, "%d", i+1)
	}
}

func TestReadConfig(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "alphas.ini")
	require.NoError(t, os.WriteFile(fname, []byte(gridConfig), 0644))

	cfg, err := ReadConfig(fname)
	require.NoError(t, err)
	assert.Equal(t, "alphas.png", cfg.Plot.File)

	_, err = ReadConfig(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}
