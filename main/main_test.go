package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/ndinterp/io"
	"github.com/phil-mansfield/ndinterp/math/interpolate"
	"github.com/phil-mansfield/ndinterp/math/scatter"
)

func writeTable(t *testing.T, body string) string {
	fname := filepath.Join(t.TempDir(), "table.dat")
	require.NoError(t, os.WriteFile(fname, []byte(body), 0644))
	return fname
}

func TestExampleConfig(t *testing.T) {
	cfg, err := io.ParseConfig(exampleConfig)
	require.NoError(t, err)

	assert.True(t, cfg.IsGrid())
	assert.Equal(t, []bool{true}, cfg.Grid.LogAxis)
	assert.Equal(t, `$\log Q^2$`, cfg.Plot.XLabel)
	assert.Equal(t, `$\alpha_s$`, cfg.Plot.YLabel)
	assert.Equal(t, 200, cfg.Plot.Points)
}

func TestWriteResultsFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "out.dat")
	rs := []io.Result{{Query: []float64{1.5}, Value: 2.5}}
	require.NoError(t, writeResultsFile(fname, rs))

	body, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.Equal(t, "1.5 2.5\n", string(body))

	missing := filepath.Join(t.TempDir(), "missing", "out.dat")
	assert.Error(t, writeResultsFile(missing, rs))
}

func TestGridMain(t *testing.T) {
	cfg := &io.Config{}
	cfg.Grid = io.GridConfig{
		Table: writeTable(t, "0 4\n1 3\n2 2\n3 1\n4 1\n"),
		AxisColumn: []int{0}, ValueColumn: 1,
	}
	require.NoError(t, cfg.Grid.CheckInit())

	rs := gridMain(cfg, [][]float64{{1.5}, {3.5}, {4}, {-1}})
	require.Len(t, rs, 4)

	assert.NoError(t, rs[0].Err)
	assert.InDelta(t, 2.5, rs[0].Value, 1e-12)
	assert.NoError(t, rs[1].Err)
	assert.InDelta(t, 0.9375, rs[1].Value, 1e-12)
	assert.ErrorIs(t, rs[2].Err, interpolate.ErrExtrapolationAbove)
	assert.ErrorIs(t, rs[3].Err, interpolate.ErrExtrapolationBelow)
	assert.Equal(t, []float64{-1}, rs[3].Query)
}

func TestScatterMain(t *testing.T) {
	cfg := &io.Config{}
	cfg.Scatter = io.ScatterConfig{
		Table: writeTable(t, "-1 0 3\n1 0 8\n0 5 100\n"),
		PointColumn: []int{0, 1}, ValueColumn: 2,
		Finder: "kdtree", Neighbors: 2,
	}
	require.NoError(t, cfg.Scatter.CheckInit())

	rs := scatterMain(cfg, [][]float64{{0, 0}, {1, 0}})
	require.Len(t, rs, 2)
	assert.InDelta(t, 5.5, rs[0].Value, 1e-12)
	assert.Equal(t, 8.0, rs[1].Value)

	cfg.Scatter.Finder = "exhaustive"
	rs = scatterMain(cfg, [][]float64{{0, 5}})
	assert.Equal(t, 100.0, rs[0].Value)
	assert.NotErrorIs(t, rs[0].Err, scatter.ErrNoNeighbors)
}
