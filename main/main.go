package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/ndinterp/io"
	"github.com/phil-mansfield/ndinterp/math/interpolate"
	"github.com/phil-mansfield/ndinterp/math/metric"
	"github.com/phil-mansfield/ndinterp/math/scatter"
)

const exampleConfig = `# Evaluates alpha_s(Q) from an LHAPDF table of (Q^2, alpha_s) pairs.
[Grid]
Table = alphas.dat
AxisColumn = 0
ValueColumn = 1
# LHAPDF interpolates in log(Q^2).
LogAxis = true
Method = cubic

# [Scatter]
# Table = points.dat
# PointColumn = 0
# PointColumn = 1
# ValueColumn = 2
# Finder = kdtree
# Neighbors = 8
# Metric = euclidean

[Query]
Table = queries.dat
Column = 0
# Output = results.dat

[Plot]
File = alphas.png
Points = 200
XLabel = "$\\log Q^2$"
YLabel = "$\\alpha_s$"
`

type FileGroup struct {
	log, prof *os.File
}

func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil { log.Fatal(err.Error()) }
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil { log.Fatal(err.Error()) }
	}
}

func main() {
	var (
		logPath, pprofPath string
		example bool
	)

	flag.StringVar(&logPath, "Log", "",
		"Location to write log statements to. Default is stderr.")
	flag.StringVar(&pprofPath, "PProf", "",
		"Location to write profile to. Default is no profiling.")
	flag.BoolVar(&example, "ExampleConfig", false,
		"Prints an example configuration file to stdout.")

	flag.Parse()

	if example {
		fmt.Print(exampleConfig)
		return
	}

	fg := setupFiles(logPath, pprofPath)
	defer fg.Close()

	args := flag.Args()
	if len(args) != 1 {
		log.Fatalf("Expected exactly 1 configuration file, got %d.", len(args))
	}

	cfg, err := io.ReadConfig(args[0])
	if err != nil { log.Fatal(err.Error()) }

	qs, err := io.ReadQueries(&cfg.Query)
	if err != nil { log.Fatal(err.Error()) }
	log.Printf("Read %d queries from %s.", len(qs), cfg.Query.Table)

	var rs []io.Result
	if cfg.IsGrid() {
		rs = gridMain(cfg, qs)
	} else {
		rs = scatterMain(cfg, qs)
	}

	failed := 0
	for i := range rs {
		if rs[i].Err != nil { failed++ }
	}
	if failed > 0 {
		log.Printf("%d of %d queries were outside the table.", failed, len(rs))
	}

	if cfg.Query.Output == "" {
		err = io.WriteResults(os.Stdout, rs)
		if err != nil { log.Fatal(err.Error()) }
		return
	}

	if err := writeResultsFile(cfg.Query.Output, rs); err != nil {
		log.Fatal(err.Error())
	}
}

// writeResultsFile writes rs to fname. Errors from closing the file are
// reported, since the last buffered write can fail there.
func writeResultsFile(fname string, rs []io.Result) error {
	f, err := os.Create(fname)
	if err != nil { return err }

	if err := io.WriteResults(f, rs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func setupFiles(logPath, pprofPath string) *FileGroup {
	fg := &FileGroup{}

	if logPath != "" {
		var err error
		fg.log, err = os.Create(logPath)
		if err != nil { log.Fatal(err.Error()) }
		log.SetOutput(fg.log)
	}

	if pprofPath != "" {
		var err error
		fg.prof, err = os.Create(pprofPath)
		if err != nil { log.Fatal(err.Error()) }
		pprof.StartCPUProfile(fg.prof)
	}

	return fg
}

func gridMain(cfg *io.Config, qs [][]float64) []io.Result {
	g, err := io.ReadGrid(&cfg.Grid)
	if err != nil { log.Fatal(err.Error()) }
	log.Printf("Read %v grid from %s.", g.Shape(), cfg.Grid.Table)

	var in interpolate.Interpolator[[]float64]
	switch cfg.Grid.Method {
	case "cubic":
		in = interpolate.NewCubic(g)
	case "linear":
		in = interpolate.NewLinear(g)
	}

	rs := make([]io.Result, len(qs))
	for i, q := range qs {
		tq := append([]float64(nil), q...)
		io.TransformQuery(tq, cfg.Grid.LogAxis)
		val, err := in.Interpolate(tq)
		rs[i] = io.Result{ Query: q, Value: val, Err: err }
	}

	if cfg.Plot.File != "" { plotGrid(g, in, &cfg.Plot) }

	return rs
}

func scatterMain(cfg *io.Config, qs [][]float64) []io.Result {
	ds, err := io.ReadScatter(&cfg.Scatter)
	if err != nil { log.Fatal(err.Error()) }
	log.Printf("Read %d points from %s.", ds.Len(), cfg.Scatter.Table)

	m, err := metric.Named(cfg.Scatter.Metric)
	if err != nil { log.Fatal(err.Error()) }

	var finder scatter.Finder[[]float64]
	switch cfg.Scatter.Finder {
	case "exhaustive":
		finder = scatter.NewExhaustive(ds)
	case "kdtree":
		finder, err = scatter.NewKDTree(ds, cfg.Scatter.Neighbors)
		if err != nil { log.Fatal(err.Error()) }
	}

	idw := scatter.NewInvDist[[]float64](ds, m, finder)
	rs := make([]io.Result, len(qs))
	for i, q := range qs {
		val, err := idw.Interpolate(q)
		rs[i] = io.Result{ Query: q, Value: val, Err: err }
	}
	return rs
}

// plotGrid plots the interpolant of a 1D grid along with its nodes.
func plotGrid(
	g *interpolate.Grid, in interpolate.Interpolator[[]float64],
	cfg *io.PlotConfig,
) {
	nodes := g.Axis(0)
	lo, hi := nodes[0], nodes[len(nodes)-1]

	// The last node is outside the grid, so stop just short of it.
	xs, qs := make([]float64, cfg.Points), make([][]float64, cfg.Points)
	for i := range xs {
		xs[i] = lo + (hi-lo)*float64(i)/float64(cfg.Points)
		qs[i] = []float64{xs[i]}
	}
	ys, err := interpolate.EvalAll(in, qs, make([]float64, len(xs)))
	if err != nil { log.Fatalf("Plotting failed after %d points: %s", len(ys), err) }

	plt.Figure()
	plt.Plot(xs, ys, "b", plt.LW(2))
	plt.Plot(nodes, g.Values(), "ok")
	if cfg.XLabel != "" { plt.XLabel(cfg.XLabel, plt.FontSize(16)) }
	if cfg.YLabel != "" { plt.YLabel(cfg.YLabel, plt.FontSize(16)) }
	plt.SaveFig(cfg.File)
	plt.Execute()

	log.Printf("Wrote plot of %d points to %s.", len(xs), cfg.File)
}
