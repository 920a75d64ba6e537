package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"
)

// Config is the contents of an ndinterp configuration file. Exactly one of
// the Grid and Scatter sections must be given.
type Config struct {
	Grid    GridConfig
	Scatter ScatterConfig
	Query   QueryConfig
	Plot    PlotConfig
}

type GridConfig struct {
	// Required
	Table       string
	AxisColumn  []int
	ValueColumn int

	// Optional
	LogAxis []bool
	Method  string
}

type ScatterConfig struct {
	// Required
	Table       string
	PointColumn []int
	ValueColumn int

	// Optional
	Finder    string
	Neighbors int
	Metric    string
}

type QueryConfig struct {
	// Required
	Table  string
	Column []int

	// Optional
	Output string
}

type PlotConfig struct {
	// Optional
	File           string
	Points         int
	XLabel, YLabel string
}

// ReadConfig reads and validates the configuration file fname.
func ReadConfig(fname string) (*Config, error) {
	cfg := &Config{}
	if err := gcfg.ReadFileInto(cfg, fname); err != nil { return nil, err }
	if err := cfg.CheckInit(); err != nil { return nil, err }
	return cfg, nil
}

// ParseConfig is ReadConfig for a configuration held in a string.
func ParseConfig(str string) (*Config, error) {
	cfg := &Config{}
	if err := gcfg.ReadStringInto(cfg, str); err != nil { return nil, err }
	if err := cfg.CheckInit(); err != nil { return nil, err }
	return cfg, nil
}

// IsGrid returns true if the configuration describes a gridded table.
func (cfg *Config) IsGrid() bool { return cfg.Grid.Table != "" }

func (cfg *Config) CheckInit() error {
	hasGrid, hasScatter := cfg.Grid.Table != "", cfg.Scatter.Table != ""
	if hasGrid == hasScatter {
		return fmt.Errorf(
			"Exactly one of the Grid and Scatter sections must give a Table.",
		)
	}

	if hasGrid {
		if err := cfg.Grid.CheckInit(); err != nil { return err }
	} else {
		if err := cfg.Scatter.CheckInit(); err != nil { return err }
	}

	dim := len(cfg.Grid.AxisColumn)
	if !hasGrid { dim = len(cfg.Scatter.PointColumn) }
	if err := cfg.Query.CheckInit(dim); err != nil { return err }

	return cfg.Plot.CheckInit(hasGrid, dim)
}

func (g *GridConfig) CheckInit() error {
	if len(g.AxisColumn) == 0 {
		return fmt.Errorf("Grid section needs at least one AxisColumn.")
	}
	cols := append(append([]int{}, g.AxisColumn...), g.ValueColumn)
	if err := checkColumns("Grid", cols...); err != nil { return err }

	if len(g.LogAxis) == 0 {
		g.LogAxis = make([]bool, len(g.AxisColumn))
	} else if len(g.LogAxis) != len(g.AxisColumn) {
		return fmt.Errorf(
			"Grid section has %d AxisColumn values, but %d LogAxis values.",
			len(g.AxisColumn), len(g.LogAxis),
		)
	}

	switch g.Method {
	case "":
		g.Method = "cubic"
	case "cubic", "linear":
	default:
		return fmt.Errorf(
			"Grid Method must be 'cubic' or 'linear', but is '%s'.", g.Method,
		)
	}

	return nil
}

func (s *ScatterConfig) CheckInit() error {
	if len(s.PointColumn) == 0 {
		return fmt.Errorf("Scatter section needs at least one PointColumn.")
	}
	cols := append(append([]int{}, s.PointColumn...), s.ValueColumn)
	if err := checkColumns("Scatter", cols...); err != nil { return err }

	switch s.Finder {
	case "":
		s.Finder = "exhaustive"
	case "exhaustive":
	case "kdtree":
		if s.Neighbors <= 0 {
			return fmt.Errorf(
				"Scatter Finder 'kdtree' needs a positive Neighbors, but it is %d.",
				s.Neighbors,
			)
		}
	default:
		return fmt.Errorf(
			"Scatter Finder must be 'exhaustive' or 'kdtree', but is '%s'.",
			s.Finder,
		)
	}

	switch s.Metric {
	case "":
		s.Metric = "euclidean"
	case "euclidean", "manhattan", "chebyshev":
	default:
		return fmt.Errorf("Unrecognized Scatter Metric '%s'.", s.Metric)
	}

	// The kd-tree orders neighbors by Euclidean distance.
	if s.Finder == "kdtree" && s.Metric != "euclidean" {
		return fmt.Errorf(
			"Scatter Finder 'kdtree' only supports the 'euclidean' Metric, not '%s'.",
			s.Metric,
		)
	}

	return nil
}

func (q *QueryConfig) CheckInit(dim int) error {
	if q.Table == "" {
		return fmt.Errorf("Query section needs a Table.")
	} else if len(q.Column) != dim {
		return fmt.Errorf(
			"Query section has %d Column values, but the data is %d dimensional.",
			len(q.Column), dim,
		)
	}
	return checkColumns("Query", q.Column...)
}

func (p *PlotConfig) CheckInit(isGrid bool, dim int) error {
	if p.File == "" { return nil }

	if !isGrid || dim != 1 {
		return fmt.Errorf("Plots can only be made for 1D grids.")
	}

	if p.Points == 0 {
		p.Points = 200
	} else if p.Points < 2 {
		return fmt.Errorf("Plot Points must be at least 2, but is %d.", p.Points)
	}

	return nil
}

// checkColumns checks that column indices are non-negative and distinct.
func checkColumns(section string, cols ...int) error {
	seen := map[int]bool{}
	for _, col := range cols {
		if col < 0 {
			return fmt.Errorf(
				"%s section given a negative column index, %d.", section, col,
			)
		} else if seen[col] {
			return fmt.Errorf(
				"%s section uses column %d more than once.", section, col,
			)
		}
		seen[col] = true
	}
	return nil
}
