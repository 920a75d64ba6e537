package io

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Result is the outcome of interpolating at a single query point.
type Result struct {
	Query []float64
	Value float64
	Err   error
}

// WriteResults writes one line per result: the query coordinates followed by
// the interpolated value. Failed queries are written as comment lines
// starting with '#' so the output can still be read back as a table.
func WriteResults(w io.Writer, rs []Result) error {
	bw := bufio.NewWriter(w)
	for _, r := range rs {
		coords := make([]string, len(r.Query))
		for i, x := range r.Query { coords[i] = fmt.Sprintf("%.8g", x) }
		q := strings.Join(coords, " ")

		var err error
		if r.Err != nil {
			_, err = fmt.Fprintf(bw, "# %s %s\n", q, r.Err.Error())
		} else {
			_, err = fmt.Fprintf(bw, "%s %.10g\n", q, r.Value)
		}
		if err != nil { return err }
	}
	return bw.Flush()
}
