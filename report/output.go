// SPDX-License-Identifier: MIT

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the present cells of a Table.
type Stats struct {
	Count               int
	Mean, Std, Min, Max float64
}

// Summary returns count, mean, sample standard deviation, min and max over
// the non-missing cells. An empty table yields the zero Stats.
func (t Table) Summary() Stats {
	var vals []float64
	for _, row := range t.Cells {
		for _, v := range row {
			if !math.IsNaN(v) {
				vals = append(vals, v)
			}
		}
	}
	if len(vals) == 0 {
		return Stats{}
	}
	s := Stats{Count: len(vals), Min: floats.Min(vals), Max: floats.Max(vals)}
	if len(vals) == 1 {
		s.Mean = vals[0]
		return s
	}
	s.Mean, s.Std = stat.MeanStdDev(vals, nil)

	return s
}

// WriteCSV writes the table with a header row of column layers; the corner
// cell is "<modelA>/<modelB>". Missing cells are empty.
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := append([]string{t.ModelA + "/" + t.ModelB}, t.Cols...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("report: csv: %w", err)
	}
	for i, row := range t.Cells {
		rec := make([]string, 0, len(row)+1)
		rec = append(rec, t.Rows[i])
		for _, v := range row {
			if math.IsNaN(v) {
				rec = append(rec, "")
				continue
			}
			rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("report: csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: csv: %w", err)
	}

	return nil
}

// WriteText writes an aligned, human-readable table with three decimals
// and "-" for missing cells, followed by its summary.
func (t Table) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s \\ %s\t", t.ModelA, t.ModelB)
	for _, c := range t.Cols {
		fmt.Fprintf(tw, "%s\t", c)
	}
	fmt.Fprintln(tw)
	for i, row := range t.Cells {
		fmt.Fprintf(tw, "%s\t", t.Rows[i])
		for _, v := range row {
			if math.IsNaN(v) {
				fmt.Fprint(tw, "-\t")
				continue
			}
			fmt.Fprintf(tw, "%.3f\t", v)
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("report: text: %w", err)
	}
	s := t.Summary()
	if _, err := fmt.Fprintf(w, "n=%d mean=%.3f std=%.3f min=%.3f max=%.3f\n", s.Count, s.Mean, s.Std, s.Min, s.Max); err != nil {
		return fmt.Errorf("report: text: %w", err)
	}

	return nil
}
