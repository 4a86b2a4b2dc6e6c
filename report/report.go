// SPDX-License-Identifier: MIT

package report

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/repsim/sweep"
	"github.com/katalvlaran/repsim/tracking"
)

// Entry is one scored comparison.
type Entry struct {
	ModelA, LayerA string
	ModelB, LayerB string
	Score          float64
}

// FromRuns keeps FINISHED runs carrying a score metric, in input order.
func FromRuns(runs []*tracking.Run) []Entry {
	out := make([]Entry, 0, len(runs))
	for _, r := range runs {
		if r == nil || r.Status != tracking.StatusFinished {
			continue
		}
		score, ok := r.Metrics[sweep.MetricScore]
		if !ok {
			continue
		}
		out = append(out, Entry{
			ModelA: r.Params[sweep.ParamModelA],
			LayerA: r.Params[sweep.ParamLayerA],
			ModelB: r.Params[sweep.ParamModelB],
			LayerB: r.Params[sweep.ParamLayerB],
			Score:  score,
		})
	}

	return out
}

// Table is the score matrix of one (ModelA, ModelB) group.
// Cells[i][j] is the score of Rows[i] against Cols[j], NaN when missing.
type Table struct {
	ModelA, ModelB string
	Rows, Cols     []string
	Cells          [][]float64
}

// Pivot groups entries by (ModelA, ModelB) and lays each group out as a
// Table with naturally ordered rows and columns. Tables are sorted by
// (ModelA, ModelB). When one cell is reported more than once, the last
// entry wins.
func Pivot(entries []Entry) []Table {
	type group struct {
		rows, cols map[string]struct{}
		cells      map[[2]string]float64
	}
	groups := make(map[[2]string]*group)
	for _, e := range entries {
		k := [2]string{e.ModelA, e.ModelB}
		g, ok := groups[k]
		if !ok {
			g = &group{
				rows:  map[string]struct{}{},
				cols:  map[string]struct{}{},
				cells: map[[2]string]float64{},
			}
			groups[k] = g
		}
		g.rows[e.LayerA] = struct{}{}
		g.cols[e.LayerB] = struct{}{}
		g.cells[[2]string{e.LayerA, e.LayerB}] = e.Score
	}

	keys := make([][2]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})

	out := make([]Table, 0, len(keys))
	for _, k := range keys {
		g := groups[k]
		t := Table{ModelA: k[0], ModelB: k[1], Rows: sortedLayers(g.rows), Cols: sortedLayers(g.cols)}
		t.Cells = make([][]float64, len(t.Rows))
		for i, ra := range t.Rows {
			t.Cells[i] = make([]float64, len(t.Cols))
			for j, cb := range t.Cols {
				v, ok := g.cells[[2]string{ra, cb}]
				if !ok {
					v = math.NaN()
				}
				t.Cells[i][j] = v
			}
		}
		out = append(out, t)
	}

	return out
}

func sortedLayers(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return LayerLess(out[i], out[j]) })

	return out
}

// layerKey splits a layer name on its last "_" into (stem, index). Names
// without "_" or with a non-integer suffix map to (name, 0).
func layerKey(name string) (string, int) {
	i := strings.LastIndex(name, "_")
	if i < 0 {
		return name, 0
	}
	n, err := strconv.Atoi(name[i+1:])
	if err != nil {
		return name, 0
	}

	return name[:i], n
}

// LayerLess orders layer names by (stem, numeric index), falling back to
// the full name to keep the order total.
func LayerLess(a, b string) bool {
	sa, na := layerKey(a)
	sb, nb := layerKey(b)
	if sa != sb {
		return sa < sb
	}
	if na != nb {
		return na < nb
	}

	return a < b
}
