// SPDX-License-Identifier: MIT

package sweep

import "strings"

// Layer names one captured representation: a model, a layer inside it, and
// the files (batches, stacked in order) holding its activations.
type Layer struct {
	Model string   `yaml:"model"`
	Name  string   `yaml:"layer"`
	Paths []string `yaml:"paths"`
}

// key identifies the tensor a Layer loads to.
func (l Layer) key() string { return strings.Join(l.Paths, "\x00") }

// Pair is one comparison of layer A against layer B.
type Pair struct {
	A, B Layer
}

// Grid returns every (a, b) combination, a-major.
func Grid(a, b []Layer) []Pair {
	out := make([]Pair, 0, len(a)*len(b))
	for _, la := range a {
		for _, lb := range b {
			out = append(out, Pair{A: la, B: lb})
		}
	}

	return out
}

// Result is the outcome of one Pair.
//
//   - Skipped: a FINISHED run with equal parameters existed; Score and RunID
//     come from it.
//   - Err: the comparison failed; Score is 0.
type Result struct {
	Pair    Pair
	Score   float64
	RunID   string
	Skipped bool
	Err     error
}
