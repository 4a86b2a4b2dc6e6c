// SPDX-License-Identifier: MIT

package cka

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/repsim/hsic"
	"github.com/katalvlaran/repsim/tensor"
)

// Comparator scores the similarity of two representation tensors that share
// a leading sample axis.
type Comparator interface {
	Compare(x, y *tensor.Tensor) (float64, error)
}

// NameLinearCKA is the registered name of LinearCKA.
const NameLinearCKA = "linear_cka"

// constructors is the closed set of comparators addressable by name.
var constructors = map[string]func(hsic.Estimator) (Comparator, error){
	NameLinearCKA: func(e hsic.Estimator) (Comparator, error) { return NewLinearCKA(e) },
}

// New builds the comparator registered under name (case-insensitive)
// bound to est.
//
// Errors:
//   - ErrUnknownComparator, ErrInvalidConfiguration.
func New(name string, est hsic.Estimator) (Comparator, error) {
	ctor, ok := constructors[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("New %q: %w", name, ErrUnknownComparator)
	}

	return ctor(est)
}

// Names lists the registered comparator names in sorted order.
func Names() []string {
	out := make([]string, 0, len(constructors))
	for name := range constructors {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
