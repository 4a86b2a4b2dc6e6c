// SPDX-License-Identifier: MIT

package hsic

import (
	"fmt"
	"strings"
)

// Estimator selects one of the HSIC estimators. The zero value is not a
// valid estimator, so an unset selector is always reported.
type Estimator int

const (
	// Gretton2006 is the classical plug-in estimator; biased for small m.
	Gretton2006 Estimator = iota + 1

	// Song2007 is the unbiased U-statistic estimator on zero-diagonal Grams.
	Song2007

	// Lange2022 is the unbiased estimator over U-centered upper triangles.
	Lange2022
)

var estimatorNames = map[Estimator]string{
	Gretton2006: "GRETTON2006",
	Song2007:    "SONG2007",
	Lange2022:   "LANGE2022",
}

// minSamples per estimator; below it a denominator vanishes.
var minSamples = map[Estimator]int{
	Gretton2006: 2,
	Song2007:    4,
	Lange2022:   4,
}

// Estimators returns every valid estimator in declaration order.
func Estimators() []Estimator {
	return []Estimator{Gretton2006, Song2007, Lange2022}
}

// Valid reports whether e is one of the declared estimators.
func (e Estimator) Valid() bool {
	_, ok := estimatorNames[e]

	return ok
}

// String returns the canonical upper-case name, e.g. "SONG2007".
func (e Estimator) String() string {
	if name, ok := estimatorNames[e]; ok {
		return name
	}

	return fmt.Sprintf("Estimator(%d)", int(e))
}

// MinSamples returns the smallest m the estimator accepts (0 for invalid selectors).
func (e Estimator) MinSamples() int { return minSamples[e] }

// ParseEstimator resolves a name case-insensitively ("song2007", "SONG2007").
func ParseEstimator(s string) (Estimator, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for _, e := range Estimators() {
		if estimatorNames[e] == want {
			return e, nil
		}
	}

	return 0, fmt.Errorf("ParseEstimator %q: %w", s, ErrInvalidConfiguration)
}

// MarshalText implements encoding.TextMarshaler.
func (e Estimator) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("MarshalText %s: %w", e, ErrInvalidConfiguration)
	}

	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so YAML and JSON
// documents may carry estimator names.
func (e *Estimator) UnmarshalText(text []byte) error {
	v, err := ParseEstimator(string(text))
	if err != nil {
		return err
	}
	*e = v

	return nil
}
