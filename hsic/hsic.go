// SPDX-License-Identifier: MIT

package hsic

import (
	"fmt"

	"github.com/katalvlaran/repsim/matrix"
)

// Operation name constants for error wrapping.
const (
	opCompute      = "Compute"
	opFromGrams    = "FromGrams"
	opCenteredGram = "CenteredGram"
)

func hsicErrorf(op string, e Estimator, err error) error {
	return fmt.Errorf("%s(%s): %w", op, e, err)
}

// CenteredGram returns K = XcXcᵀ where Xc is x with every column mean removed.
//
// Complexity:
//   - Time O(m²·d), Space O(m²).
func CenteredGram(x matrix.Matrix) (*matrix.Dense, error) {
	xc, _, err := matrix.CenterColumns(x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCenteredGram, err)
	}
	g, err := matrix.Gram(xc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCenteredGram, err)
	}

	return g, nil
}

// Compute estimates HSIC(x, y) with a linear kernel.
//
// Implementation:
//   - Stage 1: Validate in order: selector, nil inputs, equal row counts,
//     m ≥ MinSamples.
//   - Stage 2: Column-center both inputs and build their Gram matrices.
//   - Stage 3: Reduce the Gram pair with the selected estimator (FromGrams).
//
// Errors:
//   - ErrInvalidConfiguration, matrix.ErrNilMatrix, ErrShapeMismatch,
//     ErrInsufficientSamples.
func (e Estimator) Compute(x, y matrix.Matrix) (float64, error) {
	// Stage 1: validate.
	if !e.Valid() {
		return 0, hsicErrorf(opCompute, e, ErrInvalidConfiguration)
	}
	if err := matrix.ValidateNotNil(x); err != nil {
		return 0, hsicErrorf(opCompute, e, err)
	}
	if err := matrix.ValidateNotNil(y); err != nil {
		return 0, hsicErrorf(opCompute, e, err)
	}
	if err := e.checkSamples(x.Rows(), y.Rows()); err != nil {
		return 0, hsicErrorf(opCompute, e, err)
	}

	// Stage 2: centered Gram matrices.
	gx, err := CenteredGram(x)
	if err != nil {
		return 0, hsicErrorf(opCompute, e, err)
	}
	gy, err := CenteredGram(y)
	if err != nil {
		return 0, hsicErrorf(opCompute, e, err)
	}

	// Stage 3: reduce.
	return e.FromGrams(gx, gy)
}

// FromGrams reduces two m×m Gram matrices of already-centered inputs.
// The inputs are not mutated.
//
// Errors:
//   - ErrInvalidConfiguration, matrix.ErrNilMatrix, matrix.ErrNonSquare,
//     ErrShapeMismatch, ErrInsufficientSamples.
func (e Estimator) FromGrams(gx, gy matrix.Matrix) (float64, error) {
	if !e.Valid() {
		return 0, hsicErrorf(opFromGrams, e, ErrInvalidConfiguration)
	}
	if err := matrix.ValidateSquare(gx); err != nil {
		return 0, hsicErrorf(opFromGrams, e, err)
	}
	if err := matrix.ValidateSquare(gy); err != nil {
		return 0, hsicErrorf(opFromGrams, e, err)
	}
	if err := e.checkSamples(gx.Rows(), gy.Rows()); err != nil {
		return 0, hsicErrorf(opFromGrams, e, err)
	}

	var (
		v   float64
		err error
	)
	switch e {
	case Gretton2006:
		v, err = gretton(gx, gy)
	case Song2007:
		v, err = song(gx, gy)
	case Lange2022:
		v, err = lange(gx, gy)
	}
	if err != nil {
		return 0, hsicErrorf(opFromGrams, e, err)
	}

	return v, nil
}

// checkSamples enforces equal sample counts and the estimator's minimum m.
func (e Estimator) checkSamples(mx, my int) error {
	if mx != my {
		return fmt.Errorf("%d vs %d samples: %w", mx, my, ErrShapeMismatch)
	}
	if mx < e.MinSamples() {
		return fmt.Errorf("m=%d, need at least %d: %w", mx, e.MinSamples(), ErrInsufficientSamples)
	}

	return nil
}
