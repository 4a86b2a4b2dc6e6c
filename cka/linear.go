// SPDX-License-Identifier: MIT

package cka

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/repsim/hsic"
	"github.com/katalvlaran/repsim/matrix"
	"github.com/katalvlaran/repsim/tensor"
)

// LinearCKA is CKA with a linear kernel bound to one HSIC estimator.
// It is immutable after construction.
type LinearCKA struct {
	est      hsic.Estimator
	parallel bool
}

// Compile-time check.
var _ Comparator = (*LinearCKA)(nil)

// Option customizes a LinearCKA at construction.
type Option func(*LinearCKA)

// WithParallelGram builds the two Gram matrices of a call concurrently.
// Results are identical to the sequential path.
func WithParallelGram() Option {
	return func(c *LinearCKA) {
		c.parallel = true
	}
}

// NewLinearCKA binds a Linear CKA comparator to est.
//
// Errors:
//   - ErrInvalidConfiguration when est is not a declared estimator.
func NewLinearCKA(est hsic.Estimator, opts ...Option) (*LinearCKA, error) {
	if !est.Valid() {
		return nil, fmt.Errorf("NewLinearCKA(%s): %w", est, ErrInvalidConfiguration)
	}
	c := &LinearCKA{est: est}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Estimator returns the bound HSIC estimator.
func (c *LinearCKA) Estimator() hsic.Estimator { return c.est }

// Name returns NameLinearCKA.
func (c *LinearCKA) Name() string { return NameLinearCKA }

// String renders the comparator and its estimator, e.g. "linear_cka(SONG2007)".
func (c *LinearCKA) String() string { return fmt.Sprintf("%s(%s)", NameLinearCKA, c.est) }

// Compare flattens both tensors to (samples × features) and returns
// CKA(x, y).
//
// Errors:
//   - ErrNilInput (nil or zero Tensor), ErrShapeMismatch (sample counts differ), plus every
//     CompareMatrices error.
func (c *LinearCKA) Compare(x, y *tensor.Tensor) (float64, error) {
	if x == nil || y == nil || x.Rank() == 0 || y.Rank() == 0 {
		return 0, fmt.Errorf("Compare: %w", ErrNilInput)
	}
	if x.Samples() != y.Samples() {
		return 0, fmt.Errorf("Compare: %d vs %d samples: %w", x.Samples(), y.Samples(), ErrShapeMismatch)
	}
	X, err := x.Flatten()
	if err != nil {
		return 0, fmt.Errorf("Compare: %w", err)
	}
	Y, err := y.Flatten()
	if err != nil {
		return 0, fmt.Errorf("Compare: %w", err)
	}

	return c.CompareMatrices(X, Y)
}

// CompareMatrices returns CKA(x, y) for two (m × d) representation matrices.
//
// Implementation:
//   - Stage 1: Validate selector, nil inputs, equal m, and m ≥ MinSamples.
//   - Stage 2: Build the centered Gram matrices K and L (once each).
//   - Stage 3: hxx = HSIC(K, K), hyy = HSIC(L, L), hxy = HSIC(K, L).
//   - Stage 4: Reject hxx ≤ 0, hyy ≤ 0 or non-finite terms; return
//     hxy / (√hxx · √hyy).
//
// Errors:
//   - ErrInvalidConfiguration, ErrNilInput, ErrShapeMismatch,
//     ErrInsufficientSamples, ErrNumericDegeneracy.
func (c *LinearCKA) CompareMatrices(x, y matrix.Matrix) (float64, error) {
	// Stage 1: validate.
	if !c.est.Valid() {
		return 0, fmt.Errorf("CompareMatrices(%s): %w", c.est, ErrInvalidConfiguration)
	}
	if matrix.ValidateNotNil(x) != nil || matrix.ValidateNotNil(y) != nil {
		return 0, fmt.Errorf("CompareMatrices: %w", ErrNilInput)
	}
	m := x.Rows()
	if m != y.Rows() {
		return 0, fmt.Errorf("CompareMatrices: %d vs %d samples: %w", m, y.Rows(), ErrShapeMismatch)
	}
	if m < c.est.MinSamples() {
		return 0, fmt.Errorf("CompareMatrices(%s): m=%d, need at least %d: %w",
			c.est, m, c.est.MinSamples(), ErrInsufficientSamples)
	}

	// Stage 2: Gram matrices.
	gx, gy, err := c.grams(x, y)
	if err != nil {
		return 0, fmt.Errorf("CompareMatrices: %w", err)
	}

	// Stage 3: the three HSIC terms.
	hxx, err := c.est.FromGrams(gx, gx)
	if err != nil {
		return 0, fmt.Errorf("CompareMatrices: %w", err)
	}
	hyy, err := c.est.FromGrams(gy, gy)
	if err != nil {
		return 0, fmt.Errorf("CompareMatrices: %w", err)
	}
	hxy, err := c.est.FromGrams(gx, gy)
	if err != nil {
		return 0, fmt.Errorf("CompareMatrices: %w", err)
	}

	// Stage 4: normalize.
	return normalize(c.est, hxy, hxx, hyy)
}

// grams builds both centered Gram matrices, concurrently when configured.
func (c *LinearCKA) grams(x, y matrix.Matrix) (*matrix.Dense, *matrix.Dense, error) {
	if !c.parallel {
		gx, err := hsic.CenteredGram(x)
		if err != nil {
			return nil, nil, err
		}
		gy, err := hsic.CenteredGram(y)
		if err != nil {
			return nil, nil, err
		}

		return gx, gy, nil
	}

	var gx, gy *matrix.Dense
	var g errgroup.Group
	g.Go(func() error {
		var err error
		gx, err = hsic.CenteredGram(x)
		return err
	})
	g.Go(func() error {
		var err error
		gy, err = hsic.CenteredGram(y)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return gx, gy, nil
}

// normalize returns hxy / (√hxx · √hyy) or ErrNumericDegeneracy.
func normalize(est hsic.Estimator, hxy, hxx, hyy float64) (float64, error) {
	if !finite(hxx) || !finite(hyy) || !finite(hxy) || hxx <= 0 || hyy <= 0 {
		return 0, fmt.Errorf("%s: hsic_xx=%g hsic_yy=%g hsic_xy=%g: %w", est, hxx, hyy, hxy, ErrNumericDegeneracy)
	}
	score := hxy / (math.Sqrt(hxx) * math.Sqrt(hyy))
	if !finite(score) {
		return 0, fmt.Errorf("%s: score=%g: %w", est, score, ErrNumericDegeneracy)
	}

	return score, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
