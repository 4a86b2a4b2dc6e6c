// SPDX-License-Identifier: MIT

package synth

import (
	"fmt"

	"github.com/katalvlaran/repsim/matrix"
	"github.com/katalvlaran/repsim/tensor"
)

// Gaussian draws a tensor of the given shape with i.i.d. N(mean, stddev²) entries.
func Gaussian(shape []int, opts ...Option) (*tensor.Tensor, error) {
	n := 1
	for _, s := range shape {
		if s <= 0 {
			return nil, fmt.Errorf("Gaussian %v: %w", shape, ErrBadSize)
		}
		n *= s
	}
	cfg := newConfig(opts...)

	return tensor.New(shape, cfg.draw(n))
}

// Noisy returns t plus i.i.d. N(mean, stddev²) noise of the same shape.
func Noisy(t *tensor.Tensor, opts ...Option) (*tensor.Tensor, error) {
	cfg := newConfig(opts...)
	data := t.Data()
	noise := cfg.draw(len(data))
	for i := range data {
		data[i] += noise[i]
	}

	return tensor.New(t.Shape(), data)
}

// Orthogonal returns a random n×n orthogonal matrix: the Q factor of the
// Householder QR of a standard Gaussian matrix. Mean and stddev options
// are ignored.
func Orthogonal(n int, opts ...Option) (*matrix.Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Orthogonal(%d): %w", n, ErrBadSize)
	}
	cfg := newConfig(opts...)
	cfg.mean, cfg.stddev = defaultMean, defaultStdDev

	A, err := matrix.NewDenseFrom(n, n, cfg.draw(n*n))
	if err != nil {
		return nil, fmt.Errorf("Orthogonal: %w", err)
	}
	Q, _, err := matrix.QR(A)
	if err != nil {
		return nil, fmt.Errorf("Orthogonal: %w", err)
	}

	return Q, nil
}

// Rotate flattens t to (m × d) and returns the rank-2 tensor X·R.
// R must have d rows.
func Rotate(t *tensor.Tensor, R matrix.Matrix) (*tensor.Tensor, error) {
	X, err := t.Flatten()
	if err != nil {
		return nil, fmt.Errorf("Rotate: %w", err)
	}
	XR, err := matrix.Mul(X, R)
	if err != nil {
		return nil, fmt.Errorf("Rotate: %w", err)
	}

	return tensor.FromMatrix(XR)
}

// Permutation returns a random permutation of 0..n-1.
func Permutation(n int, opts ...Option) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Permutation(%d): %w", n, ErrBadSize)
	}

	return newConfig(opts...).rng.Perm(n), nil
}

// draw returns n Gaussian values from the configured distribution.
func (c config) draw(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = c.mean + c.stddev*c.rng.NormFloat64()
	}

	return out
}
