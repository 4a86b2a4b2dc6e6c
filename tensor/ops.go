// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"math/rand"
	"slices"
)

// Select returns a tensor made of the given samples, in the given order.
// Indices may repeat.
//
// Errors:
//   - ErrBadShape (no indices), ErrIndexOutOfRange.
func (t *Tensor) Select(indices []int) (*Tensor, error) {
	if len(indices) == 0 {
		return nil, tensorErrorf("Select", ErrBadShape)
	}
	n, d := t.Samples(), t.Features()
	data := make([]float64, 0, len(indices)*d)
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("Select: index %d not in [0,%d): %w", idx, n, ErrIndexOutOfRange)
		}
		data = append(data, t.data[idx*d:(idx+1)*d]...)
	}
	shape := t.Shape()
	shape[0] = len(indices)

	return &Tensor{shape: shape, data: data}, nil
}

// Subsample keeps m samples chosen as the first m entries of a seeded random
// permutation of the sample axis. The same seed always picks the same rows,
// so two tensors observed on the same inputs stay aligned.
//
// Errors:
//   - ErrBadShape (m <= 0), ErrNotEnoughSamples (m > Samples).
func (t *Tensor) Subsample(m int, seed int64) (*Tensor, error) {
	if m <= 0 {
		return nil, tensorErrorf("Subsample", ErrBadShape)
	}
	if m > t.Samples() {
		return nil, fmt.Errorf("Subsample: want %d of %d: %w", m, t.Samples(), ErrNotEnoughSamples)
	}
	perm := rand.New(rand.NewSource(seed)).Perm(t.Samples())

	return t.Select(perm[:m])
}

// Concat stacks tensors along the sample axis. All inputs must share the
// per-sample shape (every axis after the first).
//
// Errors:
//   - ErrEmptyShape (no tensors), ErrShapeMismatch.
func Concat(ts ...*Tensor) (*Tensor, error) {
	if len(ts) == 0 {
		return nil, tensorErrorf("Concat", ErrEmptyShape)
	}
	if ts[0] == nil || ts[0].Rank() == 0 {
		return nil, tensorErrorf("Concat", ErrEmptyShape)
	}
	tail := ts[0].shape[1:]
	samples, size := 0, 0
	for i, t := range ts {
		if t == nil || t.Rank() == 0 || !slices.Equal(t.shape[1:], tail) {
			return nil, fmt.Errorf("Concat: tensor %d: %w", i, ErrShapeMismatch)
		}
		samples += t.Samples()
		size += len(t.data)
	}
	data := make([]float64, 0, size)
	for _, t := range ts {
		data = append(data, t.data...)
	}
	shape := ts[0].Shape()
	shape[0] = samples

	return &Tensor{shape: shape, data: data}, nil
}

// Scale returns a copy with every element multiplied by a.
func (t *Tensor) Scale(a float64) *Tensor {
	data := make([]float64, len(t.data))
	for i, v := range t.data {
		data[i] = a * v
	}

	return &Tensor{shape: t.Shape(), data: data}
}
