// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"

	"github.com/katalvlaran/repsim/matrix"
)

// Tensor is an immutable sample-first N-d array in row-major order.
// shape[0] is the sample count; the product of shape[1:] is the feature count.
type Tensor struct {
	shape []int
	data  []float64
}

// tensorErrorf attaches the operation name to a sentinel.
func tensorErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// checkShape validates axis lengths and returns their product.
func checkShape(op string, shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, tensorErrorf(op, ErrEmptyShape)
	}
	n := 1
	for axis, s := range shape {
		if s <= 0 {
			return 0, fmt.Errorf("%s: axis %d has length %d: %w", op, axis, s, ErrBadShape)
		}
		n *= s
	}

	return n, nil
}

// New returns a tensor of the given shape holding a copy of data.
//
// Errors:
//   - ErrEmptyShape, ErrBadShape, ErrDataLength.
func New(shape []int, data []float64) (*Tensor, error) {
	n, err := checkShape("New", shape)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, fmt.Errorf("New: len(data)=%d want %d: %w", len(data), n, ErrDataLength)
	}

	return &Tensor{shape: append([]int(nil), shape...), data: append([]float64(nil), data...)}, nil
}

// FromRows builds a rank-2 tensor from equally long sample rows.
func FromRows(rows [][]float64) (*Tensor, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, tensorErrorf("FromRows", ErrBadShape)
	}
	d := len(rows[0])
	data := make([]float64, 0, len(rows)*d)
	for i, row := range rows {
		if len(row) != d {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(row), d, ErrShapeMismatch)
		}
		data = append(data, row...)
	}

	return &Tensor{shape: []int{len(rows), d}, data: data}, nil
}

// FromMatrix copies an (m × d) matrix into a rank-2 tensor.
func FromMatrix(m matrix.Matrix) (*Tensor, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, tensorErrorf("FromMatrix", err)
	}
	r, c := m.Rows(), m.Cols()
	data := make([]float64, r*c)
	var v float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, tensorErrorf("FromMatrix", err)
			}
			data[i*c+j] = v
		}
	}

	return &Tensor{shape: []int{r, c}, data: data}, nil
}

// Shape returns a copy of the axis lengths.
func (t *Tensor) Shape() []int { return append([]int(nil), t.shape...) }

// Rank returns the number of axes.
func (t *Tensor) Rank() int { return len(t.shape) }

// Samples returns the length of the leading (sample) axis, 0 for the zero Tensor.
func (t *Tensor) Samples() int {
	if len(t.shape) == 0 {
		return 0
	}
	return t.shape[0]
}

// Features returns the product of every axis after the sample axis (1 for
// rank-1 tensors, 0 for the zero Tensor).
func (t *Tensor) Features() int {
	if len(t.shape) == 0 {
		return 0
	}
	return len(t.data) / t.shape[0]
}

// Data returns a copy of the row-major buffer.
func (t *Tensor) Data() []float64 { return append([]float64(nil), t.data...) }

// String renders the shape, e.g. "Tensor[64 3 8 8]".
func (t *Tensor) String() string { return fmt.Sprintf("Tensor%v", t.shape) }

// Flatten folds every axis after the sample axis into a single feature axis
// and returns the (Samples × Features) matrix. Sample order is preserved
// because the buffer is already sample-major.
//
// Errors:
//   - matrix.ErrNaNInf when the tensor holds non-finite values.
func (t *Tensor) Flatten() (*matrix.Dense, error) {
	X, err := matrix.NewDenseFrom(t.Samples(), t.Features(), t.data)
	if err != nil {
		return nil, tensorErrorf("Flatten", err)
	}

	return X, nil
}
