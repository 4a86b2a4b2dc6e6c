// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Gram matrices (G = X·Xᵀ, G[i,j] = ⟨x_i, x_j⟩) of representation matrices.
//   - Zero-copy bridge between *Dense and gonum's *mat.Dense.
//
// Determinism & Performance:
//   - Gram delegates the O(m²·d) product to gonum SymOuterK (BLAS syrk), which
//     fills one triangle; the result is mirrored so the returned *Dense is
//     exactly symmetric.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const (
	opGram      = "Gram"
	opFromGonum = "FromGonum"
)

// Gram returns the m×m matrix of row inner products of X (m×d).
//
// Implementation:
//   - Stage 1: Validate X and materialize as *Dense if needed.
//   - Stage 2: Wrap the flat buffer as a gonum matrix (no copy) and run SymOuterK.
//   - Stage 3: Copy the upper triangle into both halves of a fresh *Dense.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions.
//
// Complexity:
//   - Time O(m²·d), Space O(m²).
func Gram(X Matrix) (*Dense, error) {
	dx, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	m := dx.r

	var sym mat.SymDense
	sym.SymOuterK(1, AsGonum(dx))

	res, err := NewDense(m, m)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	var v float64
	for i := 0; i < m; i++ {
		for j := i; j < m; j++ {
			v = sym.At(i, j)
			res.data[i*m+j] = v
			res.data[j*m+i] = v
		}
	}

	return res, nil
}

// AsGonum exposes d as a gonum *mat.Dense sharing the same backing buffer.
// Mutations through either view are visible in both.
// Complexity: O(1).
func AsGonum(d *Dense) *mat.Dense {
	return mat.NewDense(d.r, d.c, d.data)
}

// FromGonum copies any gonum matrix into a fresh *Dense, enforcing the numeric policy.
//
// Errors:
//   - ErrNilMatrix (nil source), ErrInvalidDimensions (empty), ErrNaNInf.
//
// Complexity: O(r*c).
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(opFromGonum, ErrInvalidDimensions)
	}
	buf := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			buf[i*c+j] = src.At(i, j)
		}
	}
	out, err := NewDenseFrom(r, c, buf)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	return out, nil
}
