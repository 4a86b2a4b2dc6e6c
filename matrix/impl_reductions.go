// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Scalar and vector reductions over (Gram) matrices, as consumed by HSIC
//     estimators: Sum, FrobeniusInner, UpperTriangleInner, OnesBilinear,
//     RowSums, ColSums, plus the ZeroDiagonal transform.
//
// Determinism & Performance:
//   - Every reduction walks the flat buffer in fixed row order through
//     gonum/floats; results are reproducible bit-for-bit.

package matrix

import "gonum.org/v1/gonum/floats"

const (
	opSum                = "Sum"
	opFrobeniusInner     = "FrobeniusInner"
	opUpperTriangleInner = "UpperTriangleInner"
	opOnesBilinear       = "OnesBilinear"
	opRowSums            = "RowSums"
	opColSums            = "ColSums"
	opZeroDiagonal       = "ZeroDiagonal"
)

// Sum returns Σ_ij A[i,j].
// Complexity: O(r*c).
func Sum(A Matrix) (float64, error) {
	d, err := asDense(A)
	if err != nil {
		return 0, matrixErrorf(opSum, err)
	}

	return floats.Sum(d.data), nil
}

// FrobeniusInner returns ⟨A, B⟩_F = Σ_ij A[i,j]·B[i,j] = sum(A ⊙ B).
// For symmetric A, B this equals tr(A·B).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(r*c), no temporary Hadamard matrix is allocated.
func FrobeniusInner(A, B Matrix) (float64, error) {
	if err := ValidateBinarySameShape(A, B); err != nil {
		return 0, matrixErrorf(opFrobeniusInner, err)
	}
	da, err := asDense(A)
	if err != nil {
		return 0, matrixErrorf(opFrobeniusInner, err)
	}
	db, err := asDense(B)
	if err != nil {
		return 0, matrixErrorf(opFrobeniusInner, err)
	}

	return floats.Dot(da.data, db.data), nil
}

// UpperTriangleInner returns Σ_{i<j} A[i,j]·B[i,j] over the strict upper triangle.
// The diagonal never contributes, whatever it holds.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
//
// Complexity: O(n²/2).
func UpperTriangleInner(A, B Matrix) (float64, error) {
	if err := ValidateSquare(A); err != nil {
		return 0, matrixErrorf(opUpperTriangleInner, err)
	}
	if err := ValidateBinarySameShape(A, B); err != nil {
		return 0, matrixErrorf(opUpperTriangleInner, err)
	}
	da, err := asDense(A)
	if err != nil {
		return 0, matrixErrorf(opUpperTriangleInner, err)
	}
	db, err := asDense(B)
	if err != nil {
		return 0, matrixErrorf(opUpperTriangleInner, err)
	}

	n := da.r
	total := ZeroSum
	for i := 0; i < n-1; i++ {
		lo, hi := i*n+i+1, (i+1)*n
		total += floats.Dot(da.data[lo:hi], db.data[lo:hi])
	}

	return total, nil
}

// RowSums returns r where r[i] = Σ_j A[i,j].
// Complexity: O(r*c).
func RowSums(A Matrix) ([]float64, error) {
	d, err := asDense(A)
	if err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	out := make([]float64, d.r)
	for i := 0; i < d.r; i++ {
		out[i] = floats.Sum(d.data[i*d.c : (i+1)*d.c])
	}

	return out, nil
}

// ColSums returns c where c[j] = Σ_i A[i,j].
// Complexity: O(r*c).
func ColSums(A Matrix) ([]float64, error) {
	d, err := asDense(A)
	if err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	out := make([]float64, d.c)
	for i := 0; i < d.r; i++ {
		floats.Add(out, d.data[i*d.c:(i+1)*d.c])
	}

	return out, nil
}

// OnesBilinear returns 1ᵀ·A·B·1 without forming A·B:
// 1ᵀ A B 1 = (Aᵀ1)·(B1) = ColSums(A) · RowSums(B).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (A.Cols != B.Rows).
//
// Complexity: O(r*n + n*c) instead of O(r*n*c).
func OnesBilinear(A, B Matrix) (float64, error) {
	if err := ValidateMulCompatible(A, B); err != nil {
		return 0, matrixErrorf(opOnesBilinear, err)
	}
	cs, err := ColSums(A)
	if err != nil {
		return 0, matrixErrorf(opOnesBilinear, err)
	}
	rs, err := RowSums(B)
	if err != nil {
		return 0, matrixErrorf(opOnesBilinear, err)
	}

	return floats.Dot(cs, rs), nil
}

// ZeroDiagonal returns a copy of the square matrix A with A[i,i] = 0.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity: O(n²) copy.
func ZeroDiagonal(A Matrix) (*Dense, error) {
	if err := ValidateSquare(A); err != nil {
		return nil, matrixErrorf(opZeroDiagonal, err)
	}
	d, err := asDense(A)
	if err != nil {
		return nil, matrixErrorf(opZeroDiagonal, err)
	}
	out := d.Clone().(*Dense)
	for i := 0; i < out.r; i++ {
		out.data[i*out.c+i] = 0
	}

	return out, nil
}
