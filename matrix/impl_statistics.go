// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column statistics used before kernel computations:
//     ColumnMeans and CenterColumns (subtract per-column mean).
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-path accumulates whole rows through gonum/floats.

package matrix

import "gonum.org/v1/gonum/floats"

// Operation name constants for unified error wrapping.
const (
	opColumnMeans   = "ColumnMeans"
	opCenterColumns = "CenterColumns"
)

// columnMeans computes Σ_i X[i,j] / r for every column j.
//
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Dense fast-path adds each row into the accumulator with floats.Add;
//     other implementations read through At.
//   - Stage 3: Scale the sums by 1/r.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func columnMeans(X Matrix) ([]float64, error) {
	// Stage 1 (Validate): ensure X is present.
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	r, c := X.Rows(), X.Cols()
	means := make([]float64, c)

	// Stage 2 (Execute): Dense fast-path over row slices.
	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			floats.Add(means, d.data[i*c:(i+1)*c])
		}
	} else {
		var v float64
		var err error
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, matrixErrorf(opColumnMeans, err)
				}
				means[j] += v
			}
		}
	}

	// Stage 3 (Finalize): sums → averages.
	floats.Scale(1.0/float64(r), means)

	return means, nil
}

// centerColumns subtracts the per-column mean from every element (column-wise centering).
//
// Implementation:
//   - Stage 1: Compute column means (see columnMeans).
//   - Stage 2: Apply ewBroadcastSubCols to produce a centered copy.
//
// Returns:
//   - *Dense: centered copy (r×c); X is never mutated.
//   - []float64: column means (len=c).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func centerColumns(X Matrix) (*Dense, []float64, error) {
	means, err := columnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}
