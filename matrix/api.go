// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points over the private statistics and ew* kernels.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.

package matrix

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// ColumnMeans returns the per-column means of X (length = Cols(X)).
// Time: O(r*c). Space: O(c).
func ColumnMeans(X Matrix) ([]float64, error) { return columnMeans(X) }

// CenterColumns returns a centered copy Xc = X − mean(X, by columns) and the column means.
// After centering every column of Xc sums to zero (up to rounding).
// Time: O(r*c). Space: O(r*c). Deterministic.
func CenterColumns(X Matrix) (*Dense, []float64, error) { return centerColumns(X) }

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1) for *Dense operands.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
