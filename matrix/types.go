// SPDX-License-Identifier: MIT

// Package matrix: the Matrix contract shared by every kernel.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Kernels accept any Matrix and take a flat-slice fast path when the concrete
// value is *Dense; other implementations go through At/Set.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
