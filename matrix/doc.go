// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra kernels behind the
// representation-similarity core.
//
// 🚀 What is inside?
//
//	A small, deterministic toolbox for (samples × features) matrices:
//	  • Dense row-major storage with bounds-safe At/Set and a finite-value policy
//	  • Column centering (CenterColumns) and Gram matrices (Gram = X·Xᵀ)
//	  • Reductions used by HSIC estimators: Sum, FrobeniusInner,
//	    UpperTriangleInner, OnesBilinear, RowSums/ColSums, ZeroDiagonal
//	  • Classic kernels: Mul, Transpose, Scale, Householder QR
//	  • A zero-copy bridge to gonum (AsGonum / FromGonum)
//
// ✨ Policy:
//   - Public functions never panic on user input; they return sentinel errors
//     (see errors.go) wrapped with the operation name, matchable via errors.Is.
//   - Inputs are never mutated; every kernel returns a fresh *Dense.
//   - Loop orders are fixed, so results are bit-for-bit reproducible.
//
// ⚙️ Usage:
//
//	X, _ := matrix.NewDenseFrom(3, 2, []float64{1, 2, 3, 4, 5, 6})
//	Xc, means, _ := matrix.CenterColumns(X)
//	G, _ := matrix.Gram(Xc) // 3×3, symmetric
//	total, _ := matrix.Sum(G)
//
// Performance:
//
//   - Gram on *Dense runs through gonum's SymOuterK (BLAS syrk): O(m²·d).
//   - Reductions on *Dense walk the flat buffer once: O(m²).
package matrix
