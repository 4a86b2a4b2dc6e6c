// SPDX-License-Identifier: MIT

// Package hsic estimates the Hilbert–Schmidt Independence Criterion of two
// representation matrices with a linear kernel.
//
// 🚀 What is HSIC?
//
//	Given two views of the same m samples, X (m×d1) and Y (m×d2), HSIC
//	measures how strongly the pairwise-similarity structure of X agrees with
//	that of Y. With a linear kernel the similarity structures are the Gram
//	matrices K = XcXcᵀ and L = YcYcᵀ of the column-centered inputs.
//
// ✨ Estimators (closed set, chosen once):
//
//	GRETTON2006  Σ K⊙L / (m(m−1))                               m ≥ 2
//	SONG2007     [tr(K̃L̃) + 1ᵀK̃1·1ᵀL̃1/((m−1)(m−2))
//	              − 2/(m−2)·1ᵀK̃L̃1] / (m(m−3))                   m ≥ 4
//	LANGE2022    2·Σ_{i<j} K̂_ij L̂_ij / (m(m−3))                  m ≥ 4
//
//	K̃ is K with its diagonal zeroed; K̂ is the U-centered K̃:
//	K̂_ij = K̃_ij − r_i/(m−2) − r_j/(m−2) + s/((m−1)(m−2)), i ≠ j,
//	with r the row sums and s the total of K̃. SONG2007 and LANGE2022 are
//	the same unbiased U-statistic written two ways, so they agree to
//	rounding error.
//
// ⚙️ Usage:
//
//	v, err := hsic.Song2007.Compute(X, Y)
//	switch {
//	case errors.Is(err, hsic.ErrInsufficientSamples): // m ≤ 3
//	case errors.Is(err, hsic.ErrShapeMismatch):       // X.Rows() != Y.Rows()
//	}
//
// Callers needing several HSIC values over the same inputs (CKA needs
// three) build each Gram matrix once with CenteredGram and call FromGrams.
//
// Performance:
//
//   - Gram construction O(m²·d); estimator reductions O(m²) (SONG2007 O(m²)
//     via row/column sums, never an explicit m×m product).
//   - Memory O(m²) per Gram matrix.
package hsic
