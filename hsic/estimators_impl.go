// SPDX-License-Identifier: MIT

package hsic

import (
	"github.com/katalvlaran/repsim/matrix"
	"gonum.org/v1/gonum/floats"
)

// gretton computes Σ K⊙L / (m(m−1)).
func gretton(k, l matrix.Matrix) (float64, error) {
	m := float64(k.Rows())
	kl, err := matrix.FrobeniusInner(k, l)
	if err != nil {
		return 0, err
	}

	return kl / (m * (m - 1)), nil
}

// song computes the unbiased estimator on zero-diagonal Grams:
//
//	[tr(K̃L̃) + 1ᵀK̃1·1ᵀL̃1/((m−1)(m−2)) − 2/(m−2)·1ᵀK̃L̃1] / (m(m−3))
//
// tr(K̃L̃) = Σ K̃⊙L̃ because both matrices are symmetric.
func song(k, l matrix.Matrix) (float64, error) {
	m := float64(k.Rows())
	kt, err := matrix.ZeroDiagonal(k)
	if err != nil {
		return 0, err
	}
	lt, err := matrix.ZeroDiagonal(l)
	if err != nil {
		return 0, err
	}

	trace, err := matrix.FrobeniusInner(kt, lt)
	if err != nil {
		return 0, err
	}
	sumK, err := matrix.Sum(kt)
	if err != nil {
		return 0, err
	}
	sumL, err := matrix.Sum(lt)
	if err != nil {
		return 0, err
	}
	cross, err := matrix.OnesBilinear(kt, lt)
	if err != nil {
		return 0, err
	}

	num := trace + sumK*sumL/((m-1)*(m-2)) - 2/(m-2)*cross

	return num / (m * (m - 3)), nil
}

// lange computes 2·Σ_{i<j} K̂_ij L̂_ij / (m(m−3)) on U-centered Grams.
func lange(k, l matrix.Matrix) (float64, error) {
	m := float64(k.Rows())
	kh, err := uCenter(k)
	if err != nil {
		return 0, err
	}
	lh, err := uCenter(l)
	if err != nil {
		return 0, err
	}
	upper, err := matrix.UpperTriangleInner(kh, lh)
	if err != nil {
		return 0, err
	}

	return 2 * upper / (m * (m - 3)), nil
}

// uCenter returns the U-centered form of k with a zero diagonal:
//
//	K̂_ij = K̃_ij − r_i/(m−2) − r_j/(m−2) + s/((m−1)(m−2)),  i ≠ j
//
// where K̃ is k with its diagonal zeroed, r its row sums and s its total.
// Requires m ≥ 3.
func uCenter(k matrix.Matrix) (*matrix.Dense, error) {
	kt, err := matrix.ZeroDiagonal(k)
	if err != nil {
		return nil, err
	}
	rows, err := matrix.RowSums(kt)
	if err != nil {
		return nil, err
	}
	n := kt.Rows()
	m := float64(n)
	shift := floats.Sum(rows) / ((m - 1) * (m - 2))

	out := make([]float64, n*n)
	var row []float64
	for i := 0; i < n; i++ {
		if row, err = kt.RawRow(i); err != nil {
			return nil, err
		}
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			out[i*n+j] = row[j] - rows[i]/(m-2) - rows[j]/(m-2) + shift
		}
	}

	return matrix.NewDenseFrom(n, n, out)
}
