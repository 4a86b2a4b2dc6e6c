// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/repsim/matrix"
	"github.com/stretchr/testify/require"
)

func TestMul(t *testing.T) {
	A := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	B := NewFilledDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})

	C, err := matrix.Mul(A, B)
	require.NoError(t, err)
	CompareClose(t, C, NewFilledDense(t, 2, 2, []float64{58, 64, 139, 154}), 0, 0)

	Cs, err := matrix.Mul(hide{A}, hide{B})
	require.NoError(t, err)
	CompareClose(t, Cs, C, 0, 0)

	_, err = matrix.Mul(A, A)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, A)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTranspose(t *testing.T) {
	A := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	At, err := matrix.Transpose(A)
	require.NoError(t, err)
	CompareClose(t, At, NewFilledDense(t, 3, 2, []float64{1, 4, 2, 5, 3, 6}), 0, 0)
}

func TestScale(t *testing.T) {
	A := NewFilledDense(t, 1, 3, []float64{1, -2, 3})
	S, err := matrix.Scale(A, -2)
	require.NoError(t, err)
	CompareClose(t, S, NewFilledDense(t, 1, 3, []float64{-2, 4, -6}), 0, 0)

	_, err = matrix.Scale(A, math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestQR_OrthogonalAndReconstructs(t *testing.T) {
	A := RandomDense(t, 6, 6, 42)

	Q, R, err := matrix.QR(A)
	require.NoError(t, err)

	// QᵀQ = I
	Qt, err := matrix.Transpose(Q)
	require.NoError(t, err)
	QtQ, err := matrix.Mul(Qt, Q)
	require.NoError(t, err)
	I, err := matrix.NewIdentity(6)
	require.NoError(t, err)
	CompareClose(t, QtQ, I, 0, 1e-12)

	// A = Qᵀ R
	QtR, err := matrix.Mul(Qt, R)
	require.NoError(t, err)
	CompareClose(t, QtR, A, 0, 1e-12)

	// R is upper triangular
	for i := 1; i < 6; i++ {
		for j := 0; j < i; j++ {
			if math.Abs(MustAt(t, R, i, j)) > 1e-12 {
				t.Fatalf("R[%d,%d]=%g not ~0", i, j, MustAt(t, R, i, j))
			}
		}
	}
}

func TestQR_NonSquare(t *testing.T) {
	_, _, err := matrix.QR(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
