// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/repsim/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sym3 is a small symmetric fixture:
//
//	[1 2 3]
//	[2 4 5]
//	[3 5 6]
func sym3(t *testing.T) *matrix.Dense {
	t.Helper()
	return NewFilledDense(t, 3, 3, []float64{1, 2, 3, 2, 4, 5, 3, 5, 6})
}

func TestSum(t *testing.T) {
	A := sym3(t)

	s, err := matrix.Sum(A)
	require.NoError(t, err)
	assert.Equal(t, 31.0, s)

	s, err = matrix.Sum(hide{A})
	require.NoError(t, err)
	assert.Equal(t, 31.0, s)
}

func TestFrobeniusInner(t *testing.T) {
	A := sym3(t)

	v, err := matrix.FrobeniusInner(A, A)
	require.NoError(t, err)
	assert.Equal(t, 129.0, v)

	v, err = matrix.FrobeniusInner(hide{A}, A)
	require.NoError(t, err)
	assert.Equal(t, 129.0, v)

	_, err = matrix.FrobeniusInner(A, MustDense(t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FrobeniusInner(nil, A)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestUpperTriangleInner_IgnoresDiagonal(t *testing.T) {
	A := sym3(t)

	v, err := matrix.UpperTriangleInner(A, A)
	require.NoError(t, err)
	assert.Equal(t, 38.0, v) // 2·2 + 3·3 + 5·5

	Z, err := matrix.ZeroDiagonal(A)
	require.NoError(t, err)
	full, err := matrix.FrobeniusInner(Z, Z)
	require.NoError(t, err)
	assert.Equal(t, 2*v, full, "symmetric zero-diagonal: full inner = 2 × upper")

	_, err = matrix.UpperTriangleInner(MustDense(t, 2, 3), MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestUpperTriangleInner_OneByOne(t *testing.T) {
	A := NewFilledDense(t, 1, 1, []float64{7})
	v, err := matrix.UpperTriangleInner(A, A)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestRowColSums(t *testing.T) {
	A := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	rs, err := matrix.RowSums(A)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 15}, rs)

	cs, err := matrix.ColSums(hide{A})
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 7, 9}, cs)
}

func TestOnesBilinear(t *testing.T) {
	A := sym3(t)
	v, err := matrix.OnesBilinear(A, A)
	require.NoError(t, err)

	AA, err := matrix.Mul(A, A)
	require.NoError(t, err)
	want, err := matrix.Sum(AA)
	require.NoError(t, err)
	assert.Equal(t, want, v)
	assert.Equal(t, 353.0, v)

	R := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	ones := NewFilledDense(t, 3, 1, []float64{1, 1, 1})
	v, err = matrix.OnesBilinear(R, ones)
	require.NoError(t, err)
	assert.Equal(t, 21.0, v)

	_, err = matrix.OnesBilinear(R, R)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestZeroDiagonal(t *testing.T) {
	A := sym3(t)
	Z, err := matrix.ZeroDiagonal(A)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 0.0, MustAt(t, Z, i, i))
	}
	assert.Equal(t, 5.0, MustAt(t, Z, 1, 2))
	assert.Equal(t, 4.0, MustAt(t, A, 1, 1), "input must not be mutated")

	_, err = matrix.ZeroDiagonal(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
