// SPDX-License-Identifier: MIT

package tensor_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/repsim/matrix"
	"github.com/katalvlaran/repsim/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}

	return out
}

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name  string
		shape []int
		data  []float64
		want  error
	}{
		{"empty shape", nil, nil, tensor.ErrEmptyShape},
		{"zero axis", []int{2, 0}, nil, tensor.ErrBadShape},
		{"negative axis", []int{-1}, nil, tensor.ErrBadShape},
		{"short data", []int{2, 3}, seq(5), tensor.ErrDataLength},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tensor.New(tc.shape, tc.data)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNew_CopiesInputs(t *testing.T) {
	shape := []int{2, 2}
	data := seq(4)
	ts, err := tensor.New(shape, data)
	require.NoError(t, err)

	shape[0], data[0] = 9, 99
	assert.Equal(t, []int{2, 2}, ts.Shape())
	assert.Equal(t, 0.0, ts.Data()[0])
}

func TestFlatten_FoldsTrailingAxes(t *testing.T) {
	ts, err := tensor.New([]int{2, 2, 3}, seq(12))
	require.NoError(t, err)
	assert.Equal(t, 3, ts.Rank())
	assert.Equal(t, 2, ts.Samples())
	assert.Equal(t, 6, ts.Features())

	X, err := ts.Flatten()
	require.NoError(t, err)
	assert.Equal(t, 2, X.Rows())
	assert.Equal(t, 6, X.Cols())

	row1, err := X.RawRow(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 7, 8, 9, 10, 11}, row1)
}

func TestFlatten_RankOne(t *testing.T) {
	ts, err := tensor.New([]int{3}, []float64{1, 2, 3})
	require.NoError(t, err)

	X, err := ts.Flatten()
	require.NoError(t, err)
	assert.Equal(t, 3, X.Rows())
	assert.Equal(t, 1, X.Cols())
}

func TestFlatten_NonFinite(t *testing.T) {
	ts, err := tensor.New([]int{2}, []float64{1, math.Inf(1)})
	require.NoError(t, err)

	_, err = ts.Flatten()
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestFromRowsAndMatrix(t *testing.T) {
	ts, err := tensor.FromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, ts.Shape())

	_, err = tensor.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
	_, err = tensor.FromRows(nil)
	require.ErrorIs(t, err, tensor.ErrBadShape)

	X, err := ts.Flatten()
	require.NoError(t, err)
	back, err := tensor.FromMatrix(X)
	require.NoError(t, err)
	assert.Equal(t, ts.Data(), back.Data())

	_, err = tensor.FromMatrix(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSelect(t *testing.T) {
	ts, err := tensor.New([]int{3, 2}, seq(6))
	require.NoError(t, err)

	sel, err := ts.Select([]int{2, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, sel.Shape())
	assert.Equal(t, []float64{4, 5, 0, 1, 4, 5}, sel.Data())

	_, err = ts.Select([]int{3})
	require.ErrorIs(t, err, tensor.ErrIndexOutOfRange)
	_, err = ts.Select(nil)
	require.ErrorIs(t, err, tensor.ErrBadShape)
}

func TestSubsample_SeededAndAligned(t *testing.T) {
	a, err := tensor.New([]int{10, 2}, seq(20))
	require.NoError(t, err)
	b := a.Scale(-1)

	sa, err := a.Subsample(4, 42)
	require.NoError(t, err)
	sb, err := b.Subsample(4, 42)
	require.NoError(t, err)
	assert.Equal(t, 4, sa.Samples())

	// Same seed picks the same rows in both tensors.
	da, db := sa.Data(), sb.Data()
	for i := range da {
		assert.Equal(t, -da[i], db[i])
	}

	again, err := a.Subsample(4, 42)
	require.NoError(t, err)
	assert.Equal(t, sa.Data(), again.Data())

	_, err = a.Subsample(11, 1)
	require.ErrorIs(t, err, tensor.ErrNotEnoughSamples)
	_, err = a.Subsample(0, 1)
	require.ErrorIs(t, err, tensor.ErrBadShape)
}

func TestConcat(t *testing.T) {
	a, err := tensor.New([]int{1, 2, 2}, seq(4))
	require.NoError(t, err)
	b, err := tensor.New([]int{2, 2, 2}, seq(8))
	require.NoError(t, err)

	c, err := tensor.Concat(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 2}, c.Shape())
	assert.Equal(t, append(seq(4), seq(8)...), c.Data())

	odd, err := tensor.New([]int{1, 4}, seq(4))
	require.NoError(t, err)
	_, err = tensor.Concat(a, odd)
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = tensor.Concat()
	require.ErrorIs(t, err, tensor.ErrEmptyShape)
}

func TestScale(t *testing.T) {
	a, err := tensor.New([]int{2}, []float64{1, -2})
	require.NoError(t, err)

	s := a.Scale(3)
	assert.Equal(t, []float64{3, -6}, s.Data())
	assert.Equal(t, []float64{1, -2}, a.Data())
	assert.Equal(t, "Tensor[2]", s.String())
}

func TestZeroTensor(t *testing.T) {
	var z tensor.Tensor
	assert.Equal(t, 0, z.Rank())
	assert.Equal(t, 0, z.Samples())
	assert.Equal(t, 0, z.Features())

	_, err := z.Flatten()
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = z.Select([]int{0})
	require.ErrorIs(t, err, tensor.ErrIndexOutOfRange)
	_, err = z.Subsample(1, 1)
	require.ErrorIs(t, err, tensor.ErrNotEnoughSamples)
	_, err = tensor.Concat(&z)
	require.ErrorIs(t, err, tensor.ErrEmptyShape)
}
