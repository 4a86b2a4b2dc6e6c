// SPDX-License-Identifier: MIT

package hsic_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/repsim/hsic"
	"github.com/katalvlaran/repsim/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture: 5 samples, X has 2 features and Y has 1.
func fixture(t *testing.T) (*matrix.Dense, *matrix.Dense) {
	t.Helper()
	x, err := matrix.NewDenseFrom(5, 2, []float64{1, 2, 0, 1, 3, -1, 2, 2, -1, 0})
	require.NoError(t, err)
	y, err := matrix.NewDenseFrom(5, 1, []float64{1, 2, 0, 4, 1})
	require.NoError(t, err)

	return x, y
}

func gaussian(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.NormFloat64()
	}
	d, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return d
}

func TestCompute_KnownValues(t *testing.T) {
	x, y := fixture(t)

	cases := []struct {
		est  hsic.Estimator
		a, b *matrix.Dense
		want float64
	}{
		{hsic.Gretton2006, x, y, 1.568},
		{hsic.Song2007, x, y, -1.4},
		{hsic.Lange2022, x, y, -1.4},
		{hsic.Gretton2006, x, x, 7.412},
		{hsic.Song2007, x, x, 10.0 / 3.0},
		{hsic.Song2007, y, y, 2.5},
		{hsic.Lange2022, y, y, 2.5},
	}
	for _, tc := range cases {
		t.Run(tc.est.String(), func(t *testing.T) {
			got, err := tc.est.Compute(tc.a, tc.b)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func TestSongLangeAgree(t *testing.T) {
	for _, m := range []int{4, 5, 10, 37} {
		x := gaussian(t, m, 6, int64(m))
		y := gaussian(t, m, 3, int64(100+m))

		s, err := hsic.Song2007.Compute(x, y)
		require.NoError(t, err)
		l, err := hsic.Lange2022.Compute(x, y)
		require.NoError(t, err)

		assert.InDelta(t, s, l, 1e-9*(1+math.Abs(s)), "m=%d", m)
	}
}

func TestCompute_Symmetric(t *testing.T) {
	x := gaussian(t, 12, 4, 1)
	y := gaussian(t, 12, 7, 2)
	for _, e := range hsic.Estimators() {
		xy, err := e.Compute(x, y)
		require.NoError(t, err)
		yx, err := e.Compute(y, x)
		require.NoError(t, err)
		assert.InDelta(t, xy, yx, 1e-9, e.String())
	}
}

func TestCompute_CenteringIsInternal(t *testing.T) {
	x := gaussian(t, 8, 3, 5)
	y := gaussian(t, 8, 2, 6)
	shifted, err := matrix.NewDenseFrom(8, 3, shiftAll(t, x, 10))
	require.NoError(t, err)

	for _, e := range hsic.Estimators() {
		a, err := e.Compute(x, y)
		require.NoError(t, err)
		b, err := e.Compute(shifted, y)
		require.NoError(t, err)
		assert.InDelta(t, a, b, 1e-9, e.String())
	}
}

func shiftAll(t *testing.T, d *matrix.Dense, by float64) []float64 {
	t.Helper()
	out := make([]float64, 0, d.Rows()*d.Cols())
	for i := 0; i < d.Rows(); i++ {
		row, err := d.RawRow(i)
		require.NoError(t, err)
		for _, v := range row {
			out = append(out, v+by)
		}
	}

	return out
}

func TestCompute_MinimumSamples(t *testing.T) {
	x3 := gaussian(t, 3, 2, 1)
	x4 := gaussian(t, 4, 2, 1)
	x1 := gaussian(t, 1, 2, 1)
	x2 := gaussian(t, 2, 2, 1)

	for _, e := range []hsic.Estimator{hsic.Song2007, hsic.Lange2022} {
		_, err := e.Compute(x3, x3)
		require.ErrorIs(t, err, hsic.ErrInsufficientSamples, e.String())
		_, err = e.Compute(x4, x4)
		require.NoError(t, err, e.String())
	}

	_, err := hsic.Gretton2006.Compute(x1, x1)
	require.ErrorIs(t, err, hsic.ErrInsufficientSamples)
	_, err = hsic.Gretton2006.Compute(x2, x2)
	require.NoError(t, err)
}

func TestCompute_ValidationOrder(t *testing.T) {
	x := gaussian(t, 6, 2, 1)
	y := gaussian(t, 5, 2, 2)
	small := gaussian(t, 3, 2, 3)

	// selector first, even with other problems present
	_, err := hsic.Estimator(0).Compute(nil, y)
	require.ErrorIs(t, err, hsic.ErrInvalidConfiguration)
	_, err = hsic.Estimator(42).Compute(x, x)
	require.ErrorIs(t, err, hsic.ErrInvalidConfiguration)

	_, err = hsic.Song2007.Compute(nil, x)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = hsic.Song2007.Compute(x, y)
	require.ErrorIs(t, err, hsic.ErrShapeMismatch)

	// mismatch is reported before the sample minimum
	_, err = hsic.Song2007.Compute(small, y)
	require.ErrorIs(t, err, hsic.ErrShapeMismatch)
}

func TestFromGrams(t *testing.T) {
	x, y := fixture(t)
	gx, err := hsic.CenteredGram(x)
	require.NoError(t, err)
	gy, err := hsic.CenteredGram(y)
	require.NoError(t, err)

	for _, e := range hsic.Estimators() {
		want, err := e.Compute(x, y)
		require.NoError(t, err)
		got, err := e.FromGrams(gx, gy)
		require.NoError(t, err)
		assert.Equal(t, want, got, e.String())
	}

	// inputs are left untouched
	d, err := gx.At(0, 0)
	require.NoError(t, err)
	assert.NotZero(t, d)

	_, err = hsic.Song2007.FromGrams(x, x)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = hsic.Song2007.FromGrams(gx, matrix.Matrix(nil))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
