// SPDX-License-Identifier: MIT

package cka_test

import (
	"testing"

	"github.com/katalvlaran/repsim/cka"
	"github.com/katalvlaran/repsim/hsic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c, err := cka.New("Linear_CKA", hsic.Gretton2006)
	require.NoError(t, err)
	lin, ok := c.(*cka.LinearCKA)
	require.True(t, ok)
	assert.Equal(t, hsic.Gretton2006, lin.Estimator())

	_, err = cka.New("rbf_cka", hsic.Song2007)
	require.ErrorIs(t, err, cka.ErrUnknownComparator)
	require.ErrorIs(t, err, cka.ErrInvalidConfiguration)

	_, err = cka.New(cka.NameLinearCKA, hsic.Estimator(0))
	require.ErrorIs(t, err, cka.ErrInvalidConfiguration)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"linear_cka"}, cka.Names())
}
