// SPDX-License-Identifier: MIT

package hsic_test

import (
	"testing"

	"github.com/katalvlaran/repsim/hsic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEstimator_Names(t *testing.T) {
	assert.Equal(t, "GRETTON2006", hsic.Gretton2006.String())
	assert.Equal(t, "SONG2007", hsic.Song2007.String())
	assert.Equal(t, "LANGE2022", hsic.Lange2022.String())
	assert.Equal(t, "Estimator(0)", hsic.Estimator(0).String())

	assert.False(t, hsic.Estimator(0).Valid())
	assert.Len(t, hsic.Estimators(), 3)
}

func TestEstimator_MinSamples(t *testing.T) {
	assert.Equal(t, 2, hsic.Gretton2006.MinSamples())
	assert.Equal(t, 4, hsic.Song2007.MinSamples())
	assert.Equal(t, 4, hsic.Lange2022.MinSamples())
	assert.Equal(t, 0, hsic.Estimator(-1).MinSamples())
}

func TestParseEstimator(t *testing.T) {
	for _, in := range []string{"song2007", "SONG2007", "  Song2007 "} {
		e, err := hsic.ParseEstimator(in)
		require.NoError(t, err, in)
		assert.Equal(t, hsic.Song2007, e)
	}

	_, err := hsic.ParseEstimator("cka")
	require.ErrorIs(t, err, hsic.ErrInvalidConfiguration)
}

func TestEstimator_TextRoundTripYAML(t *testing.T) {
	type doc struct {
		Estimator hsic.Estimator `yaml:"estimator"`
	}

	var d doc
	require.NoError(t, yaml.Unmarshal([]byte("estimator: lange2022\n"), &d))
	assert.Equal(t, hsic.Lange2022, d.Estimator)

	out, err := yaml.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "estimator: LANGE2022\n", string(out))

	require.Error(t, yaml.Unmarshal([]byte("estimator: nope\n"), &d))

	_, err = hsic.Estimator(7).MarshalText()
	require.ErrorIs(t, err, hsic.ErrInvalidConfiguration)
}
