// SPDX-License-Identifier: MIT

package params_test

import (
	"testing"

	"github.com/katalvlaran/repsim/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFlatten_Nested(t *testing.T) {
	tree := map[string]any{
		"modelA": "resnet18",
		"comparator": map[string]any{
			"class_path": "linear_cka",
			"init_args":  map[string]any{"estimator": "SONG2007"},
		},
		"m":     1000,
		"empty": map[string]any{},
	}

	flat, err := params.Flatten(tree, params.DefaultSeparator)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"modelA":                         "resnet18",
		"comparator_class_path":          "linear_cka",
		"comparator_init_args_estimator": "SONG2007",
		"m":                              1000,
	}, flat)
}

func TestFlatten_CustomSeparator(t *testing.T) {
	flat, err := params.Flatten(map[string]any{"a": map[string]any{"b": 1}}, ".")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a.b": 1}, flat)
}

func TestFlatten_DuplicateKey(t *testing.T) {
	tree := map[string]any{
		"a_b": 1,
		"a":   map[string]any{"b": 2},
	}
	_, err := params.Flatten(tree, "_")
	require.ErrorIs(t, err, params.ErrDuplicateKey)
	assert.Contains(t, err.Error(), `"a_b"`)
}

func TestFlatten_EmptySeparator(t *testing.T) {
	_, err := params.Flatten(map[string]any{}, "")
	require.ErrorIs(t, err, params.ErrEmptySeparator)
}

func TestFlatten_FromYAML(t *testing.T) {
	var tree map[string]any
	require.NoError(t, yaml.Unmarshal([]byte("data:\n  m: 500\n  seed: 7\nname: x\n"), &tree))

	flat, err := params.Flatten(tree, "_")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"data_m": "500", "data_seed": "7", "name": "x"}, params.Stringify(flat))
}

func TestStringify(t *testing.T) {
	got := params.Stringify(map[string]any{"f": 0.5, "b": true, "n": nil})
	assert.Equal(t, map[string]string{"f": "0.5", "b": "true", "n": "<nil>"}, got)
}
