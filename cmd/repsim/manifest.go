// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/repsim/params"
	"github.com/katalvlaran/repsim/sweep"
)

// manifest lists the layers of a sweep.
//
//	experiment: resnet-vs-vit
//	params:
//	  dataset:
//	    name: cifar10
//	    split: test
//	a:
//	  - {model: resnet18, layer: layer_1, paths: [r18/l1_0.npy, r18/l1_1.npy]}
//	b:
//	  - {model: vit_b16, layer: block_1, paths: [vit/b1.npy]}
//
// When b is omitted every layer of a is compared with every layer of a.
type manifest struct {
	Experiment string         `yaml:"experiment"`
	Params     map[string]any `yaml:"params"`
	A          []sweep.Layer  `yaml:"a"`
	B          []sweep.Layer  `yaml:"b"`
}

func loadManifest(path string) (*manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	var m manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	if len(m.A) == 0 {
		return nil, fmt.Errorf("manifest %s: no layers under a", path)
	}
	for _, l := range append(append([]sweep.Layer(nil), m.A...), m.B...) {
		if l.Model == "" || l.Name == "" || len(l.Paths) == 0 {
			return nil, fmt.Errorf("manifest %s: layer %q of model %q needs model, layer and paths", path, l.Name, l.Model)
		}
	}

	return &m, nil
}

// pairs expands the manifest into its comparison grid.
func (m *manifest) pairs() []sweep.Pair {
	if len(m.B) == 0 {
		return sweep.Grid(m.A, m.A)
	}
	return sweep.Grid(m.A, m.B)
}

// flatParams flattens the nested params block into run parameters.
func (m *manifest) flatParams() (map[string]string, error) {
	flat, err := params.Flatten(m.Params, params.DefaultSeparator)
	if err != nil {
		return nil, fmt.Errorf("manifest params: %w", err)
	}

	return params.Stringify(flat), nil
}
