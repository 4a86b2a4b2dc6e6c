// SPDX-License-Identifier: MIT

package repfile

import (
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/repsim/tensor"
)

// Document is the text form of a representation tensor.
type Document struct {
	Shape []int     `yaml:"shape" json:"shape"`
	Data  []float64 `yaml:"data" json:"data"`
}

// ReadDocument decodes a YAML (or JSON, a YAML subset) document.
func ReadDocument(r io.Reader) (*tensor.Tensor, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("ReadDocument: %v: %w", err, ErrMalformed)
	}

	return tensor.New(doc.Shape, doc.Data)
}

// WriteDocument encodes t as a YAML document.
func WriteDocument(w io.Writer, t *tensor.Tensor) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Document{Shape: t.Shape(), Data: t.Data()}); err != nil {
		return fmt.Errorf("WriteDocument: %w", err)
	}

	return enc.Close()
}

// WriteJSON encodes t as a JSON document.
func WriteJSON(w io.Writer, t *tensor.Tensor) error {
	if err := gojson.NewEncoder(w).Encode(Document{Shape: t.Shape(), Data: t.Data()}); err != nil {
		return fmt.Errorf("WriteJSON: %w", err)
	}

	return nil
}
