// SPDX-License-Identifier: MIT

package repfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/repsim/tensor"
)

// Format names a representation file encoding.
type Format string

// Supported formats.
const (
	FormatNPY  Format = "npy"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatOf maps a path's extension to its Format.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".npy":
		return FormatNPY, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}

	return "", fmt.Errorf("%q: %w", path, ErrUnsupportedFormat)
}

// Load reads the tensor stored at path, choosing the decoder by extension.
func Load(path string) (*tensor.Tensor, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	var t *tensor.Tensor
	if format == FormatNPY {
		info, serr := f.Stat()
		if serr != nil {
			return nil, fmt.Errorf("Load: %w", serr)
		}
		t, err = readNPY(f, info.Size())
	} else {
		t, err = ReadDocument(f)
	}
	if err != nil {
		return nil, fmt.Errorf("Load %s: %w", path, err)
	}

	return t, nil
}

// LoadConcat loads every path and stacks them along the sample axis,
// in argument order.
func LoadConcat(paths ...string) (*tensor.Tensor, error) {
	parts := make([]*tensor.Tensor, 0, len(paths))
	for _, p := range paths {
		t, err := Load(p)
		if err != nil {
			return nil, err
		}
		parts = append(parts, t)
	}
	t, err := tensor.Concat(parts...)
	if err != nil {
		return nil, fmt.Errorf("LoadConcat: %w", err)
	}

	return t, nil
}

// Save writes t to path, choosing the encoder by extension.
func Save(path string, t *tensor.Tensor) (err error) {
	format, err := FormatOf(path)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("Save: %w", cerr)
		}
	}()

	var write func(io.Writer, *tensor.Tensor) error
	switch format {
	case FormatNPY:
		write = WriteNPY
	case FormatYAML:
		write = WriteDocument
	case FormatJSON:
		write = WriteJSON
	}

	return write(f, t)
}
