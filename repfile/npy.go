// SPDX-License-Identifier: MIT

package repfile

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/repsim/tensor"
)

const (
	npyMagic    = "\x93NUMPY"
	npyPreamble = len(npyMagic) + 2 // magic + version bytes
	npyDescrF8  = "<f8"
	npyDescrF4  = "<f4"
)

// MaxElements bounds the element count ReadNPY accepts from a header
// (2 GiB of float64). Larger headers are rejected before any allocation.
const MaxElements = 1 << 28

// ReadNPY decodes one NPY array into a tensor.
//
// Errors:
//   - ErrMalformed (bad magic, unparsable or truncated header or data,
//     element count above MaxElements),
//     ErrUnsupportedFormat (version, dtype, Fortran order, 0-d arrays).
func ReadNPY(r io.Reader) (*tensor.Tensor, error) {
	return readNPY(r, math.MaxInt64)
}

// readNPY is ReadNPY for a source holding at most size bytes.
func readNPY(r io.Reader, size int64) (*tensor.Tensor, error) {
	br := bufio.NewReader(r)
	pre, err := br.Peek(npyPreamble)
	if err != nil {
		return nil, fmt.Errorf("ReadNPY: preamble: %w", ErrMalformed)
	}
	if string(pre[:len(npyMagic)]) != npyMagic {
		return nil, fmt.Errorf("ReadNPY: bad magic: %w", ErrMalformed)
	}
	if major := pre[len(npyMagic)]; major < 1 || major > 3 {
		return nil, fmt.Errorf("ReadNPY: version %d: %w", major, ErrUnsupportedFormat)
	}

	nr, err := npyio.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("ReadNPY: header: %v: %w", err, ErrMalformed)
	}
	descr := nr.Header.Descr
	var width int64
	switch descr.Type {
	case npyDescrF8:
		width = 8
	case npyDescrF4:
		width = 4
	default:
		return nil, fmt.Errorf("ReadNPY: dtype %q: %w", descr.Type, ErrUnsupportedFormat)
	}
	if descr.Fortran {
		return nil, fmt.Errorf("ReadNPY: fortran order: %w", ErrUnsupportedFormat)
	}
	if len(descr.Shape) == 0 {
		return nil, fmt.Errorf("ReadNPY: 0-d array: %w", ErrUnsupportedFormat)
	}
	limit := int64(MaxElements)
	if bySize := size / width; bySize < limit {
		limit = bySize
	}
	n, err := elementCount(descr.Shape, limit)
	if err != nil {
		return nil, fmt.Errorf("ReadNPY: %w", err)
	}
	shape := append([]int(nil), descr.Shape...)

	var data []float64
	if width == 8 {
		data = make([]float64, n)
		if err := nr.Read(&data); err != nil {
			return nil, fmt.Errorf("ReadNPY: data: %v: %w", err, ErrMalformed)
		}
	} else {
		f32 := make([]float32, n)
		if err := nr.Read(&f32); err != nil {
			return nil, fmt.Errorf("ReadNPY: data: %v: %w", err, ErrMalformed)
		}
		data = make([]float64, n)
		for i, v := range f32 {
			data[i] = float64(v)
		}
	}

	return tensor.New(shape, data)
}

// elementCount multiplies shape, failing once the product passes limit.
func elementCount(shape []int, limit int64) (int, error) {
	n := int64(1)
	for _, s := range shape {
		if s < 0 {
			return 0, fmt.Errorf("shape entry %d: %w", s, ErrMalformed)
		}
		if s > 0 && n > limit/int64(s) {
			return 0, fmt.Errorf("shape %v exceeds %d elements: %w", shape, limit, ErrMalformed)
		}
		n *= int64(s)
	}

	return int(n), nil
}

// WriteNPY encodes t as a little-endian float64 NPY array. Rank-1 and
// rank-2 tensors are supported; use the YAML or JSON documents for
// higher ranks.
//
// Errors:
//   - ErrUnsupportedFormat (rank above 2).
func WriteNPY(w io.Writer, t *tensor.Tensor) error {
	var val any
	switch t.Rank() {
	case 1:
		val = t.Data()
	case 2:
		val = mat.NewDense(t.Samples(), t.Features(), t.Data())
	default:
		return fmt.Errorf("WriteNPY: rank %d: %w", t.Rank(), ErrUnsupportedFormat)
	}
	if err := npyio.Write(w, val); err != nil {
		return fmt.Errorf("WriteNPY: %w", err)
	}

	return nil
}
