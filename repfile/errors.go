// SPDX-License-Identifier: MIT
// Package repfile: sentinel error set.

package repfile

import "errors"

var (
	// ErrUnsupportedFormat indicates an unknown extension, dtype, memory order or NPY version.
	ErrUnsupportedFormat = errors.New("repfile: unsupported format")

	// ErrMalformed indicates a truncated or unparsable file.
	ErrMalformed = errors.New("repfile: malformed file")
)
