// SPDX-License-Identifier: MIT
// Package cka: sentinel error set.

package cka

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/repsim/hsic"
)

var (
	// ErrNumericDegeneracy indicates a self-similarity term ≤ 0 or a non-finite
	// HSIC term or score; the ratio is undefined.
	ErrNumericDegeneracy = errors.New("cka: numeric degeneracy")

	// ErrNilInput indicates a nil tensor or matrix argument.
	ErrNilInput = errors.New("cka: nil input")

	// ErrUnknownComparator indicates a comparator name outside Names().
	ErrUnknownComparator = fmt.Errorf("cka: unknown comparator: %w", hsic.ErrInvalidConfiguration)
)

// Estimator failures, re-exported so callers may match either package's name.
var (
	ErrInvalidConfiguration = hsic.ErrInvalidConfiguration
	ErrInsufficientSamples  = hsic.ErrInsufficientSamples
	ErrShapeMismatch        = hsic.ErrShapeMismatch
)
