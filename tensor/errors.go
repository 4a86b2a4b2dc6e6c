// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.

package tensor

import "errors"

var (
	// ErrEmptyShape indicates a tensor without any axis (or an empty Concat list).
	ErrEmptyShape = errors.New("tensor: empty shape")

	// ErrBadShape indicates a non-positive axis length or count.
	ErrBadShape = errors.New("tensor: axis lengths must be > 0")

	// ErrDataLength indicates len(data) differs from the product of the shape.
	ErrDataLength = errors.New("tensor: data length does not match shape")

	// ErrShapeMismatch indicates tensors whose per-sample shapes differ.
	ErrShapeMismatch = errors.New("tensor: per-sample shape mismatch")

	// ErrIndexOutOfRange indicates a sample index outside [0, Samples).
	ErrIndexOutOfRange = errors.New("tensor: sample index out of range")

	// ErrNotEnoughSamples indicates a request for more samples than the tensor holds.
	ErrNotEnoughSamples = errors.New("tensor: not enough samples")
)
