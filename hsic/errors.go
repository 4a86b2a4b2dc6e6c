// SPDX-License-Identifier: MIT
// Package hsic: sentinel error set.

package hsic

import "errors"

var (
	// ErrInvalidConfiguration indicates an estimator selector outside the closed set.
	ErrInvalidConfiguration = errors.New("hsic: invalid estimator configuration")

	// ErrInsufficientSamples indicates m is below the estimator's minimum sample count.
	ErrInsufficientSamples = errors.New("hsic: insufficient samples")

	// ErrShapeMismatch indicates the two inputs do not share a sample count.
	ErrShapeMismatch = errors.New("hsic: sample count mismatch")
)
