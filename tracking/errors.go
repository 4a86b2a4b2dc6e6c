// SPDX-License-Identifier: MIT
// Package tracking: sentinel error set.

package tracking

import "errors"

var (
	// ErrClosed indicates use of a closed Store.
	ErrClosed = errors.New("tracking: store is closed")

	// ErrRunNotFound indicates an unknown run ID.
	ErrRunNotFound = errors.New("tracking: run not found")

	// ErrRunNotActive indicates a write to a run that already ended.
	ErrRunNotActive = errors.New("tracking: run is not running")

	// ErrEmptyExperiment indicates an empty experiment name.
	ErrEmptyExperiment = errors.New("tracking: empty experiment name")

	// ErrInvalidStatus indicates a terminal status that is not FINISHED or FAILED.
	ErrInvalidStatus = errors.New("tracking: invalid terminal status")
)
