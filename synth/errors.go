// SPDX-License-Identifier: MIT
// Package synth: sentinel error set.

package synth

import "errors"

// ErrBadSize indicates a non-positive size argument.
var ErrBadSize = errors.New("synth: size must be > 0")
