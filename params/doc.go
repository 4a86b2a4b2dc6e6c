// SPDX-License-Identifier: MIT

// Package params flattens nested run parameters into the single-level
// key/value form stored with every tracked comparison.
//
//	{"comparator": {"estimator": "SONG2007"}, "m": 1000}
//	  ─ Flatten(…, "_") →
//	{"comparator_estimator": "SONG2007", "m": 1000}
//
// Two different paths that produce the same flat key are an error
// (ErrDuplicateKey), never a silent overwrite.
package params
