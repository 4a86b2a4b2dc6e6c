// SPDX-License-Identifier: MIT
// Package matrix: numeric policy defaults.
//
// The policy is a single source of truth consulted by every constructor, so
// that a representation matrix carrying NaN/Inf is rejected at ingestion
// instead of silently poisoning a similarity score downstream.

package matrix

// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
const DefaultValidateNaNInf = true
