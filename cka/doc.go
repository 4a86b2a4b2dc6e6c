// SPDX-License-Identifier: MIT

// Package cka compares two sets of representations with Centered Kernel
// Alignment.
//
// 🚀 What is CKA?
//
//	For two views X (m×d1) and Y (m×d2) of the same m samples,
//
//	    CKA(X, Y) = HSIC(X, Y) / √(HSIC(X, X) · HSIC(Y, Y))
//
//	is a normalized similarity: 1 for representations that agree up to an
//	orthogonal transform and isotropic scale, near 0 for unrelated ones.
//	The HSIC estimator (GRETTON2006, SONG2007, LANGE2022) is bound when the
//	comparator is built and never changes.
//
// ✨ Key features:
//   - Comparator: a one-method capability contract; LinearCKA is its
//     linear-kernel implementation
//   - inputs are sample-first tensors of any rank; every axis after the
//     first is folded into features, so d1 and d2 may differ
//   - each Gram matrix is built once per call and reused by all three HSIC
//     terms; WithParallelGram builds the two concurrently
//   - estimator artifacts are surfaced, not masked: a non-positive
//     self-term or a non-finite value is ErrNumericDegeneracy, and
//     small-sample scores outside [0, 1] are returned as computed
//
// ⚙️ Usage:
//
//	c, err := cka.NewLinearCKA(hsic.Song2007)
//	score, err := c.Compare(actsA, actsB)
//	if errors.Is(err, cka.ErrInsufficientSamples) { … }
//
// LinearCKA holds no per-call state; a single instance may be used from
// many goroutines.
package cka
