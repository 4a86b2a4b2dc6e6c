// SPDX-License-Identifier: MIT

// Package tensor holds sample-first representation tensors.
//
// 🚀 What is a representation tensor?
//
//	The activations a model produces for m inputs: a dense real-valued array
//	whose leading axis indexes samples and whose remaining axes (channels,
//	spatial positions, tokens …) are per-sample features. A convolutional
//	layer observed on 64 images yields shape [64, C, H, W].
//
// ✨ Key features:
//   - row-major storage, the same layout as matrix.Dense
//   - Flatten folds every non-sample axis into one feature axis, giving the
//     (m × d) representation matrix the similarity core consumes
//   - Select / Subsample / Concat work along the sample axis only, so sample
//     order is always preserved or explicitly permuted
//
// ⚙️ Usage:
//
//	t, _ := tensor.New([]int{4, 2, 3}, data) // 4 samples, 2×3 features
//	X, _ := t.Flatten()                      // 4×6 *matrix.Dense
//	sub, _ := t.Subsample(2, 7)              // 2 samples, seeded choice
package tensor
