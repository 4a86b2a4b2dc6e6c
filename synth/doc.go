// SPDX-License-Identifier: MIT

// Package synth generates seeded synthetic representations for tests,
// examples and benchmarks of the similarity core.
//
// 🚀 What can be generated?
//
//   - Gaussian(shape)      i.i.d. N(mean, stddev²) tensors
//   - Noisy(t)             t plus i.i.d. Gaussian noise
//   - Orthogonal(n)        a random n×n orthogonal matrix (Householder QR)
//   - Rotate(t, R)         the flattened tensor multiplied by R on the feature axis
//   - Permutation(n)       a random permutation of 0..n-1
//
// ✨ Determinism:
//
//	Every generator draws from the RNG carried by its options. WithSeed
//	locks outcomes; without it a fixed default seed is used, so two calls
//	with identical options return identical data.
//
// ⚙️ Usage:
//
//	x, _ := synth.Gaussian([]int{10, 4}, synth.WithSeed(7))
//	R, _ := synth.Orthogonal(4, synth.WithSeed(8))
//	xr, _ := synth.Rotate(x, R)
package synth
