// Package repsim measures how similar two neural network layers are, by
// comparing the activations they produce on the same inputs.
//
// 🚀 What is repsim?
//
//	A deterministic toolkit built around Linear Centered Kernel Alignment:
//		• matrix/  : centering, Gram matrices, reductions, QR
//		• tensor/  : N-d activation tensors with a leading sample axis
//		• hsic/    : HSIC estimators: GRETTON2006, SONG2007, LANGE2022
//		• cka/     : Linear CKA comparator and the comparator registry
//		• synth/   : seeded Gaussian, orthogonal and permutation generators
//		• repfile/ : .npy / YAML / JSON representation files
//		• tracking/: bbolt-backed run store with parameter dedup
//		• sweep/   : concurrent pairwise comparison over many layers
//		• report/  : per-model score tables (text, CSV) and summaries
//		• config/  : YAML tool configuration
//		• params/  : nested run parameters flattened for tracking
//		• logging/ : slog wrapper with domain fields
//
// ✨ Why Linear CKA?
//
//   - Invariant to orthogonal transforms and isotropic scaling of either side
//   - Works across layers of different width: only the sample count must match
//   - The unbiased estimators stay near zero for independent representations
//
// ⚙️ Quick start:
//
//	cmp, _ := cka.NewLinearCKA(hsic.Song2007)
//	score, _ := cmp.Compare(x, y) // x: m×d1, y: m×d2
//
// or from the command line:
//
//	repsim synth -o x.npy -shape 1000,64
//	repsim compare -a x.npy -b y.npy -estimator LANGE2022
//
//	go install github.com/katalvlaran/repsim/cmd/repsim@latest
package repsim
