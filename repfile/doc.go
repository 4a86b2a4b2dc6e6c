// SPDX-License-Identifier: MIT

// Package repfile reads and writes prepared representation tensors.
//
// Representations are produced outside this module (a model forward pass
// captured per layer) and handed over as files:
//
//	.npy          NumPy array, little-endian float32/float64, C order,
//	              format versions 1.0, 2.0 and 3.0; written for rank 1 and 2,
//	              read up to MaxElements elements
//	.yaml / .yml  document {shape: [m, …], data: [...]}
//	.json         the same document as JSON
//
// Load dispatches on the extension; LoadConcat stacks per-batch files along
// the sample axis. The leading axis of every file is the sample axis.
package repfile
