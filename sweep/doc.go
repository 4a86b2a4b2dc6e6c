// SPDX-License-Identifier: MIT

// Package sweep runs many comparisons: every layer of one model against
// every layer of another.
//
// 🚀 How a sweep runs
//
//	Grid(layersA, layersB) builds the cross product of Pairs. Runner.Run
//	evaluates them with a bounded worker pool. For each pair it
//	  1. looks up a FINISHED run with the same parameters and skips the pair
//	     when one exists (store configured),
//	  2. loads both representation tensors through an LRU cache, so a layer
//	     shared by many pairs is read once,
//	  3. subsamples both to m rows with the same seed, keeping samples aligned,
//	  4. calls the comparator and records the score (or the failure).
//
// ✨ Failure policy:
//
//	A failing pair is recorded in its Result (and as a FAILED run) and the
//	sweep moves on. Cancelling the context stops scheduling new pairs; Run
//	then returns the context error with the results gathered so far.
package sweep
