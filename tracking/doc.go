// SPDX-License-Identifier: MIT

// Package tracking is a local run store for comparisons.
//
// 🚀 What is a run?
//
//	One comparison of two representations: its flat string parameters
//	(models, layers, comparator, estimator, m, seed …), its metrics
//	("score"), a status and timestamps. Runs belong to an experiment.
//
// ✨ Key features:
//   - single-file bbolt database, safe for concurrent use by goroutines
//   - run records encoded as JSON (goccy/go-json), IDs are random UUIDs
//   - SearchRuns filters by parameter equality with skip fields, so a
//     comparison whose parameters match a FINISHED run can be skipped
//
// ⚙️ Usage:
//
//	s, _ := tracking.Open("runs.db")
//	defer s.Close()
//	run, _ := s.StartRun(ctx, "demo", params)
//	_ = s.LogMetric(ctx, run.ID, "score", 0.93)
//	_ = s.EndRun(ctx, run.ID, tracking.StatusFinished)
package tracking
