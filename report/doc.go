// SPDX-License-Identifier: MIT

// Package report turns finished comparison runs into layer × layer tables.
//
// Runs are grouped by (modelA, modelB). Inside a group, rows are layers of
// model A, columns are layers of model B and cells hold the score. Layer
// names are ordered naturally: "block_2" sorts before "block_10".
//
//	tables := report.Pivot(report.FromRuns(runs))
//	for _, t := range tables {
//		_ = t.WriteText(os.Stdout)
//	}
package report
