// SPDX-License-Identifier: MIT

package tracking

import "time"

// Status is the lifecycle state of a run.
type Status string

// Run statuses.
const (
	StatusRunning  Status = "RUNNING"
	StatusFinished Status = "FINISHED"
	StatusFailed   Status = "FAILED"
)

// Run is one tracked comparison.
type Run struct {
	ID         string             `json:"id"`
	Experiment string             `json:"experiment"`
	Status     Status             `json:"status"`
	Params     map[string]string  `json:"params"`
	Metrics    map[string]float64 `json:"metrics"`
	StartTime  time.Time          `json:"start_time"`
	EndTime    *time.Time         `json:"end_time,omitempty"`
	Error      string             `json:"error,omitempty"`
}

// Query selects runs of one experiment.
//
//   - Params: every listed key must be present with an equal value, except
//     keys named in SkipFields.
//   - FinishedOnly: keep only FINISHED runs.
type Query struct {
	Params       map[string]string
	SkipFields   []string
	FinishedOnly bool
}

// matches reports whether r satisfies q.
func (q Query) matches(r *Run) bool {
	if q.FinishedOnly && r.Status != StatusFinished {
		return false
	}
	skip := make(map[string]struct{}, len(q.SkipFields))
	for _, f := range q.SkipFields {
		skip[f] = struct{}{}
	}
	for k, want := range q.Params {
		if _, ok := skip[k]; ok {
			continue
		}
		if got, ok := r.Params[k]; !ok || got != want {
			return false
		}
	}

	return true
}
