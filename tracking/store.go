// SPDX-License-Identifier: MIT

package tracking

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	gojson "github.com/goccy/go-json"
	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/katalvlaran/repsim/logging"
)

// Bucket layout:
//
//	runs/<run id>                   → JSON Run
//	experiments/<experiment>/<id>   → start time (RFC 3339)
var (
	bucketRuns        = []byte("runs")
	bucketExperiments = []byte("experiments")
)

// Store persists runs in a bbolt file. Safe for concurrent use.
type Store struct {
	db     *bolt.DB
	log    *logging.Logger
	now    func() time.Time
	closed atomic.Bool
}

// Open opens (creating if needed) the run store at path.
func Open(path string, opts ...Option) (*Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: o.timeout})
	if err != nil {
		return nil, fmt.Errorf("tracking: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketRuns); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(bucketExperiments)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("tracking: init %s: %w", path, err)
	}
	o.logger.Debug("run store opened", "path", path)

	return &Store{db: db, log: o.logger, now: o.now}, nil
}

// Close releases the database file. Further calls fail with ErrClosed.
func (s *Store) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}

	return s.db.Close()
}

// check rejects closed stores and cancelled contexts.
func (s *Store) check(ctx context.Context) error {
	if s.closed.Load() {
		return ErrClosed
	}

	return ctx.Err()
}

// StartRun records a new RUNNING run with the given flat parameters.
func (s *Store) StartRun(ctx context.Context, experiment string, params map[string]string) (*Run, error) {
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	if experiment == "" {
		return nil, ErrEmptyExperiment
	}
	run := &Run{
		ID:         uuid.NewString(),
		Experiment: experiment,
		Status:     StatusRunning,
		Params:     make(map[string]string, len(params)),
		Metrics:    map[string]float64{},
		StartTime:  s.now(),
	}
	for k, v := range params {
		run.Params[k] = v
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		exp, err := tx.Bucket(bucketExperiments).CreateBucketIfNotExists([]byte(experiment))
		if err != nil {
			return err
		}
		if err = exp.Put([]byte(run.ID), []byte(run.StartTime.Format(time.RFC3339Nano))); err != nil {
			return err
		}
		return putRun(tx, run)
	})
	if err != nil {
		return nil, fmt.Errorf("tracking: start run: %w", err)
	}
	s.log.WithRun(run.ID).DebugContext(ctx, "run started", "experiment", experiment)

	return run, nil
}

// LogMetric sets metric key of a RUNNING run.
func (s *Store) LogMetric(ctx context.Context, id, key string, v float64) error {
	if err := s.check(ctx); err != nil {
		return err
	}

	return s.update(id, func(r *Run) error {
		if r.Status != StatusRunning {
			return fmt.Errorf("run %s is %s: %w", id, r.Status, ErrRunNotActive)
		}
		r.Metrics[key] = v
		return nil
	})
}

// EndRun moves a RUNNING run to FINISHED or FAILED.
func (s *Store) EndRun(ctx context.Context, id string, status Status) error {
	return s.end(ctx, id, status, "")
}

// FailRun ends a RUNNING run as FAILED and stores the cause.
func (s *Store) FailRun(ctx context.Context, id string, cause error) error {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}

	return s.end(ctx, id, StatusFailed, msg)
}

func (s *Store) end(ctx context.Context, id string, status Status, msg string) error {
	if err := s.check(ctx); err != nil {
		return err
	}
	if status != StatusFinished && status != StatusFailed {
		return fmt.Errorf("EndRun %q: %w", status, ErrInvalidStatus)
	}
	err := s.update(id, func(r *Run) error {
		if r.Status != StatusRunning {
			return fmt.Errorf("run %s is %s: %w", id, r.Status, ErrRunNotActive)
		}
		end := s.now()
		r.Status, r.EndTime, r.Error = status, &end, msg
		return nil
	})
	if err != nil {
		return err
	}
	s.log.WithRun(id).DebugContext(ctx, "run ended", "status", string(status))

	return nil
}

// GetRun returns the run with the given ID.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	var run *Run
	err := s.db.View(func(tx *bolt.Tx) error {
		var err error
		run, err = getRun(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return run, nil
}

// SearchRuns returns the runs of experiment matching q, oldest first.
// An unknown experiment yields no runs.
func (s *Store) SearchRuns(ctx context.Context, experiment string, q Query) ([]*Run, error) {
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	if experiment == "" {
		return nil, ErrEmptyExperiment
	}
	var out []*Run
	err := s.db.View(func(tx *bolt.Tx) error {
		exp := tx.Bucket(bucketExperiments).Bucket([]byte(experiment))
		if exp == nil {
			return nil
		}
		return exp.ForEach(func(k, _ []byte) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			run, err := getRun(tx, string(k))
			if err != nil {
				return err
			}
			if q.matches(run) {
				out = append(out, run)
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("tracking: search %s: %w", experiment, err)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.Before(out[j].StartTime)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

// update applies fn to the stored run in one read-write transaction.
func (s *Store) update(id string, fn func(*Run) error) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		run, err := getRun(tx, id)
		if err != nil {
			return err
		}
		if err = fn(run); err != nil {
			return err
		}
		return putRun(tx, run)
	})
}

func getRun(tx *bolt.Tx, id string) (*Run, error) {
	raw := tx.Bucket(bucketRuns).Get([]byte(id))
	if raw == nil {
		return nil, fmt.Errorf("%q: %w", id, ErrRunNotFound)
	}
	var run Run
	if err := gojson.Unmarshal(raw, &run); err != nil {
		return nil, fmt.Errorf("decode run %q: %w", id, err)
	}
	if run.Metrics == nil {
		run.Metrics = map[string]float64{}
	}

	return &run, nil
}

func putRun(tx *bolt.Tx, run *Run) error {
	raw, err := gojson.Marshal(run)
	if err != nil {
		return fmt.Errorf("encode run %q: %w", run.ID, err)
	}

	return tx.Bucket(bucketRuns).Put([]byte(run.ID), raw)
}
