// SPDX-License-Identifier: MIT

package tracking

import (
	"time"

	"github.com/katalvlaran/repsim/logging"
)

// Option customizes Open.
type Option func(*options)

type options struct {
	logger  *logging.Logger
	timeout time.Duration
	now     func() time.Time
}

const defaultTimeout = time.Second

func defaultOptions() options {
	return options{
		logger:  logging.NoopLogger(),
		timeout: defaultTimeout,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// WithLogger sets the store logger. Panics on nil.
func WithLogger(l *logging.Logger) Option {
	if l == nil {
		panic("tracking: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}

// WithTimeout bounds how long Open waits for the database file lock.
// Panics on negative durations; 0 waits forever.
func WithTimeout(d time.Duration) Option {
	if d < 0 {
		panic("tracking: WithTimeout(d<0)")
	}
	return func(o *options) {
		o.timeout = d
	}
}

// WithClock overrides the timestamp source. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("tracking: WithClock(nil)")
	}
	return func(o *options) {
		o.now = now
	}
}
