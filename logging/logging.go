// SPDX-License-Identifier: MIT

// Package logging wraps log/slog with the field names used across the
// comparison tooling.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with comparison-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// A nil handler falls back to a text handler on stderr at Info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger writing human-readable lines to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger writing JSON lines to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(1000)}))
}

// New builds a Logger writing to w in the named format ("text" or "json")
// at the named level ("debug", "info", "warn", "error").
func New(w io.Writer, format, level string) (*Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("logging: level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "", "text":
		return NewLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return NewLogger(slog.NewJSONHandler(w, opts)), nil
	}

	return nil, fmt.Errorf("logging: unknown format %q", format)
}

// WithRun tags every record with a tracking run ID.
func (l *Logger) WithRun(id string) *Logger {
	return &Logger{Logger: l.Logger.With("run_id", id)}
}

// WithPair tags every record with the compared model/layer pair.
func (l *Logger) WithPair(modelA, layerA, modelB, layerB string) *Logger {
	return &Logger{Logger: l.Logger.With(
		"model_a", modelA,
		"layer_a", layerA,
		"model_b", modelB,
		"layer_b", layerB,
	)}
}

// LogCompare logs one comparison outcome.
func (l *Logger) LogCompare(ctx context.Context, comparator string, m int, score float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "compare failed",
			"comparator", comparator,
			"samples", m,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "compare completed",
		"comparator", comparator,
		"samples", m,
		"score", score,
	)
}

// LogSweep logs the end of a sweep.
func (l *Logger) LogSweep(ctx context.Context, total, skipped, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "sweep completed with failures",
			"total", total,
			"skipped", skipped,
			"failed", failed,
			"success", total-skipped-failed,
		)
		return
	}
	l.InfoContext(ctx, "sweep completed",
		"total", total,
		"skipped", skipped,
	)
}

// LogSkip logs a comparison skipped because a finished run already exists.
func (l *Logger) LogSkip(ctx context.Context, existingRun string) {
	l.InfoContext(ctx, "run already exists with these params, skipping",
		"existing_run", existingRun,
	)
}
