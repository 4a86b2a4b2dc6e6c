// SPDX-License-Identifier: MIT
// Package: synth
//
// options.go: functional options for the generators.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package synth

import (
	"math"
	"math/rand"
)

// Option customizes a generator by mutating its config before drawing.
type Option func(*config)

// config aggregates all generator knobs.
type config struct {
	rng    *rand.Rand // draw source; never nil after newConfig
	mean   float64    // Gaussian location
	stddev float64    // Gaussian scale (> 0)
}

// Deterministic defaults.
const (
	defaultSeed   = int64(1)
	defaultMean   = 0.0
	defaultStdDev = 1.0
)

// newConfig applies options in order over the defaults (later overrides earlier).
func newConfig(opts ...Option) config {
	cfg := config{
		mean:   defaultMean,
		stddev: defaultStdDev,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG; successive generators sharing it draw
// successive values. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithMean sets the Gaussian location. Panics on NaN/Inf.
func WithMean(mu float64) Option {
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		panic("synth: WithMean(non-finite)")
	}
	return func(c *config) {
		c.mean = mu
	}
}

// WithStdDev sets the Gaussian scale. Panics unless sigma is finite and > 0.
func WithStdDev(sigma float64) Option {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		panic("synth: WithStdDev(sigma<=0)")
	}
	return func(c *config) {
		c.stddev = sigma
	}
}
