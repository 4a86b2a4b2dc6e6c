// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/repsim/config"
	"github.com/katalvlaran/repsim/hsic"
	"github.com/katalvlaran/repsim/logging"
	"github.com/katalvlaran/repsim/sweep"
	"github.com/katalvlaran/repsim/tracking"
)

// multiFlag collects a repeatable string flag.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

// common holds the flags shared by the commands that touch the store.
type common struct {
	configPath string
	experiment string
	store      string
	estimator  string
	samples    int
	seed       int64
	workers    int
	logLevel   string
	logFormat  string
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&c.experiment, "experiment", "", "experiment name")
	fs.StringVar(&c.store, "store", "", "run store file (bbolt)")
	fs.StringVar(&c.estimator, "estimator", "", "HSIC estimator (GRETTON2006, SONG2007, LANGE2022)")
	fs.IntVar(&c.samples, "samples", -1, "subsample every tensor to this many rows (0 keeps all)")
	fs.Int64Var(&c.seed, "seed", 0, "subsampling seed")
	fs.IntVar(&c.workers, "workers", 0, "pairs evaluated at once")
	fs.StringVar(&c.logLevel, "log-level", "", "debug, info, warn or error")
	fs.StringVar(&c.logFormat, "log-format", "", "text or json")
}

// config loads the configuration file, if any, and applies the flags that
// were set explicitly.
func (c *common) config(fs *flag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	if c.configPath != "" {
		var err error
		if cfg, err = config.Load(c.configPath); err != nil {
			return cfg, err
		}
	}

	var err error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "experiment":
			cfg.Experiment = c.experiment
		case "store":
			cfg.Store = c.store
		case "estimator":
			var est hsic.Estimator
			if est, err = hsic.ParseEstimator(c.estimator); err == nil {
				cfg.Estimator = est
			}
		case "samples":
			cfg.Samples = c.samples
		case "seed":
			cfg.DataSeed = c.seed
		case "workers":
			cfg.Workers = c.workers
		case "log-level":
			cfg.Log.Level = c.logLevel
		case "log-format":
			cfg.Log.Format = c.logFormat
		}
	})
	if err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// env is the wired runtime shared by a command invocation.
type env struct {
	cfg    config.Config
	logger *logging.Logger
	store  *tracking.Store
}

// newEnv builds the logger and, when cfg.Store is set or needStore is true,
// opens the run store.
func newEnv(cfg config.Config, stderr io.Writer, needStore bool) (*env, error) {
	logger, err := logging.New(stderr, cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	e := &env{cfg: cfg, logger: logger}
	if cfg.Store == "" {
		if needStore {
			return nil, errors.New("no run store configured (-store or store:)")
		}
		return e, nil
	}
	if e.store, err = tracking.Open(cfg.Store, tracking.WithLogger(logger)); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	return e, nil
}

// Close releases the store.
func (e *env) Close() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}

// runnerOptions translates the configuration into sweep options.
func (e *env) runnerOptions(params map[string]string) []sweep.Option {
	opts := []sweep.Option{
		sweep.WithWorkers(e.cfg.Workers),
		sweep.WithCacheSize(e.cfg.CacheSize),
		sweep.WithLogger(e.logger),
		sweep.WithSamples(e.cfg.Samples, e.cfg.DataSeed),
		sweep.WithExperiment(e.cfg.Experiment),
		sweep.WithParams(params),
		sweep.WithSkipFields(e.cfg.SkipFields...),
	}
	if e.store != nil {
		opts = append(opts, sweep.WithStore(e.store))
	}

	return opts
}

// parseParams turns repeated key=value flags into run parameters.
func parseParams(kvs []string) (map[string]string, error) {
	out := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("param %q: want key=value", kv)
		}
		out[k] = v
	}

	return out, nil
}
