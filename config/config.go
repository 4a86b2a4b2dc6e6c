// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration of the repsim tool.
//
//	experiment: demo-similarity
//	store: runs.db
//	comparator: linear_cka
//	estimator: SONG2007
//	samples: 1000
//	data_seed: 189645
//	workers: 4
//	cache_size: 16
//	log:
//	  level: info
//	  format: text
//	output: text
//
// Missing keys keep the values of Default().
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/repsim/cka"
	"github.com/katalvlaran/repsim/hsic"
)

// ErrInvalid indicates a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Log configures logging output.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config is the tool configuration.
type Config struct {
	Experiment string         `yaml:"experiment"`
	Store      string         `yaml:"store"`
	Comparator string         `yaml:"comparator"`
	Estimator  hsic.Estimator `yaml:"estimator"`
	Samples    int            `yaml:"samples"`
	DataSeed   int64          `yaml:"data_seed"`
	Workers    int            `yaml:"workers"`
	CacheSize  int            `yaml:"cache_size"`
	SkipFields []string       `yaml:"skip_fields"`
	Log        Log            `yaml:"log"`
	Output     string         `yaml:"output"`
}

// Output formats.
const (
	OutputText = "text"
	OutputCSV  = "csv"
)

// Default returns the built-in configuration. Store is empty: runs are not
// tracked unless a store path is given.
func Default() Config {
	return Config{
		Experiment: "demo-similarity",
		Comparator: cka.NameLinearCKA,
		Estimator:  hsic.Song2007,
		Samples:    0,
		DataSeed:   189645,
		Workers:    4,
		CacheSize:  16,
		SkipFields: []string{"workers"},
		Log:        Log{Level: "info", Format: "text"},
		Output:     OutputText,
	}
}

// Parse decodes YAML over Default() and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return Parse(data)
}

// Validate checks every field against its domain.
func (c Config) Validate() error {
	switch {
	case c.Experiment == "":
		return fmt.Errorf("experiment is empty: %w", ErrInvalid)
	case !c.Estimator.Valid():
		return fmt.Errorf("estimator %s: %w", c.Estimator, ErrInvalid)
	case c.Samples < 0:
		return fmt.Errorf("samples %d < 0: %w", c.Samples, ErrInvalid)
	case c.Samples > 0 && c.Samples < c.Estimator.MinSamples():
		return fmt.Errorf("samples %d below %s minimum %d: %w", c.Samples, c.Estimator, c.Estimator.MinSamples(), ErrInvalid)
	case c.Workers < 1:
		return fmt.Errorf("workers %d < 1: %w", c.Workers, ErrInvalid)
	case c.CacheSize < 1:
		return fmt.Errorf("cache_size %d < 1: %w", c.CacheSize, ErrInvalid)
	case c.Output != OutputText && c.Output != OutputCSV:
		return fmt.Errorf("output %q: %w", c.Output, ErrInvalid)
	}
	if _, err := cka.New(c.Comparator, c.Estimator); err != nil {
		return fmt.Errorf("comparator %q: %w", c.Comparator, ErrInvalid)
	}

	return nil
}
