// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/repsim/cka"
	"github.com/katalvlaran/repsim/config"
	"github.com/katalvlaran/repsim/hsic"
	"github.com/katalvlaran/repsim/repfile"
	"github.com/katalvlaran/repsim/report"
	"github.com/katalvlaran/repsim/sweep"
	"github.com/katalvlaran/repsim/synth"
	"github.com/katalvlaran/repsim/tracking"
)

// newFlagSet returns a FlagSet that reports errors instead of exiting.
func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("repsim "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

// parse runs fs.Parse and maps its failure to errUsage.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(fs.Output(), "unexpected arguments: %v\n", fs.Args())
		return errUsage
	}

	return nil
}

func runCompare(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("compare", stderr)
	var (
		c              common
		a, b           string
		modelA, layerA string
		modelB, layerB string
		paramKVs       multiFlag
	)
	c.register(fs)
	fs.StringVar(&a, "a", "", "representation file(s) of layer A, comma separated")
	fs.StringVar(&b, "b", "", "representation file(s) of layer B, comma separated")
	fs.StringVar(&modelA, "model-a", "a", "model name of layer A")
	fs.StringVar(&layerA, "layer-a", "", "layer name of A (default: first file name)")
	fs.StringVar(&modelB, "model-b", "b", "model name of layer B")
	fs.StringVar(&layerB, "layer-b", "", "layer name of B (default: first file name)")
	fs.Var(&paramKVs, "param", "extra run parameter key=value (repeatable)")
	if err := parse(fs, args); err != nil {
		return err
	}
	if a == "" || b == "" {
		fmt.Fprintln(stderr, "-a and -b are required")
		return errUsage
	}
	cfg, err := c.config(fs)
	if err != nil {
		return err
	}
	params, err := parseParams(paramKVs)
	if err != nil {
		return err
	}

	pair := sweep.Pair{
		A: layerOf(modelA, layerA, a),
		B: layerOf(modelB, layerB, b),
	}
	results, err := runPairs(ctx, cfg, stderr, params, []sweep.Pair{pair})
	if err != nil {
		return err
	}
	res := results[0]
	if res.Err != nil {
		return res.Err
	}
	fmt.Fprintf(stdout, "%s %.6f", cfg.Estimator, res.Score)
	if res.RunID != "" {
		fmt.Fprintf(stdout, " run=%s", res.RunID)
	}
	if res.Skipped {
		fmt.Fprint(stdout, " (cached)")
	}
	fmt.Fprintln(stdout)

	return nil
}

// layerOf builds a Layer from comma separated paths.
func layerOf(model, name, paths string) sweep.Layer {
	ps := strings.Split(paths, ",")
	if name == "" {
		name = ps[0]
	}
	return sweep.Layer{Model: model, Name: name, Paths: ps}
}

func runSweep(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("sweep", stderr)
	var (
		c            common
		manifestPath string
	)
	c.register(fs)
	fs.StringVar(&manifestPath, "manifest", "", "YAML manifest listing the layers to compare")
	if err := parse(fs, args); err != nil {
		return err
	}
	if manifestPath == "" {
		fmt.Fprintln(stderr, "-manifest is required")
		return errUsage
	}
	cfg, err := c.config(fs)
	if err != nil {
		return err
	}
	man, err := loadManifest(manifestPath)
	if err != nil {
		return err
	}
	if man.Experiment != "" && !flagSet(fs, "experiment") {
		cfg.Experiment = man.Experiment
	}
	params, err := man.flatParams()
	if err != nil {
		return err
	}

	results, err := runPairs(ctx, cfg, stderr, params, man.pairs())
	if err != nil {
		return err
	}

	entries := make([]report.Entry, 0, len(results))
	var failed []error
	for _, res := range results {
		if res.Err != nil {
			failed = append(failed, fmt.Errorf("%s/%s vs %s/%s: %w",
				res.Pair.A.Model, res.Pair.A.Name, res.Pair.B.Model, res.Pair.B.Name, res.Err))
			continue
		}
		entries = append(entries, report.Entry{
			ModelA: res.Pair.A.Model,
			LayerA: res.Pair.A.Name,
			ModelB: res.Pair.B.Model,
			LayerB: res.Pair.B.Name,
			Score:  res.Score,
		})
	}
	if err := writeTables(stdout, cfg.Output, report.Pivot(entries)); err != nil {
		return err
	}

	return errors.Join(failed...)
}

// runPairs wires the environment and runs pairs through a sweep.Runner.
func runPairs(ctx context.Context, cfg config.Config, stderr io.Writer, params map[string]string, pairs []sweep.Pair) (_ []sweep.Result, err error) {
	e, err := newEnv(cfg, stderr, false)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := e.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	cmp, err := cka.New(cfg.Comparator, cfg.Estimator)
	if err != nil {
		return nil, err
	}
	runner, err := sweep.NewRunner(e.runnerOptions(params)...)
	if err != nil {
		return nil, err
	}

	return runner.Run(ctx, cmp, pairs)
}

func runReport(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	fs := newFlagSet("report", stderr)
	var (
		c      common
		format string
	)
	c.register(fs)
	fs.StringVar(&format, "format", "", "output format: text or csv")
	if err := parse(fs, args); err != nil {
		return err
	}
	cfg, err := c.config(fs)
	if err != nil {
		return err
	}
	if format != "" {
		cfg.Output = format
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	e, err := newEnv(cfg, stderr, true)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := e.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	cmp, err := cka.New(cfg.Comparator, cfg.Estimator)
	if err != nil {
		return err
	}
	runs, err := e.store.SearchRuns(ctx, cfg.Experiment, tracking.Query{
		Params:       sweep.SetupParams(cmp, cfg.Samples),
		FinishedOnly: true,
	})
	if err != nil {
		return err
	}

	return writeTables(stdout, cfg.Output, report.Pivot(report.FromRuns(runs)))
}

// writeTables renders every table in the configured format.
func writeTables(w io.Writer, format string, tables []report.Table) error {
	for i, t := range tables {
		if i > 0 {
			fmt.Fprintln(w)
		}
		var err error
		switch format {
		case config.OutputCSV:
			err = t.WriteCSV(w)
		default:
			err = t.WriteText(w)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func runSynth(_ context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("synth", stderr)
	var (
		out, shape string
		seed       int64
		stddev     float64
	)
	fs.StringVar(&out, "o", "", "output file (.npy, .yaml or .json)")
	fs.StringVar(&shape, "shape", "", "tensor shape, comma separated (samples first)")
	fs.Int64Var(&seed, "seed", 1, "random seed")
	fs.Float64Var(&stddev, "stddev", 1, "standard deviation")
	if err := parse(fs, args); err != nil {
		return err
	}
	if out == "" || shape == "" {
		fmt.Fprintln(stderr, "-o and -shape are required")
		return errUsage
	}
	dims, err := parseShape(shape)
	if err != nil {
		return err
	}
	if stddev <= 0 {
		return fmt.Errorf("stddev %g must be positive", stddev)
	}

	t, err := synth.Gaussian(dims, synth.WithSeed(seed), synth.WithStdDev(stddev))
	if err != nil {
		return err
	}
	if err := repfile.Save(out, t); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %s %s\n", t, out)

	return nil
}

// parseShape parses "N,D,..." into positive dimensions.
func parseShape(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	dims := make([]int, len(parts))
	for i, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("shape %q: dimension %q must be a positive integer", s, p)
		}
		dims[i] = d
	}

	return dims, nil
}

func runEstimators(_ context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("estimators", stderr)
	if err := parse(fs, args); err != nil {
		return err
	}
	for _, est := range hsic.Estimators() {
		fmt.Fprintf(stdout, "%-12s min_samples=%d\n", est, est.MinSamples())
	}

	return nil
}

// flagSet reports whether name was given on the command line.
func flagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
