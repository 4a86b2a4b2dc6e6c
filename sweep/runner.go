// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"fmt"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/repsim/cka"
	"github.com/katalvlaran/repsim/hsic"
	"github.com/katalvlaran/repsim/tensor"
	"github.com/katalvlaran/repsim/tracking"
)

// Parameter keys recorded with every run.
const (
	ParamModelA     = "modelA"
	ParamLayerA     = "layerA"
	ParamModelB     = "modelB"
	ParamLayerB     = "layerB"
	ParamComparator = "comparator"
	ParamEstimator  = "estimator"
	ParamSamples    = "m"
	ParamDataSeed   = "data_seed"

	// MetricScore is the metric key holding the similarity score.
	MetricScore = "score"
)

// Runner evaluates comparison pairs. It is safe to call Run repeatedly;
// the tensor cache is shared across calls.
type Runner struct {
	opts  options
	cache *lru.Cache[string, *tensor.Tensor]
	group singleflight.Group
}

// NewRunner builds a Runner from options.
func NewRunner(opts ...Option) (*Runner, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	cache, err := lru.New[string, *tensor.Tensor](o.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("sweep: cache: %w", err)
	}

	return &Runner{opts: o, cache: cache}, nil
}

// Run evaluates every pair with cmp and returns one Result per pair, in
// input order. Pair failures are reported in their Result; the returned
// error is non-nil only when ctx ends before every pair was scheduled.
func (r *Runner) Run(ctx context.Context, cmp cka.Comparator, pairs []Pair) ([]Result, error) {
	results := make([]Result, len(pairs))
	for i, p := range pairs {
		results[i].Pair = p
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.workers)
	for i, p := range pairs {
		if err := gctx.Err(); err != nil {
			for j := i; j < len(pairs); j++ {
				results[j].Err = err
			}
			break
		}
		g.Go(func() error {
			results[i] = r.runPair(gctx, cmp, p)
			return nil
		})
	}
	_ = g.Wait()

	skipped, failed := 0, 0
	for _, res := range results {
		switch {
		case res.Skipped:
			skipped++
		case res.Err != nil:
			failed++
		}
	}
	r.opts.logger.LogSweep(ctx, len(pairs), skipped, failed)

	if err := ctx.Err(); err != nil {
		return results, err
	}

	return results, nil
}

// runPair performs one dedup → load → compare → record cycle.
func (r *Runner) runPair(ctx context.Context, cmp cka.Comparator, p Pair) Result {
	res := Result{Pair: p}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}
	log := r.opts.logger.WithPair(p.A.Model, p.A.Name, p.B.Model, p.B.Name)
	params := r.params(cmp, p)
	store := r.opts.store

	if store != nil {
		existing, err := store.SearchRuns(ctx, r.opts.experiment, tracking.Query{
			Params:       params,
			SkipFields:   r.opts.skipFields,
			FinishedOnly: true,
		})
		if err != nil {
			res.Err = err
			return res
		}
		if len(existing) > 0 {
			run := existing[len(existing)-1]
			log.LogSkip(ctx, run.ID)
			res.Skipped, res.RunID, res.Score = true, run.ID, run.Metrics[MetricScore]
			return res
		}

		run, err := store.StartRun(ctx, r.opts.experiment, params)
		if err != nil {
			res.Err = err
			return res
		}
		res.RunID = run.ID
		log = log.WithRun(run.ID)
	}

	score, m, err := r.compare(cmp, p)
	res.Score, res.Err = score, err
	log.LogCompare(ctx, params[ParamComparator], m, score, err)

	if store != nil {
		var recErr error
		if res.Err != nil {
			recErr = store.FailRun(ctx, res.RunID, res.Err)
		} else if recErr = store.LogMetric(ctx, res.RunID, MetricScore, res.Score); recErr == nil {
			recErr = store.EndRun(ctx, res.RunID, tracking.StatusFinished)
		}
		if recErr != nil && res.Err == nil {
			res.Err = recErr
		}
	}

	return res
}

// compare loads, subsamples and scores one pair; it returns the sample count used.
func (r *Runner) compare(cmp cka.Comparator, p Pair) (float64, int, error) {
	x, err := r.load(p.A)
	if err != nil {
		return 0, 0, err
	}
	y, err := r.load(p.B)
	if err != nil {
		return 0, 0, err
	}
	if x.Samples() != y.Samples() {
		return 0, 0, fmt.Errorf("%s/%s has %d samples, %s/%s has %d: %w",
			p.A.Model, p.A.Name, x.Samples(), p.B.Model, p.B.Name, y.Samples(), hsic.ErrShapeMismatch)
	}
	// both sides share the sample count, so one seed selects the same rows
	if m := r.opts.samples; m > 0 {
		if x, err = x.Subsample(m, r.opts.seed); err != nil {
			return 0, 0, fmt.Errorf("%s/%s: %w", p.A.Model, p.A.Name, err)
		}
		if y, err = y.Subsample(m, r.opts.seed); err != nil {
			return 0, 0, fmt.Errorf("%s/%s: %w", p.B.Model, p.B.Name, err)
		}
	}
	score, err := cmp.Compare(x, y)

	return score, x.Samples(), err
}

// load returns the layer tensor, reading it at most once while cached.
func (r *Runner) load(l Layer) (*tensor.Tensor, error) {
	key := l.key()
	if t, ok := r.cache.Get(key); ok {
		return t, nil
	}
	v, err, _ := r.group.Do(key, func() (any, error) {
		t, err := r.opts.loader(l.Paths...)
		if err != nil {
			return nil, err
		}
		r.cache.Add(key, t)
		return t, nil
	})
	if err != nil {
		return nil, fmt.Errorf("load %s/%s: %w", l.Model, l.Name, err)
	}

	return v.(*tensor.Tensor), nil
}

// params returns the flat run parameters identifying p under cmp.
func (r *Runner) params(cmp cka.Comparator, p Pair) map[string]string {
	out := make(map[string]string, len(r.opts.params)+8)
	for k, v := range r.opts.params {
		out[k] = v
	}
	for k, v := range SetupParams(cmp, r.opts.samples) {
		out[k] = v
	}
	out[ParamModelA], out[ParamLayerA] = p.A.Model, p.A.Name
	out[ParamModelB], out[ParamLayerB] = p.B.Model, p.B.Name
	out[ParamDataSeed] = strconv.FormatInt(r.opts.seed, 10)

	return out
}

// SetupParams returns the comparator, estimator and sample-count parameters
// recorded for runs of cmp subsampled to m rows (0 keeps all). Reports
// filter on them so scores of different setups never share a cell.
func SetupParams(cmp cka.Comparator, m int) map[string]string {
	out := map[string]string{
		ParamComparator: fmt.Sprintf("%T", cmp),
		ParamSamples:    strconv.Itoa(m),
	}
	if named, ok := cmp.(interface{ Name() string }); ok {
		out[ParamComparator] = named.Name()
	}
	if est, ok := cmp.(interface{ Estimator() hsic.Estimator }); ok {
		out[ParamEstimator] = est.Estimator().String()
	}

	return out
}
