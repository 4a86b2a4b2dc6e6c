// SPDX-License-Identifier: MIT

package sweep

import (
	"runtime"

	"github.com/katalvlaran/repsim/logging"
	"github.com/katalvlaran/repsim/repfile"
	"github.com/katalvlaran/repsim/tensor"
	"github.com/katalvlaran/repsim/tracking"
)

// Option customizes a Runner. Constructors panic on meaningless values.
type Option func(*options)

// Loader reads the tensor stored in paths, stacked along the sample axis.
type Loader func(paths ...string) (*tensor.Tensor, error)

type options struct {
	workers    int
	cacheSize  int
	store      *tracking.Store
	logger     *logging.Logger
	samples    int
	seed       int64
	experiment string
	params     map[string]string
	skipFields []string
	loader     Loader
}

// Defaults.
const (
	DefaultCacheSize  = 16
	DefaultExperiment = "default"
)

func defaultOptions() options {
	return options{
		workers:    runtime.GOMAXPROCS(0),
		cacheSize:  DefaultCacheSize,
		logger:     logging.NoopLogger(),
		experiment: DefaultExperiment,
		loader:     repfile.LoadConcat,
	}
}

// WithWorkers bounds the number of pairs evaluated at once. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("sweep: WithWorkers(n<1)")
	}
	return func(o *options) { o.workers = n }
}

// WithCacheSize sets how many loaded tensors are kept. Panics if n < 1.
func WithCacheSize(n int) Option {
	if n < 1 {
		panic("sweep: WithCacheSize(n<1)")
	}
	return func(o *options) { o.cacheSize = n }
}

// WithStore enables run dedup and recording. Panics on nil.
func WithStore(s *tracking.Store) Option {
	if s == nil {
		panic("sweep: WithStore(nil)")
	}
	return func(o *options) { o.store = s }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *logging.Logger) Option {
	if l == nil {
		panic("sweep: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}

// WithSamples subsamples both tensors of every pair to m rows chosen by
// seed. m = 0 keeps all rows. Panics if m < 0.
func WithSamples(m int, seed int64) Option {
	if m < 0 {
		panic("sweep: WithSamples(m<0)")
	}
	return func(o *options) { o.samples, o.seed = m, seed }
}

// WithExperiment names the tracking experiment. Panics on "".
func WithExperiment(name string) Option {
	if name == "" {
		panic("sweep: WithExperiment(\"\")")
	}
	return func(o *options) { o.experiment = name }
}

// WithParams adds fixed parameters recorded with every run (dataset, …).
func WithParams(p map[string]string) Option {
	return func(o *options) {
		o.params = make(map[string]string, len(p))
		for k, v := range p {
			o.params[k] = v
		}
	}
}

// WithSkipFields lists parameters ignored when looking for an existing run.
func WithSkipFields(fields ...string) Option {
	return func(o *options) { o.skipFields = append([]string(nil), fields...) }
}

// WithLoader replaces the file loader. Panics on nil.
func WithLoader(l Loader) Option {
	if l == nil {
		panic("sweep: WithLoader(nil)")
	}
	return func(o *options) { o.loader = l }
}
