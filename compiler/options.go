// SPDX-License-Identifier: MIT

package compiler

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/aqc/gradient"
	"github.com/katalvlaran/aqc/optimizer"
)

// Defaults for Compile.
const (
	DefaultMethod  = optimizer.MethodNesterov
	DefaultBackend = gradient.BackendFast
	DefaultSeed    = 0
)

// Option customizes Compile and Batch.
type Option func(*compilerConfig)

type compilerConfig struct {
	method  string
	backend string
	rng     *rand.Rand
	optOpts []optimizer.Option
	logger  *zap.Logger
	metrics *Metrics
}

func newCompilerConfig(opts ...Option) compilerConfig {
	cfg := compilerConfig{
		method:  DefaultMethod,
		backend: DefaultBackend,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}

// WithMethod selects the optimization method (see optimizer.Methods).
func WithMethod(name string) Option {
	if name == "" {
		panic("compiler: WithMethod(\"\")")
	}
	return func(c *compilerConfig) { c.method = name }
}

// WithBackend selects the gradient backend (see gradient.Backends).
func WithBackend(name string) Option {
	if name == "" {
		panic("compiler: WithBackend(\"\")")
	}
	return func(c *compilerConfig) { c.backend = name }
}

// WithSeed seeds the source used to sample starting angles.
func WithSeed(seed int64) Option {
	return func(c *compilerConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies the source used to sample starting angles. The source is
// not safe for concurrent use; Batch ignores it in favour of per-job seeds.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("compiler: WithRand(nil)")
	}
	return func(c *compilerConfig) { c.rng = r }
}

// WithMaxIterations forwards optimizer.WithMaxIterations.
func WithMaxIterations(k int) Option { return WithOptimizerOptions(optimizer.WithMaxIterations(k)) }

// WithStepSize forwards optimizer.WithStepSize.
func WithStepSize(eta float64) Option { return WithOptimizerOptions(optimizer.WithStepSize(eta)) }

// WithTolerance forwards optimizer.WithTolerance.
func WithTolerance(tol float64) Option { return WithOptimizerOptions(optimizer.WithTolerance(tol)) }

// WithEpsilon forwards optimizer.WithEpsilon.
func WithEpsilon(eps float64) Option { return WithOptimizerOptions(optimizer.WithEpsilon(eps)) }

// WithDefaults forwards optimizer.WithDefaults.
func WithDefaults(t optimizer.DefaultsTable) Option {
	return WithOptimizerOptions(optimizer.WithDefaults(t))
}

// WithOptimizerOptions appends raw optimizer options.
func WithOptimizerOptions(opts ...optimizer.Option) Option {
	return func(c *compilerConfig) { c.optOpts = append(c.optOpts, opts...) }
}

// WithLogger logs compile summaries to l and hands it to the optimizer.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("compiler: WithLogger(nil)")
	}
	return func(c *compilerConfig) { c.logger = l }
}

// WithMetrics records every run into m. Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("compiler: WithMetrics(nil)")
	}
	return func(c *compilerConfig) { c.metrics = m }
}
