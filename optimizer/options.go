// SPDX-License-Identifier: MIT

package optimizer

import (
	"math"

	"go.uber.org/zap"
)

// Default stopping thresholds.
const (
	DefaultTolerance = 1e-5
	DefaultEpsilon   = 0.0
)

// Progress is reported to an Observer after every evaluation.
type Progress struct {
	Iteration    int
	Objective    float64
	GradientNorm float64
}

// Observer receives per-iteration progress. It runs on the optimizing
// goroutine and must not block.
type Observer func(Progress)

// Option customizes New.
type Option func(*config)

type config struct {
	maxIterations int // 0: from defaults
	stepSize      float64
	tol           float64
	eps           float64
	defaults      DefaultsTable
	logger        *zap.Logger
	observer      Observer
}

func newConfig(opts ...Option) config {
	cfg := config{
		tol:      DefaultTolerance,
		eps:      DefaultEpsilon,
		defaults: BuiltinDefaults(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithMaxIterations caps the number of updates. Panics if k <= 0.
func WithMaxIterations(k int) Option {
	if k <= 0 {
		panic("optimizer: WithMaxIterations(k<=0)")
	}
	return func(c *config) { c.maxIterations = k }
}

// WithStepSize sets η. Panics unless eta > 0 and finite.
func WithStepSize(eta float64) Option {
	if !(eta > 0) || math.IsInf(eta, 0) {
		panic("optimizer: WithStepSize(eta<=0)")
	}
	return func(c *config) { c.stepSize = eta }
}

// WithTolerance sets the objective below which a run has converged.
// Panics if tol < 0.
func WithTolerance(tol float64) Option {
	if !(tol >= 0) {
		panic("optimizer: WithTolerance(tol<0)")
	}
	return func(c *config) { c.tol = tol }
}

// WithEpsilon stops a run once one step improves the objective by less than
// eps. A step that raises the objective does not stop the run. Zero disables
// the check. Panics if eps < 0.
func WithEpsilon(eps float64) Option {
	if !(eps >= 0) {
		panic("optimizer: WithEpsilon(eps<0)")
	}
	return func(c *config) { c.eps = eps }
}

// WithDefaults replaces the qubit-keyed defaults table. Panics on an
// invalid table.
func WithDefaults(t DefaultsTable) Option {
	if err := t.Validate(); err != nil {
		panic("optimizer: WithDefaults: " + err.Error())
	}
	t = append(DefaultsTable(nil), t...)
	return func(c *config) { c.defaults = t }
}

// WithLogger routes run summaries (Info) and per-iteration progress (Debug)
// to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("optimizer: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithObserver registers a per-iteration callback. Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("optimizer: WithObserver(nil)")
	}
	return func(c *config) { c.observer = o }
}
