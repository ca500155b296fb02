// SPDX-License-Identifier: MIT

package compiler

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/aqc/matrix"
	"github.com/katalvlaran/aqc/optimizer"
)

// Run outcomes used as the "outcome" label.
const (
	OutcomeConverged      = "converged"
	OutcomeIterationLimit = "iteration_limit"
	OutcomeError          = "error"
)

// Metrics holds the compiler's prometheus collectors.
type Metrics struct {
	runs            *prometheus.CounterVec
	iterations      prometheus.Histogram
	finalObjective  prometheus.Histogram
	gradientSeconds prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg. A nil reg
// leaves them unregistered, which is useful in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		runs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "aqc",
				Subsystem: "compiler",
				Name:      "runs_total",
				Help:      "Total number of compile runs",
			},
			// outcome: converged/iteration_limit/error
			[]string{"outcome"},
		),
		iterations: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "aqc",
				Subsystem: "compiler",
				Name:      "iterations",
				Help:      "Optimizer updates per finished run",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		finalObjective: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "aqc",
				Subsystem: "compiler",
				Name:      "final_objective",
				Help:      "Objective ½‖V−U‖² at the end of a finished run",
				Buckets:   prometheus.ExponentialBuckets(1e-8, 10, 10),
			},
		),
		gradientSeconds: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "aqc",
				Subsystem: "compiler",
				Name:      "gradient_seconds",
				Help:      "Duration of one objective and gradient evaluation",
				Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 12),
			},
		),
	}
}

func (m *Metrics) observeRun(res optimizer.Result, err error) {
	if err != nil {
		m.runs.WithLabelValues(OutcomeError).Inc()
		return
	}
	outcome := OutcomeIterationLimit
	if res.State == optimizer.StateConverged {
		outcome = OutcomeConverged
	}
	m.runs.WithLabelValues(outcome).Inc()
	m.iterations.Observe(float64(res.Iterations))
	m.finalObjective.Observe(res.Objective)
}

// timedModel times every gradient evaluation of the wrapped model.
type timedModel struct {
	optimizer.Model
	hist prometheus.Histogram
}

func (t timedModel) Gradient(target *matrix.Dense) (float64, []float64, error) {
	start := time.Now()
	defer func() { t.hist.Observe(time.Since(start).Seconds()) }()

	return t.Model.Gradient(target)
}
