// SPDX-License-Identifier: MIT

package optimizer

import (
	"fmt"
	"math"
	"math/rand"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/aqc/aqcerr"
	"github.com/katalvlaran/aqc/matrix"
)

// Method names accepted by New.
const (
	MethodGradientDescent = "gradient-descent"
	MethodNesterov        = "nesterov"
)

var methodAliases = map[string]string{
	"gd":  MethodGradientDescent,
	"nag": MethodNesterov,
}

// Methods returns the canonical method names.
func Methods() []string { return []string{MethodGradientDescent, MethodNesterov} }

// State is the phase of a run.
type State int

// Run states.
const (
	StateInitialized State = iota
	StateRunning
	StateConverged
	StateIterationLimit
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateRunning:
		return "running"
	case StateConverged:
		return "converged"
	case StateIterationLimit:
		return "iteration-limit"
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// Model is what a run drives: a parameter vector with a bound gradient.
// *circuit.ParametricCircuit satisfies it.
type Model interface {
	NumQubits() int
	Thetas() []float64
	SetThetas([]float64) error
	Gradient(target *matrix.Dense) (float64, []float64, error)
}

// Result is the outcome of one run.
type Result struct {
	Thetas     []float64
	Objective  float64
	Iterations int // number of updates applied
	State      State
}

// Optimizer holds a method and its resolved options. It keeps no per-run
// state and can drive several runs, one at a time or concurrently.
type Optimizer struct {
	method string
	cfg    config
}

// New returns an optimizer for the named method.
//
// Errors:
//   - aqcerr.ErrConfiguration for an unknown method.
func New(method string, opts ...Option) (*Optimizer, error) {
	if canonical, ok := methodAliases[method]; ok {
		method = canonical
	}
	if method != MethodGradientDescent && method != MethodNesterov {
		return nil, fmt.Errorf("New: method %q not in %v: %w", method, Methods(), aqcerr.ErrConfiguration)
	}

	return &Optimizer{method: method, cfg: newConfig(opts...)}, nil
}

// Method returns the canonical method name.
func (o *Optimizer) Method() string { return o.method }

// Hyperparameters returns the iteration cap and step size a run on n qubits
// would use.
func (o *Optimizer) Hyperparameters(n int) (int, float64) {
	d := o.cfg.defaults.Lookup(n)
	maxIter, eta := o.cfg.maxIterations, o.cfg.stepSize
	if maxIter == 0 {
		maxIter = d.MaxIterations
	}
	if eta == 0 {
		eta = d.StepSize
	}

	return maxIter, eta
}

// Optimize runs the method on m toward target and leaves m holding the
// final angles.
// MAIN DESCRIPTION:
//   - gradient-descent: θ ← θ − η·g.
//   - nesterov: y ← θ − η·g; θ ← y + k/(k+3)·(y − y_prev); y_prev ← y,
//     with k the 0-based update index.
//
// Errors:
//   - any error from m.Gradient or m.SetThetas, which aborts the run.
func (o *Optimizer) Optimize(m Model, target *matrix.Dense) (Result, error) {
	maxIter, eta := o.Hyperparameters(m.NumQubits())
	log := o.cfg.logger.With(zap.String("method", o.method), zap.Int("qubits", m.NumQubits()))

	theta := m.Thetas()
	prev := append([]float64(nil), theta...)
	next := make([]float64, len(theta))
	diff := make([]float64, len(theta))
	res := Result{State: StateInitialized}

	log.Info("optimization started",
		zap.Int("max_iterations", maxIter), zap.Float64("step_size", eta),
		zap.Float64("tol", o.cfg.tol), zap.Float64("eps", o.cfg.eps), zap.Int("parameters", len(theta)))

	res.State = StateRunning
	prevObj := math.Inf(1)
	for it := 0; ; it++ {
		obj, grad, err := m.Gradient(target)
		if err != nil {
			return res, fmt.Errorf("Optimize: iteration %d: %w", it, err)
		}
		res.Objective, res.Iterations = obj, it
		gnorm := floats.Norm(grad, 2)
		if o.cfg.observer != nil {
			o.cfg.observer(Progress{Iteration: it, Objective: obj, GradientNorm: gnorm})
		}
		log.Debug("iteration", zap.Int("iteration", it), zap.Float64("objective", obj), zap.Float64("gradient_norm", gnorm))

		if obj < o.cfg.tol {
			res.State = StateConverged
			break
		}
		if it >= maxIter {
			res.State = StateIterationLimit
			break
		}
		if delta := prevObj - obj; o.cfg.eps > 0 && delta >= 0 && delta < o.cfg.eps {
			res.State = StateConverged
			break
		}
		prevObj = obj

		switch o.method {
		case MethodGradientDescent:
			floats.AddScaled(theta, -eta, grad)
		case MethodNesterov:
			floats.AddScaledTo(next, theta, -eta, grad)
			floats.SubTo(diff, next, prev)
			floats.AddScaledTo(theta, next, float64(it)/float64(it+3), diff)
			copy(prev, next)
		}
		if err := m.SetThetas(theta); err != nil {
			return res, fmt.Errorf("Optimize: iteration %d: %w", it, err)
		}
	}

	res.Thetas = m.Thetas()
	log.Info("optimization finished",
		zap.Stringer("state", res.State), zap.Int("iterations", res.Iterations), zap.Float64("objective", res.Objective))

	return res, nil
}

// RandomThetas draws size angles uniformly from [0, 2π).
func RandomThetas(rng *rand.Rand, size int) []float64 {
	out := make([]float64, size)
	for i := range out {
		out[i] = 2 * math.Pi * rng.Float64()
	}

	return out
}
