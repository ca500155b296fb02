// SPDX-License-Identifier: MIT

package compiler

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/aqc/aqcerr"
	"github.com/katalvlaran/aqc/bitperm"
	"github.com/katalvlaran/aqc/circuit"
	"github.com/katalvlaran/aqc/gradient"
	"github.com/katalvlaran/aqc/matrix"
	"github.com/katalvlaran/aqc/network"
	"github.com/katalvlaran/aqc/optimizer"
)

// Compile fits the angles of a circuit on net so that its unitary
// approaches target, starting from thetas0 (nil samples every angle
// uniformly from [0, 2π) with the configured seed).
//
// The qubit count is log2 of the target side. The returned circuit holds the
// fitted angles and keeps its gradient backend bound. Running out of
// iterations is reported in Result.State, not as an error.
//
// Errors (errors.Is):
//   - aqcerr.ErrDimension: nil, non-square or non power-of-two target,
//     or len(thetas0) != 4L+3n.
//   - aqcerr.ErrCapacity: more than bitperm.MaxQubits qubits.
//   - aqcerr.ErrConfiguration: unknown method or backend.
//   - aqcerr.ErrValidation: net does not fit n qubits.
func Compile(target *matrix.Dense, net network.Network, thetas0 []float64, opts ...Option) (*circuit.ParametricCircuit, optimizer.Result, error) {
	return compile(target, net, thetas0, newCompilerConfig(opts...))
}

func compile(target *matrix.Dense, net network.Network, thetas0 []float64, cfg compilerConfig) (*circuit.ParametricCircuit, optimizer.Result, error) {
	c, res, err := run(target, net, thetas0, cfg)
	if cfg.metrics != nil {
		cfg.metrics.observeRun(res, err)
	}
	if err != nil {
		cfg.logger.Warn("compile failed", zap.Error(err))
		return nil, res, err
	}
	cfg.logger.Info("compiled",
		zap.Int("qubits", c.NumQubits()),
		zap.Int("cnots", c.NumCNOTs()),
		zap.Stringer("state", res.State),
		zap.Int("iterations", res.Iterations),
		zap.Float64("objective", res.Objective))

	return c, res, nil
}

func run(target *matrix.Dense, net network.Network, thetas0 []float64, cfg compilerConfig) (*circuit.ParametricCircuit, optimizer.Result, error) {
	n, err := QubitsOf(target)
	if err != nil {
		return nil, optimizer.Result{}, err
	}
	optOpts := append([]optimizer.Option{optimizer.WithLogger(cfg.logger)}, cfg.optOpts...)
	opt, err := optimizer.New(cfg.method, optOpts...)
	if err != nil {
		return nil, optimizer.Result{}, errors.Wrap(err, "compile")
	}
	if thetas0 == nil {
		thetas0 = optimizer.RandomThetas(cfg.rng, gradient.NumThetas(n, net.Depth()))
	}
	c, err := circuit.New(n, net, circuit.WithThetas(thetas0), circuit.WithBackend(cfg.backend))
	if err != nil {
		return nil, optimizer.Result{}, errors.Wrap(err, "compile")
	}

	var model optimizer.Model = c
	if cfg.metrics != nil {
		model = timedModel{Model: c, hist: cfg.metrics.gradientSeconds}
	}
	res, err := opt.Optimize(model, target)
	if err != nil {
		return nil, res, errors.Wrap(err, "compile")
	}

	return c, res, nil
}

// QubitsOf returns n for a 2^n × 2^n target.
//
// Errors:
//   - aqcerr.ErrDimension for a nil, non-square or non power-of-two matrix.
//   - aqcerr.ErrCapacity when n exceeds bitperm.MaxQubits.
func QubitsOf(target *matrix.Dense) (int, error) {
	if err := matrix.ValidateNotNil(target); err != nil {
		return 0, errors.Wrapf(aqcerr.ErrDimension, "target: %v", err)
	}
	n, err := matrix.ValidatePowerOfTwo(target)
	if err != nil {
		r, c := target.Shape()
		return 0, errors.Wrapf(aqcerr.ErrDimension, "target %dx%d: %v", r, c, err)
	}
	if n > bitperm.MaxQubits {
		return 0, errors.Wrapf(aqcerr.ErrCapacity, "target on %d qubits, max %d", n, bitperm.MaxQubits)
	}

	return n, nil
}
