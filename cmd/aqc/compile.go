// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math/rand"
	"net/http"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/aqc/circuit"
	"github.com/katalvlaran/aqc/compiler"
	"github.com/katalvlaran/aqc/config"
	"github.com/katalvlaran/aqc/gradient"
	"github.com/katalvlaran/aqc/matrix"
	"github.com/katalvlaran/aqc/network"
	"github.com/katalvlaran/aqc/optimizer"
)

type compileOptions struct {
	qubits      int
	runs        int
	workers     int
	metricsAddr string
	export      bool
	threshold   float64
}

func newCompileCmd(root *rootOptions) *cobra.Command {
	opts := &compileOptions{}
	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Fit the configured network to random reachable targets",
		Long: `Each run draws a target V(θ*) from the configured network with random
angles θ*, then compiles it from an independent random start. The report
lists the objective at the start and at the end of every run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := root.load()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck
			if err = applyNetworkFlags(cmd, &cfg.Network, &cfg.Compiler.Seed); err != nil {
				return err
			}
			if opts.runs > 0 {
				cfg.Batch.Runs = opts.runs
			}
			if opts.workers > 0 {
				cfg.Batch.Workers = opts.workers
			}

			return runCompile(cmd, cfg, opts, logger)
		},
	}
	cmd.Flags().IntVarP(&opts.qubits, "qubits", "n", 3, "number of qubits")
	cmd.Flags().IntVar(&opts.runs, "runs", 0, "number of runs, overrides batch.runs")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "parallel workers, overrides batch.workers")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")
	cmd.Flags().BoolVar(&opts.export, "export", false, "print the gate sequence of the first run as YAML")
	cmd.Flags().Float64Var(&opts.threshold, "threshold", -1, "omit exported rotations with |angle| at or below this value")
	addNetworkFlags(cmd)

	return cmd
}

func runCompile(cmd *cobra.Command, cfg config.Config, opts *compileOptions, logger *zap.Logger) error {
	nw, err := cfg.MakeNetwork(opts.qubits, network.WithLogger(logger))
	if err != nil {
		return err
	}
	if !nw.Coupled(opts.qubits) {
		logger.Warn("network does not couple all qubits", zap.Ints("reach", nw.Reach(opts.qubits)[1:]))
	}

	compileOpts := append(cfg.CompilerOptions(), compiler.WithLogger(logger))
	if opts.metricsAddr != "" {
		reg := prometheus.NewRegistry()
		compileOpts = append(compileOpts, compiler.WithMetrics(compiler.NewMetrics(reg)))
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			logger.Error("metrics server stopped", zap.Error(http.ListenAndServe(opts.metricsAddr, mux)))
		}()
	}

	jobs, start, err := makeJobs(cfg, nw, opts.qubits)
	if err != nil {
		return err
	}
	outcomes, err := compiler.Batch(cmd.Context(), jobs, cfg.Batch.Workers, compileOpts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "qubits=%d cnots=%d parameters=%d method=%s backend=%s\n",
		opts.qubits, nw.Depth(), gradient.NumThetas(opts.qubits, nw.Depth()), cfg.Compiler.Method, cfg.Compiler.Backend)
	for i, o := range outcomes {
		v, err := o.Circuit.Dense()
		if err != nil {
			return errors.Wrapf(err, "run %d", i)
		}
		rel, err := compiler.RelativeResidual(v, jobs[i].Target)
		if err != nil {
			return errors.Wrapf(err, "run %d", i)
		}
		fmt.Fprintf(out, "run %d: state=%s iterations=%d objective %.3e -> %.3e relative_residual=%.3e\n",
			i, o.Result.State, o.Result.Iterations, start[i], o.Result.Objective, rel)
	}
	if opts.export && len(outcomes) > 0 {
		return writeSequence(out, outcomes[0].Circuit, opts.threshold)
	}

	return nil
}

// makeJobs draws one reachable target and one start point per run. Run i is
// seeded with seed+i. It also returns the starting objectives.
func makeJobs(cfg config.Config, nw network.Network, n int) ([]compiler.Job, []float64, error) {
	size := gradient.NumThetas(n, nw.Depth())
	jobs := make([]compiler.Job, cfg.Batch.Runs)
	start := make([]float64, cfg.Batch.Runs)
	for i := range jobs {
		seed := cfg.Compiler.Seed + int64(i)
		rng := rand.New(rand.NewSource(seed))

		target, err := circuitUnitary(n, nw, optimizer.RandomThetas(rng, size))
		if err != nil {
			return nil, nil, errors.Wrapf(err, "run %d", i)
		}
		thetas := optimizer.RandomThetas(rng, size)
		c, err := circuit.New(n, nw, circuit.WithThetas(thetas), circuit.WithBackend(cfg.Compiler.Backend))
		if err != nil {
			return nil, nil, errors.Wrapf(err, "run %d", i)
		}
		if start[i], _, err = c.Gradient(target); err != nil {
			return nil, nil, errors.Wrapf(err, "run %d", i)
		}
		jobs[i] = compiler.Job{Target: target, Network: nw, Thetas: thetas, Seed: seed}
	}

	return jobs, start, nil
}

func circuitUnitary(n int, nw network.Network, thetas []float64) (*matrix.Dense, error) {
	c, err := circuit.New(n, nw, circuit.WithThetas(thetas))
	if err != nil {
		return nil, err
	}

	return c.Dense()
}

func writeSequence(w io.Writer, c *circuit.ParametricCircuit, threshold float64) error {
	var opts []circuit.ExportOption
	if threshold >= 0 {
		opts = append(opts, circuit.WithThreshold(threshold))
	}
	seq := c.Export(opts...)
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(seq); err != nil {
		return errors.Wrap(err, "export")
	}

	return errors.Wrap(enc.Close(), "export")
}
