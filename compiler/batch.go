// SPDX-License-Identifier: MIT

package compiler

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/aqc/circuit"
	"github.com/katalvlaran/aqc/matrix"
	"github.com/katalvlaran/aqc/network"
	"github.com/katalvlaran/aqc/optimizer"
)

// Job is one independent compilation.
type Job struct {
	Target  *matrix.Dense
	Network network.Network
	Thetas  []float64 // nil: sampled from Seed
	Seed    int64
}

// Outcome is the result of one Job.
type Outcome struct {
	Circuit *circuit.ParametricCircuit
	Result  optimizer.Result
}

// Batch compiles jobs on at most workers goroutines (workers <= 0 means
// GOMAXPROCS). Each job samples its starting angles from its own Seed, so
// outcomes are independent of scheduling. The first failing job cancels the
// jobs that have not started yet and its error is returned; outcomes of
// jobs that finished are kept in place.
//
// Options are shared by every job. A WithObserver callback passed through
// WithOptimizerOptions is called from several goroutines.
func Batch(ctx context.Context, jobs []Job, workers int, opts ...Option) ([]Outcome, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	base := newCompilerConfig(opts...)
	out := make([]Outcome, len(jobs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range jobs {
		jobIndex := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			job := jobs[jobIndex]
			cfg := base
			cfg.rng = nil
			WithSeed(job.Seed)(&cfg)
			cfg.logger = base.logger.With(zap.Int("job", jobIndex))

			c, res, err := compile(job.Target, job.Network, job.Thetas, cfg)
			if err != nil {
				return errors.Wrapf(err, "job %d", jobIndex)
			}
			out[jobIndex] = Outcome{Circuit: c, Result: res}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return out, err
	}

	return out, nil
}
