// SPDX-License-Identifier: MIT

package optimizer_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/aqc/aqcerr"
	"github.com/katalvlaran/aqc/circuit"
	"github.com/katalvlaran/aqc/matrix"
	"github.com/katalvlaran/aqc/network"
	"github.com/katalvlaran/aqc/optimizer"
)

func identity(t *testing.T, d int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(d)
	require.NoError(t, err)
	return m
}

type OptimizerSuite struct {
	suite.Suite
}

func TestOptimizerSuite(t *testing.T) {
	suite.Run(t, new(OptimizerSuite))
}

// spinCircuit builds a two-qubit spin/full circuit of the given depth with
// the fast backend bound.
func (s *OptimizerSuite) spinCircuit(depth int, thetas []float64) *circuit.ParametricCircuit {
	opts := []circuit.Option{circuit.WithBackend("fast")}
	if thetas != nil {
		opts = append(opts, circuit.WithThetas(thetas))
	}
	c, err := circuit.NewFromLayout(2, network.LayoutSpin, network.ConnectivityFull, depth, opts...)
	s.Require().NoError(err)
	return c
}

// reachable returns a target produced by the depth-3 circuit itself and a
// start point close to it.
func (s *OptimizerSuite) reachable() (*matrix.Dense, []float64) {
	ts := make([]float64, 18)
	start := make([]float64, 18)
	for k := range ts {
		ts[k] = math.Mod(1.7*float64(k)+0.3, 2*math.Pi)
		start[k] = ts[k] + 0.1*math.Cos(float64(k))
	}
	target, err := s.spinCircuit(3, ts).Dense()
	s.Require().NoError(err)
	return target, start
}

func (s *OptimizerSuite) TestIdentityReachedAtStart() {
	c := s.spinCircuit(4, nil)
	opt, err := optimizer.New(optimizer.MethodNesterov)
	s.Require().NoError(err)

	res, err := opt.Optimize(c, identity(s.T(), 4))
	s.Require().NoError(err)
	s.Equal(optimizer.StateConverged, res.State)
	s.Equal(0, res.Iterations)
	s.InDelta(0, res.Objective, 1e-12)
}

// With three CNOTs the identity is out of reach and the gradient at zero
// angles vanishes, so the run must exhaust its budget without error.
func (s *OptimizerSuite) TestUnreachableTargetHitsIterationLimit() {
	for _, method := range optimizer.Methods() {
		s.Run(method, func() {
			c := s.spinCircuit(3, nil)
			opt, err := optimizer.New(method)
			s.Require().NoError(err)

			res, err := opt.Optimize(c, identity(s.T(), 4))
			s.Require().NoError(err)
			s.Equal(optimizer.StateIterationLimit, res.State)
			s.Equal(200, res.Iterations)
			s.InDelta(2, res.Objective, 1e-9)
			s.Len(res.Thetas, 18)
		})
	}
}

func (s *OptimizerSuite) TestReachableTargetConverges() {
	cases := []struct {
		method  string
		maxIter int
	}{
		{optimizer.MethodNesterov, 200},
		{optimizer.MethodGradientDescent, 500},
	}
	for _, tc := range cases {
		s.Run(tc.method, func() {
			target, start := s.reachable()
			c := s.spinCircuit(3, start)
			var first *optimizer.Progress
			opt, err := optimizer.New(tc.method,
				optimizer.WithMaxIterations(tc.maxIter),
				optimizer.WithStepSize(0.1),
				optimizer.WithTolerance(1e-6),
				optimizer.WithObserver(func(p optimizer.Progress) {
					if first == nil {
						first = &p
					}
				}))
			s.Require().NoError(err)

			res, err := opt.Optimize(c, target)
			s.Require().NoError(err)
			s.Equal(optimizer.StateConverged, res.State)
			s.Less(res.Objective, 1e-6)
			s.Less(res.Iterations, tc.maxIter)
			s.Require().NotNil(first)
			s.InDelta(0.0452, first.Objective, 1e-3)
			s.Equal(res.Thetas, c.Thetas())
		})
	}
}

func (s *OptimizerSuite) TestNesterovFasterThanGradientDescent() {
	iterations := map[string]int{}
	for _, method := range optimizer.Methods() {
		target, start := s.reachable()
		opt, err := optimizer.New(method, optimizer.WithMaxIterations(500),
			optimizer.WithStepSize(0.1), optimizer.WithTolerance(1e-6))
		s.Require().NoError(err)
		res, err := opt.Optimize(s.spinCircuit(3, start), target)
		s.Require().NoError(err)
		iterations[method] = res.Iterations
	}
	s.Less(iterations[optimizer.MethodNesterov], iterations[optimizer.MethodGradientDescent])
}

func (s *OptimizerSuite) TestEpsilonStopsStalledRun() {
	opt, err := optimizer.New(optimizer.MethodGradientDescent, optimizer.WithEpsilon(1e-12))
	s.Require().NoError(err)

	res, err := opt.Optimize(s.spinCircuit(3, nil), identity(s.T(), 4))
	s.Require().NoError(err)
	s.Equal(optimizer.StateConverged, res.State)
	s.Equal(1, res.Iterations)
}

func (s *OptimizerSuite) TestObserverSeesEveryEvaluation() {
	var seen []optimizer.Progress
	opt, err := optimizer.New("gd", optimizer.WithMaxIterations(5),
		optimizer.WithObserver(func(p optimizer.Progress) { seen = append(seen, p) }))
	s.Require().NoError(err)

	res, err := opt.Optimize(s.spinCircuit(3, nil), identity(s.T(), 4))
	s.Require().NoError(err)
	s.Equal(5, res.Iterations)
	s.Require().Len(seen, 6)
	for i, p := range seen {
		s.Equal(i, p.Iteration)
		s.InDelta(0, p.GradientNorm, 1e-12)
	}
}

func (s *OptimizerSuite) TestLogging() {
	core, logs := observer.New(zapcore.DebugLevel)
	opt, err := optimizer.New(optimizer.MethodNesterov, optimizer.WithMaxIterations(2),
		optimizer.WithLogger(zap.New(core)))
	s.Require().NoError(err)

	_, err = opt.Optimize(s.spinCircuit(3, nil), identity(s.T(), 4))
	s.Require().NoError(err)
	s.Equal(1, logs.FilterMessage("optimization started").Len())
	s.Equal(3, logs.FilterMessage("iteration").Len())
	finished := logs.FilterMessage("optimization finished").All()
	s.Require().Len(finished, 1)
	s.Equal("iteration-limit", finished[0].ContextMap()["state"])
}

type failingModel struct{ calls int }

var errBackend = errors.New("backend failure")

func (f *failingModel) NumQubits() int            { return 1 }
func (f *failingModel) Thetas() []float64         { return []float64{0, 0, 0} }
func (f *failingModel) SetThetas([]float64) error { return nil }
func (f *failingModel) Gradient(*matrix.Dense) (float64, []float64, error) {
	f.calls++
	if f.calls > 2 {
		return 0, nil, errBackend
	}
	return 1, []float64{1, 1, 1}, nil
}

// scriptedModel replays a fixed sequence of objectives with a unit gradient.
type scriptedModel struct {
	objectives []float64
	calls      int
}

func (m *scriptedModel) NumQubits() int            { return 1 }
func (m *scriptedModel) Thetas() []float64         { return []float64{0, 0, 0} }
func (m *scriptedModel) SetThetas([]float64) error { return nil }
func (m *scriptedModel) Gradient(*matrix.Dense) (float64, []float64, error) {
	obj := m.objectives[len(m.objectives)-1]
	if m.calls < len(m.objectives) {
		obj = m.objectives[m.calls]
	}
	m.calls++
	return obj, []float64{1, 1, 1}, nil
}

func TestEpsilonIgnoresRisingObjective(t *testing.T) {
	opt, err := optimizer.New(optimizer.MethodNesterov,
		optimizer.WithEpsilon(1e-3), optimizer.WithMaxIterations(50))
	require.NoError(t, err)

	m := &scriptedModel{objectives: []float64{1.0, 1.5, 1.2, 1.1999995}}
	res, err := opt.Optimize(m, identity(t, 2))
	require.NoError(t, err)
	require.Equal(t, optimizer.StateConverged, res.State)
	require.Equal(t, 3, res.Iterations)
	require.InDelta(t, 1.1999995, res.Objective, 1e-12)
}

func TestOptimizeAbortsOnModelError(t *testing.T) {
	opt, err := optimizer.New(optimizer.MethodGradientDescent)
	require.NoError(t, err)

	_, err = opt.Optimize(&failingModel{}, identity(t, 2))
	require.ErrorIs(t, err, errBackend)
}

func TestNewUnknownMethod(t *testing.T) {
	_, err := optimizer.New("adam")
	require.ErrorIs(t, err, aqcerr.ErrConfiguration)
}

func TestMethodAliases(t *testing.T) {
	cases := map[string]string{
		"gd":                            optimizer.MethodGradientDescent,
		"nag":                           optimizer.MethodNesterov,
		optimizer.MethodNesterov:        optimizer.MethodNesterov,
		optimizer.MethodGradientDescent: optimizer.MethodGradientDescent,
	}
	for in, want := range cases {
		opt, err := optimizer.New(in)
		require.NoError(t, err)
		require.Equal(t, want, opt.Method())
	}
}

func TestHyperparameters(t *testing.T) {
	opt, err := optimizer.New(optimizer.MethodNesterov)
	require.NoError(t, err)

	cases := []struct {
		n       int
		maxIter int
		eta     float64
	}{
		{1, 200, 0.1},
		{3, 200, 0.1},
		{4, 350, 0.06},
		{5, 500, 0.03},
		{16, 500, 0.03},
	}
	for _, tc := range cases {
		maxIter, eta := opt.Hyperparameters(tc.n)
		require.Equal(t, tc.maxIter, maxIter, "n=%d", tc.n)
		require.Equal(t, tc.eta, eta, "n=%d", tc.n)
	}

	opt, err = optimizer.New(optimizer.MethodNesterov, optimizer.WithMaxIterations(7))
	require.NoError(t, err)
	maxIter, eta := opt.Hyperparameters(4)
	require.Equal(t, 7, maxIter)
	require.Equal(t, 0.06, eta)
}

func TestDefaultsTable(t *testing.T) {
	require.NoError(t, optimizer.BuiltinDefaults().Validate())
	require.ErrorIs(t, optimizer.DefaultsTable{}.Validate(), aqcerr.ErrConfiguration)
	require.ErrorIs(t, optimizer.DefaultsTable{{MaxQubits: 2}}.Validate(), aqcerr.ErrConfiguration)

	unsorted := optimizer.DefaultsTable{
		{MaxQubits: 8, Defaults: optimizer.Defaults{MaxIterations: 80, StepSize: 0.08}},
		{MaxQubits: 2, Defaults: optimizer.Defaults{MaxIterations: 20, StepSize: 0.02}},
	}
	require.Equal(t, 20, unsorted.Lookup(1).MaxIterations)
	require.Equal(t, 80, unsorted.Lookup(5).MaxIterations)
	require.Equal(t, 80, unsorted.Lookup(12).MaxIterations)

	require.Panics(t, func() { optimizer.WithDefaults(optimizer.DefaultsTable{}) })
	require.Panics(t, func() { optimizer.WithStepSize(0) })
	require.Panics(t, func() { optimizer.WithMaxIterations(0) })
	require.Panics(t, func() { optimizer.WithTolerance(-1) })
}

func TestRandomThetasRange(t *testing.T) {
	th := optimizer.RandomThetas(rand.New(rand.NewSource(7)), 40)
	require.Len(t, th, 40)
	for _, v := range th {
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 2*math.Pi)
	}
}

func TestStateString(t *testing.T) {
	require.Equal(t, "converged", optimizer.StateConverged.String())
	require.Equal(t, "State(9)", optimizer.State(9).String())
}
