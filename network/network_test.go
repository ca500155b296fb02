// SPDX-License-Identifier: MIT

package network_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/aqc/aqcerr"
	"github.com/katalvlaran/aqc/network"
)

type NetworkSuite struct {
	suite.Suite
}

func TestNetworkSuite(t *testing.T) {
	suite.Run(t, new(NetworkSuite))
}

func (s *NetworkSuite) TestLowerLimit() {
	s.Equal(0, network.LowerLimit(1))
	s.Equal(3, network.LowerLimit(2))
	s.Equal(14, network.LowerLimit(3))
	s.Equal(61, network.LowerLimit(4))
	s.Equal(252, network.LowerLimit(5))
}

// requireWellFormed asserts every pair holds two distinct qubits in [1, n].
func requireWellFormed(t *testing.T, n int, nw network.Network) {
	t.Helper()
	require.NoError(t, nw.Validate(n))
	for l := 0; l < nw.Depth(); l++ {
		c, tg := nw.Pair(l)
		require.NotEqual(t, c, tg)
		require.GreaterOrEqual(t, c, 1)
		require.LessOrEqual(t, tg, n)
	}
}

func (s *NetworkSuite) TestAutoDepthAtLeastLowerLimit() {
	cases := []struct{ layout, connectivity string }{
		{network.LayoutSequential, network.ConnectivityFull},
		{network.LayoutSequential, network.ConnectivityLine},
		{network.LayoutSequential, network.ConnectivityStar},
		{network.LayoutSpin, network.ConnectivityFull},
		{network.LayoutSpin, network.ConnectivityLine},
		{network.LayoutCyclicSpin, network.ConnectivityFull},
		{network.LayoutCyclicLine, network.ConnectivityLine},
	}
	for n := 2; n <= 5; n++ {
		for _, tc := range cases {
			s.Run(fmt.Sprintf("%s/%s/n=%d", tc.layout, tc.connectivity, n), func() {
				nw, err := network.Make(n, tc.layout, tc.connectivity, 0)
				s.Require().NoError(err)
				s.Equal(network.LowerLimit(n), nw.Depth())
				requireWellFormed(s.T(), n, nw)
			})
		}
	}
	for n := 3; n <= 5; n++ {
		nw, err := network.Make(n, network.LayoutCartan, network.ConnectivityFull, 0)
		s.Require().NoError(err)
		s.GreaterOrEqual(nw.Depth(), network.LowerLimit(n))
		requireWellFormed(s.T(), n, nw)
	}
}

func (s *NetworkSuite) TestSpin() {
	nw, err := network.Make(4, network.LayoutSpin, network.ConnectivityFull, 7)
	s.Require().NoError(err)
	s.Equal([][2]int{{1, 2}, {3, 4}, {2, 3}, {1, 2}, {3, 4}, {2, 3}, {1, 2}}, nw.Pairs())

	nw, err = network.Make(2, network.LayoutSpin, network.ConnectivityFull, 3)
	s.Require().NoError(err)
	s.Equal([]int{1, 1, 1}, nw.Controls())
	s.Equal([]int{2, 2, 2}, nw.Targets())
}

func (s *NetworkSuite) TestSequential() {
	nw, err := network.Make(3, "sequential", network.ConnectivityFull, 4)
	s.Require().NoError(err)
	s.Equal([][2]int{{1, 2}, {1, 3}, {2, 3}, {1, 2}}, nw.Pairs())

	nw, err = network.Make(4, network.LayoutSequential, network.ConnectivityLine, 4)
	s.Require().NoError(err)
	s.Equal([][2]int{{1, 2}, {2, 3}, {3, 4}, {1, 2}}, nw.Pairs())

	nw, err = network.Make(4, network.LayoutSequential, network.ConnectivityStar, 4)
	s.Require().NoError(err)
	s.Equal([][2]int{{1, 2}, {1, 3}, {1, 4}, {1, 2}}, nw.Pairs())
}

func (s *NetworkSuite) TestCyclic() {
	nw, err := network.Make(4, network.LayoutCyclicSpin, network.ConnectivityFull, 5)
	s.Require().NoError(err)
	s.Equal([][2]int{{1, 2}, {3, 4}, {2, 3}, {4, 1}, {1, 2}}, nw.Pairs())

	nw, err = network.Make(3, network.LayoutCyclicLine, network.ConnectivityLine, 4)
	s.Require().NoError(err)
	s.Equal([][2]int{{1, 2}, {2, 3}, {3, 1}, {1, 2}}, nw.Pairs())
}

func (s *NetworkSuite) TestCartan() {
	nw, err := network.Make(3, "cartan", network.ConnectivityFull, 5)
	s.Require().NoError(err)
	s.Equal(22, nw.Depth())

	nw, err = network.Make(4, network.LayoutCartan, network.ConnectivityFull, 0)
	s.Require().NoError(err)
	s.Equal(120, nw.Depth())
	s.Equal([]int{1, 1, 1, 3, 2, 3, 2}, nw.Controls()[:7])
	s.Equal([]int{2, 2, 2, 4, 4, 4, 4}, nw.Targets()[:7])

	_, err = network.Make(2, network.LayoutCartan, network.ConnectivityFull, 0)
	s.ErrorIs(err, aqcerr.ErrValidation)
}

func (s *NetworkSuite) TestRandom() {
	a, err := network.Make(4, network.LayoutRandom, network.ConnectivityFull, 0, network.WithSeed(42))
	s.Require().NoError(err)
	b, err := network.Make(4, network.LayoutRandom, network.ConnectivityFull, 0, network.WithSeed(42))
	s.Require().NoError(err)
	s.True(a.Equal(b))
	s.Equal(network.LowerLimit(4), a.Depth())
	requireWellFormed(s.T(), 4, a)

	capped, err := network.Random(3, 100, network.WithSeed(1))
	s.Require().NoError(err)
	s.Equal(network.LowerLimit(3), capped.Depth())

	uncapped, err := network.Random(3, 100, network.WithSeed(1), network.WithDepthLimit(false))
	s.Require().NoError(err)
	s.Equal(100, uncapped.Depth())

	_, err = network.Random(3, 5)
	s.ErrorIs(err, aqcerr.ErrConfiguration)
}

func (s *NetworkSuite) TestSingleQubit() {
	nw, err := network.Make(1, network.LayoutSpin, network.ConnectivityFull, 0)
	s.Require().NoError(err)
	s.Zero(nw.Depth())

	_, err = network.Make(1, network.LayoutSpin, network.ConnectivityFull, 2)
	s.ErrorIs(err, aqcerr.ErrValidation)
}

func (s *NetworkSuite) TestErrors() {
	_, err := network.Make(3, "zigzag", network.ConnectivityFull, 0)
	s.ErrorIs(err, aqcerr.ErrConfiguration)
	s.Contains(err.Error(), "zigzag")

	_, err = network.Make(3, network.LayoutSpin, "ring", 0)
	s.ErrorIs(err, aqcerr.ErrConfiguration)
	s.Contains(err.Error(), "ring")

	_, err = network.Make(3, network.LayoutCyclicLine, network.ConnectivityFull, 0)
	s.ErrorIs(err, aqcerr.ErrConfiguration)
	_, err = network.Make(3, network.LayoutCyclicSpin, network.ConnectivityLine, 0)
	s.ErrorIs(err, aqcerr.ErrConfiguration)
	_, err = network.Make(3, network.LayoutRandom, network.ConnectivityFull, 0)
	s.ErrorIs(err, aqcerr.ErrConfiguration)

	_, err = network.Make(17, "zigzag", network.ConnectivityFull, 0)
	s.ErrorIs(err, aqcerr.ErrCapacity)
	_, err = network.Make(0, network.LayoutSpin, network.ConnectivityFull, 0)
	s.ErrorIs(err, aqcerr.ErrValidation)
}

func (s *NetworkSuite) TestCheckLayout() {
	name, err := network.CheckLayout("cartan", network.ConnectivityFull)
	s.Require().NoError(err)
	s.Equal(network.LayoutCartan, name)

	name, err = network.CheckLayout("sequential", network.ConnectivityStar)
	s.Require().NoError(err)
	s.Equal(network.LayoutSequential, name)

	name, err = network.CheckLayout(network.LayoutSpin, network.ConnectivityLine)
	s.Require().NoError(err)
	s.Equal(network.LayoutSpin, name)
	line, err := network.Make(5, network.LayoutSpin, network.ConnectivityLine, 8)
	s.Require().NoError(err)
	full, err := network.Make(5, network.LayoutSpin, network.ConnectivityFull, 8)
	s.Require().NoError(err)
	s.True(line.Equal(full))

	_, err = network.CheckLayout(network.LayoutSpin, network.ConnectivityStar)
	s.ErrorIs(err, aqcerr.ErrConfiguration)
	_, err = network.CheckLayout(network.LayoutSpin, "mesh")
	s.ErrorIs(err, aqcerr.ErrConfiguration)
}

func (s *NetworkSuite) TestReachAndCoupled() {
	line, err := network.New(4, [][2]int{{1, 2}, {2, 3}, {3, 4}})
	s.Require().NoError(err)
	s.Equal([]int{-1, 0, 1, 2, 3}, line.Reach(4))
	s.True(line.Coupled(4))

	split, err := network.New(4, [][2]int{{1, 2}, {3, 4}, {1, 2}})
	s.Require().NoError(err)
	s.Equal([]int{-1, 0, 1, -1, -1}, split.Reach(4))
	s.False(split.Coupled(4))

	s.True(network.Network{}.Coupled(1))
	s.False(network.Network{}.Coupled(2))

	for _, layout := range network.LayoutNames() {
		if layout == network.LayoutCyclicLine {
			continue
		}
		nw, err := network.Make(5, layout, network.ConnectivityFull, 0, network.WithSeed(3))
		s.Require().NoError(err)
		s.True(nw.Coupled(5), layout)
	}
}

func (s *NetworkSuite) TestNewValidates() {
	_, err := network.New(3, [][2]int{{1, 4}})
	s.ErrorIs(err, aqcerr.ErrValidation)
	_, err = network.New(3, [][2]int{{2, 2}})
	s.ErrorIs(err, aqcerr.ErrValidation)

	pairs := [][2]int{{1, 3}}
	nw, err := network.New(3, pairs)
	s.Require().NoError(err)
	pairs[0][0] = 2
	c, _ := nw.Pair(0)
	s.Equal(1, c, "New must copy its input")
	s.Equal("[1]\n[3]\n", nw.String())
}

func (s *NetworkSuite) TestConnectivity() {
	links, err := network.Connectivity(4, network.ConnectivityLine)
	s.Require().NoError(err)
	s.Equal([]int{1, 2}, links[1])
	s.Equal([]int{2, 3, 4}, links[3])
	s.True(links.Allows(3, 4))
	s.False(links.Allows(1, 3))

	links, err = network.Connectivity(3, network.ConnectivityStar)
	s.Require().NoError(err)
	s.Equal([]int{1, 2, 3}, links[1])
	s.Equal([]int{1, 3}, links[3])

	links, err = network.Connectivity(1, network.ConnectivityStar)
	s.Require().NoError(err)
	s.Equal(network.Links{1: {1}}, links)
}

func (s *NetworkSuite) TestLogsAutoDepth() {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := network.Make(3, network.LayoutSpin, network.ConnectivityFull, 0, network.WithLogger(zap.New(core)))
	s.Require().NoError(err)
	s.Equal(1, logs.FilterMessage("CNOT count set to the lower limit").Len())
}
