// SPDX-License-Identifier: MIT

package circuit_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aqc/aqcerr"
	"github.com/katalvlaran/aqc/circuit"
	"github.com/katalvlaran/aqc/gradient"
	"github.com/katalvlaran/aqc/matrix"
	"github.com/katalvlaran/aqc/network"
)

func randomThetas(rng *rand.Rand, size int) []float64 {
	out := make([]float64, size)
	for i := range out {
		out[i] = 2 * math.Pi * rng.Float64()
	}
	return out
}

func mustCircuit(t *testing.T, n int, layout string, depth int, opts ...circuit.Option) *circuit.ParametricCircuit {
	t.Helper()
	c, err := circuit.NewFromLayout(n, layout, network.ConnectivityFull, depth, opts...)
	require.NoError(t, err)
	return c
}

func TestNew_Shape(t *testing.T) {
	c := mustCircuit(t, 3, network.LayoutSpin, 5)
	require.Equal(t, 3, c.NumQubits())
	require.Equal(t, 5, c.NumCNOTs())
	require.Equal(t, 4*5+3*3, c.NumThetas())
	require.Equal(t, make([]float64, 29), c.Thetas())
	require.Empty(t, c.Backend())
}

func TestNew_Errors(t *testing.T) {
	nw, err := network.Make(2, network.LayoutSpin, network.ConnectivityFull, 3)
	require.NoError(t, err)

	_, err = circuit.New(2, nw, circuit.WithThetas(make([]float64, 5)))
	require.ErrorIs(t, err, aqcerr.ErrDimension)
	_, err = circuit.New(2, nw, circuit.WithBackend("adjoint"))
	require.ErrorIs(t, err, aqcerr.ErrConfiguration)
	_, err = circuit.New(1, nw)
	require.ErrorIs(t, err, aqcerr.ErrValidation)
	_, err = circuit.New(17, nw, circuit.WithBackend("adjoint"))
	require.ErrorIs(t, err, aqcerr.ErrCapacity)
	_, err = circuit.NewFromLayout(3, "zigzag", network.ConnectivityFull, 0)
	require.ErrorIs(t, err, aqcerr.ErrConfiguration)
}

func TestDense_Unitary(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for n := 1; n <= 4; n++ {
		for _, layout := range []string{network.LayoutSpin, network.LayoutSequential, network.LayoutCyclicSpin} {
			if n == 1 && layout != network.LayoutSpin {
				continue
			}
			c := mustCircuit(t, n, layout, 0)
			require.NoError(t, c.SetThetas(randomThetas(rng, c.NumThetas())))
			v, err := c.Dense()
			require.NoError(t, err)
			e, err := matrix.UnitarityError(v)
			require.NoError(t, err)
			require.Less(t, e, 1e-9)
		}
	}
}

func TestDense_MatchesReferenceBackend(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	nw, err := network.New(3, [][2]int{{1, 3}, {3, 2}, {2, 1}, {1, 2}})
	require.NoError(t, err)
	c, err := circuit.New(3, nw)
	require.NoError(t, err)
	th := randomThetas(rng, c.NumThetas())
	require.NoError(t, c.SetThetas(th))

	got, err := c.Dense()
	require.NoError(t, err)
	ref, err := gradient.NewDense(3, nw)
	require.NoError(t, err)
	want, err := ref.Unitary(th)
	require.NoError(t, err)
	d, err := matrix.Distance(got, want)
	require.NoError(t, err)
	require.Less(t, d, 1e-10)
}

func TestSetNonzeroThetas_Alternating(t *testing.T) {
	c := mustCircuit(t, 2, network.LayoutSpin, 3)
	size := c.NumThetas()
	mask := make([]bool, size)
	var values []float64
	for k := 0; k < size; k += 2 {
		mask[k] = true
		values = append(values, float64(k)+0.5)
	}
	require.NoError(t, c.SetThetas(randomThetas(rand.New(rand.NewSource(1)), size)))
	require.NoError(t, c.SetNonzeroThetas(values, mask))

	got := c.Thetas()
	for k := range got {
		if k%2 == 0 {
			require.Equal(t, float64(k)+0.5, got[k])
		} else {
			require.Zero(t, got[k])
		}
	}

	require.ErrorIs(t, c.SetNonzeroThetas(values[1:], mask), aqcerr.ErrDimension)
	require.ErrorIs(t, c.SetNonzeroThetas(values, mask[1:]), aqcerr.ErrDimension)
}

func TestSetThetas_Errors(t *testing.T) {
	c := mustCircuit(t, 2, network.LayoutSpin, 3)
	require.ErrorIs(t, c.SetThetas(make([]float64, 3)), aqcerr.ErrDimension)
	bad := make([]float64, c.NumThetas())
	bad[0] = math.Inf(1)
	require.ErrorIs(t, c.SetThetas(bad), aqcerr.ErrValidation)

	// Thetas returns a copy.
	th := c.Thetas()
	th[0] = 1
	require.Zero(t, c.Thetas()[0])
}

func TestGradient_Backends(t *testing.T) {
	c := mustCircuit(t, 2, network.LayoutSpin, 3)
	id, _ := matrix.NewIdentity(4)

	_, _, err := c.Gradient(id)
	require.ErrorIs(t, err, aqcerr.ErrNotInitialized)

	require.ErrorIs(t, c.InitBackend("adjoint"), aqcerr.ErrConfiguration)
	require.Empty(t, c.Backend())

	require.NoError(t, c.SetThetas(randomThetas(rand.New(rand.NewSource(4)), c.NumThetas())))
	require.NoError(t, c.InitBackend(gradient.BackendDefault))
	od, gd, err := c.Gradient(id)
	require.NoError(t, err)
	require.NoError(t, c.InitBackend(gradient.BackendFast))
	require.Equal(t, gradient.BackendFast, c.Backend())
	of, gf, err := c.Gradient(id)
	require.NoError(t, err)
	require.InDelta(t, od, of, 1e-9)
	require.InDeltaSlice(t, gd, gf, 1e-9)

	v, err := c.Dense()
	require.NoError(t, err)
	dist, _ := matrix.Distance(v, id)
	require.InDelta(t, 0.5*dist*dist, of, 1e-9)

	small, _ := matrix.NewIdentity(2)
	_, _, err = c.Gradient(small)
	require.ErrorIs(t, err, aqcerr.ErrDimension)
}
