// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for kernels.
//   - Keep all data finite to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aqc/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the interface fallback path in kernels.
type hide struct{ matrix.Matrix }

// MustDense allocates a rows×cols zero matrix or fails the test.
func MustDense(t *testing.T, rows, cols int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) complex128 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RandomDense fills a rows×cols matrix with components in [-1, 1).
func RandomDense(t *testing.T, rng *rand.Rand, rows, cols int) *matrix.Dense {
	t.Helper()
	m := MustDense(t, rows, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			require.NoError(t, m.Set(i, j, complex(2*rng.Float64()-1, 2*rng.Float64()-1)))
		}
	}

	return m
}

// RequireClose asserts ‖a − b‖_F ≤ tol.
func RequireClose(t *testing.T, a, b matrix.Matrix, tol float64) {
	t.Helper()
	d, err := matrix.Distance(a, b)
	require.NoError(t, err)
	require.LessOrEqualf(t, d, tol, "distance %g exceeds %g", d, tol)
}
