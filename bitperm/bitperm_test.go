// SPDX-License-Identifier: MIT

package bitperm_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aqc/aqcerr"
	"github.com/katalvlaran/aqc/bitperm"
)

func TestSwapBits(t *testing.T) {
	t.Parallel()

	cases := []struct {
		x, a, b, want int
	}{
		{0b0101, 0, 1, 0b0110},
		{0b0101, 0, 2, 0b0101}, // equal bits: unchanged
		{0b1000, 3, 0, 0b0001},
		{0b1111, 1, 3, 0b1111},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, bitperm.SwapBits(tc.x, tc.a, tc.b), "SwapBits(%b,%d,%d)", tc.x, tc.a, tc.b)
	}
}

func TestReverseBits(t *testing.T) {
	t.Parallel()

	got, err := bitperm.ReverseBits(1, 3)
	require.NoError(t, err)
	require.Equal(t, 4, got)

	got, err = bitperm.ReverseBits(0b110, 3)
	require.NoError(t, err)
	require.Equal(t, 0b011, got)

	// Reversal twice is the identity.
	for x := 0; x < 1<<5; x++ {
		r, err := bitperm.ReverseBits(x, 5)
		require.NoError(t, err)
		back, err := bitperm.ReverseBits(r, 5)
		require.NoError(t, err)
		require.Equal(t, x, back)
	}

	_, err = bitperm.ReverseBits(8, 3)
	require.True(t, errors.Is(err, aqcerr.ErrValidation))
	_, err = bitperm.ReverseBits(0, bitperm.MaxQubits+1)
	require.True(t, errors.Is(err, aqcerr.ErrCapacity))
}

// bitOf returns bit b of x.
func bitOf(x, b int) int { return (x >> b) & 1 }

func TestPermutation1Q_MovesQubitToLowestBit(t *testing.T) {
	t.Parallel()

	const n = 4
	for k := 0; k < n; k++ {
		perm, err := bitperm.Permutation1Q(n, k)
		require.NoError(t, err)
		require.True(t, bitperm.IsPermutation(perm))
		for v, pv := range perm {
			require.Equal(t, bitOf(v, bitperm.QubitBit(n, k)), bitOf(pv, 0), "k=%d v=%d", k, v)
			require.Equal(t, v, perm[pv], "single swap must be an involution")
		}
	}

	// The most-significant qubit is already in place.
	perm, err := bitperm.Permutation1Q(n, n-1)
	require.NoError(t, err)
	for v := range perm {
		require.Equal(t, v, perm[v])
	}
}

func TestPermutation2Q_AllPairs(t *testing.T) {
	t.Parallel()

	for n := 2; n <= 5; n++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				if j == k {
					continue
				}
				perm, err := bitperm.Permutation2Q(n, j, k)
				require.NoError(t, err)
				require.True(t, bitperm.IsPermutation(perm), "n=%d j=%d k=%d", n, j, k)
				for v, pv := range perm {
					require.Equal(t, bitOf(v, bitperm.QubitBit(n, j)), bitOf(pv, 1), "n=%d j=%d k=%d v=%d", n, j, k, v)
					require.Equal(t, bitOf(v, bitperm.QubitBit(n, k)), bitOf(pv, 0), "n=%d j=%d k=%d v=%d", n, j, k, v)
				}
			}
		}
	}
}

func TestPermutation_Errors(t *testing.T) {
	t.Parallel()

	_, err := bitperm.Permutation1Q(3, 3)
	require.True(t, errors.Is(err, aqcerr.ErrValidation))
	_, err = bitperm.Permutation1Q(17, 0)
	require.True(t, errors.Is(err, aqcerr.ErrCapacity))
	_, err = bitperm.Permutation2Q(1, 0, 0)
	require.True(t, errors.Is(err, aqcerr.ErrValidation))
	_, err = bitperm.Permutation2Q(3, 1, 1)
	require.True(t, errors.Is(err, aqcerr.ErrValidation))
	_, err = bitperm.Permutation2Q(3, 0, -1)
	require.True(t, errors.Is(err, aqcerr.ErrValidation))
}

func TestInverse(t *testing.T) {
	t.Parallel()

	perm, err := bitperm.Permutation2Q(4, 0, 2)
	require.NoError(t, err)
	inv, err := bitperm.Inverse(perm)
	require.NoError(t, err)
	for i, p := range perm {
		require.Equal(t, i, inv[p])
		require.Equal(t, i, perm[inv[i]])
	}

	for _, bad := range [][]int{nil, {0, 0}, {1, 2}, {-1, 0}} {
		_, err = bitperm.Inverse(bad)
		require.True(t, errors.Is(err, aqcerr.ErrValidation), "%v", bad)
	}
}

func TestReversal(t *testing.T) {
	t.Parallel()

	perm, err := bitperm.Reversal(3)
	require.NoError(t, err)
	require.Equal(t, []int{0, 4, 2, 6, 1, 5, 3, 7}, perm)
}
