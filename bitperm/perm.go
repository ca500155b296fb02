// SPDX-License-Identifier: MIT

package bitperm

import (
	"fmt"

	"github.com/katalvlaran/aqc/aqcerr"
)

// Permutation1Q returns the index permutation that moves 0-based qubit k of
// an n-qubit register to the most-significant position n-1.
//
// perm[v] is the new index of basis state v. In the permuted basis a single
// gate G on qubit k becomes kron(I(2^n/2), G). The permutation is a single
// bit swap and therefore its own inverse.
//
// Errors: ErrCapacity for n > MaxQubits; ErrValidation for n < 1 or k ∉ [0,n).
// Complexity: O(2^n) time and space.
func Permutation1Q(n, k int) ([]int, error) {
	if err := ValidateQubits(n); err != nil {
		return nil, fmt.Errorf("%s: %w", methodPerm1Q, err)
	}
	if k < 0 || k >= n {
		return nil, fmt.Errorf("%s: qubit %d outside [0,%d): %w", methodPerm1Q, k, n, aqcerr.ErrValidation)
	}

	size := 1 << n
	bit := QubitBit(n, k)
	perm := make([]int, size)
	for v := 0; v < size; v++ {
		perm[v] = SwapBits(v, bit, 0)
	}

	return perm, nil
}

// Permutation2Q returns the index permutation that moves 0-based qubits j and
// k of an n-qubit register to positions n-2 and n-1 respectively.
//
// perm[v] is the new index of basis state v. In the permuted basis a two-qubit
// gate G acting on (j, k), with j as the first Kronecker factor of G, becomes
// kron(I(2^n/4), G).
//
// Implementation:
//   - Stage 1: swap the bit of k with bit 0.
//   - Stage 2: if j's bit was 0 it now sits where k was; swap it with bit 1.
//
// Errors: ErrCapacity for n > MaxQubits; ErrValidation for n < 2, j == k or
// an index outside [0, n).
// Complexity: O(2^n) time and space.
func Permutation2Q(n, j, k int) ([]int, error) {
	if err := ValidateQubits(n); err != nil {
		return nil, fmt.Errorf("%s: %w", methodPerm2Q, err)
	}
	if n < 2 {
		return nil, fmt.Errorf("%s: n=%d < 2: %w", methodPerm2Q, n, aqcerr.ErrValidation)
	}
	if j < 0 || j >= n || k < 0 || k >= n || j == k {
		return nil, fmt.Errorf("%s: qubits (%d,%d) invalid for n=%d: %w", methodPerm2Q, j, k, n, aqcerr.ErrValidation)
	}

	a, b := QubitBit(n, j), QubitBit(n, k)
	if a == 0 {
		a = b
	}
	size := 1 << n
	perm := make([]int, size)
	for v := 0; v < size; v++ {
		perm[v] = SwapBits(SwapBits(v, b, 0), a, 1)
	}

	return perm, nil
}

// Reversal returns the permutation v -> ReverseBits(v, n), which relabels
// qubit q as qubit n-1-q. It is an involution.
// Complexity: O(n·2^n).
func Reversal(n int) ([]int, error) {
	if err := ValidateQubits(n); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRev, err)
	}
	size := 1 << n
	perm := make([]int, size)
	for v := 0; v < size; v++ {
		perm[v] = reverse(v, n)
	}

	return perm, nil
}

// IsPermutation reports whether perm is a bijection of {0..len(perm)-1}.
// An empty slice is not a permutation.
// Complexity: O(len(perm)) time and space.
func IsPermutation(perm []int) bool {
	if len(perm) == 0 {
		return false
	}
	seen := make([]bool, len(perm))
	for _, p := range perm {
		if p < 0 || p >= len(perm) || seen[p] {
			return false
		}
		seen[p] = true
	}

	return true
}

// Inverse returns inv with inv[perm[i]] = i.
// Errors: ErrValidation when perm is not a bijection.
// Complexity: O(len(perm)).
func Inverse(perm []int) ([]int, error) {
	if !IsPermutation(perm) {
		return nil, fmt.Errorf("%s: input is not a permutation: %w", methodInverse, aqcerr.ErrValidation)
	}
	inv := make([]int, len(perm))
	for i, p := range perm {
		inv[p] = i
	}

	return inv, nil
}
