// SPDX-License-Identifier: MIT

package bitperm

import (
	"fmt"

	"github.com/katalvlaran/aqc/aqcerr"
)

// MaxQubits is the hard cap on the register size. A 2^16 x 2^16 dense
// complex matrix already holds 2^32 entries.
const MaxQubits = 16

// Method tags used in error wrapping.
const (
	methodReverse = "ReverseBits"
	methodPerm1Q  = "Permutation1Q"
	methodPerm2Q  = "Permutation2Q"
	methodInverse = "Inverse"
	methodRev     = "Reversal"
)

// ValidateQubits checks 1 <= n <= MaxQubits.
func ValidateQubits(n int) error {
	if n > MaxQubits {
		return fmt.Errorf("n=%d > max=%d: %w", n, MaxQubits, aqcerr.ErrCapacity)
	}
	if n < 1 {
		return fmt.Errorf("n=%d < 1: %w", n, aqcerr.ErrValidation)
	}

	return nil
}

// QubitBit returns the index bit occupied by 0-based qubit q in an n-qubit
// register (see package doc).
func QubitBit(n, q int) int { return n - 1 - q }

// SwapBits exchanges bits a and b of x.
// Complexity: O(1).
func SwapBits(x, a, b int) int {
	t := ((x >> a) ^ (x >> b)) & 1

	return x ^ ((t << a) | (t << b))
}

// ReverseBits mirrors the lowest nbits bits of x: bit i moves to nbits-1-i.
//
// Errors:
//   - ErrCapacity / ErrValidation when nbits is outside [1, MaxQubits].
//   - ErrValidation when x is outside [0, 2^nbits).
//
// Complexity: O(nbits).
func ReverseBits(x, nbits int) (int, error) {
	if err := ValidateQubits(nbits); err != nil {
		return 0, fmt.Errorf("%s: %w", methodReverse, err)
	}
	if x < 0 || x >= 1<<nbits {
		return 0, fmt.Errorf("%s: x=%d outside [0,%d): %w", methodReverse, x, 1<<nbits, aqcerr.ErrValidation)
	}

	return reverse(x, nbits), nil
}

// reverse is the unchecked kernel behind ReverseBits.
func reverse(x, nbits int) int {
	var res, i int
	for i = 0; i < nbits; i++ {
		res = (res << 1) | (x & 1)
		x >>= 1
	}

	return res
}
