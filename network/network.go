// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aqc/aqcerr"
	"github.com/katalvlaran/aqc/bitperm"
)

// Network is an immutable ordered sequence of CNOT sites. Pair l holds the
// 1-based (control, target) qubits of block l; block 0 acts first.
type Network struct {
	pairs [][2]int
}

// New validates pairs against an n-qubit register and returns a Network
// holding a private copy.
//
// Errors:
//   - aqcerr.ErrCapacity if n > bitperm.MaxQubits.
//   - aqcerr.ErrValidation if n < 1, an index leaves [1, n], or a pair
//     repeats a qubit.
func New(n int, pairs [][2]int) (Network, error) {
	nw := Network{pairs: make([][2]int, len(pairs))}
	copy(nw.pairs, pairs)
	if err := Validate(n, nw); err != nil {
		return Network{}, fmt.Errorf("%s: %w", methodNew, err)
	}

	return nw, nil
}

// Validate checks every pair of nw against an n-qubit register.
func Validate(n int, nw Network) error {
	if err := bitperm.ValidateQubits(n); err != nil {
		return fmt.Errorf("%s: %w", methodValidate, err)
	}
	var l int
	for l = range nw.pairs {
		c, t := nw.pairs[l][0], nw.pairs[l][1]
		if c < 1 || c > n || t < 1 || t > n {
			return fmt.Errorf("%s: pair %d (%d,%d) outside [1, %d]: %w", methodValidate, l, c, t, n, aqcerr.ErrValidation)
		}
		if c == t {
			return fmt.Errorf("%s: pair %d repeats qubit %d: %w", methodValidate, l, c, aqcerr.ErrValidation)
		}
	}

	return nil
}

// Validate is the method form of Validate(n, nw).
func (nw Network) Validate(n int) error { return Validate(n, nw) }

// Depth returns the number of CNOT blocks.
func (nw Network) Depth() int { return len(nw.pairs) }

// Pair returns the 1-based (control, target) of block l. It panics when l is
// out of range, like slice indexing.
func (nw Network) Pair(l int) (int, int) { return nw.pairs[l][0], nw.pairs[l][1] }

// Pairs returns a copy of all pairs.
func (nw Network) Pairs() [][2]int {
	out := make([][2]int, len(nw.pairs))
	copy(out, nw.pairs)

	return out
}

// Controls returns the first row of the 2×L layout (control qubits).
func (nw Network) Controls() []int { return nw.row(0) }

// Targets returns the second row of the 2×L layout (target qubits).
func (nw Network) Targets() []int { return nw.row(1) }

func (nw Network) row(r int) []int {
	out := make([]int, len(nw.pairs))
	for l := range nw.pairs {
		out[l] = nw.pairs[l][r]
	}

	return out
}

// Equal reports whether both networks hold the same pairs in the same order.
func (nw Network) Equal(other Network) bool {
	if len(nw.pairs) != len(other.pairs) {
		return false
	}
	for l := range nw.pairs {
		if nw.pairs[l] != other.pairs[l] {
			return false
		}
	}

	return true
}

// String renders the network as two rows, controls over targets.
func (nw Network) String() string {
	var sb strings.Builder
	for r := 0; r < 2; r++ {
		sb.WriteString("[")
		for l := range nw.pairs {
			if l > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "%d", nw.pairs[l][r])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
