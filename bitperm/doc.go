// Package bitperm provides the integer bit operations and index permutations
// that turn a gate acting on arbitrary qubits into a block-diagonal operator.
//
// Bit-ordering convention (single source of truth for the whole module):
//
//	A basis index of an n-qubit register is the Kronecker product
//	|q0> ⊗ |q1> ⊗ ... ⊗ |q(n-1)>. Qubit 0 is the leftmost factor and is
//	called the least-significant qubit; qubit n-1 is the rightmost factor,
//	the most-significant qubit. In the integer index, qubit q therefore
//	occupies bit n-1-q (bit 0 being the lowest bit).
//
// Moving the qubit(s) a gate acts on to the most-significant position(s)
// makes the full 2^n x 2^n gate equal to kron(I, G), i.e. block-diagonal with
// repeated 2x2 (one qubit) or 4x4 (two qubits) blocks on consecutive indices.
//
// Hosts that number qubits the other way round (qubit 0 in the lowest index
// bit) are served by ReverseBits / Reversal; see circuit export options.
//
// All functions are pure. They fail only on out-of-range input or on a slice
// that is not a bijection of {0..len-1}.
package bitperm
