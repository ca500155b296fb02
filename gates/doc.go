// SPDX-License-Identifier: MIT

// Package gates builds the small unitaries of the ansatz and places them into
// the full 2^n-dimensional space.
//
// Rotations use the half-angle forms
//
//	RX(θ) = [[c, -is], [-is, c]]
//	RY(θ) = [[c, -s], [s, c]]
//	RZ(θ) = diag(e^{-iθ/2}, e^{iθ/2})
//
// with c = cos(θ/2), s = sin(θ/2). The derivative of a rotation is
// (-i/2)·P·R(θ) where P is its Pauli generator.
//
// Qubits passed to Place and CNOTFull are 1-based; qubit q is Kronecker
// factor q counted from the left.
package gates
