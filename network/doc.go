// SPDX-License-Identifier: MIT

// Package network generates CNOT networks: the ordered sequence of
// (control, target) qubit pairs that fixes the two-qubit skeleton of the
// ansatz.
//
// Qubits are 1-based. A Network is immutable once built; Make resolves a
// layout name, a connectivity name and a depth into one. Depth 0 selects
// LowerLimit(n), the smallest CNOT count able to represent a generic n-qubit
// unitary.
//
// Layouts:
//
//	sequ (sequential)  all (i<j) pairs allowed by the connectivity, cycled
//	spin               brick wall: (1,2),(3,4),… then (2,3),(4,5),…, cycled
//	cyclic_spin        spin sweeps on 0-based offsets, closing (n,1)
//	cyclic_line        (i, i+1 mod n) ring
//	cart (cartan)      recursive Cartan construction, n >= 3, depth fixed by n
//	random             per-column shuffles; needs WithSeed or WithRand
//
// Determinism: the same arguments and seed always produce the same network.
package network
