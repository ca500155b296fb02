// Package aqc is an approximate quantum compiler core: it fits the angles of
// a fixed CNOT-network circuit so that the circuit's unitary approaches a
// target matrix in Frobenius norm.
//
// Packages, bottom-up:
//
//	aqcerr/    - error kinds shared by every package
//	bitperm/   - bit reversal and swaps, 1Q/2Q index permutations
//	matrix/    - dense complex matrices, Kronecker products, permuted block kernels
//	gates/     - rotation, Pauli and CNOT matrices, ansatz block factors
//	network/   - CNOT-network layouts (sequ, spin, cart, cyclic, random), lower limit
//	gradient/  - objective and gradient backends: dense reference and fast permuted
//	circuit/   - ParametricCircuit, gate-sequence export and import
//	optimizer/ - gradient descent and Nesterov runs with qubit-keyed defaults
//	compiler/  - Compile and parallel Batch, prometheus metrics
//	config/    - YAML configuration and zap logger factory
//	cmd/aqc    - command line
//
// Quick start:
//
//	nw, _ := network.Make(3, network.LayoutSpin, network.ConnectivityFull, 0)
//	c, res, err := compiler.Compile(target, nw, nil, compiler.WithSeed(1))
//
// Qubit q is Kronecker factor q (the leftmost factor is qubit 0) and
// occupies index bit n-1-q. Network pairs are 1-based.
package aqc
