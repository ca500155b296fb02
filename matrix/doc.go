// SPDX-License-Identifier: MIT

// Package matrix provides the dense complex linear algebra used by the
// approximate compiler: a row-major Dense type, products, Kronecker
// products, adjoints, Frobenius norms and inner products, and the permuted
// block kernels that apply a 2x2 or 4x4 gate to a 2^n x 2^n matrix without
// materializing the full gate.
//
// Conventions:
//   - Public indexers (At/Set) never panic; they return ErrOutOfRange.
//   - Kernels validate shapes through the central validators and return
//     package sentinels wrapped with an operation tag.
//   - Kernels accept the Matrix interface; *Dense operands take the flat-slice
//     fast path, anything else is first copied into a Dense.
//   - Loop orders are fixed, so results are bit-for-bit reproducible.
//
// Complexity quicksheet (d = side length):
//   - Mul: O(d^3); Kron: O(size of result); Inner/Norm/Add: O(d^2).
//   - ApplyBlockLeft/Right with a kxk block: O(k·d^2); BlockTrace: O(k·d).
package matrix
