// SPDX-License-Identifier: MIT

// Package gradient evaluates the objective ½‖V(θ) − U‖²_F of the ansatz and
// its analytic gradient.
//
// V(θ) = C_{L-1}···C_1·C_0·R, where C_l is CNOT block l of the network and R
// is the trailing layer ⊗_k RZ·RY·RZ. Parameters are laid out as 4 angles
// per block (block l owns θ[4l..4l+3]) followed by 3 angles per qubit
// (qubit k owns θ[4L+3k..4L+3k+2]).
//
// Two backends satisfy the Gradient contract:
//   - Dense ("default") materializes every block in the full space and keeps
//     immutable left/right running products; it is the reference.
//   - Fast ("fast") never forms a full gate. Each 4×4 block is applied to a
//     running product through a qubit permutation, and each derivative is
//     read off a 4×4 (or 2×2) partial trace.
//
// Both backends are stateless between calls and safe for concurrent use.
package gradient
