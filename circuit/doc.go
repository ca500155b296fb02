// SPDX-License-Identifier: MIT

// Package circuit holds the parametric circuit: an n-qubit CNOT network, the
// 4L+3n angle vector that owns its single-qubit rotations, and an optional
// gradient backend.
//
// The circuit's matrix is V = C_{L-1}···C_0·R. Block l is
//
//	C_l = Place(RX(θ3)·RY(θ2), t) · Place(RZ(θ1)·RY(θ0), c) · CNOT(c, t)
//
// with θ = θ[4l..4l+3] and (c, t) the block's pair. R = ⊗_k RZ·RY·RZ uses
// θ[4L+3k..4L+3k+2] for qubit k.
//
// Export translates the circuit into a time-ordered gate sequence for host
// toolkits; Import reverses it exactly.
package circuit
