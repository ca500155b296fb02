// SPDX-License-Identifier: MIT
// Package aqcerr holds the error kinds shared by every package of the
// approximate compiler.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with fmt.Errorf("<Method>: ...: %w", ErrX)
//     at the detection site. Sentinels are never re-created with a message.
//   - Errors are raised on malformed input before any computation starts.
//     Nothing is retried internally.
//
// Priority when several checks fail at once:
// capacity -> configuration -> validation -> dimension -> not-initialized.
package aqcerr

import "errors"

// ErrValidation marks a malformed CNOT network: an index outside [1, n],
// a column whose endpoints coincide, or a qubit count below the minimum
// the requested layout supports.
var ErrValidation = errors.New("aqc: validation failed")

// ErrDimension marks a length or shape mismatch: a parameter vector whose
// length differs from 4L+3n, a mask of the wrong length, or a target matrix
// that is not 2^n x 2^n.
var ErrDimension = errors.New("aqc: dimension mismatch")

// ErrConfiguration marks an unknown layout, connectivity, gradient backend
// or optimization method name, or an incompatible combination of them.
var ErrConfiguration = errors.New("aqc: invalid configuration")

// ErrCapacity marks a qubit count above the supported maximum.
var ErrCapacity = errors.New("aqc: capacity exceeded")

// ErrNotInitialized marks a gradient request on a circuit with no bound
// gradient backend.
var ErrNotInitialized = errors.New("aqc: not initialized")
