// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults.
//
// The policy is deliberately small: one tolerance used by structural checks
// and one switch that rejects non-finite components on Set.
package matrix

// Numeric policy.
const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks
	// such as IsUnitary.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true
)
