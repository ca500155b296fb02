// SPDX-License-Identifier: MIT
// Package: network
//
// options.go: functional options for network generation.
//
// Contract:
//   - Options are functional (type Option func(*networkConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   - Randomness is explicit: only WithSeed or WithRand attach a source.

package network

import (
	"math/rand"

	"go.uber.org/zap"
)

// Option customizes Make and Random by mutating a networkConfig before
// generation begins.
type Option func(*networkConfig)

// WithRand provides an explicit RNG for the random layout.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("network: WithRand(nil)")
	}
	return func(c *networkConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *networkConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDepthLimit toggles capping the random layout's depth at LowerLimit(n).
// Enabled by default.
func WithDepthLimit(on bool) Option {
	return func(c *networkConfig) {
		c.depthLimit = on
	}
}

// WithLogger routes depth decisions to l at Debug level. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("network: WithLogger(nil)")
	}
	return func(c *networkConfig) {
		c.logger = l
	}
}
