// SPDX-License-Identifier: MIT

package network

import (
	"math/rand"

	"go.uber.org/zap"
)

// networkConfig aggregates generation knobs. Defaults:
//   - rng        = nil          (random layout refuses to run)
//   - depthLimit = true
//   - logger     = zap.NewNop()
type networkConfig struct {
	rng        *rand.Rand
	depthLimit bool
	logger     *zap.Logger
}

// newNetworkConfig applies options in order; later options override earlier ones.
func newNetworkConfig(opts ...Option) networkConfig {
	cfg := networkConfig{
		depthLimit: true,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
