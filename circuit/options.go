// SPDX-License-Identifier: MIT

package circuit

import "github.com/katalvlaran/aqc/network"

// Option customizes New and NewFromLayout.
type Option func(*circuitConfig)

type circuitConfig struct {
	thetas      []float64
	backend     string
	networkOpts []network.Option
}

// WithThetas sets the initial angles. The slice is copied; nil means zeros.
func WithThetas(thetas []float64) Option {
	return func(c *circuitConfig) {
		c.thetas = append([]float64(nil), thetas...)
	}
}

// WithBackend binds the named gradient backend at construction.
func WithBackend(name string) Option {
	if name == "" {
		panic("circuit: WithBackend(\"\")")
	}
	return func(c *circuitConfig) {
		c.backend = name
	}
}

// WithNetworkOptions forwards options to network.Make in NewFromLayout
// (e.g. a seed for the random layout).
func WithNetworkOptions(opts ...network.Option) Option {
	return func(c *circuitConfig) {
		c.networkOpts = append(c.networkOpts, opts...)
	}
}

func newCircuitConfig(opts ...Option) circuitConfig {
	var cfg circuitConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
