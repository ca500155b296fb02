// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration of the aqc command and turns it
// into compiler and network options.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/aqc/aqcerr"
	"github.com/katalvlaran/aqc/compiler"
	"github.com/katalvlaran/aqc/gradient"
	"github.com/katalvlaran/aqc/network"
	"github.com/katalvlaran/aqc/optimizer"
)

const (
	defaultLayout       = network.LayoutSpin
	defaultConnectivity = network.ConnectivityFull
	defaultRuns         = 1
)

type NetworkConfig struct {
	// Layout name, see network.LayoutNames. Aliases are accepted.
	Layout string `yaml:"layout"`
	// Options: "full", "line", "star".
	Connectivity string `yaml:"connectivity"`
	// Number of CNOT blocks; 0 selects network.LowerLimit(n).
	Depth int `yaml:"depth"`
}

// WithDefaults returns a copy with empty names set to spin/full.
func (c NetworkConfig) WithDefaults() NetworkConfig {
	cpy := c
	if cpy.Layout == "" {
		cpy.Layout = defaultLayout
	}
	if cpy.Connectivity == "" {
		cpy.Connectivity = defaultConnectivity
	}
	return cpy
}

type CompilerConfig struct {
	// Options: "gradient-descent" ("gd"), "nesterov".
	Method string `yaml:"method"`
	// Options: "default", "fast".
	Backend string `yaml:"backend"`
	// 0 takes the value from the defaults table.
	MaxIterations int `yaml:"maxIterations"`
	// 0 takes the value from the defaults table.
	StepSize float64 `yaml:"stepSize"`
	// Nil means optimizer.DefaultTolerance.
	Tol *float64 `yaml:"tol"`
	Eps float64  `yaml:"eps"`
	// Seeds starting angles and the random layout.
	Seed int64 `yaml:"seed"`
}

// WithDefaults returns a copy with empty names and tolerance filled in.
func (c CompilerConfig) WithDefaults() CompilerConfig {
	cpy := c
	if cpy.Method == "" {
		cpy.Method = compiler.DefaultMethod
	}
	if cpy.Backend == "" {
		cpy.Backend = compiler.DefaultBackend
	}
	if cpy.Tol == nil {
		tol := optimizer.DefaultTolerance
		cpy.Tol = &tol
	}
	return cpy
}

type BatchConfig struct {
	// Number of independent compilations.
	Runs int `yaml:"runs"`
	// Parallel workers; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// WithDefaults returns a copy with Runs set to 1 when unset.
func (c BatchConfig) WithDefaults() BatchConfig {
	cpy := c
	if cpy.Runs == 0 {
		cpy.Runs = defaultRuns
	}
	return cpy
}

type LogConfig struct {
	Debug bool `yaml:"debug"`
}

// Config is the root document.
type Config struct {
	Network  NetworkConfig           `yaml:"network"`
	Compiler CompilerConfig          `yaml:"compiler"`
	Defaults optimizer.DefaultsTable `yaml:"defaults"`
	Batch    BatchConfig             `yaml:"batch"`
	Log      LogConfig               `yaml:"log"`
}

// WithDefaults returns a copy with every missing field set to its default.
func (c Config) WithDefaults() Config {
	cpy := c
	cpy.Network = cpy.Network.WithDefaults()
	cpy.Compiler = cpy.Compiler.WithDefaults()
	cpy.Batch = cpy.Batch.WithDefaults()
	if len(cpy.Defaults) == 0 {
		cpy.Defaults = optimizer.BuiltinDefaults()
	}
	return cpy
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{}.WithDefaults()
}

// Load reads path, rejects unknown keys and fills in defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "load config")
	}

	return Parse(data)
}

// Parse decodes a YAML document, rejects unknown keys, fills in defaults and
// validates the result.
func Parse(data []byte) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return Config{}, errors.Wrapf(aqcerr.ErrConfiguration, "parse config: %v", err)
	}
	c = c.WithDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks names and numeric ranges. Every failure wraps
// aqcerr.ErrConfiguration.
func (c Config) Validate() error {
	if _, err := network.CheckLayout(c.Network.Layout, c.Network.Connectivity); err != nil {
		return errors.Wrap(err, "network")
	}
	if c.Network.Depth < 0 {
		return errors.Wrapf(aqcerr.ErrConfiguration, "network: depth %d < 0", c.Network.Depth)
	}
	if _, err := optimizer.New(c.Compiler.Method); err != nil {
		return errors.Wrap(err, "compiler")
	}
	if !contains(gradient.Backends(), c.Compiler.Backend) {
		return errors.Wrapf(aqcerr.ErrConfiguration, "compiler: backend %q not in %v", c.Compiler.Backend, gradient.Backends())
	}
	if c.Compiler.MaxIterations < 0 || c.Compiler.StepSize < 0 || c.Compiler.Eps < 0 ||
		(c.Compiler.Tol != nil && *c.Compiler.Tol < 0) {
		return errors.Wrap(aqcerr.ErrConfiguration, "compiler: negative iterations, step size, tol or eps")
	}
	if err := c.Defaults.Validate(); err != nil {
		return errors.Wrap(err, "defaults")
	}
	if c.Batch.Runs < 1 || c.Batch.Workers < 0 {
		return errors.Wrapf(aqcerr.ErrConfiguration, "batch: runs=%d workers=%d", c.Batch.Runs, c.Batch.Workers)
	}

	return nil
}

// CompilerOptions translates the compiler section into compiler options.
// logger and metrics are appended by the caller.
func (c Config) CompilerOptions() []compiler.Option {
	opts := []compiler.Option{
		compiler.WithMethod(c.Compiler.Method),
		compiler.WithBackend(c.Compiler.Backend),
		compiler.WithSeed(c.Compiler.Seed),
		compiler.WithDefaults(c.Defaults),
		compiler.WithEpsilon(c.Compiler.Eps),
	}
	if c.Compiler.Tol != nil {
		opts = append(opts, compiler.WithTolerance(*c.Compiler.Tol))
	}
	if c.Compiler.MaxIterations > 0 {
		opts = append(opts, compiler.WithMaxIterations(c.Compiler.MaxIterations))
	}
	if c.Compiler.StepSize > 0 {
		opts = append(opts, compiler.WithStepSize(c.Compiler.StepSize))
	}

	return opts
}

// MakeNetwork generates the configured network for n qubits. The random
// layout is seeded from the compiler seed.
func (c Config) MakeNetwork(n int, opts ...network.Option) (network.Network, error) {
	opts = append([]network.Option{network.WithSeed(c.Compiler.Seed)}, opts...)
	nw, err := network.Make(n, c.Network.Layout, c.Network.Connectivity, c.Network.Depth, opts...)

	return nw, errors.Wrap(err, "make network")
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
