// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aqc/aqcerr"
	"github.com/katalvlaran/aqc/compiler"
	"github.com/katalvlaran/aqc/network"
	"github.com/katalvlaran/aqc/optimizer"
)

const sample = `
network:
  layout: cartan
  connectivity: full
compiler:
  method: gd
  backend: default
  maxIterations: 40
  stepSize: 0.05
  tol: 1.0e-7
  seed: 9
defaults:
  - maxQubits: 2
    maxIterations: 10
    stepSize: 0.2
  - maxQubits: 16
    maxIterations: 20
    stepSize: 0.01
batch:
  runs: 8
  workers: 2
log:
  debug: true
`

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	assert.Equal(t, network.LayoutSpin, c.Network.Layout)
	assert.Equal(t, network.ConnectivityFull, c.Network.Connectivity)
	assert.Equal(t, 0, c.Network.Depth)
	assert.Equal(t, compiler.DefaultMethod, c.Compiler.Method)
	assert.Equal(t, compiler.DefaultBackend, c.Compiler.Backend)
	require.NotNil(t, c.Compiler.Tol)
	assert.Equal(t, optimizer.DefaultTolerance, *c.Compiler.Tol)
	assert.Equal(t, optimizer.BuiltinDefaults(), c.Defaults)
	assert.Equal(t, 1, c.Batch.Runs)
	assert.False(t, c.Log.Debug)
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "cartan", c.Network.Layout)
	assert.Equal(t, "gd", c.Compiler.Method)
	assert.Equal(t, "default", c.Compiler.Backend)
	assert.Equal(t, 40, c.Compiler.MaxIterations)
	assert.Equal(t, 0.05, c.Compiler.StepSize)
	assert.Equal(t, 1e-7, *c.Compiler.Tol)
	assert.Equal(t, int64(9), c.Compiler.Seed)
	require.Len(t, c.Defaults, 2)
	assert.Equal(t, 10, c.Defaults.Lookup(2).MaxIterations)
	assert.Equal(t, 0.01, c.Defaults.Lookup(3).StepSize)
	assert.Equal(t, BatchConfig{Runs: 8, Workers: 2}, c.Batch)
	assert.True(t, c.Log.Debug)
	assert.Len(t, c.CompilerOptions(), 8)

	nw, err := c.MakeNetwork(3)
	require.NoError(t, err)
	assert.Equal(t, 22, nw.Depth())
}

func TestParseEmptyDocument(t *testing.T) {
	c, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":      "compiler:\n  stepsize: 0.1\n",
		"unknown layout":   "network:\n  layout: zigzag\n",
		"bad pairing":      "network:\n  layout: cyclic_line\n  connectivity: full\n",
		"negative depth":   "network:\n  depth: -1\n",
		"unknown method":   "compiler:\n  method: adam\n",
		"unknown backend":  "compiler:\n  backend: gpu\n",
		"negative step":    "compiler:\n  stepSize: -0.1\n",
		"negative tol":     "compiler:\n  tol: -1\n",
		"bad defaults":     "defaults:\n  - maxQubits: 4\n    maxIterations: 0\n    stepSize: 0.1\n",
		"negative workers": "batch:\n  workers: -2\n",
		"malformed yaml":   "network: [\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.ErrorIs(t, err, aqcerr.ErrConfiguration)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aqc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, c.Batch.Runs)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewLogger(t *testing.T) {
	for _, debug := range []bool{true, false} {
		l, err := NewLogger(debug)
		require.NoError(t, err)
		require.NotNil(t, l)
		assert.Equal(t, debug, l.Core().Enabled(-1))
	}
}
