// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"math"

	"github.com/katalvlaran/aqc/aqcerr"
	"github.com/katalvlaran/aqc/bitperm"
	"github.com/katalvlaran/aqc/gates"
	"github.com/katalvlaran/aqc/gradient"
	"github.com/katalvlaran/aqc/matrix"
	"github.com/katalvlaran/aqc/network"
)

// ParametricCircuit owns one network and its angle vector. It is not safe
// for concurrent mutation.
type ParametricCircuit struct {
	n           int
	net         network.Network
	thetas      []float64
	backend     gradient.Gradient
	backendName string
}

// New validates (n, net) and returns a circuit with zero angles unless
// WithThetas is given.
//
// Errors (in priority order):
//   - aqcerr.ErrCapacity: n > bitperm.MaxQubits.
//   - aqcerr.ErrConfiguration: unknown WithBackend name.
//   - aqcerr.ErrValidation: malformed network.
//   - aqcerr.ErrDimension: WithThetas of the wrong length.
func New(n int, net network.Network, opts ...Option) (*ParametricCircuit, error) {
	cfg := newCircuitConfig(opts...)
	if n > bitperm.MaxQubits {
		return nil, fmt.Errorf("New: n=%d > %d: %w", n, bitperm.MaxQubits, aqcerr.ErrCapacity)
	}
	if cfg.backend != "" && !isBackend(cfg.backend) {
		return nil, fmt.Errorf("New: backend %q not in %v: %w", cfg.backend, gradient.Backends(), aqcerr.ErrConfiguration)
	}
	if err := net.Validate(n); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	c := &ParametricCircuit{
		n:      n,
		net:    net,
		thetas: make([]float64, gradient.NumThetas(n, net.Depth())),
	}
	if cfg.thetas != nil {
		if err := c.SetThetas(cfg.thetas); err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
	}
	if cfg.backend != "" {
		if err := c.InitBackend(cfg.backend); err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
	}

	return c, nil
}

// NewFromLayout generates the network with network.Make and builds the
// circuit on it.
func NewFromLayout(n int, layout, connectivity string, depth int, opts ...Option) (*ParametricCircuit, error) {
	cfg := newCircuitConfig(opts...)
	net, err := network.Make(n, layout, connectivity, depth, cfg.networkOpts...)
	if err != nil {
		return nil, fmt.Errorf("NewFromLayout: %w", err)
	}

	return New(n, net, opts...)
}

func isBackend(name string) bool {
	for _, b := range gradient.Backends() {
		if b == name {
			return true
		}
	}

	return false
}

// NumQubits returns n.
func (c *ParametricCircuit) NumQubits() int { return c.n }

// NumCNOTs returns the network depth L.
func (c *ParametricCircuit) NumCNOTs() int { return c.net.Depth() }

// NumThetas returns 4L+3n.
func (c *ParametricCircuit) NumThetas() int { return len(c.thetas) }

// Network returns the circuit's network.
func (c *ParametricCircuit) Network() network.Network { return c.net }

// Thetas returns a copy of the angles.
func (c *ParametricCircuit) Thetas() []float64 { return append([]float64(nil), c.thetas...) }

// Backend returns the bound backend name, or "" when none is bound.
func (c *ParametricCircuit) Backend() string { return c.backendName }

// SetThetas replaces every angle.
//
// Errors:
//   - aqcerr.ErrDimension if len(thetas) != 4L+3n.
//   - aqcerr.ErrValidation on a NaN or infinite angle.
func (c *ParametricCircuit) SetThetas(thetas []float64) error {
	if len(thetas) != len(c.thetas) {
		return fmt.Errorf("SetThetas: %d values, want %d: %w", len(thetas), len(c.thetas), aqcerr.ErrDimension)
	}
	for k, v := range thetas {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("SetThetas: value %d is %v: %w", k, v, aqcerr.ErrValidation)
		}
	}
	copy(c.thetas, thetas)

	return nil
}

// SetNonzeroThetas sets the masked angles, in order, to values and every
// other angle to exactly zero.
//
// Errors:
//   - aqcerr.ErrDimension if len(mask) != 4L+3n or the number of true mask
//     entries differs from len(values).
func (c *ParametricCircuit) SetNonzeroThetas(values []float64, mask []bool) error {
	if len(mask) != len(c.thetas) {
		return fmt.Errorf("SetNonzeroThetas: mask of %d, want %d: %w", len(mask), len(c.thetas), aqcerr.ErrDimension)
	}
	count := 0
	for _, on := range mask {
		if on {
			count++
		}
	}
	if count != len(values) {
		return fmt.Errorf("SetNonzeroThetas: mask selects %d, got %d values: %w", count, len(values), aqcerr.ErrDimension)
	}
	next := make([]float64, len(c.thetas))
	j := 0
	for k, on := range mask {
		if on {
			next[k] = values[j]
			j++
		}
	}

	return c.SetThetas(next)
}

// InitBackend binds the named gradient backend, replacing any previous one.
func (c *ParametricCircuit) InitBackend(name string) error {
	g, err := gradient.New(name, c.n, c.net)
	if err != nil {
		return fmt.Errorf("InitBackend: %w", err)
	}
	c.backend, c.backendName = g, name

	return nil
}

// Gradient evaluates the objective and gradient at the current angles.
//
// Errors:
//   - aqcerr.ErrNotInitialized when no backend is bound.
//   - backend errors otherwise (e.g. aqcerr.ErrDimension for a bad target).
func (c *ParametricCircuit) Gradient(target *matrix.Dense) (float64, []float64, error) {
	if c.backend == nil {
		return 0, nil, fmt.Errorf("Gradient: no backend bound: %w", aqcerr.ErrNotInitialized)
	}

	return c.backend.Evaluate(c.thetas, target)
}

// Dense materializes V at the current angles.
//
// Implementation:
//   - Stage 1: R = ⊗_k RZ·RY·RZ by Kronecker products.
//   - Stage 2: for l = 0..L-1 apply block l from the left with the permuted
//     block kernel.
//
// Complexity: O(4^n + L·4^{n+1}).
func (c *ParametricCircuit) Dense() (*matrix.Dense, error) {
	factors := make([]matrix.Matrix, c.n)
	depth := c.net.Depth()
	for q := 0; q < c.n; q++ {
		off := gates.BlockAngles*depth + gates.LayerAngles*q
		factors[q] = gates.LayerFactor(c.thetas[off:off+gates.LayerAngles], gates.NoDerivative)
	}
	v, err := matrix.KronAll(factors...)
	if err != nil {
		return nil, fmt.Errorf("Dense: %w", err)
	}
	for l := 0; l < depth; l++ {
		ctl, tgt := c.net.Pair(l)
		u1, u2 := gates.BlockFactors(c.thetas[gates.BlockAngles*l:gates.BlockAngles*(l+1)], gates.NoDerivative)
		if err = applyLeft(v, gates.Block(u1, u2), c.n, ctl-1, tgt-1); err != nil {
			return nil, fmt.Errorf("Dense: %w", err)
		}
	}

	return v, nil
}

// applyLeft overwrites v with G·v for a 2×2 gate on qubit q (set t < 0) or a
// 4×4 gate on (q, t), 0-based.
func applyLeft(v, g *matrix.Dense, n, q, t int) error {
	var perm []int
	var err error
	if t < 0 {
		perm, err = bitperm.Permutation1Q(n, q)
	} else {
		perm, err = bitperm.Permutation2Q(n, q, t)
	}
	if err != nil {
		return err
	}
	inv, err := bitperm.Inverse(perm)
	if err != nil {
		return err
	}

	return matrix.ApplyBlockLeft(v, g, inv)
}
