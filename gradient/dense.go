// SPDX-License-Identifier: MIT

package gradient

import (
	"fmt"

	"github.com/katalvlaran/aqc/gates"
	"github.com/katalvlaran/aqc/matrix"
	"github.com/katalvlaran/aqc/network"
)

const methodDense = "Dense.Evaluate"

// Dense is the reference backend. Every block is materialized in the full
// 2^n space by Kronecker placement.
type Dense struct {
	shape
	net   network.Network
	cnots map[[2]int]*matrix.Dense // full CNOT per distinct (control, target) pair
}

var _ Gradient = (*Dense)(nil)

// NewDense binds the reference backend to an n-qubit network.
//
// Errors:
//   - aqcerr.ErrCapacity / aqcerr.ErrValidation from qubit and network checks.
func NewDense(n int, net network.Network) (*Dense, error) {
	s, err := newShape("NewDense", n, net)
	if err != nil {
		return nil, err
	}
	g := &Dense{shape: s, net: net, cnots: make(map[[2]int]*matrix.Dense)}
	for l := 0; l < s.depth; l++ {
		c, t := net.Pair(l)
		key := [2]int{c, t}
		if _, ok := g.cnots[key]; ok {
			continue
		}
		if g.cnots[key], err = gates.CNOTFull(n, c, t); err != nil {
			return nil, fmt.Errorf("NewDense: %w", err)
		}
	}

	return g, nil
}

// block materializes Place(u2, t)·Place(u1, c)·CNOT(c, t) for block l, with
// the factor holding angle k differentiated (k = gates.NoDerivative for none).
func (g *Dense) block(thetas []float64, l, k int) (*matrix.Dense, error) {
	c, t := g.net.Pair(l)
	u1, u2 := gates.BlockFactors(blockThetas(thetas, l), k)
	p1, err := gates.Place(u1, g.n, c)
	if err != nil {
		return nil, err
	}
	p2, err := gates.Place(u2, g.n, t)
	if err != nil {
		return nil, err
	}

	return gates.Chain(p2, p1, g.cnots[[2]int{c, t}]), nil
}

// layer materializes ⊗_k RZ·RY·RZ, with qubit dq's factor differentiated in
// angle dk (dq < 0 for none).
func (g *Dense) layer(thetas []float64, dq, dk int) (*matrix.Dense, error) {
	factors := make([]matrix.Matrix, g.n)
	for q := 0; q < g.n; q++ {
		k := gates.NoDerivative
		if q == dq {
			k = dk
		}
		factors[q] = gates.LayerFactor(layerThetas(thetas, g.depth, q), k)
	}

	return matrix.KronAll(factors...)
}

// Evaluate computes the objective and gradient by explicit products.
// MAIN DESCRIPTION:
//   - left[l]  = C_{l-1}···C_0·R   (left[0] = R, left[L] = V)
//   - right[l] = C_{L-1}···C_{l+1} (right[L-1] = I)
//   - ∂V/∂θ = right[l]·∂C_l·left[l], and ⟨right·∂C·left, U⟩ = ⟨∂C, right†·U·left†⟩,
//     so each block costs one sandwich plus one inner product per angle.
//   - Layer angles use G = (C_{L-1}···C_0)†·U: ∂V = C·∂R gives ⟨∂R, G⟩.
//
// Both tables are built once per call and never mutated afterwards.
//
// Complexity:
//   - Time O(L·d³), Space O(L·d²).
func (g *Dense) Evaluate(thetas []float64, target *matrix.Dense) (float64, []float64, error) {
	if err := g.check(methodDense, thetas, target); err != nil {
		return 0, nil, err
	}
	fail := func(err error) (float64, []float64, error) {
		return 0, nil, fmt.Errorf("%s: %w", methodDense, err)
	}

	blocks := make([]*matrix.Dense, g.depth)
	var err error
	for l := range blocks {
		if blocks[l], err = g.block(thetas, l, gates.NoDerivative); err != nil {
			return fail(err)
		}
	}
	r, err := g.layer(thetas, -1, gates.NoDerivative)
	if err != nil {
		return fail(err)
	}

	left := make([]*matrix.Dense, g.depth+1)
	left[0] = r
	for l := 0; l < g.depth; l++ {
		left[l+1] = gates.Chain(blocks[l], left[l])
	}
	id, _ := matrix.NewIdentity(g.dim)
	right := make([]*matrix.Dense, g.depth)
	for l := g.depth - 1; l >= 0; l-- {
		if l == g.depth-1 {
			right[l] = id
			continue
		}
		right[l] = gates.Chain(right[l+1], blocks[l+1])
	}

	v := left[g.depth]
	dist, err := matrix.Distance(v, target)
	if err != nil {
		return fail(err)
	}
	objective := 0.5 * dist * dist
	grad := make([]float64, g.size)

	for l := 0; l < g.depth; l++ {
		rh, _ := matrix.H(right[l])
		lh, _ := matrix.H(left[l])
		sandwich := gates.Chain(rh, target, lh)
		for k := 0; k < gates.BlockAngles; k++ {
			dc, err := g.block(thetas, l, k)
			if err != nil {
				return fail(err)
			}
			ip, _ := matrix.Inner(dc, sandwich)
			grad[gates.BlockAngles*l+k] = -real(ip)
		}
	}

	chain := id
	if g.depth > 0 {
		chain = gates.Chain(right[0], blocks[0])
	}
	ch, _ := matrix.H(chain)
	gm := gates.Chain(ch, target)
	for q := 0; q < g.n; q++ {
		for k := 0; k < gates.LayerAngles; k++ {
			dr, err := g.layer(thetas, q, k)
			if err != nil {
				return fail(err)
			}
			ip, _ := matrix.Inner(dr, gm)
			grad[gates.BlockAngles*g.depth+gates.LayerAngles*q+k] = -real(ip)
		}
	}

	return objective, grad, nil
}

// Unitary returns V(thetas) in the full space.
func (g *Dense) Unitary(thetas []float64) (*matrix.Dense, error) {
	if err := g.checkThetas("Dense.Unitary", thetas); err != nil {
		return nil, err
	}
	v, err := g.layer(thetas, -1, gates.NoDerivative)
	if err != nil {
		return nil, err
	}
	for l := 0; l < g.depth; l++ {
		b, err := g.block(thetas, l, gates.NoDerivative)
		if err != nil {
			return nil, err
		}
		v = gates.Chain(b, v)
	}

	return v, nil
}
