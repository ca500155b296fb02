// SPDX-License-Identifier: MIT

package gradient

import (
	"fmt"

	"github.com/katalvlaran/aqc/bitperm"
	"github.com/katalvlaran/aqc/gates"
	"github.com/katalvlaran/aqc/matrix"
	"github.com/katalvlaran/aqc/network"
)

const methodFast = "Fast.Evaluate"

// Fast is the permutation-accelerated backend. A block on qubits (c, t) is
// the 4×4 matrix B = (u1⊗u2)·CNOT4 conjugated by the index permutation that
// moves c and t onto the two lowest index bits; it is applied to a running
// product in O(4·d²) and never expanded.
type Fast struct {
	shape
	blockInv [][]int // inverse 2Q permutation per block, shared by blocks on one pair
	qubitInv [][]int // inverse 1Q permutation per qubit
}

var _ Gradient = (*Fast)(nil)

// NewFast binds the accelerated backend to an n-qubit network and
// precomputes its permutations. One permutation is built per distinct
// (control, target) pair, so the cache holds at most n(n-1) slices of 2^n
// entries regardless of depth.
func NewFast(n int, net network.Network) (*Fast, error) {
	s, err := newShape("NewFast", n, net)
	if err != nil {
		return nil, err
	}
	f := &Fast{shape: s, blockInv: make([][]int, s.depth), qubitInv: make([][]int, n)}
	byPair := make(map[[2]int][]int)
	for l := 0; l < s.depth; l++ {
		c, t := net.Pair(l)
		key := [2]int{c, t}
		inv, ok := byPair[key]
		if !ok {
			perm, err := bitperm.Permutation2Q(n, c-1, t-1)
			if err != nil {
				return nil, fmt.Errorf("NewFast: %w", err)
			}
			if inv, err = bitperm.Inverse(perm); err != nil {
				return nil, fmt.Errorf("NewFast: %w", err)
			}
			byPair[key] = inv
		}
		f.blockInv[l] = inv
	}
	for q := 0; q < n; q++ {
		perm, err := bitperm.Permutation1Q(n, q)
		if err != nil {
			return nil, fmt.Errorf("NewFast: %w", err)
		}
		if f.qubitInv[q], err = bitperm.Inverse(perm); err != nil {
			return nil, fmt.Errorf("NewFast: %w", err)
		}
	}

	return f, nil
}

// Evaluate computes the objective and gradient without forming full gates.
// MAIN DESCRIPTION:
//   - M_l = P_l†·U·Q_l† with P_l = C_{L-1}···C_{l+1} and Q_l = C_{l-1}···C_0·R,
//     so ∂_θ objective = −Re⟨∂C_l, M_l⟩ = −Re⟨∂B_l, Tr_rest(M_l)⟩.
//
// Implementation:
//   - Stage 1: M_{L-1} = U·R†·C_0†···C_{L-2}† by right block applications.
//   - Stage 2: for l = L-1..0 take the 4×4 partial trace of M_l, then step
//     M_{l-1} = C_l†·M_l·C_{l-1}.
//   - Stage 3: S = R†·(C_{L-1}···C_0)†·U. tr(S) = ⟨V, U⟩ gives the objective
//     and the 2×2 partial traces of S give the layer derivatives.
//
// Complexity:
//   - Time O(L·d²), Space O(d²).
func (f *Fast) Evaluate(thetas []float64, target *matrix.Dense) (float64, []float64, error) {
	if err := f.check(methodFast, thetas, target); err != nil {
		return 0, nil, err
	}
	fail := func(err error) (float64, []float64, error) {
		return 0, nil, fmt.Errorf("%s: %w", methodFast, err)
	}

	blocks := make([]*matrix.Dense, f.depth)
	blocksH := make([]*matrix.Dense, f.depth)
	for l := range blocks {
		u1, u2 := gates.BlockFactors(blockThetas(thetas, l), gates.NoDerivative)
		blocks[l] = gates.Block(u1, u2)
		blocksH[l], _ = matrix.H(blocks[l])
	}
	rots := make([]*matrix.Dense, f.n)
	rotsH := make([]*matrix.Dense, f.n)
	for q := range rots {
		rots[q] = gates.LayerFactor(layerThetas(thetas, f.depth, q), gates.NoDerivative)
		rotsH[q], _ = matrix.H(rots[q])
	}

	// Stage 1.
	m := target.Clone().(*matrix.Dense)
	for q := range rotsH {
		if err := matrix.ApplyBlockRight(m, rotsH[q], f.qubitInv[q]); err != nil {
			return fail(err)
		}
	}
	for l := 0; l < f.depth-1; l++ {
		if err := matrix.ApplyBlockRight(m, blocksH[l], f.blockInv[l]); err != nil {
			return fail(err)
		}
	}

	// Stage 2.
	grad := make([]float64, f.size)
	for l := f.depth - 1; l >= 0; l-- {
		tr, err := matrix.BlockTrace(m, 4, f.blockInv[l])
		if err != nil {
			return fail(err)
		}
		th := blockThetas(thetas, l)
		for k := 0; k < gates.BlockAngles; k++ {
			u1, u2 := gates.BlockFactors(th, k)
			ip, _ := matrix.Inner(gates.Block(u1, u2), tr)
			grad[gates.BlockAngles*l+k] = -real(ip)
		}
		if err := matrix.ApplyBlockLeft(m, blocksH[l], f.blockInv[l]); err != nil {
			return fail(err)
		}
		if l > 0 {
			if err := matrix.ApplyBlockRight(m, blocks[l-1], f.blockInv[l-1]); err != nil {
				return fail(err)
			}
		}
	}

	// Stage 3: m now holds (C_{L-1}···C_0)†·U·R†.
	for q := range rots {
		if err := matrix.ApplyBlockRight(m, rots[q], f.qubitInv[q]); err != nil {
			return fail(err)
		}
		if err := matrix.ApplyBlockLeft(m, rotsH[q], f.qubitInv[q]); err != nil {
			return fail(err)
		}
	}
	overlap, err := matrix.Trace(m)
	if err != nil {
		return fail(err)
	}
	unorm, _ := matrix.FrobeniusNorm(target)
	objective := 0.5*(float64(f.dim)+unorm*unorm) - real(overlap)

	for q := 0; q < f.n; q++ {
		bt, err := matrix.BlockTrace(m, 2, f.qubitInv[q])
		if err != nil {
			return fail(err)
		}
		local := gates.Chain(rots[q], bt)
		th := layerThetas(thetas, f.depth, q)
		for k := 0; k < gates.LayerAngles; k++ {
			ip, _ := matrix.Inner(gates.LayerFactor(th, k), local)
			grad[gates.BlockAngles*f.depth+gates.LayerAngles*q+k] = -real(ip)
		}
	}

	return objective, grad, nil
}
