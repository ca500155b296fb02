// SPDX-License-Identifier: MIT

// Package matrix - permuted block kernels.
//
// A gate g of size k×k (k = 2 or 4) acting on chosen qubits of an n-qubit
// register is, up to an index permutation P, the block-diagonal matrix
// I ⊗ g. The kernels below take inv = P⁻¹ as a row/column map: the rows
// inv[k·grp+0 .. k·grp+k-1] form block grp, ordered as the rows of g.
// They apply the gate in O(k·d²) instead of forming the d×d gate and
// paying O(d³) for a product.
//
// AI-Hints:
//   - Build inv with bitperm.Inverse(bitperm.Permutation2Q(n, j, k)) for a
//     two-qubit gate on (j, k) and bitperm.Inverse(bitperm.Permutation1Q(n, q))
//     for a single-qubit gate.
//   - To apply g† pass H(g); the permutation is unitary so (PᵀgP)† = Pᵀg†P.

package matrix

const (
	opApplyLeft  = "ApplyBlockLeft"
	opApplyRight = "ApplyBlockRight"
	opBlockTrace = "BlockTrace"
)

// validateBlock checks that m is square, g is k×k with k dividing d, and
// inv is a length-d index map whose entries lie in [0, d).
func validateBlock(m *Dense, g *Dense, inv []int) error {
	if m == nil || g == nil {
		return ErrNilMatrix
	}
	if m.r != m.c || g.r != g.c {
		return ErrNonSquare
	}
	if g.r == 0 || m.r%g.r != 0 {
		return ErrDimensionMismatch
	}
	if len(inv) != m.r {
		return ErrBadPermutation
	}
	var i int
	for i = range inv {
		if inv[i] < 0 || inv[i] >= m.r {
			return ErrBadPermutation
		}
	}

	return nil
}

// ApplyBlockLeft overwrites m with G·m, where G = Pᵀ(I⊗g)P is described by
// the block g and the index map inv.
// MAIN DESCRIPTION:
//   - (G·m)[inv[k·grp+a]][j] = Σ_b g[a][b] · m[inv[k·grp+b]][j].
//
// Implementation:
//   - Stage 1: validate shapes and inv.
//   - Stage 2: per block gather k rows, mix them through g column by column,
//     scatter the result back into the same rows.
//
// Complexity:
//   - Time O(k·d²), Space O(k·d) scratch.
func ApplyBlockLeft(m *Dense, g *Dense, inv []int) error {
	if err := validateBlock(m, g, inv); err != nil {
		return matrixErrorf(opApplyLeft, err)
	}
	k, d := g.r, m.r
	rows := make([][]complex128, k)
	scratch := make([]complex128, k*d)
	var grp, a, b, j int
	var acc complex128
	for grp = 0; grp < d/k; grp++ {
		for a = 0; a < k; a++ {
			r := inv[grp*k+a]
			rows[a] = m.data[r*d : (r+1)*d]
			copy(scratch[a*d:(a+1)*d], rows[a])
		}
		for a = 0; a < k; a++ {
			out := rows[a]
			for j = 0; j < d; j++ {
				acc = 0
				for b = 0; b < k; b++ {
					acc += g.data[a*k+b] * scratch[b*d+j]
				}
				out[j] = acc
			}
		}
	}

	return nil
}

// ApplyBlockRight overwrites m with m·G, where G = Pᵀ(I⊗g)P.
// MAIN DESCRIPTION:
//   - (m·G)[i][inv[k·grp+b]] = Σ_a m[i][inv[k·grp+a]] · g[a][b].
//
// Complexity:
//   - Time O(k·d²), Space O(k).
func ApplyBlockRight(m *Dense, g *Dense, inv []int) error {
	if err := validateBlock(m, g, inv); err != nil {
		return matrixErrorf(opApplyRight, err)
	}
	k, d := g.r, m.r
	x := make([]complex128, k)
	var i, grp, a, b int
	var acc complex128
	for i = 0; i < d; i++ {
		row := m.data[i*d : (i+1)*d]
		for grp = 0; grp < d/k; grp++ {
			cols := inv[grp*k : (grp+1)*k]
			for a = 0; a < k; a++ {
				x[a] = row[cols[a]]
			}
			for b = 0; b < k; b++ {
				acc = 0
				for a = 0; a < k; a++ {
					acc += x[a] * g.data[a*k+b]
				}
				row[cols[b]] = acc
			}
		}
	}

	return nil
}

// BlockTrace returns the k×k partial trace of m over every index except the
// block coordinates: T[a][b] = Σ_grp m[inv[k·grp+a]][inv[k·grp+b]].
// For any block g, ⟨Pᵀ(I⊗g)P, m⟩ = ⟨g, T⟩.
//
// Complexity:
//   - Time O(k·d), Space O(k²).
func BlockTrace(m *Dense, k int, inv []int) (*Dense, error) {
	if k <= 0 {
		return nil, matrixErrorf(opBlockTrace, ErrInvalidDimensions)
	}
	shape := newSquare(k)
	if err := validateBlock(m, shape, inv); err != nil {
		return nil, matrixErrorf(opBlockTrace, err)
	}
	d := m.r
	var grp, a, b int
	for grp = 0; grp < d/k; grp++ {
		idx := inv[grp*k : (grp+1)*k]
		for a = 0; a < k; a++ {
			row := m.data[idx[a]*d:]
			for b = 0; b < k; b++ {
				shape.data[a*k+b] += row[idx[b]]
			}
		}
	}

	return shape, nil
}
