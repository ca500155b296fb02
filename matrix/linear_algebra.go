// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// addition, subtraction, scaling, products, adjoint, Kronecker product,
// trace, Frobenius inner product and norm. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - All kernels use central validators and wrap sentinels via matrixErrorf.
//   - Results are always freshly allocated *Dense; operands are never mutated.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opMulChain  = "MulChain"
	opAdjoint   = "H"
	opScale     = "Scale"
	opKron      = "Kron"
	opTrace     = "Trace"
	opInner     = "Inner"
	opNorm      = "FrobeniusNorm"
	opDistance  = "Distance"
	opAllClose  = "AllClose"
	opUnitarity = "UnitarityError"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// binaryDense validates two operands as non-nil with equal shapes and returns
// their Dense forms.
func binaryDense(a, b Matrix) (*Dense, *Dense, error) {
	if err := validateBinary(a, b); err != nil {
		return nil, nil, err
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, nil, err
	}
	da, err := asDense(a)
	if err != nil {
		return nil, nil, err
	}
	db, err := asDense(b)
	if err != nil {
		return nil, nil, err
	}

	return da, db, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: validate non-nil and same shape; materialize Dense operands.
//   - Stage 2: single flat loop over the row-major buffers.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign complex128, opTag string) (*Dense, error) {
	da, db, err := binaryDense(a, b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, _ := NewDense(da.r, da.c)
	var k int
	for k = range res.data {
		res.data[k] = da.data[k] + sign*db.data[k]
	}

	return res, nil
}

// Add returns a + b.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, 1, opAdd) }

// Sub returns a - b.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha * m.
func Scale(m Matrix, alpha complex128) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := dm.clone()
	var k int
	for k = range res.data {
		res.data[k] *= alpha
	}

	return res, nil
}

// Mul returns the matrix product a·b.
// MAIN DESCRIPTION:
//   - Classic triple loop in i→k→j order so the innermost loop streams one
//     row of b and one row of the result.
//
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols == b.Rows.
//   - Stage 2: for each (i,k) skip exact zeros of a; gate matrices are sparse.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := validateBinary(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mulDense(da, db), nil
}

// mulDense is the validated kernel behind Mul.
func mulDense(a, b *Dense) *Dense {
	res := &Dense{r: a.r, c: b.c, data: make([]complex128, a.r*b.c), validateNaNInf: DefaultValidateNaNInf}
	var i, k, j int
	var aik complex128
	for i = 0; i < a.r; i++ {
		out := res.data[i*b.c : (i+1)*b.c]
		for k = 0; k < a.c; k++ {
			aik = a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			row := b.data[k*b.c : (k+1)*b.c]
			for j = range out {
				out[j] += aik * row[j]
			}
		}
	}

	return res
}

// MulChain returns ms[0]·ms[1]·…·ms[len-1], multiplied left to right.
//
// Errors:
//   - ErrInvalidDimensions for an empty chain; any Mul error otherwise.
func MulChain(ms ...Matrix) (*Dense, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opMulChain, ErrInvalidDimensions)
	}
	if err := ValidateNotNil(ms[0]); err != nil {
		return nil, matrixErrorf(opMulChain, err)
	}
	acc, err := asDense(ms[0])
	if err != nil {
		return nil, matrixErrorf(opMulChain, err)
	}
	acc = acc.clone()
	var i int
	for i = 1; i < len(ms); i++ {
		if acc, err = Mul(acc, ms[i]); err != nil {
			return nil, matrixErrorf(opMulChain, err)
		}
	}

	return acc, nil
}

// H returns the conjugate transpose (adjoint) of m.
func H(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}

	return adjoint(dm), nil
}

func adjoint(m *Dense) *Dense {
	res := &Dense{r: m.c, c: m.r, data: make([]complex128, len(m.data)), validateNaNInf: m.validateNaNInf}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = cmplx.Conj(m.data[i*m.c+j])
		}
	}

	return res
}

// Kron returns the Kronecker product a ⊗ b.
// MAIN DESCRIPTION:
//   - out[i*rb+k][j*cb+l] = a[i][j] · b[k][l].
//
// Implementation:
//   - Stage 1: validate operands.
//   - Stage 2: for each nonzero a[i][j] scale-copy b into its block.
//
// Complexity:
//   - Time O(ra*ca*rb*cb), Space the same.
func Kron(a, b Matrix) (*Dense, error) {
	if err := validateBinary(a, b); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}

	return kronDense(da, db), nil
}

func kronDense(a, b *Dense) *Dense {
	rows, cols := a.r*b.r, a.c*b.c
	res := &Dense{r: rows, c: cols, data: make([]complex128, rows*cols), validateNaNInf: DefaultValidateNaNInf}
	var i, j, k, l int
	var aij complex128
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			aij = a.data[i*a.c+j]
			if aij == 0 {
				continue
			}
			for k = 0; k < b.r; k++ {
				dst := res.data[(i*b.r+k)*cols+j*b.c:]
				src := b.data[k*b.c : (k+1)*b.c]
				for l = range src {
					dst[l] = aij * src[l]
				}
			}
		}
	}

	return res
}

// KronAll returns ms[0] ⊗ ms[1] ⊗ … ⊗ ms[len-1].
func KronAll(ms ...Matrix) (*Dense, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opKron, ErrInvalidDimensions)
	}
	acc, err := asDense(ms[0])
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	acc = acc.clone()
	var i int
	for i = 1; i < len(ms); i++ {
		if acc, err = Kron(acc, ms[i]); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// Trace returns Σ m[i][i] for a square matrix.
func Trace(m Matrix) (complex128, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var s complex128
	var i int
	for i = 0; i < dm.r; i++ {
		s += dm.data[i*dm.c+i]
	}

	return s, nil
}

// Inner returns the Frobenius inner product ⟨a, b⟩ = Σ conj(a_ij)·b_ij,
// which equals tr(a†b).
func Inner(a, b Matrix) (complex128, error) {
	da, db, err := binaryDense(a, b)
	if err != nil {
		return 0, matrixErrorf(opInner, err)
	}

	return innerDense(da, db), nil
}

func innerDense(a, b *Dense) complex128 {
	var s complex128
	var k int
	for k = range a.data {
		s += cmplx.Conj(a.data[k]) * b.data[k]
	}

	return s
}

// FrobeniusNorm returns sqrt(Σ |m_ij|²).
func FrobeniusNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opNorm, err)
	}

	return math.Sqrt(sqNorm(dm.data)), nil
}

// sqNorm returns Σ |v_k|².
func sqNorm(v []complex128) float64 {
	var s float64
	var k int
	for k = range v {
		s += real(v[k])*real(v[k]) + imag(v[k])*imag(v[k])
	}

	return s
}

// Distance returns ‖a − b‖_F without allocating the difference.
func Distance(a, b Matrix) (float64, error) {
	da, db, err := binaryDense(a, b)
	if err != nil {
		return 0, matrixErrorf(opDistance, err)
	}
	var s float64
	var k int
	var d complex128
	for k = range da.data {
		d = da.data[k] - db.data[k]
		s += real(d)*real(d) + imag(d)*imag(d)
	}

	return math.Sqrt(s), nil
}

// AllClose reports whether |a_ij − b_ij| ≤ atol + rtol·|b_ij| for every entry.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	da, db, err := binaryDense(a, b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	var k int
	for k = range da.data {
		if cmplx.Abs(da.data[k]-db.data[k]) > atol+rtol*cmplx.Abs(db.data[k]) {
			return false, nil
		}
	}

	return true, nil
}

// UnitarityError returns ‖m†m − I‖_F for a square matrix.
//
// Complexity:
//   - Time O(d^3), Space O(d^2).
func UnitarityError(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opUnitarity, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opUnitarity, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opUnitarity, err)
	}
	g := mulDense(adjoint(dm), dm)
	var i int
	for i = 0; i < g.r; i++ {
		g.data[i*g.c+i]--
	}

	return math.Sqrt(sqNorm(g.data)), nil
}

// IsUnitary reports whether UnitarityError(m) ≤ DefaultEpsilon·d.
func IsUnitary(m Matrix) (bool, error) {
	e, err := UnitarityError(m)
	if err != nil {
		return false, err
	}

	return e <= DefaultEpsilon*float64(m.Rows()), nil
}
