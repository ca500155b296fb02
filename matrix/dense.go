// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra: operate on the flat data slice directly.
//   - DefaultValidateNaNInf is on; insert only finite values.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major complex matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
type Dense struct {
	r, c           int          // row and column counts (>0)
	data           []complex128 // contiguous row-major storage (len == r*c)
	validateNaNInf bool         // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]complex128, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// newSquare is the internal d×d constructor for kernels whose shape was
// already validated upstream.
func newSquare(d int) *Dense {
	return &Dense{r: d, c: d, data: make([]complex128, d*d), validateNaNInf: DefaultValidateNaNInf}
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (int, int) { return m.r, m.c }

// indexOf converts (i,j) into a flat offset, or returns ErrOutOfRange.
func (m *Dense) indexOf(i, j int) (int, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, ErrOutOfRange
	}

	return i*m.c + j, nil
}

// At returns the element at (i,j).
//
// Errors:
//   - ErrOutOfRange wrapped with "Dense.At(i,j)".
//
// Complexity:
//   - Time O(1).
func (m *Dense) At(i, j int) (complex128, error) {
	idx, err := m.indexOf(i, j)
	if err != nil {
		return 0, denseErrorf(ctxAt, i, j, err)
	}

	return m.data[idx], nil
}

// Set assigns v at (i,j).
//
// Errors:
//   - ErrOutOfRange, or ErrNaNInf when either component of v is non-finite
//     and the numeric guard is on.
func (m *Dense) Set(i, j int, v complex128) error {
	idx, err := m.indexOf(i, j)
	if err != nil {
		return denseErrorf(ctxSet, i, j, err)
	}
	if m.validateNaNInf && !isFinite(v) {
		return denseErrorf(ctxSet, i, j, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy with the same numeric policy.
func (m *Dense) Clone() Matrix {
	return m.clone()
}

func (m *Dense) clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]complex128, len(m.data)), validateNaNInf: m.validateNaNInf}
	copy(out.data, m.data)

	return out
}

// Row returns a copy of row i, or nil when i is out of range.
func (m *Dense) Row(i int) []complex128 {
	if i < 0 || i >= m.r {
		return nil
	}
	out := make([]complex128, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// String renders the matrix row by row with compact complex formatting.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatComplex(m.data[i*m.c+j], 'g', 6, 128))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// isFinite reports whether both components of v are finite.
func isFinite(v complex128) bool {
	if cmplx.IsNaN(v) {
		return false
	}

	return !math.IsInf(real(v), 0) && !math.IsInf(imag(v), 0)
}
