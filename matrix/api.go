// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// NewIdentity returns the d×d identity matrix.
//
// Errors:
//   - ErrInvalidDimensions if d <= 0.
func NewIdentity(d int) (*Dense, error) {
	if d <= 0 {
		return nil, ErrInvalidDimensions
	}
	out := newSquare(d)
	var i int
	for i = 0; i < d; i++ {
		out.data[i*d+i] = 1
	}

	return out, nil
}

// NewFromRows builds a Dense from a rectangular literal. Rows are copied.
//
// Errors:
//   - ErrInvalidDimensions for an empty literal.
//   - ErrDimensionMismatch for ragged rows.
//   - ErrNaNInf for non-finite entries.
func NewFromRows(rows [][]complex128) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	out, _ := NewDense(r, c)
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d cols, want %d: %w", i, len(rows[i]), c, ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			if !isFinite(rows[i][j]) {
				return nil, denseErrorf(ctxSet, i, j, ErrNaNInf)
			}
			out.data[i*c+j] = rows[i][j]
		}
	}

	return out, nil
}

// MustFromRows is NewFromRows for package-level literals; it panics on error.
func MustFromRows(rows [][]complex128) *Dense {
	m, err := NewFromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// asDense returns m itself when it is *Dense, otherwise a Dense copy built
// through the interface accessors.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v complex128
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}
