// SPDX-License-Identifier: MIT

package gates

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/aqc/aqcerr"
	"github.com/katalvlaran/aqc/bitperm"
	"github.com/katalvlaran/aqc/matrix"
)

// halfI is the -i/2 factor of every rotation derivative.
const halfI = complex(0, -0.5)

func mat2(a, b, c, d complex128) *matrix.Dense {
	return matrix.MustFromRows([][]complex128{{a, b}, {c, d}})
}

// RX returns exp(-iθX/2). It panics on a non-finite angle.
func RX(theta float64) *matrix.Dense {
	c, s := math.Cos(theta/2), math.Sin(theta/2)

	return mat2(complex(c, 0), complex(0, -s), complex(0, -s), complex(c, 0))
}

// RY returns exp(-iθY/2). It panics on a non-finite angle.
func RY(theta float64) *matrix.Dense {
	c, s := math.Cos(theta/2), math.Sin(theta/2)

	return mat2(complex(c, 0), complex(-s, 0), complex(s, 0), complex(c, 0))
}

// RZ returns exp(-iθZ/2). It panics on a non-finite angle.
func RZ(theta float64) *matrix.Dense {
	return mat2(cmplx.Exp(complex(0, -theta/2)), 0, 0, cmplx.Exp(complex(0, theta/2)))
}

// PauliX returns a fresh X.
func PauliX() *matrix.Dense { return mat2(0, 1, 1, 0) }

// PauliY returns a fresh Y.
func PauliY() *matrix.Dense { return mat2(0, -1i, 1i, 0) }

// PauliZ returns a fresh Z.
func PauliZ() *matrix.Dense { return mat2(1, 0, 0, -1) }

// CNOT4 returns the two-qubit CNOT with the control on the first Kronecker factor.
func CNOT4() *matrix.Dense {
	return matrix.MustFromRows([][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	})
}

// Gate kinds, shared with exported gate sequences.
const (
	KindRX = "rx"
	KindRY = "ry"
	KindRZ = "rz"
	KindCX = "cx"
)

// Rotation returns the rotation of the given kind.
func Rotation(kind string, theta float64) (*matrix.Dense, error) {
	switch kind {
	case KindRX:
		return RX(theta), nil
	case KindRY:
		return RY(theta), nil
	case KindRZ:
		return RZ(theta), nil
	}

	return nil, fmt.Errorf("Rotation: kind %q not in {rx, ry, rz}: %w", kind, aqcerr.ErrConfiguration)
}

// DRX returns d/dθ RX(θ) = (-i/2)·X·RX(θ).
func DRX(theta float64) *matrix.Dense { return generated(PauliX(), RX(theta)) }

// DRY returns d/dθ RY(θ) = (-i/2)·Y·RY(θ).
func DRY(theta float64) *matrix.Dense { return generated(PauliY(), RY(theta)) }

// DRZ returns d/dθ RZ(θ) = (-i/2)·Z·RZ(θ).
func DRZ(theta float64) *matrix.Dense { return generated(PauliZ(), RZ(theta)) }

func generated(p, r *matrix.Dense) *matrix.Dense {
	pr := Chain(p, r)
	out, _ := matrix.Scale(pr, halfI)

	return out
}

// Chain multiplies conformable matrices left to right. It panics when the
// shapes do not chain, which is a programming error inside this module.
func Chain(ms ...*matrix.Dense) *matrix.Dense {
	args := make([]matrix.Matrix, len(ms))
	var i int
	for i = range ms {
		args[i] = ms[i]
	}
	out, err := matrix.MulChain(args...)
	if err != nil {
		panic(err)
	}

	return out
}

// validatePlacement checks n against the capacity and every qubit against [1, n].
func validatePlacement(tag string, n int, qs ...int) error {
	if err := bitperm.ValidateQubits(n); err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	for _, q := range qs {
		if q < 1 || q > n {
			return fmt.Errorf("%s: qubit %d outside [1, %d]: %w", tag, q, n, aqcerr.ErrValidation)
		}
	}

	return nil
}

// Place embeds the 2×2 gate u on qubit q (1-based) of an n-qubit register:
// kron(I_{2^(q-1)}, u, I_{2^(n-q)}).
//
// Complexity: O(4^n).
func Place(u *matrix.Dense, n, q int) (*matrix.Dense, error) {
	if err := validatePlacement("Place", n, q); err != nil {
		return nil, err
	}
	if u == nil || u.Rows() != 2 || u.Cols() != 2 {
		return nil, fmt.Errorf("Place: gate must be 2x2: %w", aqcerr.ErrDimension)
	}
	left, _ := matrix.NewIdentity(1 << (q - 1))
	right, _ := matrix.NewIdentity(1 << (n - q))

	return matrix.KronAll(left, u, right)
}

// CNOTFull returns the 2^n×2^n CNOT with control c and target t (1-based).
// Basis state x maps to x with bit (n-t) flipped when bit (n-c) of x is set.
func CNOTFull(n, c, t int) (*matrix.Dense, error) {
	if err := validatePlacement("CNOTFull", n, c, t); err != nil {
		return nil, err
	}
	if c == t {
		return nil, fmt.Errorf("CNOTFull: control equals target %d: %w", c, aqcerr.ErrValidation)
	}
	d := 1 << n
	out, _ := matrix.NewDense(d, d)
	cb, tb := 1<<(n-c), 1<<(n-t)
	var x, y int
	for x = 0; x < d; x++ {
		y = x
		if x&cb != 0 {
			y ^= tb
		}
		_ = out.Set(y, x, 1)
	}

	return out, nil
}
