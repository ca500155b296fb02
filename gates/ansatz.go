// SPDX-License-Identifier: MIT

package gates

import "github.com/katalvlaran/aqc/matrix"

// Angles per CNOT block and per qubit of the trailing rotation layer.
const (
	BlockAngles = 4
	LayerAngles = 3
)

// NoDerivative selects the undifferentiated factor in BlockFactors and LayerFactor.
const NoDerivative = -1

// BlockFactors returns the single-qubit factors of a CNOT block with angles
// th[0..3]: u1 = RZ(th1)·RY(th0) on the control and u2 = RX(th3)·RY(th2) on
// the target. When k is in [0, 4) the factor holding th[k] is replaced by its
// partial derivative with respect to th[k].
func BlockFactors(th []float64, k int) (u1, u2 *matrix.Dense) {
	switch k {
	case 0:
		u1 = Chain(RZ(th[1]), DRY(th[0]))
	case 1:
		u1 = Chain(DRZ(th[1]), RY(th[0]))
	default:
		u1 = Chain(RZ(th[1]), RY(th[0]))
	}
	switch k {
	case 2:
		u2 = Chain(RX(th[3]), DRY(th[2]))
	case 3:
		u2 = Chain(DRX(th[3]), RY(th[2]))
	default:
		u2 = Chain(RX(th[3]), RY(th[2]))
	}

	return u1, u2
}

// Block returns the 4×4 matrix (u1⊗u2)·CNOT4 of a CNOT block, control first.
func Block(u1, u2 *matrix.Dense) *matrix.Dense {
	k, err := matrix.Kron(u1, u2)
	if err != nil {
		panic(err)
	}

	return Chain(k, CNOT4())
}

// LayerFactor returns RZ(th0)·RY(th1)·RZ(th2), the per-qubit rotation of the
// trailing layer, or its derivative with respect to th[k] for k in [0, 3).
func LayerFactor(th []float64, k int) *matrix.Dense {
	a, b, c := RZ(th[0]), RY(th[1]), RZ(th[2])
	switch k {
	case 0:
		a = DRZ(th[0])
	case 1:
		b = DRY(th[1])
	case 2:
		c = DRZ(th[2])
	}

	return Chain(a, b, c)
}
