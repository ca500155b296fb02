// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/aqc/bitperm"

const opReverse = "ReverseQubitOrder"

// ReverseQubitOrder relabels qubit q as n-1-q on a 2^n×2^n operator, i.e.
// returns R·m·R with R the bit-reversal permutation. Use it to compare
// against tools that place qubit 0 on the least-significant index bit.
func ReverseQubitOrder(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReverse, err)
	}
	n, err := ValidatePowerOfTwo(m)
	if err != nil {
		return nil, matrixErrorf(opReverse, err)
	}
	rev, err := bitperm.Reversal(n)
	if err != nil {
		return nil, matrixErrorf(opReverse, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opReverse, err)
	}
	d := dm.r
	out := newSquare(d)
	var i, j int
	for i = 0; i < d; i++ {
		for j = 0; j < d; j++ {
			out.data[rev[i]*d+rev[j]] = dm.data[i*d+j]
		}
	}

	return out, nil
}
