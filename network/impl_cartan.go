// SPDX-License-Identifier: MIT

package network

import "go.uber.org/zap"

// cartan3 is the closed-form base case of the Cartan recursion on 3 qubits.
var cartan3 = [2][]int{
	{1, 1, 1, 2, 1, 2, 1, 1, 1, 2, 1, 2, 1, 1, 1, 1, 2, 1, 2, 1, 1, 1},
	{2, 2, 2, 3, 3, 3, 2, 2, 2, 3, 3, 3, 3, 2, 2, 2, 3, 3, 3, 2, 2, 2},
}

// cartan builds the recursive Cartan network. Its length depends on n only;
// depth is ignored.
//
// Implementation (n > 3):
//   - Stage 1: seed = [(1,2)]×3, mult = [(n-1,n),(n-2,n),(n-1,n),(n-2,n)].
//   - Stage 2: repeat n-2 times:
//     seed ← 3 × (seed ‖ mult) ‖ seed;
//     decrement the control of mult's last column; mult ← mult ‖ mult.
//
// Complexity: O(L) with L growing roughly 4× per qubit.
func cartan(n, _ int, _ Links, cfg networkConfig) ([][2]int, error) {
	var out [][2]int
	if n == minCartanQubits {
		out = make([][2]int, len(cartan3[0]))
		for l := range out {
			out[l] = [2]int{cartan3[0][l], cartan3[1][l]}
		}
	} else {
		out = [][2]int{{1, 2}, {1, 2}, {1, 2}}
		mult := [][2]int{{n - 1, n}, {n - 2, n}, {n - 1, n}, {n - 2, n}}
		var step, r int
		for step = 0; step < n-2; step++ {
			unit := append(append([][2]int(nil), out...), mult...)
			next := make([][2]int, 0, 3*len(unit)+len(out))
			for r = 0; r < 3; r++ {
				next = append(next, unit...)
			}
			out = append(next, out...)
			mult[len(mult)-1][0]--
			mult = append(mult, mult...)
		}
	}
	cfg.logger.Debug("cartan network built",
		zap.Int("qubits", n), zap.Int("depth", len(out)), zap.Int("lower_limit", LowerLimit(n)))

	return out, nil
}
