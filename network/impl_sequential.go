// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"github.com/katalvlaran/aqc/aqcerr"
)

// sequential walks all pairs (i, j), i < j, in row-major order, keeps those
// the links allow, and cycles until depth pairs are emitted.
//
// Complexity: O(depth + n²).
func sequential(n, depth int, links Links, _ networkConfig) ([][2]int, error) {
	var cycle [][2]int
	var i, j int
	for i = 1; i < n; i++ {
		for j = i + 1; j <= n; j++ {
			if links.Allows(i, j) {
				cycle = append(cycle, [2]int{i, j})
			}
		}
	}
	if len(cycle) == 0 {
		return nil, fmt.Errorf("%s: no allowed pairs: %w", LayoutSequential, aqcerr.ErrValidation)
	}

	return repeat(cycle, depth), nil
}

// repeat emits the first depth pairs of cycle, cycle, cycle, ...
func repeat(cycle [][2]int, depth int) [][2]int {
	out := make([][2]int, depth)
	var l int
	for l = range out {
		out[l] = cycle[l%len(cycle)]
	}

	return out
}
