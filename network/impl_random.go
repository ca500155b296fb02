// SPDX-License-Identifier: MIT

package network

import "go.uber.org/zap"

// random draws each block as the first two entries of an independent
// shuffle of 1..n, so every block holds two distinct qubits.
func random(n, depth int, _ Links, cfg networkConfig) ([][2]int, error) {
	if cfg.depthLimit {
		if limit := LowerLimit(n); depth > limit {
			cfg.logger.Debug("random depth capped at the lower limit",
				zap.Int("requested", depth), zap.Int("depth", limit))
			depth = limit
		}
	}
	out := make([][2]int, depth)
	column := make([]int, n)
	var l, i int
	for l = range out {
		for i = range column {
			column[i] = i + 1
		}
		cfg.rng.Shuffle(n, func(a, b int) { column[a], column[b] = column[b], column[a] })
		out[l] = [2]int{column[0], column[1]}
	}

	return out, nil
}
