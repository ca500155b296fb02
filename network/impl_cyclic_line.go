// SPDX-License-Identifier: MIT

package network

// cyclicLine emits (i mod n, i+1 mod n), 1-based, for i = 0..depth-1.
func cyclicLine(n, depth int, _ Links, _ networkConfig) ([][2]int, error) {
	out := make([][2]int, depth)
	var i int
	for i = range out {
		out[i] = [2]int{i%n + 1, (i+1)%n + 1}
	}

	return out, nil
}
