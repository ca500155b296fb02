// SPDX-License-Identifier: MIT

package network

// spin alternates two brick-wall sweeps: (1,2),(3,4),… then (2,3),(4,5),…,
// cycling until depth pairs are emitted.
func spin(n, depth int, _ Links, _ networkConfig) ([][2]int, error) {
	var cycle [][2]int
	var i int
	for i = 1; i < n; i += 2 {
		cycle = append(cycle, [2]int{i, i + 1})
	}
	for i = 2; i < n; i += 2 {
		cycle = append(cycle, [2]int{i, i + 1})
	}

	return repeat(cycle, depth), nil
}

// cyclicSpin is spin with the ring closed: the odd sweep ends with (n, 1)
// when n is even. Pairs are built on 0-based offsets and shifted by one.
func cyclicSpin(n, depth int, _ Links, _ networkConfig) ([][2]int, error) {
	var cycle [][2]int
	var i int
	for i = 0; i < n; i += 2 {
		if i+1 <= n-1 {
			cycle = append(cycle, [2]int{i + 1, i + 2})
		}
	}
	for i = 1; i < n; i += 2 {
		if i+1 <= n-1 {
			cycle = append(cycle, [2]int{i + 1, i + 2})
		} else if i == n-1 {
			cycle = append(cycle, [2]int{n, 1})
		}
	}

	return repeat(cycle, depth), nil
}
