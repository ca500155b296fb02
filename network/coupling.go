// SPDX-License-Identifier: MIT

package network

type reachItem struct {
	qubit int
	depth int
}

// Reach walks the interaction graph of nw (one undirected edge per block)
// breadth-first from qubit 1 and returns the hop distance of every qubit,
// indexed 1..n. Unreached qubits hold -1; index 0 is unused.
// Pairs outside [1, n] are ignored.
func (nw Network) Reach(n int) []int {
	if n < 1 {
		return nil
	}
	adj := make([][]int, n+1)
	for _, p := range nw.pairs {
		if p[0] < 1 || p[0] > n || p[1] < 1 || p[1] > n {
			continue
		}
		adj[p[0]] = append(adj[p[0]], p[1])
		adj[p[1]] = append(adj[p[1]], p[0])
	}

	dist := make([]int, n+1)
	for q := range dist {
		dist[q] = -1
	}
	dist[1] = 0
	queue := []reachItem{{qubit: 1}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		for _, nbr := range adj[item.qubit] {
			if dist[nbr] >= 0 {
				continue
			}
			dist[nbr] = item.depth + 1
			queue = append(queue, reachItem{qubit: nbr, depth: item.depth + 1})
		}
	}

	return dist
}

// Coupled reports whether the blocks of nw link all n qubits into one
// component. A network that is not coupled cannot entangle across the cut.
func (nw Network) Coupled(n int) bool {
	for _, d := range nw.Reach(n)[1:] {
		if d < 0 {
			return false
		}
	}

	return n >= 1
}
