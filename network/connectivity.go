// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"github.com/katalvlaran/aqc/aqcerr"
	"github.com/katalvlaran/aqc/bitperm"
)

// Links lists, per 1-based qubit, the qubits it may pair with (itself
// included, ascending).
type Links map[int][]int

// Allows reports whether qubits i and j may share a CNOT block.
func (l Links) Allows(i, j int) bool {
	for _, k := range l[i] {
		if k == j {
			return true
		}
	}

	return false
}

// Connectivity returns the allowed links of an n-qubit register.
//   - full: every qubit links to every qubit.
//   - line: qubit i links to i-1, i, i+1 (clipped to [1, n]).
//   - star: qubit 1 links to every qubit; any other qubit to 1 and itself.
//
// A single qubit links only to itself regardless of the name.
func Connectivity(n int, name string) (Links, error) {
	if n > bitperm.MaxQubits {
		return nil, fmt.Errorf("%s: n=%d > %d: %w", methodConnectivity, n, bitperm.MaxQubits, aqcerr.ErrCapacity)
	}
	if !isConnectivity(name) {
		return nil, fmt.Errorf("%s: connectivity %q not in %v: %w", methodConnectivity, name, ConnectivityNames(), aqcerr.ErrConfiguration)
	}
	if err := bitperm.ValidateQubits(n); err != nil {
		return nil, fmt.Errorf("%s: %w", methodConnectivity, err)
	}

	links := make(Links, n)
	if n == 1 {
		links[1] = []int{1}
		return links, nil
	}
	var i, j int
	for i = 1; i <= n; i++ {
		switch name {
		case ConnectivityFull:
			for j = 1; j <= n; j++ {
				links[i] = append(links[i], j)
			}
		case ConnectivityLine:
			for j = i - 1; j <= i+1; j++ {
				if j >= 1 && j <= n {
					links[i] = append(links[i], j)
				}
			}
		case ConnectivityStar:
			if i == 1 {
				for j = 1; j <= n; j++ {
					links[i] = append(links[i], j)
				}
			} else {
				links[i] = []int{1, i}
			}
		}
	}

	return links, nil
}

// ConnectivityNames returns the supported connectivity names.
func ConnectivityNames() []string {
	return []string{ConnectivityFull, ConnectivityLine, ConnectivityStar}
}

func isConnectivity(name string) bool {
	for _, c := range ConnectivityNames() {
		if c == name {
			return true
		}
	}

	return false
}
