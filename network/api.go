// SPDX-License-Identifier: MIT
// Package: network
//
// api.go: public entry points. Layout generators live in impl_*.go.
//
// Error priority (checked in this order, nothing is generated before all
// checks pass): capacity → configuration → validation.

package network

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/aqc/aqcerr"
	"github.com/katalvlaran/aqc/bitperm"
)

// generator emits exactly depth pairs (or its own fixed count when the layout
// ignores depth) for an n-qubit register whose names were already resolved.
type generator func(n, depth int, links Links, cfg networkConfig) ([][2]int, error)

// layoutSpec binds a layout to its generator and the connectivities it honours.
type layoutSpec struct {
	gen          generator
	connectivity []string
	minQubits    int
}

var layouts = map[string]layoutSpec{
	LayoutSequential: {gen: sequential, connectivity: []string{ConnectivityFull, ConnectivityLine, ConnectivityStar}, minQubits: minPairQubits},
	LayoutSpin:       {gen: spin, connectivity: []string{ConnectivityFull, ConnectivityLine}, minQubits: minPairQubits},
	LayoutCyclicSpin: {gen: cyclicSpin, connectivity: []string{ConnectivityFull}, minQubits: minPairQubits},
	LayoutCyclicLine: {gen: cyclicLine, connectivity: []string{ConnectivityLine}, minQubits: minPairQubits},
	LayoutCartan:     {gen: cartan, connectivity: []string{ConnectivityFull}, minQubits: minCartanQubits},
	LayoutRandom:     {gen: random, connectivity: []string{ConnectivityFull}, minQubits: minPairQubits},
}

// LayoutNames returns the canonical layout names in ascending order.
func LayoutNames() []string {
	out := make([]string, 0, len(layouts))
	for name := range layouts {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// CheckLayout resolves layout aliases and checks that the layout honours
// connectivity. It returns the canonical layout name.
//
// Accepted pairings:
//   - sequ: full, line, star.
//   - spin: full, and also line, since spin only couples neighbours i, i+1.
//   - cyclic_spin, cart, random: full.
//   - cyclic_line: line.
//
// Errors:
//   - aqcerr.ErrConfiguration for unknown names or an unsupported pairing.
func CheckLayout(layout, connectivity string) (string, error) {
	if canonical, ok := layoutAliases[layout]; ok {
		layout = canonical
	}
	entry, ok := layouts[layout]
	if !ok {
		return "", fmt.Errorf("layout %q not in %v: %w", layout, LayoutNames(), aqcerr.ErrConfiguration)
	}
	if !isConnectivity(connectivity) {
		return "", fmt.Errorf("connectivity %q not in %v: %w", connectivity, ConnectivityNames(), aqcerr.ErrConfiguration)
	}
	if !contains(entry.connectivity, connectivity) {
		return "", fmt.Errorf("layout %q expects connectivity %v, got %q: %w",
			layout, entry.connectivity, connectivity, aqcerr.ErrConfiguration)
	}

	return layout, nil
}

// LowerLimit returns ceil((4^n − 3n − 1) / 4), the CNOT count that guarantees
// an exact representation of a generic n-qubit unitary. Returns 0 for n < 1.
//
// LowerLimit(2) = 3, LowerLimit(3) = 14, LowerLimit(4) = 61.
func LowerLimit(n int) int {
	if n < 1 {
		return 0
	}
	num := (1 << (2 * n)) - 3*n - 1

	return (num + 3) / 4
}

// Make builds the network of the named layout and connectivity.
// MAIN DESCRIPTION:
//   - depth <= 0 selects LowerLimit(n).
//   - cart ignores depth; its length is fixed by n.
//   - random caps depth at LowerLimit(n) unless WithDepthLimit(false).
//
// Errors:
//   - aqcerr.ErrCapacity: n > bitperm.MaxQubits.
//   - aqcerr.ErrConfiguration: unknown layout or connectivity, a layout used
//     with a connectivity it does not honour, random without an RNG.
//   - aqcerr.ErrValidation: n below the layout minimum.
func Make(n int, layout, connectivity string, depth int, opts ...Option) (Network, error) {
	cfg := newNetworkConfig(opts...)

	if n > bitperm.MaxQubits {
		return Network{}, fmt.Errorf("%s: n=%d > %d: %w", methodMake, n, bitperm.MaxQubits, aqcerr.ErrCapacity)
	}
	layout, err := CheckLayout(layout, connectivity)
	if err != nil {
		return Network{}, fmt.Errorf("%s: %w", methodMake, err)
	}
	entry := layouts[layout]
	links, err := Connectivity(n, connectivity)
	if err != nil {
		return Network{}, fmt.Errorf("%s: %w", methodMake, err)
	}
	if layout == LayoutRandom && cfg.rng == nil {
		return Network{}, fmt.Errorf("%s: layout %q needs WithSeed or WithRand: %w", methodMake, layout, aqcerr.ErrConfiguration)
	}

	if depth <= 0 {
		depth = LowerLimit(n)
		cfg.logger.Debug("CNOT count set to the lower limit",
			zap.Int("qubits", n), zap.Int("depth", depth), zap.String("layout", layout))
	}
	if depth == 0 && layout != LayoutCartan {
		// A single qubit needs no CNOT blocks.
		return Network{}, nil
	}
	if n < entry.minQubits {
		return Network{}, fmt.Errorf("%s: layout %q needs n >= %d, got %d: %w",
			methodMake, layout, entry.minQubits, n, aqcerr.ErrValidation)
	}

	pairs, err := entry.gen(n, depth, links, cfg)
	if err != nil {
		return Network{}, fmt.Errorf("%s: %w", methodMake, err)
	}

	return New(n, pairs)
}

// Random returns a network whose every block acts on two distinct qubits
// drawn uniformly at random. depth must be >= 1; it is capped at
// LowerLimit(n) unless WithDepthLimit(false). An RNG is required.
func Random(n, depth int, opts ...Option) (Network, error) {
	cfg := newNetworkConfig(opts...)
	if n > bitperm.MaxQubits {
		return Network{}, fmt.Errorf("%s: n=%d > %d: %w", methodRandom, n, bitperm.MaxQubits, aqcerr.ErrCapacity)
	}
	if cfg.rng == nil {
		return Network{}, fmt.Errorf("%s: needs WithSeed or WithRand: %w", methodRandom, aqcerr.ErrConfiguration)
	}
	if n < minPairQubits || depth < 1 {
		return Network{}, fmt.Errorf("%s: need n >= %d and depth >= 1, got n=%d depth=%d: %w",
			methodRandom, minPairQubits, n, depth, aqcerr.ErrValidation)
	}
	pairs, err := random(n, depth, nil, cfg)
	if err != nil {
		return Network{}, fmt.Errorf("%s: %w", methodRandom, err)
	}

	return New(n, pairs)
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}

	return false
}
