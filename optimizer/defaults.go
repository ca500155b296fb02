// SPDX-License-Identifier: MIT

package optimizer

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/aqc/aqcerr"
)

// Defaults are the hyperparameters used when the caller supplies none.
type Defaults struct {
	MaxIterations int     `yaml:"maxIterations"`
	StepSize      float64 `yaml:"stepSize"`
}

// Bucket applies its Defaults to every qubit count up to MaxQubits.
type Bucket struct {
	MaxQubits int `yaml:"maxQubits"`
	Defaults  `yaml:",inline"`
}

// DefaultsTable is a qubit-keyed lookup. Buckets are consulted in ascending
// MaxQubits order; counts above the last bucket use the last bucket.
type DefaultsTable []Bucket

// BuiltinDefaults returns the stock table:
// n ≤ 3 → (200, 0.1); n = 4 → (350, 0.06); n ≥ 5 → (500, 0.03).
func BuiltinDefaults() DefaultsTable {
	return DefaultsTable{
		{MaxQubits: 3, Defaults: Defaults{MaxIterations: 200, StepSize: 0.1}},
		{MaxQubits: 4, Defaults: Defaults{MaxIterations: 350, StepSize: 0.06}},
		{MaxQubits: 16, Defaults: Defaults{MaxIterations: 500, StepSize: 0.03}},
	}
}

// Validate rejects an empty table and non-positive entries.
func (t DefaultsTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("DefaultsTable: empty: %w", aqcerr.ErrConfiguration)
	}
	for i, b := range t {
		if b.MaxIterations <= 0 || b.StepSize <= 0 {
			return fmt.Errorf("DefaultsTable: bucket %d (n ≤ %d) needs positive iterations and step: %w",
				i, b.MaxQubits, aqcerr.ErrConfiguration)
		}
	}

	return nil
}

// Lookup returns the defaults for n qubits.
func (t DefaultsTable) Lookup(n int) Defaults {
	sorted := append(DefaultsTable(nil), t...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].MaxQubits < sorted[j].MaxQubits })
	for _, b := range sorted {
		if n <= b.MaxQubits {
			return b.Defaults
		}
	}

	return sorted[len(sorted)-1].Defaults
}
