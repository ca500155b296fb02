// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"math"

	"github.com/katalvlaran/aqc/aqcerr"
	"github.com/katalvlaran/aqc/bitperm"
	"github.com/katalvlaran/aqc/gates"
	"github.com/katalvlaran/aqc/gradient"
	"github.com/katalvlaran/aqc/matrix"
	"github.com/katalvlaran/aqc/network"
)

// NoSlot marks a gate without an angle (cx).
const NoSlot = -1

// Gate is one element of an exported sequence. Qubits are 0-based in the
// sequence's convention; a cx lists (control, target).
type Gate struct {
	Kind   string  `json:"kind" yaml:"kind"`
	Qubits []int   `json:"qubits" yaml:"qubits"`
	Angle  float64 `json:"angle,omitempty" yaml:"angle,omitempty"`
	Slot   int     `json:"slot" yaml:"slot"`
}

// Sequence is a time-ordered gate list: Gates[0] acts first.
// Reversed records that qubit q of the circuit appears as n-1-q.
type Sequence struct {
	NumQubits int    `json:"num_qubits" yaml:"numQubits"`
	Reversed  bool   `json:"reversed" yaml:"reversed"`
	Gates     []Gate `json:"gates" yaml:"gates"`
}

// ExportOption customizes Export.
type ExportOption func(*exportConfig)

type exportConfig struct {
	threshold float64
	reversed  bool
}

// WithThreshold omits rotations whose |angle| <= tol. Panics if tol < 0.
func WithThreshold(tol float64) ExportOption {
	if tol < 0 || math.IsNaN(tol) {
		panic("circuit: WithThreshold(tol<0)")
	}
	return func(c *exportConfig) {
		c.threshold = tol
	}
}

// WithReversedQubits maps circuit qubit q to n-1-q, the convention of hosts
// that put qubit 0 on the least-significant index bit.
func WithReversedQubits() ExportOption {
	return func(c *exportConfig) {
		c.reversed = true
	}
}

// Export returns the circuit as a time-ordered gate sequence. The trailing
// layer acts first (RZ(θ2), RY(θ1), RZ(θ0) per qubit), then each block as
// cx(c, t), RY(θ0)@c, RZ(θ1)@c, RY(θ2)@t, RX(θ3)@t.
//
// By default no gate is omitted and qubits keep the circuit's order.
func (c *ParametricCircuit) Export(opts ...ExportOption) Sequence {
	cfg := exportConfig{threshold: -1}
	for _, opt := range opts {
		opt(&cfg)
	}
	qubit := func(q int) int {
		if cfg.reversed {
			return c.n - 1 - q
		}
		return q
	}
	seq := Sequence{NumQubits: c.n, Reversed: cfg.reversed}
	rot := func(kind string, q, slot int) {
		if math.Abs(c.thetas[slot]) <= cfg.threshold {
			return
		}
		seq.Gates = append(seq.Gates, Gate{Kind: kind, Qubits: []int{qubit(q)}, Angle: c.thetas[slot], Slot: slot})
	}

	depth := c.net.Depth()
	for q := 0; q < c.n; q++ {
		off := gates.BlockAngles*depth + gates.LayerAngles*q
		rot(gates.KindRZ, q, off+2)
		rot(gates.KindRY, q, off+1)
		rot(gates.KindRZ, q, off)
	}
	for l := 0; l < depth; l++ {
		ctl, tgt := c.net.Pair(l)
		ctl, tgt = ctl-1, tgt-1
		seq.Gates = append(seq.Gates, Gate{Kind: gates.KindCX, Qubits: []int{qubit(ctl), qubit(tgt)}, Slot: NoSlot})
		off := gates.BlockAngles * l
		rot(gates.KindRY, ctl, off)
		rot(gates.KindRZ, ctl, off+1)
		rot(gates.KindRY, tgt, off+2)
		rot(gates.KindRX, tgt, off+3)
	}

	return seq
}

// Import rebuilds a circuit from a sequence produced by Export. The network
// comes from the cx gates in order; angles come from the rotation slots, and
// slots missing from the sequence are zero.
//
// Errors:
//   - aqcerr.ErrConfiguration for an unknown gate kind.
//   - aqcerr.ErrValidation for a qubit outside [0, n) or a malformed gate.
//   - aqcerr.ErrDimension for a slot outside [0, 4L+3n).
func Import(seq Sequence) (*ParametricCircuit, error) {
	n := seq.NumQubits
	if err := bitperm.ValidateQubits(n); err != nil {
		return nil, fmt.Errorf("Import: %w", err)
	}
	unmap := func(q int) int {
		if seq.Reversed {
			return n - 1 - q
		}
		return q
	}
	var pairs [][2]int
	for i, g := range seq.Gates {
		if err := checkGate(n, g); err != nil {
			return nil, fmt.Errorf("Import: gate %d: %w", i, err)
		}
		if g.Kind == gates.KindCX {
			pairs = append(pairs, [2]int{unmap(g.Qubits[0]) + 1, unmap(g.Qubits[1]) + 1})
		}
	}
	net, err := network.New(n, pairs)
	if err != nil {
		return nil, fmt.Errorf("Import: %w", err)
	}
	thetas := make([]float64, gradient.NumThetas(n, net.Depth()))
	for i, g := range seq.Gates {
		if g.Kind == gates.KindCX {
			continue
		}
		if g.Slot < 0 || g.Slot >= len(thetas) {
			return nil, fmt.Errorf("Import: gate %d slot %d outside [0, %d): %w", i, g.Slot, len(thetas), aqcerr.ErrDimension)
		}
		thetas[g.Slot] = g.Angle
	}

	return New(n, net, WithThetas(thetas))
}

func checkGate(n int, g Gate) error {
	want := 1
	switch g.Kind {
	case gates.KindCX:
		want = 2
	case gates.KindRX, gates.KindRY, gates.KindRZ:
	default:
		return fmt.Errorf("kind %q: %w", g.Kind, aqcerr.ErrConfiguration)
	}
	if len(g.Qubits) != want {
		return fmt.Errorf("%s needs %d qubits, got %d: %w", g.Kind, want, len(g.Qubits), aqcerr.ErrValidation)
	}
	for _, q := range g.Qubits {
		if q < 0 || q >= n {
			return fmt.Errorf("qubit %d outside [0, %d): %w", q, n, aqcerr.ErrValidation)
		}
	}

	return nil
}

// Dense simulates the sequence in its own qubit convention: the result equals
// the exporting circuit's matrix, or matrix.ReverseQubitOrder of it when the
// sequence is reversed.
func (s Sequence) Dense() (*matrix.Dense, error) {
	if err := bitperm.ValidateQubits(s.NumQubits); err != nil {
		return nil, fmt.Errorf("Sequence.Dense: %w", err)
	}
	v, err := matrix.NewIdentity(1 << s.NumQubits)
	if err != nil {
		return nil, fmt.Errorf("Sequence.Dense: %w", err)
	}
	cx := gates.CNOT4()
	for i, g := range s.Gates {
		if err = checkGate(s.NumQubits, g); err != nil {
			return nil, fmt.Errorf("Sequence.Dense: gate %d: %w", i, err)
		}
		if g.Kind == gates.KindCX {
			err = applyLeft(v, cx, s.NumQubits, g.Qubits[0], g.Qubits[1])
		} else {
			r, _ := gates.Rotation(g.Kind, g.Angle)
			err = applyLeft(v, r, s.NumQubits, g.Qubits[0], -1)
		}
		if err != nil {
			return nil, fmt.Errorf("Sequence.Dense: gate %d: %w", i, err)
		}
	}

	return v, nil
}

// CountCNOTs returns the number of cx gates in the sequence.
func (s Sequence) CountCNOTs() int {
	count := 0
	for _, g := range s.Gates {
		if g.Kind == gates.KindCX {
			count++
		}
	}

	return count
}
