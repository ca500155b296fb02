// SPDX-License-Identifier: MIT

package gradient

import (
	"fmt"
	"math"

	"github.com/katalvlaran/aqc/aqcerr"
	"github.com/katalvlaran/aqc/bitperm"
	"github.com/katalvlaran/aqc/gates"
	"github.com/katalvlaran/aqc/matrix"
	"github.com/katalvlaran/aqc/network"
)

// Gradient computes (objective, gradient) for a parameter vector and a target.
type Gradient interface {
	// Evaluate returns ½‖V(thetas) − target‖²_F and its partial derivatives.
	// thetas must hold 4L+3n values and target must be 2^n×2^n.
	Evaluate(thetas []float64, target *matrix.Dense) (float64, []float64, error)
}

// Backend names accepted by New.
const (
	BackendDefault = "default"
	BackendFast    = "fast"
)

// Backends returns the supported backend names.
func Backends() []string { return []string{BackendDefault, BackendFast} }

// New returns the backend registered under name.
//
// Errors:
//   - aqcerr.ErrConfiguration for an unknown name.
//   - constructor errors of NewDense/NewFast otherwise.
func New(name string, n int, net network.Network) (Gradient, error) {
	switch name {
	case BackendDefault:
		return NewDense(n, net)
	case BackendFast:
		return NewFast(n, net)
	}

	return nil, fmt.Errorf("New: backend %q not in %v: %w", name, Backends(), aqcerr.ErrConfiguration)
}

// NumThetas returns 4L+3n.
func NumThetas(n, depth int) int {
	return gates.BlockAngles*depth + gates.LayerAngles*n
}

// shape carries what both backends validate against.
type shape struct {
	n, depth, size, dim int
}

func newShape(method string, n int, net network.Network) (shape, error) {
	if err := bitperm.ValidateQubits(n); err != nil {
		return shape{}, fmt.Errorf("%s: %w", method, err)
	}
	if err := net.Validate(n); err != nil {
		return shape{}, fmt.Errorf("%s: %w", method, err)
	}

	return shape{n: n, depth: net.Depth(), size: NumThetas(n, net.Depth()), dim: 1 << n}, nil
}

// check rejects a wrong-length or non-finite parameter vector and a target
// that is not dim×dim.
func (s shape) check(method string, thetas []float64, target *matrix.Dense) error {
	if err := s.checkThetas(method, thetas); err != nil {
		return err
	}
	if target == nil || target.Rows() != s.dim || target.Cols() != s.dim {
		return fmt.Errorf("%s: target must be %dx%d: %w", method, s.dim, s.dim, aqcerr.ErrDimension)
	}

	return nil
}

func (s shape) checkThetas(method string, thetas []float64) error {
	if len(thetas) != s.size {
		return fmt.Errorf("%s: %d parameters, want 4·%d+3·%d = %d: %w",
			method, len(thetas), s.depth, s.n, s.size, aqcerr.ErrDimension)
	}
	for k, v := range thetas {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: parameter %d is %v: %w", method, k, v, aqcerr.ErrValidation)
		}
	}

	return nil
}

// blockThetas returns the 4 angles of block l.
func blockThetas(thetas []float64, l int) []float64 {
	return thetas[gates.BlockAngles*l : gates.BlockAngles*(l+1)]
}

// layerThetas returns the 3 angles of qubit k (0-based) in the trailing layer.
func layerThetas(thetas []float64, depth, k int) []float64 {
	off := gates.BlockAngles*depth + gates.LayerAngles*k
	return thetas[off : off+gates.LayerAngles]
}
