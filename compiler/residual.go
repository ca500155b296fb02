// SPDX-License-Identifier: MIT

package compiler

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/aqc/aqcerr"
	"github.com/katalvlaran/aqc/matrix"
)

// RelativeResidual returns ‖V−U‖_F / ‖U‖_F. A zero U is rejected with
// aqcerr.ErrValidation.
func RelativeResidual(v, u *matrix.Dense) (float64, error) {
	dist, err := matrix.Distance(v, u)
	if err != nil {
		return 0, errors.Wrap(err, "relative residual")
	}
	norm, err := matrix.FrobeniusNorm(u)
	if err != nil {
		return 0, errors.Wrap(err, "relative residual")
	}
	if norm == 0 {
		return 0, errors.Wrap(aqcerr.ErrValidation, "relative residual: zero reference")
	}

	return dist / norm, nil
}
