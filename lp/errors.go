// SPDX-License-Identifier: MIT

package lp

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedConstraint indicates a constraint with non-finite
	// coefficients or with a = b = 0 (no boundary line).
	ErrMalformedConstraint = errors.New("lp: malformed constraint")

	// ErrMalformedObjective indicates non-finite objective coefficients or an
	// unknown Sense.
	ErrMalformedObjective = errors.New("lp: malformed objective")

	// ErrInfeasible is returned by Solution.Optimum when the feasible region
	// has no candidate vertices.
	ErrInfeasible = errors.New("lp: feasible region is empty")

	// ErrUnbounded is returned by Solution.Optimum when the objective improves
	// without limit inside the feasible region.
	ErrUnbounded = errors.New("lp: objective is unbounded")
)

func lpErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
