// SPDX-License-Identifier: MIT

package function

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates an identifier outside the catalog.
	ErrNotFound = errors.New("function: unknown function identifier")

	// ErrBadRange indicates a non-finite or inverted x/y range.
	ErrBadRange = errors.New("function: invalid range")

	// ErrBadSteps indicates a sample step count below 1.
	ErrBadSteps = errors.New("function: step count must be >= 1")

	// ErrBadSpan indicates a non-positive or non-finite tangent half-length.
	ErrBadSpan = errors.New("function: tangent half-length must be finite and > 0")
)

// functionErrorf tags err with the operation name, keeping errors.Is intact.
func functionErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
