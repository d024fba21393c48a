// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." for easy grepping. Callers
// match with errors.Is; operations wrap with matrixErrorf(op, ErrX).

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular is returned when |det| is within eps of zero and an
	// inverse was requested.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNaNInf signals a NaN or ±Inf entry where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNotFound indicates an unknown preset identifier.
	ErrNotFound = errors.New("matrix: unknown preset")

	// ErrEmptyShape indicates a shape with no vertices.
	ErrEmptyShape = errors.New("matrix: shape has no vertices")
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
