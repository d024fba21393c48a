// SPDX-License-Identifier: MIT

package stats

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySample indicates a statistic requested on n = 0.
	ErrEmptySample = errors.New("stats: empty sample")

	// ErrNonFinite indicates an attempt to insert NaN or ±Inf.
	ErrNonFinite = errors.New("stats: value must be finite")

	// ErrValueNotFound indicates Remove of a value not in the sample.
	ErrValueNotFound = errors.New("stats: value not in sample")

	// ErrOutOfRange indicates RemoveAt with an invalid index.
	ErrOutOfRange = errors.New("stats: index out of range")
)

func statsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
