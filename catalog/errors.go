// SPDX-License-Identifier: MIT

package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates an unknown simulation id.
	ErrNotFound = errors.New("catalog: simulation not found")

	// ErrDecode indicates malformed YAML or unknown fields.
	ErrDecode = errors.New("catalog: decode failed")

	// ErrInvalid indicates a document that decoded but failed validation.
	ErrInvalid = errors.New("catalog: invalid catalog")
)

func catalogErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
