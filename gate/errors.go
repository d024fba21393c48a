// SPDX-License-Identifier: MIT

package gate

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition indicates an event not accepted by the current state.
	ErrInvalidTransition = errors.New("gate: invalid transition")

	// ErrBadThreshold indicates an exploration threshold below 1.
	ErrBadThreshold = errors.New("gate: threshold must be >= 1")

	// ErrBadScore indicates a NaN, infinite or negative quiz score.
	ErrBadScore = errors.New("gate: score must be finite and >= 0")

	// ErrClosed indicates use of a Gate after Close.
	ErrClosed = errors.New("gate: closed")
)

func gateErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
