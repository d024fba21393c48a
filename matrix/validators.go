// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the input checks shared by Analyze/Inverse.
//  - Return plain sentinels; call sites wrap with matrixErrorf.

package matrix

import (
	"math"

	"github.com/katalvlaran/simkit/geom"
)

// ValidateFinite ensures every entry of m is a finite number.
// Complexity: O(1).
func ValidateFinite(m Matrix2x2) error {
	for _, v := range [...]float64{m.A, m.B, m.C, m.D} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
	}

	return nil
}

// ValidateShape ensures shape is non-empty and every vertex is finite.
// Complexity: O(len(shape)).
func ValidateShape(shape []geom.Point) error {
	if len(shape) == 0 {
		return ErrEmptyShape
	}
	for _, p := range shape {
		if !p.Finite() {
			return ErrNaNInf
		}
	}

	return nil
}
