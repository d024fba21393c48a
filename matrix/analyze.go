// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/katalvlaran/simkit/geom"
)

// Analysis is everything a transformation view shows for one matrix.
type Analysis struct {
	Transformed []geom.Point
	Determinant float64
	Kind        Kind
	// Invertible is false when |det| ≤ DefaultEpsilon: the map collapses the
	// plane onto a line or a point.
	Invertible bool
	// OrientationFlipped is true for a negative determinant.
	OrientationFlipped bool
	// AreaScale is |det|, the factor by which every area is multiplied.
	AreaScale float64
}

// Analyze applies m to shape and reports determinant, classification and
// invertibility.
//
// Errors: ErrNaNInf for non-finite entries or vertices, ErrEmptyShape.
func Analyze(m Matrix2x2, shape []geom.Point) (Analysis, error) {
	if err := ValidateFinite(m); err != nil {
		return Analysis{}, matrixErrorf(opAnalyze, err)
	}
	if err := ValidateShape(shape); err != nil {
		return Analysis{}, matrixErrorf(opAnalyze, err)
	}
	det := m.Det()
	inv := m.Invertible(DefaultEpsilon)

	return Analysis{
		Transformed:        m.Transform(shape),
		Determinant:        det,
		Kind:               m.Classify(),
		Invertible:         inv,
		OrientationFlipped: inv && det < 0,
		AreaScale:          math.Abs(det),
	}, nil
}
