// SPDX-License-Identifier: MIT
// Package: matrix
//
// matrix2x2.go - the 2×2 linear map and its closed-form algebra.

package matrix

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/simkit/geom"
)

// DefaultEpsilon is the tolerance for singularity and classification checks.
const DefaultEpsilon = 1e-9

const (
	opInverse = "Inverse"
	opAnalyze = "Analyze"
	opPreset  = "Preset"
)

// Matrix2x2 is the map (x, y) → (A·x + B·y, C·x + D·y):
//
//	| A  B |
//	| C  D |
type Matrix2x2 struct {
	A, B, C, D float64
}

// Identity returns the identity map.
func Identity() Matrix2x2 { return Matrix2x2{A: 1, D: 1} }

// Apply maps a single point.
func (m Matrix2x2) Apply(p geom.Point) geom.Point {
	return geom.Point{X: m.A*p.X + m.B*p.Y, Y: m.C*p.X + m.D*p.Y}
}

// Transform maps every vertex of shape, preserving order.
func (m Matrix2x2) Transform(shape []geom.Point) []geom.Point {
	out := make([]geom.Point, len(shape))
	for i, p := range shape {
		out[i] = m.Apply(p)
	}

	return out
}

// Det returns A·D − B·C.
func (m Matrix2x2) Det() float64 { return m.A*m.D - m.B*m.C }

// Trace returns A + D.
func (m Matrix2x2) Trace() float64 { return m.A + m.D }

// Mul returns the composition m∘n (apply n first, then m).
func (m Matrix2x2) Mul(n Matrix2x2) Matrix2x2 {
	return Matrix2x2{
		A: m.A*n.A + m.B*n.C, B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C, D: m.C*n.B + m.D*n.D,
	}
}

// Columns returns the images of the basis vectors î and ĵ.
func (m Matrix2x2) Columns() (iHat, jHat geom.Point) {
	return geom.Point{X: m.A, Y: m.C}, geom.Point{X: m.B, Y: m.D}
}

// Invertible reports whether |det| > eps.
func (m Matrix2x2) Invertible(eps float64) bool {
	return math.Abs(m.Det()) > eps
}

// Inverse returns the closed-form inverse 1/det·[D −B; −C A]. When
// |det| ≤ DefaultEpsilon the map collapses the plane and ErrSingular is
// returned without dividing.
func (m Matrix2x2) Inverse() (Matrix2x2, error) {
	if err := ValidateFinite(m); err != nil {
		return Matrix2x2{}, matrixErrorf(opInverse, err)
	}
	det := m.Det()
	if math.Abs(det) <= DefaultEpsilon {
		return Matrix2x2{}, matrixErrorf(opInverse, ErrSingular)
	}
	inv := 1 / det

	return Matrix2x2{A: m.D * inv, B: -m.B * inv, C: -m.C * inv, D: m.A * inv}, nil
}

// Eigenvalues returns the two roots of λ² − tr·λ + det = 0, larger real
// part first. Rotations yield a complex-conjugate pair.
func (m Matrix2x2) Eigenvalues() (complex128, complex128) {
	tr, det := m.Trace(), m.Det()
	disc := cmplx.Sqrt(complex(tr*tr-4*det, 0))
	half := complex(tr/2, 0)

	return half + disc/2, half - disc/2
}
