// SPDX-License-Identifier: MIT

package matrix

import "math"

// Kind is the cosmetic classification of a map.
type Kind int

// Kinds, listed in classification order.
const (
	KindIdentity Kind = iota
	KindRotation90CCW
	KindRotation180
	KindRotation90CW
	KindReflectX // across the x-axis: (x, y) → (x, −y)
	KindReflectY // across the y-axis: (x, y) → (−x, y)
	KindScale    // uniform k·I, k ≠ 0, 1
	KindShear
	KindCustom
)

var kindNames = [...]string{
	KindIdentity:      "Identity",
	KindRotation90CCW: "Rotation 90° CCW",
	KindRotation180:   "Rotation 180°",
	KindRotation90CW:  "Rotation 90° CW",
	KindReflectX:      "Reflection (x-axis)",
	KindReflectY:      "Reflection (y-axis)",
	KindScale:         "Uniform Scale",
	KindShear:         "Shear",
	KindCustom:        "Custom",
}

// String returns the display label, e.g. "Rotation 90° CCW".
func (k Kind) String() string {
	if k < KindIdentity || k > KindCustom {
		return "Unknown"
	}

	return kindNames[k]
}

// is reports whether m equals {a, b, c, d} entry-wise within eps.
func (m Matrix2x2) is(a, b, c, d, eps float64) bool {
	return math.Abs(m.A-a) <= eps && math.Abs(m.B-b) <= eps &&
		math.Abs(m.C-c) <= eps && math.Abs(m.D-d) <= eps
}

// Classify labels m in the fixed decision order; the first match wins.
// The label is for display only and carries no mathematical weight.
func (m Matrix2x2) Classify() Kind {
	const eps = DefaultEpsilon
	switch {
	case m.is(1, 0, 0, 1, eps):
		return KindIdentity
	case m.is(0, -1, 1, 0, eps):
		return KindRotation90CCW
	case m.is(-1, 0, 0, -1, eps):
		return KindRotation180
	case m.is(0, 1, -1, 0, eps):
		return KindRotation90CW
	case m.is(1, 0, 0, -1, eps):
		return KindReflectX
	case m.is(-1, 0, 0, 1, eps):
		return KindReflectY
	}
	offZero := math.Abs(m.B) <= eps && math.Abs(m.C) <= eps
	if offZero && math.Abs(m.A-m.D) <= eps && math.Abs(m.A) > eps {
		return KindScale
	}
	if math.Abs(m.A-1) <= eps && math.Abs(m.D-1) <= eps &&
		(math.Abs(m.B) <= eps) != (math.Abs(m.C) <= eps) {
		return KindShear
	}

	return KindCustom
}
