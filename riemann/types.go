// SPDX-License-Identifier: MIT

package riemann

import (
	"errors"

	"github.com/katalvlaran/simkit/geom"
)

// Rule selects where each rectangle samples f.
type Rule int

const (
	// Left samples at the left edge x₀.
	Left Rule = iota
	// Right samples at the right edge x₀ + Δx.
	Right
	// Midpoint samples at x₀ + Δx/2.
	Midpoint
)

// String returns the rule name.
func (r Rule) String() string {
	switch r {
	case Left:
		return "left"
	case Right:
		return "right"
	case Midpoint:
		return "midpoint"
	default:
		return "unknown"
	}
}

// ZeroExactTol is the |exact integral| at or below which a percentage
// error is reported as undefined.
const ZeroExactTol = 1e-12

var (
	// ErrBadBounds indicates a ≥ b or non-finite bounds.
	ErrBadBounds = errors.New("riemann: bounds must be finite with a < b")

	// ErrBadCount indicates a rectangle count below 1.
	ErrBadCount = errors.New("riemann: rectangle count must be >= 1")

	// ErrBadRule indicates a Rule outside Left/Right/Midpoint.
	ErrBadRule = errors.New("riemann: unknown sampling rule")

	// ErrOverflow indicates a height, sum or exact value that is not finite,
	// e.g. eˣ far past float64 range.
	ErrOverflow = errors.New("riemann: result overflows float64")
)

// Rect is one strip of the sum.
type Rect struct {
	X0      float64 // left edge
	Width   float64 // Δx
	Height  float64 // f(SampleX); may be negative
	SampleX float64
}

// Area returns the signed contribution Height·Width.
func (r Rect) Area() float64 { return r.Height * r.Width }

// Polygon returns the rectangle as a CCW polygon from (X0, 0). A negative
// height yields a rectangle below the axis.
func (r Rect) Polygon() geom.Polygon {
	x1 := r.X0 + r.Width
	if r.Height < 0 {
		return geom.Polygon{{X: r.X0, Y: r.Height}, {X: x1, Y: r.Height}, {X: x1, Y: 0}, {X: r.X0, Y: 0}}
	}

	return geom.Polygon{{X: r.X0, Y: 0}, {X: x1, Y: 0}, {X: x1, Y: r.Height}, {X: r.X0, Y: r.Height}}
}

// Result is a full integration report.
type Result struct {
	Rects    []Rect
	Width    float64 // Δx
	Sum      float64 // Σ height·Δx
	Exact    float64 // F(b) − F(a)
	AbsError float64 // |Sum − Exact|

	percent    float64
	percentDef bool
}

// PercentError returns AbsError/|Exact|·100 and true, or (0, false) when
// |Exact| ≤ ZeroExactTol and the percentage is undefined.
func (r Result) PercentError() (float64, bool) {
	return r.percent, r.percentDef
}
