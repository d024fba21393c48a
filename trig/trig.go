// SPDX-License-Identifier: MIT

package trig

import (
	"math"

	"github.com/katalvlaran/simkit/geom"
)

// TanEpsilon is the |cos θ| threshold below which tan θ is undefined.
const TanEpsilon = 1e-10

// Ratios holds the three ratios for one angle.
// Tan is 0 whenever TanDefined is false; it is never ±Inf or NaN.
type Ratios struct {
	Theta      float64
	Sin        float64
	Cos        float64
	Tan        float64
	TanDefined bool
}

// Evaluate computes the ratios of θ. Any real θ is accepted; non-finite θ
// yields NaN sin/cos and an undefined tan.
func Evaluate(theta float64) Ratios {
	s, c := math.Sincos(theta)
	r := Ratios{Theta: theta, Sin: s, Cos: c}
	if math.Abs(c) > TanEpsilon {
		r.Tan = s / c
		r.TanDefined = true
	}

	return r
}

// Normalize folds θ into [0, 2π).
func Normalize(theta float64) float64 {
	t := math.Mod(theta, 2*math.Pi)
	if t < 0 {
		t += 2 * math.Pi
	}
	if t >= 2*math.Pi {
		t = 0
	}

	return t + 0
}

// CirclePoint returns (cos θ, sin θ).
func CirclePoint(theta float64) geom.Point {
	s, c := math.Sincos(theta)

	return geom.Point{X: c, Y: s}
}

// Degrees converts radians to degrees.
func Degrees(theta float64) float64 { return theta * 180 / math.Pi }
