// SPDX-License-Identifier: MIT

// Package vector is plane vector algebra for the vector-addition playground.
//
// Angles are in degrees. AngleDeg uses atan2 so the quadrant survives;
// AngleBetween uses a clamped arccos and refuses zero vectors with
// ErrDegenerateVector instead of returning NaN.
package vector

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/simkit/geom"
)

// ErrDegenerateVector indicates a zero-magnitude vector where a direction
// is required.
var ErrDegenerateVector = errors.New("vector: zero-magnitude vector")

// Vec is a 2D vector.
type Vec struct {
	X, Y float64
}

// FromPoint converts a position to the vector from the origin.
func FromPoint(p geom.Point) Vec { return Vec{X: p.X, Y: p.Y} }

// Point returns the tip of v drawn from the origin.
func (v Vec) Point() geom.Point { return geom.Point{X: v.X, Y: v.Y} }

// Add returns a + b.
func Add(a, b Vec) Vec { return Vec{X: a.X + b.X, Y: a.Y + b.Y} }

// Sub returns a − b.
func Sub(a, b Vec) Vec { return Vec{X: a.X - b.X, Y: a.Y - b.Y} }

// Scale returns k·v.
func Scale(v Vec, k float64) Vec { return Vec{X: k * v.X, Y: k * v.Y} }

// Dot returns a·b.
func Dot(a, b Vec) float64 { return a.X*b.X + a.Y*b.Y }

// Cross returns the z-component of a×b (signed parallelogram area).
func Cross(a, b Vec) float64 { return a.X*b.Y - a.Y*b.X }

// Magnitude returns |v|.
func Magnitude(v Vec) float64 { return math.Hypot(v.X, v.Y) }

// AngleDeg returns the direction of v in degrees in (−180, 180], measured
// CCW from +x. The zero vector reports 0.
func AngleDeg(v Vec) float64 {
	if v.X == 0 && v.Y == 0 {
		return 0 // either zero may be -0
	}
	deg := math.Atan2(v.Y, v.X) * 180 / math.Pi
	if deg == -180 {
		return 180 // atan2(−0, x<0)
	}

	return deg
}

// AngleBetween returns the unsigned angle between a and b in degrees,
// in [0, 180].
func AngleBetween(a, b Vec) (float64, error) {
	ma, mb := Magnitude(a), Magnitude(b)
	if ma == 0 || mb == 0 {
		return 0, fmt.Errorf("AngleBetween: %w", ErrDegenerateVector)
	}
	// Rounding can push the cosine a hair outside [−1, 1].
	cos := math.Max(-1, math.Min(1, Dot(a, b)/(ma*mb)))

	return math.Acos(cos) * 180 / math.Pi, nil
}

// Project returns the projection of a onto b.
func Project(a, b Vec) (Vec, error) {
	bb := Dot(b, b)
	if bb == 0 {
		return Vec{}, fmt.Errorf("Project: %w", ErrDegenerateVector)
	}

	return Scale(b, Dot(a, b)/bb), nil
}

// Parallelogram returns {origin, a, a+b, b}, the display figure of the
// parallelogram rule for a + b.
func Parallelogram(a, b Vec) geom.Polygon {
	return geom.Polygon{{}, a.Point(), Add(a, b).Point(), b.Point()}
}
