// SPDX-License-Identifier: MIT

// Package cplx is the complex-number engine behind the Argand-plane
// simulation.
//
// Rotation by i is the exact swap-and-negate (re, im) → (−im, re), never a
// trigonometric rotation, so RotateByI applied twice is bit-for-bit the
// same as Neg. Argument is reported in (−π, π].
package cplx

import (
	"fmt"
	"math"

	"github.com/katalvlaran/simkit/geom"
)

// Value is re + im·i.
type Value struct {
	Re, Im float64
}

// Polar is the modulus/argument form of a Value.
type Polar struct {
	Modulus  float64
	Argument float64 // radians in (−π, π]
}

// Modulus returns |z|.
func (z Value) Modulus() float64 { return math.Hypot(z.Re, z.Im) }

// Argument returns atan2(im, re) folded into (−π, π]. The origin reports 0.
func (z Value) Argument() float64 {
	if z.Re == 0 && z.Im == 0 {
		return 0 // either zero may be -0
	}
	arg := math.Atan2(z.Im, z.Re)
	if arg == -math.Pi {
		return math.Pi // atan2(−0, re<0)
	}

	return arg
}

// ToPolar converts to modulus/argument form.
func ToPolar(z Value) Polar {
	return Polar{Modulus: z.Modulus(), Argument: z.Argument()}
}

// FromPolar converts r·e^{iθ} to rectangular form.
func FromPolar(p Polar) Value {
	sin, cos := math.Sincos(p.Argument)

	return Value{Re: p.Modulus * cos, Im: p.Modulus * sin}
}

// RotateByI returns i·z = (−im, re): an exact 90° CCW turn.
func RotateByI(z Value) Value { return Value{Re: -z.Im, Im: z.Re} }

// RotateByIN returns iᵏ·z using only exact quarter turns; k may be negative.
func RotateByIN(z Value, k int) Value {
	switch ((k % 4) + 4) % 4 {
	case 1:
		return RotateByI(z)
	case 2:
		return RotateByI(RotateByI(z))
	case 3:
		return RotateByI(RotateByI(RotateByI(z)))
	default:
		return z
	}
}

// Conjugate returns (re, −im).
func Conjugate(z Value) Value { return Value{Re: z.Re, Im: -z.Im} }

// Neg returns −z.
func Neg(z Value) Value { return Value{Re: -z.Re, Im: -z.Im} }

// Add returns a + b.
func Add(a, b Value) Value { return Value{Re: a.Re + b.Re, Im: a.Im + b.Im} }

// Mul returns a·b.
func Mul(a, b Value) Value {
	return Value{Re: a.Re*b.Re - a.Im*b.Im, Im: a.Re*b.Im + a.Im*b.Re}
}

// Point returns z as a point of the Argand plane.
func (z Value) Point() geom.Point { return geom.Point{X: z.Re, Y: z.Im} }

// String formats z as "3 + 2i" / "3 - 2i".
func (z Value) String() string {
	if z.Im < 0 {
		return fmt.Sprintf("%g - %gi", z.Re, -z.Im)
	}

	return fmt.Sprintf("%g + %gi", z.Re, z.Im)
}

// EulerSample returns e^{iθ} = (cos θ, sin θ).
func EulerSample(theta float64) Value {
	sin, cos := math.Sincos(theta)

	return Value{Re: cos, Im: sin}
}

// EulerTrace samples e^{iθ} for θ in [0, thetaEnd] with steps segments,
// the path traced so far on the unit circle. steps < 1 yields nil.
func EulerTrace(thetaEnd float64, steps int) geom.Polyline {
	if steps < 1 || math.IsNaN(thetaEnd) || math.IsInf(thetaEnd, 0) {
		return nil
	}
	out := make(geom.Polyline, steps+1)
	for i := 0; i <= steps; i++ {
		out[i] = EulerSample(thetaEnd * float64(i) / float64(steps)).Point()
	}

	return out
}
