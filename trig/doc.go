// SPDX-License-Identifier: MIT

// Package trig is the TrigLinker: it couples a unit-circle angle to
// synchronized sine and cosine wave samples.
//
// 🚀 What it gives you
//
//   - Evaluate(θ) → sin, cos and tan, with tan reported as "undefined"
//     (TanDefined=false) instead of a huge finite artifact near the asymptote.
//   - CirclePoint(θ) → (cos θ, sin θ) on the unit circle.
//   - Waves → amplitude- and period-scaled sine/cosine Polylines over a fixed
//     number of x-axis samples, plus Link(θ) which places markers on both
//     curves for the same θ that drives the circle point.
//
// ⚙️ Conventions
//
// Every θ is in radians measured counter-clockwise from +x. The waves use the
// same units and origin: with the default amplitude and period, the sine
// marker for θ sits at height sin θ, exactly the y of the circle point.
//
// Everything here is pure; a Waves value is immutable once built.
package trig
