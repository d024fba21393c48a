// SPDX-License-Identifier: MIT

// Package riemann approximates definite integrals of catalog functions with
// rectangle sums and compares them with the closed-form value.
//
// 🚀 What is a Riemann sum?
//
//	Split [a, b] into n strips of width Δx = (b−a)/n, sample f once per strip
//	and add up height·Δx. The sample point is chosen by a Rule:
//	  • Left     — x₀
//	  • Right    — x₀ + Δx
//	  • Midpoint — x₀ + Δx/2
//
// Heights may be negative; such rectangles hang below the axis and subtract
// from the sum. As n grows, every rule converges to F(b) − F(a) for the
// continuous functions in the catalog.
//
// ⚙️ Usage:
//
//	a, b := riemann.ClampBounds(lo, hi, 0.1) // call-boundary ordering
//	res, err := riemann.Integrate(function.Square, a, b, 1000, riemann.Midpoint)
//	if pct, ok := res.PercentError(); ok { ... } else { /* show "—" */ }
//
// Complexity: O(n) time and memory (one Rect per strip).
package riemann
