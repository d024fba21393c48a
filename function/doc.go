// SPDX-License-Identifier: MIT

// Package function is the FunctionEvaluator: a small, closed catalog of
// named functions with exact derivatives and antiderivatives.
//
// 🚀 What is in the catalog?
//
//	Polynomial:    Linear x, Square x², Cube x³, CubicWave x³−3x
//	Trigonometric: Sine sin x, Cosine cos x
//	Exponential:   Exp eˣ, ExpDecay e⁻ˣ
//
// Every entry is a row (f, f′, F) in one static table keyed by the tagged
// variant ID, so adding a function is a compile-visible change rather than a
// new string in a switch. There is no expression parser.
//
// ⚙️ Usage:
//
//	v, err := function.Evaluate(function.Square, 1.5) // v.Y=2.25, v.Slope=3
//	runs, err := function.SampleCurve(function.Exp,
//		function.Range{Min: -3, Max: 3}, function.Range{Min: -1, Max: 10}, 120)
//	seg, err := function.TangentLine(function.Sine, 0)
//
// Curves are returned as a sequence of polylines: points outside the y-range
// are dropped, and each contiguous visible run is its own polyline so no
// spurious segment joins the pieces.
package function
