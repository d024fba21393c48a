// SPDX-License-Identifier: MIT

// Package simkit is the math kernel behind a set of interactive classroom
// simulations: derivatives, Riemann sums, linear programming, 2×2 matrix
// transformations, vectors, complex numbers, descriptive statistics and the
// unit circle.
//
// 🚀 What is in the box?
//
//	Pure kernels that turn parameters into plain data (Points, Polylines,
//	result tables) for a rendering layer to draw:
//		• function/ — catalog of f with exact f′ and F, curve sampling, tangents
//		• riemann/  — left/right/midpoint rectangles, sum, exact integral, error
//		• lp/       — vertex enumeration for two-variable linear programs
//		• matrix/   — determinant, inverse, classification, shape transforms
//		• vector/   — add, subtract, dot, cross, angles, projection
//		• cplx/     — polar form, exact rotation by i, Euler's formula
//		• stats/    — a mutable sample with mean, median, modes, spread
//		• trig/     — sin/cos/tan with a safe tan, linked sine and cosine waves
//
//	And the two pieces with state:
//		• gate/     — the exploration → quiz progression machine, debounced
//		• catalog/  — simulation metadata (thresholds, opaque quiz payloads)
//
// ✨ Guarantees
//
//   - Kernels are pure and safe for concurrent use; nothing logs or does I/O.
//   - Numeric hazards are explicit: singular matrices, the tan asymptote and
//     a zero exact integral are reported, never leaked as NaN or ±Inf.
//   - Errors are sentinels, matched with errors.Is.
//
// geom/ holds the shared Point, Polyline, Polygon and Bounds types.
//
// A runnable walk through every kernel lives in examples/classroom.
package simkit
