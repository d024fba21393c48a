// SPDX-License-Identifier: MIT

// Package matrix is the MatrixAnalyzer: 2×2 linear maps acting on plane
// shapes.
//
// A Matrix2x2{A, B, C, D} maps (x, y) to (A·x + B·y, C·x + D·y). Analyze
// applies it to every vertex of a shape and reports what the map does:
//
//   - Det() — the signed area scale factor. Negative means orientation is
//     flipped; zero means the plane collapses onto a line or a point.
//   - Classify() — a cosmetic label chosen in a fixed order:
//     Identity → Rotation (90° CCW, 180°, 90° CW) → Reflection (x-axis,
//     y-axis) → uniform Scale → Shear → Custom. The first match wins.
//   - Inverse() — only for |det| > eps; a singular matrix reports
//     ErrSingular and no inverse is attempted.
//
// Presets ("rotate90", "reflect-x", ...) give simulations named starting
// points; unknown names fail with ErrNotFound.
package matrix
