// SPDX-License-Identifier: MIT

// Package geom holds the rendering-agnostic primitives every simkit kernel
// returns: points, polylines, polygons and axis-aligned bounds.
//
// The conventions are those of graph paper: x grows to the right, y grows
// up. Nothing here draws; a Polyline is just an ordered []Point that the
// presentation layer is free to stroke however it likes.
//
// ✨ Helpers:
//   - Centroid / SortByAngle — order convex vertex sets into a simple polygon
//   - Dedupe                 — merge points closer than a tolerance
//   - Polygon.Area           — signed shoelace area (CCW positive)
//   - Bounds.Contains        — viewport membership with tolerance
package geom
