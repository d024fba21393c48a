// SPDX-License-Identifier: MIT
// Package: simkit/geom
//
// geom.go - points, polylines, polygons and their small helpers.

package geom

import (
	"math"
	"sort"
)

// Point is an immutable plane coordinate.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Finite reports whether both coordinates are finite numbers.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Polyline is an ordered, open sequence of points.
type Polyline []Point

// Polygon is a closed sequence of points; the edge last→first is implied,
// so the first point is NOT repeated at the end.
type Polygon []Point

// Area returns the signed shoelace area: positive for counter-clockwise
// vertex order, negative for clockwise, 0 for fewer than 3 vertices.
func (pg Polygon) Area() float64 {
	n := len(pg)
	if n < 3 {
		return 0
	}
	var s float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		s += pg[i].X*pg[j].Y - pg[j].X*pg[i].Y
	}

	return s / 2
}

// Closed returns the polygon as a polyline with the first point repeated
// at the end, for renderers that only know how to stroke open paths.
func (pg Polygon) Closed() Polyline {
	if len(pg) == 0 {
		return nil
	}
	out := make(Polyline, 0, len(pg)+1)
	out = append(out, pg...)

	return append(out, pg[0])
}

// Bounds is an axis-aligned rectangle [MinX,MaxX]×[MinY,MaxY].
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Valid reports whether b is finite and non-inverted.
func (b Bounds) Valid() bool {
	for _, v := range [...]float64{b.MinX, b.MaxX, b.MinY, b.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return b.MinX <= b.MaxX && b.MinY <= b.MaxY
}

// Contains reports whether p lies inside b, widened by tol on every side.
func (b Bounds) Contains(p Point, tol float64) bool {
	return p.X >= b.MinX-tol && p.X <= b.MaxX+tol &&
		p.Y >= b.MinY-tol && p.Y <= b.MaxY+tol
}

// Centroid returns the arithmetic mean of pts (vertex centroid).
// An empty input yields the origin.
func Centroid(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(pts))

	return Point{X: sx / n, Y: sy / n}
}

// SortByAngle orders pts in place by polar angle about their centroid,
// ascending from -π. Ties (collinear with the centroid) are broken by
// distance to the centroid, then by X and Y, so the result is deterministic.
// For a convex vertex set the result is a simple counter-clockwise polygon.
func SortByAngle(pts []Point) {
	c := Centroid(pts)
	sort.SliceStable(pts, func(i, j int) bool {
		ai := math.Atan2(pts[i].Y-c.Y, pts[i].X-c.X)
		aj := math.Atan2(pts[j].Y-c.Y, pts[j].X-c.X)
		if ai != aj {
			return ai < aj
		}
		di, dj := pts[i].Dist(c), pts[j].Dist(c)
		if di != dj {
			return di < dj
		}
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}

		return pts[i].Y < pts[j].Y
	})
}

// Dedupe returns pts with every point closer than tol to an earlier kept
// point removed. The first occurrence wins; order is preserved.
func Dedupe(pts []Point, tol float64) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		dup := false
		for _, q := range out {
			if math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}

	return out
}
