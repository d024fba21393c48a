// SPDX-License-Identifier: MIT
// Package: simkit/lp
//
// solve.go - vertex enumeration and recession-ray boundedness.

package lp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/simkit/geom"
)

const opSolve = "Solve"

// dirTol is the slack used when testing unit directions against constraint
// normals; it is independent of the (much looser) point tolerance.
const dirTol = 1e-9

// mergeEps is the relative distance below which two intersections are the
// same vertex; it is scaled by the largest coordinate magnitude.
const mergeEps = 1e-9

// tieEps is the margin a later vertex must win by to replace the current
// best, so the first vertex in angle order keeps ties.
const tieEps = 1e-9

// Solve enumerates the vertices of {p : c.Value(p) ≤ c.C ∀c} and optimises
// obj over them.
//
// Implementation:
//   - Stage 1 (Validate): finite coefficients, no a=b=0 constraint, known Sense.
//   - Stage 2 (Lines): explicit boundaries plus x=0, y=0 when non-negative.
//   - Stage 3 (Enumerate): intersect every pair; skip |det| ≤ parallel eps.
//   - Stage 4 (Filter): keep points satisfying every constraint within tol,
//     merge coincident intersections (relative 1e-9), order by polar
//     angle about the centroid.
//   - Stage 5 (Viewport): split visible vertices; strict mode narrows candidates.
//   - Stage 6 (Bounded): recession-ray test for the region and the objective.
//   - Stage 7 (Optimise): best candidate, first in angle order wins ties.
//
// An empty region is StatusInfeasible with a nil error. A non-empty region
// without vertices (a half-plane or strip, possible only without
// non-negativity) is optimised along its shared normal: when obj is bounded
// there, Optimum is the point of the best boundary line closest to the
// origin and Evaluations is empty.
func Solve(constraints []Constraint, obj Objective, opts ...Option) (Solution, error) {
	o := gatherOptions(opts...)

	// Stage 1: validate.
	for i, c := range constraints {
		if !c.finite() || (c.A == 0 && c.B == 0) {
			return Solution{}, lpErrorf(fmt.Sprintf("%s: constraint %d (%q)", opSolve, i, c.Label), ErrMalformedConstraint)
		}
	}
	if math.IsNaN(obj.A) || math.IsNaN(obj.B) || math.IsInf(obj.A, 0) || math.IsInf(obj.B, 0) ||
		(obj.Sense != Maximize && obj.Sense != Minimize) {
		return Solution{}, lpErrorf(opSolve, ErrMalformedObjective)
	}

	// Stage 2: the full half-plane set doubles as the line set.
	all := make([]Constraint, 0, len(constraints)+2)
	all = append(all, constraints...)
	if o.nonNegative {
		all = append(all,
			Constraint{A: -1, B: 0, C: 0, Label: "x >= 0"},
			Constraint{A: 0, B: -1, C: 0, Label: "y >= 0"},
		)
	}

	// Stages 3-4: enumerate and filter.
	var pts []geom.Point
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			p, ok := intersect(all[i], all[j], o.parallelEps)
			if !ok || !feasible(all, p, o.tol) {
				continue
			}
			pts = append(pts, p)
		}
	}
	pts = geom.Dedupe(pts, mergeTol(pts))
	geom.SortByAngle(pts)

	sol := Solution{Region: Region{Vertices: geom.Polygon(pts)}}

	// Stage 5: viewport.
	candidates := pts
	if o.viewport != nil {
		sol.Visible = make([]geom.Point, 0, len(pts))
		for _, p := range pts {
			if o.viewport.Contains(p, o.tol) {
				sol.Visible = append(sol.Visible, p)
			}
		}
		if o.strictView {
			candidates = sol.Visible
		}
	}

	// Stage 6: boundedness.
	rays := recessionRays(all)
	sol.Region.Bounded = len(rays) == 0
	if len(pts) == 0 {
		st, ok := vertexFreeStrip(all)
		if !ok || st.lo > st.hi+o.tol {
			sol.Region.Bounded = true
			sol.Status = StatusInfeasible

			return sol, nil
		}
		if improvesAlong(obj, rays) {
			sol.Status = StatusUnbounded

			return sol, nil
		}
		opt, ok := st.optimum(obj)
		if !ok {
			sol.Status = StatusUnbounded

			return sol, nil
		}
		sol.Status = StatusOptimal
		sol.optimum = opt

		return sol, nil
	}
	if !(o.strictView && o.viewport != nil) && improvesAlong(obj, rays) {
		sol.Status = StatusUnbounded
		sol.Evaluations = evaluate(obj, candidates)

		return sol, nil
	}
	if len(candidates) == 0 {
		// Strict viewport hid every vertex.
		sol.Status = StatusInfeasible

		return sol, nil
	}

	// Stage 7: optimise.
	sol.Evaluations = evaluate(obj, candidates)
	best := sol.Evaluations[0]
	for _, ev := range sol.Evaluations[1:] {
		if obj.better(ev.Value, best.Value, tieEps) {
			best = ev
		}
	}
	sol.Status = StatusOptimal
	sol.optimum = Optimum{Point: best.Point, Value: best.Value}

	return sol, nil
}

func evaluate(obj Objective, pts []geom.Point) []Evaluation {
	out := make([]Evaluation, len(pts))
	for i, p := range pts {
		out[i] = Evaluation{Point: p, Value: obj.Eval(p)}
	}

	return out
}

// intersect solves the 2×2 system of the two boundary lines by Cramer's rule.
func intersect(p, q Constraint, eps float64) (geom.Point, bool) {
	det := p.A*q.B - q.A*p.B
	if math.Abs(det) <= eps {
		return geom.Point{}, false
	}

	x := (p.C*q.B - q.C*p.B) / det
	y := (p.A*q.C - q.A*p.C) / det

	// +0 folds the -0 produced by the axis lines.
	return geom.Point{X: x + 0, Y: y + 0}, true
}

func feasible(all []Constraint, p geom.Point, tol float64) bool {
	for _, c := range all {
		if !c.Satisfied(p, tol) {
			return false
		}
	}

	return true
}

// recessionRays returns the unit directions d with a·d ≤ 0 for every
// constraint. The candidates (axes, ± each boundary direction, each inward
// normal) generate every polyhedral cone in the plane, so an empty result
// means the recession cone is {0} and a non-empty region is bounded.
func recessionRays(all []Constraint) []geom.Point {
	cands := []geom.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}
	for _, c := range all {
		n := math.Hypot(c.A, c.B)
		a, b := c.A/n, c.B/n
		cands = append(cands,
			geom.Point{X: b, Y: -a},
			geom.Point{X: -b, Y: a},
			geom.Point{X: -a, Y: -b},
		)
	}
	var rays []geom.Point
	for _, d := range cands {
		ok := true
		for _, c := range all {
			if c.A*d.X+c.B*d.Y > dirTol*math.Hypot(c.A, c.B) {
				ok = false
				break
			}
		}
		if ok {
			rays = append(rays, d)
		}
	}

	return rays
}

// improvesAlong reports whether obj strictly improves along some ray.
func improvesAlong(obj Objective, rays []geom.Point) bool {
	scale := math.Hypot(obj.A, obj.B)
	for _, d := range rays {
		v := obj.A*d.X + obj.B*d.Y
		if obj.Sense == Minimize {
			v = -v
		}
		if v > dirTol*scale {
			return true
		}
	}

	return false
}

// mergeTol is the dedupe distance for pts: mergeEps relative to the largest
// coordinate, never below mergeEps itself.
func mergeTol(pts []geom.Point) float64 {
	scale := 1.0
	for _, p := range pts {
		scale = math.Max(scale, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}

	return mergeEps * scale
}

// strip is a vertex-free region lo ≤ u·p ≤ hi for a unit normal u.
type strip struct {
	u      geom.Point
	lo, hi float64
}

// vertexFreeStrip describes the region when every normal is parallel (or
// there are no constraints). ok is false when two normals are not parallel;
// such a region would have a vertex, so an empty vertex list means it is
// empty.
func vertexFreeStrip(all []Constraint) (strip, bool) {
	st := strip{u: geom.Point{X: 1}, lo: math.Inf(-1), hi: math.Inf(1)}
	if len(all) == 0 {
		return st, true
	}
	n := math.Hypot(all[0].A, all[0].B)
	st.u = geom.Point{X: all[0].A / n, Y: all[0].B / n}
	for _, c := range all {
		cn := math.Hypot(c.A, c.B)
		// c.A·x + c.B·y = k·(u·p) with k = ±|c|.
		k := c.A*st.u.X + c.B*st.u.Y
		if math.Abs(math.Abs(k)-cn) > dirTol*cn {
			return strip{}, false
		}
		bound := c.C / k
		if k > 0 {
			st.hi = math.Min(st.hi, bound)
		} else {
			st.lo = math.Max(st.lo, bound)
		}
	}

	return st, true
}

// optimum picks the best level t of u·p for obj, assuming obj does not
// improve along the strip's lines. A constant objective takes the level
// nearest 0. ok is false when the chosen level is infinite.
func (st strip) optimum(obj Objective) (Optimum, bool) {
	s := obj.A*st.u.X + obj.B*st.u.Y
	if obj.Sense == Minimize {
		s = -s
	}
	var t float64
	switch {
	case math.Abs(s) <= dirTol*math.Hypot(obj.A, obj.B):
		t = math.Max(st.lo, math.Min(st.hi, 0))
	case s > 0:
		t = st.hi
	default:
		t = st.lo
	}
	if math.IsInf(t, 0) {
		return Optimum{}, false
	}
	p := geom.Point{X: t*st.u.X + 0, Y: t*st.u.Y + 0}

	return Optimum{Point: p, Value: obj.Eval(p)}, true
}
