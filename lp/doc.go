// SPDX-License-Identifier: MIT

// Package lp solves two-variable linear programs by vertex enumeration.
//
// 🚀 How it works
//
//	Every constraint a·x + b·y ≤ c contributes its boundary line; x = 0 and
//	y = 0 are added unless WithoutNonNegativity is given. Each pair of
//	non-parallel lines meets in exactly one point; the points that satisfy
//	every constraint (within a tolerance) are the vertices of the feasible
//	region. Sorted by polar angle about their centroid they form a simple
//	convex polygon, and the objective's optimum is attained at one of them
//	(fundamental theorem of linear programming). No gradient search is used.
//
// ✨ Beyond the textbook loop:
//   - Feasibility and visibility are kept apart: WithViewport reports which
//     vertices fall inside the plotted area without discarding the others.
//     WithStrictViewport restores "only visible vertices are candidates".
//   - Unbounded regions are detected with a recession-ray test; when the
//     objective grows without limit along such a ray the Status is
//     Unbounded rather than a misleading vertex optimum.
//   - A half-plane or strip has no vertex at all. When the objective is
//     bounded on it, the optimum is a point on the best boundary line.
//   - An empty region is a result (StatusInfeasible), not an error. Errors
//     are reserved for malformed input (ErrMalformedConstraint, ...).
//
// ⚙️ Usage:
//
//	sol, err := lp.Solve([]lp.Constraint{
//		{A: 1, B: 1, C: 6, Label: "labour"},
//		{A: 2, B: 1, C: 8, Label: "material"},
//		{A: 0, B: 1, C: 4, Label: "demand"},
//	}, lp.Objective{A: 3, B: 2, Sense: lp.Maximize})
//	opt, err := sol.Optimum() // (2, 4) → 14
//
// Complexity: O(L²·K) for L boundary lines and K constraints.
package lp
