// SPDX-License-Identifier: MIT

package lp

import (
	"math"

	"github.com/katalvlaran/simkit/geom"
)

// Constraint is the half-plane A·x + B·y ≤ C.
type Constraint struct {
	A, B, C float64
	Label   string
}

// Value returns A·x + B·y at p.
func (c Constraint) Value(p geom.Point) float64 { return c.A*p.X + c.B*p.Y }

// Satisfied reports whether p satisfies c within tol.
func (c Constraint) Satisfied(p geom.Point, tol float64) bool {
	return c.Value(p) <= c.C+tol
}

// Segment returns the part of the boundary line A·x + B·y = C inside b, for
// drawing. ok is false when the line misses b or c is degenerate.
func (c Constraint) Segment(b geom.Bounds) (seg [2]geom.Point, ok bool) {
	if c.A == 0 && c.B == 0 {
		return seg, false
	}
	var hits []geom.Point
	if c.B != 0 {
		for _, x := range [...]float64{b.MinX, b.MaxX} {
			hits = append(hits, geom.Point{X: x, Y: (c.C - c.A*x) / c.B})
		}
	}
	if c.A != 0 {
		for _, y := range [...]float64{b.MinY, b.MaxY} {
			hits = append(hits, geom.Point{X: (c.C - c.B*y) / c.A, Y: y})
		}
	}
	const tol = 1e-9
	in := hits[:0]
	for _, p := range hits {
		if b.Contains(p, tol) {
			in = append(in, p)
		}
	}
	in = geom.Dedupe(in, tol)
	switch len(in) {
	case 0:
		return seg, false
	case 1:
		return [2]geom.Point{in[0], in[0]}, true
	default:
		return [2]geom.Point{in[0], in[1]}, true
	}
}

func (c Constraint) finite() bool {
	for _, v := range [...]float64{c.A, c.B, c.C} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// Sense is the optimisation direction.
type Sense int

const (
	// Maximize looks for the largest objective value.
	Maximize Sense = iota
	// Minimize looks for the smallest objective value.
	Minimize
)

// String returns "max" or "min".
func (s Sense) String() string {
	switch s {
	case Maximize:
		return "max"
	case Minimize:
		return "min"
	default:
		return "unknown"
	}
}

// Objective is A·x + B·y, optimised in the given Sense.
type Objective struct {
	A, B  float64
	Sense Sense
}

// Eval returns A·x + B·y at p.
func (o Objective) Eval(p geom.Point) float64 { return o.A*p.X + o.B*p.Y }

// better reports whether v strictly beats best in o's sense.
func (o Objective) better(v, best, eps float64) bool {
	if o.Sense == Minimize {
		return v < best-eps
	}

	return v > best+eps
}

// Status classifies a Solution.
type Status int

const (
	// StatusOptimal means an optimal vertex was found.
	StatusOptimal Status = iota
	// StatusInfeasible means no point satisfies every constraint.
	StatusInfeasible
	// StatusUnbounded means the objective improves without limit.
	StatusUnbounded
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

// Region is the derived feasible region.
type Region struct {
	// Vertices are ordered by polar angle about their centroid. Every vertex
	// satisfies every constraint within the solve tolerance.
	Vertices geom.Polygon
	// Bounded is false when the region extends to infinity; Vertices are
	// then the finite corners only.
	Bounded bool
}

// Empty reports whether the region has no vertices.
func (r Region) Empty() bool { return len(r.Vertices) == 0 }

// Evaluation is the objective value at one candidate vertex.
type Evaluation struct {
	Point geom.Point
	Value float64
}

// Optimum is the best candidate vertex.
type Optimum struct {
	Point geom.Point
	Value float64
}

// Solution is the full result of Solve.
type Solution struct {
	Status Status
	Region Region
	// Visible lists the region vertices inside the viewport, in region
	// order. Nil when no viewport was configured.
	Visible []geom.Point
	// Evaluations holds the objective at each candidate vertex, in angle
	// order.
	Evaluations []Evaluation

	optimum Optimum
}

// Optimum returns the optimal vertex, or ErrInfeasible / ErrUnbounded.
func (s Solution) Optimum() (Optimum, error) {
	switch s.Status {
	case StatusOptimal:
		return s.optimum, nil
	case StatusUnbounded:
		return Optimum{}, ErrUnbounded
	default:
		return Optimum{}, ErrInfeasible
	}
}
