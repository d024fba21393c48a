// SPDX-License-Identifier: MIT

package lp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simkit/geom"
	"github.com/katalvlaran/simkit/lp"
)

func classroom() []lp.Constraint {
	return []lp.Constraint{
		{A: 1, B: 1, C: 6, Label: "x+y<=6"},
		{A: 2, B: 1, C: 8, Label: "2x+y<=8"},
		{A: 0, B: 1, C: 4, Label: "y<=4"},
	}
}

// TestSolve_Classroom is the worked example: the region is the quadrilateral
// (0,0),(4,0),(2,4),(0,4) and 3x+2y peaks at (2,4) with 14.
func TestSolve_Classroom(t *testing.T) {
	sol, err := lp.Solve(classroom(), lp.Objective{A: 3, B: 2, Sense: lp.Maximize})
	require.NoError(t, err)
	require.Equal(t, lp.StatusOptimal, sol.Status)
	require.True(t, sol.Region.Bounded)
	require.Equal(t, geom.Polygon{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 4}, {X: 0, Y: 4}}, sol.Region.Vertices)

	opt, err := sol.Optimum()
	require.NoError(t, err)
	assert.Equal(t, geom.Point{X: 2, Y: 4}, opt.Point)
	assert.Equal(t, 14.0, opt.Value)
	require.Len(t, sol.Evaluations, 4)
	assert.Equal(t, 12.0, sol.Evaluations[1].Value) // (4,0)
}

func TestSolve_Minimize(t *testing.T) {
	sol, err := lp.Solve(classroom(), lp.Objective{A: 3, B: 2, Sense: lp.Minimize})
	require.NoError(t, err)
	opt, err := sol.Optimum()
	require.NoError(t, err)
	assert.Equal(t, geom.Point{}, opt.Point)
	assert.Equal(t, 0.0, opt.Value)
}

// TestSolve_TieFirstInAngleOrder: x+y is 6 at both (6,0) and (0,6); (6,0)
// comes first in angle order and wins.
func TestSolve_TieFirstInAngleOrder(t *testing.T) {
	sol, err := lp.Solve([]lp.Constraint{{A: 1, B: 1, C: 6}}, lp.Objective{A: 1, B: 1})
	require.NoError(t, err)
	opt, err := sol.Optimum()
	require.NoError(t, err)
	assert.Equal(t, geom.Point{X: 6, Y: 0}, opt.Point)
}

func TestSolve_Infeasible(t *testing.T) {
	sol, err := lp.Solve([]lp.Constraint{{A: 1, B: 1, C: -1}}, lp.Objective{A: 1, B: 1})
	require.NoError(t, err, "an empty region is a result, not an error")
	assert.Equal(t, lp.StatusInfeasible, sol.Status)
	assert.True(t, sol.Region.Empty())

	_, err = sol.Optimum()
	require.ErrorIs(t, err, lp.ErrInfeasible)
}

func TestSolve_Malformed(t *testing.T) {
	_, err := lp.Solve([]lp.Constraint{{A: 0, B: 0, C: 1}}, lp.Objective{A: 1})
	require.ErrorIs(t, err, lp.ErrMalformedConstraint)

	_, err = lp.Solve(classroom(), lp.Objective{A: 1, Sense: lp.Sense(9)})
	require.ErrorIs(t, err, lp.ErrMalformedObjective)
}

// TestSolve_Unbounded uses x − y ≤ 1 in the first quadrant: the region is
// open upwards, so maximising x+y is unbounded while minimising is not.
func TestSolve_Unbounded(t *testing.T) {
	cons := []lp.Constraint{{A: 1, B: -1, C: 1}}

	sol, err := lp.Solve(cons, lp.Objective{A: 1, B: 1, Sense: lp.Maximize})
	require.NoError(t, err)
	assert.Equal(t, lp.StatusUnbounded, sol.Status)
	assert.False(t, sol.Region.Bounded)
	_, err = sol.Optimum()
	require.ErrorIs(t, err, lp.ErrUnbounded)

	sol, err = lp.Solve(cons, lp.Objective{A: 1, B: 1, Sense: lp.Minimize})
	require.NoError(t, err)
	assert.Equal(t, lp.StatusOptimal, sol.Status)
	assert.False(t, sol.Region.Bounded)
	opt, err := sol.Optimum()
	require.NoError(t, err)
	assert.Equal(t, geom.Point{}, opt.Point)
}

// TestSolve_Viewport keeps the out-of-view vertices feasible by default and
// drops them from candidacy only in strict mode.
func TestSolve_Viewport(t *testing.T) {
	cons := []lp.Constraint{{A: 1, B: 1, C: 20}}
	view := geom.Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10}
	obj := lp.Objective{A: 1, B: 0}

	sol, err := lp.Solve(cons, obj, lp.WithViewport(view))
	require.NoError(t, err)
	require.Len(t, sol.Region.Vertices, 3)
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}}, sol.Visible)
	opt, _ := sol.Optimum()
	assert.Equal(t, 20.0, opt.Value)

	sol, err = lp.Solve(cons, obj, lp.WithViewport(view), lp.WithStrictViewport())
	require.NoError(t, err)
	opt, err = sol.Optimum()
	require.NoError(t, err)
	assert.Equal(t, 0.0, opt.Value)
}

func TestSolve_WithoutNonNegativity(t *testing.T) {
	box := []lp.Constraint{
		{A: 1, B: 0, C: 1}, {A: -1, B: 0, C: 1},
		{A: 0, B: 1, C: 1}, {A: 0, B: -1, C: 1},
	}
	sol, err := lp.Solve(box, lp.Objective{A: 1, B: 2}, lp.WithoutNonNegativity())
	require.NoError(t, err)
	require.Len(t, sol.Region.Vertices, 4)
	opt, err := sol.Optimum()
	require.NoError(t, err)
	assert.Equal(t, geom.Point{X: 1, Y: 1}, opt.Point)
	assert.Equal(t, 3.0, opt.Value)

	// A lone half-plane has no vertex at all: x is capped by its boundary
	// while y runs along it.
	half := []lp.Constraint{{A: 1, B: 0, C: 1}}
	sol, err = lp.Solve(half, lp.Objective{A: 1}, lp.WithoutNonNegativity())
	require.NoError(t, err)
	assert.Equal(t, lp.StatusOptimal, sol.Status)
	assert.True(t, sol.Region.Empty())
	assert.False(t, sol.Region.Bounded)
	opt, err = sol.Optimum()
	require.NoError(t, err)
	assert.Equal(t, geom.Point{X: 1, Y: 0}, opt.Point)
	assert.Equal(t, 1.0, opt.Value)

	sol, err = lp.Solve(half, lp.Objective{A: 0, B: 1}, lp.WithoutNonNegativity())
	require.NoError(t, err)
	assert.Equal(t, lp.StatusUnbounded, sol.Status)

	sol, err = lp.Solve(half, lp.Objective{A: 1, Sense: lp.Minimize}, lp.WithoutNonNegativity())
	require.NoError(t, err)
	assert.Equal(t, lp.StatusUnbounded, sol.Status)

	// Two contradicting parallel half-planes.
	sol, err = lp.Solve([]lp.Constraint{{A: 1, B: 0, C: -1}, {A: -1, B: 0, C: -1}}, lp.Objective{A: 1}, lp.WithoutNonNegativity())
	require.NoError(t, err)
	assert.Equal(t, lp.StatusInfeasible, sol.Status)
}

// TestSolve_VertexFreeStrip optimises over 0 ≤ x ≤ 1 with y free.
func TestSolve_VertexFreeStrip(t *testing.T) {
	strip := []lp.Constraint{{A: 1, B: 0, C: 1}, {A: -1, B: 0, C: 0}}
	cases := []struct {
		name  string
		obj   lp.Objective
		point geom.Point
		value float64
	}{
		{"max x", lp.Objective{A: 1, Sense: lp.Maximize}, geom.Point{X: 1}, 1},
		{"min x", lp.Objective{A: 1, Sense: lp.Minimize}, geom.Point{X: 0}, 0},
		{"max -2x", lp.Objective{A: -2, Sense: lp.Maximize}, geom.Point{X: 0}, 0},
		{"constant", lp.Objective{Sense: lp.Maximize}, geom.Point{X: 0}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sol, err := lp.Solve(strip, tc.obj, lp.WithoutNonNegativity())
			require.NoError(t, err)
			require.Equal(t, lp.StatusOptimal, sol.Status)
			assert.True(t, sol.Region.Empty())
			opt, err := sol.Optimum()
			require.NoError(t, err)
			assert.Equal(t, tc.point, opt.Point)
			assert.Equal(t, tc.value, opt.Value)
		})
	}

	sol, err := lp.Solve(strip, lp.Objective{A: 1, B: 1}, lp.WithoutNonNegativity())
	require.NoError(t, err)
	assert.Equal(t, lp.StatusUnbounded, sol.Status)
}

// TestSolve_SmallRegionKeepsCorners uses a square of side 0.005, smaller
// than the feasibility tolerance, so its corners must not be merged.
func TestSolve_SmallRegionKeepsCorners(t *testing.T) {
	cons := []lp.Constraint{{A: 1, B: 0, C: 0.005}, {A: 0, B: 1, C: 0.005}}
	sol, err := lp.Solve(cons, lp.Objective{A: 1, B: 1, Sense: lp.Minimize})
	require.NoError(t, err)
	require.Equal(t, lp.StatusOptimal, sol.Status)
	require.Len(t, sol.Region.Vertices, 4)
	assert.InDelta(t, 0.005*0.005, sol.Region.Vertices.Area(), 1e-12)

	opt, err := sol.Optimum()
	require.NoError(t, err)
	assert.Equal(t, geom.Point{}, opt.Point)
	assert.Equal(t, 0.0, opt.Value)
}

// TestSolve_OptimumDominates generates random bounded problems and checks
// that the reported optimum is at least as good as every candidate, that
// every vertex is feasible, and that the vertex order is a CCW polygon.
func TestSolve_OptimumDominates(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 200; iter++ {
		var cons []lp.Constraint
		for k := 0; k < 2+rng.Intn(4); k++ {
			cons = append(cons, lp.Constraint{
				A: 0.5 + rng.Float64()*3,
				B: 0.5 + rng.Float64()*3,
				C: 1 + rng.Float64()*20,
			})
		}
		sense := lp.Maximize
		if iter%2 == 1 {
			sense = lp.Minimize
		}
		obj := lp.Objective{A: rng.Float64()*10 - 5, B: rng.Float64()*10 - 5, Sense: sense}

		sol, err := lp.Solve(cons, obj)
		require.NoError(t, err)
		require.Equal(t, lp.StatusOptimal, sol.Status)
		require.True(t, sol.Region.Bounded)

		opt, err := sol.Optimum()
		require.NoError(t, err)
		for _, ev := range sol.Evaluations {
			if sense == lp.Maximize {
				require.GreaterOrEqual(t, opt.Value+1e-9, ev.Value)
			} else {
				require.LessOrEqual(t, opt.Value-1e-9, ev.Value)
			}
		}
		for _, v := range sol.Region.Vertices {
			for _, c := range cons {
				require.True(t, c.Satisfied(v, lp.DefaultTolerance))
			}
		}
		if len(sol.Region.Vertices) >= 3 {
			require.Greater(t, sol.Region.Vertices.Area(), 0.0)
		}
	}
}

func TestSolve_Idempotent(t *testing.T) {
	obj := lp.Objective{A: 3, B: 2}
	s1, _ := lp.Solve(classroom(), obj)
	s2, _ := lp.Solve(classroom(), obj)
	require.Equal(t, s1, s2)
}

func TestConstraint_Segment(t *testing.T) {
	view := geom.Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10}
	seg, ok := lp.Constraint{A: 1, B: 1, C: 6}.Segment(view)
	require.True(t, ok)
	assert.Equal(t, [2]geom.Point{{X: 0, Y: 6}, {X: 6, Y: 0}}, seg)

	seg, ok = lp.Constraint{A: 0, B: 1, C: 4}.Segment(view)
	require.True(t, ok)
	assert.Equal(t, [2]geom.Point{{X: 0, Y: 4}, {X: 10, Y: 4}}, seg)

	_, ok = lp.Constraint{A: 1, B: 1, C: 50}.Segment(view)
	assert.False(t, ok)
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { lp.WithTolerance(-1) })
	require.Panics(t, func() { lp.WithParallelEpsilon(-1) })
	require.Panics(t, func() { lp.WithViewport(geom.Bounds{MinX: 1, MaxX: 0}) })
}
