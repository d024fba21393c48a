// SPDX-License-Identifier: MIT
// Package: simkit/riemann
//
// riemann.go - rectangle sums over the function catalog.

package riemann

import (
	"fmt"
	"math"

	"github.com/katalvlaran/simkit/function"
)

const (
	opIntegrate   = "Integrate"
	opConvergence = "Convergence"
)

// ClampBounds is the call-boundary helper for slider input: it orders
// (a, b) and widens the interval to at least minWidth so Integrate never
// sees a ≥ b. minWidth ≤ 0 only orders the bounds.
func ClampBounds(a, b, minWidth float64) (float64, float64) {
	if a > b {
		a, b = b, a
	}
	if minWidth > 0 && b-a < minWidth {
		b = a + minWidth
	}

	return a, b
}

// sampleX picks the sample abscissa of strip i for rule.
func sampleX(rule Rule, x0, dx float64) float64 {
	switch rule {
	case Right:
		return x0 + dx
	case Midpoint:
		return x0 + dx/2
	default:
		return x0
	}
}

// Integrate computes the n-rectangle Riemann sum of id over [a, b] with the
// given rule, the exact integral F(b) − F(a), and the errors between them.
//
// Implementation:
//   - Stage 1: validate id, bounds (finite, a < b), n ≥ 1 and rule.
//   - Stage 2: x₀ᵢ = a + i·Δx (computed from i, not accumulated).
//   - Stage 3: Σ f(sampleX)·Δx, exact value, absolute and percentage error.
//   - Stage 4: every height, the sum, the exact value and the error must be
//     finite; otherwise nothing is returned.
//
// Errors: function.ErrNotFound (wrapped), ErrBadBounds, ErrBadCount,
// ErrBadRule, ErrOverflow.
func Integrate(id function.ID, a, b float64, n int, rule Rule) (Result, error) {
	f, F, ok := id.Funcs()
	if !ok {
		return Result{}, fmt.Errorf("%s: %w", opIntegrate, function.ErrNotFound)
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) || !(a < b) {
		return Result{}, fmt.Errorf("%s: [%g, %g]: %w", opIntegrate, a, b, ErrBadBounds)
	}
	if n < 1 {
		return Result{}, fmt.Errorf("%s: n=%d: %w", opIntegrate, n, ErrBadCount)
	}
	if rule < Left || rule > Midpoint {
		return Result{}, fmt.Errorf("%s: %w", opIntegrate, ErrBadRule)
	}

	dx := (b - a) / float64(n)
	res := Result{Rects: make([]Rect, n), Width: dx}
	var x0, sx, h float64
	for i := 0; i < n; i++ {
		x0 = a + float64(i)*dx
		sx = sampleX(rule, x0, dx)
		h = f(sx)
		if !finite(h) {
			return Result{}, fmt.Errorf("%s: f(%g): %w", opIntegrate, sx, ErrOverflow)
		}
		res.Rects[i] = Rect{X0: x0, Width: dx, Height: h, SampleX: sx}
		res.Sum += h * dx
	}

	res.Exact = F(b) - F(a)
	res.AbsError = math.Abs(res.Sum - res.Exact)
	if !finite(res.Sum) || !finite(res.Exact) || !finite(res.AbsError) {
		return Result{}, fmt.Errorf("%s: [%g, %g]: %w", opIntegrate, a, b, ErrOverflow)
	}
	if math.Abs(res.Exact) > ZeroExactTol {
		res.percent = res.AbsError / math.Abs(res.Exact) * 100
		res.percentDef = true
	}

	return res, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Convergence integrates id over [a, b] once per rectangle count, in the
// order given, so a view can show the error shrinking as n grows.
func Convergence(id function.ID, a, b float64, rule Rule, counts ...int) ([]Result, error) {
	out := make([]Result, 0, len(counts))
	for _, n := range counts {
		r, err := Integrate(id, a, b, n, rule)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opConvergence, err)
		}
		out = append(out, r)
	}

	return out, nil
}
