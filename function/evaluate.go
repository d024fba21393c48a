// SPDX-License-Identifier: MIT
// Package: simkit/function
//
// evaluate.go - point evaluation, curve sampling and tangent lines.

package function

import (
	"math"

	"github.com/katalvlaran/simkit/geom"
)

// DefaultTangentHalfLength is the x half-span used by TangentLine.
const DefaultTangentHalfLength = 1.5

const (
	opEvaluate       = "Evaluate"
	opApply          = "Apply"
	opDerivative     = "Derivative"
	opAntiderivative = "Antiderivative"
	opSampleCurve    = "SampleCurve"
	opTangentLine    = "TangentLine"
)

// Value is f and f′ evaluated at X.
type Value struct {
	X     float64
	Y     float64 // f(X)
	Slope float64 // f′(X)
}

// Range is an inclusive interval [Min, Max].
type Range struct {
	Min, Max float64
}

func (r Range) valid() bool {
	return !math.IsNaN(r.Min) && !math.IsNaN(r.Max) &&
		!math.IsInf(r.Min, 0) && !math.IsInf(r.Max, 0) && r.Min <= r.Max
}

func lookup(op string, id ID) (*entry, error) {
	if !id.Valid() {
		return nil, functionErrorf(op, ErrNotFound)
	}

	return &table[id], nil
}

// Evaluate returns f(x) and the exact derivative f′(x).
func Evaluate(id ID, x float64) (Value, error) {
	e, err := lookup(opEvaluate, id)
	if err != nil {
		return Value{}, err
	}

	return Value{X: x, Y: e.f(x), Slope: e.df(x)}, nil
}

// Apply returns f(x).
func Apply(id ID, x float64) (float64, error) {
	e, err := lookup(opApply, id)
	if err != nil {
		return 0, err
	}

	return e.f(x), nil
}

// Derivative returns f′(x).
func Derivative(id ID, x float64) (float64, error) {
	e, err := lookup(opDerivative, id)
	if err != nil {
		return 0, err
	}

	return e.df(x), nil
}

// Antiderivative returns F(x) for the catalog antiderivative F (constant of
// integration fixed by the table). Definite integrals use F(b) − F(a).
func Antiderivative(id ID, x float64) (float64, error) {
	e, err := lookup(opAntiderivative, id)
	if err != nil {
		return 0, err
	}

	return e.F(x), nil
}

// SampleCurve samples f over the inclusive x range using steps equal
// segments (steps+1 points) and keeps only points whose f(x) lies inside
// the inclusive y range. Dropped points split the curve: every contiguous
// run of kept points becomes its own Polyline. Runs of a single point are
// kept so isolated visible samples are not lost.
//
// Errors: ErrNotFound, ErrBadRange, ErrBadSteps.
// Complexity: O(steps).
func SampleCurve(id ID, xr, yr Range, steps int) ([]geom.Polyline, error) {
	e, err := lookup(opSampleCurve, id)
	if err != nil {
		return nil, err
	}
	if !xr.valid() || !yr.valid() {
		return nil, functionErrorf(opSampleCurve, ErrBadRange)
	}
	if steps < 1 {
		return nil, functionErrorf(opSampleCurve, ErrBadSteps)
	}

	var (
		runs []geom.Polyline
		cur  geom.Polyline
		dx   = (xr.Max - xr.Min) / float64(steps)
		x, y float64
	)
	for i := 0; i <= steps; i++ {
		// The last sample hits Max exactly instead of accumulating drift.
		if i == steps {
			x = xr.Max
		} else {
			x = xr.Min + float64(i)*dx
		}
		y = e.f(x)
		if math.IsNaN(y) || math.IsInf(y, 0) || y < yr.Min || y > yr.Max {
			if len(cur) > 0 {
				runs = append(runs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, geom.Point{X: x, Y: y})
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}

	return runs, nil
}

// TangentLine returns the endpoints of the tangent at x spanning
// ±DefaultTangentHalfLength in x.
func TangentLine(id ID, x float64) ([2]geom.Point, error) {
	return TangentLineSpan(id, x, DefaultTangentHalfLength)
}

// TangentLineSpan returns the endpoints (x−half, f(x)−half·m) and
// (x+half, f(x)+half·m) of the line through (x, f(x)) with slope m = f′(x).
func TangentLineSpan(id ID, x, half float64) ([2]geom.Point, error) {
	e, err := lookup(opTangentLine, id)
	if err != nil {
		return [2]geom.Point{}, err
	}
	if !(half > 0) || math.IsInf(half, 0) {
		return [2]geom.Point{}, functionErrorf(opTangentLine, ErrBadSpan)
	}
	y, m := e.f(x), e.df(x)

	return [2]geom.Point{
		{X: x - half, Y: y - half*m},
		{X: x + half, Y: y + half*m},
	}, nil
}
