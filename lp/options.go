// SPDX-License-Identifier: MIT
// Package: simkit/lp
//
// options.go - functional options for Solve.
//
// Contract:
//   - WithX constructors panic on nonsensical values (programmer error).
//   - Solve itself never panics on user data.

package lp

import (
	"math"

	"github.com/katalvlaran/simkit/geom"
)

const (
	// DefaultTolerance is the slack allowed when testing a point against a
	// constraint. Vertex merging uses its own much tighter distance.
	DefaultTolerance = 1e-2

	// DefaultParallelEpsilon is the |det| at or below which two boundary
	// lines are treated as parallel and skipped.
	DefaultParallelEpsilon = 1e-9

	// DefaultNonNegative adds x ≥ 0 and y ≥ 0 to every problem.
	DefaultNonNegative = true
)

const (
	panicToleranceInvalid = "lp: WithTolerance: tol must be finite and >= 0"
	panicParallelInvalid  = "lp: WithParallelEpsilon: eps must be finite and >= 0"
	panicViewportInvalid  = "lp: WithViewport: bounds must be finite and non-inverted"
)

// Option mutates Options.
type Option func(*Options)

// Options is the resolved configuration of one Solve call.
type Options struct {
	tol         float64
	parallelEps float64
	nonNegative bool
	viewport    *geom.Bounds
	strictView  bool
}

func defaultOptions() Options {
	return Options{
		tol:         DefaultTolerance,
		parallelEps: DefaultParallelEpsilon,
		nonNegative: DefaultNonNegative,
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithTolerance sets the feasibility tolerance.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithParallelEpsilon sets the determinant threshold for parallel lines.
func WithParallelEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicParallelInvalid)
	}

	return func(o *Options) { o.parallelEps = eps }
}

// WithoutNonNegativity drops the implicit x ≥ 0, y ≥ 0 constraints.
func WithoutNonNegativity() Option {
	return func(o *Options) { o.nonNegative = false }
}

// WithViewport records the plotted area. Vertices inside it are listed in
// Solution.Visible; vertices outside stay in the region.
func WithViewport(b geom.Bounds) Option {
	if !b.Valid() {
		panic(panicViewportInvalid)
	}

	return func(o *Options) {
		vb := b
		o.viewport = &vb
	}
}

// WithStrictViewport makes only visible vertices candidates for the
// optimum, which is what a classroom plot with a fixed grid shows. It has
// no effect without WithViewport. Unboundedness is not reported in this
// mode: the visible polygon always yields a vertex optimum.
func WithStrictViewport() Option {
	return func(o *Options) { o.strictView = true }
}
