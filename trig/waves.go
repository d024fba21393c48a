// SPDX-License-Identifier: MIT

package trig

import (
	"math"

	"github.com/katalvlaran/simkit/geom"
)

// Wave sampler defaults.
const (
	DefaultAmplitude = 1.0
	DefaultPeriod    = 2 * math.Pi
	DefaultSamples   = 200
	DefaultSpan      = 2 * math.Pi
)

// Options configures NewWaves.
type Options struct {
	amplitude float64
	period    float64
	samples   int
	span      float64
}

// Option mutates Options.
type Option func(*Options)

// WithAmplitude sets the peak height A (>0).
func WithAmplitude(a float64) Option {
	if !(a > 0) || math.IsInf(a, 0) {
		panic("trig: WithAmplitude(A<=0)")
	}
	return func(o *Options) {
		o.amplitude = a
	}
}

// WithPeriod sets the x-length of one full cycle (>0).
func WithPeriod(p float64) Option {
	if !(p > 0) || math.IsInf(p, 0) {
		panic("trig: WithPeriod(P<=0)")
	}
	return func(o *Options) {
		o.period = p
	}
}

// WithSamples sets how many x-axis samples each wave has (>=2).
func WithSamples(n int) Option {
	if n < 2 {
		panic("trig: WithSamples(n<2)")
	}
	return func(o *Options) {
		o.samples = n
	}
}

// WithSpan sets the x-extent [0, span] of the plotted waves (>0).
func WithSpan(span float64) Option {
	if !(span > 0) || math.IsInf(span, 0) {
		panic("trig: WithSpan(span<=0)")
	}
	return func(o *Options) {
		o.span = span
	}
}

// Waves is a configured sine/cosine sampler.
type Waves struct {
	opts Options
}

// NewWaves applies opts over the defaults.
func NewWaves(opts ...Option) *Waves {
	o := Options{
		amplitude: DefaultAmplitude,
		period:    DefaultPeriod,
		samples:   DefaultSamples,
		span:      DefaultSpan,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Waves{opts: o}
}

// Amplitude returns A.
func (w *Waves) Amplitude() float64 { return w.opts.amplitude }

// Period returns P.
func (w *Waves) Period() float64 { return w.opts.period }

// Span returns the plotted x-extent.
func (w *Waves) Span() float64 { return w.opts.span }

// phase maps an x (radians) onto the wave's own angle 2πx/P.
func (w *Waves) phase(x float64) float64 {
	return 2 * math.Pi * x / w.opts.period
}

// SineAt returns A·sin(2πx/P).
func (w *Waves) SineAt(x float64) float64 {
	return w.opts.amplitude * math.Sin(w.phase(x))
}

// CosineAt returns A·cos(2πx/P).
func (w *Waves) CosineAt(x float64) float64 {
	return w.opts.amplitude * math.Cos(w.phase(x))
}

// Sine samples the sine wave over [0, span]; the last x is exactly span.
func (w *Waves) Sine() geom.Polyline { return w.sample(w.SineAt) }

// Cosine samples the cosine wave over [0, span].
func (w *Waves) Cosine() geom.Polyline { return w.sample(w.CosineAt) }

func (w *Waves) sample(f func(float64) float64) geom.Polyline {
	n := w.opts.samples
	out := make(geom.Polyline, n)
	step := w.opts.span / float64(n-1)
	for i := 0; i < n; i++ {
		x := float64(i) * step
		if i == n-1 {
			x = w.opts.span
		}
		out[i] = geom.Point{X: x, Y: f(x)}
	}

	return out
}

// Frame is one linked view of an angle: the ratios, the circle point and the
// matching markers on both waves.
type Frame struct {
	Ratios       Ratios
	Circle       geom.Point
	SineMarker   geom.Point
	CosineMarker geom.Point
}

// Link builds the Frame for θ. The markers sit at x = θ folded into
// [0, span) so they stay on the plotted curves for any θ; their heights are
// evaluated at the folded x, which equals the unfolded value whenever span is
// a whole number of periods.
func (w *Waves) Link(theta float64) Frame {
	x := math.Mod(theta, w.opts.span)
	if x < 0 {
		x += w.opts.span
	}
	x += 0

	return Frame{
		Ratios:       Evaluate(theta),
		Circle:       CirclePoint(theta),
		SineMarker:   geom.Point{X: x, Y: w.SineAt(x)},
		CosineMarker: geom.Point{X: x, Y: w.CosineAt(x)},
	}
}
