// SPDX-License-Identifier: MIT

package gate

import (
	"io"
	"log/slog"
	"time"
)

// DefaultDebounce is the quiet period after the last parameter change before
// one exploration is counted.
const DefaultDebounce = 2500 * time.Millisecond

// Timer is a pending callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. The real clock is time.AfterFunc.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// Observer receives every snapshot change. It runs without the gate's lock
// held, possibly on the timer goroutine.
type Observer func(prev, next Snapshot)

// XPFunc converts a quiz score into XP; owned by the progress collaborator.
type XPFunc func(score float64) int

// Options configures a Gate.
type Options struct {
	debounce time.Duration
	clock    Clock
	observer Observer
	xp       XPFunc
	logger   *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		debounce: DefaultDebounce,
		clock:    realClock{},
		xp:       func(float64) int { return 0 },
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithDebounce sets the quiet period (>0).
func WithDebounce(d time.Duration) Option {
	if d <= 0 {
		panic("gate: WithDebounce(d<=0)")
	}
	return func(o *Options) {
		o.debounce = d
	}
}

// WithClock replaces time.AfterFunc, for tests.
func WithClock(c Clock) Option {
	if c == nil {
		panic("gate: WithClock(nil)")
	}
	return func(o *Options) {
		o.clock = c
	}
}

// WithObserver registers a snapshot-change callback.
func WithObserver(fn Observer) Option {
	if fn == nil {
		panic("gate: WithObserver(nil)")
	}
	return func(o *Options) {
		o.observer = fn
	}
}

// WithXP plugs in the external XP computation.
func WithXP(fn XPFunc) Option {
	if fn == nil {
		panic("gate: WithXP(nil)")
	}
	return func(o *Options) {
		o.xp = fn
	}
}

// WithLogger sets the structured logger; the default discards.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("gate: WithLogger(nil)")
	}
	return func(o *Options) {
		o.logger = l
	}
}
