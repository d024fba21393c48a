// SPDX-License-Identifier: MIT

package gate

import (
	"sync"
)

// Completion is the record handed to the progress collaborator.
type Completion struct {
	Score    float64
	XPEarned int
}

// Gate is one simulation's progression state plus its debounce timer.
//
// Events are expected from a single writer (the simulation's interaction
// loop). The mutex exists because the debounce timer fires on its own
// goroutine.
type Gate struct {
	mu     sync.Mutex
	snap   Snapshot
	timer  Timer
	gen    uint64
	closed bool
	opts   Options
}

// New returns a Gate in Exploring with count 0.
func New(threshold int, opts ...Option) (*Gate, error) {
	snap, err := Start(threshold)
	if err != nil {
		return nil, gateErrorf(opNew, err)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Gate{snap: snap, opts: o}, nil
}

// Snapshot returns the current state.
func (g *Gate) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.snap
}

// ParameterChanged records a raw interaction. It (re)arms the debounce
// timer; the exploration is counted only when the timer fires. Calls after
// the gate has unlocked are ignored.
func (g *Gate) ParameterChanged() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return gateErrorf(opChanged, ErrClosed)
	}
	if g.snap.State != Exploring {
		return nil
	}
	g.stopLocked()
	gen := g.gen
	g.timer = g.opts.clock.AfterFunc(g.opts.debounce, func() { g.fire(gen) })

	return nil
}

// Pending reports whether a debounce timer is armed.
func (g *Gate) Pending() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.timer != nil
}

// fire applies one Explore if gen is still current.
func (g *Gate) fire(gen uint64) {
	g.mu.Lock()
	if g.closed || gen != g.gen {
		g.mu.Unlock()
		return
	}
	g.timer = nil
	g.gen++
	prev := g.snap
	next, err := Next(prev, Explore())
	if err == nil {
		g.snap = next
	}
	g.mu.Unlock()

	if err != nil {
		g.opts.logger.Error("explore rejected", "error", err)
		return
	}
	g.opts.logger.Debug("exploration counted", "count", next.Count, "threshold", next.Threshold)
	if prev.State != next.State {
		g.opts.logger.Info("quiz unlocked", "count", next.Count)
	}
	g.notify(prev, next)
}

// StartQuiz moves Unlocked to InQuiz.
func (g *Gate) StartQuiz() error {
	_, err := g.apply(opStartQz, StartQuiz())

	return err
}

// Submit moves InQuiz to Completed and returns the record for the progress
// collaborator.
func (g *Gate) Submit(score float64) (Completion, error) {
	next, err := g.apply(opSubmit, Submit(score))
	if err != nil {
		return Completion{}, err
	}
	c := Completion{Score: next.Score, XPEarned: g.opts.xp(next.Score)}
	g.opts.logger.Info("quiz completed", "score", c.Score, "xp", c.XPEarned)

	return c, nil
}

func (g *Gate) apply(op string, e Event) (Snapshot, error) {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return Snapshot{}, gateErrorf(op, ErrClosed)
	}
	prev := g.snap
	next, err := Next(prev, e)
	if err != nil {
		g.mu.Unlock()
		return prev, gateErrorf(op, err)
	}
	g.snap = next
	g.mu.Unlock()

	g.notify(prev, next)

	return next, nil
}

// Reset returns to Exploring with count 0 and cancels any pending count.
func (g *Gate) Reset() error {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return gateErrorf(opReset, ErrClosed)
	}
	g.stopLocked()
	prev := g.snap
	g.snap = Snapshot{State: Exploring, Threshold: prev.Threshold}
	next := g.snap
	g.mu.Unlock()

	g.opts.logger.Debug("gate reset")
	g.notify(prev, next)

	return nil
}

// Close stops the timer. Later calls fail with ErrClosed; Close itself is
// idempotent.
func (g *Gate) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stopLocked()
	g.closed = true
}

// stopLocked cancels the pending timer and invalidates its generation.
func (g *Gate) stopLocked() {
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	g.gen++
}

func (g *Gate) notify(prev, next Snapshot) {
	if g.opts.observer != nil && prev != next {
		g.opts.observer(prev, next)
	}
}
