// SPDX-License-Identifier: MIT

package gate

import (
	"fmt"
	"math"
)

// Operation name constants for error wrapping.
const (
	opNext    = "Next"
	opStart   = "Start"
	opNew     = "New"
	opStartQz = "StartQuiz"
	opSubmit  = "Submit"
	opReset   = "Reset"
	opChanged = "ParameterChanged"
)

// State is a progression stage.
type State int

const (
	// Exploring counts debounced interactions toward the threshold.
	Exploring State = iota
	// Unlocked means the threshold was reached; the quiz may start.
	Unlocked
	// InQuiz means the quiz is open and awaits a submission.
	InQuiz
	// Completed is terminal and carries the submitted score.
	Completed
)

var stateNames = [...]string{"Exploring", "Unlocked", "InQuiz", "Completed"}

// String returns the state name, or "State(n)" for unknown values.
func (s State) String() string {
	if s < Exploring || s > Completed {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// EventKind tags an Event.
type EventKind int

const (
	// EventExplore is one debounced qualifying interaction.
	EventExplore EventKind = iota
	// EventStartQuiz is the explicit action that opens the quiz.
	EventStartQuiz
	// EventSubmit closes the quiz with Event.Score.
	EventSubmit
)

// String returns the event name, or "EventKind(n)" for unknown values.
func (k EventKind) String() string {
	switch k {
	case EventExplore:
		return "Explore"
	case EventStartQuiz:
		return "StartQuiz"
	case EventSubmit:
		return "Submit"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one input to the machine. Score is read only for EventSubmit.
type Event struct {
	Kind  EventKind
	Score float64
}

// Explore is one qualifying (already debounced) interaction.
func Explore() Event { return Event{Kind: EventExplore} }

// StartQuiz is the explicit user action on an unlocked gate.
func StartQuiz() Event { return Event{Kind: EventStartQuiz} }

// Submit carries the quiz score.
func Submit(score float64) Event { return Event{Kind: EventSubmit, Score: score} }

// Snapshot is the complete machine state.
type Snapshot struct {
	State     State
	Count     int
	Threshold int
	Score     float64
}

// Start returns the initial Exploring snapshot for threshold.
func Start(threshold int) (Snapshot, error) {
	if threshold < 1 {
		return Snapshot{}, gateErrorf(opStart, ErrBadThreshold)
	}

	return Snapshot{State: Exploring, Threshold: threshold}, nil
}

// Next applies e to s and returns the successor.
//
// Explore increments Count while Exploring and unlocks once Count reaches
// Threshold; in any later state it is accepted and ignored. StartQuiz is
// accepted only from Unlocked, Submit only from InQuiz. Anything else fails
// with ErrInvalidTransition and returns s unchanged.
func Next(s Snapshot, e Event) (Snapshot, error) {
	if s.Threshold < 1 {
		return s, gateErrorf(opNext, ErrBadThreshold)
	}
	switch e.Kind {
	case EventExplore:
		if s.State != Exploring {
			return s, nil
		}
		s.Count++
		if s.Count >= s.Threshold {
			s.State = Unlocked
		}
		return s, nil

	case EventStartQuiz:
		if s.State != Unlocked {
			return s, fmt.Errorf("%s: %v from %v: %w", opNext, e.Kind, s.State, ErrInvalidTransition)
		}
		s.State = InQuiz
		return s, nil

	case EventSubmit:
		if s.State != InQuiz {
			return s, fmt.Errorf("%s: %v from %v: %w", opNext, e.Kind, s.State, ErrInvalidTransition)
		}
		if math.IsNaN(e.Score) || math.IsInf(e.Score, 0) || e.Score < 0 {
			return s, gateErrorf(opNext, ErrBadScore)
		}
		s.State = Completed
		s.Score = e.Score
		return s, nil
	}

	return s, fmt.Errorf("%s: %v: %w", opNext, e.Kind, ErrInvalidTransition)
}
