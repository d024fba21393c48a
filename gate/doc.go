// SPDX-License-Identifier: MIT

// Package gate is the ProgressionGate: the exploration-counter state machine
// every simulation wraps around its interaction loop to unlock a quiz.
//
//	Exploring ──count ≥ threshold──▶ Unlocked ──StartQuiz──▶ InQuiz ──Submit──▶ Completed
//
// There are no backward transitions. Re-entering a simulation means Reset,
// which returns to Exploring with count 0; nothing is persisted.
//
// Two layers:
//
//   - Next(Snapshot, Event) is the pure transition function. It is the single
//     reusable machine; every simulation shares it.
//   - Gate owns one Snapshot plus a debounce timer. ParameterChanged re-arms
//     the timer on every slider movement; only once the input has been quiet
//     for the debounce period (2.5 s by default) does one Explore event reach
//     the machine. A re-armed or reset timer can never fire a stale update.
//
// XP is computed outside the kernel: WithXP plugs in the collaborator's
// function, and Submit reports {Score, XPEarned}.
package gate
