// SPDX-License-Identifier: MIT

// Package catalog is the boundary to the simulation metadata collaborator.
//
// The kernel consumes exactly two things from it: each simulation's
// exploration threshold, and a quiz question list it never interprets.
// Questions are kept as raw yaml.Node values and passed through untouched
// to whatever renders the quiz.
//
// A catalog is YAML:
//
//	simulations:
//	  - id: riemann-sums
//	    title: Riemann Sums
//	    component: riemann
//	    explorationThreshold: 3
//	    quizQuestions:
//	      - prompt: ...
//
// Load decodes strictly (unknown fields are errors) and validates with
// go-playground/validator: ids and titles are required, ids are unique,
// thresholds are at least 1 and component names a kernel package.
// Default returns the embedded catalog of the nine shipped simulations.
package catalog
