// SPDX-License-Identifier: MIT

// Package stats is the StatisticsEngine: descriptive statistics over a
// small mutable sample the learner edits point by point.
//
// A Sample is a multiset that also remembers insertion order (the "history"
// a dot plot animates). Every query is recomputed from the current values:
//
//   - Mean     Σx / n
//   - Median   middle order statistic, or the mean of the two middle ones
//   - Modes    every value reaching the highest frequency, ascending
//   - Variance population variance Σ(x − mean)² / n
//   - StdDev   √Variance
//   - Range    max − min
//
// Queries on an empty sample fail with ErrEmptySample; they never return 0
// or NaN in disguise. A Sample is owned by one simulation and is not safe
// for concurrent mutation.
package stats
