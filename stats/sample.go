// SPDX-License-Identifier: MIT
// Package: simkit/stats
//
// sample.go - the mutable multiset and its statistics.

package stats

import (
	"math"
	"sort"
)

// Operation name constants for error wrapping.
const (
	opInsert    = "Insert"
	opRemove    = "Remove"
	opRemoveAt  = "RemoveAt"
	opMean      = "Mean"
	opMedian    = "Median"
	opModes     = "Modes"
	opVariance  = "Variance"
	opRange     = "Range"
	opMin       = "Min"
	opMax       = "Max"
	opSummarize = "Summarize"
)

// Sample is a mutable multiset of finite values in insertion order.
// The zero value is an empty sample ready for use.
type Sample struct {
	values []float64
}

// NewSample returns a sample holding vals in order. Non-finite values are
// rejected with ErrNonFinite.
func NewSample(vals ...float64) (*Sample, error) {
	s := &Sample{values: make([]float64, 0, len(vals))}
	for _, v := range vals {
		if err := s.Insert(v); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Insert appends x.
func (s *Sample) Insert(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return statsErrorf(opInsert, ErrNonFinite)
	}
	s.values = append(s.values, x)

	return nil
}

// Remove deletes the earliest occurrence of x.
func (s *Sample) Remove(x float64) error {
	for i, v := range s.values {
		if v == x {
			s.values = append(s.values[:i], s.values[i+1:]...)

			return nil
		}
	}

	return statsErrorf(opRemove, ErrValueNotFound)
}

// RemoveAt deletes the i-th value in insertion order.
func (s *Sample) RemoveAt(i int) error {
	if i < 0 || i >= len(s.values) {
		return statsErrorf(opRemoveAt, ErrOutOfRange)
	}
	s.values = append(s.values[:i], s.values[i+1:]...)

	return nil
}

// Reset empties the sample.
func (s *Sample) Reset() { s.values = s.values[:0] }

// Len returns n.
func (s *Sample) Len() int { return len(s.values) }

// Values returns a copy of the values in insertion order.
func (s *Sample) Values() []float64 {
	return append([]float64(nil), s.values...)
}

// Sorted returns a sorted copy of the values.
func (s *Sample) Sorted() []float64 {
	out := s.Values()
	sort.Float64s(out)

	return out
}

// Mean returns Σx/n.
func (s *Sample) Mean() (float64, error) {
	if len(s.values) == 0 {
		return 0, statsErrorf(opMean, ErrEmptySample)
	}

	return mean(s.values), nil
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

// Median returns the middle order statistic (odd n) or the mean of the two
// middle ones (even n).
func (s *Sample) Median() (float64, error) {
	if len(s.values) == 0 {
		return 0, statsErrorf(opMedian, ErrEmptySample)
	}

	return median(s.Sorted()), nil
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Modes returns every value that reaches the maximum frequency, ascending.
// When all values are distinct every value is a mode.
func (s *Sample) Modes() ([]float64, error) {
	if len(s.values) == 0 {
		return nil, statsErrorf(opModes, ErrEmptySample)
	}

	return modes(s.Sorted()), nil
}

// modes scans runs of equal values in a sorted slice.
func modes(sorted []float64) []float64 {
	var (
		out  []float64
		best int
	)
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		switch run := j - i; {
		case run > best:
			best = run
			out = append(out[:0], sorted[i])
		case run == best:
			out = append(out, sorted[i])
		}
		i = j
	}

	return out
}

// Variance returns the population variance Σ(x − mean)²/n (two-pass).
func (s *Sample) Variance() (float64, error) {
	if len(s.values) == 0 {
		return 0, statsErrorf(opVariance, ErrEmptySample)
	}

	return variance(s.values, mean(s.values)), nil
}

func variance(xs []float64, m float64) float64 {
	var ss float64
	for _, x := range xs {
		d := x - m
		ss += d * d
	}

	return ss / float64(len(xs))
}

// StdDev returns √Variance.
func (s *Sample) StdDev() (float64, error) {
	v, err := s.Variance()
	if err != nil {
		return 0, err
	}

	return math.Sqrt(v), nil
}

// Range returns max − min.
func (s *Sample) Range() (float64, error) {
	if len(s.values) == 0 {
		return 0, statsErrorf(opRange, ErrEmptySample)
	}
	lo, hi := minMax(s.values)

	return hi - lo, nil
}

// Min returns the smallest value.
func (s *Sample) Min() (float64, error) {
	if len(s.values) == 0 {
		return 0, statsErrorf(opMin, ErrEmptySample)
	}
	lo, _ := minMax(s.values)

	return lo, nil
}

// Max returns the largest value.
func (s *Sample) Max() (float64, error) {
	if len(s.values) == 0 {
		return 0, statsErrorf(opMax, ErrEmptySample)
	}
	_, hi := minMax(s.values)

	return hi, nil
}

func minMax(xs []float64) (float64, float64) {
	lo, hi := xs[0], xs[0]
	for _, x := range xs[1:] {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}

	return lo, hi
}

// Summary is every statistic at once.
type Summary struct {
	N        int
	Mean     float64
	Median   float64
	Modes    []float64
	Variance float64
	StdDev   float64
	Min      float64
	Max      float64
	Range    float64
}

// Summarize computes the whole Summary in one sort and two passes.
func (s *Sample) Summarize() (Summary, error) {
	if len(s.values) == 0 {
		return Summary{}, statsErrorf(opSummarize, ErrEmptySample)
	}
	sorted := s.Sorted()
	m := mean(s.values)
	v := variance(s.values, m)

	return Summary{
		N:        len(sorted),
		Mean:     m,
		Median:   median(sorted),
		Modes:    modes(sorted),
		Variance: v,
		StdDev:   math.Sqrt(v),
		Min:      sorted[0],
		Max:      sorted[len(sorted)-1],
		Range:    sorted[len(sorted)-1] - sorted[0],
	}, nil
}
