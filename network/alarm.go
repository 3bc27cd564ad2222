// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Alarm marks a slot where a strength series crosses a threshold upwards.
type Alarm struct {
	Index    int     // slot in the series
	Time     int     // reference time index, Offset + Index
	Strength float64 // S[Index]
}

// DetectAlarms returns every k with S[k-1] < theta <= S[k], both finite,
// in increasing order. offset maps slots back to reference time.
//
// Errors: ErrBadThreshold for a non-finite theta.
// Complexity: O(len(series)).
func DetectAlarms(series []float64, offset int, theta float64) ([]Alarm, error) {
	if math.IsNaN(theta) || math.IsInf(theta, 0) {
		return nil, fmt.Errorf("DetectAlarms(theta=%v): %w", theta, ErrBadThreshold)
	}
	var out []Alarm
	for k := 1; k < len(series); k++ {
		prev, cur := series[k-1], series[k]
		if !finite(prev) || !finite(cur) {
			continue
		}
		if prev < theta && cur >= theta {
			out = append(out, Alarm{Index: k, Time: offset + k, Strength: cur})
		}
	}

	return out, nil
}

// Alarms runs DetectAlarms on the result's series.
func (r *StrengthResult) Alarms(theta float64) ([]Alarm, error) {
	return DetectAlarms(r.Series, r.Offset, theta)
}

// Summary describes the finite part of a series.
type Summary struct {
	Count     int // finite values
	NonFinite int
	Mean      float64
	Std       float64 // population
	Median    float64
	Min       float64
	Max       float64
}

// Summarize computes descriptive statistics over the finite values of series.
//
// Errors: ErrNoFiniteValues.
func Summarize(series []float64) (Summary, error) {
	vals := finiteValues(series)
	sum := Summary{Count: len(vals), NonFinite: len(series) - len(vals)}
	if len(vals) == 0 {
		return sum, ErrNoFiniteValues
	}
	sum.Mean, sum.Std = stat.PopMeanStdDev(vals, nil)

	var err error
	if sum.Median, err = stats.Median(vals); err != nil {
		return sum, err
	}
	if sum.Min, err = stats.Min(vals); err != nil {
		return sum, err
	}
	if sum.Max, err = stats.Max(vals); err != nil {
		return sum, err
	}

	return sum, nil
}

// PercentileThreshold returns the pct-th percentile (0 < pct <= 100) of the
// finite values of series, a data-driven alarm threshold.
//
// Errors: ErrBadPercentile, ErrNoFiniteValues.
func PercentileThreshold(series []float64, pct float64) (float64, error) {
	if !(pct > 0 && pct <= 100) {
		return 0, fmt.Errorf("PercentileThreshold(%v): %w", pct, ErrBadPercentile)
	}
	vals := finiteValues(series)
	if len(vals) == 0 {
		return 0, ErrNoFiniteValues
	}

	return stats.Percentile(vals, pct)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// finiteValues copies the finite entries of series.
func finiteValues(series []float64) []float64 {
	out := make([]float64, 0, len(series))
	for _, v := range series {
		if finite(v) {
			out = append(out, v)
		}
	}

	return out
}
