// SPDX-License-Identifier: MIT

package lagcorr

import (
	"fmt"
	"math"
)

// DefaultBoundsTolerance is how far a correlation may overshoot ±1 from
// rounding before it is treated as a bounds violation.
const DefaultBoundsTolerance = 1e-6

// Measure selects the lagged quantity the strength statistic is built on.
type Measure int

const (
	// MeasureCovariance uses |cov| at each lag (default).
	MeasureCovariance Measure = iota

	// MeasureCorrelation uses |corr| at each lag.
	MeasureCorrelation
)

// String implements fmt.Stringer.
func (m Measure) String() string {
	switch m {
	case MeasureCovariance:
		return "covariance"
	case MeasureCorrelation:
		return "correlation"
	default:
		return fmt.Sprintf("Measure(%d)", int(m))
	}
}

// ParseMeasure maps "covariance" / "correlation" to a Measure.
func ParseMeasure(s string) (Measure, error) {
	switch s {
	case "covariance", "cov":
		return MeasureCovariance, nil
	case "correlation", "corr":
		return MeasureCorrelation, nil
	}

	return 0, lagcorrErrorf("ParseMeasure", ErrConfiguration, "unknown measure %q", s)
}

// Option configures Prepare and the package-level helpers.
type Option func(*options)

type options struct {
	boundsTol float64
	measure   Measure
}

func defaultOptions() options {
	return options{boundsTol: DefaultBoundsTolerance, measure: MeasureCovariance}
}

func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithBoundsTolerance sets the ±1 overshoot tolerance.
// Panics if tol is negative, NaN or Inf.
func WithBoundsTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("lagcorr: WithBoundsTolerance requires a finite tol >= 0")
	}

	return func(o *options) { o.boundsTol = tol }
}

// WithMeasure selects the strength measure.
// Panics on an unknown Measure.
func WithMeasure(m Measure) Option {
	if m != MeasureCovariance && m != MeasureCorrelation {
		panic(fmt.Sprintf("lagcorr: WithMeasure: unknown measure %d", int(m)))
	}

	return func(o *options) { o.measure = m }
}
