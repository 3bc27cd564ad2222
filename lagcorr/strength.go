// SPDX-License-Identifier: MIT

package lagcorr

import (
	"math"

	"github.com/katalvlaran/climnet/field"
)

// Strength returns the network-strength statistic between x and every cell
// of f, right-aligned to p.Len(T) steps like Averaged.
//
// Over lags 0..LagMax the chosen measure (|cov| by default) gives a lag
// distribution per (t,x,y); with L = LagMax+1:
//
//	mean = Σ/L,  var = Σ²/L − mean²,  S = (max − mean)/sqrt(var)
//
// Negative var from rounding is clamped to 0. A flat lag distribution
// yields ±Inf or NaN; that is reported, not masked.
//
// Errors: ErrNilField, ErrConfiguration.
// Complexity: O(LagMax*T*X*Y) time, O(T*X*Y) memory.
func Strength(x []float64, f *field.Field, p Params, opts ...Option) (*field.Field, error) {
	m, err := Prepare(f, p.Window, opts...)
	if err != nil {
		return nil, err
	}

	return m.Strength(x, p)
}

// Strength is the network-strength statistic against prepared moments.
func (m *Moments) Strength(x []float64, p Params) (*field.Field, error) {
	r, err := m.begin("Strength", x, p)
	if err != nil {
		return nil, err
	}
	nt, nx, ny := m.f.Shape()
	cells, steps := m.f.Cells(), p.Len(nt)
	out, err := field.New(steps, nx, ny)
	if err != nil {
		return nil, err
	}
	size := steps * cells
	sum, sumSq, peak := make([]float64, size), make([]float64, size), make([]float64, size)
	for i := range peak {
		peak[i] = math.Inf(-1)
	}

	full := (nt - m.window) * cells
	cov, corr := make([]float64, full), make([]float64, full)
	src := cov
	if m.opts.measure == MeasureCorrelation {
		src = corr
	}
	var (
		n, off, i int
		a         float64
	)
	for lag := 0; lag <= p.LagMax; lag++ {
		n = (nt - lag - m.window) * cells
		if err = m.lagged(r, lag, cov[:n], corr[:n]); err != nil {
			return nil, err
		}
		off = (p.LagMax + 1 - lag) * cells
		for i = 0; i < size; i++ {
			a = math.Abs(src[off+i])
			sum[i] += a
			sumSq[i] += a * a
			// NaN sticks once seen
			if a > peak[i] || math.IsNaN(a) {
				peak[i] = a
			}
		}
	}

	inv := 1 / float64(p.Lags())
	s := out.Data()
	var mean, v float64
	for i = range s {
		mean = sum[i] * inv
		v = sumSq[i]*inv - mean*mean
		if v < 0 {
			v = 0
		}
		s[i] = (peak[i] - mean) / math.Sqrt(v)
	}

	return out, nil
}
