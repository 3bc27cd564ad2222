// SPDX-License-Identifier: MIT

package lagcorr

import (
	"math"

	"github.com/katalvlaran/climnet/field"
	"gonum.org/v1/gonum/floats"
)

// Averaged returns the windowed correlation between x and every cell of f,
// averaged over lags 0..p.LagMax and right-aligned to p.Len(T) steps.
//
// Errors: ErrNilField, ErrConfiguration, ErrCorrelationBounds.
// Complexity: O(LagMax*T*X*Y) time, O(T*X*Y) memory.
func Averaged(x []float64, f *field.Field, p Params, opts ...Option) (*field.Field, error) {
	m, err := Prepare(f, p.Window, opts...)
	if err != nil {
		return nil, err
	}

	return m.Averaged(x, p)
}

// Averaged is the lag-averaged correlation against prepared moments.
// p.Window must equal the window the moments were prepared with.
//
// Every finite output value lies in [-1,1]: overshoots within the bounds
// tolerance are clamped, anything further fails the whole call with
// ErrCorrelationBounds and no result. NaN/Inf from zero-variance windows
// pass through.
func (m *Moments) Averaged(x []float64, p Params) (*field.Field, error) {
	r, err := m.begin("Averaged", x, p)
	if err != nil {
		return nil, err
	}
	nt, nx, ny := m.f.Shape()
	cells, steps := m.f.Cells(), p.Len(nt)
	out, err := field.New(steps, nx, ny)
	if err != nil {
		return nil, err
	}
	acc := out.Data()

	// scratch sized for lag 0, the longest single-lag result
	full := (nt - m.window) * cells
	cov, corr := make([]float64, full), make([]float64, full)
	var n, off int
	for lag := 0; lag <= p.LagMax; lag++ {
		n = (nt - lag - m.window) * cells
		if err = m.lagged(r, lag, cov[:n], corr[:n]); err != nil {
			return nil, err
		}
		off = (p.LagMax + 1 - lag) * cells
		floats.Add(acc, corr[off:off+len(acc)])
	}
	floats.Scale(1/float64(p.Lags()), acc)

	if err = checkBounds(acc, cells, ny, m.opts.boundsTol); err != nil {
		return nil, err
	}

	return out, nil
}

// begin validates a lag-range computation and prepares the reference.
func (m *Moments) begin(op string, x []float64, p Params) (*reference, error) {
	if err := p.Validate(m.f.Len()); err != nil {
		return nil, err
	}
	if p.Window != m.window {
		return nil, lagcorrErrorf(op, ErrConfiguration,
			"window=%d, moments prepared for window=%d", p.Window, m.window)
	}

	return m.reference(op, x)
}

// checkBounds clamps near-unit overshoots in place and reports the first
// finite value beyond tol. acc is a time-major buffer with cells per step.
func checkBounds(acc []float64, cells, ny int, tol float64) error {
	for i, v := range acc {
		if (v >= -1 && v <= 1) || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if c := clampUnit(v, tol); c != v {
			acc[i] = c
			continue
		}
		t, cell := i/cells, i%cells

		return lagcorrErrorf("Averaged", ErrCorrelationBounds,
			"t=%d,x=%d,y=%d value=%g", t, cell/ny, cell%ny, v)
	}

	return nil
}
