// SPDX-License-Identifier: MIT

package lagcorr

import "github.com/katalvlaran/climnet/field"

// LagStats is the windowed covariance and correlation at one lag.
// Cov and Corr have T-Lag-Window time steps; step k is reference time
// Window+k+Lag.
type LagStats struct {
	Lag  int
	Cov  *field.Field
	Corr *field.Field
}

// Lagged computes windowed covariance and correlation between reference x
// and every cell of f with x leading by lag steps.
//
// Errors: ErrNilField, ErrConfiguration.
// Complexity: O(T*X*Y) time and memory.
func Lagged(x []float64, f *field.Field, lag, w int, opts ...Option) (*LagStats, error) {
	m, err := Prepare(f, w, opts...)
	if err != nil {
		return nil, err
	}

	return m.Lagged(x, lag)
}

// Lagged is the single-lag computation against prepared moments.
//
// Errors: ErrConfiguration (lag < 0, T <= lag+window, bad reference).
func (m *Moments) Lagged(x []float64, lag int) (*LagStats, error) {
	nt, nx, ny := m.f.Shape()
	if lag < 0 {
		return nil, lagcorrErrorf("Lagged", ErrConfiguration, "lag=%d must be non-negative", lag)
	}
	if nt <= lag+m.window {
		return nil, lagcorrErrorf("Lagged", ErrConfiguration,
			"T=%d must exceed lag+window=%d", nt, lag+m.window)
	}
	r, err := m.reference("Lagged", x)
	if err != nil {
		return nil, err
	}
	steps := nt - lag - m.window
	out := &LagStats{Lag: lag}
	if out.Cov, err = field.New(steps, nx, ny); err != nil {
		return nil, err
	}
	if out.Corr, err = field.New(steps, nx, ny); err != nil {
		return nil, err
	}
	if err = m.lagged(r, lag, out.Cov.Data(), out.Corr.Data()); err != nil {
		return nil, err
	}

	return out, nil
}
