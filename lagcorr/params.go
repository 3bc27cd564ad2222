// SPDX-License-Identifier: MIT

package lagcorr

// Params are the two required knobs of a lagged analysis.
//   - LagMax: inclusive upper bound of the lag range 0..LagMax (>= 0).
//   - Window: moving-statistic width in samples (> 0).
type Params struct {
	LagMax int
	Window int
}

// Validate checks p against a series of nt samples.
// Errors: ErrConfiguration when Window <= 0, LagMax < 0 or nt <= LagMax+Window.
func (p Params) Validate(nt int) error {
	switch {
	case p.Window <= 0:
		return lagcorrErrorf("Params.Validate", ErrConfiguration, "window=%d must be positive", p.Window)
	case p.LagMax < 0:
		return lagcorrErrorf("Params.Validate", ErrConfiguration, "lag_max=%d must be non-negative", p.LagMax)
	case nt <= p.LagMax+p.Window:
		return lagcorrErrorf("Params.Validate", ErrConfiguration,
			"T=%d must exceed lag_max+window=%d", nt, p.LagMax+p.Window)
	}

	return nil
}

// Lags returns the number of lags, LagMax+1.
func (p Params) Lags() int { return p.LagMax + 1 }

// Len returns the lag-aligned output length T-LagMax-1-Window for nt samples,
// or 0 when nt is too short.
func (p Params) Len(nt int) int {
	if n := nt - p.LagMax - 1 - p.Window; n > 0 {
		return n
	}

	return 0
}

// Offset is the reference time index of output entry 0: entry c of an
// averaged or strength result describes time Offset()+c.
func (p Params) Offset() int { return p.LagMax + 1 + p.Window }
