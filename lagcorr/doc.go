// SPDX-License-Identifier: MIT

// Package lagcorr measures time-lagged coupling between a reference series
// and every cell of a field.Field with sliding-window statistics.
//
// Alignment:
//
//	For lag l the reference leads the field by l steps: x[s+l] is paired
//	with f[s] for s in [0, T-l). Trailing windows of w pairs give
//
//	  cov(s)  = movmean(x·f) − movmean(x)·movmean(f)
//	  corr(s) = cov(s) / (movstd(x)·movstd(f))
//
//	and entry k of a single-lag result is s = w+k, i.e. reference time
//	s+l. A lag-l result therefore has T−l−w time steps.
//
//	Lag-averaged results and strength results are right-aligned across
//	lags 0..LagMax to the common length C = T−LagMax−1−Window; entry c sits
//	at reference time Params.Offset()+c.
//
// Components:
//
//   - Prepare(f, w) computes the lag-independent field moments once. The
//     returned *Moments is immutable and safe for concurrent use; many
//     reference series (e.g. every grid point as a source) share it.
//   - Lagged: covariance and correlation at one lag.
//   - Averaged: correlation averaged over lags 0..LagMax.
//   - Strength: the network-strength statistic
//     S = (max − mean) / std over the lag distribution of |cov|
//     (or |corr| with WithMeasure(MeasureCorrelation)).
//
// Numerics:
//
//	Cross sums are kept over the trailing window around pivots taken from
//	that window: the first samples at the start, then the exact window
//	means from the prepared moments at every rebuild. Rebuilds happen every
//	window length, and early for any side whose centred moment collapses
//	against the magnitude of its sums, so a level shift far larger than
//	the local spread does not leak into later windows.
//
//	Correlations that overshoot ±1 by no more than the bounds tolerance
//	(DefaultBoundsTolerance) are clamped.
//	An averaged correlation beyond the tolerance means the computation is
//	wrong, and Averaged fails with ErrCorrelationBounds.
//
//	Zero-variance windows give NaN or ±Inf correlation and strength. These
//	propagate as data; thresholding and spatial averaging skip them.
//
// Errors:
//
//   - ErrConfiguration: window <= 0, lag < 0, T <= lag+window, a reference
//     of the wrong length or with non-finite samples.
//   - ErrCorrelationBounds: an averaged correlation outside [-1,1] beyond tolerance.
//   - ErrNilField: nil field.
package lagcorr
