// SPDX-License-Identifier: MIT

// Package climnet builds climate networks from gridded time series: who is
// coupled to whom, at which lag, and when the coupling spikes.
//
// What is climnet?
//
//	An in-memory, pure-Go toolkit over a (time, x, y) field:
//		• Moving-window moments: trailing mean and population std, NaN warm-up
//		• Lagged covariance/correlation of a reference series against a field
//		• Lag-averaged correlation with a hard [-1,1] bounds contract
//		• Network strength: (max − mean)/std of |cov| across lags
//		• Time-dependent undirected networks with symmetric edge dedup
//		• Grid-wide builders (graph and strength modes) on a bounded worker pool
//		• Alarm detection on strength series
//
// Layout:
//
//	field/    : Field (time-major 3-D buffer), GridPoint, Deseasonalize, RegionMean
//	moving/   : trailing moving mean / std over series and fields
//	lagcorr/  : Params, Prepare, Lagged, Averaged, Strength
//	snapshot/ : Edge, Slot, Network, Threshold, Merge, DegreeField
//	network/  : Builder.BuildGraph / BuildStrength, DetectAlarms, Summarize
//	config/   : YAML parameters with CLIMNET_* overrides
//
// Typical flow:
//
//	f, _ := field.FromSlices(raw)          // [t][x][y]
//	anom, _ := f.Deseasonalize(365)
//	b := network.NewBuilder(network.WithWorkers(8))
//	res, _ := b.BuildStrength(ctx, anom, lagcorr.Params{LagMax: 200, Window: 365})
//	alarms, _ := res.Alarms(2.82)
//
// Every output slot k maps back to input time Params.Offset()+k, where
// Offset = LagMax + 1 + Window.
//
// Guarantees:
//
//   - Inputs are never mutated; outputs are freshly allocated.
//   - Builder output is identical for any worker count.
//   - Non-finite statistics (zero-variance windows) propagate as NaN/Inf and
//     are skipped by thresholding and spatial averaging.
package climnet
