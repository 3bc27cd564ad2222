// SPDX-License-Identifier: MIT

// Package field holds gridded time-series data: a 3-D array indexed
// (time, x, y) of float64 samples, the GridPoint node identity, and the
// preprocessing helpers that produce new fields from old ones.
//
// What:
//
//   - Field stores one contiguous row-major buffer, time-major:
//     offset = (t*nx + x)*ny + y, so one time step of the whole grid is
//     a single contiguous run. Moving-window kernels walk time in the outer
//     loop and cells in the inner loop.
//   - Ingestion (FromSlices, FromData) deep-copies caller data and rejects
//     NaN/Inf. Fields produced by the analysis packages may carry NaN/Inf
//     where statistics are undefined.
//   - GridPoint{X,Y} identifies a cell; ID() renders it as "x,y".
//
// Preprocessing:
//
//   - Deseasonalize(period) removes the per-phase mean over whole periods
//     (e.g. 365 for daily data) and returns a new Field.
//   - RegionMean(x0,x1,y0,y1) averages an index box per time step, giving a
//     reference series for lagged analysis.
//
// Errors:
//
//   - ErrEmptyField: zero-sized grid.
//   - ErrNonRectangular: ragged nested slices or a buffer of the wrong size.
//   - ErrNaNInf: non-finite sample at ingestion.
//   - ErrOutOfRange: index outside the field.
//   - ErrBadPeriod: period <= 0 or the series is not a whole number of periods.
//   - ErrBadRegion: empty or out-of-range index box.
//
// Fields are never mutated by the packages that consume them.
package field
