// SPDX-License-Identifier: MIT

// Package moving computes trailing moving-window statistics: the moving mean
// and the population moving standard deviation.
//
// What:
//
//   - Position t aggregates samples [t-w+1, t] inclusive.
//   - Positions t < w-1 have no full window and are NaN, never zero.
//   - The standard deviation is the population one (divide by w).
//   - For a field.Field the window runs strictly along the time axis; every
//     (x,y) cell is an independent lane.
//
// How:
//
//	A single kernel walks time in the outer loop and lanes in the inner loop,
//	keeping per-lane running sums of (v - pivot) and (v - pivot)². The pivot
//	is a sample from the current window, which keeps the sums small when the
//	data sit far from zero. Every w steps the sums are rebuilt exactly from
//	the window and the pivot is moved to the window start, so rounding drift
//	never outlives one window. A lane is also rebuilt early when its centred
//	moment collapses against the magnitude of its sums, as after a level
//	shift leaves the window. Amortised cost is O(1) per sample.
//
//	A variance that comes out negative, or smaller than 1e-12 of the shifted
//	second moment, is rounding residue and is reported as exactly 0. A
//	constant window therefore has std == 0.
//
// API:
//
//	Mean(x, w), Std(x, w), MeanStd(x, w)   // one series
//	FieldMeanStd(f, w)                     // every cell of a Field
//	MeanLanes(src, lanes, w)               // interleaved lanes, mean only
//
// Errors:
//
//   - ErrBadWindow: w <= 0.
//   - ErrNilField: nil *field.Field.
//   - ErrBadLanes: lanes <= 0 or len(src) not a multiple of lanes.
//
// Inputs shorter than w are legal; the output is all NaN.
package moving
