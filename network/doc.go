// SPDX-License-Identifier: MIT

// Package network builds climate networks from a gridded field: every grid
// point is taken in turn as the reference series against the whole field.
//
// Modes:
//
//   - BuildGraph: lag-averaged correlation per source, thresholded into a
//     time-dependent undirected edge set (snapshot.Network) with
//     Params.Len(T) slots. A source's own cell always passes, so {A,A}
//     is kept unless the Builder was given WithoutLoops().
//   - BuildStrength: network-strength statistic per source, averaged over
//     the grid (non-finite values skipped) and summed over sources, then
//     divided by X·Y, giving a StrengthSeries of Params.Len(T) values.
//
// Both results carry Offset = Params.Offset(): slot k describes reference
// time Offset+k of the input field.
//
// Execution:
//
//	Field moments are prepared once per build and shared read-only. The
//	source loop runs on an errgroup limited to WithWorkers(n) goroutines
//	(default GOMAXPROCS). Each source produces its own partial result (the
//	threshold crossings in graph mode, a series in strength mode); after
//	all workers finish, partials are folded in row-major source order by a
//	single goroutine. Output is therefore identical for any worker count.
//	The context is checked before each source; the first error cancels the
//	rest of the sweep and is returned without a partial result.
//
//	No pair short-circuit is taken: the lag-averaged correlation of A
//	against B is not that of B against A, so both are evaluated and
//	symmetric deduplication decides the edge set.
//
// Event detection:
//
//	DetectAlarms flags upward crossings S[k-1] < θ <= S[k] of a strength
//	series. Summarize and PercentileThreshold help pick θ from the series.
//
// Logging:
//
//	Builds log through log/slog (WithLogger, default slog.Default()):
//	Info at start and finish tagged with the run ID, Debug per source.
package network
