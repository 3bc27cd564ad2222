// SPDX-License-Identifier: MIT

// Package snapshot stores a time-dependent undirected network over grid
// points: one Slot of edges per time index.
//
// What:
//
//   - Edge{Source, Target} is an unordered pair of field.GridPoint values.
//     {A,B} and {B,A} are the same edge; whichever orientation is inserted
//     first is the one kept and reported.
//   - Slot is the edge set of one time index, with a symmetric containment
//     check (HasEdge), deterministic iteration (Edges, sorted by canonical
//     key), degree and neighbour queries. A Slot is guarded by its own
//     RWMutex, so concurrent writers may share a Network.
//   - Network is a fixed-length sequence of Slots. Edges are only ever
//     added; nothing removes them.
//
// Thresholding:
//
//	Threshold(source, corr, θ) turns one source point's correlation field
//	(time × x × y) into edges: every finite |corr[t,x,y]| >= θ inserts
//	{source,(x,y)} into slot t. The call is idempotent and returns the
//	number of new edges. The source's own cell passes like any other, so
//	{source,source} is kept unless the Network was created WithoutLoops().
//
//	Crossings(source, corr, θ) lists the same pairs without a Network; it
//	allocates only for the hits. Network.Insert adds such a list in order.
//
// Merge folds one Network into another slot by slot. Inserting per-source
// crossings, or merging per-source partial networks, in a fixed order yields
// the same edge set, orientations included, as thresholding into one shared
// Network in that order.
//
// Errors:
//
//   - ErrBadSlots: negative slot count.
//   - ErrSlotOutOfRange: time index outside [0, Len()), including in Insert.
//   - ErrSlotMismatch: correlation or merged network of a different length.
//   - ErrBadThreshold: θ negative, NaN or Inf.
//   - ErrLoopNotAllowed: AddEdge of a self-pair on a WithoutLoops() network.
//   - ErrNilField: nil correlation field.
//   - ErrPointOutsideGrid: DegreeField on a grid too small for the edges.
package snapshot
