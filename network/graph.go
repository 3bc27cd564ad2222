// SPDX-License-Identifier: MIT

package network

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/climnet/field"
	"github.com/katalvlaran/climnet/lagcorr"
	"github.com/katalvlaran/climnet/snapshot"
)

// GraphResult is the output of BuildGraph.
type GraphResult struct {
	RunID     uuid.UUID
	Params    lagcorr.Params
	Threshold float64
	Offset    int // reference time of slot 0
	Network   *snapshot.Network
}

// BuildGraph takes every grid point of f as a source, computes its
// lag-averaged correlation against the whole field and keeps the pairs with
// |corr| >= threshold as edges of a time-dependent network. Workers hold
// only their sources' crossings; these are inserted row-major after all
// sources finish.
//
// Errors: ErrNilField, ErrBadThreshold (also matching
// lagcorr.ErrConfiguration), lagcorr.ErrConfiguration,
// lagcorr.ErrCorrelationBounds, context errors.
// Complexity: O(X·Y · LagMax · T·X·Y) time.
func (b *Builder) BuildGraph(ctx context.Context, f *field.Field, p lagcorr.Params, threshold float64) (*GraphResult, error) {
	if threshold < 0 || math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return nil, fmt.Errorf("BuildGraph(threshold=%v): %w: %w", threshold, ErrBadThreshold, lagcorr.ErrConfiguration)
	}
	m, err := b.prepare(f, p)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	id, logger := b.newRun("graph", f, p)
	steps := p.Len(f.Len())

	parts := make([][]snapshot.Crossing, f.Cells())
	err = b.sweep(ctx, f, func(i int, pt field.GridPoint, x []float64) error {
		corr, err := m.Averaged(x, p)
		if err != nil {
			return err
		}
		cs, err := snapshot.Crossings(pt, corr, threshold)
		if err != nil {
			return err
		}
		parts[i] = cs
		logger.Debug("source done", "point", pt.ID(), "crossings", len(cs))

		return nil
	})
	if err != nil {
		logger.Error("build failed", "error", err)
		return nil, err
	}

	net, err := snapshot.New(steps, b.netOpts...)
	if err != nil {
		return nil, err
	}
	for i, cs := range parts {
		if _, err = net.Insert(cs); err != nil {
			return nil, err
		}
		parts[i] = nil
	}
	logger.Info("build finished",
		"slots", steps,
		"edges", net.EdgeCount(),
		"threshold", threshold,
		"duration", time.Since(start),
	)

	return &GraphResult{
		RunID:     id,
		Params:    p,
		Threshold: threshold,
		Offset:    p.Offset(),
		Network:   net,
	}, nil
}
