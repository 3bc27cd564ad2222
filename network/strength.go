// SPDX-License-Identifier: MIT

package network

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/climnet/field"
	"github.com/katalvlaran/climnet/lagcorr"
	"gonum.org/v1/gonum/floats"
)

// StrengthResult is the output of BuildStrength.
type StrengthResult struct {
	RunID  uuid.UUID
	Params lagcorr.Params
	Offset int // reference time of Series[0]
	Series []float64
}

// BuildStrength computes the grid-wide network-strength series: for every
// source the strength field is averaged over (x,y) ignoring non-finite
// values, the per-source series are summed, and the sum is divided by X·Y.
// A source with no finite value at a time step contributes nothing there.
//
// Errors: ErrNilField, lagcorr.ErrConfiguration, context errors.
// Complexity: O(X·Y · LagMax · T·X·Y) time.
func (b *Builder) BuildStrength(ctx context.Context, f *field.Field, p lagcorr.Params) (*StrengthResult, error) {
	m, err := b.prepare(f, p)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	id, logger := b.newRun("strength", f, p)
	steps := p.Len(f.Len())

	parts := make([][]float64, f.Cells())
	err = b.sweep(ctx, f, func(i int, pt field.GridPoint, x []float64) error {
		s, err := m.Strength(x, p)
		if err != nil {
			return err
		}
		parts[i] = spatialMean(s)
		logger.Debug("source done", "point", pt.ID())

		return nil
	})
	if err != nil {
		logger.Error("build failed", "error", err)
		return nil, err
	}

	series := make([]float64, steps)
	for _, part := range parts {
		for k, v := range part {
			if finite(v) {
				series[k] += v
			}
		}
	}
	floats.Scale(1/float64(f.Cells()), series)
	logger.Info("build finished", "steps", steps, "duration", time.Since(start))

	return &StrengthResult{
		RunID:  id,
		Params: p,
		Offset: p.Offset(),
		Series: series,
	}, nil
}

// spatialMean averages each time step of s over its finite cells.
// A step with no finite cell is NaN.
func spatialMean(s *field.Field) []float64 {
	out := make([]float64, s.Len())
	var (
		sum float64
		n   int
	)
	for t := range out {
		sum, n = 0, 0
		for _, v := range s.Row(t) {
			if !finite(v) {
				continue
			}
			sum += v
			n++
		}
		if n == 0 {
			out[t] = math.NaN()
			continue
		}
		out[t] = sum / float64(n)
	}

	return out
}
