// SPDX-License-Identifier: MIT

package network

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/google/uuid"
	"github.com/katalvlaran/climnet/field"
	"github.com/katalvlaran/climnet/lagcorr"
	"github.com/katalvlaran/climnet/snapshot"
	"golang.org/x/sync/errgroup"
)

// Builder runs network builds over a field. A Builder holds configuration
// only and may be reused, including concurrently.
type Builder struct {
	workers  int
	logger   *slog.Logger
	corrOpts []lagcorr.Option
	netOpts  []snapshot.NetworkOption
}

// NewBuilder returns a Builder with GOMAXPROCS workers and slog.Default().
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		workers: runtime.GOMAXPROCS(0),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}

	return b
}

// Workers returns the concurrency limit.
func (b *Builder) Workers() int { return b.workers }

// prepare validates the inputs shared by both modes and computes the moments.
func (b *Builder) prepare(f *field.Field, p lagcorr.Params) (*lagcorr.Moments, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if err := p.Validate(f.Len()); err != nil {
		return nil, err
	}

	return lagcorr.Prepare(f, p.Window, b.corrOpts...)
}

// sweep runs work once per grid point, row-major, on a bounded errgroup.
// work receives the point's index in f.Points() and its column.
func (b *Builder) sweep(ctx context.Context, f *field.Field, work func(i int, pt field.GridPoint, x []float64) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)

	for i, pt := range f.Points() {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			x, err := f.Column(pt.X, pt.Y)
			if err != nil {
				return err
			}
			if err = work(i, pt, x); err != nil {
				return fmt.Errorf("source %v: %w", pt, err)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// a parent cancelled before any worker observed it
	return ctx.Err()
}

// newRun tags a build with a fresh run ID.
func (b *Builder) newRun(mode string, f *field.Field, p lagcorr.Params) (uuid.UUID, *slog.Logger) {
	id := uuid.New()
	nt, nx, ny := f.Shape()
	logger := b.logger.With(
		slog.String("run_id", id.String()),
		slog.String("mode", mode),
	)
	logger.Info("build starting",
		"t", nt, "x", nx, "y", ny,
		"lag_max", p.LagMax, "window", p.Window,
		"workers", b.workers,
	)

	return id, logger
}
