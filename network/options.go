// SPDX-License-Identifier: MIT

package network

import (
	"log/slog"
	"runtime"

	"github.com/katalvlaran/climnet/lagcorr"
	"github.com/katalvlaran/climnet/snapshot"
)

// DefaultWorkers selects runtime.GOMAXPROCS(0) workers.
const DefaultWorkers = 0

// Option configures a Builder.
type Option func(b *Builder)

// WithWorkers bounds the number of sources processed concurrently.
// 0 means DefaultWorkers. Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("network: WithWorkers requires n >= 0")
	}

	return func(b *Builder) {
		if n == DefaultWorkers {
			n = runtime.GOMAXPROCS(0)
		}
		b.workers = n
	}
}

// WithLogger sets the build logger. nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithBoundsTolerance forwards lagcorr.WithBoundsTolerance.
func WithBoundsTolerance(tol float64) Option {
	o := lagcorr.WithBoundsTolerance(tol)

	return func(b *Builder) { b.corrOpts = append(b.corrOpts, o) }
}

// WithMeasure forwards lagcorr.WithMeasure to strength builds.
func WithMeasure(m lagcorr.Measure) Option {
	o := lagcorr.WithMeasure(m)

	return func(b *Builder) { b.corrOpts = append(b.corrOpts, o) }
}

// WithoutLoops drops self-pairs {A,A} from graph builds. By default every
// source keeps an edge to its own cell.
func WithoutLoops() Option {
	return func(b *Builder) { b.netOpts = append(b.netOpts, snapshot.WithoutLoops()) }
}
