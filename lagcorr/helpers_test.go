// SPDX-License-Identifier: MIT

package lagcorr_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/climnet/field"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

// wavy builds a deterministic nt×nx×ny field with distinct, non-constant cells.
func wavy(t *testing.T, nt, nx, ny int) *field.Field {
	t.Helper()
	f, err := field.New(nt, nx, ny)
	require.NoError(t, err)
	for tt := 0; tt < nt; tt++ {
		for x := 0; x < nx; x++ {
			for y := 0; y < ny; y++ {
				v := math.Sin(0.3*float64(tt)*float64(x+1)+float64(y)) +
					0.5*math.Cos(0.17*float64(tt*(y+2))) + float64(x-y)
				require.NoError(t, f.Set(tt, x, y, v))
			}
		}
	}

	return f
}

// wave is a deterministic non-constant reference series.
func wave(nt int) []float64 {
	x := make([]float64, nt)
	for i := range x {
		x[i] = 10 + math.Sin(0.41*float64(i)) + 0.3*math.Sin(1.3*float64(i))
	}

	return x
}

// naiveLag recomputes population covariance and correlation window by
// window with gonum; outputs use the same time-major layout as field.Field.
func naiveLag(x []float64, f *field.Field, lag, w int) (cov, corr []float64) {
	nt, nx, ny := f.Shape()
	steps := nt - lag - w
	a := make([]float64, w)
	b := make([]float64, w)
	for k := 0; k < steps; k++ {
		s := w + k
		for cx := 0; cx < nx; cx++ {
			for cy := 0; cy < ny; cy++ {
				for i := 0; i < w; i++ {
					sp := s - w + 1 + i
					a[i] = x[sp+lag]
					b[i], _ = f.At(sp, cx, cy)
				}
				c := stat.Covariance(a, b, nil) * float64(w-1) / float64(w)
				cov = append(cov, c)
				corr = append(corr, stat.Correlation(a, b, nil))
			}
		}
	}

	return cov, corr
}

// assertClose compares two buffers entrywise, treating NaN as equal to NaN.
func assertClose(t *testing.T, want, got []float64, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if math.IsNaN(want[i]) {
			require.True(t, math.IsNaN(got[i]), "index %d: want NaN, got %v", i, got[i])
			continue
		}
		require.InDelta(t, want[i], got[i], tol, "index %d", i)
	}
}
