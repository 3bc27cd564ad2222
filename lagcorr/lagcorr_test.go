// SPDX-License-Identifier: MIT

package lagcorr_test

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/climnet/field"
	"github.com/katalvlaran/climnet/lagcorr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams(t *testing.T) {
	p := lagcorr.Params{LagMax: 2, Window: 4}
	assert.Equal(t, 3, p.Lags())
	assert.Equal(t, 7, p.Offset())
	assert.Equal(t, 13, p.Len(20))
	assert.Equal(t, 0, p.Len(7))
	assert.Equal(t, 0, p.Len(3))

	cases := []struct {
		name string
		p    lagcorr.Params
		nt   int
		ok   bool
	}{
		{"Valid", lagcorr.Params{LagMax: 2, Window: 4}, 20, true},
		{"Minimal", lagcorr.Params{LagMax: 0, Window: 3}, 4, true},
		{"ZeroWindow", lagcorr.Params{LagMax: 0, Window: 0}, 20, false},
		{"NegativeLag", lagcorr.Params{LagMax: -1, Window: 2}, 20, false},
		{"MinimumLength", lagcorr.Params{LagMax: 0, Window: 3}, 3, false},
		{"TooShort", lagcorr.Params{LagMax: 5, Window: 5}, 10, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.p.Validate(tc.nt)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, lagcorr.ErrConfiguration)
			}
		})
	}
}

func TestLagged_MatchesNaive(t *testing.T) {
	const nt, nx, ny, w = 60, 2, 3, 5
	f := wavy(t, nt, nx, ny)
	x := wave(nt)
	for _, lag := range []int{0, 1, 4} {
		res, err := lagcorr.Lagged(x, f, lag, w)
		require.NoError(t, err)
		assert.Equal(t, lag, res.Lag)
		assert.Equal(t, nt-lag-w, res.Corr.Len())
		assert.Equal(t, nt-lag-w, res.Cov.Len())

		wantCov, wantCorr := naiveLag(x, f, lag, w)
		assertClose(t, wantCov, res.Cov.Data(), 1e-9)
		assertClose(t, wantCorr, res.Corr.Data(), 1e-7)
	}
}

func TestLagged_Lag0SelfCorrelation(t *testing.T) {
	const nt, w = 40, 4
	x := wave(nt)
	f, err := field.New(nt, 2, 2)
	require.NoError(t, err)
	for tt := 0; tt < nt; tt++ {
		for cx := 0; cx < 2; cx++ {
			for cy := 0; cy < 2; cy++ {
				require.NoError(t, f.Set(tt, cx, cy, x[tt]))
			}
		}
	}

	res, err := lagcorr.Lagged(x, f, 0, w)
	require.NoError(t, err)
	for i, v := range res.Corr.Data() {
		assert.InDelta(t, 1.0, v, 1e-9, "index %d", i)
	}
}

// shifted is a small oscillation riding on a level that drops at step at.
func shifted(nt, at int, level, noise float64) []float64 {
	x := make([]float64, nt)
	for i := range x {
		x[i] = noise * math.Sin(0.7*float64(i))
		if i < at {
			x[i] += level
		}
	}

	return x
}

var levelShifts = []struct {
	name         string
	level, noise float64
	at, w        int
}{
	{"Aligned", 1e4, 1e-3, 100, 10},
	{"Between", 1e4, 1e-3, 103, 10},
	{"Medium", 1e3, 1e-2, 57, 7},
}

func TestLagged_Lag0SelfCorrelationAfterLevelShift(t *testing.T) {
	const nt = 200
	for _, tc := range levelShifts {
		t.Run(tc.name, func(t *testing.T) {
			x := shifted(nt, tc.at, tc.level, tc.noise)
			f, err := field.FromData(nt, 1, 1, x)
			require.NoError(t, err)

			res, err := lagcorr.Lagged(x, f, 0, tc.w)
			require.NoError(t, err)
			for i, v := range res.Corr.Data() {
				assert.InDelta(t, 1.0, v, 1e-9, "index %d", i)
			}
		})
	}
}

func TestLagged_LevelShiftMatchesNaive(t *testing.T) {
	const nt = 200
	for _, tc := range levelShifts {
		t.Run(tc.name, func(t *testing.T) {
			x := shifted(nt, tc.at, tc.level, tc.noise)
			f, err := field.FromData(nt, 1, 1, shifted(nt, tc.at+2, tc.level, tc.noise))
			require.NoError(t, err)
			for _, lag := range []int{0, 1, 3} {
				res, err := lagcorr.Lagged(x, f, lag, tc.w)
				require.NoError(t, err)
				_, want := naiveLag(x, f, lag, tc.w)
				assertClose(t, want, res.Corr.Data(), 1e-7)
			}
		})
	}
}

func TestLagged_ConstantReference(t *testing.T) {
	const nt, w = 10, 3
	x := make([]float64, nt)
	for i := range x {
		x[i] = 1
	}
	f := wavy(t, nt, 2, 2)

	res, err := lagcorr.Lagged(x, f, 0, w)
	require.NoError(t, err)
	for i, v := range res.Corr.Data() {
		assert.True(t, math.IsNaN(v) || math.IsInf(v, 0), "index %d: want non-finite, got %v", i, v)
	}
	for i, v := range res.Cov.Data() {
		assert.InDelta(t, 0.0, v, 1e-12, "index %d", i)
	}
}

func TestLagged_Errors(t *testing.T) {
	f := wavy(t, 10, 1, 2)
	x := wave(10)

	cases := []struct {
		name string
		x    []float64
		f    *field.Field
		lag  int
		w    int
		err  error
	}{
		{"NilField", x, nil, 0, 3, lagcorr.ErrNilField},
		{"ZeroWindow", x, f, 0, 0, lagcorr.ErrConfiguration},
		{"NegativeLag", x, f, -1, 3, lagcorr.ErrConfiguration},
		{"TooShort", x, f, 7, 3, lagcorr.ErrConfiguration},
		{"LengthMismatch", x[:9], f, 0, 3, lagcorr.ErrConfiguration},
		{"NaNReference", append(append([]float64{}, x[:9]...), math.NaN()), f, 0, 3, lagcorr.ErrConfiguration},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lagcorr.Lagged(tc.x, tc.f, tc.lag, tc.w)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestAveraged_Length(t *testing.T) {
	cases := []struct{ nt, lagMax, w int }{
		{10, 0, 1}, {10, 2, 3}, {30, 5, 7}, {9, 4, 4}, {50, 0, 49},
	}
	for _, tc := range cases {
		f := wavy(t, tc.nt, 2, 1)
		out, err := lagcorr.Averaged(wave(tc.nt), f, lagcorr.Params{LagMax: tc.lagMax, Window: tc.w})
		require.NoError(t, err)
		assert.Equal(t, tc.nt-tc.lagMax-1-tc.w, out.Len(), "T=%d lag_max=%d w=%d", tc.nt, tc.lagMax, tc.w)
	}
}

func TestAveraged_MinimumLength(t *testing.T) {
	f := wavy(t, 3, 1, 1)
	_, err := lagcorr.Averaged(wave(3), f, lagcorr.Params{LagMax: 0, Window: 3})
	assert.ErrorIs(t, err, lagcorr.ErrConfiguration)
}

func TestAveraged_IsMeanOfAlignedLags(t *testing.T) {
	const nt = 50
	p := lagcorr.Params{LagMax: 3, Window: 6}
	f := wavy(t, nt, 2, 2)
	x := wave(nt)

	m, err := lagcorr.Prepare(f, p.Window)
	require.NoError(t, err)
	avg, err := m.Averaged(x, p)
	require.NoError(t, err)

	cells := f.Cells()
	want := make([]float64, p.Len(nt)*cells)
	for lag := 0; lag <= p.LagMax; lag++ {
		res, err := m.Lagged(x, lag)
		require.NoError(t, err)
		off := (p.LagMax + 1 - lag) * cells
		for i := range want {
			want[i] += res.Corr.Data()[off+i] / float64(p.Lags())
		}
	}
	assertClose(t, want, avg.Data(), 1e-12)
}

func TestAveraged_Bounds(t *testing.T) {
	const nt = 120
	f := wavy(t, nt, 3, 3)
	out, err := lagcorr.Averaged(wave(nt), f, lagcorr.Params{LagMax: 5, Window: 3})
	require.NoError(t, err)
	for i, v := range out.Data() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		assert.True(t, v >= -1 && v <= 1, "index %d: %v", i, v)
	}
}

func TestAveraged_BoundsAfterLevelShift(t *testing.T) {
	const nt = 200
	for _, tc := range levelShifts {
		t.Run(tc.name, func(t *testing.T) {
			x := shifted(nt, tc.at, tc.level, tc.noise)
			f, err := field.FromData(nt, 1, 1, x)
			require.NoError(t, err)

			out, err := lagcorr.Averaged(x, f, lagcorr.Params{LagMax: 3, Window: tc.w})
			require.NoError(t, err)
			for i, v := range out.Data() {
				require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "index %d", i)
				assert.True(t, v >= -1 && v <= 1, "index %d: %v", i, v)
			}
		})
	}
}

func TestAveraged_IdenticalIncreasingSeries(t *testing.T) {
	// with window 2 every lagged pair of increasing series is perfectly correlated
	const nt = 12
	x := make([]float64, nt)
	for i := range x {
		x[i] = float64(i) + 0.1*float64(i*i)
	}
	f, err := field.FromData(nt, 1, 1, x)
	require.NoError(t, err)

	out, err := lagcorr.Averaged(x, f, lagcorr.Params{LagMax: 1, Window: 2})
	require.NoError(t, err)
	require.Equal(t, nt-4, out.Len())
	for i, v := range out.Data() {
		assert.InDelta(t, 1.0, v, 1e-9, "index %d", i)
	}
}

func TestAveraged_WindowMismatch(t *testing.T) {
	f := wavy(t, 20, 1, 1)
	m, err := lagcorr.Prepare(f, 4)
	require.NoError(t, err)
	_, err = m.Averaged(wave(20), lagcorr.Params{LagMax: 1, Window: 5})
	assert.ErrorIs(t, err, lagcorr.ErrConfiguration)
	_, err = m.Strength(wave(20), lagcorr.Params{LagMax: 1, Window: 5})
	assert.ErrorIs(t, err, lagcorr.ErrConfiguration)
}

func TestMoments_ConcurrentUse(t *testing.T) {
	const nt = 40
	p := lagcorr.Params{LagMax: 2, Window: 5}
	f := wavy(t, nt, 3, 2)
	m, err := lagcorr.Prepare(f, p.Window)
	require.NoError(t, err)
	assert.Same(t, f, m.Field())
	assert.Equal(t, 5, m.Window())

	want, err := m.Averaged(wave(nt), p)
	require.NoError(t, err)

	results := make([]*field.Field, 8)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = m.Averaged(wave(nt), p)
		}(i)
	}
	wg.Wait()
	for i, r := range results {
		require.NotNil(t, r, "worker %d", i)
		assert.Equal(t, want.Data(), r.Data(), "worker %d", i)
	}
}

func TestCorePaths_DoNotMutateInputs(t *testing.T) {
	const nt = 30
	f := wavy(t, nt, 2, 2)
	x := wave(nt)
	fBefore := f.Clone()
	xBefore := append([]float64(nil), x...)

	p := lagcorr.Params{LagMax: 2, Window: 4}
	_, err := lagcorr.Averaged(x, f, p)
	require.NoError(t, err)
	_, err = lagcorr.Strength(x, f, p)
	require.NoError(t, err)

	assert.Equal(t, fBefore.Data(), f.Data())
	assert.Equal(t, xBefore, x)
}
