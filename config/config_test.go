// SPDX-License-Identifier: MIT

package config_test

import (
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/climnet/config"
	"github.com/katalvlaran/climnet/field"
	"github.com/katalvlaran/climnet/lagcorr"
	"github.com/katalvlaran/climnet/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	c, err := config.LoadFile("testdata/params.yaml")
	require.NoError(t, err)
	assert.Equal(t, lagcorr.Params{LagMax: 200, Window: 365}, c.Params)
	assert.Equal(t, 0.5, c.Threshold)
	assert.Equal(t, 4, c.Workers)
	assert.Equal(t, 1e-6, c.BoundsTolerance)
	assert.Equal(t, lagcorr.MeasureCorrelation, c.Measure)
	assert.False(t, c.SkipSelfEdges)
	assert.Equal(t, 365, c.SeasonPeriod)
	assert.Equal(t, 95.0, c.AlarmPercentile)

	_, err = config.LoadFile("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load(strings.NewReader("lag_max: 0\nwindow: 3\nthreshold: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, lagcorr.DefaultBoundsTolerance, c.BoundsTolerance)
	assert.Equal(t, lagcorr.MeasureCovariance, c.Measure)
	assert.Zero(t, c.Workers)
	assert.Zero(t, c.SeasonPeriod)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		err  error
	}{
		{"MissingAll", "workers: 2\n", config.ErrMissingField},
		{"MissingThreshold", "lag_max: 1\nwindow: 2\n", config.ErrMissingField},
		{"ZeroWindow", "lag_max: 1\nwindow: 0\nthreshold: 0.5\n", config.ErrInvalid},
		{"NegativeLag", "lag_max: -1\nwindow: 2\nthreshold: 0.5\n", config.ErrInvalid},
		{"NegativeThreshold", "lag_max: 1\nwindow: 2\nthreshold: -0.5\n", config.ErrInvalid},
		{"InfThreshold", "lag_max: 1\nwindow: 2\nthreshold: .inf\n", config.ErrInvalid},
		{"BadMeasure", "lag_max: 1\nwindow: 2\nthreshold: 0.5\nmeasure: spearman\n", config.ErrInvalid},
		{"BadPercentile", "lag_max: 1\nwindow: 2\nthreshold: 0.5\nalarm_percentile: 120\n", config.ErrInvalid},
		{"NegativeWorkers", "lag_max: 1\nwindow: 2\nthreshold: 0.5\nworkers: -3\n", config.ErrInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := config.Load(strings.NewReader("lag_max: 1\nwindow: 2\nthreshold: 0.5\nwindw: 3\n"))
	assert.Error(t, err, "unknown keys are rejected")
	_, err = config.Load(strings.NewReader("lag_max: [1\n"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	c, err := config.Load(strings.NewReader("lag_max: 1\nwindow: 2\nthreshold: 0.5\n"))
	require.NoError(t, err)

	env := map[string]string{
		"CLIMNET_LAG_MAX":          "10",
		"CLIMNET_WINDOW":           " 30 ",
		"CLIMNET_THRESHOLD":        "0.75",
		"CLIMNET_MEASURE":          "corr",
		"CLIMNET_SKIP_SELF_EDGES": "true",
		"CLIMNET_ALARM_PERCENTILE": "90",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]

		return v, ok
	}
	require.NoError(t, c.ApplyEnv(lookup))
	assert.Equal(t, lagcorr.Params{LagMax: 10, Window: 30}, c.Params)
	assert.Equal(t, 0.75, c.Threshold)
	assert.Equal(t, lagcorr.MeasureCorrelation, c.Measure)
	assert.True(t, c.SkipSelfEdges)
	assert.Equal(t, 90.0, c.AlarmPercentile)

	env = map[string]string{"CLIMNET_WINDOW": "many"}
	err = c.ApplyEnv(lookup)
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.Equal(t, 30, c.Params.Window, "failed parse leaves value unchanged")

	env = map[string]string{"CLIMNET_WINDOW": "0"}
	assert.ErrorIs(t, c.ApplyEnv(lookup), config.ErrInvalid)
}

func TestApplyEnv_ProcessEnvironment(t *testing.T) {
	t.Setenv("CLIMNET_WORKERS", "3")
	c, err := config.Load(strings.NewReader("lag_max: 1\nwindow: 2\nthreshold: 0.5\n"))
	require.NoError(t, err)
	require.NoError(t, c.ApplyEnv(nil))
	assert.Equal(t, 3, c.Workers)
}

func TestBuilderOptions(t *testing.T) {
	c := &config.Config{
		Params:          lagcorr.Params{LagMax: 1, Window: 2},
		Threshold:       0.99,
		Workers:         2,
		BoundsTolerance: lagcorr.DefaultBoundsTolerance,
		SkipSelfEdges:   true,
	}
	require.NoError(t, c.Validate())
	b := network.NewBuilder(c.BuilderOptions(slog.New(slog.NewTextHandler(io.Discard, nil)))...)
	assert.Equal(t, 2, b.Workers())
	assert.Len(t, c.NetworkOptions(), 1)

	c.SkipSelfEdges = false
	assert.Empty(t, c.NetworkOptions())
}

func TestPreprocess(t *testing.T) {
	f, err := field.FromData(4, 1, 1, []float64{1, 5, 3, 7})
	require.NoError(t, err)

	c := &config.Config{}
	same, err := c.Preprocess(f)
	require.NoError(t, err)
	assert.Same(t, f, same)

	c.SeasonPeriod = 2
	anomalies, err := c.Preprocess(f)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -1, 1, 1}, anomalies.Data())

	c.SeasonPeriod = 3
	_, err = c.Preprocess(f)
	assert.ErrorIs(t, err, field.ErrBadPeriod)
}

func TestAlarmThreshold(t *testing.T) {
	series := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, math.NaN()}
	c := &config.Config{}
	_, ok, err := c.AlarmThreshold(series)
	require.NoError(t, err)
	assert.False(t, ok)

	c.AlarmPercentile = 50
	theta, ok, err := c.AlarmThreshold(series)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5.0, theta)
}
