// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/climnet/field"
	"github.com/katalvlaran/climnet/lagcorr"
	"github.com/katalvlaran/climnet/network"
	"github.com/katalvlaran/climnet/snapshot"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CLIMNET_"

var (
	// ErrMissingField indicates a required key absent from the file.
	ErrMissingField = errors.New("config: required field missing")

	// ErrInvalid indicates a value outside its allowed range.
	ErrInvalid = errors.New("config: invalid value")
)

// Config holds everything needed to run one analysis.
type Config struct {
	Params          lagcorr.Params
	Threshold       float64
	Workers         int
	BoundsTolerance float64
	Measure         lagcorr.Measure
	SkipSelfEdges   bool
	SeasonPeriod    int
	AlarmPercentile float64
}

// file mirrors the YAML layout; pointers mark required keys.
type file struct {
	LagMax          *int     `yaml:"lag_max"`
	Window          *int     `yaml:"window"`
	Threshold       *float64 `yaml:"threshold"`
	Workers         int      `yaml:"workers"`
	BoundsTolerance *float64 `yaml:"bounds_tolerance"`
	Measure         string   `yaml:"measure"`
	SkipSelfEdges   bool     `yaml:"skip_self_edges"`
	SeasonPeriod    int      `yaml:"season_period"`
	AlarmPercentile float64  `yaml:"alarm_percentile"`
}

// Load parses and validates a YAML parameter document.
//
// Errors: yaml decode errors, ErrMissingField, ErrInvalid.
func Load(r io.Reader) (*Config, error) {
	var raw file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("config: parse YAML: %w", err)
	}

	var missing []string
	if raw.LagMax == nil {
		missing = append(missing, "lag_max")
	}
	if raw.Window == nil {
		missing = append(missing, "window")
	}
	if raw.Threshold == nil {
		missing = append(missing, "threshold")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("config: %s: %w", strings.Join(missing, ", "), ErrMissingField)
	}

	c := &Config{
		Params:          lagcorr.Params{LagMax: *raw.LagMax, Window: *raw.Window},
		Threshold:       *raw.Threshold,
		Workers:         raw.Workers,
		BoundsTolerance: lagcorr.DefaultBoundsTolerance,
		SkipSelfEdges:   raw.SkipSelfEdges,
		SeasonPeriod:    raw.SeasonPeriod,
		AlarmPercentile: raw.AlarmPercentile,
	}
	if raw.BoundsTolerance != nil {
		c.BoundsTolerance = *raw.BoundsTolerance
	}
	if raw.Measure != "" {
		m, err := lagcorr.ParseMeasure(raw.Measure)
		if err != nil {
			return nil, fmt.Errorf("config: measure: %w", errors.Join(ErrInvalid, err))
		}
		c.Measure = m
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Config, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer fh.Close()

	return Load(fh)
}

// Validate checks every field's range.
// Errors: ErrInvalid.
func (c *Config) Validate() error {
	bad := func(key string, v any) error {
		return fmt.Errorf("config: %s=%v: %w", key, v, ErrInvalid)
	}
	switch {
	case c.Params.LagMax < 0:
		return bad("lag_max", c.Params.LagMax)
	case c.Params.Window <= 0:
		return bad("window", c.Params.Window)
	case !finiteNonNeg(c.Threshold):
		return bad("threshold", c.Threshold)
	case c.Workers < 0:
		return bad("workers", c.Workers)
	case !finiteNonNeg(c.BoundsTolerance):
		return bad("bounds_tolerance", c.BoundsTolerance)
	case c.Measure != lagcorr.MeasureCovariance && c.Measure != lagcorr.MeasureCorrelation:
		return bad("measure", c.Measure)
	case c.SeasonPeriod < 0:
		return bad("season_period", c.SeasonPeriod)
	case !(c.AlarmPercentile >= 0 && c.AlarmPercentile <= 100):
		return bad("alarm_percentile", c.AlarmPercentile)
	}

	return nil
}

func finiteNonNeg(v float64) bool { return v >= 0 && !math.IsInf(v, 0) }

// ApplyEnv overrides fields from CLIMNET_* variables found by lookup
// (os.LookupEnv when nil), then re-validates.
//
// Errors: ErrInvalid for unparsable or out-of-range values.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	var err error
	get := func(key string, parse func(string) error) {
		if err != nil {
			return
		}
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			return
		}
		if perr := parse(strings.TrimSpace(v)); perr != nil {
			err = fmt.Errorf("config: %s%s=%q: %w", EnvPrefix, key, v, errors.Join(ErrInvalid, perr))
		}
	}
	setInt := func(dst *int) func(string) error {
		return func(s string) error {
			v, e := strconv.Atoi(s)
			if e == nil {
				*dst = v
			}

			return e
		}
	}
	setFloat := func(dst *float64) func(string) error {
		return func(s string) error {
			v, e := strconv.ParseFloat(s, 64)
			if e == nil {
				*dst = v
			}

			return e
		}
	}
	setMeasure := func(s string) error {
		m, e := lagcorr.ParseMeasure(s)
		if e == nil {
			c.Measure = m
		}

		return e
	}
	setBool := func(s string) error {
		v, e := strconv.ParseBool(s)
		if e == nil {
			c.SkipSelfEdges = v
		}

		return e
	}

	get("LAG_MAX", setInt(&c.Params.LagMax))
	get("WINDOW", setInt(&c.Params.Window))
	get("THRESHOLD", setFloat(&c.Threshold))
	get("WORKERS", setInt(&c.Workers))
	get("BOUNDS_TOLERANCE", setFloat(&c.BoundsTolerance))
	get("MEASURE", setMeasure)
	get("SKIP_SELF_EDGES", setBool)
	get("SEASON_PERIOD", setInt(&c.SeasonPeriod))
	get("ALARM_PERCENTILE", setFloat(&c.AlarmPercentile))
	if err != nil {
		return err
	}

	return c.Validate()
}

// BuilderOptions translates the configuration into network.Builder options.
// A nil logger keeps slog.Default().
func (c *Config) BuilderOptions(logger *slog.Logger) []network.Option {
	opts := []network.Option{
		network.WithWorkers(c.Workers),
		network.WithLogger(logger),
		network.WithBoundsTolerance(c.BoundsTolerance),
		network.WithMeasure(c.Measure),
	}
	if c.SkipSelfEdges {
		opts = append(opts, network.WithoutLoops())
	}

	return opts
}

// NetworkOptions returns the snapshot options for callers thresholding directly.
func (c *Config) NetworkOptions() []snapshot.NetworkOption {
	if c.SkipSelfEdges {
		return []snapshot.NetworkOption{snapshot.WithoutLoops()}
	}

	return nil
}

// Preprocess removes the seasonal cycle when SeasonPeriod > 0; otherwise f
// is returned unchanged.
func (c *Config) Preprocess(f *field.Field) (*field.Field, error) {
	if c.SeasonPeriod == 0 || f == nil {
		return f, nil
	}

	return f.Deseasonalize(c.SeasonPeriod)
}

// AlarmThreshold derives the alarm level from series at AlarmPercentile.
// It reports false when no percentile is configured.
func (c *Config) AlarmThreshold(series []float64) (float64, bool, error) {
	if c.AlarmPercentile == 0 {
		return 0, false, nil
	}
	theta, err := network.PercentileThreshold(series, c.AlarmPercentile)
	if err != nil {
		return 0, false, err
	}

	return theta, true, nil
}
