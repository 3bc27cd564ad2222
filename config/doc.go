// SPDX-License-Identifier: MIT

// Package config loads analysis parameters from YAML with optional
// CLIMNET_* environment overrides.
//
// File format:
//
//	lag_max: 200            # required, >= 0
//	window: 365             # required, > 0
//	threshold: 0.5          # required, finite, >= 0
//	workers: 8              # optional, 0 = GOMAXPROCS
//	bounds_tolerance: 1e-6  # optional
//	measure: covariance     # optional: covariance | correlation
//	skip_self_edges: false  # optional, true drops {A,A} pairs
//	season_period: 365      # optional, 0 = field is already detrended
//	alarm_percentile: 95    # optional, 0 = no alarms
//
// Unknown keys are rejected, so typos fail loudly. There are no defaults
// for the three required keys.
//
// Environment:
//
//	CLIMNET_LAG_MAX, CLIMNET_WINDOW, CLIMNET_THRESHOLD, CLIMNET_WORKERS,
//	CLIMNET_BOUNDS_TOLERANCE, CLIMNET_MEASURE, CLIMNET_SKIP_SELF_EDGES,
//	CLIMNET_SEASON_PERIOD, CLIMNET_ALARM_PERCENTILE
//
// ApplyEnv overrides loaded values and re-validates.
package config
