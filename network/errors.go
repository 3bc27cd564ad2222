// SPDX-License-Identifier: MIT

package network

import "errors"

var (
	// ErrNilField indicates a nil input field.
	ErrNilField = errors.New("network: nil field")

	// ErrBadThreshold indicates a negative or non-finite threshold.
	// Errors carrying it also match lagcorr.ErrConfiguration.
	ErrBadThreshold = errors.New("network: threshold must be finite and >= 0")

	// ErrNoFiniteValues indicates a series with nothing to summarise.
	ErrNoFiniteValues = errors.New("network: series has no finite values")

	// ErrBadPercentile indicates a percentile outside (0, 100].
	ErrBadPercentile = errors.New("network: percentile must be in (0, 100]")
)
