// SPDX-License-Identifier: MIT

package snapshot

import "errors"

var (
	// ErrBadSlots indicates a negative slot count.
	ErrBadSlots = errors.New("snapshot: slot count must be non-negative")

	// ErrSlotOutOfRange indicates a time index outside the network.
	ErrSlotOutOfRange = errors.New("snapshot: slot index out of range")

	// ErrSlotMismatch indicates inputs whose time length differs from the network's.
	ErrSlotMismatch = errors.New("snapshot: slot count mismatch")

	// ErrBadThreshold indicates a negative or non-finite threshold.
	ErrBadThreshold = errors.New("snapshot: threshold must be finite and >= 0")

	// ErrLoopNotAllowed indicates a self-pair on a network built WithoutLoops().
	ErrLoopNotAllowed = errors.New("snapshot: self-loop not allowed")

	// ErrNilField indicates a nil correlation field.
	ErrNilField = errors.New("snapshot: nil field")

	// ErrPointOutsideGrid indicates an edge endpoint outside the requested grid.
	ErrPointOutsideGrid = errors.New("snapshot: point outside grid")
)
