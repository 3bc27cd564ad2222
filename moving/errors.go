// SPDX-License-Identifier: MIT

package moving

import "errors"

var (
	// ErrBadWindow indicates a non-positive window length.
	ErrBadWindow = errors.New("moving: window must be positive")

	// ErrNilField indicates a nil *field.Field argument.
	ErrNilField = errors.New("moving: nil field")

	// ErrBadLanes indicates a lane count that does not divide the input.
	ErrBadLanes = errors.New("moving: bad lane count")
)
