// SPDX-License-Identifier: MIT

package field

import (
	"errors"
	"fmt"
)

// Sentinel errors for field construction and access.
var (
	// ErrEmptyField indicates a grid with no x or y extent.
	ErrEmptyField = errors.New("field: grid must have at least one x and one y cell")

	// ErrNonRectangular indicates ragged input or a buffer whose length is not nt*nx*ny.
	ErrNonRectangular = errors.New("field: input is not rectangular")

	// ErrNaNInf indicates a NaN or ±Inf sample at ingestion.
	ErrNaNInf = errors.New("field: NaN or Inf encountered")

	// ErrOutOfRange indicates an index outside the field.
	ErrOutOfRange = errors.New("field: index out of range")

	// ErrBadPeriod indicates a non-positive period or a length that is not a whole number of periods.
	ErrBadPeriod = errors.New("field: invalid seasonal period")

	// ErrBadRegion indicates an empty or out-of-range region box.
	ErrBadRegion = errors.New("field: invalid region")
)

// fieldErrorf tags a sentinel with the operation and coordinates where it was detected.
func fieldErrorf(op string, t, x, y int, err error) error {
	return fmt.Errorf("Field.%s(%d,%d,%d): %w", op, t, x, y, err)
}
