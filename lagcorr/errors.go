// SPDX-License-Identifier: MIT

package lagcorr

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration indicates parameters that cannot be satisfied by the inputs.
	// It is raised before any computation starts.
	ErrConfiguration = errors.New("lagcorr: invalid configuration")

	// ErrCorrelationBounds indicates a correlation outside [-1,1] beyond tolerance.
	ErrCorrelationBounds = errors.New("lagcorr: correlation out of bounds")

	// ErrNilField indicates a nil *field.Field argument.
	ErrNilField = errors.New("lagcorr: nil field")
)

// lagcorrErrorf tags err with the operation and a formatted detail.
func lagcorrErrorf(op string, err error, format string, args ...any) error {
	return fmt.Errorf("%s(%s): %w", op, fmt.Sprintf(format, args...), err)
}
