// SPDX-License-Identifier: MIT

package moving

import "github.com/katalvlaran/climnet/field"

// FieldMeanStd applies the trailing window along the time axis of f,
// treating every (x,y) cell as an independent series. The outputs have the
// same shape as f; f is not modified.
//
// Errors: ErrNilField, ErrBadWindow.
// Complexity: O(nt*nx*ny) time.
func FieldMeanStd(f *field.Field, w int) (mean, std *field.Field, err error) {
	if f == nil {
		return nil, nil, ErrNilField
	}
	if w <= 0 {
		return nil, nil, ErrBadWindow
	}
	nt, nx, ny := f.Shape()
	if mean, err = field.New(nt, nx, ny); err != nil {
		return nil, nil, err
	}
	if std, err = field.New(nt, nx, ny); err != nil {
		return nil, nil, err
	}
	roll(f.Data(), f.Cells(), w, mean.Data(), std.Data())

	return mean, std, nil
}
