// SPDX-License-Identifier: MIT

package field

import "math"

// Operation tags used in error wrappers.
const (
	opAt     = "At"
	opSet    = "Set"
	opColumn = "Column"
	opIngest = "FromData"
)

// Field is a 3-D array of samples indexed (time, x, y).
//   - nt, nx, ny hold the extents; nt may be 0 for empty results.
//   - data is a flat time-major buffer of length nt*nx*ny, offset (t*nx + x)*ny + y.
type Field struct {
	nt, nx, ny int
	data       []float64
}

// New allocates a zero Field of the given shape.
// nt may be zero (an empty time axis); nx and ny must be positive.
//
// Errors: ErrEmptyField when nx <= 0 or ny <= 0, ErrNonRectangular when nt < 0.
// Complexity: O(nt*nx*ny).
func New(nt, nx, ny int) (*Field, error) {
	if nx <= 0 || ny <= 0 {
		return nil, ErrEmptyField
	}
	if nt < 0 {
		return nil, ErrNonRectangular
	}

	return &Field{nt: nt, nx: nx, ny: ny, data: make([]float64, nt*nx*ny)}, nil
}

// FromData builds a Field from a flat time-major buffer, copying it.
// Every sample must be finite.
//
// Errors: ErrEmptyField, ErrNonRectangular (len(data) != nt*nx*ny), ErrNaNInf.
// Complexity: O(nt*nx*ny).
func FromData(nt, nx, ny int, data []float64) (*Field, error) {
	f, err := New(nt, nx, ny)
	if err != nil {
		return nil, err
	}
	if len(data) != len(f.data) {
		return nil, ErrNonRectangular
	}
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t, x, y := f.coords(i)
			return nil, fieldErrorf(opIngest, t, x, y, ErrNaNInf)
		}
	}
	copy(f.data, data)

	return f, nil
}

// FromSlices builds a Field from nested slices values[t][x][y], copying them.
// Every sample must be finite and every row the same length.
//
// Errors: ErrEmptyField, ErrNonRectangular, ErrNaNInf.
// Complexity: O(nt*nx*ny).
func FromSlices(values [][][]float64) (*Field, error) {
	if len(values) == 0 || len(values[0]) == 0 || len(values[0][0]) == 0 {
		return nil, ErrEmptyField
	}
	nt, nx, ny := len(values), len(values[0]), len(values[0][0])
	f, err := New(nt, nx, ny)
	if err != nil {
		return nil, err
	}
	var t, x, y int
	var v float64
	for t = 0; t < nt; t++ {
		if len(values[t]) != nx {
			return nil, ErrNonRectangular
		}
		for x = 0; x < nx; x++ {
			if len(values[t][x]) != ny {
				return nil, ErrNonRectangular
			}
			for y = 0; y < ny; y++ {
				v = values[t][x][y]
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return nil, fieldErrorf(opIngest, t, x, y, ErrNaNInf)
				}
				f.data[f.Index(t, x, y)] = v
			}
		}
	}

	return f, nil
}

// Shape returns the (time, x, y) extents.
func (f *Field) Shape() (nt, nx, ny int) {
	return f.nt, f.nx, f.ny
}

// Len returns the length of the time axis.
func (f *Field) Len() int { return f.nt }

// Cells returns nx*ny, the number of grid points per time step.
func (f *Field) Cells() int { return f.nx * f.ny }

// Index returns the flat offset of (t,x,y). It does not check bounds.
func (f *Field) Index(t, x, y int) int {
	return (t*f.nx+x)*f.ny + y
}

// coords is the inverse of Index.
func (f *Field) coords(i int) (t, x, y int) {
	cells := f.nx * f.ny
	t, i = i/cells, i%cells

	return t, i / f.ny, i % f.ny
}

// InBounds reports whether (t,x,y) lies inside the field.
func (f *Field) InBounds(t, x, y int) bool {
	return t >= 0 && t < f.nt && x >= 0 && x < f.nx && y >= 0 && y < f.ny
}

// At returns the sample at (t,x,y).
// Errors: ErrOutOfRange.
func (f *Field) At(t, x, y int) (float64, error) {
	if !f.InBounds(t, x, y) {
		return 0, fieldErrorf(opAt, t, x, y, ErrOutOfRange)
	}

	return f.data[f.Index(t, x, y)], nil
}

// Set stores v at (t,x,y). Any value is accepted, including NaN, since
// derived fields use NaN as the "undefined" sentinel.
// Errors: ErrOutOfRange.
func (f *Field) Set(t, x, y int, v float64) error {
	if !f.InBounds(t, x, y) {
		return fieldErrorf(opSet, t, x, y, ErrOutOfRange)
	}
	f.data[f.Index(t, x, y)] = v

	return nil
}

// Column returns a copy of the time series at grid point (x,y).
// Errors: ErrOutOfRange.
// Complexity: O(nt).
func (f *Field) Column(x, y int) ([]float64, error) {
	if x < 0 || x >= f.nx || y < 0 || y >= f.ny {
		return nil, fieldErrorf(opColumn, 0, x, y, ErrOutOfRange)
	}
	out := make([]float64, f.nt)
	stride := f.nx * f.ny
	off := x*f.ny + y
	for t := range out {
		out[t] = f.data[t*stride+off]
	}

	return out, nil
}

// Row returns the live slice of all nx*ny samples at time t, x-major.
// Callers must treat it as read-only unless they own the Field.
func (f *Field) Row(t int) []float64 {
	cells := f.nx * f.ny

	return f.data[t*cells : (t+1)*cells]
}

// Data returns the live backing buffer (no copy).
// Producers use it to fill freshly allocated fields; consumers must not write to it.
func (f *Field) Data() []float64 { return f.data }

// Clone returns a deep copy.
// Complexity: O(nt*nx*ny).
func (f *Field) Clone() *Field {
	out := &Field{nt: f.nt, nx: f.nx, ny: f.ny, data: make([]float64, len(f.data))}
	copy(out.data, f.data)

	return out
}
