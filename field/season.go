// SPDX-License-Identifier: MIT

package field

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Deseasonalize returns a new Field with the mean seasonal cycle removed.
//
// The time axis is folded into nt/period whole periods; for every phase
// p in [0, period) and cell, the mean over all periods is subtracted from
// each sample at that phase. f itself is left untouched.
//
// Errors: ErrBadPeriod when period <= 0, nt == 0 or nt is not a multiple of period.
// Complexity: O(nt*nx*ny) time, O(period*nx*ny) extra memory.
func (f *Field) Deseasonalize(period int) (*Field, error) {
	if period <= 0 || f.nt == 0 || f.nt%period != 0 {
		return nil, fmt.Errorf("Deseasonalize(period=%d, nt=%d): %w", period, f.nt, ErrBadPeriod)
	}
	cells := f.nx * f.ny
	n := f.nt / period

	// climatology[p] is the mean of all rows at phase p.
	climatology := make([][]float64, period)
	var p, k int
	for p = 0; p < period; p++ {
		climatology[p] = make([]float64, cells)
		for k = 0; k < n; k++ {
			floats.Add(climatology[p], f.Row(k*period+p))
		}
		floats.Scale(1/float64(n), climatology[p])
	}

	out := &Field{nt: f.nt, nx: f.nx, ny: f.ny, data: make([]float64, len(f.data))}
	for t := 0; t < f.nt; t++ {
		floats.SubTo(out.Row(t), f.Row(t), climatology[t%period])
	}

	return out, nil
}

// RegionMean averages the box [x0,x1) × [y0,y1) at every time step,
// producing a reference series of length nt.
//
// Errors: ErrBadRegion when the box is empty or leaves the grid.
// Complexity: O(nt*(x1-x0)*(y1-y0)).
func (f *Field) RegionMean(x0, x1, y0, y1 int) ([]float64, error) {
	if x0 < 0 || y0 < 0 || x1 > f.nx || y1 > f.ny || x0 >= x1 || y0 >= y1 {
		return nil, fmt.Errorf("RegionMean([%d,%d)x[%d,%d)): %w", x0, x1, y0, y1, ErrBadRegion)
	}
	inv := 1 / float64((x1-x0)*(y1-y0))
	out := make([]float64, f.nt)
	var row []float64
	var s float64
	for t := range out {
		row = f.Row(t)
		s = 0
		for x := x0; x < x1; x++ {
			s += floats.Sum(row[x*f.ny+y0 : x*f.ny+y1])
		}
		out[t] = s * inv
	}

	return out, nil
}
