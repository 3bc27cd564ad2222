// SPDX-License-Identifier: MIT

package field

import "strconv"

// GridPoint identifies one spatial cell of a Field.
type GridPoint struct {
	X, Y int
}

// ID renders the point as "x,y", the vertex naming used by grid graphs.
func (p GridPoint) ID() string {
	b := make([]byte, 0, 8)
	b = strconv.AppendInt(b, int64(p.X), 10)
	b = append(b, ',')
	b = strconv.AppendInt(b, int64(p.Y), 10)

	return string(b)
}

// String implements fmt.Stringer.
func (p GridPoint) String() string { return "(" + p.ID() + ")" }

// Less orders points row-major: by X, then by Y.
func (p GridPoint) Less(q GridPoint) bool {
	if p.X != q.X {
		return p.X < q.X
	}

	return p.Y < q.Y
}

// Points returns every grid point of f in row-major order.
// Complexity: O(nx*ny).
func (f *Field) Points() []GridPoint {
	out := make([]GridPoint, 0, f.nx*f.ny)
	for x := 0; x < f.nx; x++ {
		for y := 0; y < f.ny; y++ {
			out = append(out, GridPoint{X: x, Y: y})
		}
	}

	return out
}

// Coordinate converts a row-major cell index (x*ny + y) back to a GridPoint.
func (f *Field) Coordinate(cell int) GridPoint {
	return GridPoint{X: cell / f.ny, Y: cell % f.ny}
}
