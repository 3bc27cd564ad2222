// SPDX-License-Identifier: MIT

package lagcorr

import (
	"math"

	"github.com/katalvlaran/climnet/field"
	"github.com/katalvlaran/climnet/moving"
)

// rebuildRel is the fraction of the peak pivoted second moment that a
// window's centred moment, scaled by w+1, must keep before the cross sums
// are recomputed from the window.
const rebuildRel = 1e-2

// Moments holds the lag-independent statistics of one field for one window:
// its trailing moving mean and std. It is immutable after Prepare and safe
// for concurrent use.
type Moments struct {
	f      *field.Field
	window int
	mean   []float64 // moving mean, same layout as f
	std    []float64 // moving population std, same layout as f
	opts   options
}

// Prepare computes the field moments for window w.
//
// Errors: ErrNilField, ErrConfiguration (w <= 0).
// Complexity: O(T*X*Y) time and memory.
func Prepare(f *field.Field, w int, opts ...Option) (*Moments, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if w <= 0 {
		return nil, lagcorrErrorf("Prepare", ErrConfiguration, "window=%d must be positive", w)
	}
	mean, std, err := moving.FieldMeanStd(f, w)
	if err != nil {
		return nil, err
	}

	return &Moments{
		f:      f,
		window: w,
		mean:   mean.Data(),
		std:    std.Data(),
		opts:   gatherOptions(opts...),
	}, nil
}

// Field returns the field the moments were computed from.
func (m *Moments) Field() *field.Field { return m.f }

// Window returns the moving-window width.
func (m *Moments) Window() int { return m.window }

// reference is a validated reference series with its own moments.
type reference struct {
	x    []float64
	mean []float64
	std  []float64
}

// reference validates x against the field and computes its moments.
func (m *Moments) reference(op string, x []float64) (*reference, error) {
	nt := m.f.Len()
	if len(x) != nt {
		return nil, lagcorrErrorf(op, ErrConfiguration, "reference length %d, field length %d", len(x), nt)
	}
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, lagcorrErrorf(op, ErrConfiguration, "reference[%d]=%v is not finite", i, v)
		}
	}
	mean, std, err := moving.MeanStd(x, m.window)
	if err != nil {
		return nil, err
	}

	return &reference{x: x, mean: mean, std: std}, nil
}

// cross keeps the running sums of one lag-shifted reference against every
// cell over the trailing window. Each side is pivoted near its window:
// on the first sample at s = 0, on the exact window mean at every rebuild.
type cross struct {
	w, cells int
	inv      float64
	span     float64

	// x[s] pairs with field row s; xmean and xstd use the same index
	x, xmean, xstd []float64
	f, fmean, fstd []float64

	// peak is the largest pivoted moment since the last rebuild; base is the
	// pivot-offset share (sum²/w) left by that rebuild
	px, sx, peakX, baseX      float64
	pf, sf, sxf, peakF, baseF []float64
}

func newCross(m *Moments, r *reference, lag int) *cross {
	cells := m.f.Cells()

	return &cross{
		w:     m.window,
		cells: cells,
		inv:   1 / float64(m.window),
		span:  float64(m.window + 1),
		x:     r.x[lag:],
		xmean: r.mean[lag:],
		xstd:  r.std[lag:],
		f:     m.f.Data(),
		fmean: m.mean,
		fstd:  m.std,
		pf:    make([]float64, cells),
		sf:    make([]float64, cells),
		sxf:   make([]float64, cells),
		peakF: make([]float64, cells),
		baseF: make([]float64, cells),
	}
}

// begin pivots both sides on the samples at s = 0.
func (c *cross) begin() {
	c.px, c.sx, c.peakX, c.baseX = c.x[0], 0, 0, 0
	copy(c.pf, c.f[:c.cells])
	clear(c.sf)
	clear(c.sxf)
	clear(c.peakF)
	clear(c.baseF)
}

// slide adds step s and drops step s-w.
func (c *cross) slide(s int) {
	dx := c.x[s] - c.px
	c.sx += dx
	row := c.f[s*c.cells : (s+1)*c.cells]
	var d float64
	for j, v := range row {
		d = v - c.pf[j]
		c.sf[j] += d
		c.sxf[j] += dx * d
	}
	if s < c.w {
		return
	}
	dx = c.x[s-c.w] - c.px
	c.sx -= dx
	row = c.f[(s-c.w)*c.cells : (s-c.w+1)*c.cells]
	for j, v := range row {
		d = v - c.pf[j]
		c.sf[j] -= d
		c.sxf[j] -= dx * d
	}
}

// moment returns the centred and the pivoted second moment of a full
// window from its std and the pivoted sum.
func (c *cross) moment(std, sum float64) (centred, pivoted float64) {
	centred = float64(c.w) * std * std

	return centred, centred + sum*sum*c.inv
}

// rebuild recomputes every sum of the full window ending at s around the
// exact window means.
func (c *cross) rebuild(s int) {
	c.px, c.sx = c.xmean[s], 0
	copy(c.pf, c.fmean[s*c.cells:(s+1)*c.cells])
	clear(c.sf)
	clear(c.sxf)
	var dx, d float64
	for u := s - c.w + 1; u <= s; u++ {
		dx = c.x[u] - c.px
		c.sx += dx
		for j, v := range c.f[u*c.cells : (u+1)*c.cells] {
			d = v - c.pf[j]
			c.sf[j] += d
			c.sxf[j] += dx * d
		}
	}
	_, c.peakX = c.moment(c.xstd[s], c.sx)
	c.baseX = c.sx * c.sx * c.inv
	for j := range c.peakF {
		_, c.peakF[j] = c.moment(c.fstd[s*c.cells+j], c.sf[j])
		c.baseF[j] = c.sf[j] * c.sf[j] * c.inv
	}
}

// rebuildCell recomputes the sums of cell j for the window ending at s,
// keeping the reference pivot.
func (c *cross) rebuildCell(j, s int) {
	c.pf[j] = c.fmean[s*c.cells+j]
	var sf, sxf, d float64
	for u := s - c.w + 1; u <= s; u++ {
		d = c.f[u*c.cells+j] - c.pf[j]
		sf += d
		sxf += (c.x[u] - c.px) * d
	}
	c.sf[j], c.sxf[j] = sf, sxf
	_, c.peakF[j] = c.moment(c.fstd[s*c.cells+j], sf)
	c.baseF[j] = sf * sf * c.inv
}

// collapsed reports whether a centred moment has fallen too far below the
// peak. A peak made of nothing but the rebuild's own pivot offset (a
// constant window) never counts.
func (c *cross) collapsed(centred, peak, base float64) bool {
	return centred*c.span < rebuildRel*peak && peak > 2*base
}

// guard tracks the peak pivoted moments of the full window ending at s and
// rebuilds any side whose centred moment has collapsed against them.
func (c *cross) guard(s int) {
	cx, px := c.moment(c.xstd[s], c.sx)
	if s >= c.w && c.collapsed(cx, c.peakX, c.baseX) {
		c.rebuild(s)
		return
	}
	c.peakX = math.Max(c.peakX, px)

	base := s * c.cells
	var cf, pf float64
	for j := range c.peakF {
		cf, pf = c.moment(c.fstd[base+j], c.sf[j])
		if s >= c.w && c.collapsed(cf, c.peakF[j], c.baseF[j]) {
			c.rebuildCell(j, s)
			continue
		}
		c.peakF[j] = math.Max(c.peakF[j], pf)
	}
}

// lagged fills cov and corr at one lag, both flat time-major buffers of
// (T-lag-w)*cells entries. Inputs must already be validated.
func (m *Moments) lagged(r *reference, lag int, cov, corr []float64) error {
	n, w := m.f.Len()-lag, m.window
	c := newCross(m, r, lag)

	var (
		s, j, start, base int
		mx, v, sdx        float64
	)
	for s = 0; s < n; s++ {
		start = s - w + 1
		switch {
		case s == 0:
			c.begin()
		case start > 0 && start%w == 0:
			c.rebuild(s)
		default:
			c.slide(s)
		}
		if start < 0 {
			continue
		}
		c.guard(s)
		if s < w {
			continue
		}

		base = (s - w) * c.cells
		mx = c.sx * c.inv
		sdx = c.xstd[s]
		for j = 0; j < c.cells; j++ {
			v = c.sxf[j]*c.inv - mx*c.sf[j]*c.inv
			cov[base+j] = v
			corr[base+j] = clampUnit(v/(sdx*c.fstd[s*c.cells+j]), m.opts.boundsTol)
		}
	}

	return nil
}

// clampUnit snaps v to ±1 when it overshoots by no more than tol.
// Other values, including NaN and values beyond tol, are returned as is.
func clampUnit(v, tol float64) float64 {
	switch {
	case v > 1 && v <= 1+tol:
		return 1
	case v < -1 && v >= -1-tol:
		return -1
	}

	return v
}
