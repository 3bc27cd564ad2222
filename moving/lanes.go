// SPDX-License-Identifier: MIT

package moving

import "math"

// snapRel is the relative floor below which a shifted variance is rounding residue.
const snapRel = 1e-12

// rebuildRel is the fraction of a lane's peak pivoted second moment that its
// centred moment, scaled by w+1, must keep; below it the lane is recomputed
// from the samples in its window.
const rebuildRel = 1e-2

// roll runs the trailing-window kernel over n interleaved lanes:
// sample t of lane j is src[t*n+j]. mean must have len(src); std may be nil
// when only the mean is wanted.
//
// Sums are kept around a per-lane pivot taken from the window. They are
// rebuilt exactly every w steps, and earlier for a lane whose centred
// moment has collapsed against the magnitude of its sums (a level shift
// leaving the window, or data drifting away from the pivot).
func roll(src []float64, n, w int, mean, std []float64) {
	nt := len(src) / n
	pivot := make([]float64, n)
	s1 := make([]float64, n)
	s2 := make([]float64, n)
	peak := make([]float64, n)
	inv := 1 / float64(w)
	span := float64(w + 1)

	var (
		t, j, u, start int
		row            []float64
		d, m, sq, v    float64
	)
	for t = 0; t < nt; t++ {
		row = src[t*n : (t+1)*n]
		start = t - w + 1

		switch {
		case t == 0:
			// first sample is its own pivot; sums start at zero
			copy(pivot, row)
			clear(s1)
			clear(s2)
			clear(peak)
		case start > 0 && start%w == 0:
			// rebuild exactly around the new window start
			copy(pivot, src[start*n:(start+1)*n])
			clear(s1)
			clear(s2)
			for u = start + 1; u <= t; u++ {
				for j = 0; j < n; j++ {
					d = src[u*n+j] - pivot[j]
					s1[j] += d
					s2[j] += d * d
				}
			}
			copy(peak, s2)
		default:
			for j = 0; j < n; j++ {
				d = row[j] - pivot[j]
				s1[j] += d
				s2[j] += d * d
			}
			if start > 0 {
				old := src[(start-1)*n : start*n]
				for j = 0; j < n; j++ {
					d = old[j] - pivot[j]
					s1[j] -= d
					s2[j] -= d * d
				}
			}
			for j = 0; j < n; j++ {
				if start > 0 && (s2[j]-s1[j]*s1[j]*inv)*span < rebuildRel*peak[j] {
					rebuildLane(src, n, j, start, t, pivot, s1, s2)
					peak[j] = s2[j]
				} else if s2[j] > peak[j] {
					peak[j] = s2[j]
				}
			}
		}

		out := mean[t*n : (t+1)*n]
		if start < 0 {
			for j = range out {
				out[j] = math.NaN()
			}
			if std != nil {
				for j = range out {
					std[t*n+j] = math.NaN()
				}
			}
			continue
		}
		for j = 0; j < n; j++ {
			m = s1[j] * inv
			out[j] = pivot[j] + m
			if std == nil {
				continue
			}
			sq = s2[j] * inv
			v = sq - m*m
			if v < 0 || v <= snapRel*sq {
				v = 0
			}
			std[t*n+j] = math.Sqrt(v)
		}
	}
}

// rebuildLane recomputes the sums of lane j over samples lo..hi, pivoted on
// sample lo.
func rebuildLane(src []float64, n, j, lo, hi int, pivot, s1, s2 []float64) {
	p := src[lo*n+j]
	var a, b, d float64
	for u := lo + 1; u <= hi; u++ {
		d = src[u*n+j] - p
		a += d
		b += d * d
	}
	pivot[j], s1[j], s2[j] = p, a, b
}

// MeanLanes returns the trailing moving mean of n interleaved lanes
// (sample t of lane j at src[t*lanes+j]). The result has len(src) entries.
//
// Errors: ErrBadWindow, ErrBadLanes.
// Complexity: O(len(src)) time, O(lanes) extra memory.
func MeanLanes(src []float64, lanes, w int) ([]float64, error) {
	if w <= 0 {
		return nil, ErrBadWindow
	}
	if lanes <= 0 || len(src)%lanes != 0 {
		return nil, ErrBadLanes
	}
	mean := make([]float64, len(src))
	roll(src, lanes, w, mean, nil)

	return mean, nil
}

// MeanStdLanes is MeanLanes plus the population moving standard deviation.
//
// Errors: ErrBadWindow, ErrBadLanes.
// Complexity: O(len(src)) time, O(lanes) extra memory.
func MeanStdLanes(src []float64, lanes, w int) (mean, std []float64, err error) {
	if w <= 0 {
		return nil, nil, ErrBadWindow
	}
	if lanes <= 0 || len(src)%lanes != 0 {
		return nil, nil, ErrBadLanes
	}
	mean = make([]float64, len(src))
	std = make([]float64, len(src))
	roll(src, lanes, w, mean, std)

	return mean, std, nil
}
