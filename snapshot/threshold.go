// SPDX-License-Identifier: MIT

package snapshot

import (
	"fmt"
	"math"

	"github.com/katalvlaran/climnet/field"
)

// Crossing is one pair that passed the threshold at time index Slot.
type Crossing struct {
	Slot int
	Edge Edge
}

// Crossings lists every pair {source,(x,y)} with finite |corr[t,x,y]| >= theta,
// ordered by t and then row-major by target. The source's own cell is
// included. Only the hits are allocated.
//
// Errors: ErrNilField, ErrBadThreshold.
// Complexity: O(T*X*Y).
func Crossings(source field.GridPoint, corr *field.Field, theta float64) ([]Crossing, error) {
	if corr == nil {
		return nil, ErrNilField
	}
	if theta < 0 || math.IsNaN(theta) || math.IsInf(theta, 0) {
		return nil, fmt.Errorf("Crossings(%v): %w", theta, ErrBadThreshold)
	}

	var out []Crossing
	for t := 0; t < corr.Len(); t++ {
		for cell, v := range corr.Row(t) {
			// NaN fails every comparison; ±Inf is excluded explicitly
			if !(math.Abs(v) >= theta) || math.IsInf(v, 0) {
				continue
			}
			out = append(out, Crossing{
				Slot: t,
				Edge: Edge{Source: source, Target: corr.Coordinate(cell)},
			})
		}
	}

	return out, nil
}

// Insert adds the crossings in order, skipping pairs already present in
// either orientation and, on a network built WithoutLoops, self-pairs.
// It returns the number of edges added.
//
// Errors: ErrSlotOutOfRange; crossings before the offending one stay inserted.
// Complexity: O(len(cs)).
func (n *Network) Insert(cs []Crossing) (int, error) {
	added := 0
	for _, c := range cs {
		s, err := n.Slot(c.Slot)
		if err != nil {
			return added, err
		}
		if c.Edge.IsLoop() && !n.allowLoops {
			continue
		}
		s.mu.Lock()
		if s.addLocked(c.Edge) {
			added++
		}
		s.mu.Unlock()
	}

	return added, nil
}

// Threshold inserts {source,(x,y)} into slot t for every finite
// |corr[t,x,y]| >= theta, skipping pairs already present in either
// orientation. It returns the number of edges added; repeating the call
// adds none.
//
// Errors: ErrNilField, ErrBadThreshold, ErrSlotMismatch.
// Complexity: O(T*X*Y).
func (n *Network) Threshold(source field.GridPoint, corr *field.Field, theta float64) (int, error) {
	if corr == nil {
		return 0, ErrNilField
	}
	if corr.Len() != n.Len() {
		return 0, fmt.Errorf("Threshold: field has %d steps, network %d: %w", corr.Len(), n.Len(), ErrSlotMismatch)
	}
	cs, err := Crossings(source, corr, theta)
	if err != nil {
		return 0, err
	}

	return n.Insert(cs)
}
