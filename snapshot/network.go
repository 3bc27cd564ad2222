// SPDX-License-Identifier: MIT

package snapshot

import (
	"fmt"

	"github.com/katalvlaran/climnet/field"
)

// Network is a time-indexed sequence of edge Slots.
// The slot count is fixed at construction.
type Network struct {
	allowLoops bool
	slots      []*Slot
}

// New creates a Network with the given number of empty slots.
// Self-pairs are accepted unless WithoutLoops is given.
// Errors: ErrBadSlots.
func New(slots int, opts ...NetworkOption) (*Network, error) {
	if slots < 0 {
		return nil, ErrBadSlots
	}
	n := &Network{allowLoops: true}
	for _, opt := range opts {
		opt(n)
	}
	n.slots = make([]*Slot, slots)
	for i := range n.slots {
		n.slots[i] = newSlot(n.allowLoops)
	}

	return n, nil
}

// Len returns the number of slots.
func (n *Network) Len() int { return len(n.slots) }

// AllowsLoops reports whether self-pairs are accepted.
func (n *Network) AllowsLoops() bool { return n.allowLoops }

// Slot returns the slot for time index t.
// Errors: ErrSlotOutOfRange.
func (n *Network) Slot(t int) (*Slot, error) {
	if t < 0 || t >= len(n.slots) {
		return nil, fmt.Errorf("Slot(%d) of %d: %w", t, len(n.slots), ErrSlotOutOfRange)
	}

	return n.slots[t], nil
}

// AddEdge inserts {a,b} into slot t; see Slot.AddEdge.
// Errors: ErrSlotOutOfRange, ErrLoopNotAllowed.
func (n *Network) AddEdge(t int, a, b field.GridPoint) (bool, error) {
	s, err := n.Slot(t)
	if err != nil {
		return false, err
	}

	return s.AddEdge(a, b)
}

// HasEdge reports whether {a,b} is present in slot t. Out-of-range t is false.
func (n *Network) HasEdge(t int, a, b field.GridPoint) bool {
	if t < 0 || t >= len(n.slots) {
		return false
	}

	return n.slots[t].HasEdge(a, b)
}

// EdgeCount returns the total number of edges over all slots.
func (n *Network) EdgeCount() int {
	total := 0
	for _, s := range n.slots {
		total += s.EdgeCount()
	}

	return total
}

// EdgeCounts returns the number of edges per slot.
func (n *Network) EdgeCounts() []int {
	out := make([]int, len(n.slots))
	for t, s := range n.slots {
		out[t] = s.EdgeCount()
	}

	return out
}

// Merge adds every edge of other into n, slot by slot, in other's sorted
// edge order. Edges already present in n keep n's orientation. Self-pairs
// are dropped when n was built WithoutLoops. It returns the number of new edges.
//
// Errors: ErrSlotMismatch.
// Complexity: O(E log E) over other's edges.
func (n *Network) Merge(other *Network) (int, error) {
	if other == nil {
		return 0, nil
	}
	if other.Len() != n.Len() {
		return 0, fmt.Errorf("Merge(%d slots into %d): %w", other.Len(), n.Len(), ErrSlotMismatch)
	}
	added := 0
	for t, src := range other.slots {
		if src == n.slots[t] || src.EdgeCount() == 0 {
			continue
		}
		edges := src.Edges()
		dst := n.slots[t]
		dst.mu.Lock()
		for _, e := range edges {
			if e.IsLoop() && !n.allowLoops {
				continue
			}
			if dst.addLocked(e) {
				added++
			}
		}
		dst.mu.Unlock()
	}

	return added, nil
}

// DegreeField returns the node degree of every grid point at slot t as a
// 1×nx×ny field.
//
// Errors: ErrSlotOutOfRange, ErrPointOutsideGrid, field construction errors.
func (n *Network) DegreeField(t, nx, ny int) (*field.Field, error) {
	s, err := n.Slot(t)
	if err != nil {
		return nil, err
	}
	out, err := field.New(1, nx, ny)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for p, nbrs := range s.adjacency {
		if err = out.Set(0, p.X, p.Y, float64(len(nbrs))); err != nil {
			return nil, fmt.Errorf("DegreeField(%d) point %v: %w", t, p, ErrPointOutsideGrid)
		}
	}

	return out, nil
}
