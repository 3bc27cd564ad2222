// SPDX-License-Identifier: MIT

package snapshot

import (
	"slices"
	"sync"

	"github.com/katalvlaran/climnet/field"
)

// Slot is the edge set of one time index. Safe for concurrent use.
// Its maps are allocated on the first insert.
type Slot struct {
	mu         sync.RWMutex
	allowLoops bool

	edges     map[Edge]Edge                                    // canonical key → stored orientation
	adjacency map[field.GridPoint]map[field.GridPoint]struct{} // symmetric
}

func newSlot(allowLoops bool) *Slot {
	return &Slot{allowLoops: allowLoops}
}

// AddEdge inserts {a,b} unless either orientation is present.
// It reports whether the slot changed.
//
// Errors: ErrLoopNotAllowed.
// Complexity: O(1) amortised.
func (s *Slot) AddEdge(a, b field.GridPoint) (bool, error) {
	if a == b && !s.allowLoops {
		return false, ErrLoopNotAllowed
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addLocked(Edge{Source: a, Target: b}), nil
}

// addLocked inserts e; the caller holds s.mu for writing.
func (s *Slot) addLocked(e Edge) bool {
	key := e.Key()
	if _, ok := s.edges[key]; ok {
		return false
	}
	if s.edges == nil {
		s.edges = make(map[Edge]Edge)
		s.adjacency = make(map[field.GridPoint]map[field.GridPoint]struct{})
	}
	s.edges[key] = e
	s.link(e.Source, e.Target)
	s.link(e.Target, e.Source)

	return true
}

func (s *Slot) link(a, b field.GridPoint) {
	nbrs, ok := s.adjacency[a]
	if !ok {
		nbrs = make(map[field.GridPoint]struct{})
		s.adjacency[a] = nbrs
	}
	nbrs[b] = struct{}{}
}

// HasEdge reports whether {a,b} is present in either orientation.
func (s *Slot) HasEdge(a, b field.GridPoint) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.edges[Edge{Source: a, Target: b}.Key()]

	return ok
}

// EdgeCount returns the number of distinct unordered pairs.
func (s *Slot) EdgeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.edges)
}

// Edges returns a copy of all edges in their stored orientation,
// sorted by canonical key.
// Complexity: O(E log E).
func (s *Slot) Edges() []Edge {
	s.mu.RLock()
	out := make([]Edge, 0, len(s.edges))
	for _, e := range s.edges {
		out = append(out, e)
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b Edge) int {
		switch {
		case a.less(b):
			return -1
		case b.less(a):
			return 1
		}

		return 0
	})

	return out
}

// Degree returns the number of distinct neighbours of p.
// A self-loop counts once.
func (s *Slot) Degree(p field.GridPoint) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.adjacency[p])
}

// Neighbors returns the neighbours of p in row-major order.
func (s *Slot) Neighbors(p field.GridPoint) []field.GridPoint {
	s.mu.RLock()
	out := make([]field.GridPoint, 0, len(s.adjacency[p]))
	for q := range s.adjacency[p] {
		out = append(out, q)
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b field.GridPoint) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}

		return 0
	})

	return out
}
