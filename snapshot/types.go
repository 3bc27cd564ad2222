// SPDX-License-Identifier: MIT

package snapshot

import "github.com/katalvlaran/climnet/field"

// Edge is an unordered pair of grid points.
// Source and Target keep the orientation the edge was first inserted with.
type Edge struct {
	Source field.GridPoint
	Target field.GridPoint
}

// Key returns the canonical orientation: the lesser point (row-major) first.
// {A,B}.Key() == {B,A}.Key().
func (e Edge) Key() Edge {
	if e.Target.Less(e.Source) {
		return Edge{Source: e.Target, Target: e.Source}
	}

	return e
}

// IsLoop reports whether both endpoints are the same point.
func (e Edge) IsLoop() bool { return e.Source == e.Target }

// String renders the edge as "(x,y)-(x,y)".
func (e Edge) String() string { return e.Source.String() + "-" + e.Target.String() }

// less orders edges by canonical key.
func (e Edge) less(o Edge) bool {
	a, b := e.Key(), o.Key()
	if a.Source != b.Source {
		return a.Source.Less(b.Source)
	}

	return a.Target.Less(b.Target)
}

// NetworkOption configures a Network.
type NetworkOption func(n *Network)

// WithoutLoops rejects self-pairs {A,A}. By default they are kept, since a
// source always passes the threshold against its own cell.
func WithoutLoops() NetworkOption {
	return func(n *Network) { n.allowLoops = false }
}
