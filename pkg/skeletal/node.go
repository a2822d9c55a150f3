package skeletal

import "github.com/printforge/marrow/pkg/geom"

// Node is a skeleton vertex: a position plus the distance from that position
// to the nearest point of the cross-section boundary. Boundary vertices have
// Dist == 0; the distance grows weakly monotonically toward the interior.
//
// BeadCount is the number of concentric beads the bead-assignment stage has
// decided on at this node; it is carried here so split points created by
// InsertNode keep their transition value, and is not interpreted by this
// package.
type Node struct {
	P    geom.Point
	Dist int64

	BeadCount int

	// Incident is one half-edge leaving this node, arbitrary among them.
	// The full star is reachable from it via Twin/Next/Prev.
	Incident *Edge

	removed bool
}

// eachOutgoing calls fn for every stored half-edge leaving n, in both
// rotation directions so open fans at the boundary are fully covered.
// Traversal stops early when fn returns false. A visited set guards against
// malformed twin/next cycles.
func (n *Node) eachOutgoing(fn func(*Edge) bool) {
	if n.Incident == nil {
		return
	}
	seen := make(map[*Edge]struct{})
	for e := n.Incident; e != nil; {
		if _, ok := seen[e]; ok {
			break
		}
		seen[e] = struct{}{}
		if !fn(e) {
			return
		}
		if e.Twin == nil {
			break
		}
		e = e.Twin.Next
	}
	for e := n.Incident; e != nil && e.Prev != nil; {
		e = e.Prev.Twin
		if e == nil {
			break
		}
		if _, ok := seen[e]; ok {
			break
		}
		seen[e] = struct{}{}
		if !fn(e) {
			return
		}
	}
}

// outgoing returns a snapshot of all stored half-edges leaving n.
func (n *Node) outgoing() []*Edge {
	var out []*Edge
	n.eachOutgoing(func(e *Edge) bool {
		out = append(out, e)
		return true
	})
	return out
}

// degree returns the number of half-edges leaving n.
func (n *Node) degree() int {
	d := 0
	n.eachOutgoing(func(*Edge) bool {
		d++
		return true
	})
	return d
}

// IsLocalMaximum reports whether no path out of n reaches a strictly greater
// distance-to-boundary. With strict set, equidistant neighbors are never
// considered a way up, so the tip of a flat ridge still counts as a maximum;
// without it, a plateau that eventually climbs disqualifies the node.
// Boundary nodes (Dist == 0) are never local maxima.
func (n *Node) IsLocalMaximum(strict bool) bool {
	if n.Dist == 0 {
		return false
	}
	max := true
	n.eachOutgoing(func(e *Edge) bool {
		if e.CanGoUp(strict) {
			max = false
			return false
		}
		return true
	})
	return max
}

// IsMultiIntersection reports whether more than two skeleton branches
// converge at n, making it a branch point rather than a pass-through point
// on a ridge. Branches are counted from the central marking where present,
// falling back to the skeleton role for unmarked graphs.
func (n *Node) IsMultiIntersection() bool {
	branches := 0
	n.eachOutgoing(func(e *Edge) bool {
		if e.IsCentral() {
			branches++
		}
		return true
	})
	return branches > 2
}

// IsCentral reports whether n lies on a central branch of the skeleton, the
// part used to place bead centerlines as opposed to rib or support
// structure.
func (n *Node) IsCentral() bool {
	central := false
	n.eachOutgoing(func(e *Edge) bool {
		if e.Central == CentralYes {
			central = true
			return false
		}
		return true
	})
	return central
}
