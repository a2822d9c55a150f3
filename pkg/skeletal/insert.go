package skeletal

import "github.com/printforge/marrow/pkg/geom"

// sourceSegment recovers the boundary segment a cell is derived from by
// walking e's cell chain to its two open ends; their node positions are the
// original polygon points. Returns ok == false for a closed loop or a
// malformed chain, which has no boundary source.
func (g *Graph) sourceSegment(e *Edge) (start, end geom.Point, ok bool) {
	limit := len(g.edges) + 1
	first := e
	for i := 0; first.Prev != nil; i++ {
		first = first.Prev
		if first == e || i >= limit {
			return geom.Point{}, geom.Point{}, false
		}
	}
	last := e
	for i := 0; last.Next != nil; i++ {
		last = last.Next
		if last == e || i >= limit {
			return geom.Point{}, geom.Point{}, false
		}
	}
	return first.From.P, last.To.P, true
}

// canAnchor reports whether a rib from p can be placed on e's boundary
// source: the source segment must exist, be non-degenerate, and not pass
// through p itself.
func (g *Graph) canAnchor(e *Edge, p geom.Point) bool {
	a, b, ok := g.sourceSegment(e)
	if !ok || a == b {
		return false
	}
	return geom.DistToSegment(p, a, b) > 0
}

// InsertNode splits edge at mid, which must lie on the edge's segment,
// creating a new skeleton node carrying midBeadCount. Both sides of the
// split are anchored to the boundary with ribs, so the new junction is tied
// to the actual polygon rather than floating in skeleton space. The returned
// edge still points at edge's original To node, keeping references held by
// the caller traversable.
//
// When either side's boundary source is degenerate or passes through mid,
// nothing is inserted and edge itself is returned; the graph is left exactly
// as it was.
func (g *Graph) InsertNode(edge *Edge, mid geom.Point, midBeadCount int) *Edge {
	if !g.canAnchor(edge, mid) || !g.canAnchor(edge.Twin, mid) {
		return edge
	}

	midNode := g.AddNode(mid, 0)

	twin := edge.Twin
	edge.Twin = nil
	twin.Twin = nil
	leftFirst, leftLast := g.InsertRib(edge, midNode)
	rightFirst, rightLast := g.InsertRib(twin, midNode)

	leftFirst.Twin = rightLast
	rightLast.Twin = leftFirst
	leftLast.Twin = rightFirst
	rightFirst.Twin = leftLast

	midNode.BeadCount = midBeadCount
	return leftLast
}

// InsertRib splits edge at midNode and hangs a rib pair from midNode down to
// its projection on the cell's boundary source, splitting the cell in two.
// It returns the first and last edge of the chain replacing edge; the last
// still points at edge's original To node.
//
// The replacement's outer half-edges are left untwinned; InsertNode, which
// performs the same split on the twin side, reconnects them. When the rib
// cannot be placed (no boundary source, or midNode already on it), the edge
// is returned unchanged as both first and last.
func (g *Graph) InsertRib(edge *Edge, midNode *Node) (*Edge, *Edge) {
	a, b, ok := g.sourceSegment(edge)
	if !ok || a == b {
		return edge, edge
	}
	px := geom.ClosestOnSegment(midNode.P, a, b)
	d := geom.Dist(midNode.P, px)
	if d == 0 {
		return edge, edge
	}
	midNode.Dist = d

	after := edge.Next
	nodeAfter := edge.To

	src := g.AddNode(px, 0)
	first := edge
	second := g.addEdge(midNode, nodeAfter, first.Role)
	outward := g.addEdge(midNode, src, RoleRib)
	inward := g.addEdge(src, midNode, RoleRib)
	outward.Twin = inward
	inward.Twin = outward
	outward.Central = CentralNo
	inward.Central = CentralNo
	first.Central = CentralYes
	second.Central = CentralYes

	// Close the first half-cell at the boundary and open the second.
	first.Next = outward
	outward.Prev = first
	outward.Next = nil
	inward.Prev = nil
	inward.Next = second
	second.Prev = inward
	second.Next = after
	if after != nil {
		after.Prev = second
	}

	first.To = midNode
	midNode.Incident = second
	src.Incident = inward

	return first, second
}

// MakeRib threads a rib into the cell loop right after prev: a twin pair
// from prev's head down to its projection on the boundary segment
// [start, end]. The rib ends the current cell and the returned back edge
// starts the next one; callers use it as the new prev when walking a chain
// of ribs. isNextToStartOrEnd flags ribs adjacent to the segment's own
// endpoints, where the projection may coincide with the skeleton node; such
// a rib would be zero length and is skipped, returning prev unchanged.
func (g *Graph) MakeRib(prev *Edge, start, end geom.Point, isNextToStartOrEnd bool) *Edge {
	p := geom.ClosestOnSegment(prev.To.P, start, end)
	if isNextToStartOrEnd && (p == start || p == end) && p == prev.To.P {
		prev.To.Dist = 0
		return prev
	}
	d := geom.Dist(prev.To.P, p)
	prev.To.Dist = d
	if d == 0 {
		return prev
	}

	anchor := g.AddNode(p, 0)
	forth, back := g.AddEdgePair(prev.To, anchor, RoleRib)
	forth.Central = CentralNo
	back.Central = CentralNo

	next := prev.Next
	prev.Next = forth
	forth.Prev = prev
	forth.Next = nil
	back.Prev = nil
	back.Next = next
	if next != nil {
		next.Prev = back
	}
	anchor.Incident = back
	return back
}
