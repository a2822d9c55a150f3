package skeletal

import "github.com/printforge/marrow/pkg/geom"

// DefaultSnapDist is the default collapse tolerance in microns.
const DefaultSnapDist = 5

// CollapseSmallEdges removes every edge shorter than snapDist while keeping
// the graph valid for bead generation. It runs as a cleanup pass right after
// the trapezoidation stage hands the graph over.
//
// Support and rib edges never collapse on their own: removing one side of a
// short trapezoid cell would fold the two parallel skeleton branches it
// separates onto each other. Such an edge goes only when its entire cell is
// below tolerance, in which case the whole cell collapses to a single node.
//
// Each collapse merges an edge and its twin into one surviving node. The
// survivor is chosen deterministically: the endpoint with more incident
// structure wins, then the one farther from the boundary, then the
// positionally lower one. Every half-edge of the removed node is re-targeted
// at the survivor and the surrounding cell loops are re-linked, after which
// degenerate self-loops and duplicate parallel edges left behind are cleaned
// up. The whole procedure repeats until nothing changes; each productive
// pass removes at least one edge pair, so it terminates. Running it a second
// time with the same tolerance is a no-op.
func (g *Graph) CollapseSmallEdges(snapDist int64) {
	maxPasses := len(g.edges) + 1
	for i := 0; i < maxPasses; i++ {
		changed := g.collapsePass(snapDist)
		if g.cleanupPass() {
			changed = true
		}
		if !changed {
			return
		}
	}
}

func (g *Graph) collapsePass(snapDist int64) bool {
	changed := false
	for _, e := range g.Edges() {
		if e.removed || e.From == e.To {
			continue
		}
		if !geom.ShorterThan(e.To.P.Sub(e.From.P), snapDist) {
			continue
		}
		if e.Role != RoleSkeleton {
			cell := cellOf(e)
			if cell != nil && cellCollapsible(cell, snapDist) {
				g.collapseCell(cell)
				changed = true
			}
			continue
		}
		g.collapsePair(e)
		changed = true
	}
	return changed
}

// collapsePair merges e's endpoints into one node, removes e and its twin,
// and re-links everything that touched either endpoint.
func (g *Graph) collapsePair(e *Edge) {
	surv, gone := collapseSurvivor(e)

	star := gone.outgoing()
	candidates := append(surv.outgoing(), star...)
	for _, o := range star {
		o.From = surv
		o.Twin.To = surv
	}

	g.spliceOutPair(e)
	g.RemoveEdgePair(e)

	surv.Incident = nil
	for _, o := range candidates {
		if !o.removed && o.From == surv {
			surv.Incident = o
			break
		}
	}

	g.RemoveNode(gone)
	if surv.Incident == nil {
		// The pair was the node's only structure.
		g.RemoveNode(surv)
	}
}

// collapseSurvivor picks which endpoint of e survives a collapse. Higher
// degree wins, then higher distance-to-boundary, then the lexicographically
// lower position. The order is total, so repeated runs make identical
// choices.
func collapseSurvivor(e *Edge) (surv, gone *Node) {
	a, b := e.From, e.To
	if da, db := a.degree(), b.degree(); da != db {
		if da > db {
			return a, b
		}
		return b, a
	}
	if a.Dist != b.Dist {
		if a.Dist > b.Dist {
			return a, b
		}
		return b, a
	}
	if a.P.Less(b.P) {
		return a, b
	}
	return b, a
}

// spliceOutPair unlinks e and its twin from their cell loops, bridging the
// neighbors across the gap. The two half-edges may sit in the same loop
// (a spike), in which case the loop is bridged around both at once.
func (g *Graph) spliceOutPair(e *Edge) {
	t := e.Twin
	switch {
	case e.Next == t && e.Prev == t:
		// Isolated two-edge loop, nothing to bridge.
	case e.Next == t:
		join(e.Prev, t.Next)
	case e.Prev == t:
		join(t.Prev, e.Next)
	default:
		join(e.Prev, e.Next)
		join(t.Prev, t.Next)
	}
	e.Next, e.Prev = nil, nil
	t.Next, t.Prev = nil, nil
}

func join(p, n *Edge) {
	if p != nil {
		p.Next = n
	}
	if n != nil {
		n.Prev = p
	}
}

// cellOf returns the cell loop containing e, in face order, or nil when the
// loop has more than four edges and is not a candidate for atomic collapse.
func cellOf(e *Edge) []*Edge {
	const maxCell = 4
	start := e
	for i := 0; start.Prev != nil; i++ {
		start = start.Prev
		if start == e || i >= maxCell {
			break
		}
	}
	if start.Prev != nil && start != e {
		return nil
	}
	var cell []*Edge
	for c := start; c != nil; c = c.Next {
		cell = append(cell, c)
		if len(cell) > maxCell {
			return nil
		}
		if c.Next == start {
			break
		}
	}
	return cell
}

// cellCollapsible reports whether every edge of the cell, including the
// implicit boundary side of an open cell, is below tolerance.
func cellCollapsible(cell []*Edge, snapDist int64) bool {
	for _, c := range cell {
		if c.From != c.To && !geom.ShorterThan(c.To.P.Sub(c.From.P), snapDist) {
			return false
		}
	}
	first, last := cell[0], cell[len(cell)-1]
	if first.Prev == nil && last.Next == nil {
		if !geom.ShorterThan(last.To.P.Sub(first.From.P), snapDist) {
			return false
		}
	}
	return true
}

// collapseCell collapses a whole below-tolerance cell to a single node.
func (g *Graph) collapseCell(cell []*Edge) {
	for _, c := range cell {
		if c.removed {
			continue
		}
		if c.From == c.To {
			g.removeLoopPair(c)
			continue
		}
		g.collapsePair(c)
	}
}

// cleanupPass removes degenerate self-loops and merges duplicate parallel
// edges left behind by collapses: two undirected edges between the same node
// pair bounding a two-edge sliver face become one.
func (g *Graph) cleanupPass() bool {
	changed := false
	for _, e := range g.Edges() {
		if e.removed {
			continue
		}
		if e.From == e.To {
			g.removeLoopPair(e)
			changed = true
			continue
		}
		b := e.Next
		if b != nil && !b.removed && b != e.Twin && b.Next == e && b.To == e.From {
			g.mergeParallel(e, b)
			changed = true
		}
	}
	return changed
}

// removeLoopPair removes a zero-area self-loop pair at a single node.
func (g *Graph) removeLoopPair(e *Edge) {
	n := e.From
	candidates := n.outgoing()
	g.spliceOutPair(e)
	g.RemoveEdgePair(e)
	if n.Incident == e || n.Incident == e.Twin {
		n.Incident = nil
		for _, o := range candidates {
			if !o.removed && o.From == n {
				n.Incident = o
				break
			}
		}
		if n.Incident == nil {
			g.RemoveNode(n)
		}
	}
}

// mergeParallel merges the duplicate undirected edges bounding the sliver
// face [a, b]: the two inner half-edges are discarded and their outer twins
// become twins of each other, keeping a single undirected edge between the
// node pair. A central mark on either duplicate carries over.
func (g *Graph) mergeParallel(a, b *Edge) {
	ta, tb := a.Twin, b.Twin
	if a.Central == CentralYes || b.Central == CentralYes {
		ta.Central = CentralYes
		tb.Central = CentralYes
	}
	ta.Twin = tb
	tb.Twin = ta
	if u := a.From; u.Incident == a {
		u.Incident = tb
	}
	if v := a.To; v.Incident == b {
		v.Incident = ta
	}
	g.removeHalfEdge(a)
	g.removeHalfEdge(b)
}
