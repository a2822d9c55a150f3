package skeletal

// Role classifies what a half-edge contributes to the skeleton.
type Role int

const (
	// RoleSkeleton is an ordinary medial-axis edge.
	RoleSkeleton Role = iota
	// RoleSupport is a structural connector between two otherwise-parallel
	// skeleton branches, the short side of a trapezoid cell. Support edges
	// only collapse together with their whole cell.
	RoleSupport
	// RoleRib anchors a skeleton node back to the input polygon.
	RoleRib
)

func (r Role) String() string {
	switch r {
	case RoleSkeleton:
		return "skeleton"
	case RoleSupport:
		return "support"
	case RoleRib:
		return "rib"
	}
	return "unknown"
}

// Centrality marks whether an edge belongs to the central skeleton, the
// subset actually used to place bead centerlines. The trapezoidation stage
// leaves edges unmarked until its central-region filter has run.
type Centrality int

const (
	CentralUnknown Centrality = iota
	CentralYes
	CentralNo
)

// Edge is one directed half of an undirected skeleton edge. Twin is the
// opposite direction of the same undirected edge; Next and Prev chain
// half-edges into cell loops. A nil Prev starts a cell, a nil Next ends one.
type Edge struct {
	From *Node
	To   *Node

	Twin *Edge
	Next *Edge
	Prev *Edge

	Role    Role
	Central Centrality

	removed bool
}

// Length returns the edge length in microns.
func (e *Edge) Length() int64 {
	return e.To.P.Sub(e.From.P).Size()
}

// IsCentral reports whether the edge counts as a central skeleton branch.
// Marked edges answer from the mark; unmarked skeleton-role edges count as
// central so branch detection works on graphs the central-region filter has
// not visited yet.
func (e *Edge) IsCentral() bool {
	if e.Central != CentralUnknown {
		return e.Central == CentralYes
	}
	return e.Role == RoleSkeleton
}

// CanGoUp reports whether the path through e eventually reaches a node with
// strictly greater distance-to-boundary. A strictly rising edge qualifies
// immediately. When the edge is equidistant, the plateau beyond it is
// searched breadth-first; with strict set, equidistant neighbors never count
// and only a directly rising edge qualifies. The search tracks visited nodes,
// so it terminates on malformed cyclic plateaus.
func (e *Edge) CanGoUp(strict bool) bool {
	if e.To.Dist > e.From.Dist {
		return true
	}
	if e.To.Dist < e.From.Dist || strict {
		return false
	}

	level := e.From.Dist
	visited := map[*Node]struct{}{e.From: {}, e.To: {}}
	work := []*Node{e.To}
	for len(work) > 0 {
		n := work[len(work)-1]
		work = work[:len(work)-1]
		up := false
		n.eachOutgoing(func(o *Edge) bool {
			if o.To.Dist > level {
				up = true
				return false
			}
			if o.To.Dist == level {
				if _, ok := visited[o.To]; !ok {
					visited[o.To] = struct{}{}
					work = append(work, o.To)
				}
			}
			return true
		})
		if up {
			return true
		}
	}
	return false
}

// DistToGoUp returns the length traversed along e and the equidistant chain
// beyond it until a strictly rising edge is crossed, including both e's own
// length and the rising edge. The second result is false when the plateau
// never climbs, which is exactly the case where the far end of the chain is
// a strict local maximum.
func (e *Edge) DistToGoUp() (int64, bool) {
	if e.To.Dist > e.From.Dist {
		return e.Length(), true
	}
	if e.To.Dist < e.From.Dist {
		return 0, false
	}

	// Shortest walk across the plateau to any strictly higher neighbor.
	// Labels only ever decrease, so the relaxation terminates even on
	// accidentally cyclic plateaus.
	level := e.From.Dist
	best := int64(-1)
	acc := map[*Node]int64{e.To: e.Length()}
	work := []*Node{e.To}
	for len(work) > 0 {
		n := work[len(work)-1]
		work = work[:len(work)-1]
		d := acc[n]
		n.eachOutgoing(func(o *Edge) bool {
			t := d + o.Length()
			if o.To.Dist > level {
				if best < 0 || t < best {
					best = t
				}
			} else if o.To.Dist == level {
				if cur, ok := acc[o.To]; !ok || t < cur {
					acc[o.To] = t
					work = append(work, o.To)
				}
			}
			return true
		})
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// IsUpward reports whether the edge goes from a lower to a higher
// distance-to-boundary. Equidistant edges are resolved by measuring how far
// each direction has to travel before climbing: the direction with the
// nearer ascent wins. When neither direction climbs, an arbitrary but
// deterministic positional order decides, so an edge and its twin always
// disagree.
func (e *Edge) IsUpward() bool {
	if e.To.Dist > e.From.Dist {
		return true
	}
	if e.To.Dist < e.From.Dist {
		return false
	}
	fwd, fok := e.DistToGoUp()
	bwd, bok := e.Twin.DistToGoUp()
	switch {
	case fok && bok:
		if fwd != bwd {
			return fwd < bwd
		}
	case fok:
		return true
	case bok:
		return false
	}
	return e.To.P.Less(e.From.P)
}
