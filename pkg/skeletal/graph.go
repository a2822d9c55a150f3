package skeletal

import (
	"errors"
	"slices"

	"github.com/printforge/marrow/pkg/geom"
)

var (
	// ErrTwinMismatch is returned by [Graph.Validate] when a half-edge's
	// twin does not point back at it.
	ErrTwinMismatch = errors.New("half-edge twin does not point back")

	// ErrLinkMismatch is returned by [Graph.Validate] when next/prev links
	// disagree: e.Next.Prev != e or e.Prev.Next != e.
	ErrLinkMismatch = errors.New("next/prev links out of sync")

	// ErrEndpointMismatch is returned by [Graph.Validate] when a half-edge
	// and its twin disagree about their shared endpoints.
	ErrEndpointMismatch = errors.New("half-edge endpoints disagree with twin")

	// ErrOrphanNode is returned by [Graph.Validate] when a stored node has
	// no stored outgoing half-edge.
	ErrOrphanNode = errors.New("node has no outgoing half-edge")

	// ErrNegativeDistance is returned by [Graph.Validate] when a node
	// carries a negative distance-to-boundary.
	ErrNegativeDistance = errors.New("negative distance to boundary")

	// ErrRemovedReference is returned by [Graph.Validate] when a stored
	// record still points at a removed one. This indicates a caller removed
	// an entity without re-linking its neighbors first.
	ErrRemovedReference = errors.New("reference to removed node or edge")
)

// Graph owns the nodes and half-edges of one cross-section's skeleton.
// Records are handed out as pointers and stay valid until removed; iteration
// follows insertion order. The zero value is not usable, call New.
//
// The container enforces no duplicate-edge policy; preventing parallel edges
// is the caller's responsibility (CollapseSmallEdges cleans up duplicates it
// creates itself).
type Graph struct {
	nodes []*Node
	edges []*Edge
}

// New creates an empty skeleton graph.
func New() *Graph {
	return &Graph{}
}

// AddNode creates a node at p with the given distance-to-boundary and adds
// it to the graph. The node starts with no incident edge; it satisfies the
// no-orphan invariant once the first half-edge leaving it is added.
func (g *Graph) AddNode(p geom.Point, dist int64) *Node {
	n := &Node{P: p, Dist: dist}
	g.nodes = append(g.nodes, n)
	return n
}

// AddEdgePair creates the two half-edges of an undirected edge between from
// and to, linked as twins, and returns them in that orientation order. Next
// and Prev start nil; threading the pair into cell loops is up to the
// caller. Either node's Incident is set if it was still unset.
func (g *Graph) AddEdgePair(from, to *Node, role Role) (*Edge, *Edge) {
	e := g.addEdge(from, to, role)
	t := g.addEdge(to, from, role)
	e.Twin = t
	t.Twin = e
	return e, t
}

// addEdge creates a single half-edge with no twin. Mutations use it while a
// pair is mid-construction; every public operation leaves all stored edges
// properly twinned.
func (g *Graph) addEdge(from, to *Node, role Role) *Edge {
	e := &Edge{From: from, To: to, Role: role}
	g.edges = append(g.edges, e)
	if from.Incident == nil {
		from.Incident = e
	}
	return e
}

// RemoveEdgePair removes e and its twin from the graph. Callers must have
// re-linked surrounding Next/Prev chains and Incident pointers beforehand;
// Validate reports any reference left dangling.
func (g *Graph) RemoveEdgePair(e *Edge) {
	t := e.Twin
	g.removeHalfEdge(e)
	if t != nil {
		g.removeHalfEdge(t)
	}
}

// removeHalfEdge removes a single half-edge. Used directly only by the
// collapse pass, which re-twins the surviving halves of merged parallel
// edges before discarding the other two.
func (g *Graph) removeHalfEdge(e *Edge) {
	if e.removed {
		return
	}
	e.removed = true
	g.edges = slices.DeleteFunc(g.edges, func(x *Edge) bool { return x == e })
}

// RemoveNode removes n from the graph. Callers must have re-targeted or
// removed every half-edge touching n first.
func (g *Graph) RemoveNode(n *Node) {
	if n.removed {
		return
	}
	n.removed = true
	g.nodes = slices.DeleteFunc(g.nodes, func(x *Node) bool { return x == n })
}

// Nodes returns the stored nodes in insertion order. The slice is a copy;
// the pointed-to nodes are the graph's own records.
func (g *Graph) Nodes() []*Node {
	return slices.Clone(g.nodes)
}

// Edges returns the stored half-edges in insertion order. The slice is a
// copy; the pointed-to edges are the graph's own records.
func (g *Graph) Edges() []*Edge {
	return slices.Clone(g.edges)
}

// NodeCount returns the number of stored nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of stored half-edges. Undirected edges count
// twice, once per direction.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Validate checks the core topology invariants and returns nil if all hold:
// twin reciprocity, next/prev agreement, endpoint agreement between twins,
// no orphan nodes, no negative distances, and no references to removed
// records. A violation after a completed mutation indicates a bug in the
// mutating code, not a recoverable input condition.
func (g *Graph) Validate() error {
	for _, e := range g.edges {
		if e.Twin == nil || e.Twin.Twin != e {
			return ErrTwinMismatch
		}
		if e.Twin.removed {
			return ErrRemovedReference
		}
		if e.Next != nil && (e.Next.removed || e.Next.Prev != e) {
			if e.Next.removed {
				return ErrRemovedReference
			}
			return ErrLinkMismatch
		}
		if e.Prev != nil && (e.Prev.removed || e.Prev.Next != e) {
			if e.Prev.removed {
				return ErrRemovedReference
			}
			return ErrLinkMismatch
		}
		if e.From == nil || e.To == nil {
			return ErrEndpointMismatch
		}
		if e.From.removed || e.To.removed {
			return ErrRemovedReference
		}
		if e.From != e.Twin.To || e.To != e.Twin.From {
			return ErrEndpointMismatch
		}
	}
	for _, n := range g.nodes {
		if n.Dist < 0 {
			return ErrNegativeDistance
		}
		if n.Incident == nil || n.Incident.removed || n.Incident.From != n {
			if n.Incident != nil && n.Incident.removed {
				return ErrRemovedReference
			}
			return ErrOrphanNode
		}
	}
	return nil
}
