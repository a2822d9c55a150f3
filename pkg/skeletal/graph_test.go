package skeletal

import (
	"errors"
	"testing"

	"github.com/printforge/marrow/pkg/geom"
)

// link threads edges into an open cell chain in order.
func link(edges ...*Edge) {
	for i := 0; i < len(edges)-1; i++ {
		edges[i].Next = edges[i+1]
		edges[i+1].Prev = edges[i]
	}
}

// linkLoop threads edges into a closed face loop in order.
func linkLoop(edges ...*Edge) {
	link(edges...)
	last := edges[len(edges)-1]
	last.Next = edges[0]
	edges[0].Prev = last
}

// ring builds a closed skeleton ring through the given positions, all at the
// same distance-to-boundary, with both face loops linked.
func ring(dist int64, pts ...geom.Point) (*Graph, []*Node) {
	g := New()
	nodes := make([]*Node, len(pts))
	for i, p := range pts {
		nodes[i] = g.AddNode(p, dist)
	}
	inner := make([]*Edge, len(pts))
	outer := make([]*Edge, len(pts))
	for i := range nodes {
		e, t := g.AddEdgePair(nodes[i], nodes[(i+1)%len(nodes)], RoleSkeleton)
		inner[i] = e
		outer[len(pts)-1-i] = t
	}
	linkLoop(inner...)
	linkLoop(outer...)
	return g, nodes
}

func TestAddAndIterate(t *testing.T) {
	g := New()
	a := g.AddNode(geom.Pt(0, 0), 0)
	b := g.AddNode(geom.Pt(10, 0), 0)
	e, tw := g.AddEdgePair(a, b, RoleSkeleton)

	if got := g.NodeCount(); got != 2 {
		t.Errorf("NodeCount() = %d, want 2", got)
	}
	if got := g.EdgeCount(); got != 2 {
		t.Errorf("EdgeCount() = %d, want 2", got)
	}
	if edges := g.Edges(); edges[0] != e || edges[1] != tw {
		t.Error("Edges() not in insertion order")
	}
	if e.Twin != tw || tw.Twin != e {
		t.Error("AddEdgePair did not link twins")
	}
	if a.Incident != e {
		t.Error("AddEdgePair did not set from-node incident edge")
	}
	if b.Incident != tw {
		t.Error("AddEdgePair did not set to-node incident edge")
	}
}

func TestValidateOK(t *testing.T) {
	g, _ := ring(10, geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 100), geom.Pt(0, 100))
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateTwinMismatch(t *testing.T) {
	g, _ := ring(10, geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 100))
	e := g.Edges()[0]
	e.Twin = g.Edges()[2]

	if err := g.Validate(); !errors.Is(err, ErrTwinMismatch) {
		t.Errorf("Validate() = %v, want ErrTwinMismatch", err)
	}
}

func TestValidateLinkMismatch(t *testing.T) {
	g, _ := ring(10, geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 100))
	e := g.Edges()[0]
	e.Next.Prev = e.Next

	if err := g.Validate(); !errors.Is(err, ErrLinkMismatch) {
		t.Errorf("Validate() = %v, want ErrLinkMismatch", err)
	}
}

func TestValidateEndpointMismatch(t *testing.T) {
	g, nodes := ring(10, geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 100))
	g.Edges()[0].To = nodes[2]

	if err := g.Validate(); !errors.Is(err, ErrEndpointMismatch) {
		t.Errorf("Validate() = %v, want ErrEndpointMismatch", err)
	}
}

func TestValidateOrphanNode(t *testing.T) {
	g, _ := ring(10, geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 100))
	g.AddNode(geom.Pt(50, 50), 5)

	if err := g.Validate(); !errors.Is(err, ErrOrphanNode) {
		t.Errorf("Validate() = %v, want ErrOrphanNode", err)
	}
}

func TestValidateNegativeDistance(t *testing.T) {
	g, nodes := ring(10, geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 100))
	nodes[1].Dist = -1

	if err := g.Validate(); !errors.Is(err, ErrNegativeDistance) {
		t.Errorf("Validate() = %v, want ErrNegativeDistance", err)
	}
}

func TestValidateRemovedReference(t *testing.T) {
	g, _ := ring(10, geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 100))
	// Remove a pair without re-linking the neighbors first.
	g.RemoveEdgePair(g.Edges()[0])

	if err := g.Validate(); !errors.Is(err, ErrRemovedReference) {
		t.Errorf("Validate() = %v, want ErrRemovedReference", err)
	}
}

func TestRemoveEdgePairRemovesBothHalves(t *testing.T) {
	g := New()
	a := g.AddNode(geom.Pt(0, 0), 0)
	b := g.AddNode(geom.Pt(10, 0), 0)
	e, _ := g.AddEdgePair(a, b, RoleSkeleton)

	g.RemoveEdgePair(e)

	if got := g.EdgeCount(); got != 0 {
		t.Errorf("EdgeCount() after RemoveEdgePair = %d, want 0", got)
	}
}

func TestEachOutgoingOpenFan(t *testing.T) {
	// A node with two outgoing edges whose fan is interrupted by a cell
	// boundary: the second edge is only reachable by walking backwards.
	g := New()
	c := g.AddNode(geom.Pt(0, 0), 10)
	a := g.AddNode(geom.Pt(10, 0), 10)
	b := g.AddNode(geom.Pt(0, 10), 10)
	e1, _ := g.AddEdgePair(c, a, RoleSkeleton)
	e2, t2 := g.AddEdgePair(c, b, RoleSkeleton)
	// e1's cell ends right at a, so e2 is not reachable forwards from
	// e1 via twin->next; only the backward walk over e1.Prev finds it.
	link(t2, e1)

	out := c.outgoing()
	if len(out) != 2 {
		t.Fatalf("outgoing() found %d edges, want 2", len(out))
	}
	found := map[*Edge]bool{out[0]: true, out[1]: true}
	if !found[e1] || !found[e2] {
		t.Error("outgoing() missed an edge of the open fan")
	}
}
