package skeletal

import (
	"testing"

	"github.com/printforge/marrow/pkg/geom"
)

func TestCollapseShortEdgeInSquare(t *testing.T) {
	// Four-node square skeleton with three long edges and one of length 2.
	g, _ := ring(10,
		geom.Pt(0, 0), geom.Pt(2, 0), geom.Pt(52, 60), geom.Pt(-50, 60))

	g.CollapseSmallEdges(5)

	if got := g.NodeCount(); got != 3 {
		t.Errorf("NodeCount() after collapse = %d, want 3", got)
	}
	if got := g.EdgeCount(); got != 6 {
		t.Errorf("EdgeCount() after collapse = %d, want 6", got)
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() after collapse = %v, want nil", err)
	}

	// Deterministic survivor: the lexicographically lower endpoint wins the
	// tie between the short edge's equally connected, equidistant ends.
	for _, n := range g.Nodes() {
		if n.P == geom.Pt(2, 0) {
			t.Error("collapse kept the higher endpoint, want (0, 0) to survive")
		}
	}
}

func TestCollapseIsIdempotent(t *testing.T) {
	g, _ := ring(10,
		geom.Pt(0, 0), geom.Pt(2, 0), geom.Pt(52, 60), geom.Pt(-50, 60))

	g.CollapseSmallEdges(5)
	nodes, edges := g.NodeCount(), g.EdgeCount()
	g.CollapseSmallEdges(5)

	if g.NodeCount() != nodes || g.EdgeCount() != edges {
		t.Errorf("second collapse changed the graph: %d/%d nodes, %d/%d edges",
			g.NodeCount(), nodes, g.EdgeCount(), edges)
	}
}

func TestCollapseChainToFixedPoint(t *testing.T) {
	// A run of three tiny edges followed by one long one. All three must go
	// even though each collapse creates the next configuration.
	g := New()
	xs := []int64{0, 2, 4, 6, 100}
	nodes := make([]*Node, len(xs))
	for i, x := range xs {
		nodes[i] = g.AddNode(geom.Pt(x, 0), 10)
	}
	fwd := make([]*Edge, 0, len(xs)-1)
	rev := make([]*Edge, 0, len(xs)-1)
	for i := 0; i < len(nodes)-1; i++ {
		e, tw := g.AddEdgePair(nodes[i], nodes[i+1], RoleSkeleton)
		fwd = append(fwd, e)
		rev = append([]*Edge{tw}, rev...)
	}
	link(fwd...)
	link(rev...)

	g.CollapseSmallEdges(5)

	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() after collapse = %v, want nil", err)
	}
	if got := g.NodeCount(); got != 2 {
		t.Errorf("NodeCount() = %d, want 2", got)
	}
	for _, e := range g.Edges() {
		if geom.ShorterThan(e.To.P.Sub(e.From.P), 5) {
			t.Errorf("edge %v -> %v still shorter than tolerance", e.From.P, e.To.P)
		}
	}
}

// supportRing builds a closed cell of support edges through the given points.
func supportRing(pts ...geom.Point) *Graph {
	g := New()
	nodes := make([]*Node, len(pts))
	for i, p := range pts {
		nodes[i] = g.AddNode(p, 10)
	}
	inner := make([]*Edge, len(pts))
	outer := make([]*Edge, len(pts))
	for i := range nodes {
		e, tw := g.AddEdgePair(nodes[i], nodes[(i+1)%len(nodes)], RoleSupport)
		inner[i] = e
		outer[len(pts)-1-i] = tw
	}
	linkLoop(inner...)
	linkLoop(outer...)
	return g
}

func TestProtectedQuadCollapsesAtomically(t *testing.T) {
	// All four edges of the quad are below tolerance, so the whole cell
	// collapses to a single point in one step.
	g := supportRing(geom.Pt(0, 0), geom.Pt(3, 0), geom.Pt(3, 3), geom.Pt(0, 3))

	g.CollapseSmallEdges(5)

	// With no structure outside the quad, nothing is left to anchor the
	// merged node either.
	if g.NodeCount() != 0 || g.EdgeCount() != 0 {
		t.Errorf("quad left %d nodes, %d edges; want an empty graph",
			g.NodeCount(), g.EdgeCount())
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestProtectedQuadStaysIntact(t *testing.T) {
	// One side of the quad is long, so the short support edges must not
	// collapse individually.
	g := supportRing(geom.Pt(0, 0), geom.Pt(3, 0), geom.Pt(3, 100), geom.Pt(0, 100))

	g.CollapseSmallEdges(5)

	if got := g.NodeCount(); got != 4 {
		t.Errorf("NodeCount() = %d, want 4 (quad must stay intact)", got)
	}
	if got := g.EdgeCount(); got != 8 {
		t.Errorf("EdgeCount() = %d, want 8 (quad must stay intact)", got)
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestCollapseMergesDuplicateParallelEdges(t *testing.T) {
	// Two undirected edges between the same node pair bounding a sliver
	// face. The cleanup keeps exactly one.
	g := New()
	u := g.AddNode(geom.Pt(0, 0), 10)
	v := g.AddNode(geom.Pt(50, 0), 10)
	a, ta := g.AddEdgePair(u, v, RoleSkeleton)
	c, tc := g.AddEdgePair(u, v, RoleSkeleton)
	a.Central = CentralYes
	// Sliver face between the duplicates; the outer halves stay unlinked.
	linkLoop(a, tc)
	_ = c

	g.CollapseSmallEdges(5)

	if got := g.EdgeCount(); got != 2 {
		t.Fatalf("EdgeCount() = %d, want 2 (one undirected edge)", got)
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if ta.Twin != c || c.Twin != ta {
		t.Error("surviving halves were not re-twinned with each other")
	}
	if ta.Central != CentralYes || c.Central != CentralYes {
		t.Error("central mark on the removed duplicate did not carry over")
	}
}

func TestCollapseRemovesSelfLoops(t *testing.T) {
	g := New()
	n := g.AddNode(geom.Pt(0, 0), 5)
	m := g.AddNode(geom.Pt(50, 0), 5)
	g.AddEdgePair(n, m, RoleSkeleton)
	loop, tl := g.AddEdgePair(n, n, RoleSkeleton)
	linkLoop(loop, tl)

	g.CollapseSmallEdges(5)

	if got := g.EdgeCount(); got != 2 {
		t.Errorf("EdgeCount() = %d, want 2 (self-loop removed)", got)
	}
	if got := g.NodeCount(); got != 2 {
		t.Errorf("NodeCount() = %d, want 2", got)
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestCollapseLeavesLongEdgesAlone(t *testing.T) {
	g, _ := ring(10,
		geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 100), geom.Pt(0, 100))

	g.CollapseSmallEdges(5)

	if g.NodeCount() != 4 || g.EdgeCount() != 8 {
		t.Errorf("collapse touched a graph with no short edges: %d nodes, %d edges",
			g.NodeCount(), g.EdgeCount())
	}
}
