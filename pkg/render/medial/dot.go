package medial

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/printforge/marrow/pkg/skeletal"
)

// Options configures medial axis rendering.
type Options struct {
	// Detailed labels every node with its distance-to-boundary.
	// When false, nodes are drawn as bare points.
	Detailed bool

	// Scale converts micron coordinates to Graphviz inches.
	// Zero means the default of 0.001 (one inch per millimeter).
	Scale float64
}

const defaultScale = 0.001

// ToDOT converts a skeletal graph to Graphviz DOT format. Node positions are
// pinned, so the neato engine reproduces the graph's true geometry. The
// resulting DOT string can be rendered with [RenderSVG] or [RenderPNG].
//
// Each undirected edge is emitted once. Skeleton edges are solid, ribs
// dashed, support edges dotted; edges marked central are drawn heavier and
// in color.
func ToDOT(g *skeletal.Graph, opts Options) string {
	scale := opts.Scale
	if scale == 0 {
		scale = defaultScale
	}

	var buf bytes.Buffer
	buf.WriteString("graph skeleton {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if opts.Detailed {
		buf.WriteString("  node [shape=circle, fontsize=10, width=0.3, fixedsize=true];\n")
	} else {
		buf.WriteString("  node [shape=point, width=0.06];\n")
	}
	buf.WriteString("\n")

	nodes := g.Nodes()
	idx := make(map[*skeletal.Node]int, len(nodes))
	for i, n := range nodes {
		idx[n] = i
		attrs := []string{fmt.Sprintf("pos=\"%.4f,%.4f!\"", float64(n.P.X)*scale, float64(n.P.Y)*scale)}
		if opts.Detailed {
			attrs = append(attrs, fmt.Sprintf("label=%q", fmt.Sprintf("%d", n.Dist)))
		}
		fmt.Fprintf(&buf, "  n%d [%s];\n", i, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	seen := make(map[*skeletal.Edge]bool)
	for _, e := range g.Edges() {
		if seen[e] || seen[e.Twin] {
			continue
		}
		seen[e] = true
		fmt.Fprintf(&buf, "  n%d -- n%d [%s];\n", idx[e.From], idx[e.To], strings.Join(edgeAttrs(e), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func edgeAttrs(e *skeletal.Edge) []string {
	var attrs []string
	switch e.Role {
	case skeletal.RoleRib:
		attrs = append(attrs, "style=dashed", "color=gray50")
	case skeletal.RoleSupport:
		attrs = append(attrs, "style=dotted", "color=gray70")
	default:
		attrs = append(attrs, "style=solid")
	}
	if e.IsCentral() || e.Twin.IsCentral() {
		attrs = append(attrs, "color=\"#2a6fb0\"", "penwidth=2")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
