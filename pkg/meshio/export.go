package meshio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/printforge/marrow/pkg/skeletal"
)

// FormatVersion is the envelope version this package reads and writes.
const FormatVersion = 1

var roleToString = map[skeletal.Role]string{
	skeletal.RoleSkeleton: "skeleton",
	skeletal.RoleSupport:  "support",
	skeletal.RoleRib:      "rib",
}

var centralToString = map[skeletal.Centrality]string{
	skeletal.CentralYes: "yes",
	skeletal.CentralNo:  "no",
}

type envelope struct {
	Version int    `json:"version"`
	Nodes   []node `json:"nodes"`
	Edges   []edge `json:"edges"`
}

type node struct {
	X         int64 `json:"x"`
	Y         int64 `json:"y"`
	Dist      int64 `json:"dist"`
	BeadCount int   `json:"bead_count,omitempty"`
}

type edge struct {
	From    int    `json:"from"`
	To      int    `json:"to"`
	Twin    int    `json:"twin"`
	Next    int    `json:"next"`
	Prev    int    `json:"prev"`
	Role    string `json:"role"`
	Central string `json:"central,omitempty"`
}

// WriteJSON encodes g as JSON and writes it to w. Links between records are
// emitted as array indices in graph iteration order, so the output can be
// re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(g *skeletal.Graph, w io.Writer) error {
	nodes := g.Nodes()
	edges := g.Edges()

	nodeIdx := make(map[*skeletal.Node]int, len(nodes))
	for i, n := range nodes {
		nodeIdx[n] = i
	}
	edgeIdx := make(map[*skeletal.Edge]int, len(edges))
	for i, e := range edges {
		edgeIdx[e] = i
	}
	ref := func(e *skeletal.Edge) int {
		if e == nil {
			return -1
		}
		return edgeIdx[e]
	}

	out := envelope{
		Version: FormatVersion,
		Nodes:   make([]node, len(nodes)),
		Edges:   make([]edge, len(edges)),
	}
	for i, n := range nodes {
		out.Nodes[i] = node{X: n.P.X, Y: n.P.Y, Dist: n.Dist, BeadCount: n.BeadCount}
	}
	for i, e := range edges {
		out.Edges[i] = edge{
			From:    nodeIdx[e.From],
			To:      nodeIdx[e.To],
			Twin:    ref(e.Twin),
			Next:    ref(e.Next),
			Prev:    ref(e.Prev),
			Role:    roleToString[e.Role],
			Central: centralToString[e.Central],
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes g to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *skeletal.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}
