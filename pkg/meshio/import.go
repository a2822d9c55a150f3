package meshio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/printforge/marrow/pkg/geom"
	"github.com/printforge/marrow/pkg/skeletal"
)

var (
	// ErrVersion reports an envelope version this package cannot read.
	ErrVersion = errors.New("meshio: unsupported format version")
	// ErrReference reports a node or edge index outside the file's arrays.
	ErrReference = errors.New("meshio: index out of range")
	// ErrTwin reports twin indices that are missing or not symmetric.
	ErrTwin = errors.New("meshio: twin pairing mismatch")
	// ErrRole reports an unknown edge role string.
	ErrRole = errors.New("meshio: unknown edge role")
	// ErrCentral reports an unknown centrality string.
	ErrCentral = errors.New("meshio: unknown centrality")
)

var roleFromString = map[string]skeletal.Role{
	"skeleton": skeletal.RoleSkeleton,
	"support":  skeletal.RoleSupport,
	"rib":      skeletal.RoleRib,
}

var centralFromString = map[string]skeletal.Centrality{
	"":    skeletal.CentralUnknown,
	"yes": skeletal.CentralYes,
	"no":  skeletal.CentralNo,
}

// ReadJSON decodes a JSON graph from r.
//
// The input must be a [WriteJSON] envelope: a version number plus flat node
// and half-edge arrays, with links encoded as array indices and -1 for nil.
// Twin indices must pair the halves symmetrically, and the reconstructed
// graph must pass [skeletal.Graph.Validate]; anything else is rejected with
// one of this package's sentinel errors, wrapped with the offending record.
//
// The returned graph is independent of r and can be modified safely after
// ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*skeletal.Graph, error) {
	var data envelope
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if data.Version != FormatVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrVersion, data.Version, FormatVersion)
	}

	g := skeletal.New()
	nodes := make([]*skeletal.Node, len(data.Nodes))
	for i, n := range data.Nodes {
		nodes[i] = g.AddNode(geom.Pt(n.X, n.Y), n.Dist)
		nodes[i].BeadCount = n.BeadCount
	}

	for i, e := range data.Edges {
		if err := checkEdge(e, i, len(data.Nodes), len(data.Edges)); err != nil {
			return nil, err
		}
		t := e.Twin
		if t < 0 || t == i || data.Edges[t].Twin != i {
			return nil, fmt.Errorf("edge %d: %w", i, ErrTwin)
		}
		if data.Edges[t].From != e.To || data.Edges[t].To != e.From {
			return nil, fmt.Errorf("edge %d: %w: endpoints do not mirror", i, ErrTwin)
		}
	}

	// Twin records are symmetric, so materialize each undirected pair once.
	edges := make([]*skeletal.Edge, len(data.Edges))
	for i, e := range data.Edges {
		if e.Twin < i {
			continue
		}
		role := roleFromString[e.Role]
		half, twin := g.AddEdgePair(nodes[e.From], nodes[e.To], role)
		twin.Role = roleFromString[data.Edges[e.Twin].Role]
		edges[i] = half
		edges[e.Twin] = twin
	}
	for i, e := range data.Edges {
		edges[i].Central = centralFromString[e.Central]
		if e.Next >= 0 {
			edges[i].Next = edges[e.Next]
		}
		if e.Prev >= 0 {
			edges[i].Prev = edges[e.Prev]
		}
	}

	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return g, nil
}

// checkEdge bounds-checks a single edge record's indices and vocabulary.
func checkEdge(e edge, i, nodeCount, edgeCount int) error {
	for _, ref := range []int{e.From, e.To} {
		if ref < 0 || ref >= nodeCount {
			return fmt.Errorf("edge %d: node %d: %w", i, ref, ErrReference)
		}
	}
	for _, ref := range []int{e.Twin, e.Next, e.Prev} {
		if ref < -1 || ref >= edgeCount {
			return fmt.Errorf("edge %d: edge %d: %w", i, ref, ErrReference)
		}
	}
	if _, ok := roleFromString[e.Role]; !ok {
		return fmt.Errorf("edge %d: %q: %w", i, e.Role, ErrRole)
	}
	if _, ok := centralFromString[e.Central]; !ok {
		return fmt.Errorf("edge %d: %q: %w", i, e.Central, ErrCentral)
	}
	return nil
}

// ImportJSON reads a JSON file at path and returns the decoded graph.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportJSON(path string) (*skeletal.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
