// Package pkg provides the core libraries for marrow skeletal graph processing.
//
// # Overview
//
// Marrow works on the half-edge graphs produced by skeletal trapezoidation,
// the medial axis decomposition used to plan variable-width walls for 3D
// printing. The pkg directory is organized by concern:
//
//  1. [geom] - Integer micron points and segment geometry
//  2. [skeletal] - The half-edge graph: container, predicates, collapse, insertion
//  3. [meshio] - JSON import and export of graphs
//  4. [render] - Medial axis diagrams via Graphviz
//  5. [buildinfo] - Build-time version information
//
// # Architecture
//
// The typical data flow:
//
//	Trapezoidation output (graph.json)
//	         ↓
//	    [meshio] package (decode + validate)
//	         ↓
//	    [skeletal] package (collapse, rib insertion, predicates)
//	         ↓
//	    [meshio] / [render/medial] output
//
// # Quick Start
//
// Load a graph, clean it up, and write it back:
//
//	g, err := meshio.ImportJSON("graph.json")
//	if err != nil {
//	    return err
//	}
//	g.CollapseSmallEdges(skeletal.DefaultSnapDist)
//	return meshio.ExportJSON(g, "graph.json")
//
// [geom]: https://pkg.go.dev/github.com/printforge/marrow/pkg/geom
// [skeletal]: https://pkg.go.dev/github.com/printforge/marrow/pkg/skeletal
// [meshio]: https://pkg.go.dev/github.com/printforge/marrow/pkg/meshio
// [render]: https://pkg.go.dev/github.com/printforge/marrow/pkg/render
// [buildinfo]: https://pkg.go.dev/github.com/printforge/marrow/pkg/buildinfo
package pkg
