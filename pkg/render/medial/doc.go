// Package medial renders skeletal graphs as medial axis diagrams.
//
// The graph is converted to Graphviz DOT with node positions pinned to the
// actual micron coordinates, so the output is a true-scale picture of the
// skeleton: skeleton edges drawn solid, ribs dashed, support edges dotted,
// and central edges highlighted.
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG and
// PNG rendering; no external Graphviz installation is required.
package medial
