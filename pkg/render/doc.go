// Package render provides visualization rendering for skeletal graphs.
//
// The [medial] subpackage converts a graph to Graphviz DOT with pinned node
// positions and renders it to SVG or PNG in process.
//
//	dot := medial.ToDOT(g, medial.Options{})
//	svg, err := medial.RenderSVG(dot)
//
// [medial]: github.com/printforge/marrow/pkg/render/medial
package render
