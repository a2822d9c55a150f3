// Package meshio reads and writes skeletal graphs as JSON.
//
// The format is a versioned envelope with flat node and half-edge arrays.
// Pointers between records are array indices, with -1 standing for a nil
// link, so a graph survives a round trip bit for bit:
//
//	{
//	  "version": 1,
//	  "nodes": [{"x": 0, "y": 0, "dist": 200}],
//	  "edges": [{"from": 0, "to": 1, "twin": 1, "next": -1, "prev": -1,
//	             "role": "skeleton", "central": "yes"}]
//	}
//
// Import rejects files that do not describe a structurally valid graph, so
// downstream passes never see broken topology.
package meshio
