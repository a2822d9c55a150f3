// Package skeletal implements the half-edge graph that carries the medial
// axis ("skeleton") of one 2D cross-section of a sliced model, annotated per
// node with the distance to the nearest boundary.
//
// The graph is produced by an external trapezoidation stage and consumed by
// the bead-assignment stage, which walks it to decide how many concentric
// beads fit at each point of the outline. This package owns everything in
// between: the mesh records and their topology invariants, the read-only
// predicates that interpret the distance field (ridges, plateaus, branch
// points), the tolerance-driven collapse pass that removes near-degenerate
// edges, and the node/rib insertion used when a bead-count transition needs a
// new structural point mid-edge.
//
// # Topology
//
// Edges come in twin pairs: each undirected edge is stored as two directed
// half-edges pointing at each other via Twin. Next and Prev link half-edges
// into face loops. The graph is laid out as trapezoid cells: a half-edge with
// a nil Prev starts a cell, a nil Next ends it, and the two open ends rest on
// the input polygon. Closed loops are also valid. Outside an in-progress
// mutation the following always hold:
//
//   - e.Twin.Twin == e
//   - e.Next == nil or e.Next.Prev == e, and symmetrically for Prev
//   - e.From == e.Twin.To and e.To == e.Twin.From
//   - every node is the From of at least one stored half-edge
//   - node distances are non-negative
//
// Validate checks all of these and reports the first violation.
//
// # Ownership and concurrency
//
// The Graph exclusively owns its nodes and half-edges; handles returned from
// mutations stay valid until explicitly removed. A Graph corresponds to one
// layer and is not safe for concurrent use without external synchronization.
// All operations run to completion; nothing blocks.
package skeletal
