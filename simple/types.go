// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Handle types, the optional-slot cell, the Graph container, and
//       the New constructor. Operations live in simple.go.

package simple

// NodeID is an opaque handle to a node slot.
//
// It wraps the slot's dense index and is comparable and freely
// copyable; no ordering semantics are exposed. Valid NodeIDs come only
// from Graph.AddNode on the same container instance — handles must not
// be persisted across instances.
type NodeID struct {
	idx int
}

// EdgeID is an opaque handle to an edge cell.
//
// It wraps the (from, to) node-index pair, so two EdgeIDs are equal
// exactly when they address the same ordered pair. Valid EdgeIDs come
// only from Graph.AddEdge or Graph.EdgesFrom on the same container.
type EdgeID struct {
	from, to int
}

// slot is an explicit optional cell: ok marks it occupied. The zero
// value is the empty cell, which is what makes matrix growth by append
// correct without touching payloads.
type slot[T any] struct {
	val T
	ok  bool
}

// Graph is a mutable directed-graph container addressed by opaque
// handles.
//
// nodes[i] is the payload slot of node i; edges[i][j] is the payload
// slot of the edge i→j. Both sequences grow monotonically and are never
// compacted: removal empties a slot in place, preserving every
// outstanding handle. Rows materialize lazily, so edges[i] may be
// shorter than the node count (or absent entirely) when node i has
// never been an edge source — absent cells read as empty.
//
// Graph performs no locking; see the package documentation for the
// concurrency contract.
type Graph[N, E any] struct {
	nodes []slot[N]
	edges [][]slot[E]
}

// New returns an empty container.
// Complexity: O(1), no allocations until the first Add.
func New[N, E any]() *Graph[N, E] {
	return &Graph[N, E]{}
}
