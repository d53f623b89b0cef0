// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Capability-set interface declarations; no state, no algorithms.

package graph

// NodeAdder mints a fresh node holding data and returns its handle.
//
// Identity is positional: adding equal payloads twice yields two
// distinct, non-equal handles.
// Complexity: amortized O(1) for the reference implementation.
type NodeAdder[N, NID any] interface {
	AddNode(data N) NID
}

// EdgeAdder stores data on the directed edge from→to and returns its
// handle.
//
// At most one edge exists per ordered pair: adding a second payload for
// the same pair overwrites the first silently, and the returned handle
// equals the original. Both node handles are trusted to originate from
// the same container's AddNode; no existence check is performed.
type EdgeAdder[E, NID, EID any] interface {
	AddEdge(from, to NID, data E) EID
}

// NodeRemover empties a node slot and returns the payload it held.
//
// A node may be removed only once every incident edge slot (outgoing
// and incoming) is empty; violating that, or removing an already-empty
// slot, is a contract violation and fatal.
type NodeRemover[N, NID any] interface {
	RemoveNode(id NID) N
}

// EdgeRemover empties an edge slot and returns the payload it held.
//
// Removing an empty or never-created slot is a contract violation.
// Endpoint node state is not consulted.
type EdgeRemover[E, EID any] interface {
	RemoveEdge(id EID) E
}

// NodeIndexer reads a node payload by handle.
// Fatal if the slot is empty or out of range.
type NodeIndexer[N, NID any] interface {
	Node(id NID) N
}

// NodeMutIndexer exposes a node payload for in-place mutation.
//
// The returned pointer is an exclusive view scoped to the call site:
// it is invalidated by any subsequent Add operation on the container.
type NodeMutIndexer[N, NID any] interface {
	NodeMut(id NID) *N
}

// EdgeIndexer reads an edge payload by handle.
// Fatal if the slot is empty or out of range.
type EdgeIndexer[E, EID any] interface {
	Edge(id EID) E
}

// EdgeMutIndexer exposes an edge payload for in-place mutation,
// under the same scoping rule as NodeMutIndexer.
type EdgeMutIndexer[E, EID any] interface {
	EdgeMut(id EID) *E
}

// EdgeEndpoints projects the node handles encoded in an edge handle.
// Both projections are pure: no storage access, cannot fail.
type EdgeEndpoints[NID, EID any] interface {
	// EdgeFrom returns the source node handle of id.
	EdgeFrom(id EID) NID
	// EdgeTo returns the destination node handle of id.
	EdgeTo(id EID) NID
}

// EdgeEnumerator lists the outgoing edges of a node.
//
// Handles are yielded in ascending destination-index order. A node with
// no outgoing edges yields an empty sequence; this is a total query and
// never fatal, even for a node whose row was never materialized.
type EdgeEnumerator[NID, EID any] interface {
	EdgesFrom(id NID) []EID
}

// Directed is the full capability set of a mutable directed graph
// container, parameterized over node payload N, edge payload E, and the
// container's opaque handle types. Prefer the narrow interfaces above
// when a consumer needs less.
type Directed[N, E, NID, EID any] interface {
	NodeAdder[N, NID]
	EdgeAdder[E, NID, EID]
	NodeRemover[N, NID]
	EdgeRemover[E, EID]
	NodeIndexer[N, NID]
	NodeMutIndexer[N, NID]
	EdgeIndexer[E, EID]
	EdgeMutIndexer[E, EID]
	EdgeEndpoints[NID, EID]
	EdgeEnumerator[NID, EID]
}
