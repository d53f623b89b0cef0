// SPDX-License-Identifier: MIT

// Package graph declares the capability set for directed, handle-addressed
// graph containers.
//
// The surface is intentionally split into small single-capability
// interfaces rather than one wide Graph interface:
//
//   - NodeAdder / EdgeAdder       — creation
//   - NodeRemover / EdgeRemover   — destruction (payload returned by value)
//   - NodeIndexer / NodeMutIndexer — payload access by node handle
//   - EdgeIndexer / EdgeMutIndexer — payload access by edge handle
//   - EdgeEndpoints               — source/destination projection
//   - EdgeEnumerator              — ordered outgoing-edge enumeration
//
// Algorithms and adapters should require exactly the capabilities they
// use, so a read-only consumer can accept a value that satisfies only
// the indexing interfaces. Directed composes the full set for callers
// that genuinely need all of it.
//
// Handle types are opaque to this package: every interface is generic
// over the container's node-handle and edge-handle types, and the
// container alone mints valid handles. Handles must not be persisted
// across container instances.
//
// The reference implementation is simple.Graph, an adjacency-matrix
// store in the sibling simple package.
package graph
