// SPDX-License-Identifier: MIT

// Package simple implements a directed-graph container over a growable
// sparse adjacency matrix.
//
/*
Graph[N, E]

Description:
  Nodes live in a flat sequence of optional slots; edges live in a
  two-dimensional sequence of optional slots where cell (i, j) holds the
  payload of the edge i→j, if any. Handles are opaque wrappers around
  the underlying indices: NodeID carries one index, EdgeID carries the
  (from, to) pair.

Use cases:
  - Constant-time edge payload lookup by endpoint pair.
  - Workloads that retain handles long-term and need them to stay valid
    across arbitrary removals.
  - Dense or small graphs, where O(V²) cell storage is acceptable.

Time complexity:
  - AddNode, Edge/EdgeMut, RemoveEdge: O(1)
  - AddEdge: O(1) amortized (matrix growth is append-only)
  - EdgesFrom: O(V)
  - RemoveNode: O(V) row scan + O(V) column scan

Memory:
  - O(V²) worst case; rows grow lazily to the highest destination seen.

Identifier stability:
  Removal tombstones a slot — the value is taken out, the cell is marked
  empty, and the index is never reused or compacted. Every handle ever
  issued keeps addressing the same logical slot for the lifetime of the
  container, which is what makes handles safe to retain across mutations.
  The matrix only ever grows.

Contract violations:
  Accessors and removers are the checked tier: indexing an empty or
  out-of-range slot, removing an already-empty slot, or removing a node
  that still has an occupied incident cell is caller misuse, and the
  operation panics with an error wrapping one of the package sentinels
  (ErrNodeNotFound, ErrEdgeNotFound, ErrNodeHasEdges). Observers —
  EdgesFrom, HasNode, HasEdge, NodeCount, EdgeCount — are the total
  tier: they answer for any handle without panicking, treating cells
  that were never materialized as empty. Use HasNode/HasEdge when a
  handle's liveness is genuinely in question; everywhere else, pass only
  handles you know are live.

Concurrency:
  None. The container owns its payloads exclusively and performs no
  locking; callers that share an instance across goroutines must provide
  their own exclusion around the whole container.
*/
package simple
