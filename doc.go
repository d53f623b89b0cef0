// Package simplegraph is a minimal, handle-addressed directed-graph
// container for Go.
//
// 🚀 What is simplegraph?
//
//	A small library built around one data structure:
//		• simple.Graph[N, E] — a mutable store of node and edge payloads
//		  over a growable sparse adjacency matrix
//		• graph/ — the capability-set interfaces it satisfies
//		  (add, remove, index, endpoint lookup, outgoing-edge enumeration)
//
// ✨ Why choose simplegraph?
//
//   - Opaque, type-safe handles – a NodeID can never be used as an EdgeID
//   - Stable identifiers – removal tombstones a slot, never compacts,
//     so every handle you hold keeps addressing the same logical slot
//   - O(1) edge addressing – cell (i,j) is the edge i→j, looked up directly
//   - Pure Go – no cgo, no hidden deps
//
// The container performs no locking: it is single-threaded by contract,
// and callers that share an instance across goroutines own the exclusion.
//
// Start with simple.New, then see the graph package for the capability
// surface and the simple package for the storage contract.
package simplegraph
