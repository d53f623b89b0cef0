// SPDX-License-Identifier: MIT
// Package simple_test provides benchmarks for Graph operations.

package simple_test

import (
	"testing"

	"github.com/katalvlaran/simplegraph/simple"
)

// Fan-out used when benchmarking row scans and edge churn.
const benchFanOut = 1000

// BenchmarkAddNode measures plain node insertion (append-only path).
func BenchmarkAddNode(b *testing.B) {
	g := simple.New[int, int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddNode(i)
	}
}

// BenchmarkAddEdge_Overwrite measures repeated writes to a fixed set of
// cells, i.e. the steady state after the matrix has grown.
func BenchmarkAddEdge_Overwrite(b *testing.B) {
	g := simple.New[int, int]()
	root := g.AddNode(0)
	leaves := make([]simple.NodeID, benchFanOut)
	for i := range leaves {
		leaves[i] = g.AddNode(i + 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Cycle through the leaves so every write after warm-up hits an
		// already-materialized cell.
		_ = g.AddEdge(root, leaves[i%benchFanOut], i)
	}
}

// BenchmarkEdgeLookup measures the checked O(1) cell access.
func BenchmarkEdgeLookup(b *testing.B) {
	g := simple.New[int, int]()
	root := g.AddNode(0)
	leaf := g.AddNode(1)
	id := g.AddEdge(root, leaf, 7)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Edge(id)
	}
}

// BenchmarkEdgesFrom measures the ascending row scan on a star with
// benchFanOut occupied cells.
func BenchmarkEdgesFrom(b *testing.B) {
	g := simple.New[int, int]()
	root := g.AddNode(0)
	for i := 0; i < benchFanOut; i++ {
		leaf := g.AddNode(i + 1)
		_ = g.AddEdge(root, leaf, i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.EdgesFrom(root)
	}
}

// BenchmarkRemoveAddEdge measures edge churn on one cell: remove then
// re-add, exercising tombstoning without matrix growth.
func BenchmarkRemoveAddEdge(b *testing.B) {
	g := simple.New[int, int]()
	root := g.AddNode(0)
	leaf := g.AddNode(1)
	id := g.AddEdge(root, leaf, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.RemoveEdge(id)
		id = g.AddEdge(root, leaf, i)
	}
}
