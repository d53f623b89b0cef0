// SPDX-License-Identifier: MIT
//
// File: capabilities.go
// Role: Compile-time proof that Graph satisfies the graph capability set.

package simple

import "github.com/katalvlaran/simplegraph/graph"

// Graph implements every capability in the set; Directed composes them
// all, so one assertion pins the full surface. The narrow assertions
// below document the shapes consumers are expected to depend on.
var (
	_ graph.Directed[string, int, NodeID, EdgeID] = (*Graph[string, int])(nil)

	_ graph.NodeIndexer[string, NodeID]    = (*Graph[string, int])(nil)
	_ graph.EdgeEnumerator[NodeID, EdgeID] = (*Graph[string, int])(nil)
)
