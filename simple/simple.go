// SPDX-License-Identifier: MIT
//
// File: simple.go
// Role: All Graph operations — creation, removal, indexing, endpoint
//       projection, enumeration, and the total observers.

package simple

import "fmt"

// AddNode appends a new occupied slot and returns its handle.
//
// Identity is positional: adding equal payloads twice yields distinct,
// non-equal handles. Never fails.
// Complexity: amortized O(1).
func (g *Graph[N, E]) AddNode(data N) NodeID {
	g.nodes = append(g.nodes, slot[N]{val: data, ok: true})

	return NodeID{idx: len(g.nodes) - 1}
}

// AddEdge writes data into the cell (from, to), growing the matrix as
// needed, and returns the edge's handle.
//
// Any payload already at (from, to) is overwritten silently; the
// returned handle equals the one issued for the original write, since
// edge identity is the ordered endpoint pair. The node handles are
// trusted to come from this container's AddNode — no existence check is
// performed here, and the matrix grows to fit whatever indices they
// carry.
// Complexity: amortized O(1); a growth step allocates O(rows)+O(cols).
func (g *Graph[N, E]) AddEdge(from, to NodeID, data E) EdgeID {
	a, b := from.idx, to.idx

	// Grow the outer sequence to max(a,b)+1 rows so both endpoints are
	// representable, then the target row to b+1 cells. New rows and
	// cells are zero-valued, i.e. empty.
	if need := max(a, b) + 1; len(g.edges) < need {
		g.edges = append(g.edges, make([][]slot[E], need-len(g.edges))...)
	}
	if need := b + 1; len(g.edges[a]) < need {
		g.edges[a] = append(g.edges[a], make([]slot[E], need-len(g.edges[a]))...)
	}

	g.edges[a][b] = slot[E]{val: data, ok: true}

	return EdgeID{from: a, to: b}
}

// RemoveNode empties the node's slot and returns the payload it held.
//
// Precondition (fatal): every cell in the node's outgoing row and every
// cell in its incoming column must be empty — removing a node with a
// live incident edge would leave that edge dangling. Cells that were
// never materialized count as empty. The slot's index is never reused;
// subsequent AddNode calls keep appending past it.
//
// Panics with ErrNodeHasEdges on an occupied incident cell, and with
// ErrNodeNotFound if the handle's slot is empty or out of range.
// Complexity: O(V) row scan + O(V) column scan.
func (g *Graph[N, E]) RemoveNode(id NodeID) N {
	i := id.idx

	if i < len(g.edges) {
		for j := range g.edges[i] {
			if g.edges[i][j].ok {
				panic(fmt.Errorf("simple: RemoveNode(%d): outgoing edge to %d: %w", i, j, ErrNodeHasEdges))
			}
		}
	}
	for a := range g.edges {
		if i < len(g.edges[a]) && g.edges[a][i].ok {
			panic(fmt.Errorf("simple: RemoveNode(%d): incoming edge from %d: %w", i, a, ErrNodeHasEdges))
		}
	}

	s := g.nodeSlot(id)
	data := s.val
	*s = slot[N]{}

	return data
}

// RemoveEdge empties the edge's cell and returns the payload it held.
//
// Endpoint node state is not consulted: endpoint validity was
// established when the edge was created, and the matrix never shrinks.
// Panics with ErrEdgeNotFound if the cell is empty or was never
// written.
// Complexity: O(1).
func (g *Graph[N, E]) RemoveEdge(id EdgeID) E {
	s := g.edgeSlot(id)
	data := s.val
	*s = slot[E]{}

	return data
}

// Node returns the payload of the node. Panics with ErrNodeNotFound on
// an empty or out-of-range slot.
// Complexity: O(1).
func (g *Graph[N, E]) Node(id NodeID) N {
	return g.nodeSlot(id).val
}

// NodeMut returns a pointer to the node's payload for in-place
// mutation. The pointer is an exclusive view scoped to the call site:
// any subsequent Add operation may invalidate it, so mutate and let go.
// Panics with ErrNodeNotFound on an empty or out-of-range slot.
// Complexity: O(1).
func (g *Graph[N, E]) NodeMut(id NodeID) *N {
	return &g.nodeSlot(id).val
}

// Edge returns the payload of the edge. Panics with ErrEdgeNotFound on
// an empty or never-written cell.
// Complexity: O(1).
func (g *Graph[N, E]) Edge(id EdgeID) E {
	return g.edgeSlot(id).val
}

// EdgeMut returns a pointer to the edge's payload, under the same
// scoping rule as NodeMut. Panics with ErrEdgeNotFound on an empty or
// never-written cell.
// Complexity: O(1).
func (g *Graph[N, E]) EdgeMut(id EdgeID) *E {
	return &g.edgeSlot(id).val
}

// EdgeFrom returns the source node handle encoded in id.
// Pure projection: no storage access, cannot fail.
func (g *Graph[N, E]) EdgeFrom(id EdgeID) NodeID {
	return NodeID{idx: id.from}
}

// EdgeTo returns the destination node handle encoded in id.
// Pure projection: no storage access, cannot fail.
func (g *Graph[N, E]) EdgeTo(id EdgeID) NodeID {
	return NodeID{idx: id.to}
}

// EdgesFrom returns handles for every occupied cell in the node's row,
// in ascending destination-index order.
//
// Total observer: a node whose row was never materialized has no
// outgoing edges and yields nil, never a panic.
// Complexity: O(V) over the row length.
func (g *Graph[N, E]) EdgesFrom(id NodeID) []EdgeID {
	i := id.idx
	if i < 0 || i >= len(g.edges) {
		return nil
	}

	var out []EdgeID
	for j := range g.edges[i] {
		if g.edges[i][j].ok {
			out = append(out, EdgeID{from: i, to: j})
		}
	}

	return out
}

// HasNode reports whether the handle addresses a currently occupied
// node slot. Total observer; never panics.
// Complexity: O(1).
func (g *Graph[N, E]) HasNode(id NodeID) bool {
	return id.idx >= 0 && id.idx < len(g.nodes) && g.nodes[id.idx].ok
}

// HasEdge reports whether the handle addresses a currently occupied
// edge cell. Total observer; never panics.
// Complexity: O(1).
func (g *Graph[N, E]) HasEdge(id EdgeID) bool {
	a, b := id.from, id.to

	return a >= 0 && a < len(g.edges) && b >= 0 && b < len(g.edges[a]) && g.edges[a][b].ok
}

// NodeCount returns the number of occupied node slots. Tombstoned slots
// do not count.
// Complexity: O(V).
func (g *Graph[N, E]) NodeCount() int {
	n := 0
	for i := range g.nodes {
		if g.nodes[i].ok {
			n++
		}
	}

	return n
}

// EdgeCount returns the number of occupied edge cells.
// Complexity: O(V²) over materialized cells.
func (g *Graph[N, E]) EdgeCount() int {
	n := 0
	for i := range g.edges {
		for j := range g.edges[i] {
			if g.edges[i][j].ok {
				n++
			}
		}
	}

	return n
}

// Clone returns a deep structural copy: same slot layout, same
// occupancy, payloads copied by assignment. Handles issued by the
// original address the corresponding slots of the clone, but the two
// containers share no storage afterward.
// Complexity: O(V²) over materialized cells.
func (g *Graph[N, E]) Clone() *Graph[N, E] {
	c := &Graph[N, E]{
		nodes: append([]slot[N](nil), g.nodes...),
		edges: make([][]slot[E], len(g.edges)),
	}
	for i, row := range g.edges {
		c.edges[i] = append([]slot[E](nil), row...)
	}

	return c
}

// nodeSlot resolves a node handle to its occupied slot, or panics with
// ErrNodeNotFound. Checked tier; all node accessors funnel through it.
func (g *Graph[N, E]) nodeSlot(id NodeID) *slot[N] {
	i := id.idx
	if i < 0 || i >= len(g.nodes) || !g.nodes[i].ok {
		panic(fmt.Errorf("simple: node %d: %w", i, ErrNodeNotFound))
	}

	return &g.nodes[i]
}

// edgeSlot resolves an edge handle to its occupied cell, or panics with
// ErrEdgeNotFound. Checked tier; all edge accessors funnel through it.
func (g *Graph[N, E]) edgeSlot(id EdgeID) *slot[E] {
	a, b := id.from, id.to
	if a < 0 || a >= len(g.edges) || b < 0 || b >= len(g.edges[a]) || !g.edges[a][b].ok {
		panic(fmt.Errorf("simple: edge (%d,%d): %w", a, b, ErrEdgeNotFound))
	}

	return &g.edges[a][b]
}
