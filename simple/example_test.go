// SPDX-License-Identifier: MIT

package simple_test

import (
	"fmt"

	"github.com/katalvlaran/simplegraph/simple"
)

// ExampleGraph demonstrates the basic lifecycle: add nodes, wire edges,
// enumerate, and tear down edges-first.
func ExampleGraph() {
	// 1) Payloads are arbitrary: station names on nodes, minutes on edges.
	g := simple.New[string, int]()
	hub := g.AddNode("hub")
	east := g.AddNode("east")
	west := g.AddNode("west")

	// 2) Directed edges; cell (hub, dest) holds the travel time.
	g.AddEdge(hub, east, 7)
	g.AddEdge(hub, west, 12)

	// 3) Outgoing edges arrive in ascending destination order.
	for _, e := range g.EdgesFrom(hub) {
		fmt.Printf("%s→%s takes %d\n", g.Node(g.EdgeFrom(e)), g.Node(g.EdgeTo(e)), g.Edge(e))
	}

	// 4) A node is removable only once its incident edges are gone.
	for _, e := range g.EdgesFrom(hub) {
		g.RemoveEdge(e)
	}
	fmt.Println("removed:", g.RemoveNode(hub))

	// Output:
	// hub→east takes 7
	// hub→west takes 12
	// removed: hub
}

// ExampleGraph_overwrite shows the one-edge-per-pair rule.
func ExampleGraph_overwrite() {
	g := simple.New[string, int]()
	a := g.AddNode("a")
	b := g.AddNode("b")

	first := g.AddEdge(a, b, 1)
	second := g.AddEdge(a, b, 2)

	// Same ordered pair ⇒ equal handles, latest payload wins.
	fmt.Println(first == second, g.Edge(first))

	// Output:
	// true 2
}

// ExampleGraph_nodeMut mutates a payload in place through the handle.
func ExampleGraph_nodeMut() {
	g := simple.New[int, struct{}]()
	counter := g.AddNode(41)

	*g.NodeMut(counter)++
	fmt.Println(g.Node(counter))

	// Output:
	// 42
}
