package core_test

import (
	"fmt"

	"github.com/katalvlaran/maxflow/core"
)

// ExampleGraph builds a small logistics network and lists it in
// insertion order.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddEdge("S", "A", 20)
	_ = g.AddEdge("S", "B", 10)
	_ = g.AddEdge("A", "C", 15)

	fmt.Println(g.Vertices())
	for _, e := range g.Edges() {
		fmt.Printf("%s -> %s (%d)\n", e.From, e.To, e.Capacity)
	}
	// Output:
	// [S A B C]
	// S -> A (20)
	// S -> B (10)
	// A -> C (15)
}

// ExampleFromMap converts the nested-map shape into a Graph.
func ExampleFromMap() {
	g, _ := core.FromMap(map[string]map[string]int64{
		"S": {"T": 5},
	})
	c, ok := g.Capacity("S", "T")
	fmt.Println(c, ok)
	// Output:
	// 5 true
}
