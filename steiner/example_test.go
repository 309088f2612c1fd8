package steiner_test

import (
	"fmt"

	"github.com/katalvlaran/steinerweb/core"
	"github.com/katalvlaran/steinerweb/repair"
	"github.com/katalvlaran/steinerweb/steiner"
)

// ExampleTree connects three terminals lying on a path, ignoring the
// dead-end spur hanging off the middle.
//
//	A──2──B──3──C
//	       │
//	       9
//	       │
//	       D
func ExampleTree() {
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "B", 2)
	g.AddEdge("B", "C", 3)
	g.AddEdge("B", "D", 9)

	edges, total, err := steiner.Tree(g, []string{"A", "C"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range edges {
		fmt.Printf("%s-%s w=%d\n", e.From, e.To, e.Weight)
	}
	fmt.Println("total =", total)
	// Output:
	// A-B w=2
	// B-C w=3
	// total = 5
}

// ExampleTree_withRepair shows the repair collaborator bridging two
// one-way arcs that meet head-on: the search alone cannot close over an
// outgoing arc, so repair.Bridge stitches the components afterwards.
func ExampleTree_withRepair() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	g.AddEdge("A", "B", 1)
	g.AddEdge("C", "B", 1)

	edges, _, err := steiner.Tree(g, []string{"A", "C"}, steiner.WithRepair(repair.Bridge))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range edges {
		fmt.Printf("%s->%s\n", e.From, e.To)
	}
	// Output:
	// A->B
	// C->B
}
