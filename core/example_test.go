package core_test

import (
	"fmt"

	"github.com/katalvlaran/reductions/core"
)

// ExampleGraph builds a tiny directed name graph and lists the successors of one node.
func ExampleGraph() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("Satisfiability", "MaximumIndependentSet")
	_, _ = g.AddEdge("Satisfiability", "KSatisfiability")
	_, _ = g.AddEdge("MaximumIndependentSet", "MinimumVertexCover")

	ids, _ := g.NeighborIDs("Satisfiability")
	fmt.Println(ids)
	fmt.Println(g.VertexCount(), g.EdgeCount())
	// Output:
	// [KSatisfiability MaximumIndependentSet]
	// 4 3
}
