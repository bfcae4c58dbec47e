package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/reductions/core"
	"github.com/katalvlaran/reductions/dfs"
)

// ExampleDetectCycles reports a parent-declaration loop between three axis values.
func ExampleDetectCycles() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("UnitDiskGraph", "SimpleGraph")
	_, _ = g.AddEdge("SimpleGraph", "PlanarGraph")
	_, _ = g.AddEdge("PlanarGraph", "UnitDiskGraph")

	has, cycles, _ := dfs.DetectCycles(g)
	fmt.Println(has, cycles)
	// Output:
	// true [[PlanarGraph UnitDiskGraph SimpleGraph PlanarGraph]]
}

// ExampleAllSimplePaths lists every loop-free route between two names.
func ExampleAllSimplePaths() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("SAT", "MIS")
	_, _ = g.AddEdge("MIS", "QUBO")
	_, _ = g.AddEdge("SAT", "QUBO")

	paths, _ := dfs.AllSimplePaths(g, "SAT", "QUBO")
	for _, p := range paths {
		fmt.Println(p)
	}
	// Output:
	// [SAT QUBO]
	// [SAT MIS QUBO]
}
