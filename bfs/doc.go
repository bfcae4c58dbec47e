// Package bfs implements breadth-first search over a core.Graph.
//
// In this module it answers hop-count questions about the problem-name graph:
// "which problems can X reach at all?" and "what is the route with the fewest
// reductions, ignoring variants and cost?".
//
//	res, err := bfs.BFS(g, "MaximumIndependentSet", bfs.WithMaxDepth(3))
//	path, err := bfs.ShortestPath(g, "Satisfiability", "QUBO")
//
// Options:
//
//	WithContext(ctx)  cancellation, checked once per dequeued vertex
//	WithMaxDepth(d)   d > 0 limits depth, d < 0 → ErrOptionViolation
//
// Complexity: O(V + E·log d) time (neighbor lists are sorted), O(V) memory.
package bfs
