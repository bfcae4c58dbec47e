// Package dfs implements depth-first algorithms over a core.Graph.
//
// What:
//
//   - DetectCycles: enumerates simple cycles with three-color marking
//     (White, Gray, Black), back-edge recording and canonical-rotation
//     deduplication. Used to report the offending parent chain when a
//     variant hierarchy declares a cycle.
//   - AllSimplePaths: backtracking enumeration of every simple path
//     between two vertices, bounded by depth, count and context.
//
// Determinism:
//
//	Neighbors are visited in sorted order and both results are sorted,
//	so the output is a pure function of the graph.
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - ErrOptionViolation      negative depth or path limit
//   - ErrPathLimit            more paths than WithMaxPaths allows
//   - context.Canceled        enumeration canceled via context
package dfs
