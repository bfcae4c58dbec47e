// Package core provides the thread-safe in-memory graph that backs every
// name-level structure of the reductions module: the NameGraph of problem
// names, and the parent-edge graph a variant hierarchy is checked against.
//
// The Graph G = (V,E) keeps vertices as plain string IDs (problem names,
// axis values) and edges as unweighted, labelled connections. Costs never
// live on an edge: a reduction's true cost depends on the instance being
// routed, so it is recomputed per query by the caller.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(defaultDirected bool)
//	    Directed graphs store only “from→to” pointers.
//	    Undirected graphs mirror edges in adjacencyList[to][from].
//
//	– WithMultiEdges()
//	    Allows parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	AddVertex(id string) error                           // O(1)
//	HasVertex(id string) bool                            // O(1)
//	Vertices() []string                                  // O(V log V), sorted
//	AddEdge(from, to string, opts ...EdgeOption) (string, error) // O(1) amortized
//	HasEdge(from, to string) bool                        // O(1)
//	Edges() []*Edge                                      // O(E log E), sorted by ID
//	Neighbors(id string) ([]*Edge, error)                // O(d log d), sorted by (To, ID)
//	NeighborIDs(id string) ([]string, error)             // O(d log d), unique, sorted
//
// Concurrency:
//
//	muVert guards the vertex map, muEdgeAdj guards edges and adjacency.
//	Readers never block each other; a graph that is no longer mutated
//	can be shared freely across goroutines.
//
// Determinism:
//
//	Every listing method returns sorted output, and edge IDs are issued
//	from a monotonic counter (“e1”, “e2”, …), so two graphs built from the
//	same ordered facts are indistinguishable.
package core
