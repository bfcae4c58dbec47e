// File: methods_adjacent.go
// Role: Adjacency queries (Neighbors/NeighborIDs) and adjacency bucket helpers.
// Determinism:
//   - Neighbors() sorted by (To, numeric edge sequence).
//   - NeighborIDs() unique and sorted ascending.
// Concurrency:
//   - Queries acquire muVert then muEdgeAdj read locks.

package core

import "sort"

// Neighbors returns the outgoing edges of id.
//
// For undirected graphs, edges stored with From == neighbor are returned as
// well (the mirror bucket); callers resolve the far endpoint with Other.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d), where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			if e == nil {
				continue
			}
			// Directed policy: only outgoing edges.
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		oi, oj := out[i].Other(id), out[j].Other(id)
		if oi != oj {
			return oi < oj
		}

		return edgeSeq(out[i].ID) < edgeSeq(out[j].ID)
	})

	return out, nil
}

// NeighborIDs returns the unique set of vertex IDs reachable from id in one
// hop, sorted ascending.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		nbr := e.Other(id)
		if _, dup := seen[nbr]; dup {
			continue
		}
		seen[nbr] = struct{}{}
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out, nil
}

// Other returns the endpoint of e opposite to id. For a directed edge seen
// from its source this is simply e.To.
func (e *Edge) Other(id string) string {
	if !e.Directed && e.To == id {
		return e.From
	}

	return e.To
}

// ensureAdjacency allocates the adjacency buckets for from→to if missing.
// Caller must hold muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to string) {
	if _, ok := g.adjacencyList[from]; !ok {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if _, ok := g.adjacencyList[from][to]; !ok {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}
