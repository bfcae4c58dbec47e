// File: methods_vertices.go
// Role: Vertex lifecycle and queries: AddVertex/HasVertex/Vertices/VertexCount.
// Determinism:
//   - Vertices() returns IDs sorted ascending.
// Concurrency:
//   - Mutations under muVert write lock; queries under muVert read lock.

package core

import "sort"

// AddVertex inserts a vertex with the given ID if it does not exist yet.
// Adding an existing vertex is a no-op (idempotent).
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, ok := g.vertices[id]; ok {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id}

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()
	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
