// SPDX-License-Identifier: MIT
//
// File: dijkstra.go
// Role: Generic stateful Dijkstra (lazy decrease-key) over core.Graph.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/reductions/core"
)

// Search computes cheapest paths from source over g.
//
// Edge costs are not stored on the graph: relax is asked for the cost of
// every outgoing edge of a vertex when that vertex is settled, given the
// state the vertex was settled with. This lets the caller make costs and
// admissibility depend on what has been accumulated along the path so far.
//
// Steps:
//  1. Validate graph, relaxer, source; apply options.
//  2. Push (source, 0, init) on the heap.
//  3. Pop the cheapest entry; skip stale ones; stop at Target or MaxCost.
//  4. Settle it and relax every outgoing edge, pushing strictly better entries.
//
// Ties are broken by vertex ID so the resulting tree is deterministic.
//
// Errors: ErrNilGraph, ErrNilRelaxer, ErrVertexNotFound, ErrNegativeCost,
// or any relaxer error (wrapped with the edge that produced it).
//
// Complexity: O((V + E) log E) time, O(V + E) memory.
func Search[S any](g *core.Graph, source string, init S, relax Relaxer[S], opts ...Option) (*Result[S], error) {
	// 1) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if relax == nil {
		return nil, ErrNilRelaxer
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Seed
	n := g.VertexCount()
	r := &runner[S]{
		g:       g,
		options: cfg,
		relax:   relax,
		best:    make(map[string]float64, n),
		res: &Result[S]{
			Source: source,
			Dist:   make(map[string]float64, n),
			Prev:   make(map[string]string, n),
			State:  make(map[string]S, n),
		},
	}
	r.best[source] = 0
	heap.Push(&r.pq, &nodeItem[S]{id: source, dist: 0, state: init})

	// 3-4) Main loop
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Search execution.
type runner[S any] struct {
	g       *core.Graph
	options Options
	relax   Relaxer[S]
	best    map[string]float64 // tentative distances, settled or not
	pq      nodePQ[S]
	res     *Result[S]
}

func (r *runner[S]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[S])
		if r.res.Reached(item.id) {
			continue
		}
		if item.dist > r.options.MaxCost {
			break
		}

		r.res.Dist[item.id] = item.dist
		r.res.State[item.id] = item.state
		if item.id != r.res.Source {
			r.res.Prev[item.id] = item.prev
		}
		if item.id == r.options.Target {
			break
		}
		if err := r.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand relaxes every outgoing edge of a freshly settled vertex.
func (r *runner[S]) expand(u *nodeItem[S]) error {
	edges, err := r.g.Neighbors(u.id)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u.id, err)
	}
	for _, e := range edges {
		v := e.Other(u.id)
		if r.res.Reached(v) {
			continue
		}

		w, next, ok, err := r.relax(u.id, u.state, Edge{ID: e.ID, From: u.id, To: v, Label: e.Label})
		if err != nil {
			return fmt.Errorf("dijkstra: relax %s→%s: %w", u.id, v, err)
		}
		if !ok {
			continue
		}
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: edge %s→%s cost=%v", ErrNegativeCost, u.id, v, w)
		}

		nd := u.dist + w
		if nd > r.options.MaxCost {
			continue
		}
		if cur, seen := r.best[v]; seen && nd >= cur {
			continue
		}
		r.best[v] = nd
		heap.Push(&r.pq, &nodeItem[S]{id: v, dist: nd, prev: u.id, state: next})
	}

	return nil
}

// nodeItem is one heap entry; stale entries are skipped on pop.
type nodeItem[S any] struct {
	id    string
	dist  float64
	prev  string
	state S
}

// nodePQ is a min-heap ordered by (dist, id).
type nodePQ[S any] []*nodeItem[S]

func (pq nodePQ[S]) Len() int { return len(pq) }

func (pq nodePQ[S]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[S]) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem[S])) }

func (pq *nodePQ[S]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
