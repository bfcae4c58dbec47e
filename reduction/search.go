// SPDX-License-Identifier: MIT
//
// File: search.go
// Role: PathFinder: cost-driven cheapest path with graph-axis admissibility,
//       plus hop-count, all-paths and reachability queries on the NameGraph.

package reduction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/katalvlaran/reductions/bfs"
	"github.com/katalvlaran/reductions/catalog"
	"github.com/katalvlaran/reductions/core"
	"github.com/katalvlaran/reductions/cost"
	"github.com/katalvlaran/reductions/dfs"
	"github.com/katalvlaran/reductions/dijkstra"
	"github.com/katalvlaran/reductions/problem"
	"github.com/katalvlaran/reductions/variant"
)

// Endpoint is a problem name plus its graph-axis value. Graph is "" for
// problems without a graph axis, or when the caller does not care.
type Endpoint struct {
	Name  string
	Graph string
}

// state is one search vertex: a problem name plus the graph value of the
// variant the search holds there. One name can be held under several graph
// values, and a more specific one may admit rules a more general one does not.
type state struct {
	name  string
	graph string
}

func (s state) id() string { return s.name + "@" + s.graph }

// sinkID joins every state of the destination name with a zero-cost edge, so
// the search has a single target.
const sinkID = "@sink"

// FindCheapestPath finds the name path from src to dst that minimizes the
// accumulated fn cost, starting from an instance of size input.
//
// A rule on the edge a→b is admissible when the graph value the search holds
// at a is a subtype of the rule's source graph, and the rule's target graph
// is a subtype of dst.Graph. An empty graph value on either side is
// compatible with anything. The search runs over (name, graph value) states,
// so an expensive arrival under a narrower graph value is kept alongside a
// cheap one under a wider value. Rules from a name to itself are not
// followed. The size carried forward is the taken rule's evaluated overhead.
//
// Errors:
//   - ErrUnknownProblem: src or dst names no catalog problem.
//   - ErrNoPath: no admissible route exists (an ordinary outcome).
//   - ErrNilCostFunction, problem.ErrNegativeSize.
//   - overhead evaluation or cost errors (hard failures, never mapped to 0).
//   - dijkstra.ErrNegativeCost for a negative or NaN cost.
func (g *Graph) FindCheapestPath(src, dst Endpoint, input problem.Size, fn cost.Function) (p Path, err error) {
	start := time.Now()
	defer func() {
		searchDuration.WithLabelValues("cheapest").Observe(time.Since(start).Seconds())
		searchTotal.WithLabelValues("cheapest", outcomeOf(err, ErrNoPath)).Inc()
	}()

	// 1) Validate
	if fn == nil {
		return Path{}, ErrNilCostFunction
	}
	if err := g.checkNames(src.Name, dst.Name); err != nil {
		return Path{}, err
	}
	if err := input.Validate(); err != nil {
		return Path{}, fmt.Errorf("reduction: input size: %w", err)
	}

	// 2) Expand the admissible state graph
	from := state{name: src.Name, graph: src.Graph}
	sg, states, rules := g.stateGraph(from, dst)

	// 3) Search
	relax := func(_ string, size problem.Size, e dijkstra.Edge) (float64, problem.Size, bool, error) {
		if e.To == sinkID {
			return 0, size, true, nil
		}
		r := rules[e.Label]
		c, err := fn.EdgeCost(r.Overhead, size)
		if err != nil {
			return 0, nil, false, fmt.Errorf("%s: %w", r, err)
		}
		next, err := r.Overhead.Evaluate(size)
		if err != nil {
			return 0, nil, false, fmt.Errorf("%s: %w", r, err)
		}

		return c, next, true, nil
	}
	opts := []dijkstra.Option{dijkstra.WithTarget(sinkID)}
	if !math.IsInf(g.opts.maxCost, 1) {
		opts = append(opts, dijkstra.WithMaxCost(g.opts.maxCost))
	}
	res, err := dijkstra.Search(sg, from.id(), input.Clone(), relax, opts...)
	if err != nil {
		return Path{}, err
	}
	if !res.Reached(sinkID) {
		g.opts.logger.Debug("no admissible path",
			slog.String("source", src.Name), slog.String("target", dst.Name))

		return Path{}, fmt.Errorf("%w: %s -> %s", ErrNoPath, src.Name, dst.Name)
	}

	// 4) Collapse states back to names, dropping the sink
	ids, err := res.PathTo(sinkID)
	if err != nil {
		return Path{}, err
	}
	ids = ids[:len(ids)-1]
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = states[id].name
	}
	g.opts.logger.Debug("cheapest path found",
		slog.String("path", Path{Names: names}.String()),
		slog.Float64("cost", res.Dist[sinkID]))

	return Path{Names: names}, nil
}

// stateGraph expands the NameGraph from start into (name, graph value)
// states. Every rule admissible from a state becomes one edge, labelled with
// the rule's key in the returned rule map; parallel edges are kept so the
// search prices each rule on its own. Every state of dst.Name is linked to
// sinkID.
func (g *Graph) stateGraph(start state, dst Endpoint) (*core.Graph, map[string]state, map[string]*catalog.Rule) {
	h := g.cat.Hierarchy()
	ng := g.nameGraph()
	sg := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	states := map[string]state{start.id(): start}
	rules := make(map[string]*catalog.Rule)
	_ = sg.AddVertex(start.id())

	queue := []state{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		nbrs, _ := ng.NeighborIDs(cur.name)
		for _, b := range nbrs {
			if b == cur.name {
				continue
			}
			for _, r := range g.cat.RulesBetween(cur.name, b) {
				srcGraph := r.SourceVariant.Get(variant.GraphAxis)
				tgtGraph := r.TargetVariant.Get(variant.GraphAxis)
				if !graphCompatible(h, cur.graph, srcGraph) || !graphCompatible(h, tgtGraph, dst.Graph) {
					continue
				}
				next := state{name: b, graph: tgtGraph}
				if _, seen := states[next.id()]; !seen {
					states[next.id()] = next
					queue = append(queue, next)
				}
				key := r.String()
				rules[key] = r
				_, _ = sg.AddEdge(cur.id(), next.id(), core.WithEdgeLabel(key))
			}
		}
	}
	for id, st := range states {
		if st.name == dst.Name {
			_, _ = sg.AddEdge(id, sinkID)
		}
	}
	g.opts.logger.Debug("state graph built",
		slog.Int("states", sg.VertexCount()),
		slog.Int("edges", sg.EdgeCount()))

	return sg, states, rules
}

// graphCompatible reports is_subtype(a, b) on the graph axis, treating an
// absent graph value as compatible with anything.
func graphCompatible(h *variant.Hierarchy, a, b string) bool {
	return a == "" || b == "" || h.IsSubtype(variant.GraphAxis, a, b)
}

// checkNames rejects names that are not NameGraph vertices.
func (g *Graph) checkNames(names ...string) error {
	ng := g.nameGraph()
	for _, n := range names {
		if !ng.HasVertex(n) {
			return fmt.Errorf("%w: %q", ErrUnknownProblem, n)
		}
	}

	return nil
}

// FindShortestPathByName returns a minimum-hop name path, ignoring variants
// and costs. Among equal-length paths the lexicographically smallest wins.
func (g *Graph) FindShortestPathByName(a, b string) (p Path, err error) {
	start := time.Now()
	defer func() {
		searchDuration.WithLabelValues("shortest").Observe(time.Since(start).Seconds())
		searchTotal.WithLabelValues("shortest", outcomeOf(err, ErrNoPath)).Inc()
	}()

	if err := g.checkNames(a, b); err != nil {
		return Path{}, err
	}
	names, err := bfs.ShortestPath(g.nameGraph(), a, b)
	if errors.Is(err, bfs.ErrUnreachable) {
		return Path{}, fmt.Errorf("%w: %s -> %s", ErrNoPath, a, b)
	}
	if err != nil {
		return Path{}, err
	}

	return Path{Names: names}, nil
}

// FindAllPaths returns every simple name path from a to b, shortest first,
// ties ordered lexicographically. opts bound the enumeration.
func (g *Graph) FindAllPaths(a, b string, opts ...dfs.Option) (ps []Path, err error) {
	start := time.Now()
	defer func() {
		searchDuration.WithLabelValues("all").Observe(time.Since(start).Seconds())
		searchTotal.WithLabelValues("all", outcomeOf(err, nil)).Inc()
	}()

	if err := g.checkNames(a, b); err != nil {
		return nil, err
	}
	all, err := dfs.AllSimplePaths(g.nameGraph(), a, b, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]Path, len(all))
	for i, names := range all {
		out[i] = Path{Names: names}
	}

	return out, nil
}

// ReachableFrom returns every name reachable from a by at least one hop, sorted.
func (g *Graph) ReachableFrom(a string) ([]string, error) {
	if err := g.checkNames(a); err != nil {
		return nil, err
	}
	res, err := bfs.BFS(g.nameGraph(), a)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(res.Order))
	for _, id := range res.Order {
		if id != a {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out, nil
}

// ReachableWithin maps every name reachable from a in at most hops steps to
// its hop distance. hops == 0 means unbounded; a itself is not included.
// The walk stops with ctx.Err() once ctx is done.
func (g *Graph) ReachableWithin(ctx context.Context, a string, hops int) (map[string]int, error) {
	if err := g.checkNames(a); err != nil {
		return nil, err
	}
	res, err := bfs.BFS(g.nameGraph(), a, bfs.WithContext(ctx), bfs.WithMaxDepth(hops))
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(res.Depth))
	for id, d := range res.Depth {
		if id != a {
			out[id] = d
		}
	}

	return out, nil
}

// RulesOn returns the rules behind one NameGraph edge.
func (g *Graph) RulesOn(a, b string) []*catalog.Rule { return g.cat.RulesBetween(a, b) }
