// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Graph facade over a catalog and its lazily built NameGraph.
// Concurrency:
//   - The NameGraph is built once under sync.Once and never mutated afterwards.
//   - All query methods are safe for concurrent use.

package reduction

import (
	"log/slog"
	"sync"

	"github.com/katalvlaran/reductions/catalog"
	"github.com/katalvlaran/reductions/core"
)

// Graph answers routing questions over one catalog.
type Graph struct {
	cat  *catalog.Catalog
	opts options

	once  sync.Once
	names *core.Graph
}

// New wraps c. Panics if c is nil.
func New(c *catalog.Catalog, opts ...Option) *Graph {
	if c == nil {
		panic(ErrNilCatalog)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph{cat: c, opts: o}
}

// Catalog returns the underlying catalog.
func (g *Graph) Catalog() *catalog.Catalog { return g.cat }

// nameGraph returns the directed graph of problem names with one edge per
// distinct (source, target) pair, building it on first use.
func (g *Graph) nameGraph() *core.Graph {
	g.once.Do(func() {
		ng := core.NewGraph(core.WithDirected(true), core.WithLoops())
		for _, name := range g.cat.Names() {
			_ = ng.AddVertex(name)
		}
		for _, r := range g.cat.Rules() {
			if ng.HasEdge(r.SourceName, r.TargetName) {
				continue
			}
			_, _ = ng.AddEdge(r.SourceName, r.TargetName)
		}
		g.names = ng
		g.opts.logger.Debug("name graph built",
			slog.Int("names", ng.VertexCount()),
			slog.Int("edges", ng.EdgeCount()))
	})

	return g.names
}

// HasDirectReduction reports whether at least one rule goes from a to b.
func (g *Graph) HasDirectReduction(a, b string) bool { return g.nameGraph().HasEdge(a, b) }

// ProblemNames returns every problem name, sorted.
func (g *Graph) ProblemNames() []string { return g.nameGraph().Vertices() }

// NumNames returns the number of problem names.
func (g *Graph) NumNames() int { return g.nameGraph().VertexCount() }

// NumReductions returns the number of distinct (source, target) name pairs.
func (g *Graph) NumReductions() int { return g.nameGraph().EdgeCount() }

// NumRules returns the number of rules, counting every variant pair.
func (g *Graph) NumRules() int { return g.cat.NumRules() }
