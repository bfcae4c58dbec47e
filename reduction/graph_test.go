package reduction_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reductions/builtin"
	"github.com/katalvlaran/reductions/catalog"
	"github.com/katalvlaran/reductions/dfs"
	"github.com/katalvlaran/reductions/reduction"
)

func abcFacts() catalog.Facts {
	return catalog.Facts{Rules: []catalog.Entry{
		{SourceName: "A", TargetName: "B"},
		{SourceName: "A", TargetName: "C"},
		{SourceName: "C", TargetName: "B"},
		{SourceName: "B", TargetName: "D"},
	}}
}

func TestNew_NilCatalogPanics(t *testing.T) {
	assert.PanicsWithValue(t, reduction.ErrNilCatalog, func() { reduction.New(nil) })
	assert.Panics(t, func() { reduction.WithLogger(nil) })
	assert.Panics(t, func() { reduction.WithMaxCost(-1) })
	assert.Panics(t, func() { reduction.WithTracerProvider(nil) })
}

func TestNameGraph_Queries(t *testing.T) {
	g := newGraph(t, abcFacts())

	assert.Equal(t, []string{"A", "B", "C", "D"}, g.ProblemNames())
	assert.Equal(t, 4, g.NumNames())
	assert.Equal(t, 4, g.NumReductions())
	assert.Equal(t, 4, g.NumRules())
	assert.True(t, g.HasDirectReduction("A", "B"))
	assert.False(t, g.HasDirectReduction("B", "A"))
	assert.Len(t, g.RulesOn("A", "C"), 1)
}

func TestNameGraph_OneEdgePerNamePair(t *testing.T) {
	g := newGraph(t, isVCFacts())
	// a second IS->VC rule on another variant keeps one name edge
	f := isVCFacts()
	f.Rules = append(f.Rules, catalog.Entry{
		SourceName: "IS", SourceVariant: graphV("GridGraph"),
		TargetName: "VC", TargetVariant: graphV("GridGraph"),
	})
	g2 := newGraph(t, f)

	assert.Equal(t, 1, g.NumReductions())
	assert.Equal(t, 1, g2.NumReductions())
	assert.Equal(t, 2, g2.NumRules())
}

func TestFindShortestPathByName(t *testing.T) {
	g := newGraph(t, abcFacts())

	p, err := g.FindShortestPathByName("A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, p.Names)
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, "A", p.Source())
	assert.Equal(t, "D", p.Target())
	assert.Equal(t, "A -> B -> D", p.String())

	_, err = g.FindShortestPathByName("D", "A")
	assert.ErrorIs(t, err, reduction.ErrNoPath)
	_, err = g.FindShortestPathByName("A", "Z")
	assert.ErrorIs(t, err, reduction.ErrUnknownProblem)

	p, err = g.FindShortestPathByName("C", "C")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Len())
}

func TestFindAllPaths(t *testing.T) {
	g := newGraph(t, abcFacts())

	ps, err := g.FindAllPaths("A", "D")
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, []string{"A", "B", "D"}, ps[0].Names)
	assert.Equal(t, []string{"A", "C", "B", "D"}, ps[1].Names)

	ps, err = g.FindAllPaths("A", "D", dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Len(t, ps, 1)

	ps, err = g.FindAllPaths("D", "A")
	require.NoError(t, err)
	assert.Empty(t, ps)

	_, err = g.FindAllPaths("Z", "A")
	assert.ErrorIs(t, err, reduction.ErrUnknownProblem)
}

func TestReachableFrom(t *testing.T) {
	g := newGraph(t, abcFacts())

	r, err := g.ReachableFrom("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "D"}, r)

	r, err = g.ReachableFrom("D")
	require.NoError(t, err)
	assert.Empty(t, r)
}

func TestReachableWithin(t *testing.T) {
	g := newGraph(t, abcFacts())

	ctx := context.Background()

	r, err := g.ReachableWithin(ctx, "A", 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"B": 1, "C": 1}, r)

	r, err = g.ReachableWithin(ctx, "A", 0)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"B": 1, "C": 1, "D": 2}, r)

	_, err = g.ReachableWithin(ctx, "Z", 1)
	assert.ErrorIs(t, err, reduction.ErrUnknownProblem)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = g.ReachableWithin(cancelled, "A", 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuiltin_NameLevel(t *testing.T) {
	c, err := builtin.Catalog(nil)
	require.NoError(t, err)
	g := reduction.New(c)

	p, err := g.FindShortestPathByName("Factoring", "SpinGlass")
	require.NoError(t, err)
	assert.Equal(t, []string{"Factoring", "CircuitSAT", "SpinGlass"}, p.Names)

	p, err = g.FindShortestPathByName("KSatisfiability", "MaximumIndependentSet")
	require.NoError(t, err)
	assert.Equal(t, []string{"KSatisfiability", "Satisfiability", "MaximumIndependentSet"}, p.Names)

	reach, err := g.ReachableFrom("QUBO")
	require.NoError(t, err)
	assert.Contains(t, reach, "ILP")
	assert.Contains(t, reach, "MaxCut")
	assert.NotContains(t, reach, "Factoring")
}
