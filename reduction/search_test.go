package reduction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reductions/builtin"
	"github.com/katalvlaran/reductions/catalog"
	"github.com/katalvlaran/reductions/cost"
	"github.com/katalvlaran/reductions/dijkstra"
	"github.com/katalvlaran/reductions/expr"
	"github.com/katalvlaran/reductions/overhead"
	"github.com/katalvlaran/reductions/problem"
	"github.com/katalvlaran/reductions/reduction"
)

func TestFindCheapestPath_PrefersDirectUnderSteps(t *testing.T) {
	g := newGraph(t, abcFacts())

	p, err := g.FindCheapestPath(reduction.Endpoint{Name: "A"}, reduction.Endpoint{Name: "B"}, nil, cost.MinimizeSteps{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, p.Names)

	p, err = g.FindCheapestPath(reduction.Endpoint{Name: "A"}, reduction.Endpoint{Name: "A"}, nil, cost.MinimizeSteps{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, p.Names)
}

// Src -> Dst squares the size; Src -> Mid -> Dst adds one twice.
func blowupFacts() catalog.Facts {
	spec := func(f string) []overhead.Spec { return []overhead.Spec{{Field: "n", Formula: f}} }
	return catalog.Facts{Rules: []catalog.Entry{
		{SourceName: "Src", TargetName: "Dst", Overhead: spec("n ^ 3")},
		{SourceName: "Src", TargetName: "Mid", Overhead: spec("n + 1")},
		{SourceName: "Mid", TargetName: "Dst", Overhead: spec("n + 1")},
	}}
}

func TestFindCheapestPath_SizeDependent(t *testing.T) {
	g := newGraph(t, blowupFacts())
	src, dst := reduction.Endpoint{Name: "Src"}, reduction.Endpoint{Name: "Dst"}

	p, err := g.FindCheapestPath(src, dst, problem.Size{"n": 10}, cost.Minimize("n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Src", "Mid", "Dst"}, p.Names)

	p, err = g.FindCheapestPath(src, dst, problem.Size{"n": 1}, cost.Minimize("n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Src", "Dst"}, p.Names)
}

func TestFindCheapestPath_MaxCost(t *testing.T) {
	g := newGraph(t, blowupFacts(), reduction.WithMaxCost(20))
	_, err := g.FindCheapestPath(reduction.Endpoint{Name: "Src"}, reduction.Endpoint{Name: "Dst"},
		problem.Size{"n": 10}, cost.Minimize("n"))
	assert.ErrorIs(t, err, reduction.ErrNoPath)
}

func TestFindCheapestPath_GraphAdmissibility(t *testing.T) {
	f := catalog.Facts{
		Types: graphTypes,
		Rules: []catalog.Entry{
			{SourceName: "IS", SourceVariant: graphV("UnitDiskGraph"), TargetName: "VC", TargetVariant: graphV("UnitDiskGraph")},
			{SourceName: "VC", SourceVariant: graphV("SimpleGraph"), TargetName: "ILP"},
		},
	}
	g := newGraph(t, f)
	steps := cost.MinimizeSteps{}

	// A ⊑ C: GridGraph fits a UnitDiskGraph rule, PlanarGraph does not.
	_, err := g.FindCheapestPath(reduction.Endpoint{Name: "IS", Graph: "GridGraph"}, reduction.Endpoint{Name: "VC"}, nil, steps)
	require.NoError(t, err)
	_, err = g.FindCheapestPath(reduction.Endpoint{Name: "IS", Graph: "PlanarGraph"}, reduction.Endpoint{Name: "VC"}, nil, steps)
	assert.ErrorIs(t, err, reduction.ErrNoPath)

	// D ⊑ B
	_, err = g.FindCheapestPath(reduction.Endpoint{Name: "IS", Graph: "GridGraph"},
		reduction.Endpoint{Name: "VC", Graph: "SimpleGraph"}, nil, steps)
	require.NoError(t, err)
	_, err = g.FindCheapestPath(reduction.Endpoint{Name: "IS", Graph: "GridGraph"},
		reduction.Endpoint{Name: "VC", Graph: "GridGraph"}, nil, steps)
	assert.ErrorIs(t, err, reduction.ErrNoPath)

	// the graph value carried forward is the rule's target graph;
	// ILP has no graph axis, so it matches any requested graph
	p, err := g.FindCheapestPath(reduction.Endpoint{Name: "IS", Graph: "GridGraph"}, reduction.Endpoint{Name: "ILP"}, nil, steps)
	require.NoError(t, err)
	assert.Equal(t, []string{"IS", "VC", "ILP"}, p.Names)
}

// S reaches M cheaply under SimpleGraph and, one hop later, under GridGraph;
// only the GridGraph arrival admits M -> T.
func TestFindCheapestPath_KeepsNarrowerArrival(t *testing.T) {
	f := catalog.Facts{
		Types: graphTypes,
		Rules: []catalog.Entry{
			{SourceName: "S", SourceVariant: graphV("GridGraph"), TargetName: "M", TargetVariant: graphV("SimpleGraph")},
			{SourceName: "S", SourceVariant: graphV("GridGraph"), TargetName: "X", TargetVariant: graphV("GridGraph")},
			{SourceName: "X", SourceVariant: graphV("GridGraph"), TargetName: "M", TargetVariant: graphV("GridGraph")},
			{SourceName: "M", SourceVariant: graphV("GridGraph"), TargetName: "T", TargetVariant: graphV("GridGraph")},
		},
	}
	g := newGraph(t, f)
	src := reduction.Endpoint{Name: "S", Graph: "GridGraph"}

	p, err := g.FindCheapestPath(src, reduction.Endpoint{Name: "T", Graph: "SimpleGraph"},
		problem.Size{"n": 1}, cost.MinimizeSteps{})
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "X", "M", "T"}, p.Names)

	rp, err := g.ResolvePath(p, graphV("GridGraph"), graphV("SimpleGraph"))
	require.NoError(t, err)
	assert.Equal(t, 3, rp.NumReductions())

	// M alone still takes the one-hop route
	p, err = g.FindCheapestPath(src, reduction.Endpoint{Name: "M"}, nil, cost.MinimizeSteps{})
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "M"}, p.Names)
}

// Self-reductions never appear as a hop of their own.
func TestFindCheapestPath_SkipsSameNameRules(t *testing.T) {
	f := catalog.Facts{
		Types: graphTypes,
		Rules: []catalog.Entry{
			{SourceName: "IS", SourceVariant: graphV("SimpleGraph"), TargetName: "IS", TargetVariant: graphV("GridGraph")},
			{SourceName: "IS", SourceVariant: graphV("GridGraph"), TargetName: "ILP"},
		},
	}
	g := newGraph(t, f)

	_, err := g.FindCheapestPath(reduction.Endpoint{Name: "IS", Graph: "SimpleGraph"},
		reduction.Endpoint{Name: "ILP"}, nil, cost.MinimizeSteps{})
	assert.ErrorIs(t, err, reduction.ErrNoPath)
}

func TestFindCheapestPath_Errors(t *testing.T) {
	g := newGraph(t, blowupFacts())
	src, dst := reduction.Endpoint{Name: "Src"}, reduction.Endpoint{Name: "Dst"}

	_, err := g.FindCheapestPath(reduction.Endpoint{Name: "Nope"}, dst, nil, cost.MinimizeSteps{})
	assert.ErrorIs(t, err, reduction.ErrUnknownProblem)
	_, err = g.FindCheapestPath(src, dst, nil, nil)
	assert.ErrorIs(t, err, reduction.ErrNilCostFunction)
	_, err = g.FindCheapestPath(src, dst, problem.Size{"n": -1}, cost.Minimize("n"))
	assert.ErrorIs(t, err, problem.ErrNegativeSize)

	// an unbound size field is a hard failure, not a zero
	_, err = g.FindCheapestPath(src, dst, problem.Size{"m": 3}, cost.Minimize("n"))
	assert.ErrorIs(t, err, expr.ErrUnknownVariable)

	// so is a negative cost
	neg := cost.Custom(func(*overhead.Overhead, problem.Size) (float64, error) { return -1, nil })
	_, err = g.FindCheapestPath(src, dst, problem.Size{"n": 3}, neg)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeCost)
}

func TestFindCheapestPath_Builtin(t *testing.T) {
	c, err := builtin.Catalog(nil)
	require.NoError(t, err)
	g := reduction.New(c)

	p, err := g.FindCheapestPath(
		reduction.Endpoint{Name: "MaxCut", Graph: "SimpleGraph"},
		reduction.Endpoint{Name: "QUBO"},
		problem.Size{"num_vertices": 20, "num_edges": 40},
		cost.MinimizeSteps{})
	require.NoError(t, err)
	assert.Equal(t, []string{"MaxCut", "QUBO"}, p.Names)

	// Minimizing ILP variables from MaximumSetPacking: direct gives num_sets,
	// every other route is at least as large.
	p, err = g.FindCheapestPath(
		reduction.Endpoint{Name: "MaximumSetPacking"},
		reduction.Endpoint{Name: "ILP"},
		problem.Size{"num_sets": 10, "num_elements": 30},
		cost.Minimize("num_vars"))
	require.NoError(t, err)
	assert.Equal(t, "MaximumSetPacking", p.Source())
	assert.Equal(t, "ILP", p.Target())
}
