package reduction_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/reductions/catalog"
	"github.com/katalvlaran/reductions/problem"
	"github.com/katalvlaran/reductions/reduction"
	"github.com/katalvlaran/reductions/variant"
)

func gridIS() *instance {
	return &instance{
		name: "IS",
		v:    graphV("GridGraph"),
		size: problem.Size{"num_vertices": 3, "num_edges": 2},
		n:    3,
	}
}

func resolveISVC(t *testing.T, g *reduction.Graph) *reduction.ResolvedPath {
	t.Helper()
	rp, err := g.ResolvePath(reduction.Path{Names: []string{"IS", "VC"}}, graphV("GridGraph"), graphV("SimpleGraph"))
	require.NoError(t, err)

	return rp
}

func TestReduceAlongPath_RoundTrip(t *testing.T) {
	g := newGraph(t, isVCFacts())
	rp := resolveISVC(t, g)

	src := gridIS()
	chain, err := g.ReduceAlongPath(context.Background(), rp, src)
	require.NoError(t, err)

	insts := chain.Instances()
	require.Len(t, insts, 3)
	assert.Same(t, src, chain.Source())
	assert.Equal(t, "IS", insts[1].Name())
	assert.True(t, insts[1].Variant().Equal(graphV("SimpleGraph")))
	assert.Equal(t, "VC", chain.Target().Name())
	assert.Same(t, rp, chain.Path())

	sol, err := chain.ExtractSolution(problem.Config{1, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, problem.Config{0, 1, 1}, sol)
	assert.Len(t, sol, src.n)

	_, err = chain.ExtractSolution(problem.Config{1})
	assert.Error(t, err)
}

func TestReduceAlongPath_WidenerFallback(t *testing.T) {
	f := isVCFacts()
	f.Casts = nil
	g := newGraph(t, f)
	rp := resolveISVC(t, g)

	chain, err := g.ReduceAlongPath(context.Background(), rp, widening{gridIS()})
	require.NoError(t, err)
	assert.Equal(t, "VC", chain.Target().Name())
}

func TestReduceAlongPath_NoCast(t *testing.T) {
	f := isVCFacts()
	f.Casts = nil
	g := newGraph(t, f)
	rp := resolveISVC(t, g)

	chain, err := g.ReduceAlongPath(context.Background(), rp, gridIS())
	assert.ErrorIs(t, err, reduction.ErrNoCast)
	assert.Nil(t, chain)
}

func TestReduceAlongPath_SourceMismatch(t *testing.T) {
	g := newGraph(t, isVCFacts())
	rp := resolveISVC(t, g)

	src := gridIS()
	src.v = graphV("SimpleGraph")
	_, err := g.ReduceAlongPath(context.Background(), rp, src)
	assert.ErrorIs(t, err, reduction.ErrSourceMismatch)

	_, err = g.ReduceAlongPath(context.Background(), rp, nil)
	assert.ErrorIs(t, err, reduction.ErrSourceMismatch)

	_, err = g.ReduceAlongPath(context.Background(), nil, src)
	assert.ErrorIs(t, err, reduction.ErrExecution)
}

func TestReduceAlongPath_NoTransform(t *testing.T) {
	f := isVCFacts()
	f.Rules[0].Reduce = nil
	g := newGraph(t, f)
	rp := resolveISVC(t, g)

	_, err := g.ReduceAlongPath(context.Background(), rp, gridIS())
	assert.ErrorIs(t, err, reduction.ErrNoTransform)
}

func TestReduceAlongPath_TransformFailures(t *testing.T) {
	tests := []struct {
		name   string
		reduce catalog.ReduceFunc
		want   []error
	}{
		{
			name: "transform error is kept",
			reduce: func(problem.Problem) (problem.Problem, catalog.ExtractFunc, error) {
				return nil, nil, errBoom
			},
			want: []error{reduction.ErrExecution, errBoom},
		},
		{
			name: "wrong produced variant",
			reduce: func(src problem.Problem) (problem.Problem, catalog.ExtractFunc, error) {
				return &instance{name: "VC", v: graphV("PlanarGraph"), size: src.Size()}, nil, nil
			},
			want: []error{reduction.ErrExecution},
		},
		{
			name: "nil produced instance",
			reduce: func(problem.Problem) (problem.Problem, catalog.ExtractFunc, error) {
				return nil, nil, nil
			},
			want: []error{reduction.ErrExecution},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := isVCFacts()
			f.Rules[0].Reduce = tc.reduce
			g := newGraph(t, f)
			rp := resolveISVC(t, g)

			chain, err := g.ReduceAlongPath(context.Background(), rp, gridIS())
			assert.Nil(t, chain)
			for _, w := range tc.want {
				assert.ErrorIs(t, err, w)
			}
		})
	}
}

func TestReduceAlongPath_SizeFieldMismatch(t *testing.T) {
	g := newGraph(t, isVCFacts())
	rp := resolveISVC(t, g)

	src := gridIS()
	src.size = problem.Size{"num_vertices": 3}
	_, err := g.ReduceAlongPath(context.Background(), rp, src)
	assert.ErrorIs(t, err, catalog.ErrOverheadFieldMismatch)
}

func TestReduceAlongPath_Tracing(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	g := newGraph(t, isVCFacts(), reduction.WithTracerProvider(tp))
	rp := resolveISVC(t, g)

	chain, err := g.ReduceAlongPath(context.Background(), rp, gridIS())
	require.NoError(t, err)
	_, err = g.ReduceAlongPath(context.Background(), rp, &instance{name: "VC", v: variant.Variant{}})
	require.Error(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "reduction.ReduceAlongPath", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, codes.Error, spans[1].Status().Code)

	var chainID string
	for _, kv := range spans[0].Attributes() {
		if kv.Key == "reduction.chain_id" {
			chainID = kv.Value.AsString()
		}
	}
	assert.Equal(t, chain.ID().String(), chainID)
}

func TestReduceAlongPath_UniqueChainIDs(t *testing.T) {
	g := newGraph(t, isVCFacts())
	rp := resolveISVC(t, g)

	a, err := g.ReduceAlongPath(context.Background(), rp, gridIS())
	require.NoError(t, err)
	b, err := g.ReduceAlongPath(context.Background(), rp, gridIS())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID(), b.ID())
}
