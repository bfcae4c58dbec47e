package reduction_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reductions/catalog"
	"github.com/katalvlaran/reductions/overhead"
	"github.com/katalvlaran/reductions/problem"
	"github.com/katalvlaran/reductions/reduction"
	"github.com/katalvlaran/reductions/variant"
)

// instance is a toy problem: n binary variables and a size.
type instance struct {
	name string
	v    variant.Variant
	size problem.Size
	n    int
}

func (i *instance) Name() string             { return i.name }
func (i *instance) Variant() variant.Variant { return i.v }
func (i *instance) Size() problem.Size       { return i.size }

// widening knows how to cast itself.
type widening struct{ *instance }

func (w widening) Widen(to variant.Variant) (problem.Problem, error) {
	return widening{&instance{name: w.name, v: to, size: w.size, n: w.n}}, nil
}

func graphV(g string) variant.Variant { return variant.Variant{variant.GraphAxis: g} }

var graphTypes = []variant.TypeEntry{
	{Category: "graph", Value: "SimpleGraph"},
	{Category: "graph", Value: "PlanarGraph", Parents: []string{"SimpleGraph"}},
	{Category: "graph", Value: "UnitDiskGraph", Parents: []string{"SimpleGraph"}},
	{Category: "graph", Value: "GridGraph", Parents: []string{"UnitDiskGraph"}},
}

func identity(fields ...string) []overhead.Spec {
	out := make([]overhead.Spec, len(fields))
	for i, f := range fields {
		out[i] = overhead.Spec{Field: f, Formula: f}
	}

	return out
}

// complementIS reduces an independent set instance to a vertex cover one:
// same variables, solution bits flipped.
func complementIS(target string, tv variant.Variant) catalog.ReduceFunc {
	return func(src problem.Problem) (problem.Problem, catalog.ExtractFunc, error) {
		in := src.(interface{ Size() problem.Size })
		n := in.Size()["num_vertices"]
		out := &instance{name: target, v: tv.Clone(), size: in.Size().Clone(), n: n}
		return out, func(cfg problem.Config) (problem.Config, error) {
			if len(cfg) != n {
				return nil, fmt.Errorf("want %d bits, got %d", n, len(cfg))
			}
			res := make(problem.Config, n)
			for i, b := range cfg {
				res[i] = 1 - b
			}
			return res, nil
		}, nil
	}
}

// isVCFacts: IS{SimpleGraph} -> VC{SimpleGraph} with a transform, and a cast for IS.
func isVCFacts() catalog.Facts {
	return catalog.Facts{
		Types: graphTypes,
		Rules: []catalog.Entry{{
			SourceName: "IS", SourceVariant: graphV("SimpleGraph"),
			TargetName: "VC", TargetVariant: graphV("SimpleGraph"),
			Overhead: identity("num_vertices", "num_edges"),
			Reduce:   complementIS("VC", graphV("SimpleGraph")),
		}},
		Variants: []catalog.ConcreteVariant{{Name: "IS", Variant: graphV("GridGraph")}},
		Casts: []catalog.CastEntry{{Name: "IS", Cast: func(src problem.Problem, to variant.Variant) (problem.Problem, error) {
			in := src.(*instance)
			return &instance{name: in.name, v: to, size: in.size, n: in.n}, nil
		}}},
	}
}

func newGraph(t *testing.T, f catalog.Facts, opts ...reduction.Option) *reduction.Graph {
	t.Helper()
	c, err := catalog.New([]catalog.Provider{catalog.Static(f)})
	require.NoError(t, err)

	return reduction.New(c, opts...)
}

var errBoom = errors.New("boom")
