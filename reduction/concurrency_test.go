package reduction_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/reductions/builtin"
	"github.com/katalvlaran/reductions/cost"
	"github.com/katalvlaran/reductions/problem"
	"github.com/katalvlaran/reductions/reduction"
	"github.com/katalvlaran/reductions/variant"
)

// TestGraph_ConcurrentReaders runs every read path at once against one Graph,
// including the first lazy build of the name graph. Run with -race.
func TestGraph_ConcurrentReaders(t *testing.T) {
	c, err := builtin.Catalog(nil)
	require.NoError(t, err)
	g := reduction.New(c)

	want, err := reduction.New(c).FindShortestPathByName("Factoring", "SpinGlass")
	require.NoError(t, err)

	var eg errgroup.Group
	for i := 0; i < 16; i++ {
		eg.Go(func() error {
			p, err := g.FindShortestPathByName("Factoring", "SpinGlass")
			if err != nil {
				return err
			}
			if p.String() != want.String() {
				t.Errorf("path %s, want %s", p, want)
			}
			return nil
		})
		eg.Go(func() error {
			_, err := g.FindCheapestPath(
				reduction.Endpoint{Name: "MaxCut", Graph: "SimpleGraph"},
				reduction.Endpoint{Name: "QUBO"},
				problem.Size{"num_vertices": 10, "num_edges": 20},
				cost.MinimizeSteps{})
			return err
		})
		eg.Go(func() error {
			p, err := g.FindShortestPathByName("KSatisfiability", "MaximumIndependentSet")
			if err != nil {
				return err
			}
			_, err = g.ResolvePath(p, variant.Variant{"k": "K3"},
				variant.Variant{"graph": "SimpleGraph", "weight": "i32"})
			return err
		})
		eg.Go(func() error {
			_ = g.Export()
			_, err := g.ReachableFrom("Satisfiability")
			return err
		})
	}
	require.NoError(t, eg.Wait())
}
