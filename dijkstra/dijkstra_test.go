package dijkstra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reductions/core"
	"github.com/katalvlaran/reductions/dijkstra"
)

// weights maps "From>To" to a fixed cost.
type weights map[string]float64

func (w weights) relax(_ string, acc int, e dijkstra.Edge) (float64, int, bool, error) {
	c, ok := w[e.From+">"+e.To]
	if !ok {
		return 0, 0, false, nil
	}

	return c, acc + 1, true, nil
}

func graphOf(t *testing.T, w weights) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for k := range w {
		var from, to string
		for i := range k {
			if k[i] == '>' {
				from, to = k[:i], k[i+1:]
			}
		}
		_, err := g.AddEdge(from, to)
		require.NoError(t, err)
	}

	return g
}

func TestSearch_Validation(t *testing.T) {
	w := weights{"A>B": 1}
	_, err := dijkstra.Search(nil, "A", 0, w.relax)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := graphOf(t, w)
	_, err = dijkstra.Search[int](g, "A", 0, nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilRelaxer)

	_, err = dijkstra.Search(g, "Z", 0, w.relax)
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestSearch_DirectBeatsDetour(t *testing.T) {
	w := weights{"A>B": 1, "A>C": 1, "C>B": 1}
	res, err := dijkstra.Search(graphOf(t, w), "A", 0, w.relax)
	require.NoError(t, err)

	p, err := res.PathTo("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, p)
	assert.Equal(t, 1.0, res.Dist["B"])
	assert.Equal(t, 1, res.State["B"])
}

func TestSearch_CheaperDetour(t *testing.T) {
	w := weights{"A>B": 10, "A>C": 1, "C>B": 2}
	res, err := dijkstra.Search(graphOf(t, w), "A", 0, w.relax)
	require.NoError(t, err)

	p, err := res.PathTo("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B"}, p)
	assert.Equal(t, 3.0, res.Dist["B"])
	assert.Equal(t, 2, res.State["B"]) // state followed the winning path
}

func TestSearch_InadmissibleEdgeSkipped(t *testing.T) {
	w := weights{"A>B": 1}
	g := graphOf(t, w)
	_, err := g.AddEdge("B", "C") // never priced
	require.NoError(t, err)

	res, err := dijkstra.Search(g, "A", 0, w.relax)
	require.NoError(t, err)
	assert.False(t, res.Reached("C"))
	_, err = res.PathTo("C")
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

func TestSearch_NegativeAndNaNCost(t *testing.T) {
	for _, c := range []float64{-1, math.NaN()} {
		w := weights{"A>B": c}
		_, err := dijkstra.Search(graphOf(t, w), "A", 0, w.relax)
		assert.ErrorIs(t, err, dijkstra.ErrNegativeCost)
	}
}

func TestSearch_RelaxerErrorAborts(t *testing.T) {
	g := graphOf(t, weights{"A>B": 1})
	boom := errors.New("boom")
	_, err := dijkstra.Search(g, "A", 0, func(string, int, dijkstra.Edge) (float64, int, bool, error) {
		return 0, 0, false, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestSearch_TargetAndMaxCost(t *testing.T) {
	w := weights{"A>B": 1, "B>C": 1, "C>D": 5}
	g := graphOf(t, w)

	res, err := dijkstra.Search(g, "A", 0, w.relax, dijkstra.WithTarget("B"))
	require.NoError(t, err)
	assert.True(t, res.Reached("B"))
	assert.False(t, res.Reached("C"))

	res, err = dijkstra.Search(g, "A", 0, w.relax, dijkstra.WithMaxCost(3))
	require.NoError(t, err)
	assert.True(t, res.Reached("C"))
	assert.False(t, res.Reached("D"))

	assert.Panics(t, func() { dijkstra.WithMaxCost(-1) })
}

func TestSearch_SourceOnly(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddVertex("A"))
	res, err := dijkstra.Search(g, "A", 7, weights{}.relax)
	require.NoError(t, err)
	p, err := res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, p)
	assert.Equal(t, 7, res.State["A"])
}

func TestSearch_ParallelLabelledEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	for _, l := range []string{"slow", "fast"} {
		_, err := g.AddEdge("A", "B", core.WithEdgeLabel(l))
		require.NoError(t, err)
	}
	price := map[string]float64{"slow": 5, "fast": 2}

	res, err := dijkstra.Search(g, "A", "", func(_ string, _ string, e dijkstra.Edge) (float64, string, bool, error) {
		return price[e.Label], e.Label, true, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Dist["B"])
	assert.Equal(t, "fast", res.State["B"])
}
