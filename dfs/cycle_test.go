package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reductions/core"
	"github.com/katalvlaran/reductions/dfs"
)

func directed(t *testing.T, opts []core.GraphOption, pairs ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(append([]core.GraphOption{core.WithDirected(true)}, opts...)...)
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	return g
}

func TestDetectCycles_NilGraph(t *testing.T) {
	has, cycles, err := dfs.DetectCycles(nil)
	assert.NoError(t, err)
	assert.False(t, has)
	assert.Nil(t, cycles)
}

func TestDetectCycles_DirectedNoCycle(t *testing.T) {
	// A -> B -> C, B -> D -> C (diamond, no cycle)
	g := directed(t, nil,
		[2]string{"A", "B"}, [2]string{"B", "C"},
		[2]string{"B", "D"}, [2]string{"D", "C"},
	)
	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.False(t, has)
	assert.Empty(t, cycles)
}

func TestDetectCycles_TwoNodeCycle(t *testing.T) {
	g := directed(t, nil, [2]string{"B", "A"}, [2]string{"A", "B"})
	has, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"A", "B", "A"}}, cycles)
}

func TestDetectCycles_RotationIsCanonical(t *testing.T) {
	// C -> A -> B -> C, discovered starting anywhere, always reported from A.
	g := directed(t, nil,
		[2]string{"C", "A"}, [2]string{"A", "B"}, [2]string{"B", "C"},
		[2]string{"X", "C"},
	)
	has, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"A", "B", "C", "A"}}, cycles)
}

func TestDetectCycles_SelfLoop(t *testing.T) {
	g := directed(t, []core.GraphOption{core.WithLoops()}, [2]string{"A", "A"})
	has, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"A", "A"}}, cycles)
}

func TestDetectCycles_UndirectedTriangle(t *testing.T) {
	g := core.NewGraph()
	for _, p := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}, {"C", "D"}} {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}
	has, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"A", "B", "C", "A"}}, cycles)
}

func TestDetectCycles_UndirectedTreeHasNone(t *testing.T) {
	g := core.NewGraph()
	for _, p := range [][2]string{{"A", "B"}, {"B", "C"}} {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}
	has, _, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.False(t, has)
}
