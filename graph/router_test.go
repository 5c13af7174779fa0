package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAdd(t *testing.T, g *DirectedWeightedGraph, from, to VertexID, w float64) EdgeID {
	t.Helper()
	id, err := g.AddEdge(Edge{From: from, To: to, Weight: w})
	require.NoError(t, err)
	return id
}

func TestBuildRoute_PicksCheapest(t *testing.T) {
	g := NewDirectedWeightedGraph(4)
	direct := mustAdd(t, g, 0, 3, 10)
	a := mustAdd(t, g, 0, 1, 2)
	b := mustAdd(t, g, 1, 2, 2)
	c := mustAdd(t, g, 2, 3, 2)
	_ = direct

	r := NewRouter(g)
	info, ok := r.BuildRoute(0, 3)
	require.True(t, ok)
	assert.InDelta(t, 6.0, info.Weight, 1e-12)
	assert.Equal(t, []EdgeID{a, b, c}, info.Edges)
}

func TestBuildRoute_ParallelEdges(t *testing.T) {
	g := NewDirectedWeightedGraph(2)
	mustAdd(t, g, 0, 1, 5)
	cheap := mustAdd(t, g, 0, 1, 4)
	mustAdd(t, g, 0, 1, 4.5)

	info, ok := NewRouter(g).BuildRoute(0, 1)
	require.True(t, ok)
	assert.Equal(t, []EdgeID{cheap}, info.Edges)
	assert.Equal(t, 4.0, info.Weight)
}

func TestBuildRoute_Directed(t *testing.T) {
	g := NewDirectedWeightedGraph(2)
	mustAdd(t, g, 0, 1, 1)

	r := NewRouter(g)
	_, ok := r.BuildRoute(1, 0)
	assert.False(t, ok)

	_, ok = r.BuildRoute(0, 1)
	assert.True(t, ok)
}

func TestBuildRoute_Unreachable(t *testing.T) {
	g := NewDirectedWeightedGraph(3)
	mustAdd(t, g, 0, 1, 1)

	_, ok := NewRouter(g).BuildRoute(0, 2)
	assert.False(t, ok)
}

func TestBuildRoute_SameVertex(t *testing.T) {
	g := NewDirectedWeightedGraph(1)
	info, ok := NewRouter(g).BuildRoute(0, 0)
	require.True(t, ok)
	assert.Equal(t, 0.0, info.Weight)
	assert.Empty(t, info.Edges)
}

func TestBuildRoute_UnknownVertex(t *testing.T) {
	g := NewDirectedWeightedGraph(1)
	r := NewRouter(g)

	_, ok := r.BuildRoute(0, 7)
	assert.False(t, ok)
	_, ok = r.BuildRoute(-1, 0)
	assert.False(t, ok)
}

func TestBuildRoute_ZeroWeightCycle(t *testing.T) {
	g := NewDirectedWeightedGraph(3)
	mustAdd(t, g, 0, 1, 0)
	mustAdd(t, g, 1, 0, 0)
	last := mustAdd(t, g, 1, 2, 1)

	info, ok := NewRouter(g).BuildRoute(0, 2)
	require.True(t, ok)
	assert.Equal(t, 1.0, info.Weight)
	assert.Len(t, info.Edges, 2)
	assert.Equal(t, last, info.Edges[1])
}

func TestBuildRoute_RepeatedQueriesAreIndependent(t *testing.T) {
	g := NewDirectedWeightedGraph(3)
	mustAdd(t, g, 0, 1, 1)
	mustAdd(t, g, 1, 2, 1)
	r := NewRouter(g)

	for i := 0; i < 3; i++ {
		info, ok := r.BuildRoute(0, 2)
		require.True(t, ok)
		assert.Equal(t, 2.0, info.Weight)

		info, ok = r.BuildRoute(1, 2)
		require.True(t, ok)
		assert.Equal(t, 1.0, info.Weight)
	}
}
