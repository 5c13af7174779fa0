package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEdge(t *testing.T) {
	g := NewDirectedWeightedGraph(2)

	id, err := g.AddEdge(Edge{From: 0, To: 1, Weight: 3})
	require.NoError(t, err)
	assert.Equal(t, EdgeID(0), id)

	// parallel edges are kept apart
	id, err = g.AddEdge(Edge{From: 0, To: 1, Weight: 2})
	require.NoError(t, err)
	assert.Equal(t, EdgeID(1), id)

	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []EdgeID{0, 1}, g.IncidentEdges(0))
	assert.Empty(t, g.IncidentEdges(1))
	assert.Equal(t, Edge{From: 0, To: 1, Weight: 2}, g.Edge(1))
}

func TestAddEdge_Errors(t *testing.T) {
	g := NewDirectedWeightedGraph(1)

	_, err := g.AddEdge(Edge{From: 0, To: 1, Weight: 1})
	assert.ErrorIs(t, err, ErrVertexNotFound)

	_, err = g.AddEdge(Edge{From: -1, To: 0, Weight: 1})
	assert.ErrorIs(t, err, ErrVertexNotFound)

	_, err = g.AddEdge(Edge{From: 0, To: 0, Weight: -1})
	assert.ErrorIs(t, err, ErrNegativeWeight)

	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddVertex(t *testing.T) {
	g := NewDirectedWeightedGraph(0)
	assert.Equal(t, VertexID(0), g.AddVertex())
	assert.Equal(t, VertexID(1), g.AddVertex())
	assert.Equal(t, 2, g.VertexCount())

	_, err := g.AddEdge(Edge{From: 1, To: 0, Weight: 0})
	assert.NoError(t, err)
}
