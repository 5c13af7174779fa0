package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrVertexNotFound indicates an edge endpoint outside the graph
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrNegativeWeight indicates an edge with a negative weight
	ErrNegativeWeight = errors.New("graph: negative edge weight")
)

// VertexID is a dense vertex index in [0, VertexCount)
type VertexID int

// EdgeID is a dense edge index in [0, EdgeCount)
type EdgeID int

// Edge is a directed weighted edge
type Edge struct {
	From   VertexID
	To     VertexID
	Weight float64
}

// DirectedWeightedGraph stores edges and per-vertex outgoing incidence lists
type DirectedWeightedGraph struct {
	edges     []Edge
	incidence [][]EdgeID // vertex -> outgoing edges
}

// NewDirectedWeightedGraph creates a graph with vertexCount isolated vertices
func NewDirectedWeightedGraph(vertexCount int) *DirectedWeightedGraph {
	return &DirectedWeightedGraph{incidence: make([][]EdgeID, vertexCount)}
}

// AddVertex appends an isolated vertex
func (g *DirectedWeightedGraph) AddVertex() VertexID {
	g.incidence = append(g.incidence, nil)
	return VertexID(len(g.incidence) - 1)
}

// AddEdge appends e and returns its id
func (g *DirectedWeightedGraph) AddEdge(e Edge) (EdgeID, error) {
	if !g.hasVertex(e.From) || !g.hasVertex(e.To) {
		return 0, fmt.Errorf("%w: edge %d→%d", ErrVertexNotFound, e.From, e.To)
	}
	if e.Weight < 0 {
		return 0, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
	}
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, e)
	g.incidence[e.From] = append(g.incidence[e.From], id)
	return id, nil
}

// Edge returns the edge behind id
func (g *DirectedWeightedGraph) Edge(id EdgeID) Edge { return g.edges[id] }

// IncidentEdges returns the outgoing edges of v
func (g *DirectedWeightedGraph) IncidentEdges(v VertexID) []EdgeID { return g.incidence[v] }

// VertexCount returns the number of vertices
func (g *DirectedWeightedGraph) VertexCount() int { return len(g.incidence) }

// EdgeCount returns the number of edges
func (g *DirectedWeightedGraph) EdgeCount() int { return len(g.edges) }

func (g *DirectedWeightedGraph) hasVertex(v VertexID) bool {
	return v >= 0 && int(v) < len(g.incidence)
}
