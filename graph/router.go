package graph

import (
	"container/heap"
	"math"
	"slices"
)

// RouteInfo is a cheapest path: its total weight and the edges along it
type RouteInfo struct {
	Weight float64
	Edges  []EdgeID
}

// Router answers cheapest-path queries over a graph
type Router struct {
	g *DirectedWeightedGraph
}

// NewRouter creates a router over g. g must not be mutated afterwards.
func NewRouter(g *DirectedWeightedGraph) *Router {
	return &Router{g: g}
}

// BuildRoute returns the cheapest path from -> to and false when to is
// unreachable or either vertex is unknown
func (r *Router) BuildRoute(from, to VertexID) (RouteInfo, bool) {
	if !r.g.hasVertex(from) || !r.g.hasVertex(to) {
		return RouteInfo{}, false
	}
	if from == to {
		return RouteInfo{Edges: []EdgeID{}}, true
	}

	n := r.g.VertexCount()
	run := &runner{
		g:       r.g,
		dist:    make([]float64, n),
		via:     make([]EdgeID, n),
		visited: make([]bool, n),
	}
	for v := range run.dist {
		run.dist[v] = math.Inf(1)
		run.via[v] = -1
	}
	run.dist[from] = 0
	heap.Push(&run.pq, &nodeItem{id: from, dist: 0})
	run.process(to)

	if math.IsInf(run.dist[to], 1) {
		return RouteInfo{}, false
	}

	var edges []EdgeID
	for v := to; v != from; {
		e := run.via[v]
		edges = append(edges, e)
		v = r.g.Edge(e).From
	}
	slices.Reverse(edges)
	return RouteInfo{Weight: run.dist[to], Edges: edges}, true
}

// runner holds the mutable state of a single query
type runner struct {
	g       *DirectedWeightedGraph
	dist    []float64 // vertex -> best known weight from the source
	via     []EdgeID  // vertex -> last edge of the best known path
	visited []bool    // vertex -> weight is final
	pq      nodePQ
}

// process settles vertices in weight order until target is final or the
// heap runs dry
func (r *runner) process(target VertexID) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		// stale entry left behind by a later improvement
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		if u == target {
			return
		}
		r.relax(u)
	}
}

func (r *runner) relax(u VertexID) {
	for _, id := range r.g.IncidentEdges(u) {
		e := r.g.Edge(id)
		candidate := r.dist[u] + e.Weight
		if candidate >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = candidate
		r.via[e.To] = id
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: candidate})
	}
}

type nodeItem struct {
	id   VertexID
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
