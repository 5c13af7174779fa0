// Package graph implements a directed weighted multigraph and a shortest-path
// router over it.
//
// Vertices and edges are addressed by dense integer ids. Parallel edges are
// allowed and are told apart by their EdgeID, which is what callers use to
// attach their own metadata to an edge.
//
// Router runs Dijkstra's algorithm per query using a binary heap with lazy
// decrease-key:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// The router keeps no state between queries, so a Router over a graph that is
// no longer mutated may be shared by concurrent callers.
package graph
