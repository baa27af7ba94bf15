// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion (directed/undirected, weighted/unweighted).
// Policy:
//   - No deduplication: repeated insertion of a pair yields parallel edges.
//   - Both endpoints are always registered as nodes.
//   - Weights are stored as given; negative values are not rejected.

package core

// AddEdgeDirected appends the arc u→v with DefaultWeight.
// Complexity: O(1) amortized.
func (g *Graph[N]) AddEdgeDirected(u, v N) {
	g.AddEdgeDirectedWeighted(u, v, DefaultWeight)
}

// AddEdgeDirectedWeighted appends the arc u→v with weight w to u's edge list.
// u and v are registered if absent (u first, then v).
// Complexity: O(1) amortized.
func (g *Graph[N]) AddEdgeDirectedWeighted(u, v N, w int64) {
	g.AddNode(u)
	g.adjacency[u] = append(g.adjacency[u], Edge[N]{From: u, To: v, Weight: w})
	g.AddNode(v)
	g.edgeCount++
}

// AddEdgeUndirected inserts u→v and v→u, both with DefaultWeight.
// Complexity: O(1) amortized.
func (g *Graph[N]) AddEdgeUndirected(u, v N) {
	g.AddEdgeUndirectedWeighted(u, v, DefaultWeight)
}

// AddEdgeUndirectedWeighted inserts two independent arcs u→v and v→u with
// weight w. For u == v this stores two parallel self-loops.
// Complexity: O(1) amortized.
func (g *Graph[N]) AddEdgeUndirectedWeighted(u, v N, w int64) {
	g.AddEdgeDirectedWeighted(u, v, w)
	g.AddEdgeDirectedWeighted(v, u, w)
}

// EdgeCount returns the number of stored directed arcs. An undirected
// insertion counts as two.
// Complexity: O(1).
func (g *Graph[N]) EdgeCount() int {
	if g == nil {
		return 0
	}

	return g.edgeCount
}
