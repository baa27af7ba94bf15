// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, EachNeighbor, EachEdge).
// Determinism:
//   - All three follow edge insertion order for the queried node.
//   - Multi-edges are reported once per stored arc.

package core

// Neighbors returns the destinations of n's outgoing edges in insertion order.
//
// Returns:
//   - (nil, false) if n was never registered.
//   - (empty non-nil slice, true) if n is registered but has no outgoing edges.
//   - destinations otherwise; a destination appears once per parallel edge.
//
// The returned slice is a fresh copy.
// Complexity: O(d), d = out-degree of n.
func (g *Graph[N]) Neighbors(n N) ([]N, bool) {
	if g == nil {
		return nil, false
	}
	edges, ok := g.adjacency[n]
	if !ok {
		return nil, false
	}
	out := make([]N, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.To)
	}

	return out, true
}

// EachNeighbor calls fn with every destination reachable from n over one
// edge. It is a no-op for an unknown node.
// Complexity: O(d).
func (g *Graph[N]) EachNeighbor(n N, fn func(N)) {
	g.EachEdge(n, func(e Edge[N]) { fn(e.To) })
}

// EachEdge calls fn with a copy of every outgoing edge of n, in insertion
// order. It is a no-op for an unknown node or a nil graph.
//
// fn must not mutate g.
// Complexity: O(d).
func (g *Graph[N]) EachEdge(n N, fn func(Edge[N])) {
	if g == nil {
		return
	}
	for _, e := range g.adjacency[n] {
		fn(e)
	}
}
