// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Node registration and node queries.
// Determinism:
//   - Nodes() returns nodes in first-registration order.

package core

// AddNode registers n with an empty edge list if it is not already present.
// Calling it again for the same node has no effect.
// Complexity: O(1).
func (g *Graph[N]) AddNode(n N) {
	if g.adjacency == nil {
		g.adjacency = make(map[N][]Edge[N])
	}
	if _, ok := g.adjacency[n]; ok {
		return
	}
	g.adjacency[n] = []Edge[N]{}
	g.order = append(g.order, n)
}

// HasNode reports whether n has been registered, either explicitly or as an
// edge endpoint.
// Complexity: O(1).
func (g *Graph[N]) HasNode(n N) bool {
	if g == nil {
		return false
	}
	_, ok := g.adjacency[n]

	return ok
}

// Nodes returns a copy of all registered nodes in insertion order.
// Complexity: O(V).
func (g *Graph[N]) Nodes() []N {
	if g == nil {
		return nil
	}
	out := make([]N, len(g.order))
	copy(out, g.order)

	return out
}

// NodeCount returns the number of registered nodes.
// Complexity: O(1).
func (g *Graph[N]) NodeCount() int {
	if g == nil {
		return 0
	}

	return len(g.order)
}
