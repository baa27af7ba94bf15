// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances.

package core

// Clone returns an independent deep copy of g: same nodes in the same order,
// same edges in the same per-node order. Mutating the clone never affects g.
// A nil graph clones to an empty graph.
// Complexity: O(V + E).
func (g *Graph[N]) Clone() *Graph[N] {
	out := NewGraph[N]()
	if g == nil {
		return out
	}
	out.order = make([]N, len(g.order))
	copy(out.order, g.order)
	for n, edges := range g.adjacency {
		cp := make([]Edge[N], len(edges))
		copy(cp, edges)
		out.adjacency[n] = cp
	}
	out.edgeCount = g.edgeCount

	return out
}
