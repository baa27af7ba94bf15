// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge and Graph type declarations plus the NewGraph constructor.
// Determinism:
//   - order records node insertion order; adjacency slices record edge insertion order.

package core

import "fmt"

// DefaultWeight is the weight given to edges added without an explicit weight.
const DefaultWeight int64 = 1

// Edge is a directed, weighted arc owned by a Graph.
//
// Edges are stored by value; callers receive copies and cannot mutate the
// graph through them.
type Edge[N comparable] struct {
	// From is the source node.
	From N

	// To is the destination node.
	To N

	// Weight is the traversal cost. Expected to be ≥ 0 by shortest-path code.
	Weight int64
}

// String renders the edge as "from->to(weight)".
func (e Edge[N]) String() string {
	return fmt.Sprintf("%v->%v(%d)", e.From, e.To, e.Weight)
}

// Graph is a directed multigraph stored as an adjacency list.
//
// adjacency[n] holds the outgoing edges of n in insertion order; a present
// key with an empty slice is a registered node without outgoing edges.
// The zero value is an empty graph ready for use.
type Graph[N comparable] struct {
	adjacency map[N][]Edge[N] // node → outgoing edges
	order     []N             // node insertion order
	edgeCount int             // number of directed arcs
}

// NewGraph returns an empty Graph.
// Complexity: O(1).
func NewGraph[N comparable]() *Graph[N] {
	return &Graph[N]{
		adjacency: make(map[N][]Edge[N]),
	}
}
