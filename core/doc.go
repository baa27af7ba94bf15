// SPDX-License-Identifier: MIT

// Package core provides the generic in-memory Graph used by every pathkit
// algorithm.
//
// The Graph G = (V, E) is an adjacency list keyed by an arbitrary comparable
// node identifier:
//
//   - Nodes are any Go comparable value: ints, strings, coordinate structs
//     such as grid.Point, or small labelled tuples.
//   - Edges are directed arcs (From, To, Weight). Undirected insertion stores
//     two independent arcs, one per direction.
//   - Parallel edges are kept (multigraph). A second insertion of the same
//     pair is a new edge, never an update.
//   - Every edge destination is registered as a node, possibly with an empty
//     edge list, so Neighbors distinguishes "unknown node" from "no edges".
//   - Nodes() and String() follow node insertion order; each node's edges
//     follow edge insertion order.
//
// Core Methods:
//
//	// Nodes
//	AddNode(n N)                                  // O(1), idempotent
//	HasNode(n N) bool                             // O(1)
//	Nodes() []N                                   // O(V), insertion order
//	NodeCount() int                               // O(1)
//
//	// Edges
//	AddEdgeDirected(u, v N)                       // O(1)†, weight DefaultWeight
//	AddEdgeDirectedWeighted(u, v N, w int64)      // O(1)†
//	AddEdgeUndirected(u, v N)                     // O(1)†, weight DefaultWeight
//	AddEdgeUndirectedWeighted(u, v N, w int64)    // O(1)†
//	EdgeCount() int                               // O(1), directed arcs
//
//	// Query
//	Neighbors(n N) ([]N, bool)                    // O(d)
//	EachNeighbor(n N, fn func(N))                 // O(d)
//	EachEdge(n N, fn func(Edge[N]))               // O(d)
//
//	// Misc
//	Clone() *Graph[N]                             // O(V+E)
//	String() string                               // O(V+E)
//
//	† amortized: append to the node's edge slice.
//
// Weights:
//
//	Weight is a signed int64 cost. Shortest-path algorithms expect
//	Weight ≥ 0; the graph does not check it.
//
// Errors:
//
//	No Graph operation returns an error or panics. Read methods are safe on a
//	nil *Graph and behave like an empty graph.
//
// Thread safety:
//
//	Graph has no internal locking. Build it from one goroutine, then share it
//	read-only; concurrent reads (e.g. parallel searches) are safe, concurrent
//	mutation is not.
package core
