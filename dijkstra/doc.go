// SPDX-License-Identifier: MIT

// Package dijkstra provides a goal-directed implementation of Dijkstra's
// shortest-path algorithm on core.Graph with non-negative edge weights.
//
// Overview:
//
//   - Search expands nodes in order of increasing cumulative cost from a
//     single start node and stops at the first node accepted by a
//     caller-supplied predicate. That node is the cheapest qualifying node.
//   - The path is rebuilt from a parent map and returned start → match
//     together with its total cost.
//   - Reachable runs the same loop to exhaustion and returns every finalized
//     node with its minimum cost.
//
// When to use:
//
//   - "Nearest node such that ..." queries: the closest exit of a maze, the
//     cheapest state reaching a goal condition, any node with a given label.
//   - Plain source→target routing: pass func(n N) bool { return n == target }.
//
// Key features:
//
//   - Generic node identifiers: any comparable type (ints, strings, grid points).
//   - Start short-circuit: if the predicate accepts start, the result is
//     ([start], 0) without reading the graph.
//   - Optional budgets: WithMaxCost, WithMaxFinalized.
//   - Optional instrumentation: WithStats, WithOnFinalize.
//
// Performance and complexity:
//
//   - Time:  O(E log E) with E = edges reachable from start.
//   - Space: O(V + E), the frontier may hold one entry per relaxed edge under
//     the "lazy decrease-key" strategy.
//
// Result policy:
//
//   - No path is not an error: Search returns (Path{}, false).
//   - Ties between equally cheap matches are broken by frontier insertion
//     order, i.e. by edge insertion order in the graph.
//   - Negative weights are an unchecked precondition violation; results are
//     unspecified but the call terminates. Budgets never prune expansion past
//     a node reached at negative cost.
//
// Thread safety:
//
//   - Each call owns its frontier and maps, so concurrent searches on the same
//     graph are safe as long as nobody mutates the graph meanwhile.
//
// Example usage:
//
//	g := core.NewGraph[int]()
//	g.AddEdgeDirectedWeighted(1, 2, 4)
//	g.AddEdgeDirectedWeighted(2, 3, 1)
//	path, ok := dijkstra.Search(g, 1, func(n int) bool { return n == 3 })
//	// path.Nodes == [1 2 3], path.Cost == 5, ok == true
package dijkstra
