// SPDX-License-Identifier: MIT

// Package pathkit is a small toolkit for cheapest-route questions on
// in-memory graphs: "how do I get from here to the nearest node that ...?"
//
// What is inside?
//
//	core/        generic directed weighted multigraph (Graph[N comparable])
//	pq/          binary-heap priority queue with FIFO tie-breaking
//	dijkstra/    predicate-driven Dijkstra, stops at the first qualifying node
//	grid/        text maps as grids of runes, converted to Graph[grid.Point]
//	parse/       line-oriented text helpers and integer conversions
//	cmd/pathkit  CLI over edge-list files and text maps
//
// Why predicate-driven?
//
//   - A fixed target is just func(n N) bool { return n == target }.
//   - "Nearest exit", "first cell holding E", "any state with the key" need no
//     extra machinery: the first node finalized that satisfies the predicate
//     is the cheapest one.
//
// Quick example:
//
//	g := core.NewGraph[string]()
//	g.AddEdgeUndirectedWeighted("A", "B", 1)
//	g.AddEdgeUndirectedWeighted("B", "C", 2)
//	path, ok := dijkstra.Search(g, "A", func(n string) bool { return n == "C" })
//	// path.Nodes == [A B C], path.Cost == 3, ok == true
//
// All library packages are synchronous and lock-free; a graph must not be
// mutated while a search runs on it.
//
//	go get github.com/katalvlaran/pathkit
package pathkit
