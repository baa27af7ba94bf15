// Package dijkstra_test provides examples demonstrating how to use Search.
// Each example is runnable via "go test -run Example".
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/pathkit/core"
	"github.com/katalvlaran/pathkit/dijkstra"
)

// ExampleSearch finds a route to a fixed target on a directed, weighted graph.
func ExampleSearch() {
	// 1) Build the graph edge by edge.
	g := core.NewGraph[int]()
	for _, e := range [][3]int{
		{1, 2, 2}, {1, 3, 2}, {2, 4, 2}, {3, 4, 1}, {3, 6, 7},
		{4, 5, 3}, {5, 6, 2}, {5, 7, 7}, {6, 7, 4},
	} {
		g.AddEdgeDirectedWeighted(e[0], e[1], int64(e[2]))
	}

	// 2) Stop at node 7.
	path, ok := dijkstra.Search(g, 1, func(n int) bool { return n == 7 })

	fmt.Println(path.Nodes, path.Cost, ok)
	// Output: [1 3 4 5 6 7] 12 true
}

// ExampleSearch_nearestMatch stops at the cheapest node with a given property
// rather than at a fixed node.
func ExampleSearch_nearestMatch() {
	g := core.NewGraph[string]()
	g.AddEdgeUndirectedWeighted("home", "bakery", 3)
	g.AddEdgeUndirectedWeighted("home", "fuel-north", 9)
	g.AddEdgeUndirectedWeighted("bakery", "fuel-south", 4)

	isFuel := func(place string) bool { return len(place) > 4 && place[:5] == "fuel-" }
	path, ok := dijkstra.Search(g, "home", isFuel)

	fmt.Println(path.Nodes, path.Cost, ok)
	// Output: [home bakery fuel-south] 7 true
}

// ExampleReachable lists minimum costs from a source.
func ExampleReachable() {
	g := core.NewGraph[string]()
	g.AddEdgeDirectedWeighted("A", "B", 4)
	g.AddEdgeDirectedWeighted("A", "C", 1)
	g.AddEdgeDirectedWeighted("C", "B", 1)

	costs := dijkstra.Reachable(g, "A")
	fmt.Println(costs["A"], costs["B"], costs["C"])
	// Output: 0 2 1
}
