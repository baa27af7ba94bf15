// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/pathkit/dijkstra"
	"github.com/katalvlaran/pathkit/grid"
)

// ExampleGrid_ToGraph routes through a small maze from S to E.
// Scenario:
//
//   - '#' cells are walls, every other cell costs 1 to enter.
//   - Conn4: moves are N/E/S/W only.
//   - The wall at (1,1) forces the route down the left column.
func ExampleGrid_ToGraph() {
	g, _ := grid.Parse("S.#.\n.#..\n...E")
	start, _ := g.Find('S')
	goal, _ := g.Find('E')

	cg := g.ToGraph(func(r rune) bool { return r != '#' })
	path, ok := dijkstra.Search(cg, start, func(p grid.Point) bool { return p == goal })

	fmt.Println(ok, path.Cost)
	fmt.Println(path.Nodes)
	// Output:
	// true 5
	// [(0,0) (0,1) (0,2) (1,2) (2,2) (3,2)]
}

// ExampleGrid_Components counts the open regions of a map.
func ExampleGrid_Components() {
	g, _ := grid.Parse("..#..\n..#..\n#####\n....#")

	comps := g.Components(func(r rune) bool { return r == '.' }, grid.Conn4)
	fmt.Println("regions:", len(comps))
	for i, c := range comps {
		fmt.Printf("region %d: %d cells from %v\n", i, len(c), c[0])
	}
	// Output:
	// regions: 3
	// region 0: 4 cells from (0,0)
	// region 1: 4 cells from (3,0)
	// region 2: 4 cells from (0,3)
}

// ExampleDirection walks a heading around a square.
func ExampleDirection() {
	d := grid.Up
	p := grid.Point{}
	for i := 0; i < 4; i++ {
		p = d.Step(p)
		fmt.Print(d, " ")
		d = d.TurnRight()
	}
	fmt.Println(p)
	// Output: ↑ → ↓ ← (0,0)
}
