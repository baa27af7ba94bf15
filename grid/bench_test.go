package grid_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/pathkit/dijkstra"
	"github.com/katalvlaran/pathkit/grid"
)

// randomMaze builds an n×n text map with roughly 20% walls and open corners.
func randomMaze(n int) string {
	rng := rand.New(rand.NewSource(42))
	var sb strings.Builder
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if rng.Intn(5) == 0 && !(x == 0 && y == 0) && !(x == n-1 && y == n-1) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// BenchmarkToGraph measures graph construction on a 300×300 maze.
func BenchmarkToGraph(b *testing.B) {
	g, err := grid.Parse(randomMaze(300))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ToGraph(notWall)
	}
}

// BenchmarkMazeSearch measures Search from corner to corner on a prebuilt graph.
func BenchmarkMazeSearch(b *testing.B) {
	const n = 300
	g, err := grid.Parse(randomMaze(n))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	cg := g.ToGraph(notWall, grid.WithConnectivity(grid.Conn8))
	goal := grid.Point{X: n - 1, Y: n - 1}
	stop := func(p grid.Point) bool { return p == goal }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Search(cg, grid.Point{}, stop)
	}
}

// BenchmarkComponents measures region labelling on a 300×300 maze.
func BenchmarkComponents(b *testing.B) {
	g, err := grid.Parse(randomMaze(300))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Components(notWall, grid.Conn4)
	}
}
