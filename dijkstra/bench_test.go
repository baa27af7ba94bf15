package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/pathkit/core"
	"github.com/katalvlaran/pathkit/dijkstra"
)

// buildLattice creates an n×n 4-connected lattice with weights 1..3.
func buildLattice(n int) *core.Graph[int] {
	g := core.NewGraph[int]()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			id := y*n + x
			if x+1 < n {
				g.AddEdgeUndirectedWeighted(id, id+1, int64(1+(x+y)%3))
			}
			if y+1 < n {
				g.AddEdgeUndirectedWeighted(id, id+n, int64(1+(x*y)%3))
			}
		}
	}

	return g
}

func BenchmarkSearch_Lattice100(b *testing.B) {
	const n = 100
	g := buildLattice(n)
	goal := n*n - 1
	stop := func(v int) bool { return v == goal }
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := dijkstra.Search(g, 0, stop); !ok {
			b.Fatal("lattice corner unreachable")
		}
	}
}

func BenchmarkReachable_Lattice100(b *testing.B) {
	g := buildLattice(100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dijkstra.Reachable(g, 0)
	}
}
