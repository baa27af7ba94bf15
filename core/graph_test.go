package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pathkit/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph[int]
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph[int]()
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func (s *GraphSuite) TestAddNodeIsIdempotent() {
	require := require.New(s.T())
	require.False(s.g.HasNode(1), "empty graph should not have 1")

	s.g.AddNode(1)
	require.True(s.g.HasNode(1))
	s.g.AddNode(1)
	require.Equal(1, s.g.NodeCount(), "adding a node twice must not duplicate it")

	nbrs, ok := s.g.Neighbors(1)
	require.True(ok)
	require.NotNil(nbrs)
	require.Empty(nbrs)
}

func (s *GraphSuite) TestNeighborsUnknownNode() {
	nbrs, ok := s.g.Neighbors(99)
	s.False(ok)
	s.Nil(nbrs)
}

func (s *GraphSuite) TestDirectedEdgeRegistersDestination() {
	s.g.AddEdgeDirectedWeighted(1, 2, 5)

	s.True(s.g.HasNode(2), "destination must be auto-registered")
	nbrs, ok := s.g.Neighbors(1)
	s.True(ok)
	s.Equal([]int{2}, nbrs)

	back, ok := s.g.Neighbors(2)
	s.True(ok, "destination is known")
	s.Empty(back, "directed edge must not create the reverse arc")
	s.Equal(1, s.g.EdgeCount())
}

func (s *GraphSuite) TestDefaultWeight() {
	s.g.AddEdgeDirected(1, 2)
	s.g.AddEdgeUndirected(3, 4)

	var weights []int64
	for _, n := range []int{1, 3, 4} {
		s.g.EachEdge(n, func(e core.Edge[int]) { weights = append(weights, e.Weight) })
	}
	s.Equal([]int64{core.DefaultWeight, core.DefaultWeight, core.DefaultWeight}, weights)
}

func (s *GraphSuite) TestUndirectedEdgeBothWays() {
	s.g.AddEdgeUndirectedWeighted(1, 2, 7)

	var got []core.Edge[int]
	s.g.EachEdge(1, func(e core.Edge[int]) { got = append(got, e) })
	s.g.EachEdge(2, func(e core.Edge[int]) { got = append(got, e) })

	s.Equal([]core.Edge[int]{
		{From: 1, To: 2, Weight: 7},
		{From: 2, To: 1, Weight: 7},
	}, got)
	s.Equal(2, s.g.EdgeCount())
}

func (s *GraphSuite) TestParallelEdgesAreKept() {
	s.g.AddEdgeDirectedWeighted(1, 2, 3)
	s.g.AddEdgeDirectedWeighted(1, 2, 9)

	nbrs, _ := s.g.Neighbors(1)
	s.Equal([]int{2, 2}, nbrs)

	var weights []int64
	s.g.EachEdge(1, func(e core.Edge[int]) { weights = append(weights, e.Weight) })
	s.Equal([]int64{3, 9}, weights, "second insertion is a new edge, not an update")
}

func (s *GraphSuite) TestInsertionOrder() {
	s.g.AddEdgeDirected(3, 1)
	s.g.AddEdgeDirected(3, 2)
	s.g.AddEdgeDirected(2, 1)
	s.g.AddNode(7)

	s.Equal([]int{3, 1, 2, 7}, s.g.Nodes())
	nbrs, _ := s.g.Neighbors(3)
	s.Equal([]int{1, 2}, nbrs)
}

func (s *GraphSuite) TestEachNeighbor() {
	s.g.AddEdgeDirected(1, 2)
	s.g.AddEdgeDirected(1, 3)

	var seen []int
	s.g.EachNeighbor(1, func(n int) { seen = append(seen, n) })
	s.Equal([]int{2, 3}, seen)

	called := false
	s.g.EachNeighbor(42, func(int) { called = true })
	s.False(called, "unknown node must not invoke the callback")
}

func (s *GraphSuite) TestNeighborsReturnsCopy() {
	s.g.AddEdgeDirected(1, 2)
	nbrs, _ := s.g.Neighbors(1)
	nbrs[0] = 99

	again, _ := s.g.Neighbors(1)
	s.Equal([]int{2}, again)
}

func (s *GraphSuite) TestClone() {
	s.g.AddEdgeDirectedWeighted(1, 2, 4)
	s.g.AddNode(5)

	c := s.g.Clone()
	c.AddEdgeDirected(2, 3)

	s.False(s.g.HasNode(3), "mutating the clone must not touch the original")
	s.Equal([]int{1, 2, 5}, s.g.Nodes())
	s.Equal([]int{1, 2, 5, 3}, c.Nodes())
	s.Equal(1, s.g.EdgeCount())
	s.Equal(2, c.EdgeCount())
}

func (s *GraphSuite) TestString() {
	s.g.AddEdgeDirected(1, 2)
	s.g.AddEdgeDirected(1, 3)
	s.g.AddEdgeDirected(2, 3)

	s.Equal("1 -> 2, 3\n2 -> 3\n3 ->", s.g.String())
}

func TestGraph_ZeroValueUsable(t *testing.T) {
	var g core.Graph[string]
	g.AddEdgeUndirected("a", "b")

	nbrs, ok := g.Neighbors("b")
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, nbrs)
}

func TestGraph_NilReceiverReads(t *testing.T) {
	var g *core.Graph[int]

	assert.False(t, g.HasNode(1))
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Nil(t, g.Nodes())
	assert.Equal(t, "", g.String())
	_, ok := g.Neighbors(1)
	assert.False(t, ok)
	g.EachEdge(1, func(core.Edge[int]) { t.Fatal("nil graph has no edges") })
	assert.Equal(t, 0, g.Clone().NodeCount())
}

// Node identifiers may be any comparable value, e.g. coordinate pairs.
func TestGraph_StructNodes(t *testing.T) {
	type coord struct{ X, Y int }
	g := core.NewGraph[coord]()
	g.AddEdgeUndirectedWeighted(coord{0, 0}, coord{0, 1}, 2)

	nbrs, ok := g.Neighbors(coord{0, 1})
	require.True(t, ok)
	assert.Equal(t, []coord{{0, 0}}, nbrs)
	assert.Equal(t, "{0 0}->{0 1}(2)", core.Edge[coord]{From: coord{0, 0}, To: coord{0, 1}, Weight: 2}.String())
}
