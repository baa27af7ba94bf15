// SPDX-License-Identifier: MIT

// Package dijkstra implements a goal-directed Dijkstra search on core.Graph.
//
// Instead of a fixed target node, the caller supplies a stop predicate; the
// search returns the first finalized node satisfying it, which is the
// cheapest qualifying node reachable from the start.
//
// Notes on implementation choices:
//
//   - The frontier holds candidate edges, not nodes. The edge remembers the
//     node it was reached from, which becomes the parent on finalization.
//   - We seed the frontier with a synthetic self-edge (start→start, cost 0),
//     so a matching start returns [start] without touching the graph.
//   - We use a "lazy" decrease-key strategy: duplicates are pushed and stale
//     entries are ignored when popped.
//   - Weights are not validated; negative weights give unspecified results.
package dijkstra

import (
	"slices"

	"github.com/katalvlaran/pathkit/core"
	"github.com/katalvlaran/pathkit/pq"
)

// Search finds the cheapest path from start to any node for which stop
// returns true.
//
// Returns:
//
//   - (path, true) where path.Nodes runs start → match and path.Cost is the
//     sum of its edge weights.
//   - (Path{}, false) when no reachable node satisfies stop, or when a
//     MaxCost/MaxFinalized budget is exhausted first. This is an expected
//     outcome, not an error.
//
// If stop(start) holds, the result is ([start], 0) even when start is not in
// g. A nil stop never matches. A nil g behaves as an empty graph.
//
// Complexity:
//
//   - Time:  O(E log E), each edge is pushed at most once per finalization of its source.
//   - Space: O(V + E).
func Search[N comparable](g *core.Graph[N], start N, stop func(N) bool, opts ...Option) (Path[N], bool) {
	r := newRunner(g, start, opts)
	end, cost, ok := r.run(stop)
	if !ok {
		return Path[N]{}, false
	}

	return Path[N]{Nodes: r.pathTo(end), Cost: cost}, true
}

// Reachable runs the same search with a predicate that never matches and
// returns the minimum cost of every node finalized from start, start
// included (cost 0). Budgets from opts apply.
//
// Complexity: as Search.
func Reachable[N comparable](g *core.Graph[N], start N, opts ...Option) map[N]int64 {
	r := newRunner(g, start, opts)
	r.run(nil)

	return r.cost
}

// runner holds the mutable state of a single search call.
type runner[N comparable] struct {
	g        *core.Graph[N]          // read-only within the search
	start    N                       // source node
	options  Options                 // resolved configuration
	stats    *Stats                  // caller's Stats or a private one
	parent   map[N]N                 // finalized node → predecessor (start → start)
	cost     map[N]int64             // finalized node → minimum cost
	frontier *pq.Queue[core.Edge[N]] // candidate edges ordered by cumulative cost
}

func newRunner[N comparable](g *core.Graph[N], start N, opts []Option) *runner[N] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	stats := cfg.Stats
	if stats == nil {
		stats = &Stats{}
	}
	*stats = Stats{}

	return &runner[N]{
		g:        g,
		start:    start,
		options:  cfg,
		stats:    stats,
		parent:   make(map[N]N),
		cost:     make(map[N]int64),
		frontier: pq.New[core.Edge[N]](pq.MinFirst),
	}
}

// run is the core loop. It returns the matched node and its cost, or
// ok == false when the frontier empties or a budget stops the search.
func (r *runner[N]) run(stop func(N) bool) (end N, cost int64, ok bool) {
	// 1) Seed with the synthetic self-edge at cost 0.
	r.push(core.Edge[N]{From: r.start, To: r.start}, 0)

	for {
		// 2) Pop the cheapest candidate.
		item, more := r.frontier.Pop()
		if !more {
			return end, 0, false
		}
		r.stats.Pops++
		e, d := item.Value, item.Priority

		// 3) Discard stale entries for already-finalized nodes.
		if _, done := r.parent[e.To]; done {
			r.stats.Stale++
			continue
		}

		// 4) Finalize: first pop carries the minimum cost.
		r.parent[e.To] = e.From
		r.cost[e.To] = d
		r.stats.Finalized++
		if r.options.OnFinalize != nil {
			r.options.OnFinalize(d)
		}

		// 5) Match test happens before any expansion.
		if stop != nil && stop(e.To) {
			return e.To, d, true
		}
		if r.options.MaxFinalized > 0 && r.stats.Finalized >= r.options.MaxFinalized {
			return end, 0, false
		}

		// 6) Push outgoing edges towards nodes not yet finalized.
		r.relax(e.To, d)
	}
}

// relax pushes every outgoing edge of the freshly finalized node u whose
// destination is still open and whose cumulative cost stays within MaxCost.
func (r *runner[N]) relax(u N, d int64) {
	r.g.EachEdge(u, func(e core.Edge[N]) {
		r.stats.Relaxations++
		if _, done := r.parent[e.To]; done {
			return
		}
		// d+weight > MaxCost, without overflow. A negative d only arises
		// from negative weights and never exceeds the budget.
		if d >= 0 && e.Weight > r.options.MaxCost-d {
			return
		}
		r.push(e, d+e.Weight)
	})
}

func (r *runner[N]) push(e core.Edge[N], cost int64) {
	r.frontier.Push(e, cost)
	r.stats.Pushes++
}

// pathTo walks the parent map back from end to the start node and returns
// the nodes in start → end order.
func (r *runner[N]) pathTo(end N) []N {
	path := []N{end}
	for cur := end; cur != r.start; {
		cur = r.parent[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path
}
