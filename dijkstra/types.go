// SPDX-License-Identifier: MIT

// Package dijkstra defines result types and configuration options for the
// predicate-driven Dijkstra search.
//
// Options:
//
//	– MaxCost:      optional cap on cumulative cost; edges that would exceed it are not pushed.
//	– MaxFinalized: optional cap on the number of finalized nodes (0 = unlimited).
//	– Stats:        optional counters filled during the call.
//	– OnFinalize:   optional hook called with the cost of every finalized node.
//
// Errors (sentinel, raised by panic at option construction):
//
//	– ErrBadMaxCost      if MaxCost < 0.
//	– ErrBadMaxFinalized if MaxFinalized < 0.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors describing invalid option arguments.
var (
	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

	// ErrBadMaxFinalized indicates that MaxFinalized was set to a negative value.
	ErrBadMaxFinalized = errors.New("dijkstra: MaxFinalized must be non-negative")
)

// Path is the outcome of a successful search.
//
// Nodes runs from the start node to the matched node, both inclusive.
// Cost is the sum of the traversed edge weights.
type Path[N comparable] struct {
	Nodes []N
	Cost  int64
}

// Len returns the number of edges in the path (0 for a start-only match).
func (p Path[N]) Len() int {
	if len(p.Nodes) == 0 {
		return 0
	}

	return len(p.Nodes) - 1
}

// End returns the matched node. ok is false for an empty Path.
func (p Path[N]) End() (n N, ok bool) {
	if len(p.Nodes) == 0 {
		return n, false
	}

	return p.Nodes[len(p.Nodes)-1], true
}

// Stats counts the work done by one search call.
type Stats struct {
	Pushes      int // frontier entries pushed, including the synthetic start entry
	Pops        int // frontier entries popped
	Stale       int // popped entries discarded because their node was already finalized
	Finalized   int // nodes whose minimum cost was fixed
	Relaxations int // outgoing edges examined from finalized nodes
}

// Options configures the behavior of Search and Reachable.
//
// MaxCost      – edges leading to a cumulative cost above MaxCost are not pushed.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// MaxFinalized – the search gives up after this many finalized nodes.
//
//	Must be ≥ 0. Default is 0 (no cap).
type Options struct {
	MaxCost      int64            // Maximum cumulative cost to explore
	MaxFinalized int              // Finalized-node budget, 0 = unlimited
	Stats        *Stats           // Receives counters when non-nil
	OnFinalize   func(cost int64) // Called per finalized node when non-nil
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns an unbounded configuration with no hooks.
func DefaultOptions() Options {
	return Options{
		MaxCost:      math.MaxInt64,
		MaxFinalized: 0,
	}
}

// WithMaxCost bounds the cumulative cost explored by the search.
// Panics with ErrBadMaxCost for negative values.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Invalid configuration is a programming error, reported early.
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithMaxFinalized stops the search, with no result, once n nodes have been
// finalized without a match. n == 0 disables the budget.
// Panics with ErrBadMaxFinalized for negative values.
func WithMaxFinalized(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxFinalized.Error())
		}
		o.MaxFinalized = n
	}
}

// WithStats makes the search reset and fill *s. A nil s is ignored.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		if s != nil {
			o.Stats = s
		}
	}
}

// WithOnFinalize registers fn to be called with the final cost of every
// node as it is finalized, in non-decreasing cost order. A nil fn is ignored.
func WithOnFinalize(fn func(cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}
