// SPDX-License-Identifier: MIT

// Package pq provides a small generic priority queue used by the search
// algorithms of pathkit.
//
// What:
//
//   - Entry pairs an arbitrary payload with an int64 priority.
//     Entries are ordered and compared by priority only; the payload never
//     takes part in a comparison.
//   - Queue is a binary heap of entries built on container/heap. It pops
//     either the lowest priority first (MinFirst) or the highest (MaxFirst).
//
// Why two orders:
//
//   - MinFirst is the natural frontier for Dijkstra: push cumulative costs
//     and pop the cheapest.
//   - MaxFirst supports the classic "negated cost" trick, where a max-heap
//     fed -cost pops entries in exactly the same order.
//
// Determinism:
//
//   - Entries with equal priority pop in insertion order (FIFO).
//
// Complexity:
//
//   - Push, Pop: O(log n). Peek, Len: O(1).
//
// Thread safety:
//
//   - Queue is not safe for concurrent use.
package pq
