// SPDX-License-Identifier: MIT

// Package grid treats a rectangular block of text as a 2D grid of runes and
// turns it into a graph that the dijkstra package can search.
//
// What:
//
//   - Grid wraps the rows of a text map (mazes, floor plans, puzzle boards).
//   - Point addresses a cell as (X, Y), X to the right and Y downwards.
//   - Direction models a heading (Up, Right, Down, Left) with turns and steps.
//   - ToGraph builds a *core.Graph[Point] over the passable cells.
//   - Components groups passable cells into connected regions.
//
// Why:
//
//   - Puzzle and game maps are naturally text; routing on them should not
//     require a hand-written adjacency builder every time.
//   - Point is comparable, so it is directly usable as a node identifier.
//
// Complexity:
//
//   - Parse:       O(W×H), Memory: O(W×H).
//   - ToGraph:     O(W×H×d), Memory: O(W×H×d) with d = 4 or 8.
//   - Components:  O(W×H×d), Memory: O(W×H).
//
// Options (ToGraph):
//
//   - WithConnectivity: Conn4 (default) or Conn8.
//   - WithCost: edge weight from the runes of both cells (default 1).
//
// Errors:
//
//   - ErrEmptyGrid:      the text has no rows or an empty first row.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds:    At/Set called outside the grid.
package grid
