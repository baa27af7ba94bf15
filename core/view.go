// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Human-readable rendering of a Graph.

package core

import (
	"fmt"
	"strings"
)

// String renders one line per node, in node insertion order:
//
//	1 -> 2, 3
//	2 -> 3
//	3 ->
//
// Destinations follow edge insertion order and repeat for parallel edges.
// Complexity: O(V + E).
func (g *Graph[N]) String() string {
	if g == nil {
		return ""
	}
	var sb strings.Builder
	for i, n := range g.order {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%v ->", n)
		for j, e := range g.adjacency[n] {
			if j > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(&sb, " %v", e.To)
		}
	}

	return sb.String()
}
