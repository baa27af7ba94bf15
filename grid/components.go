// SPDX-License-Identifier: MIT

package grid

// Components finds all contiguous regions of passable cells under the given
// connectivity. Regions are listed in row-major order of their first cell;
// cells inside a region are in BFS order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components(passable func(rune) bool, conn Connectivity) [][]Point {
	if passable == nil {
		passable = func(rune) bool { return true }
	}
	seen := make([]bool, g.width*g.height)
	index := func(p Point) int { return p.Y*g.width + p.X }
	offsets := conn.offsets()

	var comps [][]Point
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p0 := Point{X: x, Y: y}
			if seen[index(p0)] || !passable(g.cells[y][x]) {
				continue
			}
			// BFS to collect the region
			seen[index(p0)] = true
			queue := []Point{p0}
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range offsets {
					v := u.Add(d)
					if !g.InBounds(v) || seen[index(v)] || !passable(g.cells[v.Y][v.X]) {
						continue
					}
					seen[index(v)] = true
					queue = append(queue, v)
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}
