// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse builds a Grid from text, one row per line.
// Surrounding whitespace (including trailing blank lines) is trimmed first;
// a trailing '\r' on each row is dropped.
// Returns ErrEmptyGrid for no rows or an empty first row,
// ErrNonRectangular (wrapped with the row index) for ragged rows.
// Complexity: O(W×H) time and memory.
func Parse(text string) (*Grid, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(trimmed, "\n")
	cells := make([][]rune, len(lines))
	for y, line := range lines {
		cells[y] = []rune(strings.TrimSuffix(line, "\r"))
	}
	w := len(cells[0])
	if w == 0 {
		return nil, ErrEmptyGrid
	}
	for y, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	return &Grid{cells: cells, width: w, height: len(cells)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns (width, height).
func (g *Grid) Size() (w, h int) { return g.width, g.height }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the rune stored at p, or ErrOutOfBounds.
func (g *Grid) At(p Point) (rune, error) {
	if !g.InBounds(p) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}

	return g.cells[p.Y][p.X], nil
}

// Set stores r at p, or returns ErrOutOfBounds.
func (g *Grid) Set(p Point, r rune) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	g.cells[p.Y][p.X] = r

	return nil
}

// Find returns the first cell holding r in row-major order.
func (g *Grid) Find(r rune) (Point, bool) {
	for y, row := range g.cells {
		for x, v := range row {
			if v == r {
				return Point{X: x, Y: y}, true
			}
		}
	}

	return Point{}, false
}

// FindAll returns every cell holding r in row-major order.
func (g *Grid) FindAll(r rune) []Point {
	var out []Point
	for y, row := range g.cells {
		for x, v := range row {
			if v == r {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}

	return out
}

// Clone returns a deep copy; Set on the copy does not affect g.
func (g *Grid) Clone() *Grid {
	cells := make([][]rune, g.height)
	for y := range g.cells {
		cells[y] = make([]rune, g.width)
		copy(cells[y], g.cells[y])
	}

	return &Grid{cells: cells, width: g.width, height: g.height}
}

// String renders the rows joined by '\n', without a trailing newline.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width*utf8.UTFMax + 1))
	for y, row := range g.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}

	return sb.String()
}
