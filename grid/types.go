// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"strconv"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input text has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("grid: point out of bounds")
)

// Point is a cell coordinate. X grows to the right, Y grows downwards.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return "(" + strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + ")"
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// offsets returns neighbor deltas in clockwise order starting at north.
func (c Connectivity) offsets() []Point {
	if c == Conn8 {
		return []Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// Grid is a rectangular 2D grid of runes, addressed as cells[y][x].
// The zero value is not usable; build one with Parse.
type Grid struct {
	cells  [][]rune
	width  int
	height int
}
