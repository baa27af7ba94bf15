// SPDX-License-Identifier: MIT

package grid

// Direction is a heading on the grid. Up is towards row 0.
type Direction int

// Headings in clockwise order.
const (
	Up Direction = iota
	Right
	Down
	Left
)

// TurnLeft returns the heading after a 90° counter-clockwise turn.
func (d Direction) TurnLeft() Direction { return (d + 3) % 4 }

// TurnRight returns the heading after a 90° clockwise turn.
func (d Direction) TurnRight() Direction { return (d + 1) % 4 }

// HalfTurn returns the opposite heading.
func (d Direction) HalfTurn() Direction { return (d + 2) % 4 }

// Delta returns the unit offset of one step in direction d.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{0, -1}
	case Right:
		return Point{1, 0}
	case Down:
		return Point{0, 1}
	case Left:
		return Point{-1, 0}
	default:
		return Point{}
	}
}

// Step returns the point one cell ahead of p. No bounds check.
func (d Direction) Step(p Point) Point { return p.Add(d.Delta()) }

// String renders the heading as an arrow: ↑ → ↓ ←.
func (d Direction) String() string {
	switch d {
	case Up:
		return "↑"
	case Right:
		return "→"
	case Down:
		return "↓"
	case Left:
		return "←"
	default:
		return "?"
	}
}
