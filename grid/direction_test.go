package grid_test

import (
	"testing"

	"github.com/katalvlaran/pathkit/grid"
)

// TestDirection_Sequence replays a turn sequence and checks the arrows.
func TestDirection_Sequence(t *testing.T) {
	d := grid.Up
	if got := d.String(); got != "↑" {
		t.Fatalf("Up.String() = %q; want ↑", got)
	}
	d = d.TurnLeft()
	if got := d.String(); got != "←" {
		t.Errorf("after TurnLeft = %q; want ←", got)
	}
	d = d.TurnRight()
	if got := d.String(); got != "↑" {
		t.Errorf("after TurnRight = %q; want ↑", got)
	}
	d = d.HalfTurn()
	if got := d.String(); got != "↓" {
		t.Errorf("after HalfTurn = %q; want ↓", got)
	}
	if got, want := d.Step(grid.Point{X: 1, Y: 2}), (grid.Point{X: 1, Y: 3}); got != want {
		t.Errorf("Down.Step(1,2) = %v; want %v", got, want)
	}
}

// TestDirection_Cycles checks that four quarter turns or two half turns are the identity.
func TestDirection_Cycles(t *testing.T) {
	for _, d := range []grid.Direction{grid.Up, grid.Right, grid.Down, grid.Left} {
		if got := d.TurnRight().TurnRight().TurnRight().TurnRight(); got != d {
			t.Errorf("%v: four right turns = %v", d, got)
		}
		if got := d.TurnLeft(); got != d.TurnRight().HalfTurn() {
			t.Errorf("%v: TurnLeft = %v; want TurnRight+HalfTurn", d, got)
		}
		if got := d.HalfTurn().HalfTurn(); got != d {
			t.Errorf("%v: two half turns = %v", d, got)
		}
		back := d.HalfTurn().Step(d.Step(grid.Point{}))
		if back != (grid.Point{}) {
			t.Errorf("%v: step and step back = %v", d, back)
		}
	}
}

func TestDirection_Delta(t *testing.T) {
	want := map[grid.Direction]grid.Point{
		grid.Up:    {X: 0, Y: -1},
		grid.Right: {X: 1, Y: 0},
		grid.Down:  {X: 0, Y: 1},
		grid.Left:  {X: -1, Y: 0},
	}
	for d, p := range want {
		if got := d.Delta(); got != p {
			t.Errorf("%v.Delta() = %v; want %v", d, got, p)
		}
	}
	if got := grid.Direction(9).String(); got != "?" {
		t.Errorf("unknown direction String() = %q; want ?", got)
	}
}
