package snake

import "testing"

func TestGridWrap(t *testing.T) {
	g := Grid{W: 30, H: 18}

	tests := []struct {
		name     string
		in       Point
		expected Point
	}{
		{"inside", Point{X: 4, Y: 7}, Point{X: 4, Y: 7}},
		{"past right", Point{X: 30, Y: 0}, Point{X: 0, Y: 0}},
		{"past left", Point{X: -1, Y: 5}, Point{X: 29, Y: 5}},
		{"past top", Point{X: 2, Y: -1}, Point{X: 2, Y: 17}},
		{"past bottom", Point{X: 2, Y: 18}, Point{X: 2, Y: 0}},
		{"far negative", Point{X: -61, Y: -37}, Point{X: 29, Y: 17}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := g.Wrap(tc.in)
			if got != tc.expected {
				t.Errorf("Wrap(%+v) = %+v, expected %+v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestGridStep(t *testing.T) {
	g := Grid{W: 2, H: 2}
	p := Point{X: 1, Y: 1}

	if got := g.Step(p, DirEast); got != (Point{X: 0, Y: 1}) {
		t.Errorf("Step east = %+v", got)
	}
	if got := g.Step(p, DirSouth); got != (Point{X: 1, Y: 0}) {
		t.Errorf("Step south = %+v", got)
	}
	if got := g.Step(p, DirNone); got != p {
		t.Errorf("Step none = %+v", got)
	}
}

func TestDirectionOpposites(t *testing.T) {
	pairs := [][2]Direction{{DirNorth, DirSouth}, {DirEast, DirWest}}
	for _, pair := range pairs {
		if pair[0].Opposite() != pair[1] || pair[1].Opposite() != pair[0] {
			t.Errorf("%v and %v should be opposites", pair[0], pair[1])
		}
		if !pair[0].Reverses(pair[1]) || !pair[1].Reverses(pair[0]) {
			t.Errorf("%v and %v should reverse each other", pair[0], pair[1])
		}
	}

	if DirNorth.Reverses(DirEast) {
		t.Error("north does not reverse east")
	}
	if DirNone.Reverses(DirNone) {
		t.Error("none never reverses anything")
	}
	if DirEast.Reverses(DirNone) {
		t.Error("any direction may leave a standstill")
	}
}

func TestUnknownDirectionMovesNowhere(t *testing.T) {
	if d := Direction(42).Delta(); d != (Point{}) {
		t.Errorf("unknown direction delta = %+v", d)
	}
}
