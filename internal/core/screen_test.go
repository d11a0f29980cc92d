package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", s.Width(), s.Height())
	}
	if got, want := s.String(), "      \n      \n      "; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		s.Paint(p[0], p[1], 'X', RGB(1, 2, 3))
		if c := s.GetCell(p[0], p[1]); c.Rune != ' ' || c.Color != (Color{}) {
			t.Errorf("GetCell(%d, %d) = %+v, want blank", p[0], p[1], c)
		}
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("out-of-bounds paint leaked into the buffer")
	}
}

func TestScreenPaintAndSet(t *testing.T) {
	s := NewScreen(4, 2)
	green := RGB(0x33, 0xcc, 0x33)

	s.Paint(1, 1, '█', green)
	if c := s.GetCell(1, 1); c.Rune != '█' || c.Color != green {
		t.Errorf("GetCell(1, 1) = %+v, want green block", c)
	}

	s.Set(1, 1, 'x')
	if c := s.GetCell(1, 1); c.Rune != 'x' || c.Color != (Color{}) {
		t.Errorf("Set should write an uncolored rune, got %+v", c)
	}
	if s.Get(1, 1) != 'x' {
		t.Errorf("Get(1, 1) = %q, want 'x'", s.Get(1, 1))
	}
}

func TestScreenClearDropsColor(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawRect(NewRect(0, 0, 3, 2), '#', RGB(9, 9, 9))

	s.Clear()

	for y := range 2 {
		for x := range 3 {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Errorf("after Clear (%d, %d) = %+v", x, y, c)
			}
		}
	}
}

func TestScreenText(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want string
	}{
		{"plain", func(s *Screen) { s.DrawText(1, 0, "ab") }, " ab     "},
		{"clipped right", func(s *Screen) { s.DrawText(6, 0, "Hello") }, "      He"},
		{"clipped left", func(s *Screen) { s.DrawText(-2, 0, "Hello") }, "llo     "},
		{"centered", func(s *Screen) { s.DrawTextCentered(0, "Hi") }, "   Hi   "},
		{"centered runes", func(s *Screen) { s.DrawTextCentered(0, "·●·") }, "  ·●·   "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(8, 1)
			tc.draw(s)
			if got := s.String(); got != tc.want {
				t.Errorf("row = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(5, 1)
	grey := RGB(0xd0, 0xd0, 0xd0)

	s.DrawTextColor(1, 0, "ok", grey)

	if s.GetCell(1, 0).Color != grey || s.GetCell(2, 0).Color != grey {
		t.Error("DrawTextColor did not color its runes")
	}
	if s.GetCell(3, 0).Color != (Color{}) {
		t.Error("DrawTextColor colored past the text")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(5, 4)
	red := RGB(0xff, 0, 0)

	s.DrawRect(NewRect(1, 1, 3, 2), '#', red)

	want := "     \n ### \n ### \n     "
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if s.GetCell(2, 2).Color != red {
		t.Errorf("fill color = %+v, want red", s.GetCell(2, 2).Color)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)

	s.DrawBox(NewRect(0, 0, 5, 4))

	want := strings.Join([]string{
		"┌───┐ ",
		"│   │ ",
		"│   │ ",
		"└───┘ ",
	}, "\n")
	if got := s.String(); got != want {
		t.Errorf("DrawBox:\n%s\nwant:\n%s", got, want)
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 6)
	green := RGB(0x33, 0xcc, 0x33)
	s.DrawTextColor(0, 0, "Hello", green)
	s.DrawText(0, 5, "World")

	s.Resize(4, 2)
	if got, want := s.String(), "Hell\n    "; got != want {
		t.Errorf("after shrink String() = %q, want %q", got, want)
	}

	s.Resize(6, 3)
	if got, want := s.String(), "Hell  \n      \n      "; got != want {
		t.Errorf("after grow String() = %q, want %q", got, want)
	}
	if s.GetCell(0, 0).Color != green {
		t.Errorf("Resize lost color: %+v", s.GetCell(0, 0))
	}
}

func TestScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative dimensions should clamp to 0, got %dx%d", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("empty screen should render empty, got %q", s.String())
	}

	s.Resize(-1, 2)
	if s.Width() != 0 || s.Height() != 2 {
		t.Errorf("Resize(-1, 2) = %dx%d, want 0x2", s.Width(), s.Height())
	}
}
