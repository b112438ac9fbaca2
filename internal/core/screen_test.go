package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected X/red", c)
	}

	// Out of bounds is silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawRect(NewRect(0, 0, 4, 4), '#')
	s.Clear()

	if strings.TrimSpace(strings.ReplaceAll(s.String(), "\n", "")) != "" {
		t.Errorf("after Clear screen should be empty, got %q", s.String())
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Score: 5")

	if !strings.HasPrefix(s.Row(1), "  Score: 5") {
		t.Errorf("row 1 = %q", s.Row(1))
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered: row = %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner %v = %q, expected %q", pos, got, want)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
}

func TestScreenDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		cells          [][2]int
	}{
		{"horizontal", 1, 1, 4, 1, [][2]int{{1, 1}, {2, 1}, {3, 1}, {4, 1}}},
		{"vertical reversed", 2, 4, 2, 1, [][2]int{{2, 1}, {2, 2}, {2, 3}, {2, 4}}},
		{"diagonal", 0, 0, 3, 3, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"single cell", 5, 5, 5, 5, [][2]int{{5, 5}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 10)
			s.DrawLine(tc.x0, tc.y0, tc.x1, tc.y1, '*', ColorYellow)

			count := 0
			for y := 0; y < 10; y++ {
				for x := 0; x < 10; x++ {
					if s.Get(x, y) == '*' {
						count++
					}
				}
			}
			if count != len(tc.cells) {
				t.Errorf("painted %d cells, expected %d", count, len(tc.cells))
			}
			for _, c := range tc.cells {
				if cell := s.GetCell(c[0], c[1]); cell.Rune != '*' || cell.Color != ColorYellow {
					t.Errorf("cell %v = %+v, expected yellow '*'", c, cell)
				}
			}
		})
	}
}

func TestScreenDrawEllipse(t *testing.T) {
	s := NewScreen(20, 10)
	s.DrawEllipse(10, 5, 4, 2, 'o', ColorCyan)

	// Centre, axis extremes painted; corners of the bounding box are not.
	for _, p := range [][2]int{{10, 5}, {6, 5}, {14, 5}, {10, 3}, {10, 7}} {
		if s.Get(p[0], p[1]) != 'o' {
			t.Errorf("expected ellipse cell at %v", p)
		}
	}
	for _, p := range [][2]int{{6, 3}, {14, 7}} {
		if s.Get(p[0], p[1]) == 'o' {
			t.Errorf("bounding box corner %v should be empty", p)
		}
	}

	s.Clear()
	s.DrawEllipse(3, 3, 0, 0, '.', ColorGray)
	if s.Get(3, 3) != '.' {
		t.Error("zero radius should still paint the centre")
	}
}

func TestScreenDrawBar(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawBar(0, 0, 4, 0.5, ColorGreen, ColorGray)

	for i := 0; i < 4; i++ {
		want := ColorGray
		if i < 2 {
			want = ColorGreen
		}
		if c := s.GetCell(i, 0); c.Color != want {
			t.Errorf("bar cell %d colour = %d, expected %d", i, c.Color, want)
		}
	}

	// Out of range ratios are clamped
	s.DrawBar(0, 0, 4, 3, ColorGreen, ColorGray)
	if s.GetCell(3, 0).Color != ColorGreen {
		t.Error("ratio above 1 should fill the bar")
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got, want := s.String(), "AAAAA\nBBBBB\nCCCCC"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}

	s.Resize(8, 2)
	if s.Width() != 8 || s.Height() != 2 {
		t.Errorf("after resize %dx%d, expected 8x2", s.Width(), s.Height())
	}
	if s.Row(0) != "        " {
		t.Errorf("resize should clear, row 0 = %q", s.Row(0))
	}
	if s.Row(-1) != "        " {
		t.Errorf("out of range row should be blank, got %q", s.Row(-1))
	}
}

func TestHealthColor(t *testing.T) {
	if HealthColor(1) != ColorBrightGreen {
		t.Error("full health should be green")
	}
	if HealthColor(0.5) != ColorYellow {
		t.Error("half health should be yellow")
	}
	if HealthColor(0.1) != ColorRed {
		t.Error("low health should be red")
	}
}
