package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if s.Get(3, 2) != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", s.Get(3, 2))
	}

	// Out of bounds writes are ignored, reads return space
	s.Set(-1, 0, 'A')
	s.Set(10, 0, 'B')
	s.Set(0, 5, 'C')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' || s.Get(0, 5) != ' ' {
		t.Error("Out-of-bounds cells should read as space")
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(2, 1, '●', ColorRed)
	cell := s.GetCell(2, 1)
	if cell.Rune != '●' || cell.Color != ColorRed {
		t.Errorf("GetCell(2, 1) = %+v, expected red ball", cell)
	}

	// Default writes keep default color
	s.Set(3, 1, 'x')
	if s.GetCell(3, 1).Color != ColorDefault {
		t.Error("Set should use the default color")
	}

	// Out of bounds cells are blank defaults
	if got := s.GetCell(99, 99); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("GetCell out of bounds = %+v, expected blank", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetCell(1, 1, 'Z', ColorYellow)
	s.Clear()

	if s.Get(1, 1) != ' ' {
		t.Error("Clear should fill with spaces")
	}
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear should reset cell colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hello")

	if s.Row(1) != "  hello   " {
		t.Errorf("Row(1) = %q", s.Row(1))
	}

	// Clipped text
	s.DrawText(8, 0, "long")
	if s.Row(0) != "        lo" {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawText(0, 0, "abc")

	s.Resize(10, 6)
	if !strings.HasPrefix(s.Row(0), "abc") {
		t.Errorf("Resize lost content: %q", s.Row(0))
	}
	if s.Width() != 10 || s.Height() != 6 {
		t.Errorf("Resize dimensions = %dx%d", s.Width(), s.Height())
	}

	// Shrink clips
	s.Resize(2, 1)
	if s.Row(0) != "ab" {
		t.Errorf("Row(0) after shrink = %q", s.Row(0))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if s.String() != want {
		t.Errorf("String() = %q, expected %q", s.String(), want)
	}
}
