package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		if s.Row(y) != strings.Repeat(" ", 12) {
			t.Errorf("row %d should be blank, got %q", y, s.Row(y))
		}
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(5, 2)

	s.SetColored(1, 1, '♥', ColorRed)
	cell := s.GetCell(1, 1)
	if cell.Rune != '♥' || cell.Color != ColorRed {
		t.Errorf("GetCell = %+v, expected red heart", cell)
	}

	// Out of bounds writes are ignored and reads are blank
	s.SetColored(-1, 0, 'x', ColorRed)
	s.SetColored(5, 0, 'x', ColorRed)
	if got := s.GetCell(9, 9); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("out of bounds cell = %+v", got)
	}

	s.Clear()
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenDrawTextUnicode(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextColored(1, 0, "♥♥♡", ColorRed)

	if s.Row(0) != " ♥♥♡      " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
	if s.GetCell(3, 0).Color != ColorRed {
		t.Error("third glyph should be colored")
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.Resize(2, 3)

	if s.Row(0) != "ab" {
		t.Errorf("Row(0) after shrink = %q, expected %q", s.Row(0), "ab")
	}
	if s.Row(2) != "  " {
		t.Errorf("new row should be blank, got %q", s.Row(2))
	}
	if s.String() != "ab\n  \n  " {
		t.Errorf("String() = %q", s.String())
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3))

	if s.Row(0) != "┌──┐" || s.Row(1) != "│  │" || s.Row(2) != "└──┘" {
		t.Errorf("unexpected box:\n%s", s.String())
	}
}

func TestScreenEmptyRectDrawsNothing(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(1, 1, 0, 2))
	s.DrawRect(NewRect(0, 0, 3, -1), '#')

	if s.String() != "    \n    \n    " {
		t.Errorf("empty rect drew cells:\n%s", s.String())
	}
}
