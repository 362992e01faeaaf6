package main

import (
	"errors"
	"testing"
)

func TestNewGridInvalidDimensions(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
	}{
		{"ZeroWidth", 0, 5},
		{"ZeroHeight", 5, 0},
		{"Negative", -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewGrid(tc.width, tc.height); !errors.Is(err, ErrInvalidDimensions) {
				t.Fatalf("NewGrid(%d,%d) error = %v, want ErrInvalidDimensions", tc.width, tc.height, err)
			}
		})
	}
}

func TestGridStartsBlank(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("expected 4x3, got %dx%d", g.Width(), g.Height())
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			ch, err := g.Letter(row, col)
			if err != nil {
				t.Fatalf("Letter(%d,%d): %v", row, col, err)
			}
			if ch != 0 {
				t.Fatalf("cell (%d,%d) not blank: %q", row, col, ch)
			}
		}
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g, _ := NewGrid(3, 3)

	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if _, err := g.Letter(pos[0], pos[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Letter(%d,%d) error = %v, want ErrOutOfBounds", pos[0], pos[1], err)
		}
		if err := g.SetLetter(pos[0], pos[1], 'A'); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("SetLetter(%d,%d) error = %v, want ErrOutOfBounds", pos[0], pos[1], err)
		}
	}
}

func TestSetLetterConflict(t *testing.T) {
	g, _ := NewGrid(3, 3)

	if err := g.SetLetter(1, 1, 'A'); err != nil {
		t.Fatalf("first write: %v", err)
	}
	// Writing the same letter again is the intersection case and must pass.
	if err := g.SetLetter(1, 1, 'A'); err != nil {
		t.Fatalf("identical rewrite: %v", err)
	}
	// A different letter must never silently replace the existing one.
	if err := g.SetLetter(1, 1, 'B'); !errors.Is(err, ErrConflictingLetter) {
		t.Fatalf("conflicting write error = %v, want ErrConflictingLetter", err)
	}
	ch, _ := g.Letter(1, 1)
	if ch != 'A' {
		t.Fatalf("cell changed after rejected write: %q", ch)
	}
}
