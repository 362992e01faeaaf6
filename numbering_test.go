package main

import "testing"

func TestAssignNumbersSharedStart(t *testing.T) {
	// CAT across and COW down both start at (0,0) and share one number.
	//
	//	C A T
	//	O . .
	//	W . .
	gen := gapGenerator(t, 3, 3, nil)
	placeRaw(t, gen, "CAT", 0, 0, Across)
	placeRaw(t, gen, "COW", 0, 0, Down)

	gen.assignNumbers()

	if n := gen.grid.cells[0][0].Number; n != 1 {
		t.Fatalf("shared start number = %d, want 1", n)
	}
	for _, pw := range gen.placed {
		if pw.Number != 1 {
			t.Fatalf("word %q number = %d, want shared 1", pw.Word, pw.Number)
		}
	}
	// No other cell gets a number.
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if (row != 0 || col != 0) && gen.grid.cells[row][col].Number != 0 {
				t.Fatalf("unexpected number at (%d,%d)", row, col)
			}
		}
	}
}

func TestAssignNumbersReadingOrder(t *testing.T) {
	// TAP down starts at (0,1), CAT across at (1,0): reading order gives
	// the down word number 1 even though it is vertical.
	//
	//	. T .
	//	C A T
	//	. P .
	gen := gapGenerator(t, 3, 3, nil)
	placeRaw(t, gen, "TAP", 0, 1, Down)
	placeRaw(t, gen, "CAT", 1, 0, Across)

	gen.assignNumbers()

	if n := gen.grid.cells[0][1].Number; n != 1 {
		t.Fatalf("down start number = %d, want 1", n)
	}
	if n := gen.grid.cells[1][0].Number; n != 2 {
		t.Fatalf("across start number = %d, want 2", n)
	}
	for _, pw := range gen.placed {
		want := 1
		if pw.Dir == Across {
			want = 2
		}
		if pw.Number != want {
			t.Fatalf("word %q number = %d, want %d", pw.Word, pw.Number, want)
		}
	}
}

func TestStartsWord(t *testing.T) {
	gen := gapGenerator(t, 3, 3, nil)
	placeRaw(t, gen, "CAT", 1, 0, Across)

	if !startsWord(gen.grid, 1, 0, Across) {
		t.Error("(1,0) starts CAT across")
	}
	if startsWord(gen.grid, 1, 1, Across) {
		t.Error("(1,1) is mid-word, not a start")
	}
	if startsWord(gen.grid, 1, 0, Down) {
		t.Error("(1,0) has no letter below, no down word starts there")
	}
	if startsWord(gen.grid, 0, 0, Across) {
		t.Error("blank cells never start words")
	}
}
