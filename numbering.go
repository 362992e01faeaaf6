package main

// assignNumbers walks the grid in reading order (top to bottom, left to
// right) and gives every word-starting cell the next clue number. Across and
// down starts share one strictly increasing counter, and a cell starting
// both directions gets a single number used by both clues. Placed words then
// pick up the number of their start cell.
func (g *Generator) assignNumbers() {
	next := 1
	for row := 0; row < g.grid.Height(); row++ {
		for col := 0; col < g.grid.Width(); col++ {
			if startsWord(g.grid, row, col, Across) || startsWord(g.grid, row, col, Down) {
				g.grid.cells[row][col].Number = next
				next++
			}
		}
	}

	for i := range g.placed {
		pw := &g.placed[i]
		pw.Number = g.grid.cells[pw.Row][pw.Col].Number
	}
}

// startsWord reports whether the cell begins a word in the given direction:
// it is filled, the cell before it along the axis is not, and the cell after
// it is.
func startsWord(g *Grid, row, col int, dir Orientation) bool {
	dr, dc := dir.delta()
	return g.letterAt(row, col) != 0 &&
		g.letterAt(row-dr, col-dc) == 0 &&
		g.letterAt(row+dr, col+dc) != 0
}
