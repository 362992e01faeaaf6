package main

import (
	"sort"
	"strings"
)

// PuzzleCell is one cell of the rendered puzzle. Blocked cells carry no
// letter; letter cells may carry a clue number.
type PuzzleCell struct {
	Letter  string `json:"letter,omitempty"`
	Number  int    `json:"number,omitempty"`
	Blocked bool   `json:"blocked"`
}

// Clue is one entry of the across or down list.
type Clue struct {
	Number int    `json:"number"`
	Answer string `json:"answer"`
	Hint   string `json:"hint,omitempty"`
}

// Puzzle is the assembled generation output: the grid snapshot, both clue
// lists sorted by number, and the answer key (the grid's letters row by row,
// empty strings for blocked cells).
type Puzzle struct {
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	Cells     [][]PuzzleCell `json:"cells"`
	Across    []Clue         `json:"across"`
	Down      []Clue         `json:"down"`
	AnswerKey [][]string     `json:"answer_key"`
}

// buildPuzzle snapshots the grid and placed words into the output form.
// The answer key is derived from the same cells, so it always agrees with
// the grid.
func (g *Generator) buildPuzzle() *Puzzle {
	height, width := g.grid.Height(), g.grid.Width()
	cells := make([][]PuzzleCell, height)
	key := make([][]string, height)
	for row := 0; row < height; row++ {
		cells[row] = make([]PuzzleCell, width)
		key[row] = make([]string, width)
		for col := 0; col < width; col++ {
			c := g.grid.cells[row][col]
			if c.Letter == 0 {
				cells[row][col] = PuzzleCell{Blocked: true}
				continue
			}
			cells[row][col] = PuzzleCell{Letter: string(c.Letter), Number: c.Number}
			key[row][col] = string(c.Letter)
		}
	}

	var across, down []Clue
	for _, pw := range g.placed {
		clue := Clue{
			Number: pw.Number,
			Answer: pw.Word,
			Hint:   g.hints[strings.ToLower(pw.Word)],
		}
		if pw.Dir == Across {
			across = append(across, clue)
		} else {
			down = append(down, clue)
		}
	}
	sort.Slice(across, func(i, j int) bool { return across[i].Number < across[j].Number })
	sort.Slice(down, func(i, j int) bool { return down[i].Number < down[j].Number })

	return &Puzzle{
		Width:     width,
		Height:    height,
		Cells:     cells,
		Across:    across,
		Down:      down,
		AnswerKey: key,
	}
}
