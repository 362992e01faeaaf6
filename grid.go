package main

import "errors"

// Sentinel errors for grid mutations. Validator and orchestrator rejections
// live next to their own code; these guard the single mutation gate.
var (
	// ErrOutOfBounds indicates a cell index outside [0,height)×[0,width).
	ErrOutOfBounds = errors.New("crossword: cell position out of grid bounds")
	// ErrConflictingLetter indicates an attempt to overwrite a filled cell
	// with a different letter.
	ErrConflictingLetter = errors.New("crossword: cell already holds a different letter")
	// ErrInvalidDimensions indicates a non-positive grid width or height.
	ErrInvalidDimensions = errors.New("crossword: grid dimensions must be positive")
)

// Orientation is the placement direction of a word.
type Orientation int

const (
	Across Orientation = iota
	Down
)

func (o Orientation) String() string {
	if o == Down {
		return "down"
	}
	return "across"
}

// delta returns the (row, col) step for one letter advance.
func (o Orientation) delta() (int, int) {
	if o == Down {
		return 1, 0
	}
	return 0, 1
}

// cell is a single grid cell. A zero Letter means the cell holds no letter
// and renders as blocked in the final puzzle. Number is assigned by the
// numbering pass for cells that start a word.
type cell struct {
	Letter rune
	Number int
}

// Grid is a fixed-size rectangular letter grid. Dimensions never change
// after creation. All letter writes go through SetLetter, which enforces
// that intersecting words agree letter for letter.
type Grid struct {
	width  int
	height int
	cells  [][]cell
}

// NewGrid creates an empty width×height grid.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidDimensions
	}
	cells := make([][]cell, height)
	for i := range cells {
		cells[i] = make([]cell, width)
	}
	return &Grid{width: width, height: height, cells: cells}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Letter returns the letter at (row, col), or 0 for a blank cell.
func (g *Grid) Letter(row, col int) (rune, error) {
	if !g.InBounds(row, col) {
		return 0, ErrOutOfBounds
	}
	return g.cells[row][col].Letter, nil
}

// letterAt is the bounds-tolerant read used by the validator: out-of-bounds
// positions read as blank.
func (g *Grid) letterAt(row, col int) rune {
	if !g.InBounds(row, col) {
		return 0
	}
	return g.cells[row][col].Letter
}

// SetLetter writes ch at (row, col). The write succeeds only if the cell is
// blank or already holds ch; a filled cell is never silently replaced.
func (g *Grid) SetLetter(row, col int, ch rune) error {
	if !g.InBounds(row, col) {
		return ErrOutOfBounds
	}
	if existing := g.cells[row][col].Letter; existing != 0 && existing != ch {
		return ErrConflictingLetter
	}
	g.cells[row][col].Letter = ch
	return nil
}
