package main

// Gap fills only use short words: the pass exists to occupy leftover 2–3
// cell runs between the skeleton words, not to grow the skeleton further.
const (
	gapFillMinLen = 2
	gapFillMaxLen = 3
)

// fillGaps is the best-effort post-pass over the finished skeleton: it
// offers the remaining short words to the same validator/scorer path as the
// growing loop, which lets them slot into small unfilled runs crossed by
// existing words. Fills that would strand blank cells are rejected. A gap
// that no remaining word fits simply stays unfilled; this pass never fails
// the generation.
func (g *Generator) fillGaps() {
	for _, w := range g.pool.unused() {
		if len(g.placed) >= g.opts.MaxWords {
			return
		}
		if n := len([]rune(w)); n < gapFillMinLen || n > gapFillMaxLen {
			continue
		}
		cand, ok := g.bestPlacement(w, true)
		if !ok {
			g.pool.markUsed(w)
			continue
		}
		// place cannot fail here: the placement was just validated.
		if err := g.place(w, cand.row, cand.col, cand.dir); err != nil {
			g.pool.markUsed(w)
		}
	}
}

// createsIsolatedArea reports whether writing word at the given placement
// would leave some blank cell unreachable by any straight run of length ≥2.
// A blank cell sits on such a run exactly when it has a blank orthogonal
// neighbor; cells already stranded before the fill are not counted against
// it. Unreachable pockets can never be filled later and would break the
// convention that every blank run remains fillable.
func (g *Generator) createsIsolatedArea(word []rune, row, col int, dir Orientation) bool {
	dr, dc := dir.delta()
	filled := make(map[position]bool, len(word))
	for i := range word {
		filled[position{row: row + dr*i, col: col + dc*i}] = true
	}

	blankAfter := func(r, c int) bool {
		return g.grid.InBounds(r, c) && g.grid.letterAt(r, c) == 0 && !filled[position{row: r, col: c}]
	}
	blankBefore := func(r, c int) bool {
		return g.grid.InBounds(r, c) && g.grid.letterAt(r, c) == 0
	}
	onRun := func(blank func(int, int) bool, r, c int) bool {
		return blank(r-1, c) || blank(r+1, c) || blank(r, c-1) || blank(r, c+1)
	}

	// Only cells adjacent to the new word can lose a neighbor, so checking
	// the word's perimeter covers every affected blank.
	for i := range word {
		r := row + dr*i
		c := col + dc*i
		for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			nr, nc := r+d[0], c+d[1]
			if !blankAfter(nr, nc) {
				continue
			}
			if !onRun(blankAfter, nr, nc) && onRun(blankBefore, nr, nc) {
				return true
			}
		}
	}
	return false
}
