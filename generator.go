package main

import (
	"errors"
	"fmt"
	"math/rand"
)

// Fatal generation errors. Any of these aborts the run with no partial
// result; the caller may retry with a fresh seed or a different pool.
var (
	// ErrEmptyWordPool indicates the caller supplied no candidate words.
	ErrEmptyWordPool = errors.New("crossword: word pool is empty")
	// ErrAllWordsFiltered indicates no candidate word survived alphabet and
	// length filtering.
	ErrAllWordsFiltered = errors.New("crossword: no candidate word survived filtering")
	// ErrNoSeedWord indicates no usable first word for the grid.
	ErrNoSeedWord = errors.New("crossword: no usable seed word")
	// ErrExhaustedAttempts indicates the placement loop gave up with too
	// little of the grid filled to form a puzzle.
	ErrExhaustedAttempts = errors.New("crossword: too few words placed to form a puzzle")
)

// Options tunes a single puzzle generation. The zero value of any field is
// replaced with its documented default by NewGenerator.
type Options struct {
	// Alphabet restricts the candidate words. Defaults to AlphabetFor("both").
	Alphabet Alphabet
	// Seed drives all randomization; the same seed and inputs reproduce the
	// same puzzle byte for byte.
	Seed int64
	// MaxWords caps the number of placed words. Default 20.
	MaxWords int
	// MaxConsecutiveSkips stops the placement loop after this many
	// unplaceable words in a row. Default 10.
	MaxConsecutiveSkips int
	// MinWords is the smallest placed-word count that still counts as a
	// puzzle. Default 2.
	MinWords int
	// MaxPoolSize caps the filtered candidate pool. Default 100.
	MaxPoolSize int
}

const (
	defaultMaxWords            = 20
	defaultMaxConsecutiveSkips = 10
	defaultMinWords            = 2
	defaultMaxPoolSize         = 100
)

// DefaultOptions returns the documented defaults with a seed of 0.
func DefaultOptions() Options {
	alphabet, _ := AlphabetFor("both")
	return Options{
		Alphabet:            alphabet,
		MaxWords:            defaultMaxWords,
		MaxConsecutiveSkips: defaultMaxConsecutiveSkips,
		MinWords:            defaultMinWords,
		MaxPoolSize:         defaultMaxPoolSize,
	}
}

// PlacedWord records one word on the grid. Immutable after placement except
// for Number, assigned once by the numbering pass. Words are never removed.
type PlacedWord struct {
	Word   string
	Row    int
	Col    int
	Dir    Orientation
	Number int
}

// Generator runs one puzzle generation. Construct a fresh Generator per
// puzzle: it carries mutable grid state and must not be shared between
// concurrent generations or reused after Generate returns.
type Generator struct {
	grid   *Grid
	opts   Options
	words  []string
	hints  map[string]string
	rng    *rand.Rand
	pool   *wordPool
	placed []PlacedWord
}

// NewGenerator prepares a generation over a width×height grid with the given
// candidate words and hint mapping (keyed by lowercase word). The hint map
// is only read, never mutated.
func NewGenerator(width, height int, words []string, hints map[string]string, opts Options) (*Generator, error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	defaults := DefaultOptions()
	if opts.Alphabet == nil {
		opts.Alphabet = defaults.Alphabet
	}
	if opts.MaxWords <= 0 {
		opts.MaxWords = defaults.MaxWords
	}
	if opts.MaxConsecutiveSkips <= 0 {
		opts.MaxConsecutiveSkips = defaults.MaxConsecutiveSkips
	}
	if opts.MinWords <= 0 {
		opts.MinWords = defaults.MinWords
	}
	if opts.MaxPoolSize <= 0 {
		opts.MaxPoolSize = defaults.MaxPoolSize
	}

	return &Generator{
		grid:  grid,
		opts:  opts,
		words: words,
		hints: hints,
		rng:   rand.New(rand.NewSource(opts.Seed)),
	}, nil
}

// Generate runs the full pipeline: seed placement, iterative growth, gap
// filling, clue numbering and output assembly. It either returns a complete
// puzzle or a typed error with no partial result.
func (g *Generator) Generate() (*Puzzle, error) {
	if len(g.words) == 0 {
		return nil, ErrEmptyWordPool
	}

	maxLen := max(g.grid.Width(), g.grid.Height())
	g.pool = newWordPool(g.words, g.opts.Alphabet, maxLen, g.opts.MaxPoolSize, g.rng)
	if g.pool.size() == 0 {
		// Both conditions hold: everything was filtered, so no seed exists.
		return nil, errors.Join(ErrAllWordsFiltered, ErrNoSeedWord)
	}

	if err := g.placeSeedWord(); err != nil {
		return nil, err
	}
	if err := g.grow(); err != nil {
		return nil, err
	}
	g.fillGaps()
	g.assignNumbers()
	return g.buildPuzzle(), nil
}

// placeSeedWord puts the first word horizontally through the grid's center
// row, centered on its columns. Medium-length words are preferred since they
// anchor the skeleton best.
func (g *Generator) placeSeedWord() error {
	fits := func(w string) bool { return len([]rune(w)) <= g.grid.Width() }

	var seed string
	for _, w := range g.pool.ordered {
		if isMediumLength(w) && fits(w) {
			seed = w
			break
		}
	}
	if seed == "" {
		for _, w := range g.pool.ordered {
			if fits(w) {
				seed = w
				break
			}
		}
	}
	if seed == "" {
		return fmt.Errorf("%w: no candidate fits a width of %d", ErrNoSeedWord, g.grid.Width())
	}

	row := g.grid.Height() / 2
	col := (g.grid.Width() - len([]rune(seed))) / 2
	if _, err := canPlace(g.grid, []rune(seed), row, col, Across, true); err != nil {
		return fmt.Errorf("%w: %v", ErrNoSeedWord, err)
	}
	return g.place(seed, row, col, Across)
}

// grow pulls unused words in selector order and places each at its
// best-scoring valid position, skipping words with no valid placement.
// The loop stops when the pool runs out, the word cap is reached, or too
// many consecutive words were unplaceable.
func (g *Generator) grow() error {
	skips := 0
	for _, w := range g.pool.unused() {
		if len(g.placed) >= g.opts.MaxWords || skips >= g.opts.MaxConsecutiveSkips {
			break
		}
		cand, ok := g.bestPlacement(w, false)
		if !ok {
			g.pool.markUsed(w)
			skips++
			continue
		}
		if err := g.place(w, cand.row, cand.col, cand.dir); err != nil {
			return err
		}
		skips = 0
	}

	if len(g.placed) < g.opts.MinWords {
		return fmt.Errorf("%w: placed %d words, need at least %d",
			ErrExhaustedAttempts, len(g.placed), g.opts.MinWords)
	}
	return nil
}

// candidate is one valid placement found during a scan.
type candidate struct {
	row, col int
	dir      Orientation
	score    float64
}

// bestPlacement scans every position and both orientations in a fixed order
// (rows top to bottom, columns left to right, across before down) and keeps
// the highest-scoring valid placement. Strict improvement means the first
// placement found wins ties, keeping the choice deterministic.
// With checkIsolation set, placements that would strand blank cells are
// rejected as well.
func (g *Generator) bestPlacement(word string, checkIsolation bool) (candidate, bool) {
	letters := []rune(word)
	var best candidate
	found := false

	for row := 0; row < g.grid.Height(); row++ {
		for col := 0; col < g.grid.Width(); col++ {
			for _, dir := range []Orientation{Across, Down} {
				crossings, err := canPlace(g.grid, letters, row, col, dir, false)
				if err != nil {
					continue
				}
				if checkIsolation && g.createsIsolatedArea(letters, row, col, dir) {
					continue
				}
				score := placementScore(g.grid, letters, row, col, dir, len(crossings))
				if !found || score > best.score {
					best = candidate{row: row, col: col, dir: dir, score: score}
					found = true
				}
			}
		}
	}
	return best, found
}

// place writes a validated word onto the grid and records it. Every letter
// goes through SetLetter, so intersection agreement is enforced even here.
func (g *Generator) place(word string, row, col int, dir Orientation) error {
	dr, dc := dir.delta()
	for i, ch := range []rune(word) {
		if err := g.grid.SetLetter(row+dr*i, col+dc*i, ch); err != nil {
			return fmt.Errorf("place %q at %d,%d %s: %w", word, row, col, dir, err)
		}
	}
	g.placed = append(g.placed, PlacedWord{Word: word, Row: row, Col: col, Dir: dir})
	g.pool.markUsed(word)
	return nil
}
