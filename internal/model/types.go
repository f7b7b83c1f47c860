package model

import (
	"fmt"
	"strings"
)

// Kind identifies which puzzle variant a generator produces.
type Kind string

const (
	// KindWordSearch is a fixed-size grid where words are hidden in any of
	// eight directions and leftover cells are filled with random letters.
	KindWordSearch Kind = "wordsearch"

	// KindCrossword is a dynamically sized grid where every word crosses at
	// least one other word and unused cells are blocked.
	KindCrossword Kind = "crossword"
)

// String returns the kind name used in CLI flags and JSON output.
func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether the kind is one of the defined puzzle variants.
func (k Kind) IsValid() bool {
	return k == KindWordSearch || k == KindCrossword
}

// ParseKind converts a string to a Kind. The comparison is case-insensitive
// to be forgiving with CLI input. Unknown values return an error.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(s)) {
	case KindWordSearch:
		return KindWordSearch, nil
	case KindCrossword:
		return KindCrossword, nil
	default:
		return "", fmt.Errorf("unknown puzzle kind: %q", s)
	}
}

// Direction is the orientation of a placed word, identified by the step
// taken from one letter to the next.
//
// Word searches use all eight directions. Crosswords use only DirRight
// (rendered as "across") and DirDown.
type Direction string

const (
	DirRight     Direction = "right"
	DirDown      Direction = "down"
	DirLeft      Direction = "left"
	DirUp        Direction = "up"
	DirDownRight Direction = "down-right"
	DirDownLeft  Direction = "down-left"
	DirUpRight   Direction = "up-right"
	DirUpLeft    Direction = "up-left"
)

// AllDirections lists every word-search direction. The order is fixed:
// placement code indexes into this slice with a seeded RNG, so reordering
// it changes every generated puzzle.
var AllDirections = []Direction{
	DirRight,
	DirDown,
	DirLeft,
	DirUp,
	DirDownRight,
	DirDownLeft,
	DirUpRight,
	DirUpLeft,
}

// Delta returns the (row, col) step from one letter of a word to the next.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case DirRight:
		return 0, 1
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirUp:
		return -1, 0
	case DirDownRight:
		return 1, 1
	case DirDownLeft:
		return 1, -1
	case DirUpRight:
		return -1, 1
	case DirUpLeft:
		return -1, -1
	default:
		return 0, 0
	}
}

// String returns the direction name used in JSON output.
func (d Direction) String() string {
	return string(d)
}

// IsValid reports whether the direction is one of the eight defined steps.
func (d Direction) IsValid() bool {
	dr, dc := d.Delta()
	return dr != 0 || dc != 0
}

// WordEntry is one word plus its optional clue. Entries are created once
// from caller input (see internal/wordlist) and never mutated.
type WordEntry struct {
	// Word is the answer, uppercase A-Z only, at least two letters.
	Word string `json:"word"`

	// Clue is the optional hint text shown next to crossword numbers.
	// Word searches ignore it.
	Clue string `json:"clue,omitempty"`
}

// Cell is a single square of a puzzle grid.
type Cell struct {
	// Letter is the solution letter as a one-character string.
	// Empty only for blocked crossword cells.
	Letter string `json:"letter,omitempty"`

	// Number is the crossword entry number, 0 when the cell does not start
	// an across or down run. Always 0 for word searches.
	Number int `json:"number,omitempty"`

	// Blocked marks a crossword cell that no entry passes through.
	// Word-search grids have no blocked cells; every cell holds a letter.
	Blocked bool `json:"blocked,omitempty"`
}

// Grid is a fixed width x height matrix of cells, addressed as
// Cells[row][col] in row-major order. A Grid is owned exclusively by a
// single Puzzle.
type Grid struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Cells  [][]Cell `json:"cells"`
}

// NewGrid allocates an empty grid of the given dimensions.
// Dimensions must be positive; callers validate before allocation.
func NewGrid(width, height int) Grid {
	cells := make([][]Cell, height)
	for r := range cells {
		cells[r] = make([]Cell, width)
	}
	return Grid{Width: width, Height: height, Cells: cells}
}

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// PlacedWord records the position chosen for one entry: the cell of its
// first letter and the direction of the remaining letters. The placement
// plus the entry's length determines every covered cell.
type PlacedWord struct {
	Entry     WordEntry `json:"entry"`
	Row       int       `json:"row"`
	Col       int       `json:"col"`
	Direction Direction `json:"direction"`
}

// Cells returns the grid coordinates covered by the placement, first
// letter first. Each element is a [row, col] pair.
func (p PlacedWord) Cells() [][2]int {
	dr, dc := p.Direction.Delta()
	coords := make([][2]int, 0, len(p.Entry.Word))
	for i := range p.Entry.Word {
		coords = append(coords, [2]int{p.Row + dr*i, p.Col + dc*i})
	}
	return coords
}

// Clue is one rendered clue-list entry for a crossword.
type Clue struct {
	// Number matches the Cell.Number at the entry's start cell.
	Number int `json:"number"`

	// Text is the hint shown to the solver. May be empty when the source
	// word list carried no clue for the word.
	Text string `json:"text"`

	// Answer is the solution word.
	Answer string `json:"answer"`

	// Length is len(Answer), published separately because clue lists
	// conventionally print it as "(6 letters)".
	Length int `json:"length"`
}

// ClueIndex holds the crossword clues keyed by direction, each list sorted
// by clue number. Together (direction, number) uniquely identifies a clue.
type ClueIndex struct {
	Across []Clue `json:"across"`
	Down   []Clue `json:"down"`
}

// Puzzle is the finished product of one assembly call: a frozen grid plus
// everything a renderer needs to draw it. No field is mutated after
// assembly returns.
type Puzzle struct {
	// Kind selects how the grid should be rendered (filler letters vs
	// blocked cells, word bank vs clue lists).
	Kind Kind `json:"kind"`

	// Theme names the word list the puzzle was built from, when known
	// (built-in banks and word list files carry one; ad-hoc lists may not).
	Theme string `json:"theme,omitempty"`

	// Seed is the RNG seed the puzzle was generated from. The same seed,
	// word list, and options reproduce the puzzle exactly.
	Seed int64 `json:"seed"`

	// Grid is the letter matrix. For word searches every cell holds a
	// letter; for crosswords unused cells are blocked and entry start
	// cells are numbered.
	Grid Grid `json:"grid"`

	// Placements lists the successfully placed words in placement order.
	Placements []PlacedWord `json:"placements"`

	// Skipped lists entries that could not be placed. A non-empty list is
	// a normal, recoverable outcome, not an error.
	Skipped []WordEntry `json:"skipped,omitempty"`

	// Clues is the (direction, number) clue index. Populated for
	// crosswords only.
	Clues *ClueIndex `json:"clues,omitempty"`
}
