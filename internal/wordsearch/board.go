package wordsearch

import (
	"fmt"
	"math/rand"

	"github.com/mmr-tortoise/puzzlepress/internal/model"
)

// Board is the working letter matrix used during placement and fill.
// It tracks, per cell, the letter and which placements cover it; the
// coverage sets exist only to validate overlaps and to tell placed letters
// from filler — they are not retained on the frozen model.Grid.
type Board struct {
	width   int
	height  int
	letters [][]byte  // 0 = empty
	owners  [][][]int // indices into the placement order covering each cell
}

// NewBoard allocates an empty board. Dimensions must be positive; the
// assembler validates caller input before any board is allocated.
func NewBoard(width, height int) *Board {
	letters := make([][]byte, height)
	owners := make([][][]int, height)
	for r := 0; r < height; r++ {
		letters[r] = make([]byte, width)
		owners[r] = make([][]int, width)
	}
	return &Board{width: width, height: height, letters: letters, owners: owners}
}

// Letter returns the letter at (row, col), or 0 for an untouched cell.
func (b *Board) Letter(row, col int) byte {
	return b.letters[row][col]
}

// Covered reports whether at least one placement covers (row, col).
// After FillRandom, this is what distinguishes word letters from filler.
func (b *Board) Covered(row, col int) bool {
	return len(b.owners[row][col]) > 0
}

// fits reports whether word can start at (row, col) in direction dir:
// the whole word stays in bounds and every covered cell is either empty
// or already holds the identical letter required at that position.
func (b *Board) fits(word string, row, col int, dir model.Direction) bool {
	dr, dc := dir.Delta()

	endRow := row + dr*(len(word)-1)
	endCol := col + dc*(len(word)-1)
	if endRow < 0 || endRow >= b.height || endCol < 0 || endCol >= b.width {
		return false
	}

	for i := 0; i < len(word); i++ {
		existing := b.letters[row+dr*i][col+dc*i]
		if existing != 0 && existing != word[i] {
			return false
		}
	}
	return true
}

// write stamps word onto the board and records owner (the placement index)
// on every covered cell. write panics if it would change an existing
// letter: fits has already approved the placement, so a conflicting letter
// here is a programming error, never a recoverable condition.
func (b *Board) write(word string, row, col int, dir model.Direction, owner int) {
	dr, dc := dir.Delta()
	for i := 0; i < len(word); i++ {
		r, c := row+dr*i, col+dc*i
		if existing := b.letters[r][c]; existing != 0 && existing != word[i] {
			panic(fmt.Sprintf(
				"wordsearch: overlap conflict at (%d,%d): cell holds %q, placement %d needs %q",
				r, c, existing, owner, word[i]))
		}
		b.letters[r][c] = word[i]
		b.owners[r][c] = append(b.owners[r][c], owner)
	}
}

// FillRandom assigns a uniformly random letter A-Z to every cell not
// covered by a placement, obscuring the word boundaries. Input words are
// validated to A-Z, so the filler draws from the same alphabet.
func (b *Board) FillRandom(rng *rand.Rand) {
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; c++ {
			if b.letters[r][c] == 0 {
				b.letters[r][c] = byte('A' + rng.Intn(26))
			}
		}
	}
}

// Grid freezes the board into a model.Grid. Call after FillRandom: a
// word-search grid never exposes empty cells.
func (b *Board) Grid() model.Grid {
	grid := model.NewGrid(b.width, b.height)
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; c++ {
			grid.Cells[r][c].Letter = string(b.letters[r][c])
		}
	}
	return grid
}
