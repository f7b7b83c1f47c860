package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmr-tortoise/puzzlepress/internal/model"
)

// TestRenderWordSearch verifies the text preview of a tiny handcrafted
// word-search puzzle: grid rows, sorted word bank, skipped listing.
func TestRenderWordSearch(t *testing.T) {
	grid := model.NewGrid(3, 2)
	for r, row := range [][]string{{"C", "A", "T"}, {"X", "Y", "Z"}} {
		for c, letter := range row {
			grid.Cells[r][c].Letter = letter
		}
	}

	puzzle := &model.Puzzle{
		Kind:  model.KindWordSearch,
		Theme: "test",
		Grid:  grid,
		Placements: []model.PlacedWord{
			{Entry: model.WordEntry{Word: "CAT"}, Row: 0, Col: 0, Direction: model.DirRight},
		},
		Skipped: []model.WordEntry{{Word: "ELEPHANT"}},
	}

	out := renderWordSearch(puzzle)

	assert.Contains(t, out, "Word Search: test")
	assert.Contains(t, out, "C A T\n")
	assert.Contains(t, out, "X Y Z\n")
	assert.Contains(t, out, "Find these words: CAT")
	assert.Contains(t, out, "Skipped (did not fit): ELEPHANT")
}

// TestRenderWordSearch_SortedWordBank verifies the bank is alphabetical,
// not placement-ordered.
func TestRenderWordSearch_SortedWordBank(t *testing.T) {
	puzzle := &model.Puzzle{
		Kind: model.KindWordSearch,
		Grid: model.NewGrid(1, 1),
		Placements: []model.PlacedWord{
			{Entry: model.WordEntry{Word: "ZEBRA"}},
			{Entry: model.WordEntry{Word: "APPLE"}},
		},
	}

	out := renderWordSearch(puzzle)
	assert.Contains(t, out, "Find these words: APPLE, ZEBRA")
}

// TestRenderCrossword verifies blocked-cell rendering and the clue lists.
func TestRenderCrossword(t *testing.T) {
	grid := model.NewGrid(3, 2)
	grid.Cells[0][0].Letter = "C"
	grid.Cells[0][0].Number = 1
	grid.Cells[0][1].Letter = "A"
	grid.Cells[0][2].Letter = "T"
	grid.Cells[1][0].Blocked = true
	grid.Cells[1][1].Blocked = true
	grid.Cells[1][2].Blocked = true

	puzzle := &model.Puzzle{
		Kind:  model.KindCrossword,
		Theme: "animals",
		Grid:  grid,
		Placements: []model.PlacedWord{
			{Entry: model.WordEntry{Word: "CAT", Clue: "feline"}, Direction: model.DirRight},
		},
		Clues: &model.ClueIndex{
			Across: []model.Clue{{Number: 1, Text: "feline", Answer: "CAT", Length: 3}},
		},
	}

	out := renderCrossword(puzzle)

	assert.Contains(t, out, "Crossword: animals")
	assert.Contains(t, out, "C A T\n")
	assert.Contains(t, out, "# # #\n")
	assert.Contains(t, out, "Across:\n  1. feline (3 letters)")
	assert.Contains(t, out, "Down:\n  (none)")
}

// TestWriteClues_MissingText verifies the fallback for clue-less entries.
func TestWriteClues_MissingText(t *testing.T) {
	puzzle := &model.Puzzle{
		Kind: model.KindCrossword,
		Grid: model.NewGrid(1, 1),
		Clues: &model.ClueIndex{
			Down: []model.Clue{{Number: 2, Answer: "WHALE", Length: 5}},
		},
	}

	out := renderCrossword(puzzle)
	assert.Contains(t, out, "2. (5 letters)")
	assert.NotContains(t, out, "WHALE", "the clue list must not leak the answer")
}
