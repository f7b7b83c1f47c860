package wordsearch

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/puzzlepress/internal/model"
)

func entries(words ...string) []model.WordEntry {
	es := make([]model.WordEntry, 0, len(words))
	for _, w := range words {
		es = append(es, model.WordEntry{Word: w})
	}
	return es
}

// assertLettersMatch walks every placement and checks that each covered
// cell holds exactly the letter the word requires at that position — the
// overlap-consistency property.
func assertLettersMatch(t *testing.T, b *Board, placements []model.PlacedWord) {
	t.Helper()
	for _, p := range placements {
		for i, cell := range p.Cells() {
			got := b.Letter(cell[0], cell[1])
			assert.Equal(t, p.Entry.Word[i], got,
				"word %s position %d at (%d,%d)", p.Entry.Word, i, cell[0], cell[1])
			assert.True(t, b.Covered(cell[0], cell[1]))
		}
	}
}

// TestPlace_CatDog is the canonical small scenario: two short words in a
// 5x5 grid place without skips, and after fill every cell holds a letter.
func TestPlace_CatDog(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	res := Place(entries("CAT", "DOG"), 5, 5, rng)

	require.Len(t, res.Placements, 2, "skipped: %v", res.Skipped)
	require.Empty(t, res.Skipped)
	assertLettersMatch(t, res.Board, res.Placements)

	res.Board.FillRandom(rng)
	grid := res.Board.Grid()
	assert.Equal(t, 5, grid.Width)
	assert.Equal(t, 5, grid.Height)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			cell := grid.Cells[r][c]
			require.Len(t, cell.Letter, 1)
			assert.GreaterOrEqual(t, cell.Letter[0], byte('A'))
			assert.LessOrEqual(t, cell.Letter[0], byte('Z'))
			assert.False(t, cell.Blocked)
			assert.Zero(t, cell.Number)
		}
	}
}

// TestPlace_WordLongerThanGrid verifies that an unplaceable word is a
// recoverable skip, not a failure.
func TestPlace_WordLongerThanGrid(t *testing.T) {
	res := Place(entries("ELEPHANT"), 3, 3, rand.New(rand.NewSource(1)))

	assert.Empty(t, res.Placements)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "ELEPHANT", res.Skipped[0].Word)
}

// TestPlace_LongestFirstStable verifies the processing order: length
// descending, with ties keeping their input order.
func TestPlace_LongestFirstStable(t *testing.T) {
	res := Place(entries("CAT", "GIRAFFE", "DOG"), 10, 10, rand.New(rand.NewSource(3)))

	require.Len(t, res.Placements, 3, "skipped: %v", res.Skipped)
	assert.Equal(t, "GIRAFFE", res.Placements[0].Entry.Word)
	assert.Equal(t, "CAT", res.Placements[1].Entry.Word) // tie with DOG, input order wins
	assert.Equal(t, "DOG", res.Placements[2].Entry.Word)
}

// TestPlace_OverlapConsistency runs a dense word set through many seeds
// and checks the overlap property on every outcome.
func TestPlace_OverlapConsistency(t *testing.T) {
	words := entries(
		"ELEPHANT", "GIRAFFE", "PENGUIN", "DOLPHIN", "TIGER",
		"OCTOPUS", "FALCON", "TURTLE", "JAGUAR", "COBRA",
	)

	for seed := int64(0); seed < 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		res := Place(words, 12, 12, rng)

		assert.Equal(t, len(words), len(res.Placements)+len(res.Skipped))
		assertLettersMatch(t, res.Board, res.Placements)

		// Every placement stays in bounds.
		for _, p := range res.Placements {
			for _, cell := range p.Cells() {
				assert.True(t, cell[0] >= 0 && cell[0] < 12 && cell[1] >= 0 && cell[1] < 12,
					"word %s escapes the grid at (%d,%d)", p.Entry.Word, cell[0], cell[1])
			}
		}
	}
}

// TestPlace_Deterministic verifies that a fixed seed reproduces the exact
// same placements, skips, and filled grid.
func TestPlace_Deterministic(t *testing.T) {
	words := entries("GALAXY", "NEBULA", "PLANET", "COMET", "ORBIT")

	run := func() (*Result, model.Grid) {
		rng := rand.New(rand.NewSource(99))
		res := Place(words, 10, 10, rng)
		res.Board.FillRandom(rng)
		return res, res.Board.Grid()
	}

	resA, gridA := run()
	resB, gridB := run()

	assert.Equal(t, resA.Placements, resB.Placements)
	assert.Equal(t, resA.Skipped, resB.Skipped)
	assert.Equal(t, gridA, gridB)
}

// TestBoard_WriteConflictPanics pins the programming-error contract:
// stamping a mismatched letter over a placed one must panic, not corrupt
// the grid silently.
func TestBoard_WriteConflictPanics(t *testing.T) {
	b := NewBoard(5, 5)
	b.write("CAT", 0, 0, model.DirRight, 0)

	assert.Panics(t, func() {
		b.write("DOG", 0, 0, model.DirRight, 1)
	})
}

// TestBoard_CompatibleOverlapAllowed verifies that identical letters may
// share a cell and both owners are recorded.
func TestBoard_CompatibleOverlapAllowed(t *testing.T) {
	b := NewBoard(5, 5)
	b.write("CAT", 0, 0, model.DirRight, 0)

	// TAG downward from (0,2) reuses CAT's T.
	require.True(t, b.fits("TAG", 0, 2, model.DirDown))
	b.write("TAG", 0, 2, model.DirDown, 1)

	assert.Equal(t, byte('T'), b.Letter(0, 2))
	assert.Equal(t, byte('A'), b.Letter(1, 2))
	assert.Equal(t, byte('G'), b.Letter(2, 2))

	// Incompatible overlap is rejected by fits.
	assert.False(t, b.fits("DOG", 0, 0, model.DirRight))
}
