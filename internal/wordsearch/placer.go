package wordsearch

import (
	"math/rand"
	"sort"

	"github.com/mmr-tortoise/puzzlepress/internal/model"
)

// maxTrialsPerWord bounds the random start/direction trials attempted for
// one word before it is skipped. The bound guarantees termination and
// keeps worst-case work proportional to the word count.
const maxTrialsPerWord = 100

// Result holds the outcome of one placement pass over a word list.
type Result struct {
	// Board is the working grid, still mutable until frozen via Grid().
	Board *Board

	// Placements lists the placed words in placement order.
	Placements []model.PlacedWord

	// Skipped lists the words that exhausted their trials.
	Skipped []model.WordEntry
}

// Place lays entries into a fresh width x height board.
//
// Words are processed longest-first (stable, so ties keep their input
// order) to maximize grid utilization — long words have the fewest legal
// positions and go in while the board is empty. Each word gets up to
// maxTrialsPerWord attempts of a random start cell and direction; a trial
// succeeds when every covered cell is empty or already holds the matching
// letter, which lets words share letters. Failure to place is recorded in
// Skipped, never returned as an error.
func Place(entries []model.WordEntry, width, height int, rng *rand.Rand) *Result {
	ordered := make([]model.WordEntry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Word) > len(ordered[j].Word)
	})

	res := &Result{Board: NewBoard(width, height)}

	for _, entry := range ordered {
		placed := false
		for trial := 0; trial < maxTrialsPerWord && !placed; trial++ {
			row := rng.Intn(height)
			col := rng.Intn(width)
			dir := model.AllDirections[rng.Intn(len(model.AllDirections))]

			if !res.Board.fits(entry.Word, row, col, dir) {
				continue
			}

			res.Board.write(entry.Word, row, col, dir, len(res.Placements))
			res.Placements = append(res.Placements, model.PlacedWord{
				Entry:     entry,
				Row:       row,
				Col:       col,
				Direction: dir,
			})
			placed = true
		}
		if !placed {
			res.Skipped = append(res.Skipped, entry)
		}
	}

	return res
}
