package crossword

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/mmr-tortoise/puzzlepress/internal/model"
)

// Weights tunes candidate scoring during placement. The exact balance is a
// design choice, not a derived constant — callers may override it to trade
// denser crossings against a tighter grid.
type Weights struct {
	// Intersection is the reward per crossing the candidate creates.
	Intersection int

	// Growth is the penalty per cell of bounding-box area the candidate
	// adds to the board.
	Growth int
}

// DefaultWeights makes one extra crossing outweigh any plausible
// single-word bounding-box growth on typical word lengths.
var DefaultWeights = Weights{Intersection: 10, Growth: 1}

// orDefault substitutes DefaultWeights for the zero value, so a zero
// Weights field in caller options means "use the defaults".
func (w Weights) orDefault() Weights {
	if w == (Weights{}) {
		return DefaultWeights
	}
	return w
}

// coord addresses a cell on the unbounded working board. Coordinates may
// be negative until the final normalization pass.
type coord struct {
	row, col int
}

// Result is the outcome of one crossword placement pass, normalized to
// non-negative coordinates.
type Result struct {
	// Width and Height are the tight bounding box of all placed letters.
	Width  int
	Height int

	// Placements lists the placed words in placement order. Directions are
	// DirRight (across) and DirDown only.
	Placements []model.PlacedWord

	// Skipped lists words for which no legal crossing existed.
	Skipped []model.WordEntry

	letters map[coord]byte
}

// board is the unbounded working grid during placement: a sparse letter
// map plus the tight bounding box of everything written so far.
type board struct {
	letters                        map[coord]byte
	minRow, maxRow, minCol, maxCol int
}

// letterAt returns the letter at (row, col) and whether one exists.
func (b *board) letterAt(row, col int) (byte, bool) {
	ch, ok := b.letters[coord{row, col}]
	return ch, ok
}

// area returns the current bounding-box area, 0 for an empty board.
func (b *board) area() int {
	if len(b.letters) == 0 {
		return 0
	}
	return (b.maxRow - b.minRow + 1) * (b.maxCol - b.minCol + 1)
}

// areaWith returns the bounding-box area the board would have after
// writing a word of length n starting at (row, col) with step (dr, dc).
func (b *board) areaWith(row, col, dr, dc, n int) int {
	endRow := row + dr*(n-1)
	endCol := col + dc*(n-1)

	minRow, maxRow := b.minRow, b.maxRow
	minCol, maxCol := b.minCol, b.maxCol
	if len(b.letters) == 0 {
		minRow, maxRow, minCol, maxCol = row, row, col, col
	}

	minRow = min(minRow, min(row, endRow))
	maxRow = max(maxRow, max(row, endRow))
	minCol = min(minCol, min(col, endCol))
	maxCol = max(maxCol, max(col, endCol))

	return (maxRow - minRow + 1) * (maxCol - minCol + 1)
}

// write stamps a word onto the board and expands the bounding box. Like
// the word-search board, a letter conflict here means a candidate was
// approved that should not have been — a programming error worth a panic,
// never a silent overwrite.
func (b *board) write(word string, row, col, dr, dc int) {
	for i := 0; i < len(word); i++ {
		r, c := row+dr*i, col+dc*i
		if existing, ok := b.letterAt(r, c); ok && existing != word[i] {
			panic(fmt.Sprintf(
				"crossword: overlap conflict at (%d,%d): cell holds %q, %q needs %q",
				r, c, existing, word, word[i]))
		}
		if len(b.letters) == 0 {
			b.minRow, b.maxRow, b.minCol, b.maxCol = r, r, c, c
		}
		b.letters[coord{r, c}] = word[i]
		b.minRow = min(b.minRow, r)
		b.maxRow = max(b.maxRow, r)
		b.minCol = min(b.minCol, c)
		b.maxCol = max(b.maxCol, c)
	}
}

// validate checks whether word may start at (row, col) with step (dr, dc)
// and returns the number of crossings it would create.
//
// A legal placement:
//   - crosses at least one existing letter, and every crossed cell holds
//     exactly the letter the word needs there
//   - has empty cells just before its first and just after its last letter
//     (so it never extends an existing word)
//   - has empty perpendicular neighbors at every non-crossing cell (so it
//     never runs flush against a parallel word, which would create
//     accidental unclued words)
func (b *board) validate(word string, row, col, dr, dc int) (crossings int, ok bool) {
	if _, occupied := b.letterAt(row-dr, col-dc); occupied {
		return 0, false
	}
	if _, occupied := b.letterAt(row+dr*len(word), col+dc*len(word)); occupied {
		return 0, false
	}

	for i := 0; i < len(word); i++ {
		r, c := row+dr*i, col+dc*i

		if existing, occupied := b.letterAt(r, c); occupied {
			if existing != word[i] {
				return 0, false
			}
			crossings++
			continue
		}

		// Empty cell: the neighbors perpendicular to our direction must
		// also be empty, otherwise we are touching a parallel word.
		if _, occupied := b.letterAt(r+dc, c+dr); occupied {
			return 0, false
		}
		if _, occupied := b.letterAt(r-dc, c-dr); occupied {
			return 0, false
		}
	}

	if crossings == 0 {
		return 0, false
	}
	return crossings, true
}

// candidate is one legal placement option for a word, scored for greedy
// selection.
type candidate struct {
	row, col int
	dir      model.Direction
	score    int
}

// Place lays entries onto a fresh board.
//
// The word order is shuffled under rng and then stably sorted longest
// first, so equal-length words keep a seed-dependent order — this is what
// makes a retry with a new seed explore a different layout. The first word
// is placed horizontally at the origin; every later word is tried
// perpendicular through each letter it shares with each already-placed
// word, and the best-scoring legal candidate wins (ties keep the earliest
// found). Words with no legal candidate are skipped.
func Place(entries []model.WordEntry, rng *rand.Rand, weights Weights) *Result {
	w := weights.orDefault()

	ordered := make([]model.WordEntry, len(entries))
	copy(ordered, entries)
	rng.Shuffle(len(ordered), func(i, j int) {
		ordered[i], ordered[j] = ordered[j], ordered[i]
	})
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Word) > len(ordered[j].Word)
	})

	b := &board{letters: make(map[coord]byte)}
	var placements []model.PlacedWord
	var skipped []model.WordEntry

	for _, entry := range ordered {
		if len(placements) == 0 {
			b.write(entry.Word, 0, 0, 0, 1)
			placements = append(placements, model.PlacedWord{
				Entry: entry, Row: 0, Col: 0, Direction: model.DirRight,
			})
			continue
		}

		best, found := bestCandidate(b, placements, entry.Word, w)
		if !found {
			skipped = append(skipped, entry)
			continue
		}

		dr, dc := best.dir.Delta()
		b.write(entry.Word, best.row, best.col, dr, dc)
		placements = append(placements, model.PlacedWord{
			Entry: entry, Row: best.row, Col: best.col, Direction: best.dir,
		})
	}

	return normalize(b, placements, skipped)
}

// bestCandidate enumerates every (letter-in-word, letter-in-placed-word)
// match, validates the implied perpendicular placement, and returns the
// highest-scoring survivor. The strict > comparison keeps the earliest
// candidate on score ties.
func bestCandidate(b *board, placements []model.PlacedWord, word string, w Weights) (candidate, bool) {
	var best candidate
	found := false

	for _, placed := range placements {
		pdr, pdc := placed.Direction.Delta()

		// The new word runs perpendicular to the word it crosses, which
		// alternates across/down and keeps the puzzle two-dimensional.
		dir := model.DirDown
		if placed.Direction == model.DirDown {
			dir = model.DirRight
		}
		dr, dc := dir.Delta()

		for i := 0; i < len(placed.Entry.Word); i++ {
			cellRow := placed.Row + pdr*i
			cellCol := placed.Col + pdc*i

			for j := 0; j < len(word); j++ {
				if word[j] != placed.Entry.Word[i] {
					continue
				}

				startRow := cellRow - dr*j
				startCol := cellCol - dc*j
				crossings, ok := b.validate(word, startRow, startCol, dr, dc)
				if !ok {
					continue
				}

				growth := b.areaWith(startRow, startCol, dr, dc, len(word)) - b.area()
				score := w.Intersection*crossings - w.Growth*growth
				if !found || score > best.score {
					best = candidate{row: startRow, col: startCol, dir: dir, score: score}
					found = true
				}
			}
		}
	}

	return best, found
}

// normalize shifts the board and placements to non-negative coordinates
// and freezes the tight bounding box.
func normalize(b *board, placements []model.PlacedWord, skipped []model.WordEntry) *Result {
	res := &Result{Skipped: skipped, letters: make(map[coord]byte, len(b.letters))}
	if len(b.letters) == 0 {
		return res
	}

	res.Width = b.maxCol - b.minCol + 1
	res.Height = b.maxRow - b.minRow + 1

	for pos, ch := range b.letters {
		res.letters[coord{pos.row - b.minRow, pos.col - b.minCol}] = ch
	}

	res.Placements = make([]model.PlacedWord, 0, len(placements))
	for _, p := range placements {
		p.Row -= b.minRow
		p.Col -= b.minCol
		res.Placements = append(res.Placements, p)
	}

	return res
}

// Grid freezes the result into a model.Grid: letters where words run,
// blocked cells everywhere else.
func (r *Result) Grid() model.Grid {
	grid := model.NewGrid(r.Width, r.Height)
	for row := 0; row < r.Height; row++ {
		for col := 0; col < r.Width; col++ {
			if ch, ok := r.letters[coord{row, col}]; ok {
				grid.Cells[row][col].Letter = string(ch)
			} else {
				grid.Cells[row][col].Blocked = true
			}
		}
	}
	return grid
}
