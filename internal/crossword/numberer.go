package crossword

import (
	"sort"

	"github.com/mmr-tortoise/puzzlepress/internal/model"
)

// Number assigns entry numbers to the grid in place.
//
// Cells are scanned in row-major order (top-to-bottom, left-to-right). A
// cell starts an across entry when it is non-blocked, its left neighbor is
// blocked or absent, and its right neighbor is non-blocked; down starts
// are the vertical analogue. A cell satisfying either condition receives
// the next sequential number — an across start and a down start at the
// same cell share one number. The scan is a pure function of the grid, so
// numbering twice yields identical numbers.
func Number(g *model.Grid) {
	next := 1
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			cell := &g.Cells[row][col]
			if cell.Blocked {
				cell.Number = 0
				continue
			}

			acrossStart := !open(g, row, col-1) && open(g, row, col+1)
			downStart := !open(g, row-1, col) && open(g, row+1, col)

			if acrossStart || downStart {
				cell.Number = next
				next++
			} else {
				cell.Number = 0
			}
		}
	}
}

// open reports whether (row, col) is an in-bounds, non-blocked cell.
func open(g *model.Grid, row, col int) bool {
	return g.InBounds(row, col) && !g.Cells[row][col].Blocked
}

// BuildClues derives the (direction, number) clue index from a numbered
// grid and its placements. Call after Number: each placement's start cell
// then carries the number its clue is keyed by (guaranteed, since words
// are at least two letters long and never extend an existing run).
func BuildClues(g *model.Grid, placements []model.PlacedWord) *model.ClueIndex {
	idx := &model.ClueIndex{}

	for _, p := range placements {
		clue := model.Clue{
			Number: g.Cells[p.Row][p.Col].Number,
			Text:   p.Entry.Clue,
			Answer: p.Entry.Word,
			Length: len(p.Entry.Word),
		}
		if p.Direction == model.DirDown {
			idx.Down = append(idx.Down, clue)
		} else {
			idx.Across = append(idx.Across, clue)
		}
	}

	sort.Slice(idx.Across, func(i, j int) bool { return idx.Across[i].Number < idx.Across[j].Number })
	sort.Slice(idx.Down, func(i, j int) bool { return idx.Down[i].Number < idx.Down[j].Number })

	return idx
}
