// Package cli — output.go holds the text and JSON rendering helpers shared
// by the generating commands. The text renderings are terminal previews;
// the JSON output is the full Puzzle value for downstream tooling.
package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/puzzlepress/internal/model"
)

// printJSON writes v as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// printText writes a pre-rendered text block to the command's stdout.
func printText(cmd *cobra.Command, text string) error {
	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}

// renderWordSearch renders the filled grid plus the word bank. The word
// bank is sorted alphabetically so it never hints at placement order.
func renderWordSearch(p *model.Puzzle) string {
	var b strings.Builder

	if p.Theme != "" {
		fmt.Fprintf(&b, "Word Search: %s\n\n", p.Theme)
	}

	for _, row := range p.Grid.Cells {
		letters := make([]string, 0, len(row))
		for _, cell := range row {
			letters = append(letters, cell.Letter)
		}
		fmt.Fprintln(&b, strings.Join(letters, " "))
	}

	words := make([]string, 0, len(p.Placements))
	for _, placed := range p.Placements {
		words = append(words, placed.Entry.Word)
	}
	sort.Strings(words)
	fmt.Fprintf(&b, "\nFind these words: %s\n", strings.Join(words, ", "))

	if len(p.Skipped) > 0 {
		skipped := make([]string, 0, len(p.Skipped))
		for _, entry := range p.Skipped {
			skipped = append(skipped, entry.Word)
		}
		fmt.Fprintf(&b, "Skipped (did not fit): %s\n", strings.Join(skipped, ", "))
	}

	return b.String()
}

// renderCrossword renders the solution grid ('#' for blocked cells) and
// the numbered clue lists.
func renderCrossword(p *model.Puzzle) string {
	var b strings.Builder

	if p.Theme != "" {
		fmt.Fprintf(&b, "Crossword: %s\n\n", p.Theme)
	}

	for _, row := range p.Grid.Cells {
		letters := make([]string, 0, len(row))
		for _, cell := range row {
			if cell.Blocked {
				letters = append(letters, "#")
			} else {
				letters = append(letters, cell.Letter)
			}
		}
		fmt.Fprintln(&b, strings.Join(letters, " "))
	}

	if p.Clues != nil {
		b.WriteString("\nAcross:\n")
		writeClues(&b, p.Clues.Across)
		b.WriteString("\nDown:\n")
		writeClues(&b, p.Clues.Down)
	}

	if len(p.Skipped) > 0 {
		skipped := make([]string, 0, len(p.Skipped))
		for _, entry := range p.Skipped {
			skipped = append(skipped, entry.Word)
		}
		fmt.Fprintf(&b, "\nSkipped (no crossing found): %s\n", strings.Join(skipped, ", "))
	}

	return b.String()
}

// writeClues prints one direction's clue list. Clues without text fall
// back to the answer length alone, which keeps file-based lists with
// missing clues usable.
func writeClues(b *strings.Builder, clues []model.Clue) {
	if len(clues) == 0 {
		fmt.Fprintln(b, "  (none)")
		return
	}
	for _, clue := range clues {
		if clue.Text != "" {
			fmt.Fprintf(b, "  %d. %s (%d letters)\n", clue.Number, clue.Text, clue.Length)
		} else {
			fmt.Fprintf(b, "  %d. (%d letters)\n", clue.Number, clue.Length)
		}
	}
}
