// Package cli — wordsearch.go implements the "puzzlepress wordsearch" command.
//
// The command resolves a word list (file, named built-in theme, or a
// seeded random built-in theme), assembles a word-search puzzle through
// the builder registry, and prints it as a text grid with a word bank, or
// as JSON.
package cli

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/puzzlepress/internal/assemble"
	"github.com/mmr-tortoise/puzzlepress/internal/model"
	"github.com/mmr-tortoise/puzzlepress/internal/wordlist"
)

// wordsearchFlags holds the flag values for the wordsearch command.
// These are bound to cobra flags in NewWordsearchCommand.
type wordsearchFlags struct {
	size     int    // --size: square grid edge length
	width    int    // --width: overrides size horizontally
	height   int    // --height: overrides size vertically
	theme    string // --theme: built-in word bank name
	words    string // --words: word list file path (YAML or JSONC)
	seed     int64  // --seed: RNG seed for reproducible puzzles
	maxWords int    // --max-words: cap on words drawn from the list
}

// NewWordsearchCommand creates the "wordsearch" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewWordsearchCommand(reg *assemble.Registry) *cobra.Command {
	flags := &wordsearchFlags{}

	cmd := &cobra.Command{
		Use:   "wordsearch",
		Short: "Generate a word-search puzzle",
		Long: `Generate a word-search puzzle from a built-in theme or a word list file.

Words are hidden in any of eight directions and may share letters; the
remaining cells are filled with random letters. Words that do not fit are
listed as skipped rather than failing the run.

Examples:
  puzzlepress wordsearch
  puzzlepress wordsearch --theme ocean --size 12 --seed 7
  puzzlepress wordsearch --words ./mylist.yaml --width 20 --height 10
  puzzlepress wordsearch --theme space --json`,

		// No positional arguments; everything is flag-driven.
		Args: cobra.NoArgs,

		// RunE is used instead of Run so we can return errors. Cobra will
		// pass them to the Execute error handler in root.go.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWordsearch(cmd, reg, flags)
		},
	}

	// Register command-specific flags.
	cmd.Flags().IntVar(&flags.size, "size", 15, "Square grid size")
	cmd.Flags().IntVar(&flags.width, "width", 0, "Grid width (overrides --size)")
	cmd.Flags().IntVar(&flags.height, "height", 0, "Grid height (overrides --size)")
	cmd.Flags().StringVar(&flags.theme, "theme", "", "Built-in word bank (see 'puzzlepress themes')")
	cmd.Flags().StringVar(&flags.words, "words", "", "Word list file (.yaml, .yml, .json, .jsonc)")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "RNG seed (default: current time)")
	cmd.Flags().IntVar(&flags.maxWords, "max-words", 10, "Maximum words to draw from the list (0 = all)")

	return cmd
}

// runWordsearch is the main logic function for the wordsearch command.
func runWordsearch(cmd *cobra.Command, reg *assemble.Registry, flags *wordsearchFlags) error {
	// Step 1: Resolve the seed. An explicit --seed (even 0) is honored
	// for reproducibility; otherwise the current time picks one.
	seed := resolveSeed(cmd, flags.seed)
	verbosef("seed: %d", seed)

	// Step 2: Resolve grid dimensions. --width/--height refine --size.
	width, height := flags.size, flags.size
	if flags.width > 0 {
		width = flags.width
	}
	if flags.height > 0 {
		height = flags.height
	}

	// Step 3: Resolve the word list.
	list, err := resolveList(model.KindWordSearch, flags.words, flags.theme, seed)
	if err != nil {
		return err
	}
	verbosef("word list: %s (%d words)", list.Theme, len(list.Entries))

	// Step 4: Build the assembler through the registry and generate.
	builder, err := reg.Lookup(model.KindWordSearch)
	if err != nil {
		return err
	}
	puzzle, err := builder(assemble.Options{
		Kind:     model.KindWordSearch,
		Width:    width,
		Height:   height,
		Seed:     seed,
		MaxWords: flags.maxWords,
	}).Assemble(list)
	if err != nil {
		return err
	}
	verbosef("placed %d words, skipped %d", len(puzzle.Placements), len(puzzle.Skipped))

	// Step 5: Output.
	if jsonOutput {
		return printJSON(cmd, puzzle)
	}
	return printText(cmd, renderWordSearch(puzzle))
}

// resolveSeed returns the explicit --seed value when the flag was set on
// the command line, and a time-derived seed otherwise. The resolved seed
// is recorded on the Puzzle, so even a time-seeded run can be reproduced.
func resolveSeed(cmd *cobra.Command, flagValue int64) int64 {
	if cmd.Flags().Changed("seed") {
		return flagValue
	}
	return time.Now().UnixNano()
}

// resolveList picks the word list source in priority order: an explicit
// file, then a named built-in theme, then a built-in theme chosen under
// the seed.
func resolveList(kind model.Kind, wordsFile, theme string, seed int64) (*wordlist.List, error) {
	switch {
	case wordsFile != "":
		return wordlist.LoadFile(wordsFile)
	case theme != "":
		return wordlist.Builtin(kind, theme)
	default:
		return wordlist.RandomBuiltin(kind, rand.New(rand.NewSource(seed))), nil
	}
}
