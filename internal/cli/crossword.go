// Package cli — crossword.go implements the "puzzlepress crossword" command.
//
// Crossword grids size themselves from the placements, so unlike
// wordsearch there are no dimension flags; instead the candidate-scoring
// weights are exposed for tuning.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/puzzlepress/internal/assemble"
	"github.com/mmr-tortoise/puzzlepress/internal/crossword"
	"github.com/mmr-tortoise/puzzlepress/internal/model"
)

// crosswordFlags holds the flag values for the crossword command.
// These are bound to cobra flags in NewCrosswordCommand.
type crosswordFlags struct {
	theme              string // --theme: built-in clue bank name
	words              string // --words: word list file path (YAML or JSONC)
	seed               int64  // --seed: RNG seed for reproducible puzzles
	maxWords           int    // --max-words: cap on words drawn from the list
	intersectionWeight int    // --intersection-weight: reward per extra crossing
	growthWeight       int    // --growth-weight: penalty per cell of bounding-box growth
}

// NewCrosswordCommand creates the "crossword" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewCrosswordCommand(reg *assemble.Registry) *cobra.Command {
	flags := &crosswordFlags{}

	cmd := &cobra.Command{
		Use:   "crossword",
		Short: "Generate a crossword puzzle",
		Long: `Generate a crossword puzzle from a built-in clue bank or a word list file.

Every word crosses at least one other word; words with no possible
crossing are listed as skipped. The grid sizes itself to the placements
and numbers the across/down entry starts.

Examples:
  puzzlepress crossword
  puzzlepress crossword --theme science --seed 7
  puzzlepress crossword --words ./clues.jsonc --max-words 8
  puzzlepress crossword --theme geography --json`,

		Args: cobra.NoArgs,

		// RunE returns an error to the root command's error handler.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCrossword(cmd, reg, flags)
		},
	}

	// Register command-specific flags. The weight defaults mirror
	// crossword.DefaultWeights so --help documents the real values.
	cmd.Flags().StringVar(&flags.theme, "theme", "", "Built-in clue bank (see 'puzzlepress themes')")
	cmd.Flags().StringVar(&flags.words, "words", "", "Word list file (.yaml, .yml, .json, .jsonc)")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "RNG seed (default: current time)")
	cmd.Flags().IntVar(&flags.maxWords, "max-words", 10, "Maximum words to draw from the list (0 = all)")
	cmd.Flags().IntVar(&flags.intersectionWeight, "intersection-weight",
		crossword.DefaultWeights.Intersection, "Placement score reward per crossing")
	cmd.Flags().IntVar(&flags.growthWeight, "growth-weight",
		crossword.DefaultWeights.Growth, "Placement score penalty per cell of grid growth")

	return cmd
}

// runCrossword is the main logic function for the crossword command.
func runCrossword(cmd *cobra.Command, reg *assemble.Registry, flags *crosswordFlags) error {
	seed := resolveSeed(cmd, flags.seed)
	verbosef("seed: %d", seed)

	list, err := resolveList(model.KindCrossword, flags.words, flags.theme, seed)
	if err != nil {
		return err
	}
	verbosef("word list: %s (%d words)", list.Theme, len(list.Entries))

	builder, err := reg.Lookup(model.KindCrossword)
	if err != nil {
		return err
	}
	puzzle, err := builder(assemble.Options{
		Kind:     model.KindCrossword,
		Seed:     seed,
		MaxWords: flags.maxWords,
		Weights: crossword.Weights{
			Intersection: flags.intersectionWeight,
			Growth:       flags.growthWeight,
		},
	}).Assemble(list)
	if err != nil {
		return err
	}
	verbosef("placed %d words, skipped %d, grid %dx%d",
		len(puzzle.Placements), len(puzzle.Skipped), puzzle.Grid.Width, puzzle.Grid.Height)

	if jsonOutput {
		return printJSON(cmd, puzzle)
	}
	return printText(cmd, renderCrossword(puzzle))
}
