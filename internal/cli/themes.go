// Package cli — themes.go implements the "puzzlepress themes" command,
// which lists the built-in word banks available per puzzle kind.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/puzzlepress/internal/model"
	"github.com/mmr-tortoise/puzzlepress/internal/wordlist"
)

// NewThemesCommand creates the "themes" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewThemesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List built-in word bank themes",
		Long: `List the built-in word bank themes for each puzzle kind.

Pass a theme name to the wordsearch or crossword command via --theme.

Examples:
  puzzlepress themes
  puzzlepress themes --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemes(cmd)
		},
	}
}

// runThemes prints the theme listing as text or JSON.
func runThemes(cmd *cobra.Command) error {
	kinds := []model.Kind{model.KindWordSearch, model.KindCrossword}

	if jsonOutput {
		listing := make(map[string][]string, len(kinds))
		for _, kind := range kinds {
			listing[kind.String()] = wordlist.Themes(kind)
		}
		return printJSON(cmd, listing)
	}

	var b strings.Builder
	for _, kind := range kinds {
		fmt.Fprintf(&b, "%s:\n", kind)
		for _, theme := range wordlist.Themes(kind) {
			fmt.Fprintf(&b, "  %s\n", theme)
		}
	}
	return printText(cmd, b.String())
}
