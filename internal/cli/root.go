// Package cli implements the cobra-based CLI commands for puzzlepress.
//
// Each subcommand (wordsearch, crossword, themes) is defined in its own
// file within this package. This file defines the root command that serves
// as the parent for all subcommands and handles global flags.
//
// The commands are a thin presentation shim over internal/assemble: they
// resolve a word list, build an Assembler through the injected builder
// registry, and print the resulting Puzzle as text or JSON. Document
// rendering (HTML, PDF, pagination) is deliberately not here — that is the
// job of whatever consumes the Puzzle value.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/puzzlepress/internal/assemble"
	"github.com/mmr-tortoise/puzzlepress/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	// When true, the full Puzzle value is emitted for machine consumption.
	// When false (default), output is a human-readable text rendering.
	jsonOutput bool

	// verbose enables detailed logging output for debugging.
	// When true, additional information (resolved seed, chosen theme,
	// placement counts) is printed to stderr.
	verbose bool
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// The builder registry is injected here and threaded into the generating
// subcommands — there is no global registration anywhere, so embedding
// callers can wire a registry with different builders without touching
// package state.
func NewRootCommand(reg *assemble.Registry) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "puzzlepress",
		Short: "Printable word-search and crossword generator",
		Long: `puzzlepress generates word-search and crossword puzzles from word lists.

Word lists come from built-in themed banks, or from YAML/JSONC files with
optional clues. All generation is seeded: the same seed, word list, and
options reproduce a puzzle exactly.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	// PersistentFlags are inherited by all subcommands. This is the cobra
	// mechanism for global flags — any flag defined here is automatically
	// available in every subcommand without re-declaration.
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	// Register subcommands. Each subcommand is defined in its own file
	// (wordsearch.go, crossword.go, themes.go) and returns a *cobra.Command.
	rootCmd.AddCommand(NewWordsearchCommand(reg))
	rootCmd.AddCommand(NewCrosswordCommand(reg))
	rootCmd.AddCommand(NewThemesCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// It inspects errors returned by cobra commands and translates them
// into appropriate OS exit codes. CLIError types carry their own
// exit codes; other errors default to exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		// Generic error — exit with code 1.
		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		// Errors go to stderr so stdout stays parseable.
		if data, err := json.MarshalIndent(errObj, "", "  "); err == nil {
			fmt.Fprintln(os.Stderr, string(data))
		}
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	if underlying != nil && verbose {
		fmt.Fprintf(os.Stderr, "  caused by: %v\n", underlying)
	}
}

// verbosef prints a diagnostic line to stderr when --verbose is set.
func verbosef(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
