// Package main is the entry point for the puzzlepress CLI.
//
// This binary generates word-search and crossword puzzles from word lists.
// It delegates all functionality to the internal/cli package, which
// defines cobra commands over the generator library.
//
// Build-time variables (version, commit, date) are injected via ldflags
// by GoReleaser during the release process. During development, they
// default to "dev", "none", and "unknown" respectively.
package main

import (
	"github.com/mmr-tortoise/puzzlepress/internal/assemble"
	"github.com/mmr-tortoise/puzzlepress/internal/cli"
)

// version, commit, and date are set by GoReleaser at build time
// via ldflags. They provide binary identification for the --version
// flag output.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Inject build-time version info into the CLI package.
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	// The builder registry is constructed here and injected into the
	// command tree — explicit wiring at startup, no global registration.
	rootCmd := cli.NewRootCommand(assemble.Default())
	cli.Execute(rootCmd)
}
