// Package model defines the domain types and value objects for the
// puzzlepress generator.
//
// This package contains pure data structures with no external dependencies.
// A Puzzle and its Grid are built once by the assembly pipeline
// (internal/assemble) and never mutated afterwards; downstream consumers
// (the CLI, or an external document renderer) treat them as frozen values.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
