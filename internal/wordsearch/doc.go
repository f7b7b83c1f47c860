// Package wordsearch places words into a fixed-size grid and fills the
// leftover cells with random letters.
//
// Placement is a bounded randomized search: each word gets up to 100
// trials of a random start cell and one of the eight directions, and the
// first trial where every covered cell is empty or already holds the
// required letter wins. Words that exhaust their trials are skipped, which
// is a normal outcome — a 3x3 grid asked to hold ELEPHANT simply reports
// the word as skipped.
//
// All randomness comes from the caller's *rand.Rand, so a fixed seed
// reproduces the grid exactly.
package wordsearch
