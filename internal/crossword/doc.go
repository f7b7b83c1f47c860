// Package crossword places words into a dynamically sized grid where every
// word after the first crosses at least one already-placed word.
//
// Placement is a greedy heuristic, not a global optimum solver: words are
// taken longest-first, and for each word every possible crossing with the
// letters already on the board is scored (more crossings good, bounding-box
// growth bad). The best-scoring legal candidate wins; words with no legal
// candidate are skipped rather than placed disconnected. Crossword layout
// is NP-hard in general, so bounded greedy with graceful degradation is the
// practical substitute for optimality.
//
// The board grows as needed during placement and is normalized to
// non-negative coordinates at the end. Cells no word passes through are
// blocked, and entry start cells are numbered in row-major scan order.
package crossword
