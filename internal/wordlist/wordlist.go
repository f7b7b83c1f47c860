package wordlist

import (
	"math/rand"
	"strings"

	"github.com/mmr-tortoise/puzzlepress/internal/model"
)

// List is an ordered, validated sequence of word entries. Once built it is
// never mutated; Sample returns fresh copies.
type List struct {
	// Theme is an optional display name for the word set ("ocean",
	// "Science", ...). Empty for ad-hoc caller input without one.
	Theme string

	// Entries holds the normalized (word, clue) pairs in input order.
	Entries []model.WordEntry
}

// New normalizes and validates a sequence of (word, clue) pairs into a
// List.
//
// Normalization: surrounding whitespace is trimmed from words and clues,
// and ASCII letter case is folded to upper. Validation then requires every
// word to be at least two characters of strictly A-Z. An empty input
// sequence, or any word that fails validation, returns a CLIError with
// ExitInvalidInput — invalid input is fatal for the call, never coerced.
func New(theme string, pairs []model.WordEntry) (*List, error) {
	if len(pairs) == 0 {
		return nil, model.NewCLIError(model.ExitInvalidInput, "word list is empty")
	}

	entries := make([]model.WordEntry, 0, len(pairs))
	for _, p := range pairs {
		word := strings.ToUpper(strings.TrimSpace(p.Word))

		if len(word) < 2 {
			return nil, model.InvalidInputf("word %q is shorter than 2 letters", p.Word)
		}
		for _, r := range word {
			if r < 'A' || r > 'Z' {
				return nil, model.InvalidInputf("word %q contains non-alphabetic characters", p.Word)
			}
		}

		entries = append(entries, model.WordEntry{
			Word: word,
			Clue: strings.TrimSpace(p.Clue),
		})
	}

	return &List{Theme: theme, Entries: entries}, nil
}

// NewFromWords is a clue-less convenience wrapper around New, used for
// word-search input where clues play no role.
func NewFromWords(theme string, words []string) (*List, error) {
	pairs := make([]model.WordEntry, 0, len(words))
	for _, w := range words {
		pairs = append(pairs, model.WordEntry{Word: w})
	}
	return New(theme, pairs)
}

// Sample returns a copy of the list shuffled under rng and truncated to at
// most max entries. max <= 0 means "no cap". The receiver is left
// untouched, so one List can feed several placement attempts, each with
// its own RNG state.
func (l *List) Sample(rng *rand.Rand, max int) *List {
	entries := make([]model.WordEntry, len(l.Entries))
	copy(entries, l.Entries)

	rng.Shuffle(len(entries), func(i, j int) {
		entries[i], entries[j] = entries[j], entries[i]
	})

	if max > 0 && len(entries) > max {
		entries = entries[:max]
	}

	return &List{Theme: l.Theme, Entries: entries}
}
