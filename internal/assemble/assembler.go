package assemble

import (
	"math/rand"

	"github.com/mmr-tortoise/puzzlepress/internal/crossword"
	"github.com/mmr-tortoise/puzzlepress/internal/model"
	"github.com/mmr-tortoise/puzzlepress/internal/wordlist"
	"github.com/mmr-tortoise/puzzlepress/internal/wordsearch"
)

const (
	// defaultMinPlacedFraction is the share of words that must place for
	// an attempt to be accepted without retrying.
	defaultMinPlacedFraction = 0.6

	// defaultMaxAttempts bounds the whole-placement retries. Attempt k
	// derives its RNG from Seed+k, so every attempt is reproducible.
	defaultMaxAttempts = 3
)

// Options configures one assembly call.
type Options struct {
	// Kind selects the puzzle variant. Required.
	Kind model.Kind

	// Width and Height are the word-search grid dimensions. Required
	// positive for word searches; ignored for crosswords, whose bounds
	// are computed from the placements.
	Width  int
	Height int

	// Seed drives all randomness. The same options and word list
	// reproduce the puzzle byte for byte.
	Seed int64

	// MaxWords caps how many entries are drawn (after a seeded shuffle)
	// from the word list. <= 0 uses the whole list.
	MaxWords int

	// Weights tunes crossword candidate scoring. The zero value means
	// crossword.DefaultWeights.
	Weights crossword.Weights

	// MinPlacedFraction overrides defaultMinPlacedFraction when > 0.
	MinPlacedFraction float64

	// MaxAttempts overrides defaultMaxAttempts when > 0.
	MaxAttempts int
}

// minPlacedFraction returns the configured or default acceptance threshold.
func (o Options) minPlacedFraction() float64 {
	if o.MinPlacedFraction > 0 {
		return o.MinPlacedFraction
	}
	return defaultMinPlacedFraction
}

// maxAttempts returns the configured or default attempt bound.
func (o Options) maxAttempts() int {
	if o.MaxAttempts > 0 {
		return o.MaxAttempts
	}
	return defaultMaxAttempts
}

// Assembler produces finished puzzles from word lists according to its
// options. An Assembler is stateless between calls; every Assemble call
// derives fresh RNG state from the seed.
type Assembler struct {
	opts Options
}

// New creates an Assembler with the given options. Option validation
// happens per Assemble call, so a misconfigured Assembler fails loudly on
// use rather than at construction.
func New(opts Options) *Assembler {
	return &Assembler{opts: opts}
}

// Assemble validates the input, places the words with bounded retries, and
// returns the frozen Puzzle.
//
// Per-word placement failures are not errors: unplaceable words end up in
// Puzzle.Skipped. If an attempt places fewer than the minimum fraction of
// words, the whole placement is retried with a derived seed, and after the
// attempt budget the best attempt seen (most words placed; earliest
// attempt on ties, so the plain seed wins when retrying buys nothing) is
// returned. The only fatal outcome is invalid input — an empty list or,
// for word searches, non-positive dimensions — which is rejected before
// any grid is allocated.
func (a *Assembler) Assemble(list *wordlist.List) (*model.Puzzle, error) {
	if err := a.validate(list); err != nil {
		return nil, err
	}

	var best *model.Puzzle
	for attempt := 0; attempt < a.opts.maxAttempts(); attempt++ {
		puzzle := a.buildAttempt(list, attempt)

		if best == nil || len(puzzle.Placements) > len(best.Placements) {
			best = puzzle
		}

		total := len(puzzle.Placements) + len(puzzle.Skipped)
		if float64(len(puzzle.Placements)) >= a.opts.minPlacedFraction()*float64(total) {
			return puzzle, nil
		}
	}

	// Retries exhausted: best effort, with Skipped telling the caller
	// which words did not make it.
	return best, nil
}

// validate rejects invalid input before any grid is allocated.
func (a *Assembler) validate(list *wordlist.List) error {
	if !a.opts.Kind.IsValid() {
		return model.InvalidInputf("unknown puzzle kind: %q", string(a.opts.Kind))
	}
	if list == nil || len(list.Entries) == 0 {
		return model.NewCLIError(model.ExitInvalidInput, "word list is empty")
	}
	if a.opts.Kind == model.KindWordSearch && (a.opts.Width <= 0 || a.opts.Height <= 0) {
		return model.InvalidInputf("grid dimensions must be positive, got %dx%d",
			a.opts.Width, a.opts.Height)
	}
	return nil
}

// buildAttempt runs one complete placement pass. Everything — word
// sampling, placement, filling — draws from a single RNG seeded with
// Seed+attempt, so each attempt is independently reproducible.
func (a *Assembler) buildAttempt(list *wordlist.List, attempt int) *model.Puzzle {
	rng := rand.New(rand.NewSource(a.opts.Seed + int64(attempt)))
	entries := list.Sample(rng, a.opts.MaxWords).Entries

	switch a.opts.Kind {
	case model.KindCrossword:
		return a.buildCrossword(list.Theme, entries, rng)
	default:
		return a.buildWordSearch(list.Theme, entries, rng)
	}
}

// buildWordSearch places, fills, and freezes one word-search attempt.
func (a *Assembler) buildWordSearch(theme string, entries []model.WordEntry, rng *rand.Rand) *model.Puzzle {
	res := wordsearch.Place(entries, a.opts.Width, a.opts.Height, rng)
	res.Board.FillRandom(rng)

	return &model.Puzzle{
		Kind:       model.KindWordSearch,
		Theme:      theme,
		Seed:       a.opts.Seed,
		Grid:       res.Board.Grid(),
		Placements: res.Placements,
		Skipped:    res.Skipped,
	}
}

// buildCrossword places, numbers, and freezes one crossword attempt.
func (a *Assembler) buildCrossword(theme string, entries []model.WordEntry, rng *rand.Rand) *model.Puzzle {
	res := crossword.Place(entries, rng, a.opts.Weights)

	grid := res.Grid()
	crossword.Number(&grid)

	return &model.Puzzle{
		Kind:       model.KindCrossword,
		Theme:      theme,
		Seed:       a.opts.Seed,
		Grid:       grid,
		Placements: res.Placements,
		Skipped:    res.Skipped,
		Clues:      crossword.BuildClues(&grid, res.Placements),
	}
}
