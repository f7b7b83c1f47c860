package wordlist

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/mmr-tortoise/puzzlepress/internal/model"
)

// searchBanks holds the built-in word-search themes. Word searches need no
// clues, so these are plain word sets.
var searchBanks = map[string][]string{
	"animals": {
		"ELEPHANT", "GIRAFFE", "PENGUIN", "DOLPHIN", "TIGER",
		"OCTOPUS", "FALCON", "TURTLE", "JAGUAR", "COBRA",
	},
	"space": {
		"GALAXY", "NEBULA", "PLANET", "COMET", "ORBIT",
		"QUASAR", "PULSAR", "METEOR", "SATURN", "VENUS",
	},
	"food": {
		"BANANA", "MANGO", "PIZZA", "SUSHI", "BREAD",
		"CHEESE", "SALMON", "GARLIC", "PEPPER", "WAFFLE",
	},
	"weather": {
		"THUNDER", "BREEZE", "STORM", "FROST", "CLOUD",
		"TORNADO", "HAIL", "FOGGY", "SLEET", "DRIZZLE",
	},
	"ocean": {
		"CORAL", "WHALE", "SHARK", "TIDE", "REEF",
		"ANCHOR", "TRENCH", "KELP", "HARBOR", "LAGOON",
	},
	"music": {
		"GUITAR", "PIANO", "DRUMS", "VIOLIN", "FLUTE",
		"TEMPO", "CHORD", "MELODY", "RHYTHM", "BASS",
	},
}

// crosswordBanks holds the built-in crossword themes, each word paired
// with its clue.
var crosswordBanks = map[string][]model.WordEntry{
	"geography": {
		{Word: "RIVER", Clue: "A flowing body of water"},
		{Word: "MOUNTAIN", Clue: "A large natural elevation"},
		{Word: "ISLAND", Clue: "Land surrounded by water"},
		{Word: "DESERT", Clue: "An arid, sandy region"},
		{Word: "CANYON", Clue: "A deep gorge in the earth"},
		{Word: "GLACIER", Clue: "A slow-moving mass of ice"},
		{Word: "PLATEAU", Clue: "A flat elevated landform"},
		{Word: "VOLCANO", Clue: "An opening that erupts lava"},
		{Word: "VALLEY", Clue: "Low area between hills"},
		{Word: "OCEAN", Clue: "A vast body of salt water"},
		{Word: "DELTA", Clue: "Sediment deposit at river mouth"},
		{Word: "TUNDRA", Clue: "Cold treeless biome"},
	},
	"science": {
		{Word: "ATOM", Clue: "Smallest unit of an element"},
		{Word: "CELL", Clue: "Basic unit of life"},
		{Word: "GRAVITY", Clue: "Force that pulls objects together"},
		{Word: "PHOTON", Clue: "A particle of light"},
		{Word: "ENZYME", Clue: "A biological catalyst"},
		{Word: "QUARK", Clue: "Subatomic particle in protons"},
		{Word: "PLASMA", Clue: "Fourth state of matter"},
		{Word: "NEURON", Clue: "A nerve cell"},
		{Word: "PRISM", Clue: "Splits white light into colors"},
		{Word: "ORBIT", Clue: "Path around a celestial body"},
		{Word: "GENE", Clue: "Unit of heredity"},
		{Word: "LENS", Clue: "Focuses light rays"},
	},
	"literature": {
		{Word: "NOVEL", Clue: "A long fictional narrative"},
		{Word: "PROSE", Clue: "Ordinary written language"},
		{Word: "FABLE", Clue: "A short moral story"},
		{Word: "VERSE", Clue: "A line of poetry"},
		{Word: "GENRE", Clue: "A category of literature"},
		{Word: "PLOT", Clue: "Sequence of story events"},
		{Word: "THEME", Clue: "Central idea of a work"},
		{Word: "STANZA", Clue: "A grouped set of poem lines"},
		{Word: "IRONY", Clue: "Opposite of what is expected"},
		{Word: "SATIRE", Clue: "Using humor to criticize"},
		{Word: "EPIC", Clue: "A long heroic narrative poem"},
		{Word: "MYTH", Clue: "A traditional symbolic story"},
	},
	"nature": {
		{Word: "FOREST", Clue: "A dense area of trees"},
		{Word: "CORAL", Clue: "Marine organism forming reefs"},
		{Word: "POLLEN", Clue: "Powder from flowering plants"},
		{Word: "FALCON", Clue: "A fast bird of prey"},
		{Word: "MAPLE", Clue: "Tree with lobed leaves"},
		{Word: "LICHEN", Clue: "Fungus-algae symbiosis"},
		{Word: "MOSS", Clue: "Small green flowerless plant"},
		{Word: "HERON", Clue: "A long-legged wading bird"},
		{Word: "FERN", Clue: "A feathery leafed plant"},
		{Word: "BIRCH", Clue: "A white-barked tree"},
		{Word: "ACORN", Clue: "Seed of an oak tree"},
		{Word: "BROOK", Clue: "A small stream"},
	},
}

// Themes returns the sorted built-in theme names for a puzzle kind.
// Sorting keeps CLI output and seeded random selection deterministic
// (map iteration order is not).
func Themes(kind model.Kind) []string {
	var names []string
	switch kind {
	case model.KindCrossword:
		for name := range crosswordBanks {
			names = append(names, name)
		}
	default:
		for name := range searchBanks {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Builtin returns the named built-in word bank for a puzzle kind.
// Unknown themes return a CLIError with ExitUnknownTheme listing the
// valid names.
func Builtin(kind model.Kind, theme string) (*List, error) {
	switch kind {
	case model.KindCrossword:
		if pairs, ok := crosswordBanks[theme]; ok {
			return New(theme, pairs)
		}
	default:
		if words, ok := searchBanks[theme]; ok {
			return NewFromWords(theme, words)
		}
	}
	return nil, model.NewCLIError(model.ExitUnknownTheme,
		fmt.Sprintf("unknown %s theme %q (available: %s)",
			kind, theme, strings.Join(Themes(kind), ", ")))
}

// RandomBuiltin picks one of the built-in banks for a puzzle kind under
// the given RNG. Selection draws from the sorted theme names, so a fixed
// seed always lands on the same bank.
func RandomBuiltin(kind model.Kind, rng *rand.Rand) *List {
	names := Themes(kind)
	list, err := Builtin(kind, names[rng.Intn(len(names))])
	if err != nil {
		// The banks above are static and validated by tests; a failure
		// here is a programming error.
		panic(err)
	}
	return list
}
