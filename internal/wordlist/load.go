package wordlist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/puzzlepress/internal/model"
)

// fileDocument mirrors the on-disk word list format, shared between the
// YAML and JSONC loaders:
//
//	theme: ocean
//	words:
//	  - word: CORAL
//	    clue: Marine organism forming reefs
//	  - word: WHALE
//
// Clues are optional; word searches ignore them entirely.
type fileDocument struct {
	Theme string      `yaml:"theme" json:"theme"`
	Words []fileEntry `yaml:"words" json:"words"`
}

// fileEntry is one word/clue pair of a word list file.
type fileEntry struct {
	Word string `yaml:"word" json:"word"`
	Clue string `yaml:"clue,omitempty" json:"clue,omitempty"`
}

// LoadFile reads a word list from a YAML (.yaml/.yml) or JSONC
// (.json/.jsonc) file and runs it through the standard validation in New.
//
// JSON files are stripped of comments and trailing commas before parsing,
// so hand-maintained clue files can carry // annotations. A missing file
// returns a CLIError with ExitWordListNotFound; malformed content or an
// unsupported extension returns ExitInvalidInput.
func LoadFile(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitWordListNotFound,
				fmt.Sprintf("word list not found: %s", path),
				err,
			)
		}
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}

	var doc fileDocument
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, model.WrapCLIError(
				model.ExitInvalidInput,
				fmt.Sprintf("failed to parse word list %s", path),
				err,
			)
		}
	case ".json", ".jsonc":
		// Strip JSONC comments (// and /* */) and trailing commas before
		// handing the document to encoding/json.
		if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
			return nil, model.WrapCLIError(
				model.ExitInvalidInput,
				fmt.Sprintf("failed to parse word list %s", path),
				err,
			)
		}
	default:
		return nil, model.InvalidInputf(
			"unsupported word list format %q (expected .yaml, .yml, .json, or .jsonc)", ext)
	}

	pairs := make([]model.WordEntry, 0, len(doc.Words))
	for _, w := range doc.Words {
		pairs = append(pairs, model.WordEntry{Word: w.Word, Clue: w.Clue})
	}

	list, err := New(doc.Theme, pairs)
	if err != nil {
		// Keep the file path in the message; the caller only passed a path
		// and should not have to guess which file was bad.
		if cliErr, ok := err.(*model.CLIError); ok {
			cliErr.Message = fmt.Sprintf("%s: %s", path, cliErr.Message)
		}
		return nil, err
	}
	return list, nil
}
