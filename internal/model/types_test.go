package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseKind verifies string-to-kind conversion, including case
// normalization and error cases.
func TestParseKind(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
		hasError bool
	}{
		{"wordsearch", KindWordSearch, false},
		{"crossword", KindCrossword, false},
		{"WordSearch", KindWordSearch, false}, // case insensitive
		{"CROSSWORD", KindCrossword, false},   // case insensitive
		{"sudoku", "", true},                  // unknown value
		{"", "", true},                        // empty string
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseKind(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

// TestKind_IsValid checks that only defined kinds pass validation.
func TestKind_IsValid(t *testing.T) {
	assert.True(t, KindWordSearch.IsValid())
	assert.True(t, KindCrossword.IsValid())
	assert.False(t, Kind("maze").IsValid())
	assert.False(t, Kind("").IsValid())
}

// TestDirection_Delta verifies the step vector of every direction.
// The deltas drive all placement geometry, so each one is pinned here.
func TestDirection_Delta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dr, dc int
	}{
		{DirRight, 0, 1},
		{DirDown, 1, 0},
		{DirLeft, 0, -1},
		{DirUp, -1, 0},
		{DirDownRight, 1, 1},
		{DirDownLeft, 1, -1},
		{DirUpRight, -1, 1},
		{DirUpLeft, -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			dr, dc := tt.dir.Delta()
			assert.Equal(t, tt.dr, dr)
			assert.Equal(t, tt.dc, dc)
		})
	}
}

// TestAllDirections ensures the direction table is complete and every
// entry is valid. Placement code relies on len(AllDirections) == 8.
func TestAllDirections(t *testing.T) {
	require.Len(t, AllDirections, 8)

	seen := make(map[Direction]bool)
	for _, d := range AllDirections {
		assert.True(t, d.IsValid(), "direction %q should be valid", d)
		assert.False(t, seen[d], "direction %q listed twice", d)
		seen[d] = true
	}

	assert.False(t, Direction("sideways").IsValid())
	assert.False(t, Direction("").IsValid())
}

// TestPlacedWord_Cells verifies covered-cell enumeration for a few
// representative directions.
func TestPlacedWord_Cells(t *testing.T) {
	right := PlacedWord{Entry: WordEntry{Word: "CAT"}, Row: 2, Col: 1, Direction: DirRight}
	assert.Equal(t, [][2]int{{2, 1}, {2, 2}, {2, 3}}, right.Cells())

	upLeft := PlacedWord{Entry: WordEntry{Word: "DOG"}, Row: 4, Col: 4, Direction: DirUpLeft}
	assert.Equal(t, [][2]int{{4, 4}, {3, 3}, {2, 2}}, upLeft.Cells())
}

// TestNewGrid verifies grid allocation and bounds checking.
func TestNewGrid(t *testing.T) {
	g := NewGrid(5, 3)

	assert.Equal(t, 5, g.Width)
	assert.Equal(t, 3, g.Height)
	require.Len(t, g.Cells, 3)
	for _, row := range g.Cells {
		require.Len(t, row, 5)
	}

	assert.True(t, g.InBounds(0, 0))
	assert.True(t, g.InBounds(2, 4))
	assert.False(t, g.InBounds(3, 0))
	assert.False(t, g.InBounds(0, 5))
	assert.False(t, g.InBounds(-1, 0))
}

// TestCLIError verifies message formatting, wrapping, and unwrapping.
func TestCLIError(t *testing.T) {
	plain := NewCLIError(ExitInvalidInput, "word list is empty")
	assert.Equal(t, "word list is empty", plain.Error())
	assert.Equal(t, ExitInvalidInput, plain.Code)
	assert.Nil(t, plain.Unwrap())

	underlying := errors.New("open failed")
	wrapped := WrapCLIError(ExitWordListNotFound, "word list not found", underlying)
	assert.Equal(t, "word list not found: open failed", wrapped.Error())
	assert.True(t, errors.Is(wrapped, underlying))

	formatted := InvalidInputf("word %q contains non-alphabetic characters", "C4T")
	assert.Equal(t, ExitInvalidInput, formatted.Code)
	assert.Contains(t, formatted.Error(), `"C4T"`)
}
