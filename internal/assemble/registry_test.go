package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/puzzlepress/internal/model"
)

// TestDefaultRegistry verifies that the default registry carries both
// built-in kinds and that each builder produces a working assembler.
func TestDefaultRegistry(t *testing.T) {
	reg := Default()

	assert.Equal(t, []model.Kind{model.KindCrossword, model.KindWordSearch}, reg.Kinds())

	for _, kind := range reg.Kinds() {
		builder, err := reg.Lookup(kind)
		require.NoError(t, err)

		asm := builder(Options{Kind: kind, Width: 8, Height: 8, Seed: 1})
		puzzle, err := asm.Assemble(mustList(t, "CAT", "TAG"))
		require.NoError(t, err)
		assert.Equal(t, kind, puzzle.Kind)
	}
}

// TestDefaultRegistry_IndependentValues pins the no-shared-state contract:
// each Default() call returns a registry the caller owns outright.
func TestDefaultRegistry_IndependentValues(t *testing.T) {
	a := Default()
	b := Default()

	// Mutating one registry's contents must not leak into the other.
	require.Error(t, a.Register(model.KindWordSearch, New)) // duplicate in a
	assert.Len(t, b.Kinds(), 2)
	assert.NotSame(t, a, b)
}

// TestRegistry_Register covers duplicate and invalid-kind registration.
func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.Register(model.KindWordSearch, New))
	assert.Error(t, reg.Register(model.KindWordSearch, New), "duplicate registration must fail")
	assert.Error(t, reg.Register(model.Kind("maze"), New), "unknown kind must fail")

	assert.Equal(t, []model.Kind{model.KindWordSearch}, reg.Kinds())
}

// TestRegistry_LookupUnknown verifies the error for a kind the registry
// does not hold.
func TestRegistry_LookupUnknown(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(model.KindWordSearch, New))

	_, err := reg.Lookup(model.KindCrossword)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "crossword")
	assert.Contains(t, err.Error(), "wordsearch", "error should list registered kinds")
}
