package typeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	supers, types, subs, err := Split("Legendary Creature — Elf Warrior")
	require.NoError(t, err)
	assert.Equal(t, []string{"Legendary"}, supers)
	assert.Equal(t, []string{"Creature"}, types)
	assert.Equal(t, []string{"Elf", "Warrior"}, subs)
}

func TestSplitWithoutSubtypes(t *testing.T) {
	supers, types, subs, err := Split("Instant")
	require.NoError(t, err)
	assert.Empty(t, supers)
	assert.Equal(t, []string{"Instant"}, types)
	assert.Empty(t, subs)
}

func TestSplitPreservesOrder(t *testing.T) {
	supers, types, _, err := Split("Snow Legendary Artifact Creature")
	require.NoError(t, err)
	assert.Equal(t, []string{"Snow", "Legendary"}, supers)
	assert.Equal(t, []string{"Artifact", "Creature"}, types)
}

func TestSplitCorruptedBasic(t *testing.T) {
	for _, line := range []string{"Bas1c Land — Plains", "B‌asic Land — Plains"} {
		supers, types, subs, err := Split(line)
		require.NoError(t, err)
		assert.Equal(t, []string{"Basic"}, supers)
		assert.Equal(t, []string{"Land"}, types)
		assert.Equal(t, []string{"Plains"}, subs)
	}
}

func TestSplitIgnoresDoubledSpaces(t *testing.T) {
	supers, types, _, err := Split("Legendary  Creature — Elf")
	require.NoError(t, err)
	assert.Equal(t, []string{"Legendary"}, supers)
	assert.Equal(t, []string{"Creature"}, types)
}

func TestSplitRejectsUnknownToken(t *testing.T) {
	_, _, _, err := Split("Legendary Critter")
	require.ErrorIs(t, err, ErrUnknownType)
	assert.Contains(t, err.Error(), "Critter")
}

func TestSplitIdempotent(t *testing.T) {
	lines := []string{
		"Legendary Creature — Elf Warrior",
		"Basic Land — Forest",
		"Artifact",
		"Snow Enchantment — Aura",
	}
	for _, line := range lines {
		supers, types, subs, err := Split(line)
		require.NoError(t, err)
		again := Join(supers, types, subs)
		supers2, types2, subs2, err := Split(again)
		require.NoError(t, err)
		assert.Equal(t, supers, supers2)
		assert.Equal(t, types, types2)
		assert.Equal(t, subs, subs2)
	}
}
