package card

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *log.Logger {
	return log.New(io.Discard)
}

func names(faces []*Face) []string {
	out := make([]string, len(faces))
	for i, f := range faces {
		out[i] = f.Name
	}
	return out
}

func TestSortByColorCategory(t *testing.T) {
	faces := []*Face{
		{Name: "Forest", Colors: []string{}, Types: []string{"Land"}, Supertypes: []string{"Basic"}, Subtypes: []string{"Forest"}},
		{Name: "Azorius Charm", Colors: []string{"W", "U"}, ManaCost: "{W}{U}"},
		{Name: "Angel", Colors: []string{"W"}},
		{Name: "Null Stone", Colors: []string{}, Types: []string{"Artifact"}},
		{Name: "Spirit", Colors: []string{}},
	}
	require.NoError(t, SortAndNumber(faces, discard()))
	assert.Equal(t, []string{"Spirit", "Angel", "Azorius Charm", "Null Stone", "Forest"}, names(faces))
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, []string{
		faces[0].Number, faces[1].Number, faces[2].Number, faces[3].Number, faces[4].Number,
	})
}

func TestSortHybridAfterGold(t *testing.T) {
	faces := []*Face{
		{Name: "Hybrid", Colors: []string{"W", "U"}, ManaCost: "{W/U}"},
		{Name: "Gold", Colors: []string{"W", "U"}, ManaCost: "{W}{U}"},
	}
	require.NoError(t, SortAndNumber(faces, discard()))
	assert.Equal(t, []string{"Gold", "Hybrid"}, names(faces))
}

func TestSortColorsInRankOrder(t *testing.T) {
	faces := []*Face{
		{Name: "Gnarl", Colors: []string{"G"}},
		{Name: "Bolt", Colors: []string{"R"}},
		{Name: "Grasp", Colors: []string{"B"}},
		{Name: "Counter", Colors: []string{"U"}},
		{Name: "Heal", Colors: []string{"W"}},
	}
	require.NoError(t, SortAndNumber(faces, discard()))
	assert.Equal(t, []string{"Heal", "Counter", "Grasp", "Bolt", "Gnarl"}, names(faces))
}

func TestSortBasicLands(t *testing.T) {
	basic := func(name string, subtypes ...string) *Face {
		return &Face{Name: name, Types: []string{"Land"}, Supertypes: []string{"Basic"}, Subtypes: subtypes}
	}
	faces := []*Face{
		basic("Forest", "Forest"),
		basic("Strange Basic", "Otherland"),
		basic("Island", "Island"),
		basic("Wastes"),
		basic("Plains", "Plains"),
	}
	require.NoError(t, SortAndNumber(faces, discard()))
	assert.Equal(t, []string{"Wastes", "Plains", "Island", "Forest", "Strange Basic"}, names(faces))
}

func TestSortNonbasicLandBeforeBasic(t *testing.T) {
	faces := []*Face{
		{Name: "Plains", Types: []string{"Land"}, Supertypes: []string{"Basic"}, Subtypes: []string{"Plains"}},
		{Name: "Command Tower", Types: []string{"Land"}},
	}
	require.NoError(t, SortAndNumber(faces, discard()))
	assert.Equal(t, []string{"Command Tower", "Plains"}, names(faces))
}

func TestTransformNumbering(t *testing.T) {
	faces := []*Face{
		{Name: "Aardvark", Colors: []string{"W"}},
		{Name: "Bold Hermit", Colors: []string{"W"}, Layout: "transform", Side: "a", Names: []string{"Bold Hermit", "Wild Shape"}},
		{Name: "Wild Shape", Colors: []string{"W"}, Layout: "transform", Side: "b", Names: []string{"Bold Hermit", "Wild Shape"}},
		{Name: "Curious Monk", Colors: []string{"W"}},
	}
	require.NoError(t, SortAndNumber(faces, discard()))
	assert.Equal(t, []string{"Aardvark", "Bold Hermit", "Wild Shape", "Curious Monk"}, names(faces))
	assert.Equal(t, "1", faces[0].Number)
	assert.Equal(t, "2a", faces[1].Number)
	assert.Equal(t, "2b", faces[2].Number)
	assert.Equal(t, "3", faces[3].Number)
}

func TestBackFaceBorrowsFrontName(t *testing.T) {
	// The back face sorts under its front's name, not its own.
	faces := []*Face{
		{Name: "Zzz Shape", Colors: []string{"W"}, Layout: "transform", Side: "b", Names: []string{"Bold Hermit", "Zzz Shape"}},
		{Name: "Bold Hermit", Colors: []string{"W"}, Layout: "transform", Side: "a", Names: []string{"Bold Hermit", "Zzz Shape"}},
		{Name: "Zealot", Colors: []string{"W"}},
	}
	require.NoError(t, SortAndNumber(faces, discard()))
	assert.Equal(t, []string{"Bold Hermit", "Zzz Shape", "Zealot"}, names(faces))
}

func TestBackFaceMissingFront(t *testing.T) {
	faces := []*Face{
		{Name: "Orphan Back", Colors: []string{"G"}, Layout: "transform", Side: "b", Names: []string{"Missing Front", "Orphan Back"}},
	}
	assert.Error(t, SortAndNumber(faces, discard()))
}

func TestPrintedNameOverridesSortName(t *testing.T) {
	faces := []*Face{
		{Name: "Zebra", PrintedName: "Aardwolf", Colors: []string{"W"}},
		{Name: "Mule", Colors: []string{"W"}},
	}
	require.NoError(t, SortAndNumber(faces, discard()))
	assert.Equal(t, []string{"Zebra", "Mule"}, names(faces))
}
