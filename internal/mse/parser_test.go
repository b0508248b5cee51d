package mse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleValues(t *testing.T) {
	rec, err := Parse("title: My Set\nset code: TST\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"title", "set code"}, rec.Fields())
	assert.Equal(t, []string{"My Set"}, rec.Get("title"))
	assert.Equal(t, []string{"TST"}, rec.Get("set code"))
}

func TestParseRoundTrip(t *testing.T) {
	rec, err := Parse("a: 1\nb: 2\nc: 3")
	require.NoError(t, err)
	for _, field := range rec.Fields() {
		require.Len(t, rec.Get(field), 1)
	}
}

func TestParseDuplicateKeysAppend(t *testing.T) {
	rec, err := Parse("card: first\ncard: second\ncard: third")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, rec.Get("card"))
}

func TestParseIndentedBlock(t *testing.T) {
	rec, err := Parse("card:\n\tname: Bear\n\tpower: 2\nversion: 1")
	require.NoError(t, err)
	assert.Equal(t, []string{"name: Bear\npower: 2"}, rec.Get("card"))
	assert.Equal(t, []string{"1"}, rec.Get("version"))
}

func TestParseBlankLinesIgnored(t *testing.T) {
	rec, err := Parse("\ncard:\n\n\tname: Bear\n\n\tpower: 2\n\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"name: Bear\npower: 2"}, rec.Get("card"))
}

func TestParseNestedBlocks(t *testing.T) {
	rec, err := Parse("styling:\n\tmagic-m15-saga:\n\t\tdiscovery: yes")
	require.NoError(t, err)
	inner, err := Parse(rec.Get("styling")[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"discovery: yes"}, inner.Get("magic-m15-saga"))
}

func TestParseGrammarViolation(t *testing.T) {
	_, err := Parse("title: ok\nthis line is broken")
	require.ErrorIs(t, err, ErrGrammar)
	assert.Contains(t, err.Error(), "this line is broken")
}

func TestParseBareKeyWithoutBlockFails(t *testing.T) {
	_, err := Parse("empty:\nnext: value")
	assert.ErrorIs(t, err, ErrGrammar)
}

func TestOne(t *testing.T) {
	rec, err := Parse("name: Bear\ncard: a\ncard: b")
	require.NoError(t, err)

	name, err := rec.One("name")
	require.NoError(t, err)
	assert.Equal(t, "Bear", name)

	_, err = rec.One("card")
	assert.ErrorIs(t, err, ErrMultiplicity)

	_, err = rec.One("missing")
	assert.ErrorIs(t, err, ErrMultiplicity)

	fallback, err := rec.OneOr("missing", "default")
	require.NoError(t, err)
	assert.Equal(t, "default", fallback)
}
