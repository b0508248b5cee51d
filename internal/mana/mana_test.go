package mana

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		compact string
		want    string
	}{
		{"", ""},
		{"T", "{T}"},
		{"W", "{W}"},
		{"2WW", "{2}{W}{W}"},
		{"15", "{15}"},
		{"007", "{7}"},
		{"X", "{X}"},
		{"C", "{C}"},
		{"S", "{S}"},
		{"2SS", "{2}{S}{S}"},
		{"V", "{V}"},
		{"W/U", "{W/U}"},
		{"2/G", "{2/G}"},
		{"H/B", "{B/P}"},
		{"1GG", "{1}{G}{G}"},
		{"W/UB/R", "{W/U}{B/R}"},
	}
	for _, tt := range tests {
		got, err := Decode(tt.compact)
		require.NoError(t, err, tt.compact)
		assert.Equal(t, tt.want, got, tt.compact)
	}
}

func TestDecodeRejectsUnknownSymbols(t *testing.T) {
	for _, compact := range []string{"Z", "Q/W", "H/Z", "W/", "w"} {
		_, err := Decode(compact)
		assert.ErrorIs(t, err, ErrSymbol, compact)
	}
}

func TestValue(t *testing.T) {
	tests := []struct {
		cost string
		want float64
	}{
		{"", 0},
		{"{X}", 0},
		{"{2}{W}{W}", 4},
		{"{W/U}", 1},
		{"{2/W}", 2},
		{"{W/P}", 1},
		{"{C}", 1},
		{"{S}", 1},
		{"{V}", 1},
		{"{15}", 15},
		{"{X}{X}{G}", 1},
	}
	for _, tt := range tests {
		got, err := Value(tt.cost)
		require.NoError(t, err, tt.cost)
		assert.Equal(t, tt.want, got, tt.cost)
	}
}

func TestValueOrderIndependent(t *testing.T) {
	a, err := Value("{2}{W}{U/B}{X}")
	require.NoError(t, err)
	b, err := Value("{X}{U/B}{W}{2}")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestValueRejectsMalformedCosts(t *testing.T) {
	for _, cost := range []string{"W", "{W}{", "{Z}", "{WP}", "{w}"} {
		_, err := Value(cost)
		assert.ErrorIs(t, err, ErrSymbol, cost)
	}
}

func TestImplicitColors(t *testing.T) {
	tests := []struct {
		cost string
		want []string
	}{
		{"", nil},
		{"{W/U}", []string{"W", "U"}},
		{"{2/B}", []string{"B"}},
		{"{T}", nil},
		{"{G/P}", []string{"G"}},
		{"{3}{S}{X}", nil},
		{"{G}{W}{U}", []string{"W", "U", "G"}},
		{"{W}{W}", []string{"W"}},
	}
	for _, tt := range tests {
		got, err := ImplicitColors(tt.cost)
		require.NoError(t, err, tt.cost)
		assert.Equal(t, tt.want, got, tt.cost)
	}
}

func TestColorSet(t *testing.T) {
	s := NewColorSet("G", "W")
	s.Add("W", "U")
	s.Union(NewColorSet("B"))
	assert.Equal(t, []string{"W", "U", "B", "G"}, s.Sorted())
	assert.Nil(t, NewColorSet().Sorted())
}
