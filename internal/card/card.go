// Package card defines the normalized card-face record produced by the
// converter and the canonical ordering imposed on a finished set.
package card

// BasicLandTypes maps the basic land subtypes to their colors, in the
// canonical land order used for sorting.
var BasicLandTypes = []struct {
	Subtype string
	Color   string
}{
	{"Plains", "W"},
	{"Island", "U"},
	{"Swamp", "B"},
	{"Mountain", "R"},
	{"Forest", "G"},
}

// Ruling is a dated ruling attached to a card. Custom sets start with none.
type Ruling struct {
	Date string `json:"date"`
	Text string `json:"text"`
}

// Face is one printed face of a card. Two-faced cards produce two linked
// Face values sharing Names and Layout.
type Face struct {
	Artist                string   `json:"artist"`
	BorderColor           string   `json:"borderColor,omitempty"`
	ColorIdentity         []string `json:"colorIdentity"`
	ColorIndicator        []string `json:"colorIndicator,omitempty"`
	Colors                []string `json:"colors"`
	ConvertedManaCost     float64  `json:"convertedManaCost"`
	FaceConvertedManaCost *float64 `json:"faceConvertedManaCost,omitempty"`
	FlavorText            string   `json:"flavorText,omitempty"`
	FrameVersion          string   `json:"frameVersion,omitempty"`
	HasFoil               bool     `json:"hasFoil"`
	HasNonFoil            bool     `json:"hasNonFoil"`
	Layout                string   `json:"layout,omitempty"`
	Loyalty               string   `json:"loyalty,omitempty"`
	ManaCost              string   `json:"manaCost,omitempty"`
	Name                  string   `json:"name"`
	Names                 []string `json:"names,omitempty"`
	Number                string   `json:"number,omitempty"`
	OriginalText          string   `json:"originalText,omitempty"`
	OriginalType          string   `json:"originalType"`
	Power                 string   `json:"power,omitempty"`
	PrintedName           string   `json:"printedName,omitempty"`
	Rarity                string   `json:"rarity"`
	Rulings               []Ruling `json:"rulings"`
	Side                  string   `json:"side,omitempty"`
	Stability             string   `json:"stability,omitempty"`
	Subtypes              []string `json:"subtypes"`
	Supertypes            []string `json:"supertypes"`
	Text                  string   `json:"text,omitempty"`
	Toughness             string   `json:"toughness,omitempty"`
	Type                  string   `json:"type"`
	Types                 []string `json:"types"`
	Watermark             string   `json:"watermark,omitempty"`
}

// HasType reports whether the face carries the given card type.
func (f *Face) HasType(t string) bool {
	return contains(f.Types, t)
}

// HasSupertype reports whether the face carries the given supertype.
func (f *Face) HasSupertype(s string) bool {
	return contains(f.Supertypes, s)
}

// HasSubtype reports whether the face carries the given subtype.
func (f *Face) HasSubtype(s string) bool {
	return contains(f.Subtypes, s)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// DisplayName is the name the face sorts under when it fronts a card.
func (f *Face) DisplayName() string {
	if f.PrintedName != "" {
		return f.PrintedName
	}
	return f.Name
}
