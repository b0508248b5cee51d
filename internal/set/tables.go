package set

import "github.com/arcanaland/msejson/internal/config"

// Stylesheet describes the layout and frame era a stylesheet selects.
type Stylesheet struct {
	Layout string
	Frame  string
}

// Tables holds the lookup tables the assembler consults. A Tables value is
// built once per run and never mutated afterwards.
type Tables struct {
	Stylesheets map[string]Stylesheet
	Watermarks  map[string]string
}

var builtinStylesheets = map[string]Stylesheet{
	"COTWC-m15planeswalker":              {"normal", "2015"},
	"m15":                                {"normal", "2015"},
	"m15-altered":                        {"normal", "2015"},
	"m15-clearartifact":                  {"normal", "2015"},
	"m15-doublefaced":                    {"transform", "2015"},
	"m15-doublefaced-borderable-sparker": {"transform", "2015"},
	"m15-doublefaced-sparker":            {"transform", "2015"},
	"m15-improved":                       {"normal", "2015"},
	"m15-legendary":                      {"normal", "2015"},
	"m15-mainframe-dfc":                  {"transform", "2015"},
	"m15-mainframe-planeswalker":         {"normal", "2015"},
	"m15-nyx":                            {"normal", "2015"},
	"m15-planeswalker":                   {"normal", "2015"},
	"m15-planeswalker-2abil":             {"normal", "2015"},
	"m15-planeswalker-clear":             {"normal", "2015"},
	"m15-saga":                           {"saga", "2015"},
	"m15-textless-land":                  {"normal", "2015"},
	"new":                                {"normal", "2003"},
	"new-planeswalker":                   {"normal", "2003"},
	"new-planeswalker-4abil-clear":       {"normal", "2003"},
}

// Watermark names are incomplete upstream, so some of these are unofficial.
var builtinWatermarks = map[string]string{
	"mana symbol colorless":                    "colorless",
	"mana symbol white":                        "white",
	"mana symbol blue":                         "blue",
	"mana symbol black":                        "black",
	"mana symbol red":                          "red",
	"mana symbol green":                        "green",
	"other magic symbols story spotlight":      "planeswalker",
	"other magic symbols color spotlight":      "planeswalker",
	"xander hybrid mana W/U":                   "white-blue",
	"xander hybrid mana U/B":                   "blue-black",
	"xander hybrid mana B/R":                   "black-red",
	"xander hybrid mana R/G":                   "red-green",
	"xander hybrid mana G/W":                   "green-white",
	"xander hybrid mana W/B":                   "white-black",
	"xander hybrid mana U/R":                   "blue-red",
	"xander hybrid mana B/G":                   "black-green",
	"xander hybrid mana R/W":                   "red-white",
	"xander hybrid mana G/U":                   "green-blue",
}

// Stylesheets that render tokens rather than cards.
var tokenStylesheets = map[string]bool{
	"m15-mainframe-tokens": true,
	"m15-token":            true,
	"m15-token-clear":      true,
}

// Stylesheets that render emblems.
var emblemStylesheets = map[string]bool{
	"m15-emblem-acorntail": true,
	"m15-emblem-name-cut":  true,
	"m15-emblem-cajun":     true,
}

var borderColors = map[string]string{
	"rgb(0,0,0)":       "black",
	"rgb(128,128,128)": "silver",
	"rgb(200,180,0)":   "gold",
	"rgb(222,127,50)":  "bronze",
	"rgb(255,255,255)": "white",
}

// The card database schema supports neither basic land nor special rarity;
// both downgrade to the nearest supported value.
var rarities = map[string]string{
	"basic land":  "common",
	"common":      "common",
	"uncommon":    "uncommon",
	"rare":        "rare",
	"mythic rare": "mythic",
	"special":     "mythic",
}

var indicatorColors = map[string]string{
	"colorless": "C",
	"land":      "C",
	"artifact":  "C",
	"white":     "W",
	"blue":      "U",
	"black":     "B",
	"red":       "R",
	"green":     "G",
}

var backColorWords = map[string]string{
	"white": "W",
	"blue":  "U",
	"black": "B",
	"red":   "R",
	"green": "G",
}

// Modifier words that may trail a card-color field without naming a color.
var backColorModifiers = map[string]bool{
	"colorless":  true,
	"multicolor": true,
	"artifact":   true,
	"land":       true,
	"horizontal": true,
}

// DefaultTables returns the built-in lookup tables.
func DefaultTables() Tables {
	return Tables{Stylesheets: builtinStylesheets, Watermarks: builtinWatermarks}
}

// TablesFromConfig merges user config entries over the builtins into a
// fresh Tables value, leaving the builtins untouched.
func TablesFromConfig(cfg *config.Config) Tables {
	t := Tables{
		Stylesheets: make(map[string]Stylesheet, len(builtinStylesheets)+len(cfg.Stylesheets)),
		Watermarks:  make(map[string]string, len(builtinWatermarks)+len(cfg.Watermarks)),
	}
	for k, v := range builtinStylesheets {
		t.Stylesheets[k] = v
	}
	for k, v := range cfg.Stylesheets {
		t.Stylesheets[k] = Stylesheet{Layout: v.Layout, Frame: v.Frame}
	}
	for k, v := range builtinWatermarks {
		t.Watermarks[k] = v
	}
	for k, v := range cfg.Watermarks {
		t.Watermarks[k] = v
	}
	return t
}
