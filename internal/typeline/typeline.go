// Package typeline splits a rendered type line into supertype, type, and
// subtype lists against the fixed card vocabularies.
package typeline

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownType reports a token that is neither a supertype nor a type.
var ErrUnknownType = errors.New("unknown supertype or card type")

var supertypes = map[string]bool{
	"Basic":     true,
	"Elite":     true,
	"Legendary": true,
	"Ongoing":   true,
	"Snow":      true,
	"World":     true,
}

var types = map[string]bool{
	"Artifact":     true,
	"Creature":     true,
	"Conspiracy":   true,
	"Enchantment":  true,
	"Instant":      true,
	"Land":         true,
	"Phenomenon":   true,
	"Plane":        true,
	"Planeswalker": true,
	"Scheme":       true,
	"Sorcery":      true,
	"Tribal":       true,
	"Vanguard":     true,
}

// Corrupted spellings of "Basic" produced by the PlaneSculptors booster
// layout workaround; one swaps a digit for the i, one hides a zero-width
// non-joiner after the B.
var basicVariants = map[string]bool{
	"Bas1c":   true,
	"B‌asic": true,
}

// Split classifies a type line of the form "supertypes types — subtypes".
// Order is preserved within each returned list; empty tokens from doubled
// spaces are skipped.
func Split(line string) (supers, cardTypes, subtypes []string, err error) {
	head := line
	if i := strings.Index(line, " — "); i >= 0 {
		head = line[:i]
		subtypes = strings.Split(line[i+len(" — "):], " ")
	}
	for _, tok := range strings.Split(head, " ") {
		switch {
		case supertypes[tok]:
			supers = append(supers, tok)
		case types[tok]:
			cardTypes = append(cardTypes, tok)
		case basicVariants[tok]:
			supers = append(supers, "Basic")
		case tok == "":
		default:
			return nil, nil, nil, fmt.Errorf("%w: %q", ErrUnknownType, tok)
		}
	}
	return supers, cardTypes, subtypes, nil
}

// Join renders the canonical type string from classified lists.
func Join(supers, cardTypes, subtypes []string) string {
	head := strings.Join(append(append([]string{}, supers...), cardTypes...), " ")
	if len(subtypes) == 0 {
		return head
	}
	return head + " — " + strings.Join(subtypes, " ")
}
