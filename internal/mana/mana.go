// Package mana translates between the compact per-character mana notation
// used inside MSE set files and the verbose bracketed notation used by the
// card database schema, and derives numeric values and implicit colors from
// a cost.
package mana

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSymbol reports a compact or verbose token that is not part of the
// supported symbol vocabulary.
var ErrSymbol = errors.New("unrecognized mana symbol")

func isColor(c byte) bool {
	return c == 'W' || c == 'U' || c == 'B' || c == 'R' || c == 'G'
}

// Decode converts a compact symbol string to its verbose bracketed form.
// The bare string "T" denotes the tap symbol.
func Decode(compact string) (string, error) {
	if compact == "T" {
		return "{T}", nil
	}
	var sb strings.Builder
	rest := compact
	for len(rest) > 0 {
		if len(rest) > 2 && rest[1] == '/' {
			if (rest[0] == '2' || isColor(rest[0])) && isColor(rest[2]) {
				fmt.Fprintf(&sb, "{%s}", rest[:3])
				rest = rest[3:]
				continue
			}
			if rest[0] == 'H' && isColor(rest[2]) {
				fmt.Fprintf(&sb, "{%c/P}", rest[2])
				rest = rest[3:]
				continue
			}
			return "", fmt.Errorf("%w: %q", ErrSymbol, rest)
		}
		switch c := rest[0]; {
		case c == 'C' || c == 'S' || c == 'X' || isColor(c):
			fmt.Fprintf(&sb, "{%c}", c)
			rest = rest[1:]
		case c == 'V':
			// runic mana
			sb.WriteString("{V}")
			rest = rest[1:]
		case c >= '0' && c <= '9':
			i := 1
			for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
				i++
			}
			n, err := strconv.Atoi(rest[:i])
			if err != nil {
				return "", fmt.Errorf("%w: %q", ErrSymbol, rest)
			}
			fmt.Fprintf(&sb, "{%d}", n)
			rest = rest[i:]
		default:
			return "", fmt.Errorf("%w: %q", ErrSymbol, rest)
		}
	}
	return sb.String(), nil
}

// tokens splits a verbose cost into its bracketed parts, without braces.
func tokens(cost string) ([]string, error) {
	if !strings.HasPrefix(cost, "{") || !strings.HasSuffix(cost, "}") {
		return nil, fmt.Errorf("%w: cost must start with { and end with }", ErrSymbol)
	}
	return strings.Split(cost[1:len(cost)-1], "}{"), nil
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Value computes the numeric mana value of a verbose cost. An empty cost
// has value 0, as does the variable symbol {X}.
func Value(cost string) (float64, error) {
	if cost == "" {
		return 0, nil
	}
	parts, err := tokens(cost)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, part := range parts {
		switch {
		case len(part) == 1 && isColor(part[0]):
			total++
		case part == "C" || part == "S" || part == "V":
			total++
		case part == "X":
			// variable
		case isNumeric(part):
			n, err := strconv.Atoi(part)
			if err != nil {
				return 0, fmt.Errorf("%w: {%s}", ErrSymbol, part)
			}
			total += n
		case len(part) == 3 && part[1] == '/' && isColor(part[0]) && isColor(part[2]):
			total++
		case len(part) == 3 && part[1] == '/' && isColor(part[0]) && part[2] == 'P':
			total++
		case len(part) == 3 && part[0] == '2' && part[1] == '/' && isColor(part[2]):
			total += 2
		default:
			return 0, fmt.Errorf("%w: {%s}", ErrSymbol, part)
		}
	}
	return float64(total), nil
}

// ImplicitColors returns the colors a verbose cost necessarily produces,
// deduplicated and in canonical WUBRG order.
func ImplicitColors(cost string) ([]string, error) {
	if cost == "" {
		return nil, nil
	}
	parts, err := tokens(cost)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	for _, part := range parts {
		switch {
		case len(part) == 1 && isColor(part[0]):
			seen[part] = true
		case part == "C" || part == "S" || part == "V" || part == "X":
			// no color
		case part == "T" || part == "Q":
			// tap and untap carry no color
		case isNumeric(part):
			// generic
		case len(part) == 3 && part[1] == '/' && isColor(part[0]) && isColor(part[2]):
			seen[part[:1]] = true
			seen[part[2:]] = true
		case len(part) == 3 && part[1] == '/' && isColor(part[0]) && part[2] == 'P':
			seen[part[:1]] = true
		case len(part) == 3 && part[0] == '2' && part[1] == '/' && isColor(part[2]):
			seen[part[2:]] = true
		default:
			return nil, fmt.Errorf("%w: {%s}", ErrSymbol, part)
		}
	}
	return sortedColors(seen), nil
}

// Colors is the canonical color order used whenever a color set is
// materialized as a list.
var Colors = []string{"W", "U", "B", "R", "G"}

// ColorSet is a set over the five colors.
type ColorSet map[string]bool

// NewColorSet builds a set from color letters.
func NewColorSet(colors ...string) ColorSet {
	s := make(ColorSet, len(colors))
	s.Add(colors...)
	return s
}

// Add inserts the given colors into the set.
func (s ColorSet) Add(colors ...string) {
	for _, c := range colors {
		s[c] = true
	}
}

// Union inserts every color of other into the set.
func (s ColorSet) Union(other ColorSet) {
	for c := range other {
		s[c] = true
	}
}

// Sorted materializes the set in canonical order. An empty set yields nil.
func (s ColorSet) Sorted() []string {
	return sortedColors(map[string]bool(s))
}

// sortedColors materializes a color set in canonical order.
func sortedColors(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for _, c := range Colors {
		if set[c] {
			out = append(out, c)
		}
	}
	return out
}
