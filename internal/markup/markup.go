// Package markup interprets the nested tag dialect MSE embeds in card rules
// and flavor text. The dialect is closed: every tag is either semantic
// (reminder, soft line, symbol), cosmetic (skipped), or an error.
package markup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arcanaland/msejson/internal/mana"
)

// ErrUnknownTag reports an opening tag outside the supported vocabulary.
var ErrUnknownTag = errors.New("unknown tag in card text")

// Cosmetic tags are rendered as if they were not there.
var ignoredTags = map[string]bool{
	"atom-cardname":          true,
	"atom-legname":           true,
	"atom-reminder-action":   true,
	"atom-reminder-core":     true,
	"atom-reminder-custom":   true,
	"atom-reminder-expert":   true,
	"b":                      true,
	"error-spelling":         true,
	"kw-0":                   true,
	"kw-1":                   true,
	"kw-a":                   true,
	"nospellcheck":           true,
	"nosym":                  true,
	"soft":                   true,
	"word-list-artifact":     true,
	"word-list-enchantment":  true,
	"word-list-class":        true,
	"word-list-land":         true,
	"word-list-planeswalker": true,
	"word-list-race":         true,
	"word-list-spell":        true,
	"word-list-type":         true,
}

var ignoredTagPrefixes = []string{
	"error-spelling:",
	"param-",
}

// Reminder text renders normally but never contributes to color identity.
var reminderTags = map[string]bool{
	"i":        true,
	"i-auto":   true,
	"i-flavor": true,
}

func isSymbolTag(tag string) bool { return tag == "sym" || tag == "sym-auto" }

func isIgnoredTag(tag string) bool {
	if ignoredTags[tag] {
		return true
	}
	for _, prefix := range ignoredTagPrefixes {
		if strings.HasPrefix(tag, prefix) {
			return true
		}
	}
	return false
}

// interp is the depth-counted state threaded through one fragment.
type interp struct {
	ignoreSoftNewlines bool
	out                strings.Builder
	identity           mana.ColorSet
	reminderLevel      int
	softLineLevel      int
	symLevel           int
}

// Parse renders one markup fragment to plain text and accumulates the color
// identity implied by mana symbols outside reminder text. When
// ignoreSoftNewlines is set, line breaks inside soft-line scope collapse to
// spaces (rules text); flavor text passes false to keep its line breaks.
func Parse(text string, ignoreSoftNewlines bool) (string, mana.ColorSet, error) {
	p := &interp{
		ignoreSoftNewlines: ignoreSoftNewlines,
		identity:           mana.NewColorSet(),
	}
	for _, tok := range tokenize(text) {
		var err error
		switch tok.kind {
		case tokenText:
			err = p.text(tok.value)
		case tokenOpen:
			err = p.open(tok.value)
		case tokenClose:
			p.close(tok.value)
		}
		if err != nil {
			return "", nil, err
		}
	}
	return postprocess(p.out.String()), p.identity, nil
}

func (p *interp) text(data string) error {
	if p.ignoreSoftNewlines && p.softLineLevel > 0 {
		data = strings.ReplaceAll(data, "\n", " ")
	}
	if p.symLevel > 0 {
		symbol, err := mana.Decode(data)
		if err != nil {
			return err
		}
		p.out.WriteString(symbol)
		if p.reminderLevel <= 0 && symbol != "{T}" && symbol != "{Q}" {
			colors, err := mana.ImplicitColors(symbol)
			if err != nil {
				return err
			}
			p.identity.Add(colors...)
		}
		return nil
	}
	p.out.WriteString(data)
	return nil
}

func (p *interp) open(tag string) error {
	switch {
	case isIgnoredTag(tag):
	case reminderTags[tag]:
		p.reminderLevel++
	case tag == "soft-line":
		p.softLineLevel++
	case isSymbolTag(tag):
		p.symLevel++
	default:
		return fmt.Errorf("%w: <%s>", ErrUnknownTag, tag)
	}
	return nil
}

// close mirrors open for the counted tags; anything else, including a stray
// end tag, is ignored.
func (p *interp) close(tag string) {
	switch {
	case reminderTags[tag]:
		p.reminderLevel--
	case tag == "soft-line":
		p.softLineLevel--
	case isSymbolTag(tag):
		p.symLevel--
	}
}

// postprocess cleans up artifacts of soft newline suppression and normalizes
// typographic punctuation.
func postprocess(s string) string {
	// Soft newline suppression may have swallowed the break before a bullet.
	s = strings.ReplaceAll(s, "•", "\n•")
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	s = strings.ReplaceAll(s, " \n", "\n")
	s = strings.ReplaceAll(s, "\n ", "\n")
	s = strings.Trim(s, " ")
	r := strings.NewReplacer("“", `"`, "”", `"`, "‘", "'", "’", "'")
	return r.Replace(s)
}
