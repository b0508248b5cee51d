package markup

import "strings"

type tokenKind int

const (
	tokenText tokenKind = iota
	tokenOpen
	tokenClose
)

type token struct {
	kind  tokenKind
	value string
}

// tokenize splits a fragment into text runs and tag tokens. A "<" with no
// closing ">" is treated as literal text.
func tokenize(text string) []token {
	var tokens []token
	for len(text) > 0 {
		lt := strings.IndexByte(text, '<')
		if lt < 0 {
			tokens = append(tokens, token{tokenText, text})
			break
		}
		if lt > 0 {
			tokens = append(tokens, token{tokenText, text[:lt]})
		}
		gt := strings.IndexByte(text[lt:], '>')
		if gt < 0 {
			tokens = append(tokens, token{tokenText, text[lt:]})
			break
		}
		tag := text[lt+1 : lt+gt]
		if strings.HasPrefix(tag, "/") {
			tokens = append(tokens, token{tokenClose, tag[1:]})
		} else {
			tokens = append(tokens, token{tokenOpen, tag})
		}
		text = text[lt+gt+1:]
	}
	return tokens
}
