// Package mse reads Magic Set Editor set archives and parses the
// line-oriented key/block data grammar used throughout them.
package mse

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrGrammar reports a line matching neither accepted grammar shape.
	ErrGrammar = errors.New("could not parse data file")
	// ErrMultiplicity reports a field that was expected exactly once.
	ErrMultiplicity = errors.New("field multiplicity")
)

// Record is an ordered mapping from field name to one or more raw text
// blocks. Duplicate field names append; nothing is overwritten.
type Record struct {
	order  []string
	fields map[string][]string
}

func newRecord() *Record {
	return &Record{fields: make(map[string][]string)}
}

func (r *Record) append(key, block string) {
	if _, ok := r.fields[key]; !ok {
		r.order = append(r.order, key)
	}
	r.fields[key] = append(r.fields[key], block)
}

// Fields returns the field names in first-appearance order.
func (r *Record) Fields() []string {
	return r.order
}

// Has reports whether the field occurs at least once.
func (r *Record) Has(key string) bool {
	_, ok := r.fields[key]
	return ok
}

// Get returns all blocks of a field in source order.
func (r *Record) Get(key string) []string {
	return r.fields[key]
}

// One returns the field's single block, failing if the field occurs zero or
// multiple times.
func (r *Record) One(key string) (string, error) {
	blocks := r.fields[key]
	if len(blocks) != 1 {
		return "", fmt.Errorf("%w: expected exactly one %q, found %d", ErrMultiplicity, key, len(blocks))
	}
	return blocks[0], nil
}

// OneOr is One with a default for an absent field.
func (r *Record) OneOr(key, fallback string) (string, error) {
	if !r.Has(key) {
		return fallback, nil
	}
	return r.One(key)
}

// Parse applies the data-file grammar to the full decoded text: a
// "key: value" line appends value to key, a bare "key:" line followed by
// tab-indented lines appends the indented block with one tab stripped,
// blank lines are skipped, and anything else is a grammar violation naming
// the offending line.
func Parse(text string) (*Record, error) {
	record := newRecord()
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	for i := 0; i < len(lines); {
		line := lines[i]
		if key, value, ok := strings.Cut(line, ": "); ok {
			record.append(key, value)
			i++
			continue
		}
		if key, ok := strings.CutSuffix(line, ":"); ok && i+1 < len(lines) && strings.HasPrefix(lines[i+1], "\t") {
			end := i + 1
			for end < len(lines) && strings.HasPrefix(lines[end], "\t") {
				end++
			}
			block := make([]string, 0, end-i-1)
			for _, indented := range lines[i+1 : end] {
				block = append(block, indented[1:])
			}
			record.append(key, strings.Join(block, "\n"))
			i = end
			continue
		}
		return nil, fmt.Errorf("%w, current line: %q", ErrGrammar, line)
	}
	return record, nil
}
