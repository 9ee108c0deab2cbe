// Package tokenize splits separator-delimited lines into fields through an
// explicit cursor owned by the caller, so two passes over the same line can
// never corrupt each other.
package tokenize

import (
	"errors"
	"strings"
)

var ErrEmptyInput = errors.New("input string is empty")

// Tokenizer yields the fields of a single line one at a time. It operates on
// its own copy of the input, so the caller's string stays untouched no matter
// how far the cursor advances.
type Tokenizer struct {
	fields []string
	pos    int
}

func New(line string, sep string) (*Tokenizer, error) {
	if line == "" {
		return nil, ErrEmptyInput
	}

	return &Tokenizer{
		fields: strings.Split(line, sep),
	}, nil
}

// Next returns the next field and reports whether one was available.
// Empty fields are legal and returned as empty strings.
func (t *Tokenizer) Next() (string, bool) {
	if t.pos >= len(t.fields) {
		return "", false
	}

	field := t.fields[t.pos]
	t.pos++
	return field, true
}

// Count reports how many fields the line contains without consuming any
// cursor. Callers use it to size allocations before a sequential pass.
func Count(line string, sep string) (int, error) {
	if line == "" {
		return 0, ErrEmptyInput
	}

	return strings.Count(line, sep) + 1, nil
}
