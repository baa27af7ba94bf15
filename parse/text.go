// SPDX-License-Identifier: MIT
//
// File: text.go
// Role: String-level splitting of trimmed, line-oriented input.
// Policy:
//   - Input is trimmed as a whole before splitting into lines.
//   - Lines end at '\n'; a trailing '\r' is dropped.
//   - Whitespace-only separators split on runs of whitespace.

package parse

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for parse operations.
var (
	// ErrEmptyInput indicates input that is empty after trimming.
	ErrEmptyInput = errors.New("parse: empty input")
	// ErrMissingSeparator indicates a record line without its key separator.
	ErrMissingSeparator = errors.New("parse: missing key separator")
	// ErrNotInteger indicates a token that is not a base-10 int64.
	ErrNotInteger = errors.New("parse: not an integer")
)

// Tuple is one "key: values" record in input order.
type Tuple struct {
	Key    string
	Values []string
}

// rawLines trims the input and splits it into lines without trimming them.
func rawLines(input string) []string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil
	}
	lines := strings.Split(trimmed, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return lines
}

// split cuts s by sep, or on whitespace runs when sep is blank.
func split(s, sep string) []string {
	if strings.TrimSpace(sep) == "" {
		return strings.Fields(s)
	}

	return strings.Split(s, sep)
}

// SingleLine returns the first line of the trimmed input, itself trimmed.
// Returns ErrEmptyInput for blank input.
func SingleLine(input string) (string, error) {
	lines := rawLines(input)
	if len(lines) == 0 {
		return "", ErrEmptyInput
	}

	return strings.TrimSpace(lines[0]), nil
}

// Lines returns every line of the trimmed input, each trimmed.
// Blank input yields nil.
func Lines(input string) []string {
	lines := rawLines(input)
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}

	return lines
}

// Matrix splits every line of the trimmed input by sep.
func Matrix(input, sep string) [][]string {
	lines := rawLines(input)
	out := make([][]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, split(l, sep))
	}

	return out
}

// Tuples parses one record per non-blank line: the key is the trimmed text
// before the first keySep, the values are the trimmed remainder split by
// valSep. An empty remainder gives an empty, non-nil Values.
// Returns ErrMissingSeparator, wrapped with the 1-based line number, for a
// non-blank line that lacks keySep.
func Tuples(input, keySep, valSep string) ([]Tuple, error) {
	var out []Tuple
	for i, l := range rawLines(input) {
		if strings.TrimSpace(l) == "" {
			continue
		}
		key, rest, ok := strings.Cut(l, keySep)
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMissingSeparator, i+1, l)
		}
		values := []string{}
		if rest = strings.TrimSpace(rest); rest != "" {
			values = split(rest, valSep)
		}
		out = append(out, Tuple{Key: strings.TrimSpace(key), Values: values})
	}

	return out, nil
}

// Dict is Tuples keyed by record key. A repeated key keeps its last values.
func Dict(input, keySep, valSep string) (map[string][]string, error) {
	tuples, err := Tuples(input, keySep, valSep)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]string, len(tuples))
	for _, t := range tuples {
		out[t.Key] = t.Values
	}

	return out, nil
}
