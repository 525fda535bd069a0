// Package lex splits raw input into the token sequences the parser consumes.
package lex

import (
	"fmt"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// DefaultSeparator splits on any run of whitespace, so both one token per
// line and space separated input work.
const DefaultSeparator = `\s+`

// sentenceSeparator is a blank line, possibly containing spaces.
const sentenceSeparator = `\r?\n[ \t\r]*\n`

// Splitter cuts text into tokens at every match of a separator pattern.
// Empty tokens are dropped.
type Splitter struct {
	sep *regexp2.Regexp
}

// NewSplitter compiles pattern as the token separator.
func NewSplitter(pattern string) (*Splitter, error) {
	if pattern == "" {
		return nil, fmt.Errorf("empty separator pattern")
	}
	re, err := regexp2.Compile(pattern, regexp2.RE2)
	if err != nil {
		return nil, fmt.Errorf("compile separator %q: %w", pattern, err)
	}
	return &Splitter{sep: re}, nil
}

// MustSplitter is like NewSplitter but panics on an invalid pattern.
func MustSplitter(pattern string) *Splitter {
	s, err := NewSplitter(pattern)
	if err != nil {
		panic(err)
	}
	return s
}

// Split returns the non-empty pieces of text between separator matches.
// Text that is not valid UTF-8 is rejected.
func (s *Splitter) Split(text string) ([]string, error) {
	return split(s.sep, text)
}

// Sentences splits text into blank-line separated blocks and tokenizes each
// with s. Blocks without tokens are skipped.
func (s *Splitter) Sentences(text string) ([][]string, error) {
	blocks, err := split(sentences, text)
	if err != nil {
		return nil, err
	}

	var out [][]string
	for _, block := range blocks {
		tokens, err := s.Split(block)
		if err != nil {
			return nil, err
		}
		if len(tokens) > 0 {
			out = append(out, tokens)
		}
	}
	return out, nil
}

var sentences = regexp2.MustCompile(sentenceSeparator, regexp2.RE2)

// split works on runes: regexp2 reports match positions in runes.
func split(re *regexp2.Regexp, text string) ([]string, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("split input: invalid UTF-8")
	}
	runes := []rune(text)
	var out []string
	last := 0

	m, err := re.FindRunesMatch(runes)
	for ; m != nil && err == nil; m, err = re.FindNextMatch(m) {
		if m.Length == 0 {
			continue
		}
		if m.Index > last {
			out = append(out, string(runes[last:m.Index]))
		}
		last = m.Index + m.Length
	}
	if err != nil {
		return nil, fmt.Errorf("split input: %w", err)
	}
	if last < len(runes) {
		out = append(out, string(runes[last:]))
	}
	return out, nil
}
