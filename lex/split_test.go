package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDefault(t *testing.T) {
	s := MustSplitter(DefaultSeparator)

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"one per line", "the\nboy\nhits\n", []string{"the", "boy", "hits"}},
		{"spaces", "  the boy\t hits  ", []string{"the", "boy", "hits"}},
		{"crlf", "Hello\r\nWorld\r\n", []string{"Hello", "World"}},
		{"empty", "", nil},
		{"blank", " \n\t\n", nil},
		{"unicode", "größe\nüber", []string{"größe", "über"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Split(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitLines(t *testing.T) {
	s := MustSplitter(`\r?\n`)
	got, err := s.Split("New York\nis big\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"New York", "is big"}, got)
}

func TestSplitCustomSeparator(t *testing.T) {
	s, err := NewSplitter(`\s*,\s*`)
	require.NoError(t, err)
	got, err := s.Split("a, b ,c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestNewSplitterErrors(t *testing.T) {
	_, err := NewSplitter("")
	assert.Error(t, err)
	_, err = NewSplitter("(")
	assert.Error(t, err)
}

func TestSplitRejectsInvalidUTF8(t *testing.T) {
	s := MustSplitter(DefaultSeparator)
	_, err := s.Split("caf\xe9 x")
	assert.ErrorContains(t, err, "invalid UTF-8")
	_, err = s.Sentences("ok\n\ncaf\xe9")
	assert.Error(t, err)
}

func TestSentences(t *testing.T) {
	s := MustSplitter(DefaultSeparator)
	got, err := s.Sentences("the boy\nhits a dog\n\n  \na dog hits\nthe boy\n\n\n")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"the", "boy", "hits", "a", "dog"},
		{"a", "dog", "hits", "the", "boy"},
	}, got)
}
