// Package earley implements an Earley chart parser for context-free grammars
// whose rules have between one and three right-hand-side symbols.
//
// A parse returns every complete tree for the input (a forest), so ambiguous
// grammars are supported. Subtrees are shared between trees, never copied.
package earley

import "strings"

// Sigil marks a nonterminal in the textual symbol notation used by grammar
// files and the command line, e.g. "$np".
const Sigil = "$"

// Symbol is a grammar symbol: either a terminal (raw token text) or a
// nonterminal. Symbols are comparable and may be used as map keys.
type Symbol struct {
	name     string
	terminal bool
}

// Terminal returns the terminal symbol matching the token text.
func Terminal(text string) Symbol {
	return Symbol{name: text, terminal: true}
}

// Nonterminal returns the nonterminal symbol with the given name.
// A leading sigil is not stripped; use ParseSymbol for textual input.
func Nonterminal(name string) Symbol {
	return Symbol{name: name}
}

// ParseSymbol interprets s in the textual notation: a leading "$" denotes a
// nonterminal, anything else is a terminal.
func ParseSymbol(s string) Symbol {
	if name, ok := strings.CutPrefix(s, Sigil); ok {
		return Nonterminal(name)
	}
	return Terminal(s)
}

// Name returns the symbol's name without the sigil.
func (s Symbol) Name() string { return s.name }

// IsTerminal reports whether s is a terminal.
func (s Symbol) IsTerminal() bool { return s.terminal }

// IsNonterminal reports whether s is a nonterminal.
func (s Symbol) IsNonterminal() bool { return !s.terminal }

func (s Symbol) String() string {
	if s.terminal {
		return s.name
	}
	return Sigil + s.name
}
