// Package grammars provides the built-in example grammar and loads grammars
// written in EBNF.
package grammars

import "github.com/dhamidi/chartparse/earley"

// Definition couples a grammar with the symbol parses start from.
type Definition struct {
	Grammar *earley.Grammar
	Start   earley.Symbol
}

// DefaultStart is the start symbol of the default grammar.
var DefaultStart = earley.Nonterminal("sentence")

// Default returns a small English grammar:
//
//	sentence --> np vp
//	np --> det noun | det adj noun
//	vp --> verb np | vp pp
//	pp --> prep np
//
// with the lexicon the, a, boy, dog, rod, smart, long, hits, with.
func Default() *Definition {
	return &Definition{Grammar: earley.NewGrammar(defaultRules()...), Start: DefaultStart}
}

// DefaultWithNPAttachment is Default plus np --> np pp, which makes
// prepositional phrases attach to noun phrases as well as verb phrases.
func DefaultWithNPAttachment() *Definition {
	rules := defaultRules()
	rules = append(rules, rule("np", "np", "pp"))
	return &Definition{Grammar: earley.NewGrammar(rules...), Start: DefaultStart}
}

func defaultRules() []earley.Rule {
	return []earley.Rule{
		rule("sentence", "np", "vp"),
		rule("np", "det", "noun"),
		rule("np", "det", "adj", "noun"),
		rule("vp", "verb", "np"),
		rule("vp", "vp", "pp"),
		rule("pp", "prep", "np"),
		word("det", "the"),
		word("det", "a"),
		word("noun", "boy"),
		word("noun", "dog"),
		word("noun", "rod"),
		word("adj", "smart"),
		word("adj", "long"),
		word("verb", "hits"),
		word("prep", "with"),
	}
}

func rule(head string, rhs ...string) earley.Rule {
	syms := make([]earley.Symbol, len(rhs))
	for i, s := range rhs {
		syms[i] = earley.Nonterminal(s)
	}
	return earley.MustRule(earley.Nonterminal(head), syms...)
}

func word(tag, text string) earley.Rule {
	return earley.MustRule(earley.Nonterminal(tag), earley.Terminal(text))
}
