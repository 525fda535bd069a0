package grammars

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/dhamidi/chartparse/earley"
	"golang.org/x/exp/ebnf"
)

// LoadFile loads an EBNF grammar from a file. See LoadEBNF.
func LoadFile(filename string) (*Definition, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	return LoadEBNF(filename, f)
}

// LoadEBNF reads a grammar in the EBNF notation of golang.org/x/exp/ebnf.
// Each alternative of a production becomes one rule and must be either a
// single quoted token (a lexical rule) or one to three production names:
//
//	sentence = np vp .
//	np       = det noun | det adj noun .
//	det      = "the" | "a" .
//
// Groups, options, repetitions and ranges are rejected. Rules keep source
// order and the first production is the start symbol.
func LoadEBNF(filename string, r io.Reader) (*Definition, error) {
	src, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return Convert(src)
}

// Convert turns a parsed EBNF grammar into rules. See LoadEBNF.
func Convert(src ebnf.Grammar) (*Definition, error) {
	if len(src) == 0 {
		return nil, fmt.Errorf("grammar has no productions")
	}

	prods := make([]*ebnf.Production, 0, len(src))
	for _, p := range src {
		prods = append(prods, p)
	}
	sort.Slice(prods, func(i, j int) bool {
		return prods[i].Pos().Offset < prods[j].Pos().Offset
	})

	var rules []earley.Rule
	for _, p := range prods {
		head := earley.Nonterminal(p.Name.String)
		if p.Expr == nil {
			return nil, fmt.Errorf("%s: production %s is empty", p.Pos(), p.Name.String)
		}

		alts, ok := p.Expr.(ebnf.Alternative)
		if !ok {
			alts = ebnf.Alternative{p.Expr}
		}
		for _, alt := range alts {
			rhs, err := convertAlternative(src, alt)
			if err != nil {
				return nil, err
			}
			rule, err := earley.NewRule(head, rhs...)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", alt.Pos(), err)
			}
			rules = append(rules, rule)
		}
	}

	return &Definition{
		Grammar: earley.NewGrammar(rules...),
		Start:   earley.Nonterminal(prods[0].Name.String),
	}, nil
}

func convertAlternative(src ebnf.Grammar, alt ebnf.Expression) ([]earley.Symbol, error) {
	seq, ok := alt.(ebnf.Sequence)
	if !ok {
		seq = ebnf.Sequence{alt}
	}

	rhs := make([]earley.Symbol, 0, len(seq))
	for _, expr := range seq {
		switch e := expr.(type) {
		case *ebnf.Name:
			if _, defined := src[e.String]; !defined {
				return nil, fmt.Errorf("%s: undefined production %s", e.Pos(), e.String)
			}
			rhs = append(rhs, earley.Nonterminal(e.String))
		case *ebnf.Token:
			rhs = append(rhs, earley.Terminal(e.String))
		default:
			return nil, fmt.Errorf("%s: unsupported expression %T (only names and tokens are allowed)", expr.Pos(), expr)
		}
	}
	return rhs, nil
}

// Verify checks that every production used is defined and every production
// is reachable from start.
func Verify(filename string, r io.Reader, start string) error {
	src, err := ebnf.Parse(filename, r)
	if err != nil {
		return fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(src, start); err != nil {
		return fmt.Errorf("verify grammar: %w", err)
	}
	return nil
}
