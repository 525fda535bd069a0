package earley

import (
	"errors"
	"fmt"
	"strings"
)

// MaxRHS is the largest number of right-hand-side symbols a rule may have.
const MaxRHS = 3

// ErrMalformedRule is matched by every error returned from NewRule.
var ErrMalformedRule = errors.New("malformed rule")

// RuleError describes why a rule could not be constructed.
type RuleError struct {
	Head   Symbol
	RHS    []Symbol
	Reason string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("malformed rule %q: %s", formatRule(e.Head, e.RHS), e.Reason)
}

func (e *RuleError) Is(target error) bool {
	return target == ErrMalformedRule
}

// Rule is a production head --> rhs with one to three right-hand-side symbols.
//
// A rule with a single terminal on the right is lexical: it tags a token.
// All other rules are syntactic and contain only nonterminals.
// Rules are immutable, comparable values.
type Rule struct {
	head Symbol
	rhs  [MaxRHS]Symbol
	n    int
}

// NewRule validates and returns the rule head --> rhs.
func NewRule(head Symbol, rhs ...Symbol) (Rule, error) {
	fail := func(reason string) (Rule, error) {
		return Rule{}, &RuleError{Head: head, RHS: append([]Symbol(nil), rhs...), Reason: reason}
	}

	if head.IsTerminal() {
		return fail("head must be a nonterminal")
	}
	if len(rhs) == 0 {
		return fail("right-hand side is empty")
	}
	if len(rhs) > MaxRHS {
		return fail(fmt.Sprintf("right-hand side has %d symbols, at most %d allowed", len(rhs), MaxRHS))
	}
	if len(rhs) > 1 {
		for _, s := range rhs {
			if s.IsTerminal() {
				return fail(fmt.Sprintf("terminal %q must be the only symbol of a lexical rule", s.name))
			}
		}
	}

	r := Rule{head: head, n: len(rhs)}
	copy(r.rhs[:], rhs)
	return r, nil
}

// MustRule is like NewRule but panics on malformed input.
// It is meant for grammars written as Go literals.
func MustRule(head Symbol, rhs ...Symbol) Rule {
	r, err := NewRule(head, rhs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Head returns the symbol produced by the rule.
func (r Rule) Head() Symbol { return r.head }

// RHS returns a copy of the right-hand side.
func (r Rule) RHS() []Symbol {
	return append([]Symbol(nil), r.rhs[:r.n]...)
}

// Len returns the number of right-hand-side symbols.
func (r Rule) Len() int { return r.n }

// At returns the i-th right-hand-side symbol.
func (r Rule) At(i int) Symbol {
	if i < 0 || i >= r.n {
		panic(fmt.Sprintf("earley: rule symbol index %d out of range [0,%d)", i, r.n))
	}
	return r.rhs[i]
}

// IsLexical reports whether the rule maps a terminal token directly to a tag.
func (r Rule) IsLexical() bool {
	return r.n == 1 && r.rhs[0].IsTerminal()
}

// Equal reports whether both rules have the same head and right-hand side.
func (r Rule) Equal(other Rule) bool {
	return r == other
}

func (r Rule) String() string {
	return formatRule(r.head, r.rhs[:r.n])
}

func formatRule(head Symbol, rhs []Symbol) string {
	var sb strings.Builder
	sb.WriteString(head.String())
	sb.WriteString(" -->")
	for _, s := range rhs {
		sb.WriteString(" ")
		sb.WriteString(s.String())
	}
	return sb.String()
}
