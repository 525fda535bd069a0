package earley

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// r builds a rule from the textual notation, e.g. r("$np", "$det", "$noun").
func r(head string, rhs ...string) Rule {
	syms := make([]Symbol, len(rhs))
	for i, s := range rhs {
		syms[i] = ParseSymbol(s)
	}
	return MustRule(ParseSymbol(head), syms...)
}

func TestParseSymbol(t *testing.T) {
	tests := []struct {
		in       string
		name     string
		terminal bool
	}{
		{"$np", "np", false},
		{"apple", "apple", true},
		{"$", "", false},
		{"a$b", "a$b", true},
	}
	for _, tt := range tests {
		sym := ParseSymbol(tt.in)
		if sym.Name() != tt.name || sym.IsTerminal() != tt.terminal {
			t.Errorf("ParseSymbol(%q) = {%q, terminal=%v}, want {%q, terminal=%v}",
				tt.in, sym.Name(), sym.IsTerminal(), tt.name, tt.terminal)
		}
		if got := sym.String(); got != tt.in {
			t.Errorf("ParseSymbol(%q).String() = %q", tt.in, got)
		}
	}
}

func TestRuleConstructorSetsRHS(t *testing.T) {
	if got := r("$left", "$right").Len(); got != 1 {
		t.Errorf("unary rule has %d symbols", got)
	}
	if got := r("$l", "$r1", "$r2").Len(); got != 2 {
		t.Errorf("binary rule has %d symbols", got)
	}
	three := r("$l", "$r1", "$r2", "$r3")
	if diff := cmp.Diff([]string{"$r1", "$r2", "$r3"}, symbolStrings(three.RHS())); diff != "" {
		t.Errorf("RHS mismatch (-want +got):\n%s", diff)
	}
	if three.At(2) != Nonterminal("r3") {
		t.Errorf("At(2) = %s", three.At(2))
	}
}

func TestRuleIsLexical(t *testing.T) {
	if r("$left", "$right").IsLexical() {
		t.Error("unary nonterminal rule reported as lexical")
	}
	if !r("$det", "the").IsLexical() {
		t.Error("terminal rule not reported as lexical")
	}
	if r("$np", "$det", "$noun").IsLexical() {
		t.Error("binary rule reported as lexical")
	}
}

func TestRuleEquality(t *testing.T) {
	if !r("$np", "$np", "$noun").Equal(r("$np", "$np", "$noun")) {
		t.Error("rule not equal to an identical rule")
	}
	if r("$np", "$np", "$noun").Equal(r("$np", "$noun", "$np")) {
		t.Error("rhs order ignored by Equal")
	}
	if r("$np", "$noun").Equal(r("$np", "$noun", "$noun")) {
		t.Error("rules of different length compare equal")
	}
	if r("$a", "x").Equal(r("$b", "x")) {
		t.Error("head ignored by Equal")
	}
}

func TestRuleString(t *testing.T) {
	if got, want := r("$np", "$det", "$adj", "$noun").String(), "$np --> $det $adj $noun"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRuleRHSIsACopy(t *testing.T) {
	rule := r("$np", "$det", "$noun")
	rhs := rule.RHS()
	rhs[0] = Terminal("mutated")
	if rule.At(0) != Nonterminal("det") {
		t.Error("mutating RHS() changed the rule")
	}
}

func TestNewRuleRejectsMalformedRules(t *testing.T) {
	tests := []struct {
		name string
		head Symbol
		rhs  []Symbol
	}{
		{"empty rhs", Nonterminal("s"), nil},
		{"four symbols", Nonterminal("s"), []Symbol{Nonterminal("a"), Nonterminal("b"), Nonterminal("c"), Nonterminal("d")}},
		{"terminal head", Terminal("s"), []Symbol{Terminal("x")}},
		{"lexical with two symbols", Nonterminal("s"), []Symbol{Terminal("x"), Terminal("y")}},
		{"mixed", Nonterminal("s"), []Symbol{Nonterminal("a"), Terminal("y")}},
		{"terminal first", Nonterminal("s"), []Symbol{Terminal("x"), Nonterminal("a")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRule(tt.head, tt.rhs...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, ErrMalformedRule) {
				t.Errorf("error %v does not match ErrMalformedRule", err)
			}
			var ruleErr *RuleError
			if !errors.As(err, &ruleErr) {
				t.Fatalf("error %T is not a *RuleError", err)
			}
			if ruleErr.Head != tt.head {
				t.Errorf("RuleError.Head = %s, want %s", ruleErr.Head, tt.head)
			}
		})
	}
}

func TestMustRulePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustRule did not panic on an empty rhs")
		}
	}()
	MustRule(Nonterminal("s"))
}

func symbolStrings(syms []Symbol) []string {
	out := make([]string, len(syms))
	for i, s := range syms {
		out[i] = s.String()
	}
	return out
}
