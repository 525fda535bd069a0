package earley

// Grammar is an ordered collection of rules with lookup by head symbol.
// Duplicate rules are kept. A Grammar is read-only once built and may be
// shared by any number of concurrent parses.
type Grammar struct {
	rules  []Rule
	byHead map[Symbol][]int // indexes into rules, ascending
	heads  []Symbol
}

// NewGrammar returns a grammar holding rules in the given order.
func NewGrammar(rules ...Rule) *Grammar {
	g := &Grammar{
		rules:  append([]Rule(nil), rules...),
		byHead: make(map[Symbol][]int),
	}
	for i, r := range g.rules {
		if _, seen := g.byHead[r.head]; !seen {
			g.heads = append(g.heads, r.head)
		}
		g.byHead[r.head] = append(g.byHead[r.head], i)
	}
	return g
}

// RulesWithHead returns the rules producing head, in grammar order.
// An unknown symbol yields an empty result.
func (g *Grammar) RulesWithHead(head Symbol) []Rule {
	idx := g.byHead[head]
	out := make([]Rule, len(idx))
	for i, n := range idx {
		out[i] = g.rules[n]
	}
	return out
}

// Has reports whether any rule produces head.
func (g *Grammar) Has(head Symbol) bool {
	_, ok := g.byHead[head]
	return ok
}

// Rules returns a copy of all rules in grammar order.
func (g *Grammar) Rules() []Rule {
	return append([]Rule(nil), g.rules...)
}

// Heads returns the distinct rule heads in order of first appearance.
func (g *Grammar) Heads() []Symbol {
	return append([]Symbol(nil), g.heads...)
}

// Len returns the number of rules.
func (g *Grammar) Len() int {
	return len(g.rules)
}

// each calls fn for every rule producing head without allocating.
func (g *Grammar) each(head Symbol, fn func(Rule)) {
	for _, n := range g.byHead[head] {
		fn(g.rules[n])
	}
}
