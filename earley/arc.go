package earley

import "fmt"

// Arc is a partial or complete application of a rule over an input span.
// The dot counts how many right-hand-side symbols have been matched.
// Arcs are immutable; Extend derives a new arc.
type Arc struct {
	span    Span
	rule    Rule
	matched []*Constituent
	built   *Constituent // non-nil iff the arc is complete
}

// arcKey identifies an arc up to its derivation.
type arcKey struct {
	start, end int
	rule       Rule
	dot        int
}

// predict returns an arc for rule with nothing matched, starting at pos.
func predict(rule Rule, pos int) *Arc {
	return &Arc{span: Span{pos, pos}, rule: rule}
}

// scan returns the complete arc of a lexical rule matching token at pos.
func scan(rule Rule, pos int, token string) *Arc {
	matched := []*Constituent{newLeaf(pos, token)}
	span := Span{pos, pos + 1}
	return &Arc{
		span:    span,
		rule:    rule,
		matched: matched,
		built:   newConstituent(span, rule.head, matched),
	}
}

// Start returns the position where the rule application began.
func (a *Arc) Start() int { return a.span.Start }

// End returns the position just past the last matched symbol.
func (a *Arc) End() int { return a.span.End }

// Span returns [Start, End).
func (a *Arc) Span() Span { return a.span }

// Rule returns the rule being applied.
func (a *Arc) Rule() Rule { return a.rule }

// Dot returns the number of right-hand-side symbols matched so far.
func (a *Arc) Dot() int { return len(a.matched) }

// Matched returns a copy of the constituents matched so far.
func (a *Arc) Matched() []*Constituent {
	return append([]*Constituent(nil), a.matched...)
}

// IsComplete reports whether every right-hand-side symbol has been matched.
func (a *Arc) IsComplete() bool {
	return len(a.matched) == a.rule.n
}

// Constituent returns the tree built by a complete arc, or nil.
func (a *Arc) Constituent() *Constituent { return a.built }

// NextSymbol returns the symbol after the dot. ok is false for complete arcs.
func (a *Arc) NextSymbol() (sym Symbol, ok bool) {
	if a.IsComplete() {
		return Symbol{}, false
	}
	return a.rule.rhs[len(a.matched)], true
}

// Extend returns the arc obtained by matching child against the next symbol.
// The caller must ensure the arc is incomplete and child's head is the next
// symbol. When the new arc is complete it carries a freshly built constituent.
func (a *Arc) Extend(child *Constituent) *Arc {
	matched := make([]*Constituent, len(a.matched)+1)
	copy(matched, a.matched)
	matched[len(a.matched)] = child

	next := &Arc{
		span:    Span{a.span.Start, child.span.End},
		rule:    a.rule,
		matched: matched,
	}
	if next.IsComplete() {
		next.built = newConstituent(next.span, a.rule.head, matched)
	}
	return next
}

// Matches reports whether other is a duplicate of a under the given policy.
// Incomplete arcs are duplicates when span, rule and dot agree; the policy
// decides how complete arcs are told apart. Unknown policies compare complete
// arcs like DedupIdentity.
func (a *Arc) Matches(other *Arc, policy Dedup) bool {
	if a.key() != other.key() {
		return false
	}
	if a.built == nil || other.built == nil {
		return a.built == other.built
	}
	switch policy {
	case DedupSpan:
		return true
	case DedupStructure:
		return a.built.Equal(other.built)
	default:
		// DedupIdentity, and unknown policies never merge distinct trees.
		return a.built == other.built
	}
}

func (a *Arc) key() arcKey {
	return arcKey{start: a.span.Start, end: a.span.End, rule: a.rule, dot: len(a.matched)}
}

func (a *Arc) state() string {
	if a.IsComplete() {
		return "c"
	}
	return "i"
}

func (a *Arc) String() string {
	next := ""
	if sym, ok := a.NextSymbol(); ok {
		next = sym.String()
	}
	return fmt.Sprintf("[ %s (%s) %s %s ]", a.rule, next, a.span, a.state())
}
