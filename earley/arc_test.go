package earley

import "testing"

func TestArcExtendIsPure(t *testing.T) {
	rule := r("$np", "$det", "$noun")
	a := predict(rule, 0)
	det := scan(r("$det", "the"), 0, "the").Constituent()

	b := a.Extend(det)
	if a.Dot() != 0 || a.End() != 0 {
		t.Errorf("receiver changed: dot=%d end=%d", a.Dot(), a.End())
	}
	if b.Dot() != 1 || b.Start() != 0 || b.End() != 1 {
		t.Errorf("extended arc: dot=%d span=%s", b.Dot(), b.Span())
	}
	if b.IsComplete() || b.Constituent() != nil {
		t.Error("half-matched arc reported complete")
	}
	next, ok := b.NextSymbol()
	if !ok || next != Nonterminal("noun") {
		t.Errorf("NextSymbol() = %s, %v", next, ok)
	}
}

func TestArcCompletionBuildsConstituent(t *testing.T) {
	det := scan(r("$det", "the"), 0, "the").Constituent()
	noun := scan(r("$noun", "boy"), 1, "boy").Constituent()

	a := predict(r("$np", "$det", "$noun"), 0).Extend(det)
	b := a.Extend(noun)

	if !b.IsComplete() {
		t.Fatal("arc with all symbols matched is not complete")
	}
	if _, ok := b.NextSymbol(); ok {
		t.Error("complete arc has a next symbol")
	}
	c := b.Constituent()
	if c.Head() != Nonterminal("np") || c.Span() != (Span{0, 2}) {
		t.Errorf("constituent = %s over %s", c.Head(), c.Span())
	}
	if c.Child(0) != det || c.Child(1) != noun {
		t.Error("children are not the matched constituents")
	}
	if got, want := c.String(), "($np ($det 'the') ($noun 'boy'))"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	// Extending the same partial arc twice must not share the matched slice.
	other := scan(r("$noun", "dog"), 1, "dog").Constituent()
	b2 := a.Extend(other)
	if b.Constituent().Child(1) != noun || b2.Constituent().Child(1) != other {
		t.Error("sibling extensions share storage")
	}
}

func TestScanBuildsLexicalArc(t *testing.T) {
	a := scan(r("$noun", "apple"), 2, "apple")
	if !a.IsComplete() || a.Dot() != 1 || a.Span() != (Span{2, 3}) {
		t.Fatalf("scan arc: complete=%v dot=%d span=%s", a.IsComplete(), a.Dot(), a.Span())
	}
	leaf := a.Constituent().Child(0)
	if !leaf.IsLeaf() || leaf.Head() != Terminal("apple") || leaf.Span() != (Span{2, 3}) {
		t.Errorf("leaf = %s over %s", leaf.Head(), leaf.Span())
	}
}

func TestArcMatches(t *testing.T) {
	rule := r("$noun", "apple")
	p1, p2 := predict(rule, 1), predict(rule, 1)
	s1, s2 := scan(rule, 1, "apple"), scan(rule, 1, "apple")

	tests := []struct {
		name   string
		a, b   *Arc
		policy Dedup
		want   bool
	}{
		{"incomplete same key", p1, p2, DedupIdentity, true},
		{"incomplete other start", p1, predict(rule, 2), DedupSpan, false},
		{"incomplete other rule", p1, predict(r("$noun", "worm"), 1), DedupSpan, false},
		{"complete vs incomplete", s1, p1, DedupSpan, false},
		{"complete span", s1, s2, DedupSpan, true},
		{"complete structure", s1, s2, DedupStructure, true},
		{"complete identity distinct", s1, s2, DedupIdentity, false},
		{"complete identity self", s1, s1, DedupIdentity, true},
		{"complete unknown policy distinct", s1, s2, Dedup(42), false},
		{"complete unknown policy self", s1, s1, Dedup(42), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Matches(tt.b, tt.policy); got != tt.want {
				t.Errorf("Matches = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestArcMatchesStructureDistinguishesTrees(t *testing.T) {
	rule := r("$np", "$noun")
	apple := scan(r("$noun", "apple"), 0, "apple").Constituent()
	other := scan(r("$noun", "apple"), 0, "apple").Constituent()

	a := predict(rule, 0).Extend(apple)
	b := predict(rule, 0).Extend(other)
	if !a.Matches(b, DedupStructure) {
		t.Error("structurally equal trees not matched")
	}
	if a.Matches(b, DedupIdentity) {
		t.Error("distinct trees matched under identity")
	}
}

func TestArcString(t *testing.T) {
	a := predict(r("$np", "$det", "$noun"), 3)
	if got, want := a.String(), "[ $np --> $det $noun ($det) (3 3) i ]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
