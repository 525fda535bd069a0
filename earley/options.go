package earley

import (
	"fmt"
	"io"

	"github.com/tliron/commonlog"
)

// Dedup selects how complete arcs are compared when inserted into the chart.
// Incomplete arcs are always duplicates when span, rule and dot agree.
type Dedup int

const (
	// DedupSpan treats complete arcs with the same span and rule as
	// duplicates: the first derivation of a rule over a span wins. Distinct
	// trees that differ only below such a rule are dropped, so the forest can
	// miss real ambiguity (for example PP attachment under np --> np pp).
	// Use DedupStructure to keep every distinct tree.
	DedupSpan Dedup = iota
	// DedupStructure treats complete arcs as duplicates when their trees are
	// structurally equal.
	DedupStructure
	// DedupIdentity never merges independently built trees, so the forest
	// may hold several equal trees.
	DedupIdentity
)

var dedupNames = map[Dedup]string{
	DedupSpan:      "span",
	DedupStructure: "structure",
	DedupIdentity:  "identity",
}

func (d Dedup) String() string {
	if name, ok := dedupNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Dedup(%d)", int(d))
}

// ParseDedup returns the policy named by s ("span", "structure" or "identity").
func ParseDedup(s string) (Dedup, error) {
	for d, name := range dedupNames {
		if name == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown dedup policy %q (expected span, structure or identity)", s)
}

// Option configures a Parser.
type Option func(*Parser)

// WithTrace dumps the chart to w before each arc is processed.
func WithTrace(w io.Writer) Option {
	return func(p *Parser) {
		p.trace = w
	}
}

// WithDedup sets the chart dedup policy. The default is DedupSpan.
func WithDedup(d Dedup) Option {
	return func(p *Parser) {
		p.dedup = d
	}
}

// WithLogger replaces the default "earley" logger.
func WithLogger(log commonlog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}
