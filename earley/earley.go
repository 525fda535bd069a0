package earley

import (
	"io"

	"github.com/tliron/commonlog"
)

// Parser runs the Earley algorithm over a fixed grammar. It holds no
// per-parse state, so one Parser may serve concurrent calls.
type Parser struct {
	grammar *Grammar
	dedup   Dedup
	trace   io.Writer
	log     commonlog.Logger
}

// NewParser returns a parser for g.
func NewParser(g *Grammar, opts ...Option) *Parser {
	p := &Parser{
		grammar: g,
		dedup:   DedupSpan,
		log:     commonlog.GetLogger("earley"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse returns every tree headed by start that spans all of tokens.
// No parses is reported as an empty result, not an error.
func Parse(g *Grammar, start Symbol, tokens []string, opts ...Option) []*Constituent {
	return NewParser(g, opts...).Parse(start, tokens)
}

// Parse returns every tree headed by start that spans all of tokens.
func (p *Parser) Parse(start Symbol, tokens []string) []*Constituent {
	chart := p.Fill(start, tokens)
	parses := chart.Forest(start)
	p.log.Info("parsed input",
		"start", start.String(),
		"tokens", len(tokens),
		"arcs", chart.Size(),
		"parses", len(parses))
	return parses
}

// Fill seeds a chart with the rules for start and runs predict, scan and
// complete until no new arc can be added.
func (p *Parser) Fill(start Symbol, tokens []string) *Chart {
	chart := NewChart(len(tokens), p.dedup)
	p.grammar.each(start, func(r Rule) {
		chart.Insert(predict(r, 0))
	})

	debug := p.log.AllowLevel(commonlog.Debug)

	for i := 0; i < chart.Len(); i++ {
		// Arcs appended to cell i while it is being processed are visited too.
		for j := 0; j < chart.width(i); j++ {
			if p.trace != nil {
				if err := writeChart(p.trace, chart); err != nil {
					p.log.Warningf("write chart trace: %s", err)
				}
			}

			a := chart.at(i, j)
			if debug {
				p.log.Debugf("cell %d arc %d: %s", i, j, a)
			}
			if a.IsComplete() {
				p.complete(chart, a)
			} else {
				p.predictAndScan(chart, a, tokens)
			}
		}
	}

	return chart
}

// complete extends every arc at a's start that is waiting for a's head.
func (p *Parser) complete(chart *Chart, a *Arc) {
	built := a.Constituent()
	origin := a.Start()
	for k := 0; k < chart.width(origin); k++ {
		b := chart.at(origin, k)
		if next, ok := b.NextSymbol(); ok && next == built.head {
			chart.Insert(b.Extend(built))
		}
	}
}

// predictAndScan adds an arc for every rule producing a's next symbol and,
// for lexical rules matching the token at a's end, the complete arc.
func (p *Parser) predictAndScan(chart *Chart, a *Arc, tokens []string) {
	next, _ := a.NextSymbol()
	pos := a.End()
	p.grammar.each(next, func(r Rule) {
		chart.Insert(predict(r, pos))
		if r.IsLexical() && pos < len(tokens) && tokens[pos] == r.rhs[0].name {
			chart.Insert(scan(r, pos, tokens[pos]))
		}
	})
}
