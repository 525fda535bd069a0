package earley

import (
	"fmt"
	"strings"
)

// Span is a half-open interval [Start, End) of input positions.
type Span struct {
	Start int
	End   int
}

// Len returns the number of tokens covered.
func (s Span) Len() int { return s.End - s.Start }

func (s Span) String() string {
	return fmt.Sprintf("(%d %d)", s.Start, s.End)
}

// Constituent is a node of a parse tree. Leaves carry the token text as a
// terminal head and have no children; interior nodes carry the nonterminal
// of the rule that built them.
//
// Constituents are immutable and shared: the same subtree may appear under
// several parents when the grammar is ambiguous.
type Constituent struct {
	span     Span
	head     Symbol
	children []*Constituent
}

func newLeaf(pos int, token string) *Constituent {
	return &Constituent{span: Span{pos, pos + 1}, head: Terminal(token)}
}

func newConstituent(span Span, head Symbol, children []*Constituent) *Constituent {
	return &Constituent{span: span, head: head, children: children}
}

// Span returns the input interval covered.
func (c *Constituent) Span() Span { return c.span }

// Start returns the first input position covered.
func (c *Constituent) Start() int { return c.span.Start }

// End returns the position just past the last token covered.
func (c *Constituent) End() int { return c.span.End }

// Head returns the node label.
func (c *Constituent) Head() Symbol { return c.head }

// IsLeaf reports whether c is a token leaf.
func (c *Constituent) IsLeaf() bool { return len(c.children) == 0 }

// Len returns the number of children.
func (c *Constituent) Len() int { return len(c.children) }

// Child returns the i-th child.
func (c *Constituent) Child(i int) *Constituent { return c.children[i] }

// Children returns a copy of the child list.
func (c *Constituent) Children() []*Constituent {
	return append([]*Constituent(nil), c.children...)
}

// Leaves returns the token texts of the tree in input order.
func (c *Constituent) Leaves() []string {
	var out []string
	var walk func(*Constituent)
	walk = func(n *Constituent) {
		if n.IsLeaf() {
			out = append(out, n.head.name)
			return
		}
		for _, child := range n.children {
			walk(child)
		}
	}
	walk(c)
	return out
}

// Equal reports whether both trees have the same heads, spans and shape.
func (c *Constituent) Equal(other *Constituent) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	if c.span != other.span || c.head != other.head || len(c.children) != len(other.children) {
		return false
	}
	for i := range c.children {
		if !c.children[i].Equal(other.children[i]) {
			return false
		}
	}
	return true
}

// String renders the tree as an s-expression, e.g. ($s ($l 'Hello') ($r 'World')).
func (c *Constituent) String() string {
	var sb strings.Builder
	c.writeTo(&sb)
	return sb.String()
}

func (c *Constituent) writeTo(sb *strings.Builder) {
	if c.IsLeaf() {
		sb.WriteString("'")
		sb.WriteString(c.head.name)
		sb.WriteString("'")
		return
	}
	sb.WriteString("(")
	sb.WriteString(c.head.String())
	for _, child := range c.children {
		sb.WriteString(" ")
		child.writeTo(sb)
	}
	sb.WriteString(")")
}
