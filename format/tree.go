package format

import (
	"io"
	"strings"

	"github.com/dhamidi/chartparse/earley"
)

const indentUnit = "    "

// TreeEncoder writes one node per line: interior nodes open with "(head"
// and close with ")", leaves are quoted, and each level is indented by four
// spaces.
type TreeEncoder struct {
	w    io.Writer
	tree *earley.Constituent
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(c *earley.Constituent) error {
	e.tree = c
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	writeTree(&sb, e.tree, "")
	return []byte(sb.String()), nil
}

func writeTree(sb *strings.Builder, c *earley.Constituent, indent string) {
	if c.IsLeaf() {
		sb.WriteString(indent)
		sb.WriteString("'")
		sb.WriteString(c.Head().Name())
		sb.WriteString("'\n")
		return
	}
	sb.WriteString(indent)
	sb.WriteString("(")
	sb.WriteString(c.Head().String())
	sb.WriteString("\n")
	for i := 0; i < c.Len(); i++ {
		writeTree(sb, c.Child(i), indent+indentUnit)
	}
	sb.WriteString(indent)
	sb.WriteString(")\n")
}

// SexpEncoder writes each tree on a single line.
type SexpEncoder struct {
	w    io.Writer
	tree *earley.Constituent
}

func NewSexpEncoder(w io.Writer) *SexpEncoder {
	return &SexpEncoder{w: w}
}

func (e *SexpEncoder) Encode(c *earley.Constituent) error {
	e.tree = c
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *SexpEncoder) MarshalText() ([]byte, error) {
	return []byte(e.tree.String() + "\n"), nil
}
