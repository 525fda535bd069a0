package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/chartparse/earley"
)

type JSONEncoder struct {
	w    io.Writer
	tree *earley.Constituent
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(c *earley.Constituent) error {
	e.tree = c
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(nodeToJSON(e.tree), "", "  ")
}

type jsonNode struct {
	Head     string      `json:"head"`
	Token    string      `json:"token,omitempty"`
	Span     [2]int      `json:"span"`
	Children []*jsonNode `json:"children,omitempty"`
}

func nodeToJSON(c *earley.Constituent) *jsonNode {
	if c.IsLeaf() {
		return &jsonNode{
			Head:  c.Head().String(),
			Token: c.Head().Name(),
			Span:  [2]int{c.Start(), c.End()},
		}
	}
	n := &jsonNode{
		Head: c.Head().String(),
		Span: [2]int{c.Start(), c.End()},
	}
	for i := 0; i < c.Len(); i++ {
		n.Children = append(n.Children, nodeToJSON(c.Child(i)))
	}
	return n
}
