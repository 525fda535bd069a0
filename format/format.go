// Package format renders parse trees and grammars for people and programs.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/chartparse/earley"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(c *earley.Constituent) error
}

// NewEncoder returns the encoder for the named output format
// ("tree", "sexp" or "json").
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "tree":
		return NewTreeEncoder(w), nil
	case "sexp":
		return NewSexpEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}
