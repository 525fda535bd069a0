package earley

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// WriteChart renders every cell of c as a table of rule, next symbol, span
// and state (c for complete, i for incomplete).
func WriteChart(w io.Writer, c *Chart) error {
	return writeChart(w, c)
}

func writeChart(w io.Writer, c *Chart) error {
	if _, err := fmt.Fprintln(w, "Chart:"); err != nil {
		return err
	}
	for i, cl := range c.cells {
		if len(cl.arcs) == 0 {
			if _, err := fmt.Fprintf(w, "Cell %d: (empty)\n", i); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "Cell %d:\n", i); err != nil {
			return err
		}

		data := make([][]string, 0, len(cl.arcs))
		for _, a := range cl.arcs {
			next := ""
			if sym, ok := a.NextSymbol(); ok {
				next = sym.String()
			}
			data = append(data, []string{a.rule.String(), next, a.span.String(), a.state()})
		}

		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"RULE", "NEXT", "SPAN", "STATE"})
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetAutoWrapText(false)
		table.SetHeaderLine(false)
		table.SetBorder(false)
		table.SetNoWhiteSpace(true)
		table.SetTablePadding("  ")
		table.AppendBulk(data)
		table.Render()
	}
	return nil
}
