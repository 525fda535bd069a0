package format

import (
	"io"
	"strings"

	"github.com/dhamidi/chartparse/earley"
	"github.com/olekukonko/tablewriter"
)

// WriteRules prints the grammar's rules as a table in grammar order.
func WriteRules(w io.Writer, g *earley.Grammar) {
	data := make([][]string, 0, g.Len())
	for _, r := range g.Rules() {
		rhs := make([]string, r.Len())
		for i := range rhs {
			rhs[i] = r.At(i).String()
		}
		kind := "syntactic"
		if r.IsLexical() {
			kind = "lexical"
		}
		data = append(data, []string{r.Head().String(), strings.Join(rhs, " "), kind})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"HEAD", "RHS", "KIND"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}
