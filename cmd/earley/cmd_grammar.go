package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/dhamidi/chartparse/format"
	"github.com/dhamidi/chartparse/grammars"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "grammar",
		Short:         "Grammar tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newGrammarCheckCmd())
	cmd.AddCommand(newGrammarShowCmd())

	return cmd
}

func newGrammarCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "check <file>",
		Short:         "Parse an EBNF grammar file and verify it converts to parser rules",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			data, err := os.ReadFile(filename)
			if err != nil {
				err = fmt.Errorf("open file: %w", err)
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}

			if startProduction != "" {
				if err := grammars.Verify(filename, bytes.NewReader(data), startProduction); err != nil {
					printErrors(cmd.ErrOrStderr(), err)
					return err
				}
			}

			def, err := grammars.LoadEBNF(filename, bytes.NewReader(data))
			if err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rules, %d nonterminals, start %s\n",
				filename, def.Grammar.Len(), len(def.Grammar.Heads()), def.Start)
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production for reachability verification (if empty, only checks syntax)")

	return cmd
}

func newGrammarShowCmd() *cobra.Command {
	var npAttachment bool

	cmd := &cobra.Command{
		Use:           "show [file]",
		Short:         "Print the rules of a grammar (the built-in grammar without a file)",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) == 1 {
				file = args[0]
			}
			def, err := loadDefinition(file, npAttachment)
			if err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "start: %s\n", def.Start)
			format.WriteRules(cmd.OutOrStdout(), def.Grammar)
			return nil
		},
	}

	cmd.Flags().BoolVar(&npAttachment, "np-attachment", false, "add np --> np pp to the built-in grammar")

	return cmd
}

// printErrors prints one line per error when err wraps an error list.
func printErrors(w io.Writer, err error) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		v := reflect.ValueOf(e)
		if v.Kind() == reflect.Slice {
			for i := 0; i < v.Len(); i++ {
				fmt.Fprintln(w, v.Index(i).Interface())
			}
			return
		}
	}
	fmt.Fprintln(w, err)
}
