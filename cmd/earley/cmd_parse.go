package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/dhamidi/chartparse/earley"
	"github.com/dhamidi/chartparse/format"
	"github.com/dhamidi/chartparse/grammars"
	"github.com/dhamidi/chartparse/lex"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newParseCmd() *cobra.Command {
	var grammarFile string
	var start string
	var npAttachment bool
	var dedupName string
	var separator string
	var outputFormat string
	var trace bool
	var batch bool
	var jobs int

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse tokens from a file or standard input and print every parse tree",
		Long: `Parse reads whitespace separated tokens (one per line works too), runs the
Earley algorithm and prints the number of parses followed by each tree.

Without --grammar the built-in English grammar with start symbol $sentence is used.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if trace && batch {
				return fmt.Errorf("--trace cannot be combined with --batch")
			}

			def, err := loadDefinition(grammarFile, npAttachment)
			if err != nil {
				return err
			}
			if start != "" {
				def.Start = earley.Nonterminal(strings.TrimPrefix(start, earley.Sigil))
			}

			dedup, err := earley.ParseDedup(dedupName)
			if err != nil {
				return err
			}
			splitter, err := lex.NewSplitter(separator)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			enc, err := format.NewEncoder(outputFormat, out)
			if err != nil {
				return err
			}

			input, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			opts := []earley.Option{earley.WithDedup(dedup)}
			if trace {
				opts = append(opts, earley.WithTrace(cmd.ErrOrStderr()))
			}
			parser := earley.NewParser(def.Grammar, opts...)

			if !batch {
				tokens, err := splitter.Split(input)
				if err != nil {
					return err
				}
				return writeReport(out, enc, tokens, parser.Parse(def.Start, tokens))
			}

			sentences, err := splitter.Sentences(input)
			if err != nil {
				return err
			}
			results, err := parseBatch(cmd.Context(), parser, def.Start, sentences, jobs)
			if err != nil {
				return err
			}
			for i, tokens := range sentences {
				if i > 0 {
					fmt.Fprintln(out)
				}
				if err := writeReport(out, enc, tokens, results[i]); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&grammarFile, "grammar", "g", "", "EBNF grammar file (default: built-in English grammar)")
	cmd.Flags().StringVarP(&start, "start", "s", "", "start symbol (default: $sentence, or the first production of --grammar)")
	cmd.Flags().BoolVar(&npAttachment, "np-attachment", false, "add np --> np pp to the built-in grammar")
	cmd.Flags().StringVar(&dedupName, "dedup", earley.DedupSpan.String(), "completed arc dedup policy: span keeps one tree per rule and span and can omit distinct parses; structure keeps every distinct tree; identity keeps every derivation")
	cmd.Flags().StringVar(&separator, "separator", lex.DefaultSeparator, "token separator pattern")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, sexp, json)")
	cmd.Flags().BoolVar(&trace, "trace", false, "dump the chart to stderr before each step")
	cmd.Flags().BoolVar(&batch, "batch", false, "treat blank-line separated blocks as separate sentences")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "sentences parsed concurrently in --batch mode")

	return cmd
}

func loadDefinition(grammarFile string, npAttachment bool) (*grammars.Definition, error) {
	if grammarFile == "" {
		if npAttachment {
			return grammars.DefaultWithNPAttachment(), nil
		}
		return grammars.Default(), nil
	}
	if npAttachment {
		return nil, fmt.Errorf("--np-attachment only applies to the built-in grammar")
	}
	return grammars.LoadFile(grammarFile)
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// parseBatch parses every sentence with p, at most jobs at a time, and
// returns the forests in input order.
func parseBatch(ctx context.Context, p *earley.Parser, start earley.Symbol, sentences [][]string, jobs int) ([][]*earley.Constituent, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if jobs < 1 {
		jobs = 1
	}

	results := make([][]*earley.Constituent, len(sentences))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, tokens := range sentences {
		i, tokens := i, tokens
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = p.Parse(start, tokens)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func writeReport(w io.Writer, enc format.Encoder, tokens []string, parses []*earley.Constituent) error {
	if _, err := fmt.Fprintf(w, "Input: %s\n", strings.Join(tokens, " ")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "# parses: %d\n", len(parses)); err != nil {
		return err
	}
	for _, p := range parses {
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	}
	return nil
}
