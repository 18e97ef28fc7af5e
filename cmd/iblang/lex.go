package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"iblang/internal/errors"
	"iblang/internal/lexer"
	"iblang/token"
)

var (
	lexWhitespace bool
	lexTable      bool
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Echo a file with every token coloured by kind",
	Long: `Lex a file and echo it back with keywords, literals, operators and
comments coloured by kind. --table also prints one row per token.`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	lexCmd.Flags().BoolVar(&lexWhitespace, "whitespace", false, "Draw whitespace visibly")
	lexCmd.Flags().BoolVar(&lexTable, "table", false, "Print a table of tokens after the echo")
}

func runLex(cmd *cobra.Command, args []string) error {
	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	out := cmd.OutOrStdout()
	diags := errors.NewList()
	printer := lexer.NewColorPrinter(out, lexWhitespace || cfg.Lexer.ShowWhitespace)

	tokens, lines := lexer.Lex(path, string(source),
		lexer.WithObserver(printer),
		lexer.WithDiagnostics(diags))
	if err := printer.Err(); err != nil {
		return err
	}
	log.Debugf("lexed %s: %d tokens, %d lines", path, len(tokens), lines.Lines())

	if lexTable {
		fmt.Fprintln(out)
		if err := writeTokenTable(out, tokens, lines); err != nil {
			return err
		}
	}

	if diags.Len() > 0 {
		reporter := errors.NewReporter(path, string(source), lines)
		if err := reporter.WriteAll(out, diags.Items()); err != nil {
			return err
		}
		return fmt.Errorf("%s: %d diagnostic(s)", path, diags.Len())
	}
	return nil
}

func writeTokenTable(out io.Writer, tokens []token.Token, lines *token.LineMap) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "POS\tKIND\tSPAN\tLEXEME\n")
	fmt.Fprintf(w, "---\t----\t----\t------\n")

	for _, tok := range tokens {
		line, column := lines.Position(tok.Span.Start)
		fmt.Fprintf(w, "%d:%d\t%s\t%d..%d\t%q\n",
			line, column, tok.Type, tok.Span.Start, tok.Span.End, tok.Lexeme)
	}
	return w.Flush()
}
