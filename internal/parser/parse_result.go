package parser

import (
	"io"

	"iblang/internal/ast"
	"iblang/internal/errors"
	"iblang/token"
)

// ParseResult contains everything one pipeline run produced
type ParseResult struct {
	Name        string
	Source      string
	Tokens      []token.Token
	Lines       *token.LineMap
	File        *ast.File
	Diagnostics []errors.Diagnostic
}

func (pr *ParseResult) HasErrors() bool {
	for _, d := range pr.Diagnostics {
		if d.Level == errors.Error {
			return true
		}
	}
	return false
}

// Reporter returns a reporter that positions diagnostics with the run's line map
func (pr *ParseResult) Reporter() *errors.Reporter {
	return errors.NewReporter(pr.Name, pr.Source, pr.Lines)
}

// Summaries returns every diagnostic as "line:col: message"
func (pr *ParseResult) Summaries() []string {
	reporter := pr.Reporter()
	out := make([]string, len(pr.Diagnostics))
	for i, d := range pr.Diagnostics {
		out[i] = reporter.Summary(d)
	}
	return out
}

// WriteDiagnostics renders every diagnostic rust-style to w
func (pr *ParseResult) WriteDiagnostics(w io.Writer) error {
	return pr.Reporter().WriteAll(w, pr.Diagnostics)
}

// Dump returns the debug tree of the parsed file
func (pr *ParseResult) Dump() string {
	return ast.Dump(pr.File)
}
