package parser

import (
	"fmt"
	"os"

	"iblang/internal/errors"
	"iblang/internal/lexer"
)

// ParseSource runs the whole pipeline over one source unit: lex, materialize,
// parse. Lexer and parser share one diagnostics sink.
func ParseSource(name, source string, opts ...Option) *ParseResult {
	diags := errors.NewList()
	tokens, lines := lexer.Lex(name, source, lexer.WithDiagnostics(diags))

	cursor := NewCursor(tokens, diags)
	file := NewParser(cursor, opts...).ParseFile()

	return &ParseResult{
		Name:        name,
		Source:      source,
		Tokens:      tokens,
		Lines:       lines,
		File:        file,
		Diagnostics: diags.Items(),
	}
}

// ParseFile reads path and parses it.
func ParseFile(path string, opts ...Option) (*ParseResult, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseSource(path, string(source), opts...), nil
}
