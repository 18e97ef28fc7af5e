package parser

import (
	"github.com/tliron/commonlog"
	"iblang/internal/ast"
	"iblang/internal/errors"
	"iblang/token"
)

var log = commonlog.GetLogger("iblang.parser")

// Parser is a recursive-descent parser over a Cursor. It never fails: every
// malformed construct becomes a Bad node plus a diagnostic.
type Parser struct {
	cursor *Cursor
	diags  *errors.List
	trace  bool
}

type Option func(*Parser)

// WithTrace logs every production entered at debug level on the
// "iblang.parser" logger.
func WithTrace(enabled bool) Option {
	return func(p *Parser) { p.trace = enabled }
}

// NewParser shares the cursor's diagnostics sink.
func NewParser(cursor *Cursor, opts ...Option) *Parser {
	p := &Parser{cursor: cursor, diags: cursor.Diagnostics()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse runs a parser over cursor and returns the file together with every
// diagnostic in the sink.
func Parse(cursor *Cursor, opts ...Option) (*ast.File, []errors.Diagnostic) {
	p := NewParser(cursor, opts...)
	file := p.ParseFile()
	return file, p.diags.Items()
}

// ParseFile parses function declarations until EOF. Comments are dropped;
// any other token is reported and skipped.
func (p *Parser) ParseFile() *ast.File {
	p.traceProduction("file")

	file := &ast.File{}
	for {
		tok := p.peek()
		switch tok.Type {
		case token.FUNC:
			file.Functions = append(file.Functions, p.parseFunction())
		case token.COMMENT:
			p.advance()
		case token.EOF:
			file.Name = tok.Span.Source
			file.Span = token.NewSpan(tok.Span.Source, 0, tok.Span.End)
			return file
		default:
			p.report(tok, "file")
			p.advance()
		}
	}
}

func (p *Parser) traceProduction(production string) {
	if !p.trace {
		return
	}
	tok := p.peek()
	log.Debugf("%s: %s %q at %s", production, tok.Type, tok.Lexeme, tok.Span)
}
