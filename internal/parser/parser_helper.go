package parser

import (
	"iblang/internal/ast"
	"iblang/internal/errors"
	"iblang/token"
)

func (p *Parser) advance() token.Token {
	return p.cursor.Advance()
}

func (p *Parser) check(tt token.TokenType) bool {
	return p.cursor.Check(tt)
}

func (p *Parser) peek() token.Token {
	return p.cursor.Peek()
}

func (p *Parser) isAtEnd() bool {
	return p.check(token.EOF)
}

// skipComments steps over comment tokens. Productions call it wherever a
// line comment may end the line.
func (p *Parser) skipComments() {
	for p.check(token.COMMENT) {
		p.advance()
	}
}

// report records the right diagnostic for a token no production accepts and
// returns it.
func (p *Parser) report(tok token.Token, context string) errors.Diagnostic {
	var d errors.Diagnostic
	if tok.Type == token.GARBAGE {
		d = errors.GarbageInput(tok)
	} else {
		d = errors.UnexpectedToken(tok, context)
	}
	p.diags.Add(d)
	return d
}

func (p *Parser) badNode(tok token.Token, context string) ast.BadNode {
	d := p.report(tok, context)
	return ast.BadNode{Token: tok, Message: d.Message}
}

// expectIdent consumes an identifier. On a miss the ident is empty and its
// span collapsed at the current token.
func (p *Parser) expectIdent() ast.Ident {
	tok := p.peek()
	value := p.cursor.ExpectIdentifier()
	if value == "" {
		at := tok.Span
		at.End = at.Start
		return ast.Ident{Span: at}
	}
	return ast.Ident{Span: tok.Span, Value: value}
}

// Helper functions.

func makeIdent(tok token.Token) ast.Ident {
	return ast.Ident{Span: tok.Span, Value: tok.Lexeme}
}

func isBinaryOperator(tt token.TokenType) bool {
	switch tt {
	case token.PLUS, token.MINUS, token.STAR, token.SLASH, token.EQUAL_EQUAL:
		return true
	}
	return false
}

// isCloser reports tokens an enclosing production still needs to match.
func isCloser(tt token.TokenType) bool {
	switch tt {
	case token.LEFT_BRACE, token.RIGHT_BRACE, token.RIGHT_PAREN, token.EOF:
		return true
	}
	return false
}
