package parser

import (
	"iblang/internal/ast"
	"iblang/token"
)

// parseStatement dispatches on the first token alone.
func (p *Parser) parseStatement() ast.Stmt {
	p.traceProduction("statement")

	tok := p.peek()
	switch tok.Type {
	case token.IDENTIFIER:
		return p.parseIdentifierStatement()
	case token.IF:
		return p.parseIfStmt()
	case token.RETURN:
		return p.parseReturnStmt()
	default:
		p.advance()
		return &ast.BadStmt{Bad: p.badNode(tok, "statement")}
	}
}

// parseIdentifierStatement handles "name(args)" and "name = expr".
func (p *Parser) parseIdentifierStatement() ast.Stmt {
	name := p.advance()

	switch next := p.peek(); next.Type {
	case token.LEFT_PAREN:
		call := p.parseCall(name)
		return &ast.ExprStmt{Span: call.Span, Call: call}

	case token.EQUAL:
		p.advance()
		value := p.parseExpression()
		return &ast.AssignStmt{
			Span:   name.Span.Join(value.NodeSpan()),
			Target: makeIdent(name),
			Value:  value,
		}

	default:
		// the offending token is left for the enclosing block
		return &ast.BadStmt{Bad: p.badNode(next, "statement")}
	}
}

// parseIfStmt parses "if cond { } [else { }]".
func (p *Parser) parseIfStmt() *ast.IfStmt {
	p.traceProduction("if")

	start := p.advance()
	condition := p.parseCondition()
	then := p.parseBlock()

	stmt := &ast.IfStmt{
		Span:      start.Span.Join(then.Span),
		Condition: condition,
		Then:      then,
	}
	p.skipComments()
	if p.cursor.TryConsume(token.ELSE) {
		stmt.Else = p.parseBlock()
		stmt.Span = stmt.Span.Join(stmt.Else.Span)
	}
	return stmt
}

// parseReturnStmt parses "return expr". A return directly followed by the
// closing brace has no value.
func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	p.traceProduction("return")

	start := p.advance()
	p.skipComments()
	if p.check(token.RIGHT_BRACE) {
		return &ast.ReturnStmt{Span: start.Span}
	}

	value := p.parseExpression()
	return &ast.ReturnStmt{
		Span:  start.Span.Join(value.NodeSpan()),
		Value: value,
	}
}
