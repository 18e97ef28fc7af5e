package parser

import (
	"strconv"
	"strings"

	"iblang/internal/ast"
	"iblang/internal/errors"
	"iblang/token"
)

// parseExpression parses "unary [op unary]". There is at most one infix
// operator per expression; there are no precedence levels.
func (p *Parser) parseExpression() ast.Expr {
	p.traceProduction("expression")

	left := p.parseUnary()
	if !isBinaryOperator(p.peek().Type) {
		return left
	}
	return p.finishBinary(left)
}

// parseCondition is parseExpression for if conditions, which must compare
// with "==". Any other operator is still parsed but reported.
func (p *Parser) parseCondition() ast.Expr {
	p.traceProduction("condition")

	left := p.parseUnary()
	tok := p.peek()
	if tok.Type == token.EQUAL_EQUAL {
		return p.finishBinary(left)
	}

	p.diags.Add(errors.ExpectedToken(tok, token.EQUAL_EQUAL))
	if isBinaryOperator(tok.Type) {
		return p.finishBinary(left)
	}
	return left
}

func (p *Parser) finishBinary(left ast.Expr) ast.Expr {
	op := p.advance()
	right := p.parseUnary()
	return &ast.BinaryExpr{
		Span:  left.NodeSpan().Join(right.NodeSpan()),
		Left:  left,
		Op:    op,
		Right: right,
	}
}

func (p *Parser) parseUnary() ast.Expr {
	p.skipComments()
	tok := p.peek()

	switch tok.Type {
	case token.IDENTIFIER:
		p.advance()
		if p.check(token.LEFT_PAREN) {
			return p.parseCall(tok)
		}
		return &ast.IdentExpr{Span: tok.Span, Name: tok.Lexeme}

	case token.INTEGER:
		value := p.cursor.ExpectInteger()
		return &ast.IntLiteral{Span: tok.Span, Raw: tok.Lexeme, Value: int64(value)}

	case token.FLOAT:
		p.advance()
		value, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			p.diags.Add(errors.MalformedLiteral(tok, err))
			value = 0
		}
		return &ast.FloatLiteral{Span: tok.Span, Raw: tok.Lexeme, Value: value}

	case token.STRING:
		p.advance()
		return &ast.StringLiteral{Span: tok.Span, Raw: tok.Lexeme, Value: unquote(tok.Lexeme)}

	default:
		if !isCloser(tok.Type) {
			p.advance()
		}
		return &ast.BadExpr{Bad: p.badNode(tok, "expression")}
	}
}

// parseCall parses "(args)" after an already consumed callee. Commas between
// arguments are optional.
func (p *Parser) parseCall(callee token.Token) *ast.CallExpr {
	p.traceProduction("call")

	p.cursor.Expect(token.LEFT_PAREN)

	call := &ast.CallExpr{Callee: makeIdent(callee)}
	for {
		p.skipComments()
		if p.check(token.RIGHT_PAREN) || p.isAtEnd() {
			break
		}
		before := p.cursor.Index()

		call.Args = append(call.Args, p.parseExpression())
		p.cursor.TryConsume(token.COMMA)

		if p.cursor.Index() == before {
			break
		}
	}

	closing, _ := p.cursor.ExpectToken(token.RIGHT_PAREN)
	call.Span = callee.Span.Join(closing.Span)
	return call
}

// unquote strips the opening quote and the closing quote or line break.
func unquote(raw string) string {
	s := strings.TrimPrefix(raw, `"`)
	if strings.HasSuffix(s, `"`) && len(raw) > 1 {
		return strings.TrimSuffix(s, `"`)
	}
	return strings.TrimRight(s, "\r\n")
}
