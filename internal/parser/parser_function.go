package parser

import (
	"iblang/internal/ast"
	"iblang/token"
)

// parseFunction parses "func name(params) { ... }". The caller has seen the
// func keyword.
func (p *Parser) parseFunction() *ast.FunctionDecl {
	p.traceProduction("function")

	start := p.advance()
	name := p.expectIdent()
	params := p.parseFunctionParameters()
	body := p.parseBlock()

	return &ast.FunctionDecl{
		Span:   start.Span.Join(body.Span),
		Name:   name,
		Params: params,
		Body:   body,
	}
}

// parseFunctionParameters parses "(type name, type name)". A missing comma
// between two parameters is tolerated.
func (p *Parser) parseFunctionParameters() []*ast.Param {
	p.traceProduction("parameters")

	if _, ok := p.cursor.ExpectToken(token.LEFT_PAREN); !ok {
		return nil
	}

	var params []*ast.Param
	for {
		p.skipComments()
		tok := p.peek()
		if isCloser(tok.Type) {
			break
		}

		// a stray token costs one diagnostic and is skipped
		if tok.Type != token.IDENTIFIER {
			p.report(tok, "parameter list")
			p.advance()
			continue
		}

		paramType := p.expectIdent()
		paramName := p.expectIdent()
		if paramName.Value == "" && !isCloser(p.peek().Type) && !p.check(token.COMMA) {
			p.advance()
		}
		params = append(params, &ast.Param{
			Span: paramType.Span.Join(paramName.Span),
			Type: paramType,
			Name: paramName,
		})

		p.cursor.TryConsume(token.COMMA)
	}

	p.cursor.Expect(token.RIGHT_PAREN)
	return params
}

// parseBlock parses "{ statements }". Without the opening brace the block is
// empty and nothing is consumed.
func (p *Parser) parseBlock() *ast.Block {
	p.traceProduction("block")

	p.skipComments()
	open, ok := p.cursor.ExpectToken(token.LEFT_BRACE)
	block := &ast.Block{Span: open.Span}
	if !ok {
		return block
	}

	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		if p.check(token.COMMENT) {
			p.advance()
			continue
		}

		before := p.cursor.Index()
		block.Statements = append(block.Statements, p.parseStatement())
		if p.cursor.Index() == before {
			p.advance()
		}
	}

	closing, _ := p.cursor.ExpectToken(token.RIGHT_BRACE)
	block.Span = open.Span.Join(closing.Span)
	return block
}
