package parser

import (
	"strconv"

	"iblang/internal/errors"
	"iblang/token"
)

// Cursor is a read-only view over a materialized token slice. Misses are
// recorded in the shared diagnostics sink instead of being returned.
type Cursor struct {
	tokens []token.Token
	index  int
	diags  *errors.List
}

// NewCursor panics unless tokens ends with exactly one EOF token; a lexer
// never produces anything else.
func NewCursor(tokens []token.Token, diags *errors.List) *Cursor {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != token.EOF {
		panic("parser: token slice must end with an EOF token")
	}
	for _, tok := range tokens[:len(tokens)-1] {
		if tok.Type == token.EOF {
			panic("parser: EOF token before the end of the token slice")
		}
	}
	if diags == nil {
		diags = errors.NewList()
	}
	return &Cursor{tokens: tokens, diags: diags}
}

func (c *Cursor) Peek() token.Token {
	return c.tokens[c.index]
}

// Advance returns the current token and moves past it. At EOF it stays put.
func (c *Cursor) Advance() token.Token {
	tok := c.tokens[c.index]
	if c.index < len(c.tokens)-1 {
		c.index++
	}
	return tok
}

func (c *Cursor) Check(tt token.TokenType) bool {
	return c.Peek().Type == tt
}

// Expect consumes a token of kind tt and returns its text. On a mismatch it
// records a diagnostic, does not advance and returns "".
func (c *Cursor) Expect(tt token.TokenType) string {
	tok, ok := c.ExpectToken(tt)
	if !ok {
		return ""
	}
	return tok.Lexeme
}

// ExpectToken is Expect returning the whole token. The token returned on a
// mismatch has kind tt, no text and a span collapsed at the current token.
func (c *Cursor) ExpectToken(tt token.TokenType) (token.Token, bool) {
	if c.Check(tt) {
		return c.Advance(), true
	}

	found := c.Peek()
	c.diags.Add(errors.ExpectedToken(found, tt))
	at := found.Span
	at.End = at.Start
	return token.Token{Type: tt, Span: at}, false
}

// TryConsume advances past a token of kind tt if it is next. It never records
// a diagnostic.
func (c *Cursor) TryConsume(tt token.TokenType) bool {
	if c.Check(tt) {
		c.Advance()
		return true
	}
	return false
}

func (c *Cursor) ExpectIdentifier() string {
	return c.Expect(token.IDENTIFIER)
}

// ExpectInteger consumes an integer literal and converts it. A literal that
// does not fit an int records a diagnostic and yields 0.
func (c *Cursor) ExpectInteger() int {
	tok, ok := c.ExpectToken(token.INTEGER)
	if !ok {
		return 0
	}
	value, err := strconv.Atoi(tok.Lexeme)
	if err != nil {
		c.diags.Add(errors.MalformedLiteral(tok, err))
		return 0
	}
	return value
}

// Index is the position of the current token.
func (c *Cursor) Index() int {
	return c.index
}

func (c *Cursor) Diagnostics() *errors.List {
	return c.diags
}
