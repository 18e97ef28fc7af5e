package lexer

import (
	"unicode/utf8"

	"iblang/internal/errors"
	"iblang/token"
)

// compoundOperators is the fixed two-character operator table. "//" is not in
// it: that pair starts a comment.
var compoundOperators = map[string]token.TokenType{
	"<=": token.LESS_EQUAL,
	">=": token.GREATER_EQUAL,
	"==": token.EQUAL_EQUAL,
	"!=": token.BANG_EQUAL,
	"&&": token.AND,
	"||": token.OR,
	"+=": token.PLUS_EQUAL,
	"-=": token.MINUS_EQUAL,
	"*=": token.STAR_EQUAL,
	"/=": token.SLASH_EQUAL,
	"%=": token.PERCENT_EQUAL,
	"<<": token.SHIFT_LEFT,
	">>": token.SHIFT_RIGHT,
}

var singleOperators = map[byte]token.TokenType{
	'<': token.LESS,
	'>': token.GREATER,
	'+': token.PLUS,
	'-': token.MINUS,
	'*': token.STAR,
	'/': token.SLASH,
	'&': token.AMPERSAND,
	'|': token.PIPE,
	'%': token.PERCENT,
	'!': token.BANG,
	'=': token.EQUAL,
}

var punctuation = map[byte]token.TokenType{
	'[': token.LEFT_BRACKET,
	']': token.RIGHT_BRACKET,
	'{': token.LEFT_BRACE,
	'}': token.RIGHT_BRACE,
	'(': token.LEFT_PAREN,
	')': token.RIGHT_PAREN,
	',': token.COMMA,
}

// Lexer turns one source unit into tokens. It never fails: input it cannot
// classify becomes a one-character GARBAGE token.
type Lexer struct {
	name     string
	source   string
	start    int
	current  int
	lines    token.LineMap
	diags    *errors.List
	observer Observer
	done     bool
}

type Option func(*Lexer)

// WithDiagnostics makes the lexer report unterminated strings to list.
func WithDiagnostics(list *errors.List) Option {
	return func(l *Lexer) { l.diags = list }
}

// WithObserver notifies o of every token and whitespace character.
func WithObserver(o Observer) Option {
	return func(l *Lexer) { l.observer = o }
}

func New(name, source string, opts ...Option) *Lexer {
	l := &Lexer{name: name, source: source}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Lex runs a lexer over source and returns every token, EOF included, plus
// the line map built along the way.
func Lex(name, source string, opts ...Option) ([]token.Token, *token.LineMap) {
	l := New(name, source, opts...)
	tokens := l.ScanTokens()
	return tokens, l.Lines()
}

// ScanTokens materializes the remaining tokens. The result always ends with
// exactly one EOF token.
func (l *Lexer) ScanTokens() []token.Token {
	var tokens []token.Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}

// Lines returns the line map. It is complete once EOF has been produced.
func (l *Lexer) Lines() *token.LineMap {
	return &l.lines
}

// Next returns the next token. Once the input is exhausted it keeps returning
// an EOF token collapsed at the final offset.
func (l *Lexer) Next() token.Token {
	if l.done {
		return token.Token{Type: token.EOF, Span: l.span(len(l.source), len(l.source))}
	}

	for !l.isAtEnd() {
		l.start = l.current
		c := l.peek()

		switch {
		case isWhitespace(c):
			l.scanWhitespace(c)
			continue
		case isAlpha(c):
			return l.scanIdentifier()
		case isDigit(c):
			return l.scanNumber()
		case c == '"':
			return l.scanString()
		}

		if tt, ok := punctuation[c]; ok {
			l.advance()
			return l.addToken(tt)
		}
		if _, ok := singleOperators[c]; ok {
			return l.scanOperator()
		}
		return l.scanGarbage()
	}

	l.start = l.current
	l.done = true
	return l.addToken(token.EOF)
}

func (l *Lexer) scanWhitespace(c byte) {
	if c == '\n' {
		l.lines.Add(l.current)
	}
	l.advance()
	if l.observer != nil {
		l.observer.OnWhitespace(c, l.span(l.start, l.current))
	}
}

// scanIdentifier reads letters and digits. The keyword lookup is
// case-insensitive but the token keeps the original spelling.
func (l *Lexer) scanIdentifier() token.Token {
	for isAlpha(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}
	return l.addToken(token.LookupIdent(l.source[l.start:l.current]))
}

// scanNumber reads digits; a single '.' followed by at least one digit
// turns the literal into a float. A trailing '.' is left for the next token.
func (l *Lexer) scanNumber() token.Token {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
		return l.addToken(token.FLOAT)
	}
	return l.addToken(token.INTEGER)
}

// scanString consumes the opening quote and everything up to and including
// the closing quote or the first line break.
func (l *Lexer) scanString() token.Token {
	l.advance()
	terminated := false
	for !l.isAtEnd() {
		c := l.advance()
		if c == '"' {
			terminated = true
			break
		}
		if isLineBreak(c) {
			if c == '\n' {
				l.lines.Add(l.current - 1)
			}
			break
		}
	}

	tok := l.addToken(token.STRING)
	if !terminated && l.diags != nil {
		l.diags.Add(errors.UnterminatedString(tok.Span))
	}
	return tok
}

// scanOperator reads one operator character and tries the two-character
// table. "//" switches to comment scanning.
func (l *Lexer) scanOperator() token.Token {
	c := l.advance()

	if !l.isAtEnd() {
		pair := string([]byte{c, l.peek()})
		if pair == "//" {
			return l.scanSingleLineComment()
		}
		if tt, ok := compoundOperators[pair]; ok {
			l.advance()
			return l.addToken(tt)
		}
	}

	return l.addToken(singleOperators[c])
}

func (l *Lexer) scanSingleLineComment() token.Token {
	for !l.isAtEnd() && !isLineBreak(l.peek()) {
		l.advance()
	}
	return l.addToken(token.COMMENT)
}

// scanGarbage consumes exactly one character, which may be several bytes.
func (l *Lexer) scanGarbage() token.Token {
	_, size := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += size
	return l.addToken(token.GARBAGE)
}

func (l *Lexer) addToken(tt token.TokenType) token.Token {
	tok := token.Token{
		Type:   tt,
		Lexeme: l.source[l.start:l.current],
		Span:   l.span(l.start, l.current),
	}
	if l.observer != nil {
		l.observer.OnToken(tok)
	}
	return tok
}

func (l *Lexer) span(start, end int) token.Span {
	return token.Span{Source: l.name, Start: start, End: end}
}

func (l *Lexer) advance() byte {
	c := l.source[l.current]
	l.current++
	return c
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isLineBreak(c byte) bool {
	return c == '\n' || c == '\r'
}
