package lexer

import (
	"io"

	"github.com/fatih/color"
	"iblang/token"
)

// Observer is notified while the lexer scans. The lexer never depends on
// what an observer does.
type Observer interface {
	OnToken(tok token.Token)
	OnWhitespace(c byte, span token.Span)
}

// Recorder is an Observer that keeps everything it sees.
type Recorder struct {
	Tokens     []token.Token
	Whitespace []byte
}

func (r *Recorder) OnToken(tok token.Token) {
	r.Tokens = append(r.Tokens, tok)
}

func (r *Recorder) OnWhitespace(c byte, _ token.Span) {
	r.Whitespace = append(r.Whitespace, c)
}

var (
	commentColor     = color.New(color.FgHiBlack)
	whitespaceColor  = color.New(color.FgHiBlack)
	keywordColor     = color.New(color.FgBlue)
	controlflowColor = color.New(color.FgMagenta)
	bracketsColor    = color.New(color.FgGreen)
	garbageColor     = color.New(color.FgWhite, color.BgRed)
	operatorColor    = color.New(color.FgRed)
	numberColor      = color.New(color.FgCyan)
	stringColor      = color.New(color.FgYellow)
	identifierColor  = color.New(color.FgWhite)
)

// ColorPrinter echoes the source back with every token coloured by kind.
// With ShowWhitespace set, whitespace is drawn visibly.
type ColorPrinter struct {
	w              io.Writer
	ShowWhitespace bool
	err            error
}

func NewColorPrinter(w io.Writer, showWhitespace bool) *ColorPrinter {
	return &ColorPrinter{w: w, ShowWhitespace: showWhitespace}
}

// Err returns the first write error, if any.
func (p *ColorPrinter) Err() error {
	return p.err
}

func (p *ColorPrinter) OnToken(tok token.Token) {
	if tok.Type == token.EOF {
		return
	}
	p.print(colorFor(tok.Type), tok.Lexeme)
}

func (p *ColorPrinter) OnWhitespace(c byte, _ token.Span) {
	var display string
	switch c {
	case '\r':
		display = ""
		if p.ShowWhitespace {
			display = `\r`
		}
	case '\n':
		display = "\n"
		if p.ShowWhitespace {
			display = "\\n\n"
		}
	case '\t':
		display = "    "
		if p.ShowWhitespace {
			display = "»   "
		}
	default:
		display = " "
		if p.ShowWhitespace {
			display = "·"
		}
	}
	if display != "" {
		p.print(whitespaceColor, display)
	}
}

func (p *ColorPrinter) print(c *color.Color, s string) {
	if p.err != nil {
		return
	}
	_, p.err = c.Fprint(p.w, s)
}

func colorFor(tt token.TokenType) *color.Color {
	switch {
	case tt == token.COMMENT:
		return commentColor
	case tt.IsControlFlow():
		return controlflowColor
	case tt.IsKeyword():
		return keywordColor
	case tt.IsBracket(), tt == token.COMMA:
		return bracketsColor
	case tt.IsOperator():
		return operatorColor
	case tt == token.INTEGER, tt == token.FLOAT:
		return numberColor
	case tt == token.STRING:
		return stringColor
	case tt == token.GARBAGE:
		return garbageColor
	default:
		return identifierColor
	}
}
