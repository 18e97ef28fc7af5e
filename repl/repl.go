// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"iblang/internal/lexer"
	"iblang/internal/parser"
	"iblang/token"
)

const (
	PROMPT   = ">> "
	CONTINUE = ".. "
)

const sourceName = "<repl>"

// LineReader is the prompt side of a line editor. *liner.State satisfies it.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// NewScannerReader reads lines from r without editing or echo, for piped
// input. Prompts are not printed.
func NewScannerReader(r io.Reader) LineReader {
	return &scannerReader{s: bufio.NewScanner(r)}
}

type scannerReader struct {
	s *bufio.Scanner
}

func (r *scannerReader) Prompt(string) (string, error) {
	if r.s.Scan() {
		return r.s.Text(), nil
	}
	if err := r.s.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

type historian interface {
	AppendHistory(item string)
}

// Session reads IB source a complete input at a time and prints its tree
// and diagnostics.
type Session struct {
	in             LineReader
	out            io.Writer
	showTokens     bool
	showWhitespace bool
	trace          bool
}

type Option func(*Session)

// WithTokens starts the session with the coloured token echo switched on.
func WithTokens(enabled bool) Option {
	return func(s *Session) { s.showTokens = enabled }
}

func WithWhitespace(enabled bool) Option {
	return func(s *Session) { s.showWhitespace = enabled }
}

func WithTrace(enabled bool) Option {
	return func(s *Session) { s.trace = enabled }
}

func New(in LineReader, out io.Writer, opts ...Option) *Session {
	s := &Session{in: in, out: out}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start runs an interactive session on the terminal with line editing and
// history kept in historyPath. An empty historyPath disables persistence.
func Start(out io.Writer, historyPath string, opts ...Option) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	return New(ln, out, opts...).Run()
}

// Run loops until end of input or ":quit".
func (s *Session) Run() error {
	for {
		src, ok := s.readInput()
		if !ok {
			fmt.Fprintln(s.out)
			return nil
		}

		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit":
				return nil
			case ":tokens":
				s.showTokens = !s.showTokens
				fmt.Fprintf(s.out, "token echo %s\n", onOff(s.showTokens))
			default:
				fmt.Fprintln(s.out, "unknown command. Type :tokens or :quit.")
			}
			continue
		}

		if h, ok := s.in.(historian); ok {
			h.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		}

		if err := s.Eval(src); err != nil {
			return err
		}
	}
}

// readInput accumulates lines while braces are unbalanced. An aborted
// prompt drops what was typed so far.
func (s *Session) readInput() (string, bool) {
	var b strings.Builder

	for {
		prompt := PROMPT
		if b.Len() > 0 {
			prompt = CONTINUE
		}

		line, err := s.in.Prompt(prompt)
		switch {
		case errors.Is(err, io.EOF):
			if b.Len() > 0 {
				return b.String(), true
			}
			return "", false
		case errors.Is(err, liner.ErrPromptAborted):
			b.Reset()
			continue
		case err != nil:
			return "", false
		}

		b.WriteString(line)
		b.WriteByte('\n')

		if Depth(b.String()) <= 0 {
			return b.String(), true
		}
	}
}

// Eval lexes and parses one complete input and writes the result.
func (s *Session) Eval(src string) error {
	if s.showTokens {
		printer := lexer.NewColorPrinter(s.out, s.showWhitespace)
		lexer.Lex(sourceName, src, lexer.WithObserver(printer))
		if err := printer.Err(); err != nil {
			return err
		}
		fmt.Fprintln(s.out)
	}

	result := parser.ParseSource(sourceName, src, parser.WithTrace(s.trace))

	if _, err := io.WriteString(s.out, result.Dump()); err != nil {
		return err
	}
	if err := result.WriteDiagnostics(s.out); err != nil {
		return err
	}
	if !result.HasErrors() {
		color.New(color.FgGreen).Fprintf(s.out, "ok: %d function(s)\n", len(result.File.Functions))
	}
	return nil
}

// Depth returns the number of scopes src leaves open. Braces inside strings
// and comments do not count.
func Depth(src string) int {
	tokens, _ := lexer.Lex(sourceName, src)

	depth := 0
	for _, tok := range tokens {
		switch tok.Type {
		case token.LEFT_BRACE:
			depth++
		case token.RIGHT_BRACE:
			depth--
		}
	}
	return depth
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
