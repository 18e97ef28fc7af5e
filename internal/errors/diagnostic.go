package errors

import (
	"fmt"

	"iblang/token"
)

// ErrorLevel represents the severity of a diagnostic
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// Diagnostic is a recoverable problem found in the source text.
type Diagnostic struct {
	Level       ErrorLevel
	Code        string       // Error code like E0100
	Message     string       // Primary message
	Span        token.Span   // Location in source
	Suggestions []Suggestion // Suggested fixes
	Notes       []string     // Additional context notes
}

// Suggestion represents a suggested fix
type Suggestion struct {
	Message     string // Description of the suggestion
	Replacement string // Suggested replacement text (optional)
}

func (d Diagnostic) Error() string {
	return d.Message
}

func (d Diagnostic) String() string {
	if d.Code == "" {
		return fmt.Sprintf("%s: %s (%s)", d.Level, d.Message, d.Span)
	}
	return fmt.Sprintf("%s[%s]: %s (%s)", d.Level, d.Code, d.Message, d.Span)
}

// List is an append-only diagnostics sink shared by the lexer, the token
// cursor and the parser of one pipeline run. Diagnostics keep insertion order
// and are never deduplicated.
type List struct {
	items []Diagnostic
}

func NewList() *List {
	return &List{}
}

func (l *List) Add(d Diagnostic) {
	if d.Level == "" {
		d.Level = Error
	}
	l.items = append(l.items, d)
}

func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Items returns a copy of the diagnostics in insertion order.
func (l *List) Items() []Diagnostic {
	if l == nil {
		return nil
	}
	out := make([]Diagnostic, len(l.items))
	copy(out, l.items)
	return out
}

// HasErrors reports whether any error-level diagnostic was recorded.
func (l *List) HasErrors() bool {
	if l == nil {
		return false
	}
	for _, d := range l.items {
		if d.Level == Error {
			return true
		}
	}
	return false
}
