package errors

import (
	"fmt"
	"strings"

	"iblang/token"
)

// DiagnosticBuilder provides a fluent interface for creating diagnostics with suggestions
type DiagnosticBuilder struct {
	d Diagnostic
}

// NewError creates a new error-level diagnostic builder
func NewError(code, message string, span token.Span) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		d: Diagnostic{
			Level:   Error,
			Code:    code,
			Message: message,
			Span:    span,
		},
	}
}

// WithSuggestion adds a suggestion to the diagnostic
func (b *DiagnosticBuilder) WithSuggestion(message string) *DiagnosticBuilder {
	b.d.Suggestions = append(b.d.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *DiagnosticBuilder) WithReplacement(message, replacement string) *DiagnosticBuilder {
	b.d.Suggestions = append(b.d.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
	})
	return b
}

// WithNote adds a note to the diagnostic
func (b *DiagnosticBuilder) WithNote(note string) *DiagnosticBuilder {
	b.d.Notes = append(b.d.Notes, note)
	return b
}

func (b *DiagnosticBuilder) Build() Diagnostic {
	return b.d
}

// UnexpectedToken reports a token that no production accepts at this point.
// context names the construct being parsed, e.g. "statement".
func UnexpectedToken(tok token.Token, context string) Diagnostic {
	msg := fmt.Sprintf("unexpected token %s: %q", tok.Type, tok.Lexeme)
	if tok.Type == token.EOF {
		msg = "unexpected end of input"
	}
	if context != "" {
		msg += " in " + context
	}

	b := NewError(ErrorUnexpectedToken, msg, tok.Span)
	if tok.Type == token.IDENTIFIER {
		for _, kw := range findSimilarNames(strings.ToLower(tok.Lexeme), token.Keywords()) {
			b.WithReplacement(fmt.Sprintf("did you mean the keyword '%s'?", kw), kw)
		}
	}
	return b.Build()
}

// ExpectedToken reports that the cursor wanted a specific kind and found another.
func ExpectedToken(found token.Token, expected token.TokenType) Diagnostic {
	b := NewError(ErrorMissingToken,
		fmt.Sprintf("unexpected token kind %s, expected %s", found.Type, expected),
		found.Span)
	if expected == token.COMMA || expected.IsBracket() {
		b.WithSuggestion(fmt.Sprintf("insert %s", describe(expected)))
	}
	return b.Build()
}

// MalformedLiteral reports a numeric literal that could not be converted.
func MalformedLiteral(tok token.Token, cause error) Diagnostic {
	b := NewError(ErrorMalformedLiteral,
		fmt.Sprintf("malformed %s %q", tok.Type, tok.Lexeme),
		tok.Span)
	if cause != nil {
		b.WithNote(cause.Error())
	}
	return b.Build()
}

// UnterminatedString reports a string literal without its closing quote.
func UnterminatedString(span token.Span) Diagnostic {
	return NewError(ErrorUnterminatedString, "unterminated string literal", span).
		WithSuggestion(`add a closing '"' before the end of the line`).
		Build()
}

// GarbageInput reports input the lexer could not classify.
func GarbageInput(tok token.Token) Diagnostic {
	return NewError(ErrorGarbageInput,
		fmt.Sprintf("unrecognized input %q", tok.Lexeme),
		tok.Span).Build()
}

func describe(t token.TokenType) string {
	switch t {
	case token.COMMA:
		return "','"
	case token.LEFT_PAREN:
		return "'('"
	case token.RIGHT_PAREN:
		return "')'"
	case token.LEFT_BRACE:
		return "'{'"
	case token.RIGHT_BRACE:
		return "'}'"
	case token.LEFT_BRACKET:
		return "'['"
	case token.RIGHT_BRACKET:
		return "']'"
	default:
		return t.String()
	}
}

func findSimilarNames(target string, candidates []string) []string {
	var similar []string

	for _, candidate := range candidates {
		if candidate == target {
			continue
		}
		if levenshteinDistance(target, candidate) <= 2 && len(candidate) > 2 {
			similar = append(similar, candidate)
		}
	}

	return similar
}

// Simple Levenshtein distance implementation for finding similar names
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}

	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}
