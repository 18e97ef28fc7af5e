package errors

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"iblang/token"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestErrorReporter(t *testing.T) {
	source := "func main() {\n    x = 1\n    fucn()\n}\n"
	reporter := NewReporter("test.ib", source, nil)

	// "fucn" starts at offset 28
	tok := token.Token{Type: token.IDENTIFIER, Lexeme: "fucn", Span: token.NewSpan("test.ib", 28, 32)}
	formatted := reporter.FormatError(UnexpectedToken(tok, "statement"))

	assert.Contains(t, formatted, "error["+ErrorUnexpectedToken+"]")
	assert.Contains(t, formatted, `unexpected token Identifier: "fucn" in statement`)
	assert.Contains(t, formatted, "test.ib:3:5")
	assert.Contains(t, formatted, "    x = 1", "previous line shown as context")
	assert.Contains(t, formatted, "did you mean the keyword 'func'?")
	assert.Contains(t, formatted, "    ^^^^")
}

func TestSummary(t *testing.T) {
	source := "a\nbc d"
	lines := &token.LineMap{}
	lines.Add(1)
	reporter := NewReporter("x.ib", source, lines)

	d := NewError(ErrorMissingToken, "boom", token.NewSpan("x.ib", 5, 6)).Build()
	assert.Equal(t, "2:4: boom", reporter.Summary(d))
}

func TestWriteAll(t *testing.T) {
	reporter := NewReporter("x.ib", "(", nil)
	var buf bytes.Buffer

	err := reporter.WriteAll(&buf, []Diagnostic{
		ExpectedToken(token.Token{Type: token.EOF, Span: token.NewSpan("x.ib", 1, 1)}, token.RIGHT_PAREN),
		GarbageInput(token.Token{Type: token.GARBAGE, Lexeme: "@", Span: token.NewSpan("x.ib", 0, 1)}),
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "-->"))
	assert.Contains(t, out, "unexpected token kind Eof, expected CloseParenthesis")
	assert.Contains(t, out, "insert ')'")
	assert.Contains(t, out, `unrecognized input "@"`)
}

func TestErrorMarkerCreation(t *testing.T) {
	reporter := NewReporter("test.ib", "x = variable", nil)

	marker := reporter.createMarker(5, 8, Error)

	assert.Equal(t, 4, strings.Count(marker, " "))
	assert.Equal(t, 8, strings.Count(marker, "^"))

	marker = reporter.createMarker(1, 0, Error)
	assert.Equal(t, "^", marker, "zero-length spans still get one caret")
}

func TestMarkerClampedToLine(t *testing.T) {
	source := "\"abc\ndef"
	reporter := NewReporter("s.ib", source, nil)

	formatted := reporter.FormatError(UnterminatedString(token.NewSpan("s.ib", 0, 5)))
	assert.Contains(t, formatted, "error["+ErrorUnterminatedString+"]")
	assert.Contains(t, formatted, " ^^^^\n")
	assert.NotContains(t, formatted, "^^^^^")
}

func TestErrorLevels(t *testing.T) {
	reporter := NewReporter("test.ib", "test", nil)
	span := token.NewSpan("test.ib", 0, 4)

	errorFormatted := reporter.FormatError(Diagnostic{Level: Error, Message: "test error", Span: span})
	warningFormatted := reporter.FormatError(Diagnostic{Level: Warning, Message: "test warning", Span: span})
	defaulted := reporter.FormatError(Diagnostic{Message: "no level", Span: span})

	assert.Contains(t, errorFormatted, "error: test error")
	assert.Contains(t, warningFormatted, "warning: test warning")
	assert.Contains(t, defaulted, "error: no level")
}

func TestList(t *testing.T) {
	var nilList *List
	assert.Equal(t, 0, nilList.Len())
	assert.False(t, nilList.HasErrors())
	assert.Nil(t, nilList.Items())

	list := NewList()
	list.Add(Diagnostic{Level: Warning, Message: "first"})
	assert.False(t, list.HasErrors())

	list.Add(NewError(ErrorMissingToken, "missing thing", token.NewSpan("a", 1, 2)).Build())
	list.Add(Diagnostic{Message: "third"})

	items := list.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "first", items[0].Message)
	assert.Equal(t, "missing thing", items[1].Message)
	assert.Equal(t, Error, items[2].Level, "empty level defaults to error")
	assert.True(t, list.HasErrors())

	items[0].Message = "changed"
	assert.Equal(t, "first", list.Items()[0].Message, "Items returns a copy")
}

func TestDiagnosticString(t *testing.T) {
	d := NewError(ErrorMalformedLiteral, "bad", token.NewSpan("f", 1, 3)).Build()
	assert.Equal(t, "error[E0102]: bad (f:1..3)", d.String())
	assert.Equal(t, "bad", d.Error())
}

func TestMalformedLiteral(t *testing.T) {
	tok := token.Token{Type: token.INTEGER, Lexeme: "99999999999999999999"}
	d := MalformedLiteral(tok, assert.AnError)

	assert.Equal(t, ErrorMalformedLiteral, d.Code)
	assert.Contains(t, d.Message, "IntegerLiteral")
	assert.Len(t, d.Notes, 1)
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("hello", "hello"))
	assert.Equal(t, 1, levenshteinDistance("hello", "hallo"))
	assert.Equal(t, 1, levenshteinDistance("hello", "helo"))
	assert.Equal(t, 5, levenshteinDistance("hello", ""))
	assert.Equal(t, 3, levenshteinDistance("kitten", "sitting"))
}

func TestSimilarKeywordFinding(t *testing.T) {
	similar := findSimilarNames("retrun", token.Keywords())
	assert.Contains(t, similar, "return")
	assert.Empty(t, findSimilarNames("verydifferent", token.Keywords()))
	assert.Empty(t, findSimilarNames("func", token.Keywords()), "exact matches are not suggestions")
}
