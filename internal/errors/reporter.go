package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"iblang/token"
)

// Reporter handles consistent diagnostic formatting for one source unit
type Reporter struct {
	filename string
	source   string
	lines    []string
	lineMap  *token.LineMap
}

// NewReporter creates a reporter for a file. lineMap translates span offsets
// into lines; when nil one is built from source.
func NewReporter(filename, source string, lineMap *token.LineMap) *Reporter {
	if lineMap == nil {
		lineMap = &token.LineMap{}
		for i := 0; i < len(source); i++ {
			if source[i] == '\n' {
				lineMap.Add(i)
			}
		}
	}
	return &Reporter{
		filename: filename,
		source:   source,
		lines:    strings.Split(source, "\n"),
		lineMap:  lineMap,
	}
}

// Position returns the 1-based line and column of a span start.
func (r *Reporter) Position(span token.Span) (line, column int) {
	return r.lineMap.Position(span.Start)
}

// Summary formats a diagnostic on one uncoloured line: "line:col: message".
func (r *Reporter) Summary(d Diagnostic) string {
	line, col := r.Position(d.Span)
	return fmt.Sprintf("%d:%d: %s", line, col, d.Message)
}

// WriteAll writes every diagnostic in FormatError form to w.
func (r *Reporter) WriteAll(w io.Writer, diagnostics []Diagnostic) error {
	for _, d := range diagnostics {
		if _, err := io.WriteString(w, r.FormatError(d)); err != nil {
			return err
		}
	}
	return nil
}

// FormatError formats a diagnostic with Rust-like styling and suggestions
func (r *Reporter) FormatError(d Diagnostic) string {
	var result strings.Builder

	level := d.Level
	if level == "" {
		level = Error
	}

	levelColor := r.getLevelColor(level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	line, column := r.Position(d.Span)

	// Header: error[E0100]: message
	if d.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n",
			levelColor(string(level)), d.Code, d.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n",
			levelColor(string(level)), d.Message))
	}

	// Location line: --> filename:line:column
	lineNumberWidth := r.getLineNumberWidth(line)
	indent := strings.Repeat(" ", lineNumberWidth)

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), r.filename, line, column))

	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	if line > 1 && line-1 <= len(r.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", lineNumberWidth, line-1)),
			dim("│"),
			trimCR(r.lines[line-2])))
	}

	if line <= len(r.lines) && line > 0 {
		lineContent := trimCR(r.lines[line-1])
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", lineNumberWidth, line)),
			dim("│"),
			lineContent))

		// the marker never runs past the end of the line
		length := d.Span.Len()
		if rest := len(lineContent) - (column - 1); length > rest {
			length = rest
		}
		marker := r.createMarker(column, length, level)
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			indent, dim("│"), marker))
	}

	if line < len(r.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", lineNumberWidth, line+1)),
			dim("│"),
			trimCR(r.lines[line])))
	}

	if len(d.Suggestions) > 0 {
		result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))
		suggestionColor := color.New(color.FgCyan).SprintFunc()
		for i, suggestion := range d.Suggestions {
			if i == 0 {
				result.WriteString(fmt.Sprintf("%s %s %s: %s\n",
					indent, suggestionColor("help"), suggestionColor("try"), suggestion.Message))
			} else {
				result.WriteString(fmt.Sprintf("%s %s %s\n",
					indent, suggestionColor("    "), suggestion.Message))
			}

			if suggestion.Replacement != "" {
				result.WriteString(fmt.Sprintf("%s %s %s\n",
					indent, suggestionColor("│"), suggestionColor(suggestion.Replacement)))
			}
		}
	}

	noteColor := color.New(color.FgBlue).SprintFunc()
	for _, note := range d.Notes {
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), noteColor("note:"), note))
	}

	result.WriteString("\n")
	return result.String()
}

// getLevelColor returns the appropriate color function for an error level
func (r *Reporter) getLevelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

// createMarker creates the underline marker for a diagnostic
func (r *Reporter) createMarker(column, length int, level ErrorLevel) string {
	if length <= 0 {
		length = 1
	}

	spaces := strings.Repeat(" ", max(0, column-1))

	markerColor := color.New(color.FgRed, color.Bold).SprintFunc()
	if level == Warning {
		markerColor = color.New(color.FgYellow, color.Bold).SprintFunc()
	}

	return spaces + markerColor(strings.Repeat("^", length))
}

// getLineNumberWidth calculates the width needed for line numbers
func (r *Reporter) getLineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3 // minimum width for visual alignment
	}
	return width
}

func trimCR(s string) string {
	return strings.TrimSuffix(s, "\r")
}
