package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
	"iblang/internal/errors"
	"iblang/internal/parser"
	"iblang/token"
)

const diagnosticSource = "iblang"

// ConvertDiagnostics transforms lexer and parser diagnostics into LSP
// diagnostics. Ranges come from the line map recorded while lexing, so they
// line up with what the reporter prints on the command line.
func ConvertDiagnostics(result *parser.ParseResult) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0, len(result.Diagnostics))

	for _, d := range result.Diagnostics {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    spanToRange(result.Lines, d.Span),
			Severity: ptrSeverity(severityFor(d.Level)),
			Code:     &protocol.IntegerOrString{Value: d.Code},
			Source:   ptrString(diagnosticSource),
			Message:  d.Message,
		})
	}

	return diagnostics
}

func severityFor(level errors.ErrorLevel) protocol.DiagnosticSeverity {
	switch level {
	case errors.Warning:
		return protocol.DiagnosticSeverityWarning
	case errors.Note:
		return protocol.DiagnosticSeverityInformation
	case errors.Help:
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityError
	}
}

// spanToRange converts byte offsets to 0-based LSP positions. Empty spans are
// widened to one character so editors still draw a marker.
func spanToRange(lines *token.LineMap, span token.Span) protocol.Range {
	end := span.End
	if end <= span.Start {
		end = span.Start + 1
	}

	return protocol.Range{
		Start: offsetToPosition(lines, span.Start),
		End:   offsetToPosition(lines, end),
	}
}

func offsetToPosition(lines *token.LineMap, offset int) protocol.Position {
	line, column := lines.Position(offset)
	return protocol.Position{
		Line:      protocol.UInteger(line - 1),
		Character: protocol.UInteger(column - 1),
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
