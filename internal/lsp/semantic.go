package lsp

import (
	"strings"

	"iblang/internal/ast"
	"iblang/internal/parser"
	"iblang/token"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

type role struct {
	tokenType   string
	declaration bool
}

// collectSemanticTokens classifies the token stream of one parse. Lexical
// kinds decide most tokens; identifiers take their role from the tree.
func collectSemanticTokens(result *parser.ParseResult) []SemanticToken {
	roles := identifierRoles(result.File)

	var tokens []SemanticToken
	for _, tok := range result.Tokens {
		var r role
		switch {
		case tok.Type == token.IDENTIFIER:
			var ok bool
			if r, ok = roles[tok.Span.Start]; !ok {
				r = role{tokenType: "variable"}
			}
		case tok.Type.IsKeyword():
			r = role{tokenType: "keyword"}
		case tok.Type == token.INTEGER || tok.Type == token.FLOAT:
			r = role{tokenType: "number"}
		case tok.Type == token.STRING:
			r = role{tokenType: "string"}
		case tok.Type == token.COMMENT:
			r = role{tokenType: "comment"}
		case tok.Type.IsOperator():
			r = role{tokenType: "operator"}
		default:
			continue
		}

		if st, ok := makeToken(result.Lines, tok, r); ok {
			tokens = append(tokens, st)
		}
	}

	return tokens
}

// identifierRoles maps the start offset of every identifier the tree gives a
// role to. Parameter references inside a body are tagged as parameters.
func identifierRoles(file *ast.File) map[int]role {
	roles := make(map[int]role)
	if file == nil {
		return roles
	}

	for _, fn := range file.Functions {
		roles[fn.Name.Span.Start] = role{tokenType: "function", declaration: true}

		params := make(map[string]bool)
		for _, param := range fn.Params {
			roles[param.Type.Span.Start] = role{tokenType: "type"}
			roles[param.Name.Span.Start] = role{tokenType: "parameter", declaration: true}
			params[param.Name.Value] = true
		}

		if fn.Body == nil {
			continue
		}

		ast.Inspect(fn.Body, func(n ast.Node) bool {
			switch v := n.(type) {
			case *ast.CallExpr:
				roles[v.Callee.Span.Start] = role{tokenType: "function"}
			case *ast.AssignStmt:
				roles[v.Target.Span.Start] = role{tokenType: "variable", declaration: true}
			case *ast.IdentExpr:
				if params[v.Name] {
					roles[v.Span.Start] = role{tokenType: "parameter"}
				}
			}
			return true
		})
	}

	return roles
}

// makeToken creates a semantic token for tok. A string cut short by a line
// break is highlighted up to the break.
func makeToken(lines *token.LineMap, tok token.Token, r role) (SemanticToken, bool) {
	length := len(strings.TrimRight(tok.Lexeme, "\r\n"))
	if length == 0 {
		return SemanticToken{}, false
	}

	line, column := lines.Position(tok.Span.Start)

	modifiers := 0
	if r.declaration {
		modifiers = 1 << indexOf("declaration", SemanticTokenModifiers)
	}

	return SemanticToken{
		Line:           uint32(line - 1),   // LSP uses 0-based line numbers
		StartChar:      uint32(column - 1), // LSP uses 0-based column numbers
		Length:         uint32(length),
		TokenType:      indexOf(r.tokenType, SemanticTokenTypes),
		TokenModifiers: modifiers,
	}, true
}

// encodeSemanticTokens packs tokens into the LSP wire format using
// delta-line, delta-start compression.
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32

	for _, tok := range tokens {
		deltaLine := tok.Line - prevLine
		deltaStart := tok.StartChar
		if deltaLine == 0 {
			deltaStart = tok.StartChar - prevStart
		}

		data = append(data, deltaLine, deltaStart, tok.Length, uint32(tok.TokenType), uint32(tok.TokenModifiers))

		prevLine = tok.Line
		prevStart = tok.StartChar
	}

	return data
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
