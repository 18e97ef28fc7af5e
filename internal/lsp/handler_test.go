package lsp_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"iblang/internal/lsp"
)

const sample = `// demo
func add(int a, int b) {
	c = a + b
	print("sum", c)
	return c
}
`

type published struct {
	method string
	params *protocol.PublishDiagnosticsParams
}

func recordingContext(t *testing.T) (*glsp.Context, *[]published) {
	t.Helper()
	var calls []published
	ctx := &glsp.Context{
		Notify: func(method string, params any) {
			p, ok := params.(*protocol.PublishDiagnosticsParams)
			require.True(t, ok, "unexpected notification params %T", params)
			calls = append(calls, published{method: method, params: p})
		},
	}
	return ctx, &calls
}

func open(t *testing.T, h *lsp.Handler, ctx *glsp.Context, uri, text string) {
	t.Helper()
	err := h.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "iblang", Version: 1, Text: text},
	})
	require.NoError(t, err)
}

func TestInitializeAdvertisesCapabilities(t *testing.T) {
	h := lsp.NewHandler("iblang", "1.2.3")

	res, err := h.Initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	result, ok := res.(*protocol.InitializeResult)
	require.True(t, ok)
	require.NotNil(t, result.ServerInfo)
	assert.Equal(t, "iblang", result.ServerInfo.Name)
	assert.Equal(t, "1.2.3", *result.ServerInfo.Version)

	sync, ok := result.Capabilities.TextDocumentSync.(*protocol.TextDocumentSyncOptions)
	require.True(t, ok)
	assert.Equal(t, protocol.TextDocumentSyncKindFull, *sync.Change)

	semantic, ok := result.Capabilities.SemanticTokensProvider.(*protocol.SemanticTokensOptions)
	require.True(t, ok)
	assert.Equal(t, lsp.SemanticTokenTypes, semantic.Legend.TokenTypes)

	handler := h.Protocol()
	assert.NotNil(t, handler.TextDocumentDidOpen)
	assert.NotNil(t, handler.TextDocumentSemanticTokensFull)
}

func TestDiagnosticsPublishedOnOpenChangeAndClose(t *testing.T) {
	h := lsp.NewHandler("iblang", "test")
	ctx, calls := recordingContext(t)
	uri := "file:///tmp/bad.ib"

	open(t, h, ctx, uri, "func main() {\n\tx = @\n}\n")

	require.Len(t, *calls, 1)
	first := (*calls)[0]
	assert.Equal(t, protocol.ServerTextDocumentPublishDiagnostics, first.method)
	assert.Equal(t, uri, first.params.URI)
	require.Len(t, first.params.Diagnostics, 1)

	d := first.params.Diagnostics[0]
	assert.Equal(t, protocol.Position{Line: 1, Character: 5}, d.Range.Start)
	assert.Equal(t, protocol.Position{Line: 1, Character: 6}, d.Range.End)
	assert.Equal(t, protocol.DiagnosticSeverityError, *d.Severity)
	assert.Equal(t, "E0104", d.Code.Value)
	assert.Equal(t, "iblang", *d.Source)
	assert.Equal(t, `unrecognized input "@"`, d.Message)

	err := h.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEventWhole{Text: "func main() {\n\tx = 1\n}\n"},
		},
	})
	require.NoError(t, err)
	require.Len(t, *calls, 2)
	assert.Empty(t, (*calls)[1].params.Diagnostics)

	err = h.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
		},
	})
	assert.Error(t, err, "a change without content is rejected")

	require.NoError(t, h.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))
	require.Len(t, *calls, 3)
	assert.NotNil(t, (*calls)[2].params.Diagnostics)
	assert.Empty(t, (*calls)[2].params.Diagnostics)
}

func TestDiagnosticsForUnterminatedString(t *testing.T) {
	h := lsp.NewHandler("iblang", "test")
	ctx, calls := recordingContext(t)

	open(t, h, ctx, "file:///tmp/str.ib", "func f() {\n\tprint(\"open\n\t)\n}\n")

	require.Len(t, *calls, 1)
	diags := (*calls)[0].params.Diagnostics
	require.Len(t, diags, 1)
	assert.Equal(t, "E0103", diags[0].Code.Value)
	assert.Equal(t, protocol.Position{Line: 1, Character: 7}, diags[0].Range.Start)
}

func TestCompletion(t *testing.T) {
	h := lsp.NewHandler("iblang", "test")
	uri := "file:///tmp/sample.ib"
	open(t, h, &glsp.Context{}, uri, sample)

	res, err := h.TextDocumentCompletion(&glsp.Context{}, &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
		},
	})
	require.NoError(t, err)

	list, ok := res.(*protocol.CompletionList)
	require.True(t, ok)

	var labels []string
	for _, item := range list.Items {
		labels = append(labels, item.Label)
	}
	assert.Equal(t, []string{"func", "true", "false", "if", "else", "return", "add"}, labels)

	add := list.Items[len(list.Items)-1]
	assert.Equal(t, protocol.CompletionItemKindFunction, *add.Kind)
	assert.Equal(t, "func add(int a, int b)", *add.Detail)
}

func TestCompletionForUnknownDocument(t *testing.T) {
	h := lsp.NewHandler("iblang", "test")

	res, err := h.TextDocumentCompletion(&glsp.Context{}, &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: "file:///nowhere.ib"},
		},
	})
	require.NoError(t, err)
	assert.Len(t, res.(*protocol.CompletionList).Items, 6)
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	h := lsp.NewHandler("iblang", "test")
	uri := "file:///tmp/sample.ib"
	open(t, h, &glsp.Context{}, uri, sample)

	tokens, err := h.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	require.NotNil(t, tokens)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 17)

	decl := []string{"declaration"}
	assertToken(t, &decoded[0], 1, 1, 7, "comment", nil)
	assertToken(t, &decoded[1], 2, 1, 4, "keyword", nil)
	assertToken(t, &decoded[2], 2, 6, 3, "function", decl)
	assertToken(t, &decoded[3], 2, 10, 3, "type", nil)
	assertToken(t, &decoded[4], 2, 14, 1, "parameter", decl)
	assertToken(t, &decoded[5], 2, 17, 3, "type", nil)
	assertToken(t, &decoded[6], 2, 21, 1, "parameter", decl)
	assertToken(t, &decoded[7], 3, 2, 1, "variable", decl)
	assertToken(t, &decoded[8], 3, 4, 1, "operator", nil)
	assertToken(t, &decoded[9], 3, 6, 1, "parameter", nil)
	assertToken(t, &decoded[10], 3, 8, 1, "operator", nil)
	assertToken(t, &decoded[11], 3, 10, 1, "parameter", nil)
	assertToken(t, &decoded[12], 4, 2, 5, "function", nil)
	assertToken(t, &decoded[13], 4, 8, 5, "string", nil)
	assertToken(t, &decoded[14], 4, 15, 1, "variable", nil)
	assertToken(t, &decoded[15], 5, 2, 6, "keyword", nil)
	assertToken(t, &decoded[16], 5, 9, 1, "variable", nil)
}

func TestSemanticTokensLoadsUnopenedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "disk.ib")
	require.NoError(t, os.WriteFile(path, []byte("func f() {\n\treturn 1.5\n}\n"), 0o644))

	h := lsp.NewHandler("iblang", "test")
	ctx, calls := recordingContext(t)
	uri := "file://" + filepath.ToSlash(path)

	tokens, err := h.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 4)
	assertToken(t, &decoded[3], 2, 9, 3, "number", nil)
	assert.Len(t, *calls, 1, "loading from disk publishes diagnostics")

	_, err = h.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///does/not/exist.ib"},
	})
	assert.ErrorContains(t, err, "failed to read file")

	_, err = h.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "untitled:Untitled-1"},
	})
	assert.ErrorContains(t, err, "failed to convert URI")
}

func TestSetTraceEnablesParserTrace(t *testing.T) {
	h := lsp.NewHandler("iblang", "test")
	t.Cleanup(func() { protocol.SetTraceValue(protocol.TraceValueOff) })

	require.NoError(t, h.SetTrace(&glsp.Context{}, &protocol.SetTraceParams{Value: protocol.TraceValueVerbose}))
	assert.Equal(t, protocol.TraceValueVerbose, protocol.GetTraceValue())

	require.NoError(t, h.Shutdown(&glsp.Context{}))
	assert.Equal(t, protocol.TraceValueOff, protocol.GetTraceValue())
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if raw[i+4]&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1,
			Char:      char + 1,
			Length:    raw[i+2],
			Type:      lsp.SemanticTokenTypes[raw[i+3]],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	t.Helper()
	require.Equal(t, expectedLine, token.Line, "line mismatch in token %d", token.Index)
	require.Equal(t, expectedChar, token.Char, "char mismatch in token %d", token.Index)
	require.Equal(t, expectedLength, token.Length, "length mismatch in token %d", token.Index)
	require.Equal(t, expectedType, token.Type, "type mismatch in token %d", token.Index)
	require.ElementsMatch(t, expectedModifiers, token.Modifiers, "modifiers mismatch in token %d", token.Index)
}
