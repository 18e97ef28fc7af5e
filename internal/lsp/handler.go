package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"iblang/internal/ast"
	"iblang/internal/parser"
	"iblang/token"
)

var log = commonlog.GetLogger("iblang.lsp")

// SemanticTokenTypes is the legend advertised to clients
var SemanticTokenTypes = []string{
	"keyword",
	"function",
	"parameter",
	"variable",
	"type",
	"number",
	"string",
	"comment",
	"operator",
}

// SemanticTokenModifiers is the modifier legend advertised to clients
var SemanticTokenModifiers = []string{
	"declaration",
}

// Handler implements the LSP server handlers for IB documents
type Handler struct {
	name    string
	version string

	mu      sync.RWMutex
	results map[protocol.DocumentUri]*parser.ParseResult
}

// NewHandler creates and returns a new Handler instance
func NewHandler(name, version string) *Handler {
	return &Handler{
		name:    name,
		version: version,
		results: make(map[protocol.DocumentUri]*parser.ParseResult),
	}
}

// Protocol wires the handler methods into a glsp protocol handler
func (h *Handler) Protocol() *protocol.Handler {
	return &protocol.Handler{
		Initialize:                     h.Initialize,
		Initialized:                    h.Initialized,
		Shutdown:                       h.Shutdown,
		SetTrace:                       h.SetTrace,
		TextDocumentDidOpen:            h.TextDocumentDidOpen,
		TextDocumentDidChange:          h.TextDocumentDidChange,
		TextDocumentDidClose:           h.TextDocumentDidClose,
		TextDocumentCompletion:         h.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: h.TextDocumentSemanticTokensFull,
	}
}

// Initialize responds to the client's initialize request and advertises the server's capabilities
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    h.name,
			Version: ptrString(h.version),
		},
	}, nil
}

func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

// SetTrace records the client's trace level. A verbose level also turns on
// the parser's production trace for later parses.
func (h *Handler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen parses the opened document and publishes its diagnostics
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Infof("opened %s", params.TextDocument.URI)

	result := h.update(params.TextDocument.URI, params.TextDocument.Text)
	publishDiagnostics(ctx, params.TextDocument.URI, ConvertDiagnostics(result))
	return nil
}

// TextDocumentDidChange reparses the document. The server asks for full
// sync, so the last whole-document change wins.
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("changed %s (version %d)", uri, params.TextDocument.Version)

	text, ok := latestText(params.ContentChanges)
	if !ok {
		return fmt.Errorf("no full content change for %s", uri)
	}

	result := h.update(uri, text)
	publishDiagnostics(ctx, uri, ConvertDiagnostics(result))
	return nil
}

// TextDocumentDidClose forgets the document and clears its diagnostics
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Infof("closed %s", uri)

	h.mu.Lock()
	delete(h.results, uri)
	h.mu.Unlock()

	publishDiagnostics(ctx, uri, []protocol.Diagnostic{})
	return nil
}

// TextDocumentCompletion offers the keywords and the functions declared in the document
func (h *Handler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	items := make([]protocol.CompletionItem, 0, len(token.Keywords()))

	keywordKind := protocol.CompletionItemKindKeyword
	for _, kw := range token.Keywords() {
		items = append(items, protocol.CompletionItem{Label: kw, Kind: &keywordKind})
	}

	if result, ok := h.lookup(params.TextDocument.URI); ok {
		functionKind := protocol.CompletionItemKindFunction
		for _, fn := range result.File.Functions {
			if fn.Name.Value == "" {
				continue
			}
			items = append(items, protocol.CompletionItem{
				Label:  fn.Name.Value,
				Kind:   &functionKind,
				Detail: ptrString(signature(fn.Name.Value, fn.Params)),
			})
		}
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *Handler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	uri := params.TextDocument.URI
	log.Debugf("semantic tokens for %s", uri)

	result, err := h.getOrLoad(ctx, uri)
	if err != nil {
		return nil, err
	}

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(result)),
	}, nil
}

func (h *Handler) update(uri protocol.DocumentUri, text string) *parser.ParseResult {
	name := uri
	if path, err := uriToPath(uri); err == nil {
		name = path
	}

	result := parser.ParseSource(name, text,
		parser.WithTrace(protocol.HasTraceLevel(protocol.TraceValueVerbose)))

	h.mu.Lock()
	h.results[uri] = result
	h.mu.Unlock()

	return result
}

func (h *Handler) lookup(uri protocol.DocumentUri) (*parser.ParseResult, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	result, ok := h.results[uri]
	return result, ok
}

// getOrLoad returns the parse of an open document, reading it from disk when
// the client asks about a document it never opened.
func (h *Handler) getOrLoad(ctx *glsp.Context, uri protocol.DocumentUri) (*parser.ParseResult, error) {
	if result, ok := h.lookup(uri); ok {
		return result, nil
	}

	path, err := uriToPath(uri)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", uri, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	result := h.update(uri, string(content))
	publishDiagnostics(ctx, uri, ConvertDiagnostics(result))
	return result, nil
}

func latestText(changes []any) (string, bool) {
	for i := len(changes) - 1; i >= 0; i-- {
		switch change := changes[i].(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			return change.Text, true
		case *protocol.TextDocumentContentChangeEventWhole:
			return change.Text, true
		}
	}
	return "", false
}

func signature(name string, params []*ast.Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.Type.Value+" "+p.Name.Value)
	}
	return "func " + name + "(" + strings.Join(parts, ", ") + ")"
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("unsupported URI scheme %q", u.Scheme)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) to get C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	log.Debugf("publishing %d diagnostics for %s", len(diagnostics), uri)

	if ctx == nil || ctx.Notify == nil {
		return
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
