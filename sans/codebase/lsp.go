package codebase

import (
	"strings"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
	"go.lsp.dev/uri"

	"github.com/dhamidi/vak/sans"
	"github.com/dhamidi/vak/sans/parser"
)

const lsName = "vak"

var log = commonlog.GetLogger("vak.lsp")

// LSPServer serves SansScript language features over the Language
// Server Protocol.
type LSPServer struct {
	codebase *Codebase
	handler  protocol.Handler
	server   *server.Server
	version  string
}

// NewLSPServer creates an LSP server. The version is reported to the
// client during initialization; debug enables protocol-level logging
// in the underlying server.
func NewLSPServer(version string, debug bool) *LSPServer {
	ls := &LSPServer{
		codebase: New(),
		version:  version,
	}

	ls.handler = protocol.Handler{
		Initialize:                     ls.initialize,
		Initialized:                    ls.initialized,
		Shutdown:                       ls.shutdown,
		SetTrace:                       ls.setTrace,
		TextDocumentDidOpen:            ls.textDocumentDidOpen,
		TextDocumentDidChange:          ls.textDocumentDidChange,
		TextDocumentDidClose:           ls.textDocumentDidClose,
		TextDocumentDidSave:            ls.textDocumentDidSave,
		TextDocumentCompletion:         ls.textDocumentCompletion,
		TextDocumentHover:              ls.textDocumentHover,
		TextDocumentDefinition:         ls.textDocumentDefinition,
		TextDocumentDocumentSymbol:     ls.textDocumentDocumentSymbol,
		TextDocumentSemanticTokensFull: ls.textDocumentSemanticTokensFull,
	}

	ls.server = server.NewServer(&ls.handler, lsName, debug)
	return ls
}

// RunStdio serves the LSP session on stdin/stdout until the client
// disconnects.
func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save:      &protocol.SaveOptions{IncludeText: boolPtr(true)},
	}
	capabilities.CompletionProvider = &protocol.CompletionOptions{}
	capabilities.SemanticTokensProvider = &protocol.SemanticTokensOptions{
		Legend: protocol.SemanticTokensLegend{
			TokenTypes:     semanticTokenTypes,
			TokenModifiers: semanticTokenModifiers,
		},
		Full: true,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	item := params.TextDocument
	model, stored := ls.codebase.UpdateDocument(string(item.URI), item.Version, item.Text)
	if !stored {
		return nil
	}
	log.Debugf("opened %s", documentPath(item.URI))
	ls.publishDiagnostics(ctx, item.URI, model)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	var text string
	found := false
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
			found = true
		case protocol.TextDocumentContentChangeEvent:
			// Full sync never asks for ranges; treat the text as a
			// whole-document replacement anyway.
			text = c.Text
			found = true
		}
	}
	if !found {
		return nil
	}

	docURI := params.TextDocument.URI
	model, stored := ls.codebase.UpdateDocument(string(docURI), params.TextDocument.Version, text)
	if !stored {
		log.Debugf("discarded stale version %d for %s", params.TextDocument.Version, documentPath(docURI))
		return nil
	}
	ls.publishDiagnostics(ctx, docURI, model)
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	docURI := params.TextDocument.URI
	ls.codebase.CloseDocument(string(docURI))
	log.Debugf("closed %s", documentPath(docURI))
	// Clear any squiggles the editor still shows for the file.
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         docURI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text == nil {
		return nil
	}
	docURI := params.TextDocument.URI
	model := ls.codebase.RefreshDocument(string(docURI), *params.Text)
	if model == nil {
		return nil
	}
	log.Debugf("saved %s", documentPath(docURI))
	ls.publishDiagnostics(ctx, docURI, model)
	return nil
}

func (ls *LSPServer) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	model := ls.codebase.GetDocument(string(params.TextDocument.URI))
	if model == nil {
		return nil, nil
	}
	return CompletionsAt(model, params.Position), nil
}

func (ls *LSPServer) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	model := ls.codebase.GetDocument(string(params.TextDocument.URI))
	if model == nil {
		return nil, nil
	}
	return HoverAt(model, params.Position), nil
}

func (ls *LSPServer) textDocumentDefinition(ctx *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	model := ls.codebase.GetDocument(string(params.TextDocument.URI))
	if model == nil {
		return nil, nil
	}
	location := DefinitionAt(model, params.Position, params.TextDocument.URI)
	if location == nil {
		return nil, nil
	}
	return location, nil
}

func (ls *LSPServer) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	model := ls.codebase.GetDocument(string(params.TextDocument.URI))
	if model == nil {
		return nil, nil
	}
	return DocumentSymbols(model), nil
}

func (ls *LSPServer) textDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	model := ls.codebase.GetDocument(string(params.TextDocument.URI))
	if model == nil {
		return &protocol.SemanticTokens{Data: []protocol.UInteger{}}, nil
	}
	return SemanticTokensFull(model), nil
}

// publishDiagnostics pushes the model's diagnostics to the client.
func (ls *LSPServer) publishDiagnostics(ctx *glsp.Context, docURI protocol.DocumentUri, model *sans.Document) {
	diagnostics := make([]protocol.Diagnostic, 0, len(model.Diagnostics))
	source := lsName
	for _, d := range model.Diagnostics {
		severity := toProtocolSeverity(d.Severity)
		code := protocol.IntegerOrString{Value: d.Code}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    toProtocolRange(d.Span),
			Severity: &severity,
			Code:     &code,
			Source:   &source,
			Message:  d.Message,
		})
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         docURI,
		Diagnostics: diagnostics,
	})
}

func toProtocolSeverity(s sans.Severity) protocol.DiagnosticSeverity {
	if s == sans.SeverityWarning {
		return protocol.DiagnosticSeverityWarning
	}
	return protocol.DiagnosticSeverityError
}

// toProtocolRange converts a token span. Spans already count runes, so
// columns map straight onto LSP character offsets.
func toProtocolRange(span parser.Span) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{
			Line:      protocol.UInteger(span.Start.Line),
			Character: protocol.UInteger(span.Start.Column),
		},
		End: protocol.Position{
			Line:      protocol.UInteger(span.End.Line),
			Character: protocol.UInteger(span.End.Column),
		},
	}
}

// documentPath renders a document URI as a filesystem path for log
// lines, falling back to the raw URI.
func documentPath(docURI protocol.DocumentUri) string {
	if !strings.HasPrefix(string(docURI), "file://") {
		return string(docURI)
	}
	return uri.URI(docURI).Filename()
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
