package lsp

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	// commonlog is a required dependency of github.com/tliron/glsp. It is
	// silenced in NewServer via commonlog.Configure(0, nil) because this
	// server uses slog for all of its own logging; the blank import of the
	// "simple" backend is required by glsp at runtime regardless.
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/jsonx-lang/jsonx/parser"
	"github.com/jsonx-lang/jsonx/token"
)

const serverName = "jsonx-lsp"

// supportedExt reports whether path's extension identifies a document
// this server handles. Files of any other extension are ignored on
// didOpen/didChange; didClose clears any URI.
func supportedExt(uri string) bool {
	path, err := URIToPath(uri)
	if err != nil {
		return false
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc", ".json5":
		return true
	default:
		return false
	}
}

// modeForURI picks the dialect to parse with, by file extension. ".json"
// parses strictly; any other supported extension (".jsonc", ".json5", or
// an unrecognized-but-open buffer) parses as json5, the most permissive
// dialect, so editors get useful diagnostics instead of spurious ones for
// comments or trailing commas the author intended.
func modeForURI(uri string) token.Mode {
	path, err := URIToPath(uri)
	if err == nil && strings.ToLower(filepath.Ext(path)) == ".json" {
		return token.JSON
	}
	return token.JSON5
}

// Config holds server configuration.
type Config struct {
	// Encoding is the position encoding used for all LSP positions. It is
	// not negotiated with the client. Defaults to UTF-16 if left zero.
	Encoding PositionEncoding
}

// Server is the jsonx language server.
type Server struct {
	logger *slog.Logger
	config Config
	docs   *documentStore

	handler protocol.Handler
	server  *server.Server

	shutdownCalled bool
	closeOnce      sync.Once
	closeErr       error
}

// NewServer creates a new jsonx language server. If logger is nil,
// slog.Default() is used.
func NewServer(logger *slog.Logger, cfg Config) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Encoding == "" {
		cfg.Encoding = PositionEncodingUTF16
	}

	s := &Server{
		logger: logger.With(slog.String("component", "server")),
		config: cfg,
		docs:   newDocumentStore(),
	}

	commonlog.Configure(0, nil)

	s.handler = protocol.Handler{
		Initialize:  s.initialize,
		Initialized: s.initialized,
		Shutdown:    s.shutdown,
		Exit:        s.exit,

		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidClose:  s.textDocumentDidClose,

		TextDocumentHover:      s.textDocumentHover,
		TextDocumentFormatting: s.textDocumentFormatting,
	}

	s.server = server.NewServer(&s.handler, serverName, false)
	return s
}

// Handler returns the protocol handler, for testing.
func (s *Server) Handler() *protocol.Handler {
	return &s.handler
}

// RunStdio runs the server over stdio until the client disconnects.
func (s *Server) RunStdio() error {
	if err := s.server.RunStdio(); err != nil {
		return fmt.Errorf("run stdio: %w", err)
	}
	return nil
}

// Close closes the JSON-RPC connection, causing RunStdio to return.
// Close is idempotent and safe to call before RunStdio (it returns nil,
// so the caller may retry once the connection is ready).
func (s *Server) Close() error {
	conn := s.server.GetStdio()
	if conn == nil {
		return nil
	}
	s.closeOnce.Do(func() {
		if err := conn.Close(); err != nil {
			s.closeErr = fmt.Errorf("close connection: %w", err)
		}
	})
	return s.closeErr
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	s.logger.Info("initialize request received", slog.String("client_name", clientName(params)))

	capabilities := s.handler.CreateServerCapabilities()
	syncKind := protocol.TextDocumentSyncKindFull
	if syncOpts, ok := capabilities.TextDocumentSync.(*protocol.TextDocumentSyncOptions); ok {
		syncOpts.Change = &syncKind
	}

	version := "dev"
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	s.logger.Info("server initialized")
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	s.logger.Info("shutdown request received")
	s.shutdownCalled = true
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) exit(_ *glsp.Context) error {
	exitCode := 0
	if !s.shutdownCalled {
		s.logger.Warn("exit called without shutdown")
		exitCode = 1
	}
	s.logger.Info("exit notification received", slog.Int("exit_code", exitCode))
	os.Exit(exitCode)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	if !supportedExt(uri) {
		return nil
	}
	s.docs.open(uri, int(params.TextDocument.Version), params.TextDocument.Text)
	s.publishDiagnostics(ctx, uri)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	if !supportedExt(uri) {
		return nil
	}
	for _, raw := range params.ContentChanges {
		if change, ok := raw.(protocol.TextDocumentContentChangeEventWhole); ok {
			s.docs.update(uri, int(params.TextDocument.Version), change.Text)
		}
	}
	s.publishDiagnostics(ctx, uri)
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.docs.close(uri)
	if ctx != nil {
		ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
			URI:         uri,
			Diagnostics: []protocol.Diagnostic{},
		})
	}
	return nil
}

func (s *Server) publishDiagnostics(ctx *glsp.Context, uri string) {
	doc, ok := s.docs.get(uri)
	if !ok {
		return
	}
	opts := parser.Options{Mode: modeForURI(uri)}
	diags := diagnosticsFor(doc.text, opts)
	if ctx == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diags,
	})
}

func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	uri := params.TextDocument.URI
	doc, ok := s.docs.get(uri)
	if !ok {
		return nil, nil
	}
	opts := parser.Options{Mode: modeForURI(uri)}
	content, loc, ok := hoverAt(doc.text, opts, int(params.Position.Line), int(params.Position.Character), s.config.Encoding)
	if !ok {
		return nil, nil
	}

	startLine, startChar := offsetToLSPPosition(doc.text, doc.starts, loc.Start.Offset, s.config.Encoding)
	endLine, endChar := offsetToLSPPosition(doc.text, doc.starts, loc.End.Offset, s.config.Encoding)

	rng := protocol.Range{
		Start: protocol.Position{Line: protocol.UInteger(startLine), Character: protocol.UInteger(startChar)},
		End:   protocol.Position{Line: protocol.UInteger(endLine), Character: protocol.UInteger(endChar)},
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{Kind: protocol.MarkupKindPlainText, Value: content},
		Range:    &rng,
	}, nil
}

func (s *Server) textDocumentFormatting(_ *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	uri := params.TextDocument.URI
	doc, ok := s.docs.get(uri)
	if !ok {
		return []protocol.TextEdit{}, nil
	}
	opts := parser.Options{Mode: modeForURI(uri)}
	return formatEdits(doc.text, opts, s.config.Encoding)
}

func clientName(params *protocol.InitializeParams) string {
	if params.ClientInfo != nil {
		if params.ClientInfo.Version != nil {
			return params.ClientInfo.Name + " " + *params.ClientInfo.Version
		}
		return params.ClientInfo.Name
	}
	return "unknown"
}
