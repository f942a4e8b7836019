package cmd

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/akhenakh/lspgo/lspclient"
	"github.com/akhenakh/lspgo/protocol"
)

// exampleHandler implements protocol.Handler by embedding BaseHandler for
// every method it doesn't care about and tracking just enough document
// state to answer hover requests and publish a trivial diagnostic. client
// is wired in after the server is constructed, since the handler must
// exist before the Client that is bound to the same connection does.
type exampleHandler struct {
	protocol.BaseHandler

	logger *zap.Logger
	client *lspclient.Client

	mu   sync.RWMutex
	docs map[protocol.DocumentURI]string
}

func newHandler(logger *zap.Logger) *exampleHandler {
	return &exampleHandler{
		logger: logger,
		docs:   make(map[protocol.DocumentURI]string),
	}
}

func (h *exampleHandler) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	h.logger.Info("initialize", zap.Any("clientInfo", params.ClientInfo))
	return &protocol.InitializeResult{
		ServerInfo: &protocol.ServerInfo{Name: "examplelsp", Version: version},
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.SyncFull,
			},
			HoverProvider: &protocol.HoverOptions{},
		},
	}, nil
}

func (h *exampleHandler) Initialized(ctx context.Context, params *protocol.InitializedParams) error {
	h.logger.Debug("initialized")
	return nil
}

func (h *exampleHandler) Shutdown(ctx context.Context) error {
	h.logger.Info("shutdown")
	return nil
}

func (h *exampleHandler) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	h.setDoc(params.TextDocument.URI, params.TextDocument.Text)
	h.publishLineCountDiagnostic(params.TextDocument.URI)
	return nil
}

func (h *exampleHandler) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	for _, change := range params.ContentChanges {
		if change.Range == nil {
			h.setDoc(params.TextDocument.URI, change.Text)
		}
	}
	h.publishLineCountDiagnostic(params.TextDocument.URI)
	return nil
}

func (h *exampleHandler) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	h.mu.Lock()
	delete(h.docs, params.TextDocument.URI)
	h.mu.Unlock()
	return nil
}

func (h *exampleHandler) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	text, ok := h.doc(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	lines := strings.Count(text, "\n") + 1
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: fmt.Sprintf("`%s`\n\n%d lines, %d bytes", params.TextDocument.URI, lines, len(text)),
		},
	}, nil
}

func (h *exampleHandler) setDoc(uri protocol.DocumentURI, text string) {
	h.mu.Lock()
	h.docs[uri] = text
	h.mu.Unlock()
}

func (h *exampleHandler) doc(uri protocol.DocumentURI) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	text, ok := h.docs[uri]
	return text, ok
}

// publishLineCountDiagnostic showcases the handler calling back into the
// client handle from a notification path: a hint-severity diagnostic
// reporting the document's line count, replacing whatever was published
// for this URI before.
func (h *exampleHandler) publishLineCountDiagnostic(uri protocol.DocumentURI) {
	if h.client == nil {
		return
	}
	text, ok := h.doc(uri)
	if !ok {
		return
	}
	lines := strings.Count(text, "\n") + 1
	diag := protocol.Diagnostic{
		Range:    protocol.Range{End: protocol.Position{Line: uint(lines - 1)}},
		Severity: protocol.SeverityHint,
		Source:   "examplelsp",
		Message:  fmt.Sprintf("%d lines", lines),
	}
	if err := h.client.PublishDiagnostics(uri, []protocol.Diagnostic{diag}); err != nil {
		h.logger.Warn("publish diagnostics failed", zap.String("uri", string(uri)), zap.Error(err))
	}
}
