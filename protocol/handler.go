package protocol

import "context"

// Handler is the fixed, versioned capability set a language server
// implements: every method the dispatcher's generated dispatch table can
// route to. Embed BaseHandler to pick up the LSP-mandated defaults
// (no-op notifications, MethodNotFound requests, success lifecycle calls)
// and override only the methods the server actually implements.
//
// Every method may suspend (block on I/O, a channel, or ctx); the
// dispatcher does not hold any lock across the call. ctx is cancelled by
// the dispatcher when a matching $/cancelRequest notification arrives —
// well-behaved handlers select on ctx.Done() in long-running work.
type Handler interface {
	// Lifecycle
	Initialize(ctx context.Context, params *InitializeParams) (*InitializeResult, error)
	Initialized(ctx context.Context, params *InitializedParams) error
	Shutdown(ctx context.Context) error

	// Text Document Synchronization
	DidOpen(ctx context.Context, params *DidOpenTextDocumentParams) error
	DidChange(ctx context.Context, params *DidChangeTextDocumentParams) error
	DidSave(ctx context.Context, params *DidSaveTextDocumentParams) error
	DidClose(ctx context.Context, params *DidCloseTextDocumentParams) error
	WillSave(ctx context.Context, params *WillSaveTextDocumentParams) error
	WillSaveWaitUntil(ctx context.Context, params *WillSaveTextDocumentParams) ([]TextEdit, error)

	// Language Features
	Hover(ctx context.Context, params *HoverParams) (*Hover, error)
	Completion(ctx context.Context, params *CompletionParams) (*CompletionList, error)
	CompletionItemResolve(ctx context.Context, item *CompletionItem) (*CompletionItem, error)
	Definition(ctx context.Context, params *DefinitionParams) ([]Location, error)
	Declaration(ctx context.Context, params *DeclarationParams) ([]Location, error)
	TypeDefinition(ctx context.Context, params *TypeDefinitionParams) ([]Location, error)
	Implementation(ctx context.Context, params *ImplementationParams) ([]Location, error)
	References(ctx context.Context, params *ReferenceParams) ([]Location, error)
	DocumentSymbol(ctx context.Context, params *DocumentSymbolParams) ([]DocumentSymbol, error)
	CodeAction(ctx context.Context, params *CodeActionParams) ([]CodeAction, error)
	CodeActionResolve(ctx context.Context, action *CodeAction) (*CodeAction, error)
	CodeLens(ctx context.Context, params *CodeLensParams) ([]CodeLens, error)
	CodeLensResolve(ctx context.Context, lens *CodeLens) (*CodeLens, error)
	DocumentLink(ctx context.Context, params *DocumentLinkParams) ([]DocumentLink, error)
	DocumentLinkResolve(ctx context.Context, link *DocumentLink) (*DocumentLink, error)
	SignatureHelp(ctx context.Context, params *SignatureHelpParams) (*SignatureHelp, error)
	FoldingRange(ctx context.Context, params *FoldingRangeParams) ([]FoldingRange, error)
	SelectionRange(ctx context.Context, params *SelectionRangeParams) ([]SelectionRange, error)
	Formatting(ctx context.Context, params *DocumentFormattingParams) ([]TextEdit, error)
	RangeFormatting(ctx context.Context, params *DocumentRangeFormattingParams) ([]TextEdit, error)
	OnTypeFormatting(ctx context.Context, params *DocumentOnTypeFormattingParams) ([]TextEdit, error)
	Rename(ctx context.Context, params *RenameParams) (*WorkspaceEdit, error)
	PrepareRename(ctx context.Context, params *PrepareRenameParams) (*PrepareRenameResult, error)
	SemanticTokensFull(ctx context.Context, params *SemanticTokensParams) (*SemanticTokens, error)
	SemanticTokensFullDelta(ctx context.Context, params *SemanticTokensDeltaParams) (*SemanticTokens, error)
	SemanticTokensRange(ctx context.Context, params *SemanticTokensRangeParams) (*SemanticTokens, error)
	Diagnostic(ctx context.Context, params *DocumentDiagnosticParams) (*DocumentDiagnosticReport, error)

	// Workspace Features
	Symbol(ctx context.Context, params *WorkspaceSymbolParams) ([]SymbolInformation, error)
	ExecuteCommand(ctx context.Context, params *ExecuteCommandParams) (interface{}, error)
	DidChangeConfiguration(ctx context.Context, params *DidChangeConfigurationParams) error
	DidChangeWatchedFiles(ctx context.Context, params *DidChangeWatchedFilesParams) error
	DidChangeWorkspaceFolders(ctx context.Context, params *DidChangeWorkspaceFoldersParams) error
	WorkspaceDiagnostic(ctx context.Context, params *WorkspaceDiagnosticParams) (*WorkspaceDiagnosticReport, error)

	// Server-initiated progress acknowledgement from the client.
	Progress(ctx context.Context, params *ProgressParams) error
}

// BaseHandler supplies every Handler method with the LSP-mandated default:
// notifications no-op, requests fail MethodNotFound, and the three
// lifecycle methods (Initialize, Initialized, Shutdown) succeed trivially;
// exit has no Handler method, the dispatcher handles it itself. Embed it in
// a concrete handler and override only what you implement.
type BaseHandler struct{}

var _ Handler = BaseHandler{}

func (BaseHandler) Initialize(context.Context, *InitializeParams) (*InitializeResult, error) {
	return &InitializeResult{Capabilities: ServerCapabilities{}}, nil
}

func (BaseHandler) Initialized(context.Context, *InitializedParams) error { return nil }
func (BaseHandler) Shutdown(context.Context) error                        { return nil }

func (BaseHandler) DidOpen(context.Context, *DidOpenTextDocumentParams) error   { return nil }
func (BaseHandler) DidChange(context.Context, *DidChangeTextDocumentParams) error { return nil }
func (BaseHandler) DidSave(context.Context, *DidSaveTextDocumentParams) error   { return nil }
func (BaseHandler) DidClose(context.Context, *DidCloseTextDocumentParams) error { return nil }
func (BaseHandler) WillSave(context.Context, *WillSaveTextDocumentParams) error { return nil }
func (BaseHandler) WillSaveWaitUntil(context.Context, *WillSaveTextDocumentParams) ([]TextEdit, error) {
	return nil, methodNotFound
}

func (BaseHandler) Hover(context.Context, *HoverParams) (*Hover, error) { return nil, methodNotFound }
func (BaseHandler) Completion(context.Context, *CompletionParams) (*CompletionList, error) {
	return nil, methodNotFound
}
func (BaseHandler) CompletionItemResolve(context.Context, *CompletionItem) (*CompletionItem, error) {
	return nil, methodNotFound
}
func (BaseHandler) Definition(context.Context, *DefinitionParams) ([]Location, error) {
	return nil, methodNotFound
}
func (BaseHandler) Declaration(context.Context, *DeclarationParams) ([]Location, error) {
	return nil, methodNotFound
}
func (BaseHandler) TypeDefinition(context.Context, *TypeDefinitionParams) ([]Location, error) {
	return nil, methodNotFound
}
func (BaseHandler) Implementation(context.Context, *ImplementationParams) ([]Location, error) {
	return nil, methodNotFound
}
func (BaseHandler) References(context.Context, *ReferenceParams) ([]Location, error) {
	return nil, methodNotFound
}
func (BaseHandler) DocumentSymbol(context.Context, *DocumentSymbolParams) ([]DocumentSymbol, error) {
	return nil, methodNotFound
}
func (BaseHandler) CodeAction(context.Context, *CodeActionParams) ([]CodeAction, error) {
	return nil, methodNotFound
}
func (BaseHandler) CodeActionResolve(context.Context, *CodeAction) (*CodeAction, error) {
	return nil, methodNotFound
}
func (BaseHandler) CodeLens(context.Context, *CodeLensParams) ([]CodeLens, error) {
	return nil, methodNotFound
}
func (BaseHandler) CodeLensResolve(context.Context, *CodeLens) (*CodeLens, error) {
	return nil, methodNotFound
}
func (BaseHandler) DocumentLink(context.Context, *DocumentLinkParams) ([]DocumentLink, error) {
	return nil, methodNotFound
}
func (BaseHandler) DocumentLinkResolve(context.Context, *DocumentLink) (*DocumentLink, error) {
	return nil, methodNotFound
}
func (BaseHandler) SignatureHelp(context.Context, *SignatureHelpParams) (*SignatureHelp, error) {
	return nil, methodNotFound
}
func (BaseHandler) FoldingRange(context.Context, *FoldingRangeParams) ([]FoldingRange, error) {
	return nil, methodNotFound
}
func (BaseHandler) SelectionRange(context.Context, *SelectionRangeParams) ([]SelectionRange, error) {
	return nil, methodNotFound
}
func (BaseHandler) Formatting(context.Context, *DocumentFormattingParams) ([]TextEdit, error) {
	return nil, methodNotFound
}
func (BaseHandler) RangeFormatting(context.Context, *DocumentRangeFormattingParams) ([]TextEdit, error) {
	return nil, methodNotFound
}
func (BaseHandler) OnTypeFormatting(context.Context, *DocumentOnTypeFormattingParams) ([]TextEdit, error) {
	return nil, methodNotFound
}
func (BaseHandler) Rename(context.Context, *RenameParams) (*WorkspaceEdit, error) {
	return nil, methodNotFound
}
func (BaseHandler) PrepareRename(context.Context, *PrepareRenameParams) (*PrepareRenameResult, error) {
	return nil, methodNotFound
}
func (BaseHandler) SemanticTokensFull(context.Context, *SemanticTokensParams) (*SemanticTokens, error) {
	return nil, methodNotFound
}
func (BaseHandler) SemanticTokensFullDelta(context.Context, *SemanticTokensDeltaParams) (*SemanticTokens, error) {
	return nil, methodNotFound
}
func (BaseHandler) SemanticTokensRange(context.Context, *SemanticTokensRangeParams) (*SemanticTokens, error) {
	return nil, methodNotFound
}
func (BaseHandler) Diagnostic(context.Context, *DocumentDiagnosticParams) (*DocumentDiagnosticReport, error) {
	return nil, methodNotFound
}

func (BaseHandler) Symbol(context.Context, *WorkspaceSymbolParams) ([]SymbolInformation, error) {
	return nil, methodNotFound
}
func (BaseHandler) ExecuteCommand(context.Context, *ExecuteCommandParams) (interface{}, error) {
	return nil, methodNotFound
}
func (BaseHandler) DidChangeConfiguration(context.Context, *DidChangeConfigurationParams) error {
	return nil
}
func (BaseHandler) DidChangeWatchedFiles(context.Context, *DidChangeWatchedFilesParams) error {
	return nil
}
func (BaseHandler) DidChangeWorkspaceFolders(context.Context, *DidChangeWorkspaceFoldersParams) error {
	return nil
}
func (BaseHandler) WorkspaceDiagnostic(context.Context, *WorkspaceDiagnosticParams) (*WorkspaceDiagnosticReport, error) {
	return nil, methodNotFound
}

func (BaseHandler) Progress(context.Context, *ProgressParams) error { return nil }

// methodNotFound is returned by every default request handler. Handlers
// that genuinely have nothing to say about a request should return this
// same sentinel rather than a bespoke error, so the dispatcher's error
// translation stays exact.
var methodNotFound = &notFoundError{}

type notFoundError struct{}

func (*notFoundError) Error() string { return "method not found" }

// IsMethodNotFound reports whether err is the BaseHandler default-method
// sentinel, letting the dispatcher map it to the MethodNotFound JSON-RPC
// code instead of InternalError.
func IsMethodNotFound(err error) bool {
	_, ok := err.(*notFoundError)
	return ok
}
