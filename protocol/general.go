package protocol

import "encoding/json"

// ClientInfo information about the client.
type ClientInfo struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// InitializeParams parameters for the initialize request. ProcessID and
// RootURI are pointers because the protocol allows explicit null for both.
type InitializeParams struct {
	ProcessID             *int               `json:"processId,omitempty"`
	ClientInfo            *ClientInfo        `json:"clientInfo,omitempty"`
	RootURI               *DocumentURI       `json:"rootUri,omitempty"`
	InitializationOptions json.RawMessage    `json:"initializationOptions,omitempty"`
	Capabilities          ClientCapabilities `json:"capabilities"`
	Trace                 string             `json:"trace,omitempty"`
	WorkspaceFolders      []WorkspaceFolder  `json:"workspaceFolders,omitempty"`
}

// WorkspaceFolder information.
type WorkspaceFolder struct {
	URI  string `json:"uri"`
	Name string `json:"name"`
}

// ClientCapabilities announces what the client supports. Unrecognized
// capability groups are dropped on decode; the dispatcher only ever routes
// methods from the fixed surface regardless of what the client claims.
type ClientCapabilities struct {
	Workspace    *WorkspaceClientCapabilities    `json:"workspace,omitempty"`
	TextDocument *TextDocumentClientCapabilities `json:"textDocument,omitempty"`
	Experimental json.RawMessage                 `json:"experimental,omitempty"`
}

// WorkspaceClientCapabilities workspace-scoped client capabilities.
type WorkspaceClientCapabilities struct {
	ApplyEdit              bool                           `json:"applyEdit,omitempty"`
	WorkspaceFolders       bool                           `json:"workspaceFolders,omitempty"`
	Configuration          bool                           `json:"configuration,omitempty"`
	DidChangeConfiguration *DynamicRegistrationCapability `json:"didChangeConfiguration,omitempty"`
	DidChangeWatchedFiles  *DynamicRegistrationCapability `json:"didChangeWatchedFiles,omitempty"`
}

// DynamicRegistrationCapability is the common one-field capability shape.
type DynamicRegistrationCapability struct {
	DynamicRegistration bool `json:"dynamicRegistration,omitempty"`
}

// TextDocumentClientCapabilities document-scoped client capabilities.
type TextDocumentClientCapabilities struct {
	Synchronization    *TextDocumentSyncClientCapabilities   `json:"synchronization,omitempty"`
	Completion         *CompletionClientCapabilities         `json:"completion,omitempty"`
	Hover              *HoverClientCapabilities              `json:"hover,omitempty"`
	PublishDiagnostics *PublishDiagnosticsClientCapabilities `json:"publishDiagnostics,omitempty"`
}

// TextDocumentSyncClientCapabilities synchronization capabilities.
type TextDocumentSyncClientCapabilities struct {
	DynamicRegistration bool `json:"dynamicRegistration,omitempty"`
	WillSave            bool `json:"willSave,omitempty"`
	WillSaveWaitUntil   bool `json:"willSaveWaitUntil,omitempty"`
	DidSave             bool `json:"didSave,omitempty"`
}

// CompletionClientCapabilities completion-request capabilities.
type CompletionClientCapabilities struct {
	DynamicRegistration bool `json:"dynamicRegistration,omitempty"`
	CompletionItem      *struct {
		SnippetSupport bool `json:"snippetSupport,omitempty"`
	} `json:"completionItem,omitempty"`
}

// HoverClientCapabilities hover-request capabilities.
type HoverClientCapabilities struct {
	DynamicRegistration bool         `json:"dynamicRegistration,omitempty"`
	ContentFormat       []MarkupKind `json:"contentFormat,omitempty"`
}

// PublishDiagnosticsClientCapabilities push-diagnostics capabilities.
type PublishDiagnosticsClientCapabilities struct {
	RelatedInformation bool `json:"relatedInformation,omitempty"`
	VersionSupport     bool `json:"versionSupport,omitempty"`
}

// MarkupKind is the content format a client accepts in result literals
// like Hover or CompletionItem documentation.
type MarkupKind string

const (
	PlainText MarkupKind = "plaintext"
	Markdown  MarkupKind = "markdown"
)

// InitializeResult result of the initialize request.
type InitializeResult struct {
	Capabilities ServerCapabilities `json:"capabilities"`
	ServerInfo   *ServerInfo        `json:"serverInfo,omitempty"`
}

// ServerInfo information about the server.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// ServerCapabilities defines the capabilities provided by the server.
type ServerCapabilities struct {
	TextDocumentSync        *TextDocumentSyncOptions `json:"textDocumentSync,omitempty"`
	CompletionProvider      *CompletionOptions       `json:"completionProvider,omitempty"`
	HoverProvider           *HoverOptions            `json:"hoverProvider,omitempty"`
	DefinitionProvider      *DefinitionOptions       `json:"definitionProvider,omitempty"`
	DeclarationProvider     bool                     `json:"declarationProvider,omitempty"`
	TypeDefinitionProvider  bool                     `json:"typeDefinitionProvider,omitempty"`
	ImplementationProvider  bool                     `json:"implementationProvider,omitempty"`
	ReferencesProvider      bool                     `json:"referencesProvider,omitempty"`
	DocumentSymbolProvider  bool                     `json:"documentSymbolProvider,omitempty"`
	WorkspaceSymbolProvider bool                     `json:"workspaceSymbolProvider,omitempty"`
	CodeActionProvider      *CodeActionOptions       `json:"codeActionProvider,omitempty"`
	CodeLensProvider        *CodeLensOptions         `json:"codeLensProvider,omitempty"`
	DocumentLinkProvider    *DocumentLinkOptions     `json:"documentLinkProvider,omitempty"`

	DocumentFormattingProvider      bool                   `json:"documentFormattingProvider,omitempty"`
	DocumentRangeFormattingProvider bool                   `json:"documentRangeFormattingProvider,omitempty"`
	RenameProvider                  bool                   `json:"renameProvider,omitempty"`
	SignatureHelpProvider           *SignatureHelpOptions  `json:"signatureHelpProvider,omitempty"`
	FoldingRangeProvider            bool                   `json:"foldingRangeProvider,omitempty"`
	SelectionRangeProvider          bool                   `json:"selectionRangeProvider,omitempty"`
	ExecuteCommandProvider          *ExecuteCommandOptions `json:"executeCommandProvider,omitempty"`
	DiagnosticProvider              *DiagnosticOptions     `json:"diagnosticProvider,omitempty"`
}

// SaveOptions server capability describing textDocument/didSave behavior.
type SaveOptions struct {
	IncludeText bool `json:"includeText,omitempty"`
}

// TextDocumentSyncOptions defines how text documents are synced.
type TextDocumentSyncOptions struct {
	OpenClose bool                 `json:"openClose,omitempty"`
	Change    TextDocumentSyncKind `json:"change,omitempty"`
	Save      *SaveOptions         `json:"save,omitempty"`
}

// TextDocumentSyncKind selects how didChange transfers edits.
type TextDocumentSyncKind int

const (
	SyncNone        TextDocumentSyncKind = 0
	SyncFull        TextDocumentSyncKind = 1
	SyncIncremental TextDocumentSyncKind = 2
)

// CompletionOptions server options for completion requests.
type CompletionOptions struct {
	ResolveProvider   bool     `json:"resolveProvider,omitempty"`
	TriggerCharacters []string `json:"triggerCharacters,omitempty"`
}

// WorkDoneProgressOptions options for work done progress reporting.
type WorkDoneProgressOptions struct {
	WorkDoneProgress bool `json:"workDoneProgress,omitempty"`
}

// DefinitionOptions server options for definition requests.
type DefinitionOptions struct {
	WorkDoneProgressOptions
}

// InitializedParams parameters for the initialized notification. Empty struct.
type InitializedParams struct{}

// LogMessageParams parameters for window/logMessage notification.
type LogMessageParams struct {
	Type    MessageType `json:"type"`
	Message string      `json:"message"`
}

// MessageType for log messages (error, warning, info, log).
type MessageType int

const (
	Error   MessageType = 1
	Warning MessageType = 2
	Info    MessageType = 3
	Log     MessageType = 4
)

// ShowMessageParams parameters for window/showMessage notification.
type ShowMessageParams struct {
	Type    MessageType `json:"type"`
	Message string      `json:"message"`
}

// ShowMessageRequestParams parameters for window/showMessageRequest request.
type ShowMessageRequestParams struct {
	Type    MessageType         `json:"type"`
	Message string              `json:"message"`
	Actions []MessageActionItem `json:"actions,omitempty"`
}

// MessageActionItem used in ShowMessageRequestParams.
type MessageActionItem struct {
	Title string `json:"title"`
}

// ShutdownParams parameters for the shutdown request. Empty struct.
type ShutdownParams struct{}

// ExitParams parameters for the exit notification. Empty struct.
type ExitParams struct{}
