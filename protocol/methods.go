package protocol

// Defines constants for the fixed set of LSP method names this framework
// uses: the client-to-server methods its dispatch table recognizes and the
// server-to-client methods the client handle sends.

const (
	// Text Document Synchronization
	MethodTextDocumentDidOpen           = "textDocument/didOpen"
	MethodTextDocumentDidChange         = "textDocument/didChange"
	MethodTextDocumentDidSave           = "textDocument/didSave"
	MethodTextDocumentDidClose          = "textDocument/didClose"
	MethodTextDocumentWillSave          = "textDocument/willSave"
	MethodTextDocumentWillSaveWaitUntil = "textDocument/willSaveWaitUntil"

	// Language Features
	MethodTextDocumentHover                   = "textDocument/hover"
	MethodTextDocumentCompletion              = "textDocument/completion"
	MethodCompletionItemResolve               = "completionItem/resolve"
	MethodTextDocumentDefinition              = "textDocument/definition"
	MethodTextDocumentDeclaration             = "textDocument/declaration"
	MethodTextDocumentTypeDefinition          = "textDocument/typeDefinition"
	MethodTextDocumentImplementation          = "textDocument/implementation"
	MethodTextDocumentReferences              = "textDocument/references"
	MethodTextDocumentDocumentSymbol          = "textDocument/documentSymbol"
	MethodTextDocumentCodeAction              = "textDocument/codeAction"
	MethodCodeActionResolve                   = "codeAction/resolve"
	MethodTextDocumentCodeLens                = "textDocument/codeLens"
	MethodCodeLensResolve                     = "codeLens/resolve"
	MethodTextDocumentDocumentLink            = "textDocument/documentLink"
	MethodDocumentLinkResolve                 = "documentLink/resolve"
	MethodTextDocumentSignatureHelp           = "textDocument/signatureHelp"
	MethodTextDocumentFoldingRange            = "textDocument/foldingRange"
	MethodTextDocumentSelectionRange          = "textDocument/selectionRange"
	MethodTextDocumentFormatting              = "textDocument/formatting"
	MethodTextDocumentRangeFormatting         = "textDocument/rangeFormatting"
	MethodTextDocumentOnTypeFormatting        = "textDocument/onTypeFormatting"
	MethodTextDocumentRename                  = "textDocument/rename"
	MethodTextDocumentPrepareRename           = "textDocument/prepareRename"
	MethodTextDocumentSemanticTokensFull      = "textDocument/semanticTokens/full"
	MethodTextDocumentSemanticTokensFullDelta = "textDocument/semanticTokens/full/delta"
	MethodTextDocumentSemanticTokensRange     = "textDocument/semanticTokens/range"
	MethodTextDocumentDiagnostic              = "textDocument/diagnostic"

	// Workspace Features
	MethodWorkspaceSymbol                    = "workspace/symbol"
	MethodWorkspaceExecuteCommand            = "workspace/executeCommand"
	MethodWorkspaceApplyEdit                 = "workspace/applyEdit"
	MethodWorkspaceConfiguration             = "workspace/configuration"
	MethodWorkspaceWorkspaceFolders          = "workspace/workspaceFolders"
	MethodWorkspaceDidChangeWorkspaceFolders = "workspace/didChangeWorkspaceFolders"
	MethodWorkspaceDidChangeConfiguration    = "workspace/didChangeConfiguration"
	MethodWorkspaceDidChangeWatchedFiles     = "workspace/didChangeWatchedFiles"
	MethodWorkspaceDiagnostic                = "workspace/diagnostic"
	MethodWorkspaceDiagnosticRefresh         = "workspace/diagnostic/refresh"
	MethodWorkspaceCodeLensRefresh           = "workspace/codeLens/refresh"

	// Client Capability Registration
	MethodClientRegisterCapability   = "client/registerCapability"
	MethodClientUnregisterCapability = "client/unregisterCapability"

	// Window Features
	MethodWindowShowMessage            = "window/showMessage"
	MethodWindowShowMessageRequest     = "window/showMessageRequest"
	MethodWindowLogMessage             = "window/logMessage"
	MethodWindowWorkDoneProgressCreate = "window/workDoneProgress/create"

	// Diagnostics (push model)
	MethodTextDocumentPublishDiagnostics = "textDocument/publishDiagnostics"

	// General Lifecycle
	MethodInitialize    = "initialize"
	MethodInitialized   = "initialized"
	MethodShutdown      = "shutdown"
	MethodExit          = "exit"
	MethodCancelRequest = "$/cancelRequest"
	MethodProgress      = "$/progress"
)
