package protocol

import "encoding/json"

// DefinitionParams, DeclarationParams, TypeDefinitionParams and
// ImplementationParams all share the position-addressed shape.
type DefinitionParams struct{ TextDocumentPositionParams }
type DeclarationParams struct{ TextDocumentPositionParams }
type TypeDefinitionParams struct{ TextDocumentPositionParams }
type ImplementationParams struct{ TextDocumentPositionParams }

// ReferenceContext controls whether the declaration itself is included.
type ReferenceContext struct {
	IncludeDeclaration bool `json:"includeDeclaration"`
}

// ReferenceParams parameters for textDocument/references.
type ReferenceParams struct {
	TextDocumentPositionParams
	Context ReferenceContext `json:"context"`
}

// DocumentSymbolParams parameters for textDocument/documentSymbol.
type DocumentSymbolParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// DocumentSymbol is a hierarchical outline entry.
type DocumentSymbol struct {
	Name           string           `json:"name"`
	Detail         string           `json:"detail,omitempty"`
	Kind           SymbolKind       `json:"kind"`
	Range          Range            `json:"range"`
	SelectionRange Range            `json:"selectionRange"`
	Children       []DocumentSymbol `json:"children,omitempty"`
}

// RenameParams parameters for textDocument/rename.
type RenameParams struct {
	TextDocumentPositionParams
	NewName string `json:"newName"`
}

// PrepareRenameParams parameters for textDocument/prepareRename.
type PrepareRenameParams struct{ TextDocumentPositionParams }

// PrepareRenameResult result of textDocument/prepareRename.
type PrepareRenameResult struct {
	Range       Range  `json:"range"`
	Placeholder string `json:"placeholder"`
}

// CodeLensParams parameters for textDocument/codeLens.
type CodeLensParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// CodeLens represents a command shown inline in the source.
type CodeLens struct {
	Range   Range           `json:"range"`
	Command *Command        `json:"command,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// CodeLensOptions server capability for textDocument/codeLens.
type CodeLensOptions struct {
	ResolveProvider bool `json:"resolveProvider,omitempty"`
}

// DocumentLinkParams parameters for textDocument/documentLink.
type DocumentLinkParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// DocumentLink is a clickable link inside a document.
type DocumentLink struct {
	Range   Range           `json:"range"`
	Target  *DocumentURI    `json:"target,omitempty"`
	Tooltip string          `json:"tooltip,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// DocumentLinkOptions server capability for textDocument/documentLink.
type DocumentLinkOptions struct {
	ResolveProvider bool `json:"resolveProvider,omitempty"`
}

// ParameterInformation describes one parameter of a signature.
type ParameterInformation struct {
	Label string `json:"label"`
}

// SignatureInformation describes one callable signature.
type SignatureInformation struct {
	Label         string                 `json:"label"`
	Documentation string                 `json:"documentation,omitempty"`
	Parameters    []ParameterInformation `json:"parameters,omitempty"`
}

// SignatureHelp result of textDocument/signatureHelp.
type SignatureHelp struct {
	Signatures      []SignatureInformation `json:"signatures"`
	ActiveSignature uint                   `json:"activeSignature,omitempty"`
	ActiveParameter uint                   `json:"activeParameter,omitempty"`
}

// SignatureHelpParams parameters for textDocument/signatureHelp.
type SignatureHelpParams struct{ TextDocumentPositionParams }

// SignatureHelpOptions server capability for textDocument/signatureHelp.
type SignatureHelpOptions struct {
	TriggerCharacters []string `json:"triggerCharacters,omitempty"`
}

// FoldingRangeParams parameters for textDocument/foldingRange.
type FoldingRangeParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// FoldingRangeKind classifies a FoldingRange.
type FoldingRangeKind string

const (
	FoldingRangeComment FoldingRangeKind = "comment"
	FoldingRangeImports FoldingRangeKind = "imports"
	FoldingRangeRegion  FoldingRangeKind = "region"
)

// FoldingRange describes one collapsible source range.
type FoldingRange struct {
	StartLine uint             `json:"startLine"`
	EndLine   uint             `json:"endLine"`
	Kind      FoldingRangeKind `json:"kind,omitempty"`
}

// SelectionRangeParams parameters for textDocument/selectionRange.
type SelectionRangeParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Positions    []Position             `json:"positions"`
}

// SelectionRange is one node of the selection-range hierarchy.
type SelectionRange struct {
	Range  Range           `json:"range"`
	Parent *SelectionRange `json:"parent,omitempty"`
}

// FormattingOptions controls whitespace formatting.
type FormattingOptions struct {
	TabSize      uint `json:"tabSize"`
	InsertSpaces bool `json:"insertSpaces"`
}

// DocumentFormattingParams parameters for textDocument/formatting.
type DocumentFormattingParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Options      FormattingOptions      `json:"options"`
}

// DocumentRangeFormattingParams parameters for textDocument/rangeFormatting.
type DocumentRangeFormattingParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
	Options      FormattingOptions      `json:"options"`
}

// DocumentOnTypeFormattingParams parameters for
// textDocument/onTypeFormatting.
type DocumentOnTypeFormattingParams struct {
	TextDocumentPositionParams
	Ch      string            `json:"ch"`
	Options FormattingOptions `json:"options"`
}

// SemanticTokensParams parameters for textDocument/semanticTokens/full.
type SemanticTokensParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// SemanticTokensDeltaParams parameters for
// textDocument/semanticTokens/full/delta.
type SemanticTokensDeltaParams struct {
	TextDocument     TextDocumentIdentifier `json:"textDocument"`
	PreviousResultID string                 `json:"previousResultId"`
}

// SemanticTokensRangeParams parameters for
// textDocument/semanticTokens/range.
type SemanticTokensRangeParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
}

// SemanticTokens is the flattened token-data result.
type SemanticTokens struct {
	ResultID string `json:"resultId,omitempty"`
	Data     []uint `json:"data"`
}

// WillSaveTextDocumentParams parameters for textDocument/willSave and
// textDocument/willSaveWaitUntil.
type WillSaveTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Reason       TextDocumentSaveReason `json:"reason"`
}

// TextDocumentSaveReason explains why a willSave fired.
type TextDocumentSaveReason int

const (
	SaveReasonManual     TextDocumentSaveReason = 1
	SaveReasonAfterDelay TextDocumentSaveReason = 2
	SaveReasonFocusOut   TextDocumentSaveReason = 3
)

// DiagnosticOptions server capability for the pull-diagnostics model.
type DiagnosticOptions struct {
	Identifier            string `json:"identifier,omitempty"`
	InterFileDependencies bool   `json:"interFileDependencies"`
	WorkspaceDiagnostics  bool   `json:"workspaceDiagnostics"`
}

// DocumentDiagnosticParams parameters for textDocument/diagnostic.
type DocumentDiagnosticParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// DocumentDiagnosticReport result of textDocument/diagnostic (the "full"
// report kind; unchanged reports are out of scope for this framework).
type DocumentDiagnosticReport struct {
	Kind  string       `json:"kind"` // "full"
	Items []Diagnostic `json:"items"`
}

// WorkspaceDiagnosticParams parameters for workspace/diagnostic.
type WorkspaceDiagnosticParams struct {
	PreviousResultIds []PreviousResultID `json:"previousResultIds"`
}

// PreviousResultID pairs a URI with the client's cached diagnostic result id.
type PreviousResultID struct {
	URI      DocumentURI `json:"uri"`
	ResultID string      `json:"value"`
}

// WorkspaceDiagnosticReport result of workspace/diagnostic.
type WorkspaceDiagnosticReport struct {
	Items []WorkspaceDocumentDiagnosticReport `json:"items"`
}

// WorkspaceDocumentDiagnosticReport is one document's entry in a
// WorkspaceDiagnosticReport.
type WorkspaceDocumentDiagnosticReport struct {
	URI     DocumentURI  `json:"uri"`
	Version *int         `json:"version,omitempty"`
	Kind    string       `json:"kind"` // "full"
	Items   []Diagnostic `json:"items"`
}
