package protocol

import "encoding/json"

// CodeActionParams parameters for textDocument/codeAction.
type CodeActionParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
	Context      CodeActionContext      `json:"context"`
}

// CodeActionContext carries the diagnostics overlapping the requested
// range and, optionally, the kinds the client will actually show.
type CodeActionContext struct {
	Diagnostics []Diagnostic           `json:"diagnostics"`
	Only        []CodeActionKind       `json:"only,omitempty"`
	TriggerKind *CodeActionTriggerKind `json:"triggerKind,omitempty"`
}

// CodeActionTriggerKind how a code action request was triggered.
type CodeActionTriggerKind int

const (
	CodeActionTriggerKindInvoked   CodeActionTriggerKind = 1
	CodeActionTriggerKindAutomatic CodeActionTriggerKind = 2
)

// CodeActionKind is a hierarchical, dot-separated action category.
type CodeActionKind string

const (
	Empty                 CodeActionKind = ""
	QuickFix              CodeActionKind = "quickfix"
	Refactor              CodeActionKind = "refactor"
	RefactorExtract       CodeActionKind = "refactor.extract"
	RefactorInline        CodeActionKind = "refactor.inline"
	RefactorRewrite       CodeActionKind = "refactor.rewrite"
	Source                CodeActionKind = "source"
	SourceOrganizeImports CodeActionKind = "source.organizeImports"
	SourceFixAll          CodeActionKind = "source.fixAll"
)

// CodeAction is a change the client can apply: an edit, a command, or
// both (edit first). Data round-trips opaquely through codeAction/resolve
// so servers can defer computing the edit until the action is picked.
type CodeAction struct {
	Title       string              `json:"title"`
	Kind        CodeActionKind      `json:"kind,omitempty"`
	Diagnostics []Diagnostic        `json:"diagnostics,omitempty"`
	IsPreferred bool                `json:"isPreferred,omitempty"`
	Disabled    *CodeActionDisabled `json:"disabled,omitempty"`
	Edit        *WorkspaceEdit      `json:"edit,omitempty"`
	Command     *Command            `json:"command,omitempty"`
	Data        json.RawMessage     `json:"data,omitempty"`
}

// CodeActionDisabled explains why an action cannot currently run.
type CodeActionDisabled struct {
	Reason string `json:"reason"`
}

// Command references a command by identifier; the arguments stay opaque
// until the handler that registered the command decodes them.
type Command struct {
	Title     string            `json:"title"`
	Command   string            `json:"command"`
	Arguments []json.RawMessage `json:"arguments,omitempty"`
}

// CodeActionOptions server capability for textDocument/codeAction.
type CodeActionOptions struct {
	WorkDoneProgressOptions
	CodeActionKinds []CodeActionKind `json:"codeActionKinds,omitempty"`
	ResolveProvider bool             `json:"resolveProvider,omitempty"`
}
