package protocol

import "encoding/json"

// CompletionTriggerKind explains what caused a completion request.
type CompletionTriggerKind int

const (
	TriggerInvoked                  CompletionTriggerKind = 1
	TriggerCharacter                CompletionTriggerKind = 2
	TriggerForIncompleteCompletions CompletionTriggerKind = 3
)

// CompletionContext accompanies a completion request when the client
// supports it.
type CompletionContext struct {
	TriggerKind      CompletionTriggerKind `json:"triggerKind"`
	TriggerCharacter string                `json:"triggerCharacter,omitempty"`
}

// CompletionParams parameters for textDocument/completion.
type CompletionParams struct {
	TextDocumentPositionParams
	Context *CompletionContext `json:"context,omitempty"`
}

// CompletionList is the result of textDocument/completion. IsIncomplete
// tells the client that further typing should recompute the list.
type CompletionList struct {
	IsIncomplete bool             `json:"isIncomplete"`
	Items        []CompletionItem `json:"items"`
}

// CompletionItem is a single suggestion. Label doubles as the inserted
// text unless InsertText or TextEdit override it; Documentation may be a
// bare string or a MarkupContent object on the wire. Data round-trips
// opaquely through completionItem/resolve.
type CompletionItem struct {
	Label            string              `json:"label"`
	Kind             *CompletionItemKind `json:"kind,omitempty"`
	Detail           string              `json:"detail,omitempty"`
	Documentation    json.RawMessage     `json:"documentation,omitempty"`
	Preselect        bool                `json:"preselect,omitempty"`
	SortText         string              `json:"sortText,omitempty"`
	FilterText       string              `json:"filterText,omitempty"`
	InsertText       string              `json:"insertText,omitempty"`
	InsertTextFormat *InsertTextFormat   `json:"insertTextFormat,omitempty"`
	TextEdit         *TextEdit           `json:"textEdit,omitempty"`
	Data             json.RawMessage     `json:"data,omitempty"`
}

// CompletionItemKind selects the icon the editor shows next to an item.
type CompletionItemKind int

const (
	Text          CompletionItemKind = 1
	Method        CompletionItemKind = 2
	Function      CompletionItemKind = 3
	Constructor   CompletionItemKind = 4
	Field         CompletionItemKind = 5
	Variable      CompletionItemKind = 6
	Class         CompletionItemKind = 7
	Interface     CompletionItemKind = 8
	Module        CompletionItemKind = 9
	Property      CompletionItemKind = 10
	Unit          CompletionItemKind = 11
	Value         CompletionItemKind = 12
	Enum          CompletionItemKind = 13
	Keyword       CompletionItemKind = 14
	Snippet       CompletionItemKind = 15
	Color         CompletionItemKind = 16
	File          CompletionItemKind = 17
	Reference     CompletionItemKind = 18
	Folder        CompletionItemKind = 19
	EnumMember    CompletionItemKind = 20
	Constant      CompletionItemKind = 21
	Struct        CompletionItemKind = 22
	Event         CompletionItemKind = 23
	Operator      CompletionItemKind = 24
	TypeParameter CompletionItemKind = 25
)

// InsertTextFormat says whether insert text is literal or a snippet.
type InsertTextFormat int

const (
	PlainTextFormat InsertTextFormat = 1
	SnippetFormat   InsertTextFormat = 2
)
