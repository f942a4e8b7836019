package protocol

// HoverParams parameters for textDocument/hover.
type HoverParams struct {
	TextDocumentPositionParams
}

// Hover result for textDocument/hover. Range, when set, is the span the
// contents apply to, letting the client highlight it.
type Hover struct {
	Contents MarkupContent `json:"contents"`
	Range    *Range        `json:"range,omitempty"`
}

// MarkupContent is renderable text, plain or markdown.
type MarkupContent struct {
	Kind  MarkupKind `json:"kind"`
	Value string     `json:"value"`
}

// HoverOptions server capability for textDocument/hover.
type HoverOptions struct {
	WorkDoneProgressOptions
}
