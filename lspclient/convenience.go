package lspclient

import (
	"context"

	"github.com/akhenakh/lspgo/protocol"
)

// LogMessage sends window/logMessage.
func (c *Client) LogMessage(kind protocol.MessageType, message string) error {
	return c.Notify(protocol.MethodWindowLogMessage, &protocol.LogMessageParams{Type: kind, Message: message})
}

// ShowMessage sends window/showMessage.
func (c *Client) ShowMessage(kind protocol.MessageType, message string) error {
	return c.Notify(protocol.MethodWindowShowMessage, &protocol.ShowMessageParams{Type: kind, Message: message})
}

// ShowMessageRequest sends window/showMessageRequest and returns the action
// the user picked, or nil if they dismissed the prompt.
func (c *Client) ShowMessageRequest(ctx context.Context, kind protocol.MessageType, message string, actions []protocol.MessageActionItem) (*protocol.MessageActionItem, error) {
	var result *protocol.MessageActionItem
	err := c.Call(ctx, protocol.MethodWindowShowMessageRequest, &protocol.ShowMessageRequestParams{
		Type:    kind,
		Message: message,
		Actions: actions,
	}, &result)
	return result, err
}

// PublishDiagnostics sends textDocument/publishDiagnostics, replacing the
// full set of diagnostics the client holds for uri.
func (c *Client) PublishDiagnostics(uri protocol.DocumentURI, diagnostics []protocol.Diagnostic) error {
	return c.Notify(protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// RegisterCapability sends client/registerCapability.
func (c *Client) RegisterCapability(ctx context.Context, registrations []protocol.Registration) error {
	return c.Call(ctx, protocol.MethodClientRegisterCapability, &protocol.RegistrationParams{Registrations: registrations}, nil)
}

// UnregisterCapability sends client/unregisterCapability.
func (c *Client) UnregisterCapability(ctx context.Context, unregistrations []protocol.Unregistration) error {
	return c.Call(ctx, protocol.MethodClientUnregisterCapability, &protocol.UnregistrationParams{Unregisterations: unregistrations}, nil)
}

// ApplyEdit sends workspace/applyEdit and reports whether the client
// applied it.
func (c *Client) ApplyEdit(ctx context.Context, label string, edit protocol.WorkspaceEdit) (*protocol.ApplyWorkspaceEditResult, error) {
	var result protocol.ApplyWorkspaceEditResult
	err := c.Call(ctx, protocol.MethodWorkspaceApplyEdit, &protocol.ApplyWorkspaceEditParams{Label: label, Edit: edit}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Configuration sends workspace/configuration, returning one raw settings
// value per requested item, in order.
func (c *Client) Configuration(ctx context.Context, items []protocol.ConfigurationItem) ([]interface{}, error) {
	var result []interface{}
	err := c.Call(ctx, protocol.MethodWorkspaceConfiguration, &protocol.ConfigurationParams{Items: items}, &result)
	return result, err
}

// WorkspaceFolders sends workspace/workspaceFolders.
func (c *Client) WorkspaceFolders(ctx context.Context) ([]protocol.WorkspaceFolder, error) {
	var result []protocol.WorkspaceFolder
	err := c.Call(ctx, protocol.MethodWorkspaceWorkspaceFolders, nil, &result)
	return result, err
}

// CodeLensRefresh sends workspace/codeLens/refresh, asking the client to
// re-request code lenses for its visible documents.
func (c *Client) CodeLensRefresh(ctx context.Context) error {
	return c.Call(ctx, protocol.MethodWorkspaceCodeLensRefresh, nil, nil)
}

// DiagnosticRefresh sends workspace/diagnostic/refresh, asking the client
// to re-pull diagnostics for its open documents.
func (c *Client) DiagnosticRefresh(ctx context.Context) error {
	return c.Call(ctx, protocol.MethodWorkspaceDiagnosticRefresh, nil, nil)
}

// CreateWorkDoneProgress sends window/workDoneProgress/create, asking the
// client to prepare a progress indicator for token.
func (c *Client) CreateWorkDoneProgress(ctx context.Context, token protocol.ProgressToken) error {
	return c.Call(ctx, protocol.MethodWindowWorkDoneProgressCreate, &protocol.WorkDoneProgressCreateParams{Token: token}, nil)
}

// ProgressBegin sends the begin event of a $/progress sequence.
func (c *Client) ProgressBegin(token protocol.ProgressToken, value protocol.WorkDoneProgressBegin) error {
	return c.progress(token, value)
}

// ProgressReport sends a report event of a $/progress sequence.
func (c *Client) ProgressReport(token protocol.ProgressToken, value protocol.WorkDoneProgressReport) error {
	return c.progress(token, value)
}

// ProgressEnd sends the terminal event of a $/progress sequence.
func (c *Client) ProgressEnd(token protocol.ProgressToken, value protocol.WorkDoneProgressEnd) error {
	return c.progress(token, value)
}

func (c *Client) progress(token protocol.ProgressToken, value interface{}) error {
	return c.Notify(protocol.MethodProgress, &protocol.ProgressParams{Token: token, Value: value})
}
