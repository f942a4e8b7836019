// Package pending implements the outbound pending-request registry: the
// map from an Id the client handle allocated for a server→client request to
// the one-shot channel its caller is awaiting a Response on.
package pending

import (
	"sync"

	"go.uber.org/zap"

	"github.com/akhenakh/lspgo/jsonrpc2"
)

// Registry correlates outbound request ids to their awaiters. It is safe
// for concurrent use: register/complete/cancel may be called from any
// number of goroutines.
type Registry struct {
	logger *zap.Logger

	mu      sync.Mutex
	entries map[jsonrpc2.Id]chan *jsonrpc2.Response
}

// New builds an empty registry. A nil logger defaults to zap.NewNop().
func New(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		logger:  logger,
		entries: make(map[jsonrpc2.Id]chan *jsonrpc2.Response),
	}
}

// Register allocates a one-shot waiter channel for id. The caller must
// eventually receive from it exactly once; Complete or Cancel close the
// delivery side.
func (r *Registry) Register(id jsonrpc2.Id) <-chan *jsonrpc2.Response {
	ch := make(chan *jsonrpc2.Response, 1)
	r.mu.Lock()
	r.entries[id] = ch
	r.mu.Unlock()
	return ch
}

// Complete delivers resp to the waiter registered for resp.ID, if any.
// Completing an unknown id is logged and dropped — the peer may have
// replied to a request whose local waiter already gave up.
func (r *Registry) Complete(resp *jsonrpc2.Response) {
	r.mu.Lock()
	ch, ok := r.entries[resp.ID]
	if ok {
		delete(r.entries, resp.ID)
	}
	r.mu.Unlock()

	if !ok {
		r.logger.Debug("response for unknown pending id dropped", zap.String("id", resp.ID.Text()))
		return
	}
	ch <- resp
	close(ch)
}

// Cancel removes the entry for id, if present, and delivers a synthetic
// RequestCancelled error to its waiter. It reports whether an entry was
// found, which tells the caller whether a $/cancelRequest notification to
// the peer is still meaningful.
func (r *Registry) Cancel(id jsonrpc2.Id) bool {
	r.mu.Lock()
	ch, ok := r.entries[id]
	if ok {
		delete(r.entries, id)
	}
	r.mu.Unlock()

	if !ok {
		return false
	}
	ch <- jsonrpc2.NewErrorResponse(id, jsonrpc2.NewError(jsonrpc2.RequestCancelled, "request cancelled by local caller"))
	close(ch)
	return true
}

// Len reports the number of in-flight outbound requests. Exposed for tests
// and diagnostics.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
