package dispatch

import (
	"context"
	"sync"

	"go.uber.org/atomic"

	"github.com/akhenakh/lspgo/jsonrpc2"
)

// inboundEntry tracks one in-flight server-side request handler so a
// matching $/cancelRequest can abort it.
type inboundEntry struct {
	cancel    context.CancelFunc
	cancelled *atomic.Bool
}

// inboundRegistry is owned exclusively by the Dispatcher. It is consulted
// both by request-handling goroutines (to remove their own entry on
// completion) and by the dispatcher's own notification handling path (to
// mark an entry cancelled), so it needs its own lock distinct from any
// lock the outbound pending.Registry holds.
type inboundRegistry struct {
	mu      sync.Mutex
	entries map[jsonrpc2.Id]*inboundEntry
}

func newInboundRegistry() *inboundRegistry {
	return &inboundRegistry{entries: make(map[jsonrpc2.Id]*inboundEntry)}
}

func (r *inboundRegistry) insert(id jsonrpc2.Id, cancel context.CancelFunc) *inboundEntry {
	e := &inboundEntry{cancel: cancel, cancelled: atomic.NewBool(false)}
	r.mu.Lock()
	r.entries[id] = e
	r.mu.Unlock()
	return e
}

func (r *inboundRegistry) remove(id jsonrpc2.Id) {
	r.mu.Lock()
	delete(r.entries, id)
	r.mu.Unlock()
}

// cancel marks the entry for id cancelled and invokes its cancel func. A
// late cancel for an id with no entry (already completed, or unknown) is
// silently dropped; completed entries are not retained for it.
func (r *inboundRegistry) cancel(id jsonrpc2.Id) {
	r.mu.Lock()
	e, ok := r.entries[id]
	r.mu.Unlock()
	if !ok {
		return
	}
	e.cancelled.Store(true)
	e.cancel()
}
