// Package dispatch implements the LSP JSON-RPC dispatcher: the lifecycle
// state machine, the inbound/outbound message routing, and inbound
// cancellation, all layered over the generated method table and a
// protocol.Handler implementation supplied by the caller.
package dispatch

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/akhenakh/lspgo/jsonrpc2"
	"github.com/akhenakh/lspgo/jsonrpc2/pending"
	"github.com/akhenakh/lspgo/protocol"
)

// Dispatcher owns the lifecycle state for one connection and routes decoded
// jsonrpc2 messages to a protocol.Handler. It is safe for concurrent use:
// the driver may call Call from multiple goroutines for concurrently
// in-flight requests, and from its own goroutine for synchronously
// processed notifications and responses.
type Dispatcher struct {
	handler protocol.Handler
	logger  *zap.Logger

	lifecycle *lifecycle
	inbound   *inboundRegistry

	// outbound correlates Response messages arriving from the peer (answers
	// to requests the lspclient.Client issued) back to their callers.
	outbound *pending.Registry
}

// New builds a Dispatcher in the Uninitialized state. logger and outbound
// may be nil; logger defaults to zap.NewNop() and outbound to a fresh empty
// registry in that case — useful for handlers that never issue
// server→client calls.
func New(handler protocol.Handler, outbound *pending.Registry, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if outbound == nil {
		outbound = pending.New(logger)
	}
	return &Dispatcher{
		handler:   handler,
		logger:    logger,
		lifecycle: newLifecycle(),
		inbound:   newInboundRegistry(),
		outbound:  outbound,
	}
}

// State reports the current lifecycle state.
func (d *Dispatcher) State() State { return d.lifecycle.current() }

// Call processes one decoded message and returns the value to write back
// to the peer: a *jsonrpc2.Response for a Request, or nil for a
// Notification or Response (nothing is ever sent in reply to those). The
// returned error is only non-nil for programmer-error inputs (msg of an
// unrecognized concrete type); protocol-level failures are always encoded
// into the returned Response instead.
func (d *Dispatcher) Call(ctx context.Context, msg interface{}) (*jsonrpc2.Response, error) {
	switch m := msg.(type) {
	case *jsonrpc2.Response:
		d.outbound.Complete(m)
		return nil, nil
	case *jsonrpc2.Notification:
		d.handleNotification(ctx, m)
		return nil, nil
	case *jsonrpc2.Request:
		return d.Prepare(ctx, m).Run(), nil
	default:
		return nil, fmt.Errorf("dispatch: unrecognized message type %T", msg)
	}
}

// Prepare registers r in the inbound registry and returns its pending
// invocation. Registration happens on the caller's goroutine, before
// Prepare returns: a driver that reads frames sequentially and hands each
// request to its own goroutine must call Prepare inline on the read loop,
// so that a $/cancelRequest decoded from a later frame always finds the
// entry for an earlier request, no matter how the request goroutine is
// scheduled. Run must be called exactly once.
func (d *Dispatcher) Prepare(ctx context.Context, r *jsonrpc2.Request) *Invocation {
	cctx, cancel := context.WithCancel(ctx)
	return &Invocation{
		d:      d,
		req:    r,
		ctx:    cctx,
		cancel: cancel,
		entry:  d.inbound.insert(r.ID, cancel),
	}
}

// Invocation is one inbound request whose cancellation entry is already
// registered but whose handler has not run yet.
type Invocation struct {
	d      *Dispatcher
	req    *jsonrpc2.Request
	ctx    context.Context
	cancel context.CancelFunc
	entry  *inboundEntry
}

// Run applies the lifecycle gate, executes the handler, removes the
// inbound entry, and translates the outcome into a Response. A late
// result is overridden with RequestCancelled when the entry was marked
// cancelled before the handler finished.
func (inv *Invocation) Run() *jsonrpc2.Response {
	defer func() {
		inv.cancel()
		inv.d.inbound.remove(inv.req.ID)
	}()

	result, err := inv.d.dispatchRequest(inv.ctx, inv.req)

	id := inv.req.ID
	if inv.entry.cancelled.Load() {
		return jsonrpc2.NewErrorResponse(id, jsonrpc2.NewError(jsonrpc2.RequestCancelled, "request cancelled"))
	}
	if err != nil {
		if protocol.IsMethodNotFound(err) {
			return jsonrpc2.NewErrorResponse(id, jsonrpc2.NewError(jsonrpc2.MethodNotFound, err.Error()))
		}
		return jsonrpc2.NewErrorResponse(id, jsonrpc2.AsError(err))
	}
	resp, marshalErr := jsonrpc2.NewResultResponse(id, result)
	if marshalErr != nil {
		return jsonrpc2.NewErrorResponse(id, jsonrpc2.NewError(jsonrpc2.InternalError, marshalErr.Error()))
	}
	return resp
}

func (d *Dispatcher) handleNotification(ctx context.Context, n *jsonrpc2.Notification) {
	switch n.Method {
	case protocol.MethodExit:
		d.lifecycle.store(StateExited)
		return
	case protocol.MethodCancelRequest:
		var p protocol.CancelParams
		if err := decodeParams(n.Params, &p); err != nil {
			d.logger.Debug("malformed $/cancelRequest ignored", zap.Error(err))
			return
		}
		d.inbound.cancel(p.ID)
		return
	}

	state := d.lifecycle.current()
	if state != StateInitialized && state != StateShuttingDown {
		d.logger.Debug("notification dropped before initialization",
			zap.String("method", n.Method), zap.String("state", state.String()))
		return
	}

	fn, ok := notificationTable[n.Method]
	if !ok {
		d.logger.Debug("unhandled notification method", zap.String("method", n.Method))
		return
	}
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("notification handler panic recovered",
				zap.String("method", n.Method), zap.Any("panic", r))
		}
	}()
	if err := fn(ctx, d.handler, n.Params); err != nil {
		d.logger.Warn("notification handler returned error",
			zap.String("method", n.Method), zap.Error(err))
	}
}

// dispatchRequest applies the lifecycle gate and routes r to its handler,
// returning the raw outcome for Run to translate. Gate violations come
// back as *jsonrpc2.Error values so their codes survive the translation.
func (d *Dispatcher) dispatchRequest(ctx context.Context, r *jsonrpc2.Request) (interface{}, error) {
	switch r.Method {
	case protocol.MethodInitialize:
		return d.dispatchInitialize(ctx, r)
	case protocol.MethodShutdown:
		return d.dispatchShutdown(ctx)
	}

	switch d.lifecycle.current() {
	case StateUninitialized, StateInitializing:
		return nil, jsonrpc2.NewError(jsonrpc2.ServerNotInitialized, "server not initialized")
	case StateShuttingDown, StateExited:
		return nil, jsonrpc2.NewError(jsonrpc2.InvalidRequest, "server is shutting down")
	}

	fn, ok := requestTable[r.Method]
	if !ok {
		return nil, jsonrpc2.NewError(jsonrpc2.MethodNotFound, "method not found: "+r.Method)
	}
	return fn(ctx, d.handler, r.Params)
}

func (d *Dispatcher) dispatchInitialize(ctx context.Context, r *jsonrpc2.Request) (interface{}, error) {
	if !d.lifecycle.compareAndSwap(StateUninitialized, StateInitializing) {
		return nil, jsonrpc2.NewError(jsonrpc2.InvalidRequest, "already initialized")
	}

	var p protocol.InitializeParams
	if err := decodeParams(r.Params, &p); err != nil {
		d.lifecycle.store(StateUninitialized)
		return nil, err
	}
	result, err := d.handler.Initialize(ctx, &p)
	if err != nil {
		d.lifecycle.store(StateUninitialized)
		return nil, err
	}
	d.lifecycle.store(StateInitialized)
	return result, nil
}

func (d *Dispatcher) dispatchShutdown(ctx context.Context) (interface{}, error) {
	switch d.lifecycle.current() {
	case StateUninitialized, StateInitializing:
		return nil, jsonrpc2.NewError(jsonrpc2.ServerNotInitialized, "server not initialized")
	case StateShuttingDown, StateExited:
		return nil, jsonrpc2.NewError(jsonrpc2.InvalidRequest, "server is shutting down")
	}
	d.lifecycle.store(StateShuttingDown)
	return nil, d.handler.Shutdown(ctx)
}
