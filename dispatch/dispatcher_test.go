package dispatch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhenakh/lspgo/jsonrpc2"
	"github.com/akhenakh/lspgo/protocol"
)

// stubHandler overrides just enough of protocol.Handler to exercise
// lifecycle and cancellation behavior; every other method falls back to
// BaseHandler's MethodNotFound default.
type stubHandler struct {
	protocol.BaseHandler

	hoverDelay   chan struct{}
	hoverCalled  chan struct{}
	shutdownHook func()
}

func (h *stubHandler) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	if h.hoverCalled != nil {
		close(h.hoverCalled)
	}
	if h.hoverDelay != nil {
		select {
		case <-h.hoverDelay:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return &protocol.Hover{Contents: protocol.MarkupContent{Kind: protocol.Markdown, Value: "ok"}}, nil
}

func initRequest(id jsonrpc2.Id) *jsonrpc2.Request {
	return &jsonrpc2.Request{JSONRPC: jsonrpc2.Version, ID: id, Method: protocol.MethodInitialize, Params: []byte(`{}`)}
}

func hoverRequest(id jsonrpc2.Id) *jsonrpc2.Request {
	return &jsonrpc2.Request{JSONRPC: jsonrpc2.Version, ID: id, Method: protocol.MethodTextDocumentHover, Params: []byte(`{"textDocument":{"uri":"file:///a"},"position":{"line":0,"character":0}}`)}
}

func TestDispatcher_RequestBeforeInitializeRejected(t *testing.T) {
	d := New(&stubHandler{}, nil, nil)

	resp, err := d.Call(context.Background(), hoverRequest(jsonrpc2.NewNumberId(1)))
	require.NoError(t, err)
	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, jsonrpc2.ServerNotInitialized, resp.Error.Code)
}

func TestDispatcher_FullLifecycle(t *testing.T) {
	d := New(&stubHandler{}, nil, nil)
	ctx := context.Background()

	resp, err := d.Call(ctx, initRequest(jsonrpc2.NewNumberId(1)))
	require.NoError(t, err)
	require.Nil(t, resp.Error)
	assert.Equal(t, StateInitialized, d.State())

	resp, err = d.Call(ctx, hoverRequest(jsonrpc2.NewNumberId(2)))
	require.NoError(t, err)
	require.Nil(t, resp.Error)

	shutdownReq := &jsonrpc2.Request{JSONRPC: jsonrpc2.Version, ID: jsonrpc2.NewNumberId(3), Method: protocol.MethodShutdown}
	resp, err = d.Call(ctx, shutdownReq)
	require.NoError(t, err)
	require.Nil(t, resp.Error)
	assert.Equal(t, StateShuttingDown, d.State())

	exitNotif := &jsonrpc2.Notification{JSONRPC: jsonrpc2.Version, Method: protocol.MethodExit}
	resp, err = d.Call(ctx, exitNotif)
	require.NoError(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, StateExited, d.State())
}

func TestDispatcher_NotificationBeforeInitializeDropped(t *testing.T) {
	d := New(&stubHandler{}, nil, nil)

	didOpen := &jsonrpc2.Notification{JSONRPC: jsonrpc2.Version, Method: protocol.MethodTextDocumentDidOpen, Params: []byte(`{"textDocument":{"uri":"file:///a","languageId":"go","version":1,"text":""}}`)}
	resp, err := d.Call(context.Background(), didOpen)
	require.NoError(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, StateUninitialized, d.State())
}

func TestDispatcher_ShutdownBeforeInitializeRejected(t *testing.T) {
	d := New(&stubHandler{}, nil, nil)

	req := &jsonrpc2.Request{JSONRPC: jsonrpc2.Version, ID: jsonrpc2.NewNumberId(1), Method: protocol.MethodShutdown}
	resp, err := d.Call(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, jsonrpc2.ServerNotInitialized, resp.Error.Code)
}

func TestDispatcher_RequestAfterShutdownInvalid(t *testing.T) {
	d := New(&stubHandler{}, nil, nil)
	ctx := context.Background()

	_, err := d.Call(ctx, initRequest(jsonrpc2.NewNumberId(1)))
	require.NoError(t, err)
	_, err = d.Call(ctx, &jsonrpc2.Request{JSONRPC: jsonrpc2.Version, ID: jsonrpc2.NewNumberId(2), Method: protocol.MethodShutdown})
	require.NoError(t, err)

	resp, err := d.Call(ctx, hoverRequest(jsonrpc2.NewNumberId(3)))
	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, jsonrpc2.InvalidRequest, resp.Error.Code)
}

func TestDispatcher_ReinitializeRejected(t *testing.T) {
	d := New(&stubHandler{}, nil, nil)
	ctx := context.Background()

	_, err := d.Call(ctx, initRequest(jsonrpc2.NewNumberId(1)))
	require.NoError(t, err)

	resp, err := d.Call(ctx, initRequest(jsonrpc2.NewNumberId(2)))
	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, jsonrpc2.InvalidRequest, resp.Error.Code)
}

func TestDispatcher_UnknownMethodNotFound(t *testing.T) {
	d := New(&stubHandler{}, nil, nil)
	ctx := context.Background()
	_, err := d.Call(ctx, initRequest(jsonrpc2.NewNumberId(1)))
	require.NoError(t, err)

	req := &jsonrpc2.Request{JSONRPC: jsonrpc2.Version, ID: jsonrpc2.NewNumberId(2), Method: "nonexistent/method"}
	resp, err := d.Call(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, jsonrpc2.MethodNotFound, resp.Error.Code)
}

// A $/cancelRequest that arrives while a handler is still running must
// override whatever result it eventually produces with RequestCancelled.
func TestDispatcher_CancelOverridesLateSuccess(t *testing.T) {
	h := &stubHandler{hoverDelay: make(chan struct{}), hoverCalled: make(chan struct{})}
	d := New(h, nil, nil)
	ctx := context.Background()

	_, err := d.Call(ctx, initRequest(jsonrpc2.NewNumberId(1)))
	require.NoError(t, err)

	id := jsonrpc2.NewNumberId(2)
	respCh := make(chan *jsonrpc2.Response, 1)
	go func() {
		resp, _ := d.Call(ctx, hoverRequest(id))
		respCh <- resp
	}()

	<-h.hoverCalled // wait until the handler is in flight and registered inbound

	cancelParams := []byte(`{"id":2}`)
	_, err = d.Call(ctx, &jsonrpc2.Notification{JSONRPC: jsonrpc2.Version, Method: protocol.MethodCancelRequest, Params: cancelParams})
	require.NoError(t, err)

	close(h.hoverDelay) // let the handler finish and produce a (now irrelevant) success

	select {
	case resp := <-respCh:
		require.NotNil(t, resp.Error)
		assert.Equal(t, jsonrpc2.RequestCancelled, resp.Error.Code)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for cancelled response")
	}
}

// A cancel that lands after Prepare but before Run — the window a driver
// opens when it registers a request inline and executes it on another
// goroutine — must still produce RequestCancelled.
func TestDispatcher_CancelBetweenPrepareAndRun(t *testing.T) {
	d := New(&stubHandler{}, nil, nil)
	ctx := context.Background()

	_, err := d.Call(ctx, initRequest(jsonrpc2.NewNumberId(1)))
	require.NoError(t, err)

	inv := d.Prepare(ctx, hoverRequest(jsonrpc2.NewNumberId(2)))

	_, err = d.Call(ctx, &jsonrpc2.Notification{JSONRPC: jsonrpc2.Version, Method: protocol.MethodCancelRequest, Params: []byte(`{"id":2}`)})
	require.NoError(t, err)

	resp := inv.Run()
	require.NotNil(t, resp.Error)
	assert.Equal(t, jsonrpc2.RequestCancelled, resp.Error.Code)
}

func TestDispatcher_CancelUnknownIdIsNoop(t *testing.T) {
	d := New(&stubHandler{}, nil, nil)
	ctx := context.Background()
	_, err := d.Call(ctx, initRequest(jsonrpc2.NewNumberId(1)))
	require.NoError(t, err)

	// Cancelling an id with no in-flight request must not panic.
	_, err = d.Call(ctx, &jsonrpc2.Notification{JSONRPC: jsonrpc2.Version, Method: protocol.MethodCancelRequest, Params: []byte(`{"id":999}`)})
	assert.NoError(t, err)
}
