package server

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhenakh/lspgo/jsonrpc2"
	"github.com/akhenakh/lspgo/protocol"
)

// testHandler answers Hover so the integration test has something besides
// lifecycle methods to exercise end to end.
type testHandler struct {
	protocol.BaseHandler
}

func (testHandler) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	return &protocol.Hover{Contents: protocol.MarkupContent{Kind: protocol.Markdown, Value: "hovered"}}, nil
}

// duplex glues an independent read side and write side into one
// io.ReadWriter, the shape both Server and the test's own client-side codec
// need over a pair of io.Pipes.
type duplex struct {
	r io.Reader
	w io.Writer
}

func (d duplex) Read(p []byte) (int, error)  { return d.r.Read(p) }
func (d duplex) Write(p []byte) (int, error) { return d.w.Write(p) }

func TestServer_FullSessionLifecycle(t *testing.T) {
	clientToServerR, clientToServerW := io.Pipe()
	serverToClientR, serverToClientW := io.Pipe()

	srvConn := duplex{r: clientToServerR, w: serverToClientW}
	clientCodec := jsonrpc2.NewCodec(duplex{r: serverToClientR, w: clientToServerW})

	srv := NewServer(srvConn, testHandler{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runErr := make(chan error, 1)
	go func() { runErr <- srv.Run(ctx) }()

	require.NoError(t, clientCodec.WriteMessage(&jsonrpc2.Request{
		JSONRPC: jsonrpc2.Version, ID: jsonrpc2.NewNumberId(1), Method: protocol.MethodInitialize, Params: []byte(`{}`),
	}))
	msg, err := clientCodec.ReadMessage()
	require.NoError(t, err)
	resp, ok := msg.(*jsonrpc2.Response)
	require.True(t, ok)
	require.Nil(t, resp.Error)

	require.NoError(t, clientCodec.WriteMessage(&jsonrpc2.Notification{
		JSONRPC: jsonrpc2.Version, Method: protocol.MethodInitialized, Params: []byte(`{}`),
	}))

	require.NoError(t, clientCodec.WriteMessage(&jsonrpc2.Request{
		JSONRPC: jsonrpc2.Version, ID: jsonrpc2.NewNumberId(2), Method: protocol.MethodTextDocumentHover,
		Params: []byte(`{"textDocument":{"uri":"file:///a"},"position":{"line":0,"character":0}}`),
	}))
	msg, err = clientCodec.ReadMessage()
	require.NoError(t, err)
	resp, ok = msg.(*jsonrpc2.Response)
	require.True(t, ok)
	require.Nil(t, resp.Error)
	assert.Contains(t, string(resp.Result), "hovered")

	require.NoError(t, clientCodec.WriteMessage(&jsonrpc2.Request{
		JSONRPC: jsonrpc2.Version, ID: jsonrpc2.NewNumberId(3), Method: protocol.MethodShutdown,
	}))
	msg, err = clientCodec.ReadMessage()
	require.NoError(t, err)
	resp, ok = msg.(*jsonrpc2.Response)
	require.True(t, ok)
	require.Nil(t, resp.Error)

	require.NoError(t, clientCodec.WriteMessage(&jsonrpc2.Notification{
		JSONRPC: jsonrpc2.Version, Method: protocol.MethodExit,
	}))

	select {
	case err := <-runErr:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not return after exit notification")
	}
}

// blockingHandler parks Hover on ctx until cancellation reaches it,
// standing in for a long-running analysis.
type blockingHandler struct {
	protocol.BaseHandler
}

func (blockingHandler) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	<-ctx.Done()
	return &protocol.Hover{Contents: protocol.MarkupContent{Kind: protocol.Markdown, Value: "late"}}, nil
}

// A request frame immediately followed by its $/cancelRequest frame must
// yield a RequestCancelled response, however the request's goroutine is
// scheduled: the entry is registered on the read loop before the cancel
// notification is ever decoded.
func TestServer_CancelRequestOverridesInFlightHandler(t *testing.T) {
	clientToServerR, clientToServerW := io.Pipe()
	serverToClientR, serverToClientW := io.Pipe()

	srvConn := duplex{r: clientToServerR, w: serverToClientW}
	clientCodec := jsonrpc2.NewCodec(duplex{r: serverToClientR, w: clientToServerW})

	srv := NewServer(srvConn, blockingHandler{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runErr := make(chan error, 1)
	go func() { runErr <- srv.Run(ctx) }()

	require.NoError(t, clientCodec.WriteMessage(&jsonrpc2.Request{
		JSONRPC: jsonrpc2.Version, ID: jsonrpc2.NewNumberId(1), Method: protocol.MethodInitialize, Params: []byte(`{}`),
	}))
	msg, err := clientCodec.ReadMessage()
	require.NoError(t, err)
	resp, ok := msg.(*jsonrpc2.Response)
	require.True(t, ok)
	require.Nil(t, resp.Error)

	require.NoError(t, clientCodec.WriteMessage(&jsonrpc2.Request{
		JSONRPC: jsonrpc2.Version, ID: jsonrpc2.NewNumberId(7), Method: protocol.MethodTextDocumentHover,
		Params: []byte(`{"textDocument":{"uri":"file:///a"},"position":{"line":0,"character":0}}`),
	}))
	require.NoError(t, clientCodec.WriteMessage(&jsonrpc2.Notification{
		JSONRPC: jsonrpc2.Version, Method: protocol.MethodCancelRequest, Params: []byte(`{"id":7}`),
	}))

	msg, err = clientCodec.ReadMessage()
	require.NoError(t, err)
	resp, ok = msg.(*jsonrpc2.Response)
	require.True(t, ok)
	assert.Equal(t, jsonrpc2.NewNumberId(7), resp.ID)
	require.NotNil(t, resp.Error)
	assert.Equal(t, jsonrpc2.RequestCancelled, resp.Error.Code)

	require.NoError(t, clientCodec.WriteMessage(&jsonrpc2.Notification{JSONRPC: jsonrpc2.Version, Method: protocol.MethodExit}))
	select {
	case err := <-runErr:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not return after exit notification")
	}
}

func TestServer_RequestBeforeInitializeGetsServerNotInitialized(t *testing.T) {
	clientToServerR, clientToServerW := io.Pipe()
	serverToClientR, serverToClientW := io.Pipe()

	srvConn := duplex{r: clientToServerR, w: serverToClientW}
	clientCodec := jsonrpc2.NewCodec(duplex{r: serverToClientR, w: clientToServerW})

	srv := NewServer(srvConn, testHandler{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = srv.Run(ctx) }()

	require.NoError(t, clientCodec.WriteMessage(&jsonrpc2.Request{
		JSONRPC: jsonrpc2.Version, ID: jsonrpc2.NewNumberId(1), Method: protocol.MethodTextDocumentHover,
		Params: []byte(`{"textDocument":{"uri":"file:///a"},"position":{"line":0,"character":0}}`),
	}))
	msg, err := clientCodec.ReadMessage()
	require.NoError(t, err)
	resp, ok := msg.(*jsonrpc2.Response)
	require.True(t, ok)
	require.NotNil(t, resp.Error)
	assert.Equal(t, jsonrpc2.ServerNotInitialized, resp.Error.Code)

	require.NoError(t, clientCodec.WriteMessage(&jsonrpc2.Notification{JSONRPC: jsonrpc2.Version, Method: protocol.MethodExit}))
}

func TestServer_AddMessageStreamForwardsToClient(t *testing.T) {
	clientToServerR, clientToServerW := io.Pipe()
	serverToClientR, serverToClientW := io.Pipe()

	srvConn := duplex{r: clientToServerR, w: serverToClientW}
	clientCodec := jsonrpc2.NewCodec(duplex{r: serverToClientR, w: clientToServerW})

	srv := NewServer(srvConn, testHandler{}, nil)
	extra := make(chan interface{}, 1)
	srv.AddMessageStream(extra)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = srv.Run(ctx) }()

	extra <- &jsonrpc2.Notification{JSONRPC: jsonrpc2.Version, Method: "window/logMessage", Params: []byte(`{"type":3,"message":"hi"}`)}

	msg, err := clientCodec.ReadMessage()
	require.NoError(t, err)
	notif, ok := msg.(*jsonrpc2.Notification)
	require.True(t, ok)
	assert.Equal(t, "window/logMessage", notif.Method)

	close(extra)
	require.NoError(t, clientCodec.WriteMessage(&jsonrpc2.Notification{JSONRPC: jsonrpc2.Version, Method: protocol.MethodExit}))
}

func TestServer_AddMessageStreamAfterRunPanics(t *testing.T) {
	clientToServerR, _ := io.Pipe()
	_, serverToClientW := io.Pipe()
	srv := NewServer(duplex{r: clientToServerR, w: serverToClientW}, testHandler{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		srv.mu.Lock()
		defer srv.mu.Unlock()
		return srv.frozen
	}, time.Second, time.Millisecond)

	assert.Panics(t, func() { srv.AddMessageStream(make(chan interface{})) })
}
