package lspclient

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhenakh/lspgo/jsonrpc2"
	"github.com/akhenakh/lspgo/jsonrpc2/pending"
)

// recordingSender captures every message handed to Send without touching
// the wire, so tests can inspect what the client actually emitted.
type recordingSender struct {
	mu  sync.Mutex
	out []interface{}
}

func (s *recordingSender) Send(msg interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out = append(s.out, msg)
	return nil
}

func (s *recordingSender) last() interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.out) == 0 {
		return nil
	}
	return s.out[len(s.out)-1]
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.out)
}

func TestClient_NotifySendsFireAndForget(t *testing.T) {
	sender := &recordingSender{}
	c := New(sender, pending.New(nil), nil)

	require.NoError(t, c.Notify("window/logMessage", map[string]string{"message": "hi"}))
	require.Equal(t, 1, sender.count())
	notif, ok := sender.last().(*jsonrpc2.Notification)
	require.True(t, ok)
	assert.Equal(t, "window/logMessage", notif.Method)
}

func TestClient_CallIdsAreUniqueAndMonotonic(t *testing.T) {
	sender := &recordingSender{}
	reg := pending.New(nil)
	c := New(sender, reg, nil)

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Call(context.Background(), "workspace/applyEdit", nil, nil)
		}()
	}

	// Once all three requests are visible, resolve each one so every Call
	// returns without relying on ctx cancellation (which would itself emit a
	// $/cancelRequest and pollute the message count being asserted below).
	require.Eventually(t, func() bool { return sender.count() == 3 }, time.Second, time.Millisecond)
	sender.mu.Lock()
	reqs := make([]*jsonrpc2.Request, len(sender.out))
	for i, msg := range sender.out {
		reqs[i] = msg.(*jsonrpc2.Request)
	}
	sender.mu.Unlock()
	for _, req := range reqs {
		reg.Complete(&jsonrpc2.Response{JSONRPC: jsonrpc2.Version, ID: req.ID, Result: []byte("null")})
	}
	wg.Wait()

	seen := map[int64]bool{}
	for _, req := range reqs {
		assert.Equal(t, jsonrpc2.IdKindNumber, req.ID.Kind)
		assert.False(t, seen[req.ID.Number], "duplicate id %d", req.ID.Number)
		seen[req.ID.Number] = true
	}
	// The counter starts at 0 and advances by one per Call, so three calls
	// use exactly 0, 1 and 2 whatever order the goroutines ran in.
	assert.Equal(t, map[int64]bool{0: true, 1: true, 2: true}, seen)
}

func TestClient_CallResolvesOnResponse(t *testing.T) {
	sender := &recordingSender{}
	reg := pending.New(nil)
	c := New(sender, reg, nil)

	done := make(chan error, 1)
	go func() {
		var out int
		done <- c.Call(context.Background(), "workspace/configuration", nil, &out)
	}()

	// Wait for the request to land, then resolve it through the shared
	// pending registry the way the driver's read pump would on a reply.
	require.Eventually(t, func() bool { return sender.count() == 1 }, time.Second, time.Millisecond)
	req := sender.last().(*jsonrpc2.Request)
	reg.Complete(&jsonrpc2.Response{JSONRPC: jsonrpc2.Version, ID: req.ID, Result: []byte("7")})

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Call did not return after its response arrived")
	}
}

// Cancelling the caller's context while a Call is outstanding must drop
// the local waiter and emit exactly one $/cancelRequest.
func TestClient_CtxCancelSendsExactlyOneCancelNotification(t *testing.T) {
	sender := &recordingSender{}
	reg := pending.New(nil)
	c := New(sender, reg, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- c.Call(ctx, "workspace/applyEdit", nil, nil)
	}()

	require.Eventually(t, func() bool { return sender.count() == 1 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Call did not return after ctx cancellation")
	}

	require.Eventually(t, func() bool { return sender.count() == 2 }, time.Second, time.Millisecond)
	cancelNotif, ok := sender.last().(*jsonrpc2.Notification)
	require.True(t, ok)
	assert.Equal(t, "$/cancelRequest", cancelNotif.Method)
	assert.Equal(t, 0, reg.Len())
}
