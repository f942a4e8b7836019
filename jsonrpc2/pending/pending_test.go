package pending

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhenakh/lspgo/jsonrpc2"
)

func TestRegistry_RegisterComplete(t *testing.T) {
	r := New(nil)
	id := jsonrpc2.NewNumberId(1)
	waiter := r.Register(id)
	assert.Equal(t, 1, r.Len())

	r.Complete(&jsonrpc2.Response{JSONRPC: jsonrpc2.Version, ID: id, Result: []byte("42")})

	resp := <-waiter
	require.NotNil(t, resp)
	assert.JSONEq(t, "42", string(resp.Result))
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_CompleteUnknownIdDropped(t *testing.T) {
	r := New(nil)
	// No waiter registered for this id; Complete must not panic or block.
	r.Complete(&jsonrpc2.Response{JSONRPC: jsonrpc2.Version, ID: jsonrpc2.NewNumberId(99), Result: []byte("1")})
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_Cancel(t *testing.T) {
	r := New(nil)
	id := jsonrpc2.NewStringId("abc")
	waiter := r.Register(id)

	found := r.Cancel(id)
	assert.True(t, found)
	assert.Equal(t, 0, r.Len())

	resp := <-waiter
	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, jsonrpc2.RequestCancelled, resp.Error.Code)
}

func TestRegistry_CancelUnknownId(t *testing.T) {
	r := New(nil)
	found := r.Cancel(jsonrpc2.NewNumberId(1))
	assert.False(t, found)
}

func TestRegistry_CompleteAfterCancelIsDropped(t *testing.T) {
	r := New(nil)
	id := jsonrpc2.NewNumberId(5)
	waiter := r.Register(id)

	require.True(t, r.Cancel(id))
	<-waiter // drain the cancellation delivery

	// A late Complete for the same id now finds nothing registered.
	r.Complete(&jsonrpc2.Response{JSONRPC: jsonrpc2.Version, ID: id, Result: []byte("1")})
	assert.Equal(t, 0, r.Len())
}
