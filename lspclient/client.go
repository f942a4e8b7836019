// Package lspclient implements the server→client half of the connection:
// issuing requests and notifications toward the peer, correlating
// responses, and propagating local cancellation as $/cancelRequest.
package lspclient

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/akhenakh/lspgo/jsonrpc2"
	"github.com/akhenakh/lspgo/jsonrpc2/pending"
	"github.com/akhenakh/lspgo/protocol"
)

// Sender hands one message off toward the peer. The driver in package
// server supplies the concrete implementation, which enqueues onto its
// merged outbound queue for the write pump to encode; tests can supply a
// recording stub.
type Sender interface {
	Send(msg interface{}) error
}

// Client is the handle a protocol.Handler implementation uses to talk back
// to its peer: logging/showing messages, publishing diagnostics,
// registering capabilities, and any other server-initiated call. One
// Client is bound to exactly one connection.
type Client struct {
	sender Sender
	logger *zap.Logger

	pending *pending.Registry
	nextID  *atomic.Int64
}

// New builds a Client that writes through sender and correlates replies
// through pending. logger defaults to zap.NewNop() when nil.
func New(sender Sender, pending *pending.Registry, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		sender:  sender,
		logger:  logger,
		pending: pending,
		nextID:  atomic.NewInt64(-1),
	}
}

// Notify sends a fire-and-forget notification toward the peer.
func (c *Client) Notify(method string, params interface{}) error {
	raw, err := marshalParams(params)
	if err != nil {
		return err
	}
	return c.sender.Send(&jsonrpc2.Notification{JSONRPC: jsonrpc2.Version, Method: method, Params: raw})
}

// Call sends a request toward the peer and blocks for its response,
// unmarshalling the result into out (which may be nil if the caller does
// not care about the result shape). If ctx is cancelled while waiting, the
// pending entry is cancelled locally and a $/cancelRequest notification is
// sent to the peer; Call then returns ctx.Err().
func (c *Client) Call(ctx context.Context, method string, params interface{}, out interface{}) error {
	raw, err := marshalParams(params)
	if err != nil {
		return err
	}

	id := jsonrpc2.NewNumberId(c.nextID.Add(1))
	waiter := c.pending.Register(id)

	if err := c.sender.Send(&jsonrpc2.Request{JSONRPC: jsonrpc2.Version, ID: id, Method: method, Params: raw}); err != nil {
		c.pending.Cancel(id)
		return err
	}

	select {
	case resp := <-waiter:
		if resp.Error != nil {
			return resp.Error
		}
		if out == nil || len(resp.Result) == 0 {
			return nil
		}
		return json.Unmarshal(resp.Result, out)
	case <-ctx.Done():
		c.pending.Cancel(id)
		if err := c.Notify(protocol.MethodCancelRequest, &protocol.CancelParams{ID: id}); err != nil {
			c.logger.Debug("failed to send cancel notification", zap.Error(err))
		}
		return ctx.Err()
	}
}

func marshalParams(params interface{}) (json.RawMessage, error) {
	if params == nil {
		return nil, nil
	}
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("lspclient: marshal params: %w", err)
	}
	return raw, nil
}
