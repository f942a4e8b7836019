// Package server wires the jsonrpc2 codec, the dispatcher, and a
// lspclient.Client together into a runnable LSP connection: one server
// instance serves exactly one peer, matching the "no multi-client
// multiplexing" constraint.
package server

import (
	"context"
	"io"
	"net"
	"os"
	"runtime/debug"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/akhenakh/lspgo/dispatch"
	"github.com/akhenakh/lspgo/jsonrpc2"
	"github.com/akhenakh/lspgo/jsonrpc2/pending"
	"github.com/akhenakh/lspgo/lspclient"
	"github.com/akhenakh/lspgo/protocol"
)

// outboundCapacity bounds how many messages may sit in the merged outbound
// queue before a send blocks. A full queue simply suspends the producer
// until the write pump catches up.
const outboundCapacity = 64

// Server drives one connection: it reads frames, routes them through a
// Dispatcher, and writes back whatever the dispatcher or the Client
// produce, merging both onto a single outbound queue before encoding them
// through the codec. Build one with NewStdioServer or NewTCPServer, or
// NewServer directly for tests and alternate transports.
type Server struct {
	codec      *jsonrpc2.Codec
	dispatcher *dispatch.Dispatcher
	Client     *lspclient.Client
	logger     *zap.Logger

	outbound chan interface{}

	mu     sync.Mutex
	extras []<-chan interface{}
	frozen bool
}

// chanSender is the lspclient.Sender backing a Server's Client: sends land
// on the merged outbound channel instead of hitting the codec directly, so
// that server→client traffic and request responses interleave through one
// queue in enqueue order, as the driver design requires.
type chanSender struct{ ch chan<- interface{} }

func (s chanSender) Send(msg interface{}) error {
	s.ch <- msg
	return nil
}

// NewServer builds a Server directly over rw, using handler to answer
// inbound requests/notifications. logger defaults to zap.NewNop().
func NewServer(rw io.ReadWriter, handler protocol.Handler, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	codec := jsonrpc2.NewCodec(rw)
	outbound := make(chan interface{}, outboundCapacity)
	outboundPending := pending.New(logger)
	d := dispatch.New(handler, outboundPending, logger)
	client := lspclient.New(chanSender{ch: outbound}, outboundPending, logger)
	return &Server{
		codec:      codec,
		dispatcher: d,
		Client:     client,
		logger:     logger,
		outbound:   outbound,
	}
}

// stdioReadWriter adapts os.Stdin/os.Stdout to io.ReadWriter.
type stdioReadWriter struct {
	io.Reader
	io.Writer
}

// NewStdioServer builds a Server over the process's standard streams — the
// conventional transport for an editor-launched language server.
func NewStdioServer(handler protocol.Handler, logger *zap.Logger) *Server {
	return NewServer(stdioReadWriter{Reader: os.Stdin, Writer: os.Stdout}, handler, logger)
}

// NewTCPServer accepts exactly one connection on ln, builds a Server over
// it, and returns. The caller is responsible for closing ln; Server does
// not accept a second connection from it.
func NewTCPServer(ln net.Listener, handler protocol.Handler, logger *zap.Logger) (*Server, error) {
	conn, err := ln.Accept()
	if err != nil {
		return nil, err
	}
	return NewServer(conn, handler, logger), nil
}

// AddMessageStream registers an additional source of outbound messages to
// be merged into the encode pump alongside the dispatcher's responses and
// the Client's server→client traffic. It exists so tests and non-stdio
// transports can splice in their own plumbing; it must be called before
// Run and panics if called after. The caller must close ch (or cancel
// Run's ctx) for Run to return, since an open forwarded stream counts as
// a live producer of outbound messages.
func (s *Server) AddMessageStream(ch <-chan interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.frozen {
		panic("server: AddMessageStream called after Run")
	}
	s.extras = append(s.extras, ch)
}

// Run reads and dispatches messages until the peer disconnects or the
// lifecycle reaches Exited, then waits for in-flight handlers to finish and
// the outbound queue to drain before returning. ctx cancellation propagates
// into every handler invocation via the dispatcher; it does not itself stop
// the read loop — only EOF or the exit notification does, matching the
// scenario that a client disconnect after exit is a no-op.
func (s *Server) Run(ctx context.Context) error {
	s.mu.Lock()
	extras := s.extras
	s.frozen = true
	s.mu.Unlock()

	eg, egCtx := errgroup.WithContext(ctx)
	var reqWG sync.WaitGroup

	// producers tracks only the goroutines that enqueue onto s.outbound (the
	// read pump and any forwarded streams). Once all of them are done, it's
	// safe to close the channel so writePump can drain and return.
	var producers sync.WaitGroup
	producers.Add(1 + len(extras))

	eg.Go(func() error {
		defer producers.Done()
		defer reqWG.Wait()
		return s.readPump(egCtx, &reqWG)
	})

	for _, extra := range extras {
		extra := extra
		eg.Go(func() error {
			defer producers.Done()
			return s.forward(egCtx, extra)
		})
	}

	eg.Go(func() error { return s.writePump(egCtx) })

	go func() {
		producers.Wait()
		close(s.outbound)
	}()

	return eg.Wait()
}

// readPump decodes frames until EOF or lifecycle Exited, dispatching
// requests onto their own goroutine (tracked by reqWG) so concurrent
// requests of distinct ids never block one another, while notifications
// and responses are processed inline to preserve their receive order.
// Each request is Prepared inline, before the next frame is read: the
// inbound cancellation entry must exist by the time a $/cancelRequest
// decoded from a later frame is processed, regardless of when the request
// goroutine gets scheduled.
func (s *Server) readPump(ctx context.Context, reqWG *sync.WaitGroup) error {
	for {
		msg, err := s.codec.ReadMessage()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			s.logger.Warn("frame read error, resynchronized", zap.Error(err))
			continue
		}

		if req, ok := msg.(*jsonrpc2.Request); ok {
			inv := s.dispatcher.Prepare(ctx, req)
			reqWG.Add(1)
			go func() {
				defer reqWG.Done()
				s.handleRequest(req, inv)
			}()
		} else if _, err := s.dispatcher.Call(ctx, msg); err != nil {
			s.logger.Error("dispatch error", zap.Error(err))
		}

		if s.dispatcher.State() == dispatch.StateExited {
			return nil
		}
	}
}

// forward relays every message from extra onto the shared outbound queue
// until extra closes, merging an externally supplied stream into the
// encode pump.
func (s *Server) forward(ctx context.Context, extra <-chan interface{}) error {
	for {
		select {
		case msg, ok := <-extra:
			if !ok {
				return nil
			}
			s.outbound <- msg
		case <-ctx.Done():
			return nil
		}
	}
}

// writePump drains the merged outbound queue and encodes each message
// through the codec, in the order it was enqueued. It returns once the
// channel is closed and drained, which Run arranges only after every
// producer (the read pump, any forwarded stream) has finished.
func (s *Server) writePump(ctx context.Context) error {
	for msg := range s.outbound {
		if err := s.codec.WriteMessage(msg); err != nil {
			s.logger.Error("write message failed", zap.Error(err))
			return err
		}
	}
	return nil
}

func (s *Server) handleRequest(req *jsonrpc2.Request, inv *dispatch.Invocation) {
	s.outbound <- s.runRecovered(req, inv)
}

// runRecovered wraps Invocation.Run with panic recovery so a misbehaving
// handler turns into an InternalError response instead of taking the
// process down.
func (s *Server) runRecovered(req *jsonrpc2.Request, inv *dispatch.Invocation) (resp *jsonrpc2.Response) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("handler panic recovered",
				zap.Any("panic", r),
				zap.String("method", req.Method),
				zap.ByteString("stack", debug.Stack()))
			resp = jsonrpc2.NewErrorResponse(req.ID, jsonrpc2.NewError(jsonrpc2.InternalError, "internal error"))
		}
	}()
	return inv.Run()
}
