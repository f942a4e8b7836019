package dispatch

import "go.uber.org/atomic"

// State is the LSP lifecycle state machine: Uninitialized → Initializing →
// Initialized → ShuttingDown → Exited. Transitions are enforced by the
// Dispatcher, never by callers directly.
type State int32

const (
	StateUninitialized State = iota
	StateInitializing
	StateInitialized
	StateShuttingDown
	StateExited
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateInitialized:
		return "initialized"
	case StateShuttingDown:
		return "shutting_down"
	case StateExited:
		return "exited"
	default:
		return "unknown"
	}
}

type lifecycle struct {
	state *atomic.Int32
}

func newLifecycle() *lifecycle {
	return &lifecycle{state: atomic.NewInt32(int32(StateUninitialized))}
}

func (l *lifecycle) current() State {
	return State(l.state.Load())
}

func (l *lifecycle) compareAndSwap(from, to State) bool {
	return l.state.CompareAndSwap(int32(from), int32(to))
}

func (l *lifecycle) store(to State) {
	l.state.Store(int32(to))
}
