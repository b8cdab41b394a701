package gateway

import (
	"context"
	"sync"

	"github.com/dmitrymomot/gateway/core/event"
	"github.com/dmitrymomot/gateway/core/request"
	"github.com/dmitrymomot/gateway/core/ws"
	"github.com/dmitrymomot/gateway/pkg/async"
)

// Scheduler submits a fire-and-forget background task. The scheduler decides
// which context the task runs under.
type Scheduler func(fn func(ctx context.Context) error)

// Transport presents a socket-like interface over the raw receive and send
// endpoints so the rest of the adapter stays transport-agnostic. It owns the
// per-connection websocket connection object and backpressure Protocol, each
// created at most once.
type Transport struct {
	scope    event.Scope
	recv     event.Receiver
	send     event.Sender
	schedule Scheduler

	mu       sync.Mutex
	ws       *ws.Conn
	protocol *Protocol
}

var _ request.ConnInfo = (*Transport)(nil)

// TransportOption configures a Transport.
type TransportOption func(*Transport)

// WithScheduler sets the scheduler used for background tasks. Without one,
// tasks run on their own goroutine under the submitting context.
func WithScheduler(s Scheduler) TransportOption {
	return func(t *Transport) {
		if s != nil {
			t.schedule = s
		}
	}
}

// NewTransport wraps the raw gateway endpoints for one connection scope.
func NewTransport(scope event.Scope, recv event.Receiver, send event.Sender, opts ...TransportOption) *Transport {
	t := &Transport{scope: scope, recv: recv, send: send}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Send forwards one outbound event. Channel failures surface as
// TransportError.
func (t *Transport) Send(ctx context.Context, ev event.Event) error {
	if err := t.send(ctx, ev); err != nil {
		return &TransportError{Op: "send", Err: err}
	}
	return nil
}

// Receive returns the next inbound event. Channel failures surface as
// TransportError.
func (t *Transport) Receive(ctx context.Context) (event.Event, error) {
	ev, err := t.recv(ctx)
	if err != nil {
		return event.Event{}, &TransportError{Op: "receive", Err: err}
	}
	return ev, nil
}

// PeerAddr returns the peer address from the scope, or nil.
func (t *Transport) PeerAddr() *event.Addr {
	return t.scope.Server
}

// Secure reports whether the scope scheme is a TLS-backed variant.
func (t *Transport) Secure() bool {
	return t.scope.Scheme == "https" || t.scope.Scheme == "wss"
}

// CreateWebSocketConn constructs the one websocket connection object for
// this connection. A second call is invalid usage.
func (t *Transport) CreateWebSocketConn(send event.Sender, recv event.Receiver) (*ws.Conn, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.ws != nil {
		return nil, ErrInvalidUsage
	}
	t.ws = ws.NewConn(send, recv)
	return t.ws, nil
}

// WebSocketConn returns the connection object created earlier. Calling it
// before CreateWebSocketConn is invalid usage.
func (t *Transport) WebSocketConn() (*ws.Conn, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.ws == nil {
		return nil, ErrInvalidUsage
	}
	return t.ws, nil
}

// AddTask submits a fire-and-forget background task, used for streaming-body
// ingestion running concurrently with the handler.
func (t *Transport) AddTask(ctx context.Context, fn func(ctx context.Context) error) {
	if t.schedule != nil {
		t.schedule(fn)
		return
	}
	async.Exec(ctx, fn)
}

// Protocol lazily constructs the one backpressure gate and completion marker
// pair for this connection.
func (t *Transport) Protocol() *Protocol {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.protocol == nil {
		t.protocol = newProtocol(t)
	}
	return t.protocol
}
