package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/dmitrymomot/gateway/core/event"
	"github.com/dmitrymomot/gateway/core/handler"
	"github.com/dmitrymomot/gateway/core/logger"
	"github.com/dmitrymomot/gateway/core/request"
	"github.com/dmitrymomot/gateway/core/response"
	"github.com/dmitrymomot/gateway/core/ws"
)

// Conn orchestrates one gateway connection: it builds the framework request
// from the scope, ingests the body, dispatches to the application, and
// serializes the response back into gateway events. Lifespan scopes bypass
// the request lifecycle entirely and run the Lifespan coordinator instead.
type Conn struct {
	app       handler.Application
	scope     event.Scope
	recv      event.Receiver
	send      event.Sender
	transport *Transport
	lifespan  *Lifespan
	request   *request.Request
	ws        *ws.Conn
	doStream  bool
	streamCap int
	logger    *slog.Logger
	id        uuid.UUID
}

// Option configures a Conn.
type Option func(*Conn)

// WithLogger sets the structured logger for the connection.
func WithLogger(log *slog.Logger) Option {
	return func(c *Conn) {
		if log != nil {
			c.logger = log
		}
	}
}

// WithStreamCapacity sets the chunk buffer capacity used when a request
// stream is attached.
func WithStreamCapacity(n int) Option {
	return func(c *Conn) {
		if n > 0 {
			c.streamCap = n
		}
	}
}

// NewConn builds the adapter for one connection scope.
//
// For http scopes the request reflects the scope's method and version; for
// websocket scopes the method is fixed to GET and the version to "1.1", and
// the websocket connection object is created and accepted before the request
// exists. Scope types the adapter does not speak fail with
// ErrUnsupportedScope. Lifespan scopes build no request; Handle runs the
// lifecycle sub-protocol for them.
func NewConn(ctx context.Context, app handler.Application, scope event.Scope, recv event.Receiver, send event.Sender, opts ...Option) (*Conn, error) {
	c := &Conn{
		app:       app,
		scope:     scope,
		recv:      recv,
		send:      send,
		streamCap: request.DefaultStreamCapacity,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		id:        uuid.New(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.transport = NewTransport(scope, recv, send, WithScheduler(app.Schedule))
	c.lifespan = NewLifespan(app, c.logger)

	if scope.Type == event.ScopeLifespan {
		return c, nil
	}

	headers, err := request.DecodeHeaders(scope.Headers)
	if err != nil {
		return nil, err
	}
	c.doStream = headers.Get("expect") == "100-continue"

	var version, method string
	switch scope.Type {
	case event.ScopeHTTP:
		version = scope.HTTPVersion
		method = scope.Method
	case event.ScopeWebSocket:
		version = "1.1"
		method = http.MethodGet

		conn, err := c.transport.CreateWebSocketConn(send, recv)
		if err != nil {
			return nil, err
		}
		if err := conn.Accept(ctx); err != nil {
			return nil, err
		}
		c.ws = conn
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScope, scope.Type)
	}

	c.request = request.New(buildRawURL(scope), headers, version, method, c.transport, app)
	if app.StreamRequestBody() {
		c.request.Stream = request.NewStream(c.streamCap)
	}

	c.logger.Debug("connection established",
		logger.Component("gateway"),
		logger.ConnID(c.id.String()),
		logger.Scope(scope.Type),
	)

	return c, nil
}

// Serve builds the adapter and handles the connection in one call.
func Serve(ctx context.Context, app handler.Application, scope event.Scope, recv event.Receiver, send event.Sender, opts ...Option) error {
	c, err := NewConn(ctx, app, scope, recv, send, opts...)
	if err != nil {
		return err
	}
	return c.Handle(ctx)
}

// Request returns the framework request, or nil for lifespan scopes.
func (c *Conn) Request() *request.Request { return c.request }

// Transport returns the connection's transport shim.
func (c *Conn) Transport() *Transport { return c.transport }

// WebSocket returns the websocket connection object, or nil for non-websocket
// scopes.
func (c *Conn) WebSocket() *ws.Conn { return c.ws }

// Lifespan returns the lifecycle coordinator.
func (c *Conn) Lifespan() *Lifespan { return c.lifespan }

// Handle runs the connection to completion. For lifespan scopes it drives
// the lifecycle sub-protocol; otherwise it ingests the request body and
// dispatches to the application. Websocket connections get no response
// callback, since the connection object manages its own framing events.
func (c *Conn) Handle(ctx context.Context) error {
	if c.scope.Type == event.ScopeLifespan {
		return c.lifespan.Run(ctx, c.recv, c.send)
	}

	// Websocket connections read frames through the connection object, so
	// there is no body to ingest and no response callback to serialize.
	if c.ws != nil {
		return c.app.HandleRequest(ctx, c.request, nil, nil)
	}

	// A client may announce Expect: 100-continue against an application
	// that does not ingest streams; without an attached stream the body is
	// buffered like any other.
	if c.doStream && c.request.Stream != nil {
		c.transport.AddTask(ctx, c.streamBody)
	} else {
		body, err := c.readBody(ctx)
		if err != nil {
			return err
		}
		c.request.Body = body
	}

	return c.app.HandleRequest(ctx, c.request, nil, c.responseCallback)
}

// readBody drains all body events into one buffer before dispatch.
// A disconnect event ends the body with whatever arrived so far.
func (c *Conn) readBody(ctx context.Context) ([]byte, error) {
	var body []byte
	for {
		ev, err := c.transport.Receive(ctx)
		if err != nil {
			return nil, err
		}
		if ev.Type == event.TypeDisconnect {
			break
		}
		body = append(body, ev.Body...)
		if !ev.MoreBody {
			break
		}
	}
	return body, nil
}

// streamBody pumps body events into the request stream while the handler
// runs, then marks the stream complete. Transport failures abort the stream
// so a reading handler unblocks.
func (c *Conn) streamBody(ctx context.Context) error {
	stream := c.request.Stream
	for {
		ev, err := c.transport.Receive(ctx)
		if err != nil {
			stream.Abort(err)
			return err
		}
		if ev.Type == event.TypeDisconnect {
			break
		}
		if err := stream.Put(ctx, ev.Body); err != nil {
			stream.Abort(err)
			return err
		}
		if !ev.MoreBody {
			break
		}
	}
	stream.End()
	return nil
}

// responseCallback serializes the handler's response: one response start
// event, then either the buffered body in a single final event or the
// streamed body chunk by chunk through the backpressure Protocol.
func (c *Conn) responseCallback(ctx context.Context, resp response.Response) error {
	wire, resp, err := c.encodeHeaders(resp)
	if err != nil {
		return err
	}

	streaming, isStreaming := resp.(response.Streaming)

	if !resp.Header().Has("content-length") && !isStreaming {
		var length int
		if buffered, ok := resp.(response.Buffered); ok {
			length = len(buffered.Body())
		}
		wire = append(wire, event.Header{
			[]byte("content-length"),
			[]byte(strconv.Itoa(length)),
		})
	}

	for _, cookie := range resp.Cookies() {
		wire = append(wire, event.Header{
			[]byte("set-cookie"),
			[]byte(cookie.String()),
		})
	}

	if err := c.transport.Send(ctx, event.Event{
		Type:    event.TypeResponseStart,
		Status:  resp.Status(),
		Headers: wire,
	}); err != nil {
		return err
	}

	if isStreaming {
		proto := c.transport.Protocol()
		streaming.SetWriter(proto)
		if err := streaming.Stream(ctx); err != nil {
			return err
		}
		return proto.Complete(ctx)
	}

	var body []byte
	if buffered, ok := resp.(response.Buffered); ok {
		body = buffered.Body()
	}
	return c.transport.Send(ctx, event.Event{
		Type:     event.TypeResponseBody,
		Body:     body,
		MoreBody: false,
	})
}

// encodeHeaders renders the response headers as Latin-1 wire pairs. A value
// that is not a valid response is replaced by the application's error
// response, with any Set-Cookie headers stripped from the replacement so no
// partial cookie state leaks from the failed attempt.
func (c *Conn) encodeHeaders(resp response.Response) ([]event.Header, response.Response, error) {
	if valid(resp) {
		wire, err := resp.Header().Encode()
		if err != nil {
			return nil, resp, err
		}
		return wire, resp, nil
	}

	c.logger.Error("invalid response object",
		logger.Component("gateway"),
		logger.ConnID(c.id.String()),
		logger.URL(string(c.request.RawURL)),
		slog.String("actual_type", fmt.Sprintf("%T", resp)),
	)

	sub := c.app.ErrorResponse(c.request, ErrInvalidResponseType)
	wire, err := sub.Header().Encode()
	if err != nil {
		return nil, sub, err
	}

	filtered := wire[:0]
	for _, pair := range wire {
		if bytes.EqualFold(pair[0], []byte("set-cookie")) {
			continue
		}
		filtered = append(filtered, pair)
	}
	return filtered, sub, nil
}

// valid reports whether resp satisfies the full response contract: the base
// interface plus exactly one of the body capabilities.
func valid(resp response.Response) bool {
	if resp == nil {
		return false
	}
	if _, ok := resp.(response.Buffered); ok {
		return true
	}
	if _, ok := resp.(response.Streaming); ok {
		return true
	}
	return false
}

// buildRawURL assembles the canonical URL bytes: root path plus the
// percent-encoded path, then "?" and the raw query string, which clients
// have already encoded.
func buildRawURL(scope event.Scope) []byte {
	encoded := (&url.URL{Path: scope.Path}).EscapedPath()

	raw := make([]byte, 0, len(scope.RootPath)+len(encoded)+1+len(scope.QueryString))
	raw = append(raw, scope.RootPath...)
	raw = append(raw, encoded...)
	raw = append(raw, '?')
	raw = append(raw, scope.QueryString...)
	return raw
}
