package event

import "context"

// Inbound event types delivered by the gateway host.
const (
	TypeLifespanStartup  = "lifespan.startup"
	TypeLifespanShutdown = "lifespan.shutdown"
	TypeRequestBody      = "http.request"
	TypeDisconnect       = "http.disconnect"
	TypeWSConnect        = "websocket.connect"
	TypeWSReceive        = "websocket.receive"
	TypeWSDisconnect     = "websocket.disconnect"
)

// Outbound event types emitted by the adapter.
const (
	TypeLifespanStartupComplete  = "lifespan.startup.complete"
	TypeLifespanShutdownComplete = "lifespan.shutdown.complete"
	TypeResponseStart            = "http.response.start"
	TypeResponseBody             = "http.response.body"
	TypeWSAccept                 = "websocket.accept"
	TypeWSSend                   = "websocket.send"
	TypeWSClose                  = "websocket.close"
)

// Header is one raw header pair exactly as it appears on the wire.
type Header [2][]byte

// Event is a single discriminated message exchanged over the gateway channel.
// Type selects which of the remaining fields are meaningful; the rest stay at
// their zero value.
type Event struct {
	Type string

	// http.response.start
	Status  int
	Headers []Header

	// http.request / http.response.body
	Body     []byte
	MoreBody bool

	// websocket.receive / websocket.send carry exactly one of Text or Data.
	Text string
	Data []byte

	// websocket.accept
	Subprotocol string

	// websocket.close / websocket.disconnect
	Code int
}

// Receiver pulls the next inbound event. It blocks until an event arrives,
// the context is canceled, or the channel fails.
type Receiver func(ctx context.Context) (Event, error)

// Sender pushes one outbound event. It blocks until the event is accepted,
// the context is canceled, or the channel fails.
type Sender func(ctx context.Context, ev Event) error
