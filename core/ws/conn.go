package ws

import (
	"context"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/dmitrymomot/gateway/core/event"
)

// ErrConnClosed is returned by Recv when the peer disconnected.
var ErrConnClosed = errors.New("ws: connection closed")

// Message is one WebSocket message. Type is a gorilla/websocket message type,
// either websocket.TextMessage or websocket.BinaryMessage.
type Message struct {
	Type int
	Data []byte
}

// Conn is a WebSocket connection speaking gateway events. Exactly one Conn
// exists per websocket-scoped connection; the gateway transport creates it
// and the adapter accepts it before the handler runs.
type Conn struct {
	send event.Sender
	recv event.Receiver
}

// NewConn wraps the raw gateway endpoints into a connection object.
func NewConn(send event.Sender, recv event.Receiver) *Conn {
	return &Conn{send: send, recv: recv}
}

// Accept completes the WebSocket handshake by emitting websocket.accept.
func (c *Conn) Accept(ctx context.Context) error {
	return c.send(ctx, event.Event{Type: event.TypeWSAccept})
}

// AcceptSubprotocol completes the handshake selecting a subprotocol.
func (c *Conn) AcceptSubprotocol(ctx context.Context, subprotocol string) error {
	return c.send(ctx, event.Event{Type: event.TypeWSAccept, Subprotocol: subprotocol})
}

// Recv returns the next message from the peer. A peer disconnect surfaces as
// ErrConnClosed.
func (c *Conn) Recv(ctx context.Context) (Message, error) {
	for {
		ev, err := c.recv(ctx)
		if err != nil {
			return Message{}, err
		}

		switch ev.Type {
		case event.TypeWSReceive:
			if ev.Data != nil {
				return Message{Type: websocket.BinaryMessage, Data: ev.Data}, nil
			}
			return Message{Type: websocket.TextMessage, Data: []byte(ev.Text)}, nil
		case event.TypeWSDisconnect:
			return Message{}, ErrConnClosed
		case event.TypeWSConnect:
			// Delivered before the handshake; nothing to surface.
			continue
		default:
			return Message{}, fmt.Errorf("ws: unexpected event %q", ev.Type)
		}
	}
}

// Send delivers one message to the peer.
func (c *Conn) Send(ctx context.Context, msg Message) error {
	ev := event.Event{Type: event.TypeWSSend}
	if msg.Type == websocket.BinaryMessage {
		ev.Data = msg.Data
	} else {
		ev.Text = string(msg.Data)
	}
	return c.send(ctx, ev)
}

// SendText delivers a text message.
func (c *Conn) SendText(ctx context.Context, text string) error {
	return c.Send(ctx, Message{Type: websocket.TextMessage, Data: []byte(text)})
}

// SendBinary delivers a binary message.
func (c *Conn) SendBinary(ctx context.Context, data []byte) error {
	return c.Send(ctx, Message{Type: websocket.BinaryMessage, Data: data})
}

// Close terminates the connection with the given close code. Zero means
// normal closure.
func (c *Conn) Close(ctx context.Context, code int) error {
	if code == 0 {
		code = websocket.CloseNormalClosure
	}
	return c.send(ctx, event.Event{Type: event.TypeWSClose, Code: code})
}
