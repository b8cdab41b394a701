package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidUsage indicates the websocket connection object was accessed
	// before creation or created twice. Programming error, fatal to the
	// connection.
	ErrInvalidUsage = errors.New("gateway: improper websocket connection usage")

	// ErrInvalidResponseType indicates a handler produced something that is
	// not a framework response. The adapter recovers by substituting a
	// generated server error response.
	ErrInvalidResponseType = errors.New("gateway: invalid response type")

	// ErrUnsupportedScope indicates a scope type the adapter does not speak.
	ErrUnsupportedScope = errors.New("gateway: unsupported scope type")

	// ErrLifespanState indicates a lifespan event arrived out of order.
	ErrLifespanState = errors.New("gateway: lifespan event out of order")
)

// TransportError wraps a gateway channel failure. Transport failures are
// fatal to the connection and never retried at this layer.
type TransportError struct {
	Op  string // "send" or "receive"
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("gateway: transport %s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying channel error to errors.Is and errors.As.
func (e *TransportError) Unwrap() error {
	return e.Err
}
