package event

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// DefaultChannelBufferSize is the default buffer size for each direction of
// an in-memory Channel.
const DefaultChannelBufferSize = 100

// Channel is an in-memory duplex gateway channel. The host side pushes
// inbound events with Deliver and drains outbound events with Collect; the
// adapter side uses the Receiver and Sender endpoints.
//
// Channel is safe for concurrent use. Each direction is a buffered FIFO, so
// a slow consumer eventually blocks the producer, which is the only
// backpressure an in-memory channel needs.
//
// Example:
//
//	ch := event.NewChannel(
//	    event.WithBufferSize(16),
//	    event.WithChannelLogger(logger),
//	)
//	defer ch.Close()
type Channel struct {
	in     chan Event
	out    chan Event
	logger *slog.Logger
	mu     sync.RWMutex
	closed bool
}

// ChannelOption configures a Channel.
type ChannelOption func(*Channel)

// WithBufferSize sets the buffer size for each direction of the channel.
// Default is DefaultChannelBufferSize.
func WithBufferSize(size int) ChannelOption {
	return func(c *Channel) {
		if size > 0 {
			c.in = make(chan Event, size)
			c.out = make(chan Event, size)
		}
	}
}

// WithChannelLogger configures structured logging for the channel.
// Use slog.New(slog.NewTextHandler(io.Discard, nil)) to disable logging.
func WithChannelLogger(logger *slog.Logger) ChannelOption {
	return func(c *Channel) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewChannel creates an in-memory duplex gateway channel.
func NewChannel(opts ...ChannelOption) *Channel {
	c := &Channel{
		in:     make(chan Event, DefaultChannelBufferSize),
		out:    make(chan Event, DefaultChannelBufferSize),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Deliver pushes one inbound event toward the adapter.
func (c *Channel) Deliver(ctx context.Context, ev Event) error {
	return c.push(ctx, c.in, ev)
}

// Collect returns the next outbound event produced by the adapter.
func (c *Channel) Collect(ctx context.Context) (Event, error) {
	return c.pull(ctx, c.out)
}

// Receiver returns the adapter-side endpoint for inbound events.
func (c *Channel) Receiver() Receiver {
	return func(ctx context.Context) (Event, error) {
		return c.pull(ctx, c.in)
	}
}

// Sender returns the adapter-side endpoint for outbound events.
func (c *Channel) Sender() Sender {
	return func(ctx context.Context, ev Event) error {
		return c.push(ctx, c.out, ev)
	}
}

// Close shuts down both directions. Events already buffered remain readable;
// subsequent sends fail with ErrChannelClosed.
func (c *Channel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.in)
	close(c.out)
	c.logger.Debug("gateway channel closed")
}

func (c *Channel) push(ctx context.Context, dir chan Event, ev Event) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrChannelClosed
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case dir <- ev:
		return nil
	}
}

func (c *Channel) pull(ctx context.Context, dir chan Event) (Event, error) {
	select {
	case <-ctx.Done():
		return Event{}, ctx.Err()
	case ev, ok := <-dir:
		if !ok {
			return Event{}, ErrChannelClosed
		}
		return ev, nil
	}
}
