package gateway

import (
	"context"
	"sync"

	"github.com/dmitrymomot/gateway/core/event"
	"github.com/dmitrymomot/gateway/core/response"
)

// Protocol is the per-connection write gate and completion marker shared
// between the adapter and a streaming response body. The host pauses the
// gate when its transport buffers fill and resumes it once they drain;
// PushData consults the gate before every chunk, so a paused transport
// suspends the producer instead of accumulating outbound data.
//
// The gate starts writable. Resume wakes all waiters.
type Protocol struct {
	transport *Transport

	mu       sync.Mutex
	paused   bool
	writable chan struct{} // closed while writing is allowed
	complete bool
}

var _ response.Writer = (*Protocol)(nil)

func newProtocol(t *Transport) *Protocol {
	writable := make(chan struct{})
	close(writable)
	return &Protocol{transport: t, writable: writable}
}

// Pause suspends writers until Resume is called.
func (p *Protocol) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.paused || p.complete {
		return
	}
	p.paused = true
	p.writable = make(chan struct{})
}

// Resume wakes every task suspended in AwaitWritable.
func (p *Protocol) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resumeLocked()
}

func (p *Protocol) resumeLocked() {
	if !p.paused {
		return
	}
	p.paused = false
	close(p.writable)
}

// AwaitWritable blocks until the gate is writable or the context is
// canceled.
func (p *Protocol) AwaitWritable(ctx context.Context) error {
	p.mu.Lock()
	writable := p.writable
	p.mu.Unlock()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-writable:
		return nil
	}
}

// IsComplete reports whether the response body has been finalized.
func (p *Protocol) IsComplete() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.complete
}

// PushData emits one streamed body chunk, waiting out a paused gate first.
// Pushes after completion are dropped.
func (p *Protocol) PushData(ctx context.Context, chunk []byte) error {
	if err := p.AwaitWritable(ctx); err != nil {
		return err
	}
	if p.IsComplete() {
		return nil
	}
	return p.transport.Send(ctx, event.Event{
		Type:     event.TypeResponseBody,
		Body:     chunk,
		MoreBody: true,
	})
}

// Complete finalizes the response body with the terminal empty event.
// It resumes any suspended writers and is safe to call more than once.
func (p *Protocol) Complete(ctx context.Context) error {
	p.mu.Lock()
	if p.complete {
		p.mu.Unlock()
		return nil
	}
	p.complete = true
	p.resumeLocked()
	p.mu.Unlock()

	return p.transport.Send(ctx, event.Event{
		Type:     event.TypeResponseBody,
		MoreBody: false,
	})
}
