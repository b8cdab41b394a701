package request

import (
	"context"
	"io"
	"sync"
)

// DefaultStreamCapacity is the default number of chunks a Stream buffers
// before Put blocks.
const DefaultStreamCapacity = 64

// Stream is a bounded FIFO of body chunks with a single producer (the
// ingestion task) and a single consumer (the handler). The producer finishes
// with End, after which Read returns io.EOF, or with Abort, after which Read
// returns the given error once buffered chunks are drained.
type Stream struct {
	ch   chan []byte
	once sync.Once
	err  error
}

// NewStream creates a Stream buffering up to capacity chunks.
// Non-positive capacity falls back to DefaultStreamCapacity.
func NewStream(capacity int) *Stream {
	if capacity <= 0 {
		capacity = DefaultStreamCapacity
	}
	return &Stream{ch: make(chan []byte, capacity)}
}

// Put appends one chunk. It blocks while the buffer is full.
func (s *Stream) Put(ctx context.Context, chunk []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case s.ch <- chunk:
		return nil
	}
}

// End marks the stream as complete. Read returns io.EOF once buffered
// chunks are drained. End and Abort are each effective at most once.
func (s *Stream) End() {
	s.once.Do(func() {
		close(s.ch)
	})
}

// Abort terminates the stream with an error, unblocking a waiting consumer.
func (s *Stream) Abort(err error) {
	s.once.Do(func() {
		s.err = err
		close(s.ch)
	})
}

// Read returns the next chunk in delivery order. At end of stream it returns
// io.EOF, or the error passed to Abort.
func (s *Stream) Read(ctx context.Context) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case chunk, ok := <-s.ch:
		if !ok {
			if s.err != nil {
				return nil, s.err
			}
			return nil, io.EOF
		}
		return chunk, nil
	}
}

// ReadAll drains the stream into a single buffer.
func (s *Stream) ReadAll(ctx context.Context) ([]byte, error) {
	var body []byte
	for {
		chunk, err := s.Read(ctx)
		if err == io.EOF {
			return body, nil
		}
		if err != nil {
			return body, err
		}
		body = append(body, chunk...)
	}
}
