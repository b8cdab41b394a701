package response

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrymomot/gateway/core/request"
)

// ErrNoWriter is returned when a streaming response body runs before the
// adapter assigned its Writer.
var ErrNoWriter = errors.New("response: streaming response has no writer")

// Writer pushes streamed body chunks toward the client. PushData consults
// the transport backpressure gate before every chunk, so a paused transport
// suspends the producer instead of buffering without bound.
type Writer interface {
	PushData(ctx context.Context, chunk []byte) error
}

// Streaming is a Response whose body is produced lazily. The adapter assigns
// the Writer with SetWriter, invokes Stream exactly once, and finalizes the
// body afterwards.
type Streaming interface {
	Response
	SetWriter(w Writer)
	Stream(ctx context.Context) error
}

// StreamingResponse carries a body-producing function instead of a buffer.
type StreamingResponse struct {
	status  int
	header  *request.Headers
	cookies []*http.Cookie
	writer  Writer
	produce func(ctx context.Context, w Writer) error
}

var _ Streaming = (*StreamingResponse)(nil)

// StreamingOption configures a StreamingResponse at construction time.
type StreamingOption func(*StreamingResponse)

// WithStreamingStatus overrides the response status code.
func WithStreamingStatus(status int) StreamingOption {
	return func(r *StreamingResponse) {
		if status > 0 {
			r.status = status
		}
	}
}

// WithStreamingHeader appends a header field.
func WithStreamingHeader(name, value string) StreamingOption {
	return func(r *StreamingResponse) {
		r.header.Add(name, value)
	}
}

// WithStreamingCookie attaches a cookie to the response.
func WithStreamingCookie(c *http.Cookie) StreamingOption {
	return func(r *StreamingResponse) {
		if c != nil {
			r.cookies = append(r.cookies, c)
		}
	}
}

// NewStreaming creates a streaming response around the given body producer.
func NewStreaming(produce func(ctx context.Context, w Writer) error, opts ...StreamingOption) *StreamingResponse {
	r := &StreamingResponse{
		status:  http.StatusOK,
		header:  request.NewHeaders(),
		produce: produce,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Status implements Response.
func (r *StreamingResponse) Status() int { return r.status }

// Header implements Response.
func (r *StreamingResponse) Header() *request.Headers { return r.header }

// Cookies implements Response.
func (r *StreamingResponse) Cookies() []*http.Cookie { return r.cookies }

// SetWriter assigns the chunk writer. The adapter calls this before Stream.
func (r *StreamingResponse) SetWriter(w Writer) { r.writer = w }

// Stream runs the body producer against the assigned writer.
func (r *StreamingResponse) Stream(ctx context.Context) error {
	if r.writer == nil {
		return ErrNoWriter
	}
	if r.produce == nil {
		return nil
	}
	return r.produce(ctx, r.writer)
}
