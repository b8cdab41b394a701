package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/gateway/core/request"
)

// Response is the contract every framework response satisfies. Concrete
// responses additionally implement either Buffered or Streaming; the gateway
// adapter type-checks at that boundary and substitutes a server error for
// anything else.
type Response interface {
	Status() int
	Header() *request.Headers
	Cookies() []*http.Cookie
}

// Buffered is a Response whose body is fully materialized.
type Buffered interface {
	Response
	Body() []byte
}

// HTTPResponse is the standard buffered response implementation.
type HTTPResponse struct {
	status  int
	header  *request.Headers
	cookies []*http.Cookie
	body    []byte
}

var _ Buffered = (*HTTPResponse)(nil)

// Option configures a response at construction time.
type Option func(*HTTPResponse)

// WithStatus overrides the response status code.
func WithStatus(status int) Option {
	return func(r *HTTPResponse) {
		if status > 0 {
			r.status = status
		}
	}
}

// WithHeader appends a header field.
func WithHeader(name, value string) Option {
	return func(r *HTTPResponse) {
		r.header.Add(name, value)
	}
}

// WithCookie attaches a cookie to the response.
func WithCookie(c *http.Cookie) Option {
	return func(r *HTTPResponse) {
		if c != nil {
			r.cookies = append(r.cookies, c)
		}
	}
}

func newHTTPResponse(body []byte, contentType string, opts ...Option) *HTTPResponse {
	r := &HTTPResponse{
		status: http.StatusOK,
		header: request.NewHeaders(),
		body:   body,
	}
	if contentType != "" {
		r.header.Add("content-type", contentType)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Text creates a text/plain response with 200 OK status.
func Text(content string, opts ...Option) *HTTPResponse {
	return newHTTPResponse([]byte(content), "text/plain; charset=utf-8", opts...)
}

// HTML creates a text/html response with 200 OK status.
func HTML(content string, opts ...Option) *HTTPResponse {
	return newHTTPResponse([]byte(content), "text/html; charset=utf-8", opts...)
}

// JSON creates an application/json response from the given value.
func JSON(v any, opts ...Option) (*HTTPResponse, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("response: marshal json body: %w", err)
	}
	return newHTTPResponse(body, "application/json", opts...), nil
}

// Raw creates a response with the given body and content type.
func Raw(body []byte, contentType string, opts ...Option) *HTTPResponse {
	return newHTTPResponse(body, contentType, opts...)
}

// Empty creates a bodiless response with the given status code.
func Empty(status int, opts ...Option) *HTTPResponse {
	return newHTTPResponse(nil, "", append([]Option{WithStatus(status)}, opts...)...)
}

// InternalServerError creates the generic 500 response used when a handler
// produced something that is not a valid response.
func InternalServerError(err error) *HTTPResponse {
	msg := http.StatusText(http.StatusInternalServerError)
	if err != nil {
		msg = err.Error()
	}
	return Text(msg, WithStatus(http.StatusInternalServerError))
}

// Status implements Response.
func (r *HTTPResponse) Status() int { return r.status }

// Header implements Response.
func (r *HTTPResponse) Header() *request.Headers { return r.header }

// Cookies implements Response.
func (r *HTTPResponse) Cookies() []*http.Cookie { return r.cookies }

// Body implements Buffered.
func (r *HTTPResponse) Body() []byte { return r.body }

// AddCookie attaches a cookie after construction.
func (r *HTTPResponse) AddCookie(c *http.Cookie) {
	if c != nil {
		r.cookies = append(r.cookies, c)
	}
}
