package request

import (
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/dmitrymomot/gateway/core/event"
)

// ConnInfo describes the transport a request arrived on. It is implemented
// by the gateway transport shim.
type ConnInfo interface {
	// PeerAddr returns the remote peer address, or nil when unknown.
	PeerAddr() *event.Addr
	// Secure reports whether the connection uses a TLS-backed scheme.
	Secure() bool
}

// Request is the framework-native view of one HTTP or WebSocket exchange.
// It is constructed once per connection by the gateway adapter and owned by
// that connection for its lifetime.
type Request struct {
	// ID correlates log records across the adapter and the handler.
	ID uuid.UUID

	// RawURL holds the canonical URL bytes: root path plus percent-encoded
	// path, followed by "?" and the raw query string.
	RawURL []byte

	Method      string
	HTTPVersion string
	Headers     *Headers

	// Body holds the fully buffered request body. It stays nil when the
	// application ingests bodies through Stream instead.
	Body []byte

	// Stream delivers body chunks incrementally. At most one Stream exists
	// per request; it is attached before the handler runs.
	Stream *Stream

	// Conn exposes transport details such as the peer address.
	Conn ConnInfo

	// App is the owning application instance.
	App any
}

// New constructs a Request. The raw URL bytes are stored as delivered; use
// URL to parse them on demand.
func New(rawURL []byte, headers *Headers, version, method string, conn ConnInfo, app any) *Request {
	if headers == nil {
		headers = NewHeaders()
	}
	return &Request{
		ID:          uuid.New(),
		RawURL:      rawURL,
		Method:      method,
		HTTPVersion: version,
		Headers:     headers,
		Conn:        conn,
		App:         app,
	}
}

// URL parses the raw URL bytes.
func (r *Request) URL() (*url.URL, error) {
	u, err := url.ParseRequestURI(string(r.RawURL))
	if err != nil {
		return nil, fmt.Errorf("request: parse url %q: %w", r.RawURL, err)
	}
	return u, nil
}
