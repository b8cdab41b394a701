package event

import (
	"net"
	"strconv"
)

// Scope types delivered by the gateway host.
const (
	ScopeHTTP      = "http"
	ScopeWebSocket = "websocket"
	ScopeLifespan  = "lifespan"
)

// Addr is the peer address reported by the gateway host.
type Addr struct {
	Host string
	Port int
}

// String renders the address in host:port form.
func (a *Addr) String() string {
	if a == nil {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Scope describes one connection. It is delivered once at connection start
// and never mutated afterwards.
type Scope struct {
	Type        string
	Path        string
	QueryString []byte
	Headers     []Header
	Method      string
	HTTPVersion string
	RootPath    string
	Server      *Addr
	Scheme      string
}
