package handler

import (
	"context"
	"io"

	"github.com/dmitrymomot/gateway/core/request"
	"github.com/dmitrymomot/gateway/core/response"
)

// Hook is a lifecycle listener callback. Hooks in one phase run strictly
// sequentially; returning an error aborts the remaining hooks in that phase.
type Hook func(ctx context.Context, app Application) error

// Listeners holds the ordered lifecycle callbacks for each phase. It is
// assembled before any connection arrives and read-only afterwards.
type Listeners struct {
	BeforeServerStart []Hook
	AfterServerStart  []Hook
	BeforeServerStop  []Hook
	AfterServerStop   []Hook
}

// ResponseCallback serializes the final response of one exchange. The
// dispatch path invokes it exactly once with whatever the route handler
// produced.
type ResponseCallback func(ctx context.Context, resp response.Response) error

// Application is the framework surface the gateway adapter drives.
type Application interface {
	// Listeners returns the lifecycle callbacks, ordered per phase.
	Listeners() Listeners

	// HandleRequest dispatches one request. write is a placeholder stream
	// reserved for connection upgrades and is currently always nil. cb is
	// nil for websocket connections, whose connection object manages its
	// own send and receive path.
	HandleRequest(ctx context.Context, req *request.Request, write io.Writer, cb ResponseCallback) error

	// ErrorResponse builds the response for a failed exchange, such as a
	// handler returning something that is not a response.
	ErrorResponse(req *request.Request, err error) response.Response

	// StreamRequestBody reports whether request bodies should be delivered
	// through a request.Stream instead of being buffered up front.
	StreamRequestBody() bool

	// Schedule submits a fire-and-forget background task.
	Schedule(fn func(ctx context.Context) error)
}
