package gateway_test

import (
	"context"
	"io"
	"sync"

	"github.com/dmitrymomot/gateway/core/handler"
	"github.com/dmitrymomot/gateway/core/request"
	"github.com/dmitrymomot/gateway/core/response"
)

// testApp is a minimal application used to drive the adapter in tests.
type testApp struct {
	listeners  handler.Listeners
	streamBody bool

	handle  func(ctx context.Context, req *request.Request, cb handler.ResponseCallback) error
	errResp func(req *request.Request, err error) response.Response

	mu        sync.Mutex
	scheduled int
}

func (a *testApp) Listeners() handler.Listeners { return a.listeners }

func (a *testApp) HandleRequest(ctx context.Context, req *request.Request, _ io.Writer, cb handler.ResponseCallback) error {
	if a.handle == nil {
		return nil
	}
	return a.handle(ctx, req, cb)
}

func (a *testApp) ErrorResponse(req *request.Request, err error) response.Response {
	if a.errResp != nil {
		return a.errResp(req, err)
	}
	return response.InternalServerError(err)
}

func (a *testApp) StreamRequestBody() bool { return a.streamBody }

func (a *testApp) Schedule(fn func(ctx context.Context) error) {
	a.mu.Lock()
	a.scheduled++
	a.mu.Unlock()
	go func() {
		_ = fn(context.Background())
	}()
}

func (a *testApp) scheduledTasks() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.scheduled
}
