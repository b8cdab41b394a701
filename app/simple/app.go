// Package simple is a minimal application served through the gateway
// adapter. It maps method and path to handler functions and shows how an
// application wires config, logging, lifecycle hooks, and websocket
// connections into the gateway packages.
package simple

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/gateway/core/config"
	"github.com/dmitrymomot/gateway/core/event"
	"github.com/dmitrymomot/gateway/core/gateway"
	"github.com/dmitrymomot/gateway/core/handler"
	"github.com/dmitrymomot/gateway/core/logger"
	"github.com/dmitrymomot/gateway/core/request"
	"github.com/dmitrymomot/gateway/core/response"
	"github.com/dmitrymomot/gateway/core/ws"
	"github.com/dmitrymomot/gateway/pkg/async"
)

// ErrNotWebSocket is returned by WebSocket when the request did not arrive
// over a websocket connection.
var ErrNotWebSocket = errors.New("simple: request is not a websocket connection")

// HandlerFunc handles one request and returns the response to serialize.
type HandlerFunc func(ctx context.Context, req *request.Request) (response.Response, error)

type App struct {
	config    Config
	logger    *slog.Logger
	routes    map[string]HandlerFunc
	listeners handler.Listeners
}

type AppOption func(*App) error

func NewApp(opts ...AppOption) (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	app := &App{
		config: cfg,
		routes: make(map[string]HandlerFunc),
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.logger == nil {
		if cfg.Env == "production" {
			app.logger = logger.New(logger.WithProduction(cfg.AppName))
		} else {
			app.logger = logger.New(logger.WithDevelopment(cfg.AppName))
		}
	}

	return app, nil
}

func WithLogger(log *slog.Logger) AppOption {
	return func(app *App) error {
		app.logger = log
		return nil
	}
}

// Get registers a handler for GET requests on the given path.
func (a *App) Get(path string, fn HandlerFunc) { a.Handle(http.MethodGet, path, fn) }

// Post registers a handler for POST requests on the given path.
func (a *App) Post(path string, fn HandlerFunc) { a.Handle(http.MethodPost, path, fn) }

// Handle registers a handler for the given method and path.
func (a *App) Handle(method, path string, fn HandlerFunc) {
	a.routes[method+" "+path] = fn
}

// OnStart registers a hook that runs once startup is acknowledged.
func (a *App) OnStart(fn handler.Hook) {
	a.listeners.AfterServerStart = append(a.listeners.AfterServerStart, fn)
}

// OnStop registers a hook that runs during shutdown.
func (a *App) OnStop(fn handler.Hook) {
	a.listeners.BeforeServerStop = append(a.listeners.BeforeServerStop, fn)
}

// Serve handles one connection scope through the gateway adapter.
func (a *App) Serve(ctx context.Context, scope event.Scope, recv event.Receiver, send event.Sender) error {
	opts := append(a.config.Gateway.Options(), gateway.WithLogger(a.logger))
	return gateway.Serve(ctx, a, scope, recv, send, opts...)
}

// Listeners implements handler.Application.
func (a *App) Listeners() handler.Listeners { return a.listeners }

// HandleRequest implements handler.Application. It resolves the registered
// route and serializes its response through cb. Websocket connections carry
// no callback; their handlers talk through the connection object instead.
func (a *App) HandleRequest(ctx context.Context, req *request.Request, _ io.Writer, cb handler.ResponseCallback) error {
	u, err := req.URL()
	if err != nil {
		return err
	}

	fn, ok := a.routes[req.Method+" "+u.Path]
	if !ok {
		if cb == nil {
			return nil
		}
		return cb(ctx, response.Empty(http.StatusNotFound))
	}

	resp, err := fn(ctx, req)
	if err != nil {
		a.logger.ErrorContext(ctx, "handler failed",
			logger.Component("app"),
			logger.URL(string(req.RawURL)),
			logger.Error(err),
		)
		resp = a.ErrorResponse(req, err)
	}
	if cb == nil {
		return nil
	}
	return cb(ctx, resp)
}

// ErrorResponse implements handler.Application.
func (a *App) ErrorResponse(_ *request.Request, err error) response.Response {
	return response.InternalServerError(err)
}

// StreamRequestBody implements handler.Application.
func (a *App) StreamRequestBody() bool { return a.config.StreamRequests }

// Schedule implements handler.Application. Tasks run on their own goroutine;
// failures are logged when they resolve.
func (a *App) Schedule(fn func(ctx context.Context) error) {
	f := async.Exec(context.Background(), fn)
	go func() {
		if err := f.Await(); err != nil {
			a.logger.Error("background task failed",
				logger.Component("app"),
				logger.Error(err),
			)
		}
	}()
}

// WebSocket returns the websocket connection behind req.
func WebSocket(req *request.Request) (*ws.Conn, error) {
	t, ok := req.Conn.(interface {
		WebSocketConn() (*ws.Conn, error)
	})
	if !ok {
		return nil, ErrNotWebSocket
	}
	conn, err := t.WebSocketConn()
	if err != nil {
		return nil, errors.Join(ErrNotWebSocket, err)
	}
	return conn, nil
}
