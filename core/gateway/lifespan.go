package gateway

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/gateway/core/event"
	"github.com/dmitrymomot/gateway/core/handler"
	"github.com/dmitrymomot/gateway/core/logger"
)

type lifespanState int

const (
	lifespanCreated lifespanState = iota
	lifespanStarted
	lifespanStopped
)

// Lifespan drives the process-lifecycle sub-protocol. It invokes the
// application's lifecycle hooks in registration order, strictly
// sequentially, and replies with completion events. One Lifespan moves
// Created -> Started -> Stopped; both transitions happen at most once.
type Lifespan struct {
	app    handler.Application
	logger *slog.Logger

	mu    sync.Mutex
	state lifespanState
}

// NewLifespan creates the coordinator for the given application.
func NewLifespan(app handler.Application, log *slog.Logger) *Lifespan {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	l := &Lifespan{app: app, logger: log}

	ls := app.Listeners()
	if len(ls.BeforeServerStart) > 0 {
		l.logger.Warn("before_server_start hooks run as early as possible, but not before the gateway host starts",
			logger.Component("lifespan"))
	}
	if len(ls.AfterServerStop) > 0 {
		l.logger.Warn("after_server_stop hooks run as late as possible, but not after the gateway host stops",
			logger.Component("lifespan"))
	}

	return l
}

// PreStartup runs only the before-start phase, for hosts that need it ahead
// of the startup event. Startup still reruns the phase afterwards.
func (l *Lifespan) PreStartup(ctx context.Context) error {
	return l.runPhase(ctx, l.app.Listeners().BeforeServerStart)
}

// Startup runs the before-start and after-start phases and moves the
// coordinator to Started.
func (l *Lifespan) Startup(ctx context.Context) error {
	l.mu.Lock()
	if l.state != lifespanCreated {
		l.mu.Unlock()
		return fmt.Errorf("%w: startup after start", ErrLifespanState)
	}
	l.mu.Unlock()

	ls := l.app.Listeners()
	if err := l.runPhase(ctx, ls.BeforeServerStart); err != nil {
		return err
	}
	if err := l.runPhase(ctx, ls.AfterServerStart); err != nil {
		return err
	}

	l.mu.Lock()
	l.state = lifespanStarted
	l.mu.Unlock()
	return nil
}

// Shutdown runs the before-stop and after-stop phases and moves the
// coordinator to its terminal Stopped state.
func (l *Lifespan) Shutdown(ctx context.Context) error {
	l.mu.Lock()
	if l.state != lifespanStarted {
		l.mu.Unlock()
		return fmt.Errorf("%w: shutdown before start", ErrLifespanState)
	}
	l.mu.Unlock()

	ls := l.app.Listeners()
	if err := l.runPhase(ctx, ls.BeforeServerStop); err != nil {
		return err
	}
	if err := l.runPhase(ctx, ls.AfterServerStop); err != nil {
		return err
	}

	l.mu.Lock()
	l.state = lifespanStopped
	l.mu.Unlock()
	return nil
}

// Run drives the wire sub-protocol: it waits for the startup event, runs
// Startup, acknowledges completion, then does the same for shutdown. Hook
// errors propagate without an acknowledgement; the host owns surfacing them.
func (l *Lifespan) Run(ctx context.Context, recv event.Receiver, send event.Sender) error {
	ev, err := recv(ctx)
	if err != nil {
		return err
	}
	if ev.Type == event.TypeLifespanStartup {
		if err := l.Startup(ctx); err != nil {
			return err
		}
		if err := send(ctx, event.Event{Type: event.TypeLifespanStartupComplete}); err != nil {
			return err
		}
		l.logger.Debug("lifespan startup complete", logger.Component("lifespan"))
	}

	ev, err = recv(ctx)
	if err != nil {
		return err
	}
	if ev.Type == event.TypeLifespanShutdown {
		if err := l.Shutdown(ctx); err != nil {
			return err
		}
		if err := send(ctx, event.Event{Type: event.TypeLifespanShutdownComplete}); err != nil {
			return err
		}
		l.logger.Debug("lifespan shutdown complete", logger.Component("lifespan"))
	}

	return nil
}

func (l *Lifespan) runPhase(ctx context.Context, hooks []handler.Hook) error {
	for _, hook := range hooks {
		if err := hook(ctx, l.app); err != nil {
			return err
		}
	}
	return nil
}
