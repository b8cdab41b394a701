// Package gateway bridges an asynchronous server gateway channel to the
// framework's request and response types. It consumes already-decoded events
// from a host process (connection scopes, body chunks, lifecycle signals),
// builds a framework-native request, dispatches it to the application, and
// serializes the resulting response back into outbound gateway events.
//
// Three sub-protocols share the channel: HTTP request/response, WebSocket,
// and the process lifespan. One Conn handles exactly one scope:
//
//	conn, err := gateway.NewConn(ctx, app, scope, recv, send)
//	if err != nil {
//	    return err
//	}
//	return conn.Handle(ctx)
//
// or, equivalently, gateway.Serve(ctx, app, scope, recv, send).
//
// Streamed response bodies flow through the per-connection Protocol, a
// backpressure gate the host pauses and resumes as its transport fills and
// drains. Request bodies are either buffered before dispatch or, when the
// client sent "Expect: 100-continue", pumped into the request's stream by a
// background task while the handler runs.
package gateway
