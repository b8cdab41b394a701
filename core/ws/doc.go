// Package ws provides the WebSocket connection object handlers receive for
// websocket-scoped connections. It shuttles already-decoded gateway events;
// wire framing belongs to the gateway host and never appears here.
//
// Message types reuse the gorilla/websocket constants, so handler code can
// switch on websocket.TextMessage and websocket.BinaryMessage as usual.
package ws
