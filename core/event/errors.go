package event

import "errors"

// ErrChannelClosed is returned when sending to or receiving from a Channel
// that has been closed. Buffered events are still drained before receives
// start failing.
var ErrChannelClosed = errors.New("event: channel is closed")
