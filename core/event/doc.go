// Package event defines the message vocabulary of the gateway channel: the
// per-connection Scope, the discriminated Event exchanged in both directions,
// and the Receiver/Sender endpoints the adapter consumes.
//
// The package also ships Channel, an in-memory buffered implementation of the
// gateway channel suitable for embedding a framework application in another
// process and for driving the adapter in tests.
//
// Basic usage:
//
//	ch := event.NewChannel(event.WithBufferSize(16))
//	defer ch.Close()
//
//	// host side
//	_ = ch.Deliver(ctx, event.Event{Type: event.TypeRequestBody, Body: payload})
//
//	// adapter side
//	ev, err := ch.Receiver()(ctx)
//
// Events carry a Type discriminator plus the optional fields that type uses;
// unused fields stay at their zero value. Ordering within a direction is
// strictly sequential.
package event
