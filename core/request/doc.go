// Package request provides the framework-native request object the gateway
// adapter constructs from a connection scope, together with its two
// supporting containers: Headers, a case-insensitive ordered multi-map that
// preserves duplicate keys, and Stream, a bounded FIFO of body chunks used
// when request bodies are ingested incrementally.
//
// A Request is built once per connection and is not reused. Its body is
// either fully materialized in Body or readable chunk by chunk from Stream,
// never both.
package request
