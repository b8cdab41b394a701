package gateway

import (
	"github.com/dmitrymomot/gateway/core/event"
	"github.com/dmitrymomot/gateway/core/request"
)

// Config holds gateway adapter settings with environment variable support.
type Config struct {
	// StreamCapacity is the chunk buffer capacity of attached request
	// streams.
	StreamCapacity int `env:"GATEWAY_STREAM_CAPACITY" envDefault:"64"`

	// ChannelBuffer is the per-direction buffer size used when the embedder
	// builds in-memory gateway channels.
	ChannelBuffer int `env:"GATEWAY_CHANNEL_BUFFER" envDefault:"100"`
}

// DefaultConfig returns a Config with the package defaults.
func DefaultConfig() Config {
	return Config{
		StreamCapacity: request.DefaultStreamCapacity,
		ChannelBuffer:  event.DefaultChannelBufferSize,
	}
}

// Options converts the config into connection options.
func (cfg Config) Options() []Option {
	var opts []Option
	if cfg.StreamCapacity > 0 {
		opts = append(opts, WithStreamCapacity(cfg.StreamCapacity))
	}
	return opts
}

// ChannelOptions converts the config into in-memory channel options.
func (cfg Config) ChannelOptions() []event.ChannelOption {
	var opts []event.ChannelOption
	if cfg.ChannelBuffer > 0 {
		opts = append(opts, event.WithBufferSize(cfg.ChannelBuffer))
	}
	return opts
}
