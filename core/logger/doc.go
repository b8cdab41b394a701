// Package logger provides structured logging utilities built on Go's
// standard slog package: a factory with environment presets and attribute
// helpers shared by the gateway packages.
//
// Helpers follow the empty Attr pattern: passing a nil error or empty value
// yields an attribute slog silently drops, so call sites need no nil checks.
//
//	log := logger.New(logger.WithDevelopment("myapp"))
//	log.Info("connection established",
//		logger.Component("gateway"),
//		logger.Scope("http"),
//	)
package logger
