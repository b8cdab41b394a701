package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors, enabling safe usage without nil checks.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// EventType creates an attribute for gateway event types.
func EventType(t string) slog.Attr {
	return slog.String("event_type", t)
}

// ConnID creates an attribute for connection identifiers.
func ConnID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("conn_id", id)
}

// Scope creates an attribute for scope types.
func Scope(t string) slog.Attr {
	return slog.String("scope", t)
}

// URL creates an attribute for request URLs.
func URL(u string) slog.Attr {
	return slog.String("url", u)
}

// StatusCode creates an attribute for HTTP status codes.
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}
