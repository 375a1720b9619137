package logger

import (
	"log/slog"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// UserAgent records the raw User-Agent header under the key "user_agent".
func UserAgent(ua string) slog.Attr {
	return slog.String("user_agent", ua)
}

// DeviceType records the classified device type under the key "device_type".
// Unknown devices are logged as "unknown".
func DeviceType(t string) slog.Attr {
	if t == "" {
		t = "unknown"
	}
	return slog.String("device_type", t)
}

// Client records a short human-readable client identifier under the key "client".
func Client(id string) slog.Attr {
	return slog.String("client", id)
}

func Elements(n int) slog.Attr {
	return slog.Int("elements", n)
}

func Rewritten(n int) slog.Attr {
	return slog.Int("rewritten", n)
}

func Replacements(n int) slog.Attr {
	return slog.Int("replacements", n)
}

// Reason records why a response was passed through unchanged.
func Reason(reason string) slog.Attr {
	return slog.String("reason", reason)
}

// Path records the request path under the key "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Bytes records a body size under the key "bytes".
func Bytes(n int) slog.Attr {
	return slog.Int("bytes", n)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
