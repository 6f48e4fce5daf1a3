package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// Returns an empty Attr for nil errors, enabling safe usage without nil checks.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed calculates and logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// InstanceID creates an attribute for a server instance identifier.
func InstanceID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("instance_id", id)
}

// Protocol creates an attribute for the bound protocol.
func Protocol(protocol string) slog.Attr {
	return slog.String("protocol", protocol)
}

// Addr creates an attribute for a network address.
func Addr(addr string) slog.Attr {
	return slog.String("addr", addr)
}

// RootPath creates an attribute for the application mount path.
func RootPath(path string) slog.Attr {
	return slog.String("root_path", path)
}
