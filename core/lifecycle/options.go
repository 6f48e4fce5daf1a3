package lifecycle

import (
	"io"
	"log/slog"
	"time"
)

// controller carries the tunables applied to every instance started through
// it. It exists only for the duration of a Start call.
type controller struct {
	logger         *slog.Logger
	shutdown       time.Duration
	readTimeout    time.Duration
	writeTimeout   time.Duration
	idleTimeout    time.Duration
	maxHeaderBytes int
}

func newController(opts ...Option) *controller {
	c := &controller{
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		shutdown:       DefaultShutdownTimeout,
		readTimeout:    DefaultReadTimeout,
		writeTimeout:   DefaultWriteTimeout,
		idleTimeout:    DefaultIdleTimeout,
		maxHeaderBytes: DefaultMaxHeaderBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Option configures how an instance is started and shut down.
type Option func(*controller)

// WithLogger sets a custom logger for lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithShutdownTimeout sets the grace period in-flight requests get during
// shutdown before remaining connections are force-closed.
func WithShutdownTimeout(timeout time.Duration) Option {
	return func(c *controller) {
		c.shutdown = timeout
	}
}

// WithReadTimeout sets the maximum duration for reading a request.
func WithReadTimeout(timeout time.Duration) Option {
	return func(c *controller) {
		c.readTimeout = timeout
	}
}

// WithWriteTimeout sets the maximum duration for writing a response.
func WithWriteTimeout(timeout time.Duration) Option {
	return func(c *controller) {
		c.writeTimeout = timeout
	}
}

// WithIdleTimeout sets the maximum duration idle keep-alive connections are
// kept open.
func WithIdleTimeout(timeout time.Duration) Option {
	return func(c *controller) {
		c.idleTimeout = timeout
	}
}

// WithMaxHeaderBytes sets the maximum size of request headers.
func WithMaxHeaderBytes(n int) Option {
	return func(c *controller) {
		c.maxHeaderBytes = n
	}
}
