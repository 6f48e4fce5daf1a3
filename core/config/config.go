package config

import (
	"crypto/tls"
	"fmt"
	"maps"
)

// Config is an immutable set of configuration values keyed by string.
// Instances are created by Builder.Build and are safe for concurrent use.
type Config struct {
	values map[string]any
}

// Get returns the raw value stored under name, or nil if no such key exists.
func (c *Config) Get(name string) any {
	return c.values[name]
}

// Properties returns a copy of all key/value pairs, including any
// implementation-specific keys.
func (c *Config) Properties() map[string]any {
	return maps.Clone(c.values)
}

// With derives a new Config with the value for name replaced. A nil value
// removes the key. The receiver is never modified; the lifecycle layer uses
// this to publish resolved values such as an auto-selected port.
func (c *Config) With(name string, value any) *Config {
	values := maps.Clone(c.values)
	if value == nil {
		delete(values, name)
	} else {
		values[name] = value
	}
	return &Config{values: values}
}

// Protocol returns the protocol the server is bound to, e.g. "HTTP".
func (c *Config) Protocol() (string, error) {
	return typedValue[string](c, KeyProtocol)
}

// Host returns the hostname or IP address the server is bound to.
func (c *Config) Host() (string, error) {
	return typedValue[string](c, KeyHost)
}

// Port returns the TCP port the server is bound to. On a configuration
// obtained from a running instance this is the actually bound port, even if
// the requested configuration left the port to be auto-selected.
func (c *Config) Port() (int, error) {
	return typedValue[int](c, KeyPort)
}

// RootPath returns the path the application is mounted under.
func (c *Config) RootPath() (string, error) {
	return typedValue[string](c, KeyRootPath)
}

// TLSConfig returns the secure socket configuration used for HTTPS.
func (c *Config) TLSConfig() (*tls.Config, error) {
	return typedValue[*tls.Config](c, KeyTLSConfig)
}

// TLSClientAuth returns the TLS client certificate policy.
func (c *Config) TLSClientAuth() (ClientAuth, error) {
	return typedValue[ClientAuth](c, KeyTLSClientAuth)
}

// typedValue reads key as a T. A wrongly typed value can only be present if
// a caller stored it explicitly; bulk imports request the correct type and
// discard anything else.
func typedValue[T any](c *Config, key string) (T, error) {
	var zero T
	v, ok := c.values[key]
	if !ok || v == nil {
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: key %q holds %T, want %T", ErrTypeMismatch, key, v, zero)
	}
	return t, nil
}
