package config

import (
	"crypto/tls"
	"fmt"
	"reflect"
	"slices"

	"github.com/spf13/viper"
)

// Builder accumulates configuration values and produces an immutable Config.
// The zero value is not usable; create builders with NewBuilder.
//
// Builders are not safe for concurrent use. Built Configs are.
type Builder struct {
	explicit map[string]any
	imported map[string]any
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		explicit: make(map[string]any),
		imported: make(map[string]any),
	}
}

// Set stores an explicit value for name. A nil value clears the key entirely
// so the default applies again. Explicit values always win over bulk-imported
// ones, regardless of call order.
//
// Set performs no type or semantic validation; the typed accessors on the
// built Config report mismatches at read time.
func (b *Builder) Set(name string, value any) *Builder {
	if value == nil {
		delete(b.explicit, name)
		delete(b.imported, name)
		return b
	}
	b.explicit[name] = value
	return b
}

// Protocol sets the protocol to bind, e.g. "HTTP" or "HTTPS".
func (b *Builder) Protocol(protocol string) *Builder {
	return b.Set(KeyProtocol, protocol)
}

// Host sets the hostname or IP address to bind.
func (b *Builder) Host(host string) *Builder {
	return b.Set(KeyHost, host)
}

// Port sets the TCP port to bind. Use DefaultPort to let the lifecycle layer
// pick any available port.
func (b *Builder) Port(port int) *Builder {
	return b.Set(KeyPort, port)
}

// RootPath sets the path the application is mounted under.
func (b *Builder) RootPath(path string) *Builder {
	return b.Set(KeyRootPath, path)
}

// TLSConfig sets the secure socket configuration used for HTTPS.
// A nil config clears the key so DefaultTLSConfig applies again.
func (b *Builder) TLSConfig(cfg *tls.Config) *Builder {
	if cfg == nil {
		return b.Set(KeyTLSConfig, nil)
	}
	return b.Set(KeyTLSConfig, cfg)
}

// TLSClientAuth sets the TLS client certificate policy.
func (b *Builder) TLSClientAuth(mode ClientAuth) *Builder {
	return b.Set(KeyTLSClientAuth, mode)
}

// FromProvider bulk-imports values from p. The provider is invoked once per
// well-known key, plus once per key already present on the builder, together
// with the type the value is expected to have. Values of the wrong dynamic
// type are discarded.
//
// Imported values are implicit: they never overwrite a value that was set
// explicitly, no matter whether the Set happened before or after the import.
// Among several imports, the last one wins.
func (b *Builder) FromProvider(p Provider) *Builder {
	if p == nil {
		return b
	}
	for _, key := range b.importKeys() {
		want := expectedType(key)
		v, ok := p(key, want)
		if !ok || v == nil {
			continue
		}
		if !reflect.TypeOf(v).AssignableTo(want) {
			continue
		}
		b.imported[key] = v
	}
	return b
}

// From bulk-imports values from an opaque external source on a best-effort
// basis. Recognized sources are Provider functions, *viper.Viper, and
// map[string]any. An unsupported source makes From a no-op, never an error.
func (b *Builder) From(src any) *Builder {
	switch s := src.(type) {
	case Provider:
		return b.FromProvider(s)
	case func(string, reflect.Type) (any, bool):
		return b.FromProvider(s)
	case *viper.Viper:
		if s == nil {
			return b
		}
		return b.FromProvider(viperProvider(s))
	case map[string]any:
		return b.FromProvider(mapProvider(s))
	}
	return b
}

// Build materializes an immutable snapshot of the accumulated values.
// Defaults fill in any well-known key that has neither an explicit nor an
// imported value. Build has no side effects on the builder: calling it twice
// without interleaved mutation yields Configs with identical properties.
func (b *Builder) Build() (*Config, error) {
	values := defaults()
	for k, v := range b.imported {
		values[k] = v
	}
	for k, v := range b.explicit {
		values[k] = v
	}

	if path, ok := values[KeyRootPath].(string); ok && path == "" {
		return nil, fmt.Errorf("%w: rootPath must not be empty", ErrInvalidConfiguration)
	}

	return &Config{values: values}, nil
}

// importKeys returns the keys a bulk import asks the provider for: all
// well-known keys in stable order, then any extra keys already present on
// the builder, sorted for determinism.
func (b *Builder) importKeys() []string {
	keys := slices.Clone(wellKnownKeys)

	var extra []string
	for k := range b.explicit {
		if !slices.Contains(keys, k) {
			extra = append(extra, k)
		}
	}
	for k := range b.imported {
		if !slices.Contains(keys, k) && !slices.Contains(extra, k) {
			extra = append(extra, k)
		}
	}
	slices.Sort(extra)

	return append(keys, extra...)
}
