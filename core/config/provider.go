package config

import (
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Provider supplies externally managed configuration values for bulk imports.
// It is asked once per key together with the type the value is expected to
// have. Returning false (or a value of the wrong type) leaves the builder's
// current value for that key untouched.
type Provider func(name string, want reflect.Type) (any, bool)

// envValues holds the environment variables the env provider understands.
// Pointer fields stay nil when the variable is unset, so absent variables
// never shadow other sources.
type envValues struct {
	Protocol      *string `env:"SERVER_PROTOCOL"`
	Host          *string `env:"SERVER_HOST"`
	Port          *int    `env:"SERVER_PORT"`
	RootPath      *string `env:"SERVER_ROOT_PATH"`
	TLSClientAuth *string `env:"SERVER_TLS_CLIENT_AUTH"`
}

var dotenvOnce sync.Once

// EnvProvider returns a Provider backed by SERVER_* environment variables.
// A .env file in the working directory is loaded once on first use.
// Malformed values are skipped rather than reported; bulk imports are
// best-effort by contract.
func EnvProvider() Provider {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	var ev envValues
	if err := env.Parse(&ev); err != nil {
		return func(string, reflect.Type) (any, bool) { return nil, false }
	}

	values := make(map[string]any)
	if ev.Protocol != nil {
		values[KeyProtocol] = *ev.Protocol
	}
	if ev.Host != nil {
		values[KeyHost] = *ev.Host
	}
	if ev.Port != nil {
		values[KeyPort] = *ev.Port
	}
	if ev.RootPath != nil {
		values[KeyRootPath] = *ev.RootPath
	}
	if ev.TLSClientAuth != nil {
		if mode, err := ParseClientAuth(*ev.TLSClientAuth); err == nil {
			values[KeyTLSClientAuth] = mode
		}
	}

	return mapProvider(values)
}

// mapProvider serves lookups from a plain map, discarding values whose
// dynamic type does not match the requested one.
func mapProvider(values map[string]any) Provider {
	return func(name string, want reflect.Type) (any, bool) {
		v, ok := values[name]
		if !ok || v == nil {
			return nil, false
		}
		if !reflect.TypeOf(v).AssignableTo(want) {
			return nil, false
		}
		return v, true
	}
}

// viperProvider adapts a viper instance. Well-known keys are read through
// viper's typed getters; anything else is served raw and filtered by type.
func viperProvider(v *viper.Viper) Provider {
	return func(name string, want reflect.Type) (any, bool) {
		if !v.IsSet(name) {
			return nil, false
		}
		switch want {
		case reflect.TypeOf(""):
			return v.GetString(name), true
		case reflect.TypeOf(0):
			n, err := cast.ToIntE(v.Get(name))
			if err != nil {
				return nil, false
			}
			return n, true
		case reflect.TypeOf(ClientAuthNone):
			mode, err := ParseClientAuth(v.GetString(name))
			if err != nil {
				return nil, false
			}
			return mode, true
		}

		raw := v.Get(name)
		if raw == nil || !reflect.TypeOf(raw).AssignableTo(want) {
			return nil, false
		}
		return raw, true
	}
}
