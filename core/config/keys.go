package config

import (
	"crypto/tls"
	"reflect"
)

// Well-known configuration keys. Every compliant consumer understands these;
// any other key is implementation-specific and silently ignored by consumers
// that do not recognize it.
const (
	KeyProtocol      = "protocol"
	KeyHost          = "host"
	KeyPort          = "port"
	KeyRootPath      = "rootPath"
	KeyTLSConfig     = "tlsContext"
	KeyTLSClientAuth = "tlsClientAuthMode"
)

const (
	// DefaultProtocol is the protocol used when none is configured.
	DefaultProtocol = "HTTP"

	// DefaultHost is the host used when none is configured.
	DefaultHost = "localhost"

	// DefaultPort instructs the lifecycle layer to pick any available port.
	// The actually bound port is published through the running instance's
	// configuration.
	DefaultPort = -1

	// DefaultRootPath is the root path used when none is configured.
	DefaultRootPath = "/"
)

// wellKnownKeys lists the keys in a stable order for bulk imports.
var wellKnownKeys = []string{
	KeyProtocol,
	KeyHost,
	KeyPort,
	KeyRootPath,
	KeyTLSConfig,
	KeyTLSClientAuth,
}

// wellKnownTypes maps each well-known key to the type a bulk-import provider
// is asked to produce for it.
var wellKnownTypes = map[string]reflect.Type{
	KeyProtocol:      reflect.TypeOf(""),
	KeyHost:          reflect.TypeOf(""),
	KeyPort:          reflect.TypeOf(0),
	KeyRootPath:      reflect.TypeOf(""),
	KeyTLSConfig:     reflect.TypeOf((*tls.Config)(nil)),
	KeyTLSClientAuth: reflect.TypeOf(ClientAuthNone),
}

// expectedType returns the type a provider is asked for.
// Implementation-specific keys are requested as plain strings.
func expectedType(key string) reflect.Type {
	if t, ok := wellKnownTypes[key]; ok {
		return t
	}
	return reflect.TypeOf("")
}

// defaults returns the values Build falls back to for unset well-known keys.
func defaults() map[string]any {
	return map[string]any{
		KeyProtocol:      DefaultProtocol,
		KeyHost:          DefaultHost,
		KeyPort:          DefaultPort,
		KeyRootPath:      DefaultRootPath,
		KeyTLSConfig:     DefaultTLSConfig(),
		KeyTLSClientAuth: ClientAuthNone,
	}
}
