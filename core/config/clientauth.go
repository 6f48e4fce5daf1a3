package config

import (
	"crypto/tls"
	"fmt"
	"strings"
)

// ClientAuth is the TLS client certificate policy applied during the secure
// socket handshake. It controls whether the server requests a client
// certificate and whether a valid one is mandatory for the connection to
// succeed.
type ClientAuth int

const (
	// ClientAuthNone does not request client authentication.
	ClientAuthNone ClientAuth = iota

	// ClientAuthOptional requests client authentication but accepts
	// connections from clients that fail it.
	ClientAuthOptional

	// ClientAuthMandatory requests client authentication and rejects
	// connections from clients that fail it.
	ClientAuthMandatory
)

func (a ClientAuth) String() string {
	switch a {
	case ClientAuthNone:
		return "NONE"
	case ClientAuthOptional:
		return "OPTIONAL"
	case ClientAuthMandatory:
		return "MANDATORY"
	default:
		return fmt.Sprintf("ClientAuth(%d)", int(a))
	}
}

// TLSClientAuthType maps the policy onto the crypto/tls handshake setting.
func (a ClientAuth) TLSClientAuthType() tls.ClientAuthType {
	switch a {
	case ClientAuthOptional:
		return tls.RequestClientCert
	case ClientAuthMandatory:
		return tls.RequireAndVerifyClientCert
	default:
		return tls.NoClientCert
	}
}

// ParseClientAuth converts a policy name ("NONE", "OPTIONAL", "MANDATORY",
// case-insensitive) into a ClientAuth value.
func ParseClientAuth(s string) (ClientAuth, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NONE":
		return ClientAuthNone, nil
	case "OPTIONAL":
		return ClientAuthOptional, nil
	case "MANDATORY":
		return ClientAuthMandatory, nil
	default:
		return ClientAuthNone, fmt.Errorf("%w: unknown client auth mode %q", ErrInvalidConfiguration, s)
	}
}
