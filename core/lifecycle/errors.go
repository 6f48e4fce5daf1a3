package lifecycle

import "errors"

var (
	// ErrStartup wraps every failure to establish a bound, accepting
	// listener: invalid address, occupied port, unsupported protocol,
	// malformed TLS material. It is delivered through the start future,
	// never as a panic on the calling goroutine.
	ErrStartup = errors.New("server startup failed")

	// ErrUnsupportedProtocol is reported for protocol values other than
	// HTTP and HTTPS.
	ErrUnsupportedProtocol = errors.New("unsupported protocol")

	// ErrMissingCertificate is reported when HTTPS is requested but the
	// TLS configuration carries no way to produce a certificate.
	ErrMissingCertificate = errors.New("HTTPS requires a certificate")

	// ErrNilApplication is reported when Start is given no application.
	ErrNilApplication = errors.New("application is required")
)
