package lifecycle

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/bootstrap/core/config"
	"github.com/dmitrymomot/bootstrap/core/logger"
)

// Start asynchronously binds a listener described by cfg and begins serving
// app on it. The returned future resolves with a running Instance once the
// listener is bound and accepting connections, or rejects with an error
// wrapping ErrStartup. Start never blocks beyond future creation, and a
// rejected start never leaks a partially bound socket.
//
// A nil cfg is equivalent to an all-defaults configuration. When the
// configured port is config.DefaultPort, any available port is selected; the
// delivered instance's configuration carries the actual one.
func Start(app Application, cfg *config.Config, opts ...Option) *Future[*Instance] {
	fut := newFuture[*Instance]()
	c := newController(opts...)

	go func() {
		inst, err := c.bind(app, cfg)
		if err != nil {
			fut.complete(nil, fmt.Errorf("%w: %w", ErrStartup, err))
			return
		}
		fut.complete(inst, nil)
	}()

	return fut
}

func (c *controller) bind(app Application, cfg *config.Config) (*Instance, error) {
	if app == nil || app.Handler() == nil {
		return nil, ErrNilApplication
	}
	if cfg == nil {
		built, err := config.NewBuilder().Build()
		if err != nil {
			return nil, err
		}
		cfg = built
	}

	protocol, err := cfg.Protocol()
	if err != nil {
		return nil, err
	}
	host, err := cfg.Host()
	if err != nil {
		return nil, err
	}
	port, err := cfg.Port()
	if err != nil {
		return nil, err
	}
	rootPath, err := cfg.RootPath()
	if err != nil {
		return nil, err
	}

	scheme := strings.ToUpper(protocol)
	switch scheme {
	case "HTTP", "HTTPS":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProtocol, protocol)
	}

	if port == config.DefaultPort {
		port = 0
	}
	ln, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return nil, err
	}

	if scheme == "HTTPS" {
		tlsCfg, err := c.serverTLSConfig(cfg)
		if err != nil {
			ln.Close()
			return nil, err
		}
		ln = tls.NewListener(ln, tlsCfg)
	}

	boundPort := ln.Addr().(*net.TCPAddr).Port
	rootPath = normalizeRootPath(rootPath)
	effective := cfg.
		With(config.KeyProtocol, scheme).
		With(config.KeyPort, boundPort).
		With(config.KeyRootPath, rootPath)

	inst := &Instance{
		id:       uuid.NewString(),
		cfg:      effective,
		logger:   c.logger,
		shutdown: c.shutdown,
		ln:       ln,
		stopFut:  newFuture[StopResult](),
		srv: &http.Server{
			Handler:        mount(rootPath, app.Handler()),
			ReadTimeout:    c.readTimeout,
			WriteTimeout:   c.writeTimeout,
			IdleTimeout:    c.idleTimeout,
			MaxHeaderBytes: c.maxHeaderBytes,
		},
	}
	inst.state.Store(int32(StateRunning))

	go func() {
		if err := inst.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			c.logger.Error("server terminated unexpectedly",
				logger.InstanceID(inst.id),
				logger.Error(err),
			)
		}
	}()

	c.logger.Info("server started",
		logger.InstanceID(inst.id),
		logger.Protocol(scheme),
		logger.Addr(ln.Addr().String()),
		logger.RootPath(rootPath),
	)

	return inst, nil
}

// serverTLSConfig assembles the handshake configuration for HTTPS from the
// store's tlsContext and tlsClientAuthMode values.
func (c *controller) serverTLSConfig(cfg *config.Config) (*tls.Config, error) {
	tlsCfg, err := cfg.TLSConfig()
	if err != nil {
		return nil, err
	}
	if tlsCfg == nil {
		tlsCfg = config.DefaultTLSConfig()
	}
	clientAuth, err := cfg.TLSClientAuth()
	if err != nil {
		return nil, err
	}

	if len(tlsCfg.Certificates) == 0 && tlsCfg.GetCertificate == nil && tlsCfg.GetConfigForClient == nil {
		return nil, ErrMissingCertificate
	}

	tlsCfg = tlsCfg.Clone()
	tlsCfg.ClientAuth = clientAuth.TLSClientAuthType()
	return tlsCfg, nil
}

// normalizeRootPath guarantees a leading slash and no trailing slash, so the
// published configuration is canonical regardless of how the path was given.
func normalizeRootPath(path string) string {
	if path == "" || path == "/" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimSuffix(path, "/")
}

// mount places the application handler under the root path. Requests outside
// the prefix get a plain 404 from the default mux behavior.
func mount(rootPath string, h http.Handler) http.Handler {
	if rootPath == "/" {
		return h
	}
	mux := http.NewServeMux()
	mux.Handle(rootPath+"/", http.StripPrefix(rootPath, h))
	return mux
}
