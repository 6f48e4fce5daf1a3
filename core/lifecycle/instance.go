package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/bootstrap/core/config"
	"github.com/dmitrymomot/bootstrap/core/logger"
)

// State is the lifecycle phase of an instance. Transitions only ever move
// forward: starting, running, stopping, stopped.
type State int32

const (
	// StateStarting exists only inside Start's asynchronous execution;
	// callers never observe it on a delivered instance.
	StateStarting State = iota

	// StateRunning means the instance is bound and accepting connections.
	StateRunning

	// StateStopping means shutdown is in progress.
	StateStopping

	// StateStopped means the socket has been released.
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "STARTING"
	case StateRunning:
		return "RUNNING"
	case StateStopping:
		return "STOPPING"
	case StateStopped:
		return "STOPPED"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Instance is the handle of a running server delivered by a resolved start
// future. It is safe for concurrent use.
type Instance struct {
	id       string
	cfg      *config.Config
	srv      *http.Server
	ln       net.Listener
	logger   *slog.Logger
	shutdown time.Duration

	state    atomic.Int32
	stopOnce sync.Once
	stopFut  *Future[StopResult]
}

// Configuration returns the effective, fully resolved configuration of the
// instance. It may differ from the requested configuration; in particular it
// always carries the actually bound port.
func (i *Instance) Configuration() *config.Config {
	return i.cfg
}

// State reports the current lifecycle phase.
func (i *Instance) State() State {
	return State(i.state.Load())
}

// Addr returns the bound network address.
func (i *Instance) Addr() net.Addr {
	return i.ln.Addr()
}

// Native exposes the implementation-native handle, the underlying
// *http.Server. Use Unwrap for a typed view.
func (i *Instance) Native() any {
	return i.srv
}

// Stop initiates graceful shutdown: the listener stops accepting new
// connections, in-flight requests get the configured grace period, and the
// socket is released. Stop is idempotent; every call returns the same future
// and concurrent callers observe the same StopResult. Shutdown side effects
// run exactly once.
func (i *Instance) Stop() *Future[StopResult] {
	i.stopOnce.Do(func() {
		go i.stop()
	})
	return i.stopFut
}

func (i *Instance) stop() {
	i.state.Store(int32(StateStopping))
	i.logger.Info("stopping server",
		logger.InstanceID(i.id),
		logger.Duration(i.shutdown),
	)

	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), i.shutdown)
	defer cancel()

	err := i.srv.Shutdown(ctx)
	if err != nil {
		// Grace period expired; force-close whatever is left.
		_ = i.srv.Close()
	}

	i.state.Store(int32(StateStopped))
	i.logger.Info("server stopped",
		logger.InstanceID(i.id),
		logger.Elapsed(start),
		logger.Error(err),
	)

	i.stopFut.complete(StopResult{native: i.srv}, err)
}

// StopResult wraps the implementation-native result of stopping an instance.
// It is produced exactly once per instance.
type StopResult struct {
	native any
}

// Native exposes the wrapped native shutdown result.
func (r StopResult) Native() any {
	return r.native
}

// NativeHolder is anything exposing an implementation-native object through
// a typed escape hatch.
type NativeHolder interface {
	Native() any
}

// Unwrap returns the native object held by h if it is a T. A missing or
// differently typed native object yields the zero value and false; Unwrap
// never panics.
func Unwrap[T any](h NativeHolder) (T, bool) {
	var zero T
	if h == nil {
		return zero, false
	}
	v, ok := h.Native().(T)
	if !ok {
		return zero, false
	}
	return v, true
}
