package bootstrap

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/bootstrap/core/config"
	"github.com/dmitrymomot/bootstrap/core/lifecycle"
)

// Start asynchronously boots app with the given configuration. It is a
// convenience re-export of lifecycle.Start; see that package for the full
// contract.
func Start(app lifecycle.Application, cfg *config.Config, opts ...lifecycle.Option) *lifecycle.Future[*lifecycle.Instance] {
	return lifecycle.Start(app, cfg, opts...)
}

// Run boots app and serves until ctx is cancelled, then shuts the instance
// down gracefully. It returns the startup error if binding fails, or the
// shutdown error once the instance has stopped. Cancellation before the
// instance is delivered still stops it: the start future is awaited
// independently of ctx so a bound socket is never abandoned.
func Run(ctx context.Context, app lifecycle.Application, cfg *config.Config, opts ...lifecycle.Option) error {
	fut := lifecycle.Start(app, cfg, opts...)

	inst, err := fut.Wait(context.Background())
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		_, stopErr := inst.Stop().Wait(context.Background())
		return stopErr
	})
	return g.Wait()
}
