// Package bootstrap starts an HTTP(S) server from a declaratively resolved
// configuration and manages its asynchronous shutdown.
//
// The module is split into small focused packages:
//
//   - github.com/dmitrymomot/bootstrap/core/config: immutable configuration
//     store with a builder supporting explicit overrides, bulk imports from
//     external sources, and documented defaults.
//   - github.com/dmitrymomot/bootstrap/core/lifecycle: asynchronous
//     start/stop of a bound server instance with future-based results.
//   - github.com/dmitrymomot/bootstrap/core/logger: slog attribute helpers
//     for lifecycle events.
//
// This package is a thin façade wiring them together.
//
// # Explicit configuration
//
//	cfg, err := config.NewBuilder().
//		Protocol("HTTP").
//		Host("0.0.0.0").
//		Port(8080).
//		RootPath("/api").
//		Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//	inst, err := bootstrap.Start(lifecycle.App(handler), cfg).Wait(ctx)
//
// # Auto-selected port
//
// Leaving the port unset delegates the choice to the operating system. The
// delivered instance's configuration reports the port actually bound:
//
//	cfg, _ := config.NewBuilder().Build()
//	inst, _ := bootstrap.Start(lifecycle.App(handler), cfg).Wait(ctx)
//	port, _ := inst.Configuration().Port()
//
// # Serving until cancelled
//
//	err := bootstrap.Run(ctx, lifecycle.App(handler), cfg)
//
// Run blocks until ctx is cancelled, then shuts the instance down
// gracefully.
package bootstrap
