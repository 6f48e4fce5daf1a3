// Package lifecycle binds and runs a network-facing server instance from a
// resolved configuration, and manages its asynchronous shutdown.
//
// Start never blocks beyond creating the returned future: binding happens on
// a background goroutine, and the future resolves with a fully bound Instance
// that is already accepting connections. Request dispatch is entirely
// delegated to the Application's handler; this package never inspects
// requests.
//
//	fut := lifecycle.Start(lifecycle.App(handler), cfg)
//	inst, err := fut.Wait(ctx)
//	if err != nil {
//		// wraps lifecycle.ErrStartup: bad address, occupied port,
//		// unsupported protocol, missing TLS material, ...
//	}
//	port, _ := inst.Configuration().Port() // actual port, even if auto-selected
//
// Shutdown is graceful and idempotent. Every call to Stop returns the same
// future; concurrent callers all observe the same StopResult:
//
//	result, err := inst.Stop().Wait(ctx)
//
// The underlying *http.Server stays reachable through the typed escape hatch:
//
//	srv, ok := lifecycle.Unwrap[*http.Server](inst)
package lifecycle
