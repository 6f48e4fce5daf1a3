// Package config resolves the effective configuration of a bootstrapped
// server from defaults, bulk-imported sources, and explicit overrides.
//
// All mutation happens on a Builder; Build materializes an immutable Config
// that can be shared across goroutines without locking.
//
// Basic usage:
//
//	cfg, err := config.NewBuilder().
//		Protocol("HTTPS").
//		Port(8443).
//		Build()
//
// # Precedence
//
// A value set explicitly via Set (or a typed setter) always wins over a value
// obtained through a bulk import, no matter in which order the calls happen.
// Bulk imports only ever fill in values for keys that were never set
// explicitly; among several imports the last one wins. Defaults apply to
// whatever remains unset:
//
//	cfg, err := config.NewBuilder().
//		From(config.EnvProvider()). // SERVER_PORT=8888
//		Port(9999).                 // explicit, wins anyway
//		Build()
//
// # External sources
//
// From accepts a Provider function, a *viper.Viper, or a map[string]any.
// Any other source is silently ignored; unsupported sources are never an
// error. Unknown keys are preserved in the built Config and ignored by
// consumers that do not recognize them.
package config
