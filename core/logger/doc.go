// Package logger provides slog attribute helpers for lifecycle events.
//
// Helpers follow the empty-Attr pattern: passing a nil error or an empty
// identifier yields an attribute that slog drops silently, so call sites
// never need nil checks:
//
//	log.Info("server stopped", logger.InstanceID(id), logger.Error(err))
package logger
