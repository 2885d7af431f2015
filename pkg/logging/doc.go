// Package logging provides structured logging for cfgen with level filtering
// and subsystem tagging.
//
// The package wraps Go's standard slog package. Every log entry carries a
// subsystem identifier so that output from the different resolution stages
// (Schema, Overrides, Resolver, Emit, Watch) can be filtered by downstream
// tooling.
//
// # Usage
//
//	import "cfgen/pkg/logging"
//
//	// Initialize with Info level logging to stderr
//	logging.Init(logging.LevelInfo, os.Stderr)
//
//	logging.Info("Resolver", "Resolved %d fields for %s", n, component)
//	logging.Debug("Overrides", "Project root discovered at %s", root)
//	logging.Warn("Overrides", "Malformed override file, using defaults")
//	logging.Error("Emit", err, "Failed to write generated file")
//
// Logging is safe for concurrent use. Messages below the configured level are
// filtered before formatting, so disabled levels cost no allocations.
package logging
