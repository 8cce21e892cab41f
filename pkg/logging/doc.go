// Package logging provides structured logging setup shared by the CLI and
// the API server.
//
// It wraps the standard library slog package with project defaults:
// structured JSON output to stderr, environment-based level configuration
// (LOG_LEVEL), automatic module/version context on every record, and source
// location tracking for debug logs.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("craftbench", version)
//	    slog.Info("starting", "port", 8080)
//	}
//
// If LOG_LEVEL is not set, the level defaults to INFO.
package logging
