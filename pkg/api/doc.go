// Package api wires the evaluation engine into the HTTP server.
//
// It is a thin composition layer: it configures structured logging, loads
// the machine catalog and recipe store, builds an engine over them, and
// delegates server lifecycle management to pkg/server.
//
// # Usage
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/factorlab/craftbench/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/factorlab/craftbench/pkg/api.version=1.0.0'"
package api
