// Package cli implements the craftbench command-line interface.
//
// # Commands
//
// machines - List registered machine definitions:
//
//	craftbench machines [--recipe ID] [--format yaml|json|table]
//
// Lists every machine in the catalog with its adjustable choices. With
// --recipe, only machines eligible for that recipe are shown.
//
// recipes - List known recipe identifiers:
//
//	craftbench recipes
//
// eval - Evaluate machine throughput for a recipe:
//
//	craftbench eval --recipe steel-ingot-blast --machine "Electric Blast Furnace" \
//	  --tier EV --budget 2 --choice coil=3 --choice muffler=2
//
// Evaluates one machine against one recipe, or every eligible machine when
// --machine is omitted. Choices are repeatable name=value pairs; omitted
// choices take their defaults.
//
// serve - Run the HTTP API server:
//
//	craftbench serve
//
// # Global Flags
//
//	--log-level    Logging verbosity: debug, info, warn, error (default: info)
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//
// # Environment Variables
//
//	LOG_LEVEL  Set logging verbosity (debug, info, warn, error)
//	PORT       HTTP server port for the serve command (default: 8080)
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/factorlab/craftbench/pkg/cli.version=1.0.0'"
package cli
