package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/factorlab/craftbench/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API server",
		Description: `Run the evaluation service over HTTP. The server exposes machine
listings and throughput evaluations plus health, readiness, and Prometheus
metrics endpoints.

Configured via environment variables:
  PORT                      HTTP server port (default: 8080)
  LOG_LEVEL                 Logging level (debug, info, warn, error)
  SHUTDOWN_TIMEOUT_SECONDS  Graceful shutdown window`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.Serve()
		},
	}
}
