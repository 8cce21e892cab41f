package api

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/factorlab/craftbench/pkg/catalog"
	"github.com/factorlab/craftbench/pkg/engine"
	"github.com/factorlab/craftbench/pkg/logging"
	"github.com/factorlab/craftbench/pkg/recipe"
	"github.com/factorlab/craftbench/pkg/server"
)

const (
	name           = "craftbenchd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/factorlab/craftbench/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, loads the machine catalog and recipe store, and
// handles graceful shutdown on SIGINT/SIGTERM.
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	store, err := recipe.LoadStore()
	if err != nil {
		return fmt.Errorf("failed to load recipe store: %w", err)
	}

	eng := engine.New(catalog.New())

	cfg := server.DefaultConfig()
	cfg.Name = name
	cfg.Version = version

	slog.Info("server config",
		"port", cfg.Port,
		"rateLimit", cfg.RateLimit,
		"rateLimitBurst", cfg.RateLimitBurst,
		"readTimeout", cfg.ReadTimeout,
		"writeTimeout", cfg.WriteTimeout,
		"idleTimeout", cfg.IdleTimeout,
		"shutdownTimeout", cfg.ShutdownTimeout,
		"machines", eng.Registry().Len(),
		"recipes", store.Len(),
	)

	srv := server.NewServer(cfg, eng, store)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start(gctx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("server exited with error", "error", err)
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
