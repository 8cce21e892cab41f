package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/factorlab/craftbench/pkg/logging"
	"github.com/factorlab/craftbench/pkg/serializer"
)

const (
	name           = "craftbench"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Shared flags across output-producing commands.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Output format (supported values: %v)", serializer.SupportedFormats()),
	}
)

// rootCmd assembles the root command with all subcommands.
func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Machine behavior and throughput calculator for crafting recipes",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Usage:   "Log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date,
			)
			return ctx, nil
		},
		Commands: []*cli.Command{
			machinesCmd(),
			recipesCmd(),
			evalCmd(),
			serveCmd(),
		},
	}
}

// Execute runs the CLI with SIGINT/SIGTERM handling. It is called by
// main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// closeSerializer closes the serializer when it holds a file handle.
func closeSerializer(ser serializer.Serializer) {
	if closer, ok := ser.(serializer.Closer); ok {
		if err := closer.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}
}
