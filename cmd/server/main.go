// Package main implements the entry point for the cosmic API server, a
// REST service over scientists, planets and the missions linking them.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/cosmic-api/internal/config"
	"github.com/phrazzld/cosmic-api/internal/platform/database"
	"github.com/phrazzld/cosmic-api/internal/platform/logger"
	"github.com/phrazzld/cosmic-api/internal/platform/telemetry"
	"github.com/phrazzld/cosmic-api/internal/redact"
	"github.com/phrazzld/cosmic-api/internal/seed"
)

// options are the command line flags.
type options struct {
	migrate   string
	seed      bool
	seedReset bool
}

func parseFlags(args []string, output io.Writer) (options, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(output)

	var opts options
	fs.StringVar(&opts.migrate, "migrate", "",
		"run a migration command and exit: up, down, status, version or reset")
	fs.BoolVar(&opts.seed, "seed", false, "load demo data and exit")
	fs.BoolVar(&opts.seedReset, "seed-reset", false, "with -seed, delete existing rows first")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.migrate != "" && !validMigrateCommand(opts.migrate) {
		return options{}, fmt.Errorf("unknown migrate command %q", opts.migrate)
	}
	if opts.migrate != "" && opts.seed {
		return options{}, fmt.Errorf("-migrate and -seed cannot be combined")
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		slog.Error("server exited with error", slog.String("error", redact.Error(err)))
		os.Exit(1)
	}
}

// run loads configuration, sets up logging, tracing and the database, then
// either executes a one-shot command or serves HTTP until ctx is cancelled.
func run(ctx context.Context, opts options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Bool("metrics_enabled", cfg.Server.MetricsEnabled))

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry, log)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("tracer shutdown failed", slog.String("error", err.Error()))
		}
	}()

	db, err := database.Open(ctx, cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if opts.migrate != "" {
		defer func() { _ = db.Close() }()
		return handleMigrations(ctx, db, opts.migrate, os.Stdout, log)
	}

	if err := database.Migrate(ctx, db, log); err != nil {
		_ = db.Close()
		return err
	}

	if opts.seed {
		defer func() { _ = db.Close() }()
		_, err := seed.Run(ctx, db, seed.Options{Reset: opts.seedReset}, log)
		return err
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}
