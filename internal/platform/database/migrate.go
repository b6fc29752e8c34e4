package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// MigrationStatus describes one migration known to the migrator.
type MigrationStatus struct {
	Version   int64
	Source    string
	Applied   bool
	AppliedAt time.Time
}

// Migrator applies the embedded migrations for a database's dialect.
type Migrator struct {
	provider *goose.Provider
	logger   *slog.Logger
}

// NewMigrator builds a goose provider over the migrations for db.Dialect.
func NewMigrator(db *DB, logger *slog.Logger) (*Migrator, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		dialect goose.Dialect
		dir     string
	)
	switch db.Dialect {
	case DialectSQLite:
		dialect, dir = goose.DialectSQLite3, "migrations/sqlite"
	case DialectPostgres:
		dialect, dir = goose.DialectPostgres, "migrations/postgres"
	default:
		return nil, fmt.Errorf("no migrations for dialect %q", db.Dialect)
	}

	fsys, err := fs.Sub(migrationsFS, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	provider, err := goose.NewProvider(dialect, db.DB, fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}

	return &Migrator{
		provider: provider,
		logger: logger.With(
			slog.String("component", "migrations"),
			slog.String("correlation_id", uuid.NewString()),
			slog.String("dialect", string(db.Dialect)),
		),
	}, nil
}

// Up applies every pending migration.
func (m *Migrator) Up(ctx context.Context) error {
	start := time.Now()
	results, err := m.provider.Up(ctx)
	for _, r := range results {
		m.logResult(r)
	}
	if err != nil {
		m.logger.Error("migration up failed", slog.String("error", err.Error()))
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	m.logger.Info("migrations applied",
		slog.Int("count", len(results)),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}

// Down rolls back the most recent migration.
func (m *Migrator) Down(ctx context.Context) error {
	result, err := m.provider.Down(ctx)
	if result != nil {
		m.logResult(result)
	}
	if err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}
	return nil
}

// Reset rolls back every applied migration.
func (m *Migrator) Reset(ctx context.Context) error {
	results, err := m.provider.DownTo(ctx, 0)
	for _, r := range results {
		m.logResult(r)
	}
	if err != nil {
		return fmt.Errorf("failed to reset migrations: %w", err)
	}
	return nil
}

// Version returns the current schema version (0 when nothing is applied).
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	v, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return v, nil
}

// Status lists every known migration and whether it has been applied.
func (m *Migrator) Status(ctx context.Context) ([]MigrationStatus, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration status: %w", err)
	}
	out := make([]MigrationStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationStatus{
			Version:   s.Source.Version,
			Source:    s.Source.Path,
			Applied:   s.State == goose.StateApplied,
			AppliedAt: s.AppliedAt,
		})
	}
	return out, nil
}

func (m *Migrator) logResult(r *goose.MigrationResult) {
	if r == nil || r.Source == nil {
		return
	}
	attrs := []any{
		slog.Int64("version", r.Source.Version),
		slog.String("source", r.Source.Path),
		slog.String("direction", r.Direction),
		slog.Int64("duration_ms", r.Duration.Milliseconds()),
	}
	if r.Error != nil {
		m.logger.Error("migration failed", append(attrs, slog.String("error", r.Error.Error()))...)
		return
	}
	m.logger.Info("migration applied", attrs...)
}

// Migrate applies every pending migration for db.
func Migrate(ctx context.Context, db *DB, logger *slog.Logger) error {
	m, err := NewMigrator(db, logger)
	if err != nil {
		return err
	}
	return m.Up(ctx)
}
