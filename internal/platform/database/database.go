package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/cosmic-api/internal/config"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// pingTimeout bounds the connectivity check performed by Open.
const pingTimeout = 5 * time.Second

// DB is a connection pool together with the dialect it speaks.
type DB struct {
	*sql.DB
	Dialect Dialect
}

// Open establishes a connection pool for cfg and verifies it with a ping.
// SQLite pools are limited to a single connection so the embedded file
// serializes writers; parent directories for the file are created if missing.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	target, err := ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	if target.Path != "" {
		if dir := filepath.Dir(target.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	db, err := sql.Open(target.Driver, target.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	switch target.Dialect {
	case DialectSQLite:
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	default:
		maxOpen := cfg.MaxOpenConns
		if maxOpen <= 0 {
			maxOpen = config.DefaultMaxOpenConns
		}
		db.SetMaxOpenConns(maxOpen)
		db.SetMaxIdleConns(maxOpen / 2)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("database ping timed out after %s: %w", pingTimeout, err)
		}
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established",
		slog.String("dialect", string(target.Dialect)))
	return &DB{DB: db, Dialect: target.Dialect}, nil
}
