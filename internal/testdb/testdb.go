package testdb

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/phrazzld/cosmic-api/internal/config"
	"github.com/phrazzld/cosmic-api/internal/platform/database"
)

// EnvDatabaseURL selects an external database for tests.
const EnvDatabaseURL = "COSMIC_TEST_DATABASE_URL"

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 10 * time.Second

// Open returns a migrated database that is closed when t finishes.
func Open(t testing.TB) *database.DB {
	t.Helper()

	url := os.Getenv(EnvDatabaseURL)
	if url == "" {
		url = "sqlite://" + filepath.Join(t.TempDir(), "test.db")
	}

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	db, err := database.Open(ctx, config.DatabaseConfig{URL: url}, nil)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("warning: failed to close test database: %v", err)
		}
	})

	if err := database.Migrate(ctx, db, nil); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	if db.Dialect == database.DialectPostgres {
		t.Cleanup(func() { truncate(t, db) })
	}

	return db
}

func truncate(t testing.TB, db *database.DB) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	if _, err := db.ExecContext(ctx,
		`TRUNCATE missions, scientists, planets RESTART IDENTITY CASCADE`); err != nil {
		t.Logf("warning: failed to truncate test tables: %v", err)
	}
}

// WithTx runs fn in a transaction that is rolled back afterwards.
func WithTx(t *testing.T, db *database.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			t.Logf("warning: failed to roll back test transaction: %v", err)
		}
	}()

	fn(t, tx)
}
