package testdb

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Migrated(t *testing.T) {
	db := Open(t)

	var count int
	err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM missions").Scan(&count)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestWithTx_RollsBack(t *testing.T) {
	db := Open(t)
	ctx := context.Background()

	WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO planets (name, distance_from_earth, nearest_star) VALUES ('Kepler-22b', 620, 'Kepler-22')")
		require.NoError(t, err)
	})

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM planets").Scan(&count))
	assert.Zero(t, count)
}
