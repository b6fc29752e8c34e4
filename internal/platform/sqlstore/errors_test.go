package sqlstore

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/cosmic-api/internal/store"
	"github.com/stretchr/testify/assert"
)

type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", sql.ErrNoRows, store.ErrNotFound},
		{"pg foreign key", &pgconn.PgError{Code: foreignKeyViolationCode}, store.ErrInvalidEntity},
		{"pg check", &pgconn.PgError{Code: checkViolationCode}, store.ErrInvalidEntity},
		{"pg not null", &pgconn.PgError{Code: notNullViolationCode}, store.ErrInvalidEntity},
		{"sqlite message", errors.New("constraint failed: FOREIGN KEY constraint failed (787)"), store.ErrInvalidEntity},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MapError(tc.err)
			if tc.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.want)
		})
	}
}

func TestMapError_PassesThroughUnknown(t *testing.T) {
	orig := errors.New("connection reset")
	assert.Same(t, orig, MapError(orig))

	pgErr := &pgconn.PgError{Code: "40001"}
	assert.Equal(t, error(pgErr), MapError(pgErr))
}

func TestForeignKeyTarget(t *testing.T) {
	assert.Equal(t, "scientist", foreignKeyTarget(&pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: fkMissionScientist}))
	assert.Equal(t, "planet", foreignKeyTarget(&pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: fkMissionPlanet}))
	assert.Equal(t, "", foreignKeyTarget(errors.New("FOREIGN KEY constraint failed")))
}

func TestCheckRowsAffected(t *testing.T) {
	notFound := store.ErrScientistNotFound

	assert.NoError(t, CheckRowsAffected(fakeResult{rows: 1}, notFound))
	assert.ErrorIs(t, CheckRowsAffected(fakeResult{rows: 0}, notFound), notFound)
	assert.Error(t, CheckRowsAffected(fakeResult{err: errors.New("boom")}, notFound))
	assert.Error(t, CheckRowsAffected(nil, notFound))
}
