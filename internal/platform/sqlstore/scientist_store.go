package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/cosmic-api/internal/domain"
	"github.com/phrazzld/cosmic-api/internal/platform/database"
	"github.com/phrazzld/cosmic-api/internal/platform/logger"
	"github.com/phrazzld/cosmic-api/internal/redact"
	"github.com/phrazzld/cosmic-api/internal/store"
)

// ScientistStore implements store.ScientistStore on database/sql.
type ScientistStore struct {
	db      store.DBTX
	dialect database.Dialect
	logger  *slog.Logger
}

// NewScientistStore creates a ScientistStore over db, which may be a pool or a transaction.
// If logger is nil, a default logger will be used.
func NewScientistStore(db store.DBTX, dialect database.Dialect, logger *slog.Logger) *ScientistStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ScientistStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "scientist_store")),
	}
}

var _ store.ScientistStore = (*ScientistStore)(nil)

// WithTx implements store.ScientistStore.WithTx.
func (s *ScientistStore) WithTx(tx *sql.Tx) store.ScientistStore {
	return &ScientistStore{db: tx, dialect: s.dialect, logger: s.logger}
}

// Create implements store.ScientistStore.Create.
func (s *ScientistStore) Create(ctx context.Context, scientist *domain.Scientist) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := scientist.Validate(); err != nil {
		log.Warn("scientist validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := database.Rebind(s.dialect, `
		INSERT INTO scientists (name, field_of_study)
		VALUES (?, ?)
		RETURNING id
	`)
	err := s.db.QueryRowContext(ctx, query, scientist.Name, scientist.FieldOfStudy).Scan(&scientist.ID)
	if err != nil {
		log.Error("failed to create scientist",
			slog.String("error", redact.Error(err)))
		return store.NewStoreError("scientist", "create", "insert failed", MapError(err))
	}

	log.Info("scientist created", slog.Int64("scientist_id", scientist.ID))
	return nil
}

// GetByID implements store.ScientistStore.GetByID.
func (s *ScientistStore) GetByID(ctx context.Context, id int64) (*domain.Scientist, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := database.Rebind(s.dialect, `
		SELECT id, name, field_of_study
		FROM scientists
		WHERE id = ?
	`)

	var scientist domain.Scientist
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&scientist.ID,
		&scientist.Name,
		&scientist.FieldOfStudy,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("scientist not found", slog.Int64("scientist_id", id))
			return nil, store.ErrScientistNotFound
		}
		log.Error("failed to get scientist by ID",
			slog.String("error", redact.Error(err)),
			slog.Int64("scientist_id", id))
		return nil, store.NewStoreError("scientist", "get", "query failed", err)
	}

	return &scientist, nil
}

// List implements store.ScientistStore.List.
func (s *ScientistStore) List(ctx context.Context) ([]*domain.Scientist, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, field_of_study
		FROM scientists
		ORDER BY id
	`)
	if err != nil {
		log.Error("failed to list scientists", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("scientist", "list", "query failed", err)
	}
	defer func() { _ = rows.Close() }()

	scientists := make([]*domain.Scientist, 0)
	for rows.Next() {
		var scientist domain.Scientist
		if err := rows.Scan(&scientist.ID, &scientist.Name, &scientist.FieldOfStudy); err != nil {
			return nil, store.NewStoreError("scientist", "list", "scan failed", err)
		}
		scientists = append(scientists, &scientist)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("scientist", "list", "row iteration failed", err)
	}

	log.Debug("scientists listed", slog.Int("count", len(scientists)))
	return scientists, nil
}

// Update implements store.ScientistStore.Update.
func (s *ScientistStore) Update(ctx context.Context, scientist *domain.Scientist) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := scientist.Validate(); err != nil {
		log.Warn("scientist validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("scientist_id", scientist.ID))
		return err
	}

	query := database.Rebind(s.dialect, `
		UPDATE scientists
		SET name = ?, field_of_study = ?
		WHERE id = ?
	`)
	result, err := s.db.ExecContext(ctx, query, scientist.Name, scientist.FieldOfStudy, scientist.ID)
	if err != nil {
		log.Error("failed to update scientist",
			slog.String("error", redact.Error(err)),
			slog.Int64("scientist_id", scientist.ID))
		return store.NewStoreError("scientist", "update", "update failed", MapError(err))
	}
	if err := CheckRowsAffected(result, store.ErrScientistNotFound); err != nil {
		return err
	}

	log.Info("scientist updated", slog.Int64("scientist_id", scientist.ID))
	return nil
}

// Delete implements store.ScientistStore.Delete.
func (s *ScientistStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	missions, err := s.db.ExecContext(ctx,
		database.Rebind(s.dialect, `DELETE FROM missions WHERE scientist_id = ?`), id)
	if err != nil {
		log.Error("failed to delete scientist missions",
			slog.String("error", redact.Error(err)),
			slog.Int64("scientist_id", id))
		return store.NewStoreError("scientist", "delete", "mission cascade failed", err)
	}

	result, err := s.db.ExecContext(ctx,
		database.Rebind(s.dialect, `DELETE FROM scientists WHERE id = ?`), id)
	if err != nil {
		log.Error("failed to delete scientist",
			slog.String("error", redact.Error(err)),
			slog.Int64("scientist_id", id))
		return store.NewStoreError("scientist", "delete", "delete failed", err)
	}
	if err := CheckRowsAffected(result, store.ErrScientistNotFound); err != nil {
		return err
	}

	attrs := []any{slog.Int64("scientist_id", id)}
	if removed, err := missions.RowsAffected(); err == nil {
		attrs = append(attrs, slog.Int64("missions_deleted", removed))
	}
	log.Info("scientist deleted", attrs...)
	return nil
}
