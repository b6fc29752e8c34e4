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

// PlanetStore implements store.PlanetStore on database/sql.
type PlanetStore struct {
	db      store.DBTX
	dialect database.Dialect
	logger  *slog.Logger
}

// NewPlanetStore creates a PlanetStore over db.
func NewPlanetStore(db store.DBTX, dialect database.Dialect, logger *slog.Logger) *PlanetStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PlanetStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "planet_store")),
	}
}

var _ store.PlanetStore = (*PlanetStore)(nil)

// WithTx implements store.PlanetStore.WithTx.
func (s *PlanetStore) WithTx(tx *sql.Tx) store.PlanetStore {
	return &PlanetStore{db: tx, dialect: s.dialect, logger: s.logger}
}

// Create implements store.PlanetStore.Create.
func (s *PlanetStore) Create(ctx context.Context, planet *domain.Planet) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := database.Rebind(s.dialect, `
		INSERT INTO planets (name, distance_from_earth, nearest_star)
		VALUES (?, ?, ?)
		RETURNING id
	`)
	err := s.db.QueryRowContext(ctx, query,
		planet.Name,
		planet.DistanceFromEarth,
		planet.NearestStar,
	).Scan(&planet.ID)
	if err != nil {
		log.Error("failed to create planet", slog.String("error", redact.Error(err)))
		return store.NewStoreError("planet", "create", "insert failed", MapError(err))
	}

	log.Info("planet created", slog.Int64("planet_id", planet.ID))
	return nil
}

// GetByID implements store.PlanetStore.GetByID.
func (s *PlanetStore) GetByID(ctx context.Context, id int64) (*domain.Planet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := database.Rebind(s.dialect, `
		SELECT id, name, distance_from_earth, nearest_star
		FROM planets
		WHERE id = ?
	`)

	var planet domain.Planet
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&planet.ID,
		&planet.Name,
		&planet.DistanceFromEarth,
		&planet.NearestStar,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("planet not found", slog.Int64("planet_id", id))
			return nil, store.ErrPlanetNotFound
		}
		log.Error("failed to get planet by ID",
			slog.String("error", redact.Error(err)),
			slog.Int64("planet_id", id))
		return nil, store.NewStoreError("planet", "get", "query failed", err)
	}

	return &planet, nil
}

// List implements store.PlanetStore.List.
func (s *PlanetStore) List(ctx context.Context) ([]*domain.Planet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, distance_from_earth, nearest_star
		FROM planets
		ORDER BY id
	`)
	if err != nil {
		log.Error("failed to list planets", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("planet", "list", "query failed", err)
	}
	defer func() { _ = rows.Close() }()

	planets := make([]*domain.Planet, 0)
	for rows.Next() {
		var planet domain.Planet
		if err := rows.Scan(
			&planet.ID,
			&planet.Name,
			&planet.DistanceFromEarth,
			&planet.NearestStar,
		); err != nil {
			return nil, store.NewStoreError("planet", "list", "scan failed", err)
		}
		planets = append(planets, &planet)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("planet", "list", "row iteration failed", err)
	}

	return planets, nil
}

// Delete implements store.PlanetStore.Delete.
func (s *PlanetStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.db.ExecContext(ctx,
		database.Rebind(s.dialect, `DELETE FROM missions WHERE planet_id = ?`), id); err != nil {
		log.Error("failed to delete planet missions",
			slog.String("error", redact.Error(err)),
			slog.Int64("planet_id", id))
		return store.NewStoreError("planet", "delete", "mission cascade failed", err)
	}

	result, err := s.db.ExecContext(ctx,
		database.Rebind(s.dialect, `DELETE FROM planets WHERE id = ?`), id)
	if err != nil {
		log.Error("failed to delete planet",
			slog.String("error", redact.Error(err)),
			slog.Int64("planet_id", id))
		return store.NewStoreError("planet", "delete", "delete failed", err)
	}
	if err := CheckRowsAffected(result, store.ErrPlanetNotFound); err != nil {
		return err
	}

	log.Info("planet deleted", slog.Int64("planet_id", id))
	return nil
}
