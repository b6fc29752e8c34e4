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

// MissionStore implements store.MissionStore on database/sql.
type MissionStore struct {
	db      store.DBTX
	dialect database.Dialect
	logger  *slog.Logger
}

// NewMissionStore creates a MissionStore over db.
func NewMissionStore(db store.DBTX, dialect database.Dialect, logger *slog.Logger) *MissionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &MissionStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "mission_store")),
	}
}

var _ store.MissionStore = (*MissionStore)(nil)

// WithTx implements store.MissionStore.WithTx.
func (s *MissionStore) WithTx(tx *sql.Tx) store.MissionStore {
	return &MissionStore{db: tx, dialect: s.dialect, logger: s.logger}
}

// Create implements store.MissionStore.Create.
// Parents are checked before the insert so the caller learns which one is
// missing; a foreign key violation raised by the insert itself is mapped too.
func (s *MissionStore) Create(ctx context.Context, mission *domain.Mission) error {
	log := logger.FromContextOrDefault(ctx, s.logger).With(
		slog.Int64("scientist_id", mission.ScientistID),
		slog.Int64("planet_id", mission.PlanetID))

	if err := mission.Validate(); err != nil {
		log.Warn("mission validation failed during create", slog.String("error", err.Error()))
		return err
	}

	if err := s.requireExists(ctx, "scientists", mission.ScientistID, store.ErrUnknownScientist); err != nil {
		log.Warn("mission references unknown parent", slog.String("error", err.Error()))
		return err
	}
	if err := s.requireExists(ctx, "planets", mission.PlanetID, store.ErrUnknownPlanet); err != nil {
		log.Warn("mission references unknown parent", slog.String("error", err.Error()))
		return err
	}

	query := database.Rebind(s.dialect, `
		INSERT INTO missions (name, scientist_id, planet_id)
		VALUES (?, ?, ?)
		RETURNING id
	`)
	err := s.db.QueryRowContext(ctx, query,
		mission.Name,
		mission.ScientistID,
		mission.PlanetID,
	).Scan(&mission.ID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during mission creation",
				slog.String("error", redact.Error(err)))
			switch foreignKeyTarget(err) {
			case "planet":
				return store.ErrUnknownPlanet
			case "scientist":
				return store.ErrUnknownScientist
			}
			return MapError(err)
		}
		log.Error("failed to create mission", slog.String("error", redact.Error(err)))
		return store.NewStoreError("mission", "create", "insert failed", MapError(err))
	}

	log.Info("mission created", slog.Int64("mission_id", mission.ID))
	return nil
}

// requireExists returns missing when the row id is absent from table.
// table is always one of the package's own table names.
func (s *MissionStore) requireExists(ctx context.Context, table string, id int64, missing error) error {
	query := database.Rebind(s.dialect, `SELECT EXISTS (SELECT 1 FROM `+table+` WHERE id = ?)`)
	var exists bool
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return store.NewStoreError("mission", "create", "parent lookup failed", err)
	}
	if !exists {
		return missing
	}
	return nil
}

// GetByID implements store.MissionStore.GetByID.
func (s *MissionStore) GetByID(ctx context.Context, id int64) (*domain.Mission, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := database.Rebind(s.dialect, `
		SELECT m.id, m.name, m.scientist_id, m.planet_id,
		       s.id, s.name, s.field_of_study,
		       p.id, p.name, p.distance_from_earth, p.nearest_star
		FROM missions m
		JOIN scientists s ON s.id = m.scientist_id
		JOIN planets p ON p.id = m.planet_id
		WHERE m.id = ?
	`)

	var (
		mission   domain.Mission
		scientist domain.Scientist
		planet    domain.Planet
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&mission.ID, &mission.Name, &mission.ScientistID, &mission.PlanetID,
		&scientist.ID, &scientist.Name, &scientist.FieldOfStudy,
		&planet.ID, &planet.Name, &planet.DistanceFromEarth, &planet.NearestStar,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("mission not found", slog.Int64("mission_id", id))
			return nil, store.ErrMissionNotFound
		}
		log.Error("failed to get mission by ID",
			slog.String("error", redact.Error(err)),
			slog.Int64("mission_id", id))
		return nil, store.NewStoreError("mission", "get", "query failed", err)
	}

	mission.Scientist = &scientist
	mission.Planet = &planet
	return &mission, nil
}

// ListByScientist implements store.MissionStore.ListByScientist.
func (s *MissionStore) ListByScientist(ctx context.Context, scientistID int64) ([]*domain.Mission, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := database.Rebind(s.dialect, `
		SELECT m.id, m.name, m.scientist_id, m.planet_id,
		       p.id, p.name, p.distance_from_earth, p.nearest_star
		FROM missions m
		JOIN planets p ON p.id = m.planet_id
		WHERE m.scientist_id = ?
		ORDER BY m.id
	`)
	rows, err := s.db.QueryContext(ctx, query, scientistID)
	if err != nil {
		log.Error("failed to list missions",
			slog.String("error", redact.Error(err)),
			slog.Int64("scientist_id", scientistID))
		return nil, store.NewStoreError("mission", "list", "query failed", err)
	}
	defer func() { _ = rows.Close() }()

	missions := make([]*domain.Mission, 0)
	for rows.Next() {
		var (
			mission domain.Mission
			planet  domain.Planet
		)
		if err := rows.Scan(
			&mission.ID, &mission.Name, &mission.ScientistID, &mission.PlanetID,
			&planet.ID, &planet.Name, &planet.DistanceFromEarth, &planet.NearestStar,
		); err != nil {
			return nil, store.NewStoreError("mission", "list", "scan failed", err)
		}
		mission.Planet = &planet
		missions = append(missions, &mission)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("mission", "list", "row iteration failed", err)
	}

	return missions, nil
}
