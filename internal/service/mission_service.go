package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/cosmic-api/internal/domain"
	"github.com/phrazzld/cosmic-api/internal/platform/logger"
	"github.com/phrazzld/cosmic-api/internal/store"
)

// MissionService provides mission-related operations.
type MissionService interface {
	// CreateMission validates and stores a mission, returning it with both
	// parents populated. Unknown parents yield store.ErrUnknownScientist or
	// store.ErrUnknownPlanet.
	CreateMission(ctx context.Context, name string, scientistID, planetID int64) (*domain.Mission, error)
}

type missionServiceImpl struct {
	db       *sql.DB
	missions store.MissionStore
	logger   *slog.Logger
}

// NewMissionService creates a new MissionService.
func NewMissionService(db *sql.DB, missions store.MissionStore, logger *slog.Logger) (MissionService, error) {
	if db == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "db cannot be nil"}
	}
	if missions == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "mission store cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &missionServiceImpl{
		db:       db,
		missions: missions,
		logger:   logger.With(slog.String("component", "mission_service")),
	}, nil
}

func (s *missionServiceImpl) CreateMission(
	ctx context.Context,
	name string,
	scientistID, planetID int64,
) (*domain.Mission, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	mission, err := domain.NewMission(name, scientistID, planetID)
	if err != nil {
		log.Debug("rejected mission", slog.String("error", err.Error()))
		return nil, err
	}

	var created *domain.Mission
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.missions.WithTx(tx)
		if err := txStore.Create(ctx, mission); err != nil {
			return err
		}
		loaded, err := txStore.GetByID(ctx, mission.ID)
		if err != nil {
			return err
		}
		created = loaded
		return nil
	})
	if err != nil {
		return nil, NewServiceError("create_mission", "failed to save mission", err)
	}

	return created, nil
}
