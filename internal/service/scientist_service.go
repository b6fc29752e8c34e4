package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/cosmic-api/internal/domain"
	"github.com/phrazzld/cosmic-api/internal/platform/logger"
	"github.com/phrazzld/cosmic-api/internal/store"
)

// ScientistService provides scientist-related operations.
type ScientistService interface {
	// ListScientists returns every scientist without missions.
	ListScientists(ctx context.Context) ([]*domain.Scientist, error)

	// CreateScientist validates and stores a new scientist.
	CreateScientist(ctx context.Context, name, fieldOfStudy string) (*domain.Scientist, error)

	// GetScientist returns a scientist with its missions, each mission
	// carrying its planet.
	GetScientist(ctx context.Context, id int64) (*domain.Scientist, error)

	// ScientistExists returns ErrScientistNotFound when no scientist has id.
	ScientistExists(ctx context.Context, id int64) error

	// UpdateScientist applies the fields present in patch. Nothing is
	// written if any present field is invalid.
	UpdateScientist(ctx context.Context, id int64, patch domain.ScientistPatch) (*domain.Scientist, error)

	// DeleteScientist removes a scientist and all of its missions.
	DeleteScientist(ctx context.Context, id int64) error
}

type scientistServiceImpl struct {
	db         *sql.DB
	scientists store.ScientistStore
	missions   store.MissionStore
	logger     *slog.Logger
}

// NewScientistService creates a new ScientistService.
// It returns an error if any of the required dependencies are nil.
func NewScientistService(
	db *sql.DB,
	scientists store.ScientistStore,
	missions store.MissionStore,
	logger *slog.Logger,
) (ScientistService, error) {
	if db == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "db cannot be nil"}
	}
	if scientists == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "scientist store cannot be nil"}
	}
	if missions == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "mission store cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &scientistServiceImpl{
		db:         db,
		scientists: scientists,
		missions:   missions,
		logger:     logger.With(slog.String("component", "scientist_service")),
	}, nil
}

func (s *scientistServiceImpl) ListScientists(ctx context.Context) ([]*domain.Scientist, error) {
	scientists, err := s.scientists.List(ctx)
	if err != nil {
		return nil, NewServiceError("list_scientists", "failed to list scientists", err)
	}
	return scientists, nil
}

func (s *scientistServiceImpl) CreateScientist(
	ctx context.Context,
	name, fieldOfStudy string,
) (*domain.Scientist, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	scientist, err := domain.NewScientist(name, fieldOfStudy)
	if err != nil {
		log.Debug("rejected scientist", slog.String("error", err.Error()))
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.scientists.WithTx(tx).Create(ctx, scientist)
	})
	if err != nil {
		return nil, NewServiceError("create_scientist", "failed to save scientist", err)
	}

	return scientist, nil
}

func (s *scientistServiceImpl) GetScientist(ctx context.Context, id int64) (*domain.Scientist, error) {
	var scientist *domain.Scientist

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		found, err := s.scientists.WithTx(tx).GetByID(ctx, id)
		if err != nil {
			return err
		}
		missions, err := s.missions.WithTx(tx).ListByScientist(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load missions: %w", err)
		}
		found.Missions = missions
		scientist = found
		return nil
	})
	if err != nil {
		return nil, NewServiceError("get_scientist", "failed to load scientist", err)
	}

	return scientist, nil
}

func (s *scientistServiceImpl) ScientistExists(ctx context.Context, id int64) error {
	if _, err := s.scientists.GetByID(ctx, id); err != nil {
		return NewServiceError("scientist_exists", "failed to look up scientist", err)
	}
	return nil
}

func (s *scientistServiceImpl) UpdateScientist(
	ctx context.Context,
	id int64,
	patch domain.ScientistPatch,
) (*domain.Scientist, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	var scientist *domain.Scientist

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.scientists.WithTx(tx)

		found, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := found.Apply(patch); err != nil {
			log.Debug("rejected scientist patch",
				slog.Int64("scientist_id", id),
				slog.String("error", err.Error()))
			return err
		}
		if err := txStore.Update(ctx, found); err != nil {
			return err
		}
		scientist = found
		return nil
	})
	if err != nil {
		return nil, NewServiceError("update_scientist", "failed to update scientist", err)
	}

	return scientist, nil
}

func (s *scientistServiceImpl) DeleteScientist(ctx context.Context, id int64) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.scientists.WithTx(tx).Delete(ctx, id)
	})
	if err != nil {
		return NewServiceError("delete_scientist", "failed to delete scientist", err)
	}
	return nil
}
