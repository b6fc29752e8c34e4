package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/cosmic-api/internal/domain"
	"github.com/phrazzld/cosmic-api/internal/store"
)

// PlanetService provides planet-related operations.
type PlanetService interface {
	// ListPlanets returns every planet without missions.
	ListPlanets(ctx context.Context) ([]*domain.Planet, error)
}

type planetServiceImpl struct {
	planets store.PlanetStore
	logger  *slog.Logger
}

// NewPlanetService creates a new PlanetService.
func NewPlanetService(planets store.PlanetStore, logger *slog.Logger) (PlanetService, error) {
	if planets == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "planet store cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &planetServiceImpl{
		planets: planets,
		logger:  logger.With(slog.String("component", "planet_service")),
	}, nil
}

func (s *planetServiceImpl) ListPlanets(ctx context.Context) ([]*domain.Planet, error) {
	planets, err := s.planets.List(ctx)
	if err != nil {
		return nil, NewServiceError("list_planets", "failed to list planets", err)
	}
	return planets, nil
}
