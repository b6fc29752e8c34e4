package mocks

import (
	"context"

	"github.com/phrazzld/cosmic-api/internal/domain"
	"github.com/phrazzld/cosmic-api/internal/service"
)

// MockPlanetService implements service.PlanetService for testing
type MockPlanetService struct {
	ListPlanetsFn func(ctx context.Context) ([]*domain.Planet, error)

	Planets []*domain.Planet
	Err     error
}

var _ service.PlanetService = (*MockPlanetService)(nil)

// ListPlanets implements service.PlanetService
func (m *MockPlanetService) ListPlanets(ctx context.Context) ([]*domain.Planet, error) {
	if m.ListPlanetsFn != nil {
		return m.ListPlanetsFn(ctx)
	}
	return m.Planets, m.Err
}
