package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/cosmic-api/internal/domain"
	"github.com/phrazzld/cosmic-api/internal/service"
)

// MockMissionService implements service.MissionService for testing
type MockMissionService struct {
	CreateMissionFn func(ctx context.Context, name string, scientistID, planetID int64) (*domain.Mission, error)

	Mission *domain.Mission
	Err     error

	mu          sync.Mutex
	createCalls int
}

var _ service.MissionService = (*MockMissionService)(nil)

// CreateMission implements service.MissionService
func (m *MockMissionService) CreateMission(
	ctx context.Context,
	name string,
	scientistID, planetID int64,
) (*domain.Mission, error) {
	m.mu.Lock()
	m.createCalls++
	m.mu.Unlock()

	if m.CreateMissionFn != nil {
		return m.CreateMissionFn(ctx, name, scientistID, planetID)
	}
	return m.Mission, m.Err
}

// CreateCalls returns how many times CreateMission was invoked.
func (m *MockMissionService) CreateCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
}
