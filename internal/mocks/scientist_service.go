package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/cosmic-api/internal/domain"
	"github.com/phrazzld/cosmic-api/internal/service"
)

// MockScientistService implements service.ScientistService for testing
type MockScientistService struct {
	ListScientistsFn  func(ctx context.Context) ([]*domain.Scientist, error)
	CreateScientistFn func(ctx context.Context, name, fieldOfStudy string) (*domain.Scientist, error)
	GetScientistFn    func(ctx context.Context, id int64) (*domain.Scientist, error)
	ScientistExistsFn func(ctx context.Context, id int64) error
	UpdateScientistFn func(ctx context.Context, id int64, patch domain.ScientistPatch) (*domain.Scientist, error)
	DeleteScientistFn func(ctx context.Context, id int64) error

	// Default response values
	Scientist  *domain.Scientist
	Scientists []*domain.Scientist
	Err        error

	mu    sync.Mutex
	calls map[string]int
}

var _ service.ScientistService = (*MockScientistService)(nil)

func (m *MockScientistService) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
}

// Calls returns how many times method was invoked.
func (m *MockScientistService) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

// ListScientists implements service.ScientistService
func (m *MockScientistService) ListScientists(ctx context.Context) ([]*domain.Scientist, error) {
	m.record("ListScientists")
	if m.ListScientistsFn != nil {
		return m.ListScientistsFn(ctx)
	}
	return m.Scientists, m.Err
}

// CreateScientist implements service.ScientistService
func (m *MockScientistService) CreateScientist(
	ctx context.Context,
	name, fieldOfStudy string,
) (*domain.Scientist, error) {
	m.record("CreateScientist")
	if m.CreateScientistFn != nil {
		return m.CreateScientistFn(ctx, name, fieldOfStudy)
	}
	return m.Scientist, m.Err
}

// GetScientist implements service.ScientistService
func (m *MockScientistService) GetScientist(ctx context.Context, id int64) (*domain.Scientist, error) {
	m.record("GetScientist")
	if m.GetScientistFn != nil {
		return m.GetScientistFn(ctx, id)
	}
	return m.Scientist, m.Err
}

// ScientistExists implements service.ScientistService
func (m *MockScientistService) ScientistExists(ctx context.Context, id int64) error {
	m.record("ScientistExists")
	if m.ScientistExistsFn != nil {
		return m.ScientistExistsFn(ctx, id)
	}
	return m.Err
}

// UpdateScientist implements service.ScientistService
func (m *MockScientistService) UpdateScientist(
	ctx context.Context,
	id int64,
	patch domain.ScientistPatch,
) (*domain.Scientist, error) {
	m.record("UpdateScientist")
	if m.UpdateScientistFn != nil {
		return m.UpdateScientistFn(ctx, id, patch)
	}
	return m.Scientist, m.Err
}

// DeleteScientist implements service.ScientistService
func (m *MockScientistService) DeleteScientist(ctx context.Context, id int64) error {
	m.record("DeleteScientist")
	if m.DeleteScientistFn != nil {
		return m.DeleteScientistFn(ctx, id)
	}
	return m.Err
}
