package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/cosmic-api/internal/domain"
)

// MissionStore defines the interface for mission data persistence.
type MissionStore interface {
	// Create inserts a validated mission and assigns its ID.
	// Returns ErrUnknownScientist or ErrUnknownPlanet (both wrapping
	// ErrInvalidEntity) when a referenced parent does not exist.
	Create(ctx context.Context, mission *domain.Mission) error

	// GetByID retrieves a mission with its Scientist and Planet populated.
	// Returns ErrMissionNotFound if the mission does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Mission, error)

	// ListByScientist returns the scientist's missions in insertion order,
	// each with its Planet populated. Scientist is left nil on every mission.
	ListByScientist(ctx context.Context, scientistID int64) ([]*domain.Mission, error)

	// WithTx returns a MissionStore bound to the provided transaction.
	WithTx(tx *sql.Tx) MissionStore
}
