package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/cosmic-api/internal/domain"
)

// PlanetStore defines the interface for planet data persistence.
type PlanetStore interface {
	// Create inserts a planet and assigns its ID.
	Create(ctx context.Context, planet *domain.Planet) error

	// GetByID retrieves a planet by ID without expanding missions.
	// Returns ErrPlanetNotFound if the planet does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Planet, error)

	// List returns every planet in insertion order.
	List(ctx context.Context) ([]*domain.Planet, error)

	// Delete removes a planet and every mission that references it.
	// Returns ErrPlanetNotFound if the planet does not exist.
	// Must run inside RunInTransaction to be atomic.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a PlanetStore bound to the provided transaction.
	WithTx(tx *sql.Tx) PlanetStore
}
