package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/cosmic-api/internal/domain"
)

// ScientistStore defines the interface for scientist data persistence.
type ScientistStore interface {
	// Create inserts a validated scientist and assigns its ID.
	// Returns validation errors from the domain if data is invalid.
	Create(ctx context.Context, scientist *domain.Scientist) error

	// GetByID retrieves a scientist by ID without expanding missions.
	// Returns ErrScientistNotFound if the scientist does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Scientist, error)

	// List returns every scientist in insertion order.
	// Returns an empty slice if there are none.
	List(ctx context.Context) ([]*domain.Scientist, error)

	// Update commits the scientist's name and field of study.
	// Returns ErrScientistNotFound if the scientist does not exist.
	Update(ctx context.Context, scientist *domain.Scientist) error

	// Delete removes a scientist and every mission that references it.
	// Returns ErrScientistNotFound if the scientist does not exist.
	//
	// IMPORTANT: dependent missions are deleted explicitly before the parent row,
	// so this must run inside RunInTransaction to be atomic.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a ScientistStore bound to the provided transaction.
	WithTx(tx *sql.Tx) ScientistStore
}
