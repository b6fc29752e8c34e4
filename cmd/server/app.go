package main

import (
	"context"
	"fmt"
	"log/slog"

	apiMiddleware "github.com/phrazzld/cosmic-api/internal/api/middleware"
	"github.com/phrazzld/cosmic-api/internal/config"
	"github.com/phrazzld/cosmic-api/internal/platform/database"
	"github.com/phrazzld/cosmic-api/internal/platform/sqlstore"
	"github.com/phrazzld/cosmic-api/internal/service"
	"github.com/phrazzld/cosmic-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *database.DB

	scientistStore store.ScientistStore
	planetStore    store.PlanetStore
	missionStore   store.MissionStore

	scientistService service.ScientistService
	planetService    service.PlanetService
	missionService   service.MissionService

	// metrics is nil when metrics are disabled.
	metrics *apiMiddleware.Metrics
}

// newApplication creates a new application instance with all dependencies initialized.
// The database must already be open and migrated.
func newApplication(cfg *config.Config, logger *slog.Logger, db *database.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.scientistStore = sqlstore.NewScientistStore(db, db.Dialect, logger)
	app.planetStore = sqlstore.NewPlanetStore(db, db.Dialect, logger)
	app.missionStore = sqlstore.NewMissionStore(db, db.Dialect, logger)

	var err error
	app.scientistService, err = service.NewScientistService(db.DB, app.scientistStore, app.missionStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create scientist service: %w", err)
	}
	app.planetService, err = service.NewPlanetService(app.planetStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create planet service: %w", err)
	}
	app.missionService, err = service.NewMissionService(db.DB, app.missionStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create mission service: %w", err)
	}

	if cfg.Server.MetricsEnabled {
		app.metrics = apiMiddleware.NewMetrics("cosmic")
	}

	logger.Info("application initialized successfully",
		slog.String("dialect", string(db.Dialect)))
	return app, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}
}
