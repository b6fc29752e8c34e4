package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/cosmic-api/internal/api"
	apiMiddleware "github.com/phrazzld/cosmic-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)
	if app.metrics != nil {
		r.Use(app.metrics.Middleware)
	}
	r.Use(apiMiddleware.Tracing)

	scientistHandler := api.NewScientistHandler(app.scientistService, app.logger)
	planetHandler := api.NewPlanetHandler(app.planetService, app.logger)
	missionHandler := api.NewMissionHandler(app.missionService, app.logger)

	// Health probe
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/scientists", scientistHandler.ListScientists)
	r.Post("/scientists", scientistHandler.CreateScientist)
	r.Get("/scientists/{id}", scientistHandler.GetScientist)
	r.Patch("/scientists/{id}", scientistHandler.UpdateScientist)
	r.Delete("/scientists/{id}", scientistHandler.DeleteScientist)

	r.Get("/planets", planetHandler.ListPlanets)
	r.Post("/missions", missionHandler.CreateMission)

	if app.metrics != nil {
		r.Method(http.MethodGet, "/metrics", app.metrics.Handler())
	}

	return r
}
