package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/cosmic-api/internal/api/shared"
	"github.com/phrazzld/cosmic-api/internal/service"
)

// PlanetHandler handles planet-related HTTP requests
type PlanetHandler struct {
	planetService service.PlanetService
	logger        *slog.Logger
}

// NewPlanetHandler creates a new PlanetHandler
func NewPlanetHandler(planetService service.PlanetService, logger *slog.Logger) *PlanetHandler {
	if planetService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("planetService cannot be nil for PlanetHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PlanetHandler{
		planetService: planetService,
		logger:        logger.With(slog.String("component", "planet_handler")),
	}
}

// ListPlanets handles GET /planets requests
func (h *PlanetHandler) ListPlanets(w http.ResponseWriter, r *http.Request) {
	planets, err := h.planetService.ListPlanets(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, PlanetSummaryViews(planets))
}
