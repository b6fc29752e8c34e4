package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/cosmic-api/internal/api/shared"
	"github.com/phrazzld/cosmic-api/internal/platform/logger"
	"github.com/phrazzld/cosmic-api/internal/service"
)

// MissionHandler handles mission-related HTTP requests
type MissionHandler struct {
	missionService service.MissionService
	logger         *slog.Logger
}

// NewMissionHandler creates a new MissionHandler
func NewMissionHandler(missionService service.MissionService, logger *slog.Logger) *MissionHandler {
	if missionService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("missionService cannot be nil for MissionHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &MissionHandler{
		missionService: missionService,
		logger:         logger.With(slog.String("component", "mission_handler")),
	}
}

// CreateMission handles POST /missions requests.
// Unknown scientists or planets are answered exactly like invalid input.
func (h *MissionHandler) CreateMission(w http.ResponseWriter, r *http.Request) {
	var req CreateMissionRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		handleMalformedRequest(w, r, err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			shared.ErrorsResponse{Errors: []string{shared.ValidationErrorsMessage}},
			err, shared.WithErrorKind(ErrorKindValidation))
		return
	}

	mission, err := h.missionService.CreateMission(r.Context(), req.Name, req.ScientistID, req.PlanetID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("mission created",
		slog.Int64("mission_id", mission.ID),
		slog.Int64("scientist_id", mission.ScientistID),
		slog.Int64("planet_id", mission.PlanetID))
	shared.RespondWithJSON(w, r, http.StatusCreated, MissionCreatedView(mission))
}
