package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/cosmic-api/internal/api/shared"
	"github.com/phrazzld/cosmic-api/internal/platform/logger"
	"github.com/phrazzld/cosmic-api/internal/service"
	"github.com/phrazzld/cosmic-api/internal/store"
)

// ScientistHandler handles scientist-related HTTP requests
type ScientistHandler struct {
	scientistService service.ScientistService
	logger           *slog.Logger
}

// NewScientistHandler creates a new ScientistHandler
func NewScientistHandler(scientistService service.ScientistService, logger *slog.Logger) *ScientistHandler {
	if scientistService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("scientistService cannot be nil for ScientistHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ScientistHandler{
		scientistService: scientistService,
		logger:           logger.With(slog.String("component", "scientist_handler")),
	}
}

// ListScientists handles GET /scientists requests
func (h *ScientistHandler) ListScientists(w http.ResponseWriter, r *http.Request) {
	scientists, err := h.scientistService.ListScientists(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ScientistSummaryViews(scientists))
}

// CreateScientist handles POST /scientists requests
func (h *ScientistHandler) CreateScientist(w http.ResponseWriter, r *http.Request) {
	var req CreateScientistRequest
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

	scientist, err := h.scientistService.CreateScientist(r.Context(), req.Name, req.FieldOfStudy)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("scientist created",
		slog.Int64("scientist_id", scientist.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, ScientistSummaryView(scientist))
}

// GetScientist handles GET /scientists/{id} requests
func (h *ScientistHandler) GetScientist(w http.ResponseWriter, r *http.Request) {
	id, ok := h.scientistID(w, r)
	if !ok {
		return
	}

	scientist, err := h.scientistService.GetScientist(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ScientistDetailView(scientist))
}

// UpdateScientist handles PATCH /scientists/{id} requests.
// An unknown scientist is reported before the body is inspected.
func (h *ScientistHandler) UpdateScientist(w http.ResponseWriter, r *http.Request) {
	id, ok := h.scientistID(w, r)
	if !ok {
		return
	}

	var req UpdateScientistRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		if existsErr := h.scientistService.ScientistExists(r.Context(), id); existsErr != nil {
			HandleAPIError(w, r, existsErr)
			return
		}
		handleMalformedRequest(w, r, err)
		return
	}

	scientist, err := h.scientistService.UpdateScientist(r.Context(), id, req.Patch())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusAccepted, ScientistSummaryView(scientist))
}

// DeleteScientist handles DELETE /scientists/{id} requests
func (h *ScientistHandler) DeleteScientist(w http.ResponseWriter, r *http.Request) {
	id, ok := h.scientistID(w, r)
	if !ok {
		return
	}

	if err := h.scientistService.DeleteScientist(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("scientist deleted",
		slog.Int64("scientist_id", id))
	shared.RespondWithStatus(w, http.StatusNoContent)
}

// scientistID reads the {id} path parameter. A malformed ID cannot name a
// scientist, so it is answered as not found.
func (h *ScientistHandler) scientistID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusNotFound,
			shared.ErrorResponse{Error: GetSafeErrorMessage(store.ErrScientistNotFound)},
			err, shared.WithErrorKind(ErrorKindNotFound))
		return 0, false
	}
	return id, true
}
