package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/cosmic-api/internal/api/shared"
	"github.com/phrazzld/cosmic-api/internal/domain"
	"github.com/phrazzld/cosmic-api/internal/store"
)

// Error kinds recorded in logs. Clients only ever see the status code and
// the generic body for each kind.
const (
	ErrorKindValidation     = "validation"
	ErrorKindMalformed      = "malformed_request"
	ErrorKindNotFound       = "not_found"
	ErrorKindForeignKey     = "foreign_key"
	ErrorKindInternal       = "internal"
	unexpectedErrorMessage  = "An unexpected error occurred"
	scientistNotFoundString = "Scientist not found"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// for errors rendered with a single "error" key.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrScientistNotFound):
		return scientistNotFoundString
	case errors.Is(err, store.ErrPlanetNotFound):
		return "Planet not found"
	case errors.Is(err, store.ErrMissionNotFound):
		return "Mission not found"
	default:
		return unexpectedErrorMessage
	}
}

// ErrorKind classifies err for logging.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return ErrorKindValidation
	case errors.Is(err, store.ErrInvalidEntity):
		return ErrorKindForeignKey
	case errors.Is(err, store.ErrNotFound):
		return ErrorKindNotFound
	default:
		return ErrorKindInternal
	}
}

// HandleAPIError writes the response for err. Validation and relational
// failures share the generic 400 body; not-found errors name the entity;
// everything else is a 500 with a fixed message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	kind := shared.WithErrorKind(ErrorKind(err))

	switch status {
	case http.StatusBadRequest:
		shared.RespondWithErrorAndLog(w, r, status,
			shared.ErrorsResponse{Errors: []string{shared.ValidationErrorsMessage}}, err, kind)
	default:
		shared.RespondWithErrorAndLog(w, r, status,
			shared.ErrorResponse{Error: GetSafeErrorMessage(err)}, err, kind)
	}
}

// handleMalformedRequest answers a body that could not be decoded.
func handleMalformedRequest(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
		shared.ErrorsResponse{Errors: []string{shared.ValidationErrorsMessage}},
		err, shared.WithErrorKind(ErrorKindMalformed))
}
