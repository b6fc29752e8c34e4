package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/cosmic-api/internal/platform/logger"
	"github.com/phrazzld/cosmic-api/internal/redact"
)

// ValidationErrorsMessage is the only entry ever returned in an errors list.
const ValidationErrorsMessage = "validation errors"

// ErrorResponse is the body for single-message errors such as 404s.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorsResponse is the body for rejected input.
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// ResponseOption defines a function to customize response behavior.
type ResponseOption func(*responseOptions)

type responseOptions struct {
	elevateLogLevel bool
	errorKind       string
}

// WithElevatedLogLevel returns a ResponseOption that raises 4xx errors to WARN level
// instead of the default DEBUG level.
func WithElevatedLogLevel() ResponseOption {
	return func(opts *responseOptions) {
		opts.elevateLogLevel = true
	}
}

// WithErrorKind tags the logged error with a classification that is never
// exposed to the client.
func WithErrorKind(kind string) ResponseOption {
	return func(opts *responseOptions) {
		opts.errorKind = kind
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

// RespondWithStatus writes a status code with an empty body.
func RespondWithStatus(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
}

// RespondWithError writes a JSON error response with the given status code and message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	logger.FromContext(r.Context()).Debug("sending error response",
		slog.Int("status_code", status),
		slog.String("message", message),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	RespondWithJSON(w, r, status, ErrorResponse{Error: message})
}

// RespondWithValidationErrors writes the generic 400 body for rejected input.
func RespondWithValidationErrors(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, r, http.StatusBadRequest, ErrorsResponse{
		Errors: []string{ValidationErrorsMessage},
	})
}

// RespondWithErrorAndLog logs err (redacted) and writes body with status.
// The raw error never reaches the client.
//
// Log level strategy:
// - 5xx errors: Always logged at ERROR level
// - 4xx errors: By default logged at DEBUG level
// - WithElevatedLogLevel raises 4xx errors to WARN
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	body interface{},
	err error,
	opts ...ResponseOption,
) {
	logAttrs := []slog.Attr{
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
	}

	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	responseOpts := responseOptions{}
	for _, opt := range opts {
		opt(&responseOpts)
	}
	if responseOpts.errorKind != "" {
		logAttrs = append(logAttrs, slog.String("error_kind", responseOpts.errorKind))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	} else if responseOpts.elevateLogLevel && status >= http.StatusBadRequest {
		logLevel = slog.LevelWarn
	}

	logger.FromContext(r.Context()).LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, body)
}
