package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// ciEnvVars are copied onto every record when present.
var ciEnvVars = map[string]string{
	"GITHUB_RUN_ID":     "ci_run_id",
	"GITHUB_WORKFLOW":   "ci_workflow",
	"GITHUB_JOB":        "ci_job",
	"GITHUB_SHA":        "ci_commit",
	"GITHUB_REF_NAME":   "ci_ref",
	"GITHUB_REPOSITORY": "ci_repository",
}

// CIHandler is a slog.Handler that adds CI environment metadata to every record.
type CIHandler struct {
	handler  slog.Handler
	metadata []slog.Attr
}

// NewCIHandler creates a CIHandler writing JSON to out.
func NewCIHandler(out io.Writer, opts *slog.HandlerOptions) *CIHandler {
	return &CIHandler{
		handler:  slog.NewJSONHandler(out, opts),
		metadata: ciMetadata(os.Getenv),
	}
}

func ciMetadata(getenv func(string) string) []slog.Attr {
	attrs := []slog.Attr{slog.Bool("ci", true)}
	for env, key := range ciEnvVars {
		if v := getenv(env); v != "" {
			attrs = append(attrs, slog.String(key, v))
		}
	}
	return attrs
}

// Enabled implements slog.Handler.
func (h *CIHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// WithAttrs implements slog.Handler.
func (h *CIHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CIHandler{handler: h.handler.WithAttrs(attrs), metadata: h.metadata}
}

// WithGroup implements slog.Handler.
func (h *CIHandler) WithGroup(name string) slog.Handler {
	return &CIHandler{handler: h.handler.WithGroup(name), metadata: h.metadata}
}

// Handle implements slog.Handler.
func (h *CIHandler) Handle(ctx context.Context, record slog.Record) error {
	enhanced := record.Clone()
	enhanced.AddAttrs(h.metadata...)
	return h.handler.Handle(ctx, enhanced)
}
