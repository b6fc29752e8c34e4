// Package telemetry sets up OpenTelemetry tracing for the service.
package telemetry

import (
	"context"
	"log/slog"

	"github.com/phrazzld/cosmic-api/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ShutdownFunc flushes pending spans and releases the exporter.
type ShutdownFunc func(context.Context) error

// Setup initialises tracing from cfg.
//
// Tracing is opt-in: when cfg.OTLPEndpoint is empty Setup returns a no-op
// shutdown function and no global provider is registered. The W3C trace
// context propagator is installed either way so incoming traceparent
// headers are honored by the request middleware.
func Setup(ctx context.Context, cfg config.TelemetryConfig, logger *slog.Logger) (ShutdownFunc, error) {
	noop := func(context.Context) error { return nil }
	if logger == nil {
		logger = slog.Default()
	}

	otel.SetTextMapPropagator(propagation.TraceContext{})

	if cfg.OTLPEndpoint == "" {
		logger.Debug("tracing disabled, no OTLP endpoint configured")
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(cfg.OTLPEndpoint),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	)
	otel.SetTracerProvider(tp)

	logger.Info("tracing enabled",
		slog.String("endpoint", cfg.OTLPEndpoint),
		slog.String("service_name", cfg.ServiceName))

	return tp.Shutdown, nil
}
