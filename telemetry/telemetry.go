// Package telemetry builds the OpenTelemetry tracer provider used by
// command-line tools to export perf timer spans over OTLP/HTTP.
//
// Tracing is off unless OTEL_ENABLED=true and a traces endpoint is set. When
// off, Initialize hands back a no-op provider so callers never need to check.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/amp-labs/amp-toolkit/envutil"
	"github.com/amp-labs/amp-toolkit/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	defaultServiceVersion = "1.0.0"
	defaultTimeout        = 5 * time.Second
)

// Config holds the OpenTelemetry configuration.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	Endpoint       string
	Enabled        bool
	Timeout        time.Duration
}

// ShutdownFunc flushes and stops the provider returned by Initialize.
type ShutdownFunc func(ctx context.Context) error

// LoadConfigFromEnv reads:
//
//	OTEL_ENABLED                         true to export spans (default false)
//	OTEL_SERVICE_NAME                    defaults to serviceName
//	OTEL_SERVICE_VERSION                 defaults to 1.0.0
//	OTEL_EXPORTER_OTLP_TRACES_ENDPOINT   collector URL, e.g. http://localhost:4318
//	OTEL_EXPORTER_OTLP_TRACES_TIMEOUT    export timeout (default 5s)
func LoadConfigFromEnv(serviceName, environment string) (*Config, error) {
	enabled, err := envutil.Bool("OTEL_ENABLED", envutil.Default(false)).Value()
	if err != nil {
		return nil, err
	}

	svcName, err := envutil.String("OTEL_SERVICE_NAME", envutil.Default(serviceName)).Value()
	if err != nil {
		return nil, err
	}

	svcVersion, err := envutil.String("OTEL_SERVICE_VERSION",
		envutil.Default(defaultServiceVersion)).
		Value()
	if err != nil {
		return nil, err
	}

	endpoint, err := envutil.String("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", envutil.Default("")).Value()
	if err != nil {
		return nil, err
	}

	timeout, err := envutil.Duration("OTEL_EXPORTER_OTLP_TRACES_TIMEOUT",
		envutil.Default(defaultTimeout)).
		Value()
	if err != nil {
		return nil, err
	}

	return &Config{
		ServiceName:    svcName,
		ServiceVersion: svcVersion,
		Environment:    environment,
		Endpoint:       endpoint,
		Enabled:        enabled,
		Timeout:        timeout,
	}, nil
}

func noopShutdown(context.Context) error { return nil }

// Initialize returns a tracer provider for config and the function that shuts
// it down. A disabled or endpoint-less config yields a no-op provider. An
// exporting provider is also installed as the global one.
func Initialize(ctx context.Context, config *Config) (trace.TracerProvider, ShutdownFunc, error) {
	log := logger.Get(ctx)

	if !config.Enabled {
		log.Debug("OpenTelemetry tracing is disabled")

		return noop.NewTracerProvider(), noopShutdown, nil
	}

	if config.Endpoint == "" {
		log.Warn("OpenTelemetry endpoint not configured, tracing will be disabled")

		return noop.NewTracerProvider(), noopShutdown, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(config.ServiceName),
			semconv.ServiceVersionKey.String(config.ServiceVersion),
			semconv.DeploymentEnvironmentKey.String(config.Environment),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create resource: %w", err)
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(config.Endpoint),
		otlptracehttp.WithTimeout(config.Timeout),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log.Info("OpenTelemetry tracing initialized",
		"service", config.ServiceName,
		"version", config.ServiceVersion,
		"environment", config.Environment,
		"endpoint", config.Endpoint,
	)

	return provider, func(ctx context.Context) error {
		log.Debug("Shutting down OpenTelemetry tracer provider")

		return provider.Shutdown(ctx)
	}, nil
}
