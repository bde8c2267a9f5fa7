// Package telemetry wires OpenTelemetry meter and tracer providers for the
// client and exposes small instrument wrappers.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.opentelemetry.io/otel/trace"
)

type shutdownFn func(context.Context) error

// CollectorConfig points at an OTLP/HTTP collector. The same collectors
// receive both metrics and traces.
type CollectorConfig struct {
	Endpoint        string
	Insecure        bool
	Headers         map[string]string
	PublishInterval time.Duration
}

type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	Collectors     []CollectorConfig
}

type Telemetry struct {
	Metrics     metric.MeterProvider
	Traces      trace.TracerProvider
	shutdownFns []shutdownFn
}

// New builds providers and installs them as the otel globals. With no
// collectors configured both providers are noops.
func New(ctx context.Context, cfg Config, resourceOpts ...resource.Option) (*Telemetry, error) {
	if cfg.ServiceName == "" {
		return nil, fmt.Errorf("telemetry service name required")
	}
	if cfg.ServiceVersion == "" {
		return nil, fmt.Errorf("telemetry service version required")
	}
	if cfg.Environment == "" {
		cfg.Environment = "production"
	}

	var rsrcOpts []resource.Option
	rsrcOpts = append(rsrcOpts, resource.WithAttributes(
		semconv.ServiceNameKey.String(cfg.ServiceName),
		semconv.ServiceVersionKey.String(cfg.ServiceVersion),
		semconv.DeploymentEnvironmentNameKey.String(cfg.Environment),
	))
	rsrcOpts = append(rsrcOpts, resourceOpts...)

	rsrc, err := resource.New(ctx, rsrcOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	metricsProvider, metricShutdownFn, err := newMeterProvider(ctx, rsrc, cfg.Collectors)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}

	traceProvider, traceShutdownFn, err := newTracerProvider(ctx, rsrc, cfg.Collectors)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace provider: %w", err)
	}

	otel.SetMeterProvider(metricsProvider)
	otel.SetTracerProvider(traceProvider)

	return &Telemetry{
		Metrics:     metricsProvider,
		Traces:      traceProvider,
		shutdownFns: []shutdownFn{metricShutdownFn, traceShutdownFn},
	}, nil
}

func (t *Telemetry) Shutdown(ctx context.Context) error {
	for _, fn := range t.shutdownFns {
		if err := fn(ctx); err != nil {
			return err
		}
	}
	return nil
}
