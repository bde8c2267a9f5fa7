package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

const defaultPublishInterval = 30 * time.Second

func noopShutdown(context.Context) error { return nil }

func newMeterProvider(ctx context.Context, res *resource.Resource, collectors []CollectorConfig) (metric.MeterProvider, shutdownFn, error) {
	if len(collectors) == 0 {
		return metricnoop.NewMeterProvider(), noopShutdown, nil
	}

	providerOptions := []sdkmetric.Option{sdkmetric.WithResource(res)}
	for _, collector := range collectors {
		if collector.Endpoint == "" {
			return nil, nil, fmt.Errorf("collector endpoint required")
		}
		opts := []otlpmetrichttp.Option{
			otlpmetrichttp.WithEndpoint(collector.Endpoint),
			otlpmetrichttp.WithHeaders(collector.Headers),
		}
		if collector.Insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		exporter, err := otlpmetrichttp.New(ctx, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create metrics exporter: %w", err)
		}
		interval := collector.PublishInterval
		if interval == 0 {
			interval = defaultPublishInterval
		}
		providerOptions = append(providerOptions, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval))))
	}

	provider := sdkmetric.NewMeterProvider(providerOptions...)
	return provider, provider.Shutdown, nil
}

func newTracerProvider(ctx context.Context, res *resource.Resource, collectors []CollectorConfig) (trace.TracerProvider, shutdownFn, error) {
	if len(collectors) == 0 {
		return tracenoop.NewTracerProvider(), noopShutdown, nil
	}

	providerOptions := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	for _, collector := range collectors {
		if collector.Endpoint == "" {
			return nil, nil, fmt.Errorf("collector endpoint required")
		}
		opts := []otlptracehttp.Option{
			otlptracehttp.WithEndpoint(collector.Endpoint),
			otlptracehttp.WithHeaders(collector.Headers),
		}
		if collector.Insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		exporter, err := otlptracehttp.New(ctx, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create trace exporter: %w", err)
		}
		var bspOpts []sdktrace.BatchSpanProcessorOption
		if collector.PublishInterval > 0 {
			bspOpts = append(bspOpts, sdktrace.WithBatchTimeout(collector.PublishInterval))
		}
		providerOptions = append(providerOptions, sdktrace.WithSpanProcessor(sdktrace.NewBatchSpanProcessor(exporter, bspOpts...)))
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	provider := sdktrace.NewTracerProvider(providerOptions...)
	return provider, provider.Shutdown, nil
}
