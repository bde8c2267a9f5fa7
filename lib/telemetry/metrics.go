package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Counter is a monotonically increasing int64 instrument. A nil *Counter
// discards all values.
type Counter struct {
	counter metric.Int64Counter
}

func NewCounter(meter metric.Meter, name, description, unit string) (*Counter, error) {
	if name == "" {
		return nil, fmt.Errorf("counter name required")
	}
	if description == "" {
		return nil, fmt.Errorf("counter description required")
	}
	counter, err := meter.Int64Counter(
		name,
		metric.WithDescription(description),
		metric.WithUnit(unit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create counter %s: %w", name, err)
	}
	return &Counter{counter: counter}, nil
}

func (c *Counter) Add(ctx context.Context, value int64, attrs ...attribute.KeyValue) {
	if c == nil {
		return
	}
	c.counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

func (c *Counter) Inc(ctx context.Context, attrs ...attribute.KeyValue) {
	c.Add(ctx, 1, attrs...)
}

// Timer records durations in seconds. A nil *Timer discards all values.
type Timer struct {
	histogram metric.Float64Histogram
}

func NewTimer(meter metric.Meter, name, description string, boundaries []float64) (*Timer, error) {
	if name == "" {
		return nil, fmt.Errorf("timer name required")
	}
	if description == "" {
		return nil, fmt.Errorf("timer description required")
	}
	if len(boundaries) == 0 {
		return nil, fmt.Errorf("timer boundaries required")
	}
	histogram, err := meter.Float64Histogram(
		name,
		metric.WithDescription(description),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(boundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create timer %s: %w", name, err)
	}
	return &Timer{histogram: histogram}, nil
}

func (t *Timer) Record(ctx context.Context, duration time.Duration, attrs ...attribute.KeyValue) {
	if t == nil {
		return
	}
	t.histogram.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}
