package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/version"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name reported on the resource.
	ServiceName string
	// ServiceVersion is the version reported on the resource.
	ServiceVersion string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows plain HTTP connections.
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: version.GetShortVersion(),
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the instruments recorded by observed sequence stages.
type Metrics struct {
	elements metric.Int64Counter
	errors   metric.Int64Counter
	length   metric.Int64Histogram
	duration metric.Float64Histogram
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	elements, err := meter.Int64Counter(MetricElements,
		metric.WithDescription("Elements pulled through an observed stage"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricElements, err)
	}

	errorTotal, err := meter.Int64Counter(MetricErrors,
		metric.WithDescription("Errors raised while pulling an observed stage, by code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricErrors, err)
	}

	length, err := meter.Int64Histogram(MetricLength,
		metric.WithDescription("Elements produced by a completed run"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricLength, err)
	}

	duration, err := meter.Float64Histogram(MetricDuration,
		metric.WithDescription("Time from first pull to completion in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricDuration, err)
	}

	return &Metrics{
		elements: elements,
		errors:   errorTotal,
		length:   length,
		duration: duration,
	}, nil
}

// DefaultMetrics creates instruments on the global meter provider.
func DefaultMetrics() (*Metrics, error) {
	return NewMetrics(Meter(instrumentationName))
}

// RecordElement counts one element pulled through stage.
func (m *Metrics) RecordElement(ctx context.Context, stage string) {
	m.elements.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrStage, stage)))
}

// RecordError counts a failure of stage under the error's code.
func (m *Metrics) RecordError(ctx context.Context, stage string, err error) {
	m.errors.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrStage, stage),
		attribute.String(AttrErrorCode, errorCode(err)),
	))
}

// RecordCompleted records the length and duration of a finished run.
func (m *Metrics) RecordCompleted(ctx context.Context, stage, status string, n int64, d time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String(AttrStage, stage),
		attribute.String(AttrStatus, status),
	)
	m.length.Record(ctx, n, attrs)
	m.duration.Record(ctx, d.Seconds(), attrs)
}

func errorCode(err error) string {
	if code := errors.CodeOf(err); code != "" {
		return string(code)
	}
	return string(errors.ErrCodeInternal)
}
