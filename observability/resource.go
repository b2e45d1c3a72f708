package observability

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"github.com/kbukum/seqkit/version"
)

const instrumentationName = version.ModulePath

// Instrument names.
const (
	MetricElements = "sequence.elements"
	MetricErrors   = "sequence.errors"
	MetricLength   = "sequence.length"
	MetricDuration = "sequence.duration"
)

// SpanRun names the span covering one observed run.
const SpanRun = "sequence.run"

// Attribute keys.
const (
	AttrStage        = "sequence.stage"
	AttrRunID        = "sequence.run_id"
	AttrElements     = "sequence.elements"
	AttrStatus       = "status"
	AttrDurationMs   = "duration_ms"
	AttrErrorCode    = "error.code"
	AttrErrorMessage = "error.message"
)

// Run statuses.
const (
	StatusOK        = "ok"
	StatusError     = "error"
	StatusCancelled = "cancelled"
)

// newResource creates an OpenTelemetry resource with service metadata.
// The schemaless form merges with the SDK default resource regardless of
// which semconv version the SDK was built against.
func newResource(serviceName, serviceVersion string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
			attribute.String("library.name", instrumentationName),
		),
	)
}
