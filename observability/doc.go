// Package observability provides OpenTelemetry metrics and tracing for
// observed sequence runs.
//
// Providers:
//
//	shutdown, err := observability.Setup(ctx, settings)
//	defer shutdown(ctx)
//
// Metrics:
//
//	metrics, err := observability.DefaultMetrics()
//	seq.Observe(ctx, "orders", metrics).ToSlice()
//
// Each observed run opens a "sequence.run" span on its first pull and ends it
// when the run completes, fails or is closed early.
package observability
