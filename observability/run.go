package observability

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Run tracks one observed pass over a sequence: a span from the first pull
// to completion plus the stage's metrics. If Metrics is nil, metric recording
// is skipped.
type Run struct {
	// ID identifies the run on its span.
	ID        string
	Stage     string
	StartTime time.Time
	Metrics   *Metrics

	ctx      context.Context
	span     trace.Span
	elements int64
	ended    bool
}

// StartRun starts the run span under ctx.
func StartRun(ctx context.Context, stage string, metrics *Metrics) *Run {
	id := uuid.New().String()
	ctx, span := StartSpan(ctx, SpanRun, trace.WithAttributes(
		attribute.String(AttrStage, stage),
		attribute.String(AttrRunID, id),
	))
	return &Run{
		ID:        id,
		Stage:     stage,
		StartTime: time.Now(),
		Metrics:   metrics,
		ctx:       ctx,
		span:      span,
	}
}

// Context returns the context carrying the run span.
func (r *Run) Context() context.Context { return r.ctx }

// Elements returns the number of elements seen so far.
func (r *Run) Elements() int64 { return r.elements }

// Element records one element passing through.
func (r *Run) Element() {
	r.elements++
	if r.Metrics != nil {
		r.Metrics.RecordElement(r.ctx, r.Stage)
	}
}

// Fail records err and ends the run with StatusError.
func (r *Run) Fail(err error) {
	if r.ended {
		return
	}
	if r.Metrics != nil {
		r.Metrics.RecordError(r.ctx, r.Stage, err)
	}
	r.span.RecordError(err)
	r.span.SetStatus(codes.Error, err.Error())
	r.span.SetAttributes(
		attribute.String(AttrErrorCode, errorCode(err)),
		attribute.String(AttrErrorMessage, err.Error()),
	)
	r.End(StatusError)
}

// End ends the span and records completion metrics. Only the first call has
// an effect.
func (r *Run) End(status string) {
	if r.ended {
		return
	}
	r.ended = true
	duration := r.Duration()

	r.span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int64(AttrElements, r.elements),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	r.span.End()

	if r.Metrics != nil {
		r.Metrics.RecordCompleted(r.ctx, r.Stage, status, r.elements, duration)
	}
}

// Ended reports whether End has been called.
func (r *Run) Ended() bool { return r.ended }

// Duration returns the elapsed time since the run started.
func (r *Run) Duration() time.Duration {
	return time.Since(r.StartTime)
}
