// SPDX-License-Identifier: MIT

package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer uses the global OTel tracer provider.
var tracer = otel.Tracer("statecover")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartRunSpan starts the span covering a whole extraction.
	StartRunSpan(ctx context.Context, runID string, states, actions int) (context.Context, trace.Span)

	// StartStageSpan starts a child span for one pipeline stage.
	StartStageSpan(ctx context.Context, stage string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the span in ctx.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

type otelSpanManager struct{}

// NewSpanManager returns a SpanManager backed by the global OTel tracer
// provider. Configure it with otel.SetTracerProvider first.
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

func (m *otelSpanManager) StartRunSpan(ctx context.Context, runID string, states, actions int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "statecover.extract",
		trace.WithAttributes(
			attribute.String("run.id", runID),
			attribute.Int("graph.states", states),
			attribute.Int("graph.actions", actions),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

func (m *otelSpanManager) StartStageSpan(ctx context.Context, stage string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "statecover.stage."+stage,
		trace.WithAttributes(attribute.String("stage", stage)),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
