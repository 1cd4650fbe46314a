// SPDX-License-Identifier: MIT

package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// NoopMetrics is a MetricsRecorder that does nothing.
type NoopMetrics struct{}

var _ MetricsRecorder = NoopMetrics{}

// RecordStage does nothing.
func (NoopMetrics) RecordStage(_ context.Context, _ string, _ time.Duration) {}

// RecordRun does nothing.
func (NoopMetrics) RecordRun(_ context.Context, _ bool, _ time.Duration) {}

// RecordCover does nothing.
func (NoopMetrics) RecordCover(_ context.Context, _ Cover) {}

// NoopSpanManager is a SpanManager that does nothing.
type NoopSpanManager struct{}

var _ SpanManager = NoopSpanManager{}

var noopSpan = noop.Span{}

// StartRunSpan returns ctx unchanged and a no-op span.
func (NoopSpanManager) StartRunSpan(ctx context.Context, _ string, _, _ int) (context.Context, trace.Span) {
	return ctx, noopSpan
}

// StartStageSpan returns ctx unchanged and a no-op span.
func (NoopSpanManager) StartStageSpan(ctx context.Context, _ string) (context.Context, trace.Span) {
	return ctx, noopSpan
}

// EndSpanWithError does nothing.
func (NoopSpanManager) EndSpanWithError(_ trace.Span, _ error) {}

// AddSpanEvent does nothing.
func (NoopSpanManager) AddSpanEvent(_ context.Context, _ string, _ ...attribute.KeyValue) {}
