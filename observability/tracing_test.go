package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func setupTracingTest(t *testing.T) (*tracetest.InMemoryExporter, func()) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	original := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	tracer = otel.Tracer("statecover")

	return exporter, func() {
		otel.SetTracerProvider(original)
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Logf("shutting down tracer provider: %v", err)
		}
	}
}

func TestRunAndStageSpans(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	m := NewSpanManager()
	ctx, run := m.StartRunSpan(context.Background(), "run-1", 4, 5)
	stageCtx, stage := m.StartStageSpan(ctx, "solve")
	m.AddSpanEvent(stageCtx, "flow found", attribute.Int("value", 3))
	m.EndSpanWithError(stage, nil)
	m.EndSpanWithError(run, nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)

	child, parent := spans[0], spans[1]
	assert.Equal(t, "statecover.stage.solve", child.Name)
	assert.Equal(t, "statecover.extract", parent.Name)
	assert.Equal(t, parent.SpanContext.SpanID(), child.Parent.SpanID())
	assert.Equal(t, codes.Ok, child.Status.Code)
	require.Len(t, child.Events, 1)
	assert.Equal(t, "flow found", child.Events[0].Name)

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range parent.Attributes {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "run-1", attrs["run.id"].AsString())
	assert.EqualValues(t, 4, attrs["graph.states"].AsInt64())
	assert.EqualValues(t, 5, attrs["graph.actions"].AsInt64())
}

func TestEndSpanWithError(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	m := NewSpanManager()
	_, span := m.StartStageSpan(context.Background(), "decompose")
	m.EndSpanWithError(span, errors.New("unbalanced circulation"))
	m.EndSpanWithError(nil, nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Equal(t, "unbalanced circulation", spans[0].Status.Description)
	require.NotEmpty(t, spans[0].Events, "error recorded as event")
}
