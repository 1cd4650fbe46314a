// SPDX-License-Identifier: MIT

package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records extraction metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordStage records the duration of one pipeline stage.
	RecordStage(ctx context.Context, stage string, duration time.Duration)

	// RecordRun records a finished extraction run.
	RecordRun(ctx context.Context, success bool, duration time.Duration)

	// RecordCover records the size of the graph and of its path cover.
	RecordCover(ctx context.Context, c Cover)
}

// Cover summarizes one extraction for metrics.
type Cover struct {
	States    int
	Actions   int
	Paths     int
	Redundant int
	Acyclic   bool
}

type otelMetrics struct {
	runs         metric.Int64Counter
	runLatency   metric.Float64Histogram
	stageLatency metric.Float64Histogram
	states       metric.Int64Counter
	actions      metric.Int64Counter
	paths        metric.Int64Counter
	redundant    metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("statecover")

	runs, err := meter.Int64Counter("statecover.runs",
		metric.WithDescription("Number of path cover extractions"),
	)
	if err != nil {
		return nil, err
	}

	runLatency, err := meter.Float64Histogram("statecover.run.latency_ms",
		metric.WithDescription("Extraction latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	stageLatency, err := meter.Float64Histogram("statecover.stage.latency_ms",
		metric.WithDescription("Pipeline stage latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	states, err := meter.Int64Counter("statecover.states",
		metric.WithDescription("Number of states handed to the extractor"),
	)
	if err != nil {
		return nil, err
	}

	actions, err := meter.Int64Counter("statecover.actions",
		metric.WithDescription("Number of action edges handed to the extractor"),
	)
	if err != nil {
		return nil, err
	}

	paths, err := meter.Int64Counter("statecover.paths",
		metric.WithDescription("Number of extracted paths"),
	)
	if err != nil {
		return nil, err
	}

	redundant, err := meter.Int64Counter("statecover.redundant_edges",
		metric.WithDescription("Number of action edges marked redundant"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		runs:         runs,
		runLatency:   runLatency,
		stageLatency: stageLatency,
		states:       states,
		actions:      actions,
		paths:        paths,
		redundant:    redundant,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder backed by the global OTel
// meter provider. If initialization fails it returns NoopMetrics.
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

func (m *otelMetrics) RecordStage(ctx context.Context, stage string, duration time.Duration) {
	m.stageLatency.Record(ctx, ms(duration), metric.WithAttributes(attribute.String("stage", stage)))
}

func (m *otelMetrics) RecordRun(ctx context.Context, success bool, duration time.Duration) {
	attrs := metric.WithAttributes(attribute.Bool("success", success))
	m.runs.Add(ctx, 1, attrs)
	m.runLatency.Record(ctx, ms(duration), attrs)
}

func (m *otelMetrics) RecordCover(ctx context.Context, c Cover) {
	attrs := metric.WithAttributes(attribute.Bool("acyclic", c.Acyclic))
	m.states.Add(ctx, int64(c.States), attrs)
	m.actions.Add(ctx, int64(c.Actions), attrs)
	m.paths.Add(ctx, int64(c.Paths), attrs)
	m.redundant.Add(ctx, int64(c.Redundant), attrs)
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
