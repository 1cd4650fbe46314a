// SPDX-License-Identifier: MIT

// Package observability provides the logging, metrics and tracing hooks of
// a path-cover extraction: structured logging via slog, metrics and traces
// via OpenTelemetry.
//
// Everything is opt-in. The no-op implementations are the defaults.
package observability

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// NewRunID returns a fresh extraction run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// EnrichLogger attaches the run id to every record of the returned logger.
func EnrichLogger(logger *slog.Logger, runID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("run_id", runID))
}

// LogExtractionStart logs the size of the graph handed to the extractor.
func LogExtractionStart(logger *slog.Logger, states, actions int) {
	if logger == nil {
		return
	}
	logger.Info("constructing path cover",
		slog.Int("states", states),
		slog.Int("actions", actions),
	)
}

// LogCycles warns that the action graph has cycles and the slower solver
// and optimizer run.
func LogCycles(logger *slog.Logger, solver string) {
	if logger == nil {
		return
	}
	logger.Warn("state graph has cycles, path cover may take longer to construct",
		slog.String("solver", solver),
	)
}

// LogInitialCover logs the path count of the raw max flow.
func LogInitialCover(logger *slog.Logger, paths int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("initial path cover constructed",
		slog.Int("paths", paths),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogReduced logs the number of edges marked by partial-order reduction.
func LogReduced(logger *slog.Logger, redundant int) {
	if logger == nil {
		return
	}
	logger.Info("partial order reduction finished",
		slog.Int("redundant_edges", redundant),
	)
}

// LogOptimized logs the outcome of the path optimizer.
func LogOptimized(logger *slog.Logger, before, after int, durationMs float64) {
	if logger == nil {
		return
	}
	if after < before {
		logger.Info("removed redundant paths",
			slog.Int("removed", before-after),
			slog.Int("paths", after),
			slog.Float64("duration_ms", durationMs),
		)
		return
	}
	logger.Info("no redundant paths were found",
		slog.Int("paths", after),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogCoverLength logs the total and average path length.
func LogCoverLength(logger *slog.Logger, total, average int) {
	if logger == nil {
		return
	}
	logger.Info("path cover length",
		slog.Int("total", total),
		slog.Int("average", average),
	)
}

// LogExportReady logs that paths can now be consumed.
func LogExportReady(logger *slog.Logger, paths int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("path cover ready for export",
		slog.Int("paths", paths),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogExtractionError logs a failed extraction.
func LogExtractionError(logger *slog.Logger, stage string, err error) {
	if logger == nil {
		return
	}
	logger.Error("path cover extraction failed",
		slog.String("stage", stage),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// The returned function reports the elapsed time in milliseconds.
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000
	}
}
