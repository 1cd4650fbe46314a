// SPDX-License-Identifier: MIT

package extract

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/statecover/observability"
	"github.com/katalvlaran/statecover/optimize"
)

// Solver selects the max-flow algorithm used for cyclic action graphs.
// Acyclic graphs always use the naive solver.
type Solver int

const (
	// SolverDinic runs Dinic's blocking-flow algorithm.
	SolverDinic Solver = iota
	// SolverPushRelabel runs FIFO push–relabel.
	SolverPushRelabel
)

// String returns the configuration name of s.
func (s Solver) String() string {
	switch s {
	case SolverDinic:
		return "dinic"
	case SolverPushRelabel:
		return "push-relabel"
	default:
		return fmt.Sprintf("solver(%d)", int(s))
	}
}

// ParseSolver maps a configuration name to a Solver.
func ParseSolver(name string) (Solver, error) {
	switch name {
	case "", "dinic":
		return SolverDinic, nil
	case "push-relabel", "pushrelabel":
		return SolverPushRelabel, nil
	default:
		return 0, fmt.Errorf("%w: unknown solver %q", ErrConfig, name)
	}
}

// Option configures an Extractor via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the extractor settings.
type Options struct {
	// Solver is used when the action graph has cycles.
	Solver Solver

	// SearchDepth is the depth the state exploration reached; 0 if unknown.
	// The heuristic optimizer runs min(MaxOptimizerDepth, SearchDepth-1)
	// passes.
	SearchDepth int

	// MaxOptimizerDepth caps the heuristic optimizer passes.
	MaxOptimizerDepth int

	// PartialOrderReduction enables commuting-diamond detection.
	PartialOrderReduction bool

	Logger  *slog.Logger
	Metrics observability.MetricsRecorder
	Spans   observability.SpanManager

	err error
}

// DefaultOptions returns Options with:
//   - Dinic for cyclic graphs
//   - unknown search depth and optimizer depth optimize.MaxDepth
//   - partial-order reduction enabled
//   - a discarding logger and no-op metrics and spans.
func DefaultOptions() Options {
	return Options{
		Solver:                SolverDinic,
		MaxOptimizerDepth:     optimize.MaxDepth,
		PartialOrderReduction: true,
		Logger:                slog.New(slog.DiscardHandler),
		Metrics:               observability.NoopMetrics{},
		Spans:                 observability.NoopSpanManager{},
	}
}

// optimizerDepth is the number of heuristic passes to run, possibly 0.
func (o Options) optimizerDepth() int {
	depth := o.MaxOptimizerDepth
	if o.SearchDepth > 0 {
		depth = min(depth, o.SearchDepth-1)
	}

	return depth
}

// WithSolver picks the max-flow solver for cyclic graphs.
func WithSolver(s Solver) Option {
	return func(o *Options) {
		switch s {
		case SolverDinic, SolverPushRelabel:
			o.Solver = s
		default:
			o.err = fmt.Errorf("%w: unknown solver %d", ErrOptionViolation, int(s))
		}
	}
}

// WithSearchDepth records how deep the exploration went.
//
//	d > 0: bounds the heuristic optimizer to d-1 passes
//	d == 0: unknown depth
//	d < 0: invalid option → ErrOptionViolation
func WithSearchDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: SearchDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.SearchDepth = d
	}
}

// WithMaxOptimizerDepth caps the heuristic optimizer passes; d must be at
// least 1.
func WithMaxOptimizerDepth(d int) Option {
	return func(o *Options) {
		if d < 1 {
			o.err = fmt.Errorf("%w: MaxOptimizerDepth must be positive (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxOptimizerDepth = d
	}
}

// WithPartialOrderReduction toggles commuting-diamond detection.
func WithPartialOrderReduction(enabled bool) Option {
	return func(o *Options) {
		o.PartialOrderReduction = enabled
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(o *Options) {
		if m != nil {
			o.Metrics = m
		}
	}
}

// WithSpans sets the span manager.
func WithSpans(s observability.SpanManager) Option {
	return func(o *Options) {
		if s != nil {
			o.Spans = s
		}
	}
}
